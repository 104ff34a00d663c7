package usecases

import (
	"testing"

	"bms-server/db"
	"bms-server/entities"
	"bms-server/repositories"
	"bms-server/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccounts(t *testing.T) *AccountUseCase {
	t.Helper()
	database := openTestDB(t)
	return NewAccountUseCase(
		repositories.NewUserPgRepository(database),
		repositories.NewApartmentPgRepository(database),
	)
}

func createUser(t *testing.T, uc *AccountUseCase, email, password string) *entities.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := &entities.User{
		FullName:     "Test Resident",
		Email:        email,
		PasswordHash: hash,
	}
	require.NoError(t, uc.UserRepo.Create(user))
	return user
}

func TestAuthenticate(t *testing.T) {
	uc := newAccounts(t)
	createUser(t, uc, "rahim@example.com", "secret12")

	user, err := uc.Authenticate("rahim@example.com", "secret12")
	require.NoError(t, err)
	assert.Equal(t, "rahim@example.com", user.Email)

	_, err = uc.Authenticate("rahim@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = uc.Authenticate("nobody@example.com", "secret12")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = uc.Authenticate("", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestChangePasswordWrongOldLeavesHashUnchanged(t *testing.T) {
	uc := newAccounts(t)
	user := createUser(t, uc, "rahim@example.com", "secret12")

	err := uc.ChangePassword(user.ID, "not-the-password", "newpass99")
	require.ErrorIs(t, err, ErrUnauthorized)

	// The old password still authenticates; the new one does not.
	_, err = uc.Authenticate("rahim@example.com", "secret12")
	assert.NoError(t, err)
	_, err = uc.Authenticate("rahim@example.com", "newpass99")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestChangePassword(t *testing.T) {
	uc := newAccounts(t)
	user := createUser(t, uc, "rahim@example.com", "secret12")

	require.NoError(t, uc.ChangePassword(user.ID, "secret12", "newpass99"))

	_, err := uc.Authenticate("rahim@example.com", "newpass99")
	assert.NoError(t, err)
	_, err = uc.Authenticate("rahim@example.com", "secret12")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetProfile(t *testing.T) {
	database := openTestDB(t)
	userRepo := repositories.NewUserPgRepository(database)
	aptRepo := repositories.NewApartmentPgRepository(database)
	accounts := NewAccountUseCase(userRepo, aptRepo)
	occupancy := NewOccupancyUseCase(database, aptRepo, userRepo)

	require.NoError(t, db.SeedGrid(database, 5, 2))

	assigned, err := occupancy.AssignResident("2B", assignReq("Rahim Uddin", "rahim@example.com"))
	require.NoError(t, err)

	profile, err := accounts.GetProfile(assigned.ID)
	require.NoError(t, err)
	assert.Equal(t, "2B", profile.FlatNo)
	assert.True(t, profile.Assigned)

	floating := createUser(t, accounts, "floating@example.com", "secret12")
	profile, err = accounts.GetProfile(floating.ID)
	require.NoError(t, err)
	assert.Equal(t, NotAssigned, profile.FlatNo)
	assert.False(t, profile.Assigned)

	_, err = accounts.GetProfile("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
