package usecases

import (
	"sort"
	"testing"

	"bms-server/db"
	"bms-server/entities"
	"bms-server/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOccupancy(t *testing.T, floors, unitsPerFloor int) (*OccupancyUseCase, db.Database) {
	t.Helper()
	database := openTestDB(t)
	require.NoError(t, db.SeedGrid(database, floors, unitsPerFloor))
	uc := NewOccupancyUseCase(
		database,
		repositories.NewApartmentPgRepository(database),
		repositories.NewUserPgRepository(database),
	)
	return uc, database
}

func assignReq(name, email string) AssignRequest {
	return AssignRequest{
		FullName:     name,
		Email:        email,
		Phone:        "555-0100",
		MembersCount: 3,
	}
}

func TestSeedGridCreatesUniqueLabels(t *testing.T) {
	uc, database := newOccupancy(t, 5, 2)

	vacant, err := uc.ListVacant()
	require.NoError(t, err)
	require.Len(t, vacant, 10)

	seen := make(map[string]bool)
	for _, unit := range vacant {
		assert.False(t, seen[unit], "duplicate unit %s", unit)
		seen[unit] = true
	}
	assert.Contains(t, vacant, "1A")
	assert.Contains(t, vacant, "5B")

	// Seeding again must be a no-op.
	require.NoError(t, db.SeedGrid(database, 5, 2))
	vacant, err = uc.ListVacant()
	require.NoError(t, err)
	assert.Len(t, vacant, 10)
}

func TestListVacantUsesPlainStringOrder(t *testing.T) {
	uc, _ := newOccupancy(t, 10, 1)

	vacant, err := uc.ListVacant()
	require.NoError(t, err)
	require.Len(t, vacant, 10)

	// Historical contract: "10A" sorts before "2A" under plain string order.
	assert.Equal(t, "10A", vacant[0])
	assert.True(t, sort.StringsAreSorted(vacant))
}

func TestAssignResidentNormalizesUnitLabel(t *testing.T) {
	uc, _ := newOccupancy(t, 5, 2)

	user, err := uc.AssignResident("1a", assignReq("Rahim Uddin", "rahim@example.com"))
	require.NoError(t, err)
	assert.Equal(t, entities.RoleResident, user.Role)

	apt, err := uc.ApartmentRepo.GetByUnit("1A")
	require.NoError(t, err)
	require.NotNil(t, apt.ResidentID)
	assert.Equal(t, user.ID, *apt.ResidentID)

	vacant, err := uc.ListVacant()
	require.NoError(t, err)
	assert.Len(t, vacant, 9)
	assert.NotContains(t, vacant, "1A")
}

func TestAssignResidentOccupiedUnitConflicts(t *testing.T) {
	uc, _ := newOccupancy(t, 5, 2)

	first, err := uc.AssignResident("1A", assignReq("Rahim Uddin", "rahim@example.com"))
	require.NoError(t, err)

	_, err = uc.AssignResident("1A", assignReq("Karim Mia", "karim@example.com"))
	require.ErrorIs(t, err, ErrConflict)

	// Prior state unchanged: the first resident still holds the flat and
	// the second user was never created.
	apt, err := uc.ApartmentRepo.GetByUnit("1A")
	require.NoError(t, err)
	require.NotNil(t, apt.ResidentID)
	assert.Equal(t, first.ID, *apt.ResidentID)

	_, err = uc.UserRepo.GetByEmail("karim@example.com")
	assert.Error(t, err)
}

func TestAssignResidentUnknownUnit(t *testing.T) {
	uc, _ := newOccupancy(t, 5, 2)

	_, err := uc.AssignResident("9Z", assignReq("Rahim Uddin", "rahim@example.com"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAssignResidentDuplicateEmailRollsBack(t *testing.T) {
	uc, _ := newOccupancy(t, 5, 2)

	_, err := uc.AssignResident("1A", assignReq("Rahim Uddin", "rahim@example.com"))
	require.NoError(t, err)

	_, err = uc.AssignResident("2A", assignReq("Impostor", "rahim@example.com"))
	require.ErrorIs(t, err, ErrConflict)

	// The failed assignment must not have touched 2A.
	apt, err := uc.ApartmentRepo.GetByUnit("2A")
	require.NoError(t, err)
	assert.Nil(t, apt.ResidentID)
}

func TestReleaseClearsLinkAndDeletesUser(t *testing.T) {
	uc, _ := newOccupancy(t, 5, 2)

	user, err := uc.AssignResident("3B", assignReq("Rahim Uddin", "rahim@example.com"))
	require.NoError(t, err)

	require.NoError(t, uc.Release(user.ID))

	apt, err := uc.ApartmentRepo.GetByUnit("3B")
	require.NoError(t, err)
	assert.Nil(t, apt.ResidentID)

	_, err = uc.UserRepo.GetByID(user.ID)
	assert.Error(t, err)

	vacant, err := uc.ListVacant()
	require.NoError(t, err)
	assert.Contains(t, vacant, "3B")
}

func TestReleaseUnknownUser(t *testing.T) {
	uc, _ := newOccupancy(t, 5, 2)
	require.ErrorIs(t, uc.Release("no-such-id"), ErrNotFound)
}

func TestReleaseUserWithoutApartment(t *testing.T) {
	uc, _ := newOccupancy(t, 5, 2)

	user := &entities.User{
		FullName:     "Floating User",
		Email:        "floating@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, uc.UserRepo.Create(user))

	require.NoError(t, uc.Release(user.ID))

	// Apartment table untouched: still 10 vacant units.
	vacant, err := uc.ListVacant()
	require.NoError(t, err)
	assert.Len(t, vacant, 10)
}

func TestListResidents(t *testing.T) {
	uc, _ := newOccupancy(t, 5, 2)

	assigned, err := uc.AssignResident("1A", assignReq("Rahim Uddin", "rahim@example.com"))
	require.NoError(t, err)

	unassigned := &entities.User{
		FullName:     "Waiting Resident",
		Email:        "waiting@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, uc.UserRepo.Create(unassigned))

	residents, err := uc.ListResidents()
	require.NoError(t, err)
	require.Len(t, residents, 2)

	flats := make(map[string]string)
	for _, r := range residents {
		flats[r.User.ID] = r.FlatNo
	}
	assert.Equal(t, "1A", flats[assigned.ID])
	assert.Equal(t, NotAssigned, flats[unassigned.ID])
}
