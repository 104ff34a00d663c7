package usecases

import (
	"errors"
	"fmt"

	"bms-server/entities"
	"bms-server/repositories"
	"bms-server/utils"

	"gorm.io/gorm"
)

// AccountUseCase covers login, password changes and profile reads.
type AccountUseCase struct {
	UserRepo      repositories.UserRepository
	ApartmentRepo repositories.ApartmentRepository
}

func NewAccountUseCase(userRepo repositories.UserRepository, apartmentRepo repositories.ApartmentRepository) *AccountUseCase {
	return &AccountUseCase{
		UserRepo:      userRepo,
		ApartmentRepo: apartmentRepo,
	}
}

// Authenticate verifies the credentials and returns the matching user.
// Unknown emails and wrong passwords fail the same way so the response does
// not leak which accounts exist.
func (uc *AccountUseCase) Authenticate(email, password string) (*entities.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", ErrValidation)
	}
	user, err := uc.UserRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
	}
	return user, nil
}

// ChangePassword replaces the stored hash after verifying the old password.
func (uc *AccountUseCase) ChangePassword(userID, oldPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("new password is required: %w", ErrValidation)
	}
	user, err := uc.UserRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user not found: %w", ErrNotFound)
		}
		return err
	}
	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return fmt.Errorf("current password is incorrect: %w", ErrUnauthorized)
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return uc.UserRepo.UpdatePasswordHash(userID, hash)
}

// Profile is a user together with the unit label of their apartment, or
// "Not Assigned" when they hold none.
type Profile struct {
	User     *entities.User
	FlatNo   string
	Assigned bool
}

// NotAssigned is the display label for users without an apartment link.
const NotAssigned = "Not Assigned"

// GetProfile loads the user's own profile including their unit label.
func (uc *AccountUseCase) GetProfile(userID string) (*Profile, error) {
	user, err := uc.UserRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", ErrNotFound)
		}
		return nil, err
	}
	profile := &Profile{User: user, FlatNo: NotAssigned}
	apt, err := uc.ApartmentRepo.GetByResidentID(userID)
	if err == nil {
		profile.FlatNo = apt.UnitNumber
		profile.Assigned = true
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return profile, nil
}
