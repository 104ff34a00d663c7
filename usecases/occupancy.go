package usecases

import (
	"errors"
	"fmt"
	"strings"

	"bms-server/db"
	"bms-server/entities"
	"bms-server/repositories"
	"bms-server/utils"

	"gorm.io/gorm"
)

// DefaultResidentPassword is issued when the admin does not pick one while
// assigning a flat. Residents are expected to change it after first login.
const DefaultResidentPassword = "123456"

// OccupancyUseCase owns the apartment grid and the one-to-one link between
// apartments and resident users. Assignment and release are multi-step
// mutations, so they run inside a single transaction on the raw handle
// instead of going through the repositories.
type OccupancyUseCase struct {
	db            db.Database
	ApartmentRepo repositories.ApartmentRepository
	UserRepo      repositories.UserRepository
}

func NewOccupancyUseCase(database db.Database, apartmentRepo repositories.ApartmentRepository, userRepo repositories.UserRepository) *OccupancyUseCase {
	return &OccupancyUseCase{
		db:            database,
		ApartmentRepo: apartmentRepo,
		UserRepo:      userRepo,
	}
}

// AssignRequest carries the new resident's attributes.
type AssignRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password"`
	Phone        string `json:"phone"`
	NID          string `json:"nid"`
	MembersCount int    `json:"members_count"`
}

// AssignResident creates a resident user and links it to the given unit.
// Unit labels match case-insensitively and are stored upper-cased. The user
// insert and the link update commit together; a failure of either rolls the
// whole assignment back.
func (uc *OccupancyUseCase) AssignResident(unitNumber string, req AssignRequest) (*entities.User, error) {
	unitNumber = strings.ToUpper(strings.TrimSpace(unitNumber))
	if unitNumber == "" {
		return nil, fmt.Errorf("unit number is required: %w", ErrValidation)
	}
	if req.FullName == "" || req.Email == "" {
		return nil, fmt.Errorf("full name and email are required: %w", ErrValidation)
	}

	password := req.Password
	if password == "" {
		password = DefaultResidentPassword
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         entities.RoleResident,
		Phone:        req.Phone,
		NID:          req.NID,
		MembersCount: req.MembersCount,
	}

	err = uc.db.GetDB().Transaction(func(tx *gorm.DB) error {
		var apt entities.Apartment
		if err := tx.Where("unit_number = ?", unitNumber).First(&apt).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("flat %s does not exist: %w", unitNumber, ErrNotFound)
			}
			return err
		}
		if apt.ResidentID != nil {
			return fmt.Errorf("flat %s is already occupied: %w", unitNumber, ErrConflict)
		}

		var existing int64
		if err := tx.Model(&entities.User{}).Where("email = ?", req.Email).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return fmt.Errorf("email already registered: %w", ErrConflict)
		}

		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Apartment{}).Where("id = ?", apt.ID).Update("resident_id", user.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Release clears the user's apartment link and deletes the user in one
// transaction, so no window exists where an apartment references a deleted
// user. Users without an apartment are simply deleted.
func (uc *OccupancyUseCase) Release(userID string) error {
	if userID == "" {
		return fmt.Errorf("user id is required: %w", ErrValidation)
	}
	return uc.db.GetDB().Transaction(func(tx *gorm.DB) error {
		var user entities.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user not found: %w", ErrNotFound)
			}
			return err
		}
		if err := tx.Model(&entities.Apartment{}).Where("resident_id = ?", userID).Update("resident_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

// ListVacant returns vacant unit labels in plain string order.
func (uc *OccupancyUseCase) ListVacant() ([]string, error) {
	return uc.ApartmentRepo.GetVacantUnits()
}

// Resident is a resident user together with their unit label.
type Resident struct {
	User   entities.User
	FlatNo string
}

// ListResidents returns all resident users and the unit each occupies, or
// "Not Assigned" for users without a link.
func (uc *OccupancyUseCase) ListResidents() ([]Resident, error) {
	users, err := uc.UserRepo.GetResidents()
	if err != nil {
		return nil, err
	}
	residents := make([]Resident, 0, len(users))
	for _, u := range users {
		flat := NotAssigned
		apt, err := uc.ApartmentRepo.GetByResidentID(u.ID)
		if err == nil {
			flat = apt.UnitNumber
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		residents = append(residents, Resident{User: u, FlatNo: flat})
	}
	return residents, nil
}
