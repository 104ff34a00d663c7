package repositories

import (
	"bms-server/db"
	"bms-server/entities"
)

type apartmentPgRepository struct {
	db db.Database
}

func NewApartmentPgRepository(database db.Database) ApartmentRepository {
	return &apartmentPgRepository{db: database}
}

func (r *apartmentPgRepository) GetByUnit(unitNumber string) (*entities.Apartment, error) {
	var apt entities.Apartment
	err := r.db.GetDB().Where("unit_number = ?", unitNumber).First(&apt).Error
	if err != nil {
		return nil, err
	}
	return &apt, nil
}

func (r *apartmentPgRepository) GetByResidentID(userID string) (*entities.Apartment, error) {
	var apt entities.Apartment
	err := r.db.GetDB().Where("resident_id = ?", userID).First(&apt).Error
	if err != nil {
		return nil, err
	}
	return &apt, nil
}

// GetVacantUnits returns unit labels with no resident, in plain string order.
// "10A" sorts before "2A"; callers rely on that historical ordering.
func (r *apartmentPgRepository) GetVacantUnits() ([]string, error) {
	var units []string
	err := r.db.GetDB().Model(&entities.Apartment{}).
		Where("resident_id IS NULL").
		Order("unit_number ASC").
		Pluck("unit_number", &units).Error
	return units, err
}

func (r *apartmentPgRepository) Count() (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Apartment{}).Count(&count).Error
	return count, err
}

func (r *apartmentPgRepository) CountOccupied() (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Apartment{}).Where("resident_id IS NOT NULL").Count(&count).Error
	return count, err
}
