package repositories

import (
	"time"

	"bms-server/db"
	"bms-server/entities"
)

type complaintPgRepository struct {
	db db.Database
}

func NewComplaintPgRepository(database db.Database) ComplaintRepository {
	return &complaintPgRepository{db: database}
}

func (r *complaintPgRepository) Create(complaint *entities.Complaint) error {
	return r.db.GetDB().Create(complaint).Error
}

func (r *complaintPgRepository) GetAll() ([]entities.Complaint, error) {
	var complaints []entities.Complaint
	err := r.db.GetDB().Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

func (r *complaintPgRepository) GetByID(id string) (*entities.Complaint, error) {
	var complaint entities.Complaint
	err := r.db.GetDB().Where("id = ?", id).First(&complaint).Error
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintPgRepository) UpdateStatus(id, status string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	return r.db.GetDB().Model(&entities.Complaint{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": now,
	}).Error
}

func (r *complaintPgRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Complaint{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
