package repositories

import (
	"bms-server/db"
	"bms-server/entities"
)

type noticePgRepository struct {
	db db.Database
}

func NewNoticePgRepository(database db.Database) NoticeRepository {
	return &noticePgRepository{db: database}
}

func (r *noticePgRepository) Create(notice *entities.Notice) error {
	return r.db.GetDB().Create(notice).Error
}

func (r *noticePgRepository) GetAll() ([]entities.Notice, error) {
	var notices []entities.Notice
	err := r.db.GetDB().Order("created_at DESC").Find(&notices).Error
	return notices, err
}

// Delete reports whether a row was actually removed so callers can
// distinguish a missing notice from a store failure.
func (r *noticePgRepository) Delete(id string) (bool, error) {
	res := r.db.GetDB().Where("id = ?", id).Delete(&entities.Notice{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *noticePgRepository) Count() (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Notice{}).Count(&count).Error
	return count, err
}

type privateNoticePgRepository struct {
	db db.Database
}

func NewPrivateNoticePgRepository(database db.Database) PrivateNoticeRepository {
	return &privateNoticePgRepository{db: database}
}

func (r *privateNoticePgRepository) Create(notice *entities.PrivateNotice) error {
	return r.db.GetDB().Create(notice).Error
}

func (r *privateNoticePgRepository) GetByUserID(userID string) ([]entities.PrivateNotice, error) {
	var notices []entities.PrivateNotice
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&notices).Error
	return notices, err
}
