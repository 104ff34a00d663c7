package repositories

import (
	"time"

	"bms-server/db"
	"bms-server/entities"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) Create(user *entities.User) error {
	return r.db.GetDB().Create(user).Error
}

func (r *userPgRepository) GetByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetResidents() ([]entities.User, error) {
	var users []entities.User
	err := r.db.GetDB().Where("role = ?", entities.RoleResident).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userPgRepository) UpdatePasswordHash(id, hash string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	return r.db.GetDB().Model(&entities.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash": hash,
		"updated_at":    now,
	}).Error
}

func (r *userPgRepository) CountByRole(role string) (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
