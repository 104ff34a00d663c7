package repositories

import "bms-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	GetResidents() ([]entities.User, error)
	UpdatePasswordHash(id, hash string) error
	CountByRole(role string) (int64, error)
}

type ApartmentRepository interface {
	GetByUnit(unitNumber string) (*entities.Apartment, error)
	GetByResidentID(userID string) (*entities.Apartment, error)
	GetVacantUnits() ([]string, error)
	Count() (int64, error)
	CountOccupied() (int64, error)
}

type NoticeRepository interface {
	Create(notice *entities.Notice) error
	GetAll() ([]entities.Notice, error)
	Delete(id string) (bool, error)
	Count() (int64, error)
}

type PrivateNoticeRepository interface {
	Create(notice *entities.PrivateNotice) error
	GetByUserID(userID string) ([]entities.PrivateNotice, error)
}

type ComplaintRepository interface {
	Create(complaint *entities.Complaint) error
	GetAll() ([]entities.Complaint, error)
	GetByID(id string) (*entities.Complaint, error)
	UpdateStatus(id, status string) error
	CountByStatus(status string) (int64, error)
}

type ChatMessageRepository interface {
	Create(message *entities.ChatMessage) error
	GetRecent(limit int) ([]entities.ChatMessage, error)
}
