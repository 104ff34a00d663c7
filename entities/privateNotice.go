package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrivateNotice is a bulletin entry addressed to a single user. The target
// user id is not validated against the users table when sending.
type PrivateNotice struct {
	ID        string `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Title     string `gorm:"not null" json:"title"`
	Content   string `gorm:"not null" json:"content"`
	CreatedAt string `json:"created_at"`
}

func (n *PrivateNotice) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt == "" {
		n.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return
}
