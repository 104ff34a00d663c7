package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notice is a public bulletin entry. Admin-authored, immutable once posted
// except for deletion.
type Notice struct {
	ID        string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	Content   string `gorm:"not null" json:"content"`
	CreatedAt string `json:"created_at"`
}

func (n *Notice) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt == "" {
		n.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return
}
