package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatMessage is one archived entry of the broadcast chat channel.
// Append-only.
type ChatMessage struct {
	ID        string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Sender    string `gorm:"not null" json:"sender"`
	Text      string `gorm:"not null" json:"text"`
	CreatedAt string `json:"created_at"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	// Nanosecond stamps keep messages sent within the same second ordered.
	if m.CreatedAt == "" {
		m.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}
	return
}
