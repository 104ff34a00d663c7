package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Apartment is one unit of the building grid. Units are created once at
// seeding time and never deleted; only ResidentID mutates. The unique index
// on ResidentID enforces at most one apartment per user at the store level.
type Apartment struct {
	ID         string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	UnitNumber string  `gorm:"unique;not null" json:"unit_number"`
	Floor      int     `json:"floor"`
	ResidentID *string `gorm:"type:varchar(36);uniqueIndex" json:"resident_id,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

func (a *Apartment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt == "" {
		a.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return
}
