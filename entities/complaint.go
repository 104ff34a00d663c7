package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Complaint statuses. Status is free-form for admin updates; these are the
// values the system itself writes.
const (
	ComplaintPending  = "Pending"
	ComplaintResolved = "Resolved"
)

// Complaint is a resident-submitted issue. SubmittedBy is the submitter's
// display name captured at submission time, so later profile changes do not
// relabel old complaints. Status is the only mutable field.
type Complaint struct {
	ID          string `gorm:"type:varchar(36);primaryKey" json:"id"`
	SubmittedBy string `gorm:"not null" json:"submitted_by"`
	Subject     string `gorm:"not null" json:"subject"`
	Description string `gorm:"not null" json:"description"`
	Status      string `gorm:"not null;default:Pending" json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (cp *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	if cp.Status == "" {
		cp.Status = ComplaintPending
	}
	if cp.CreatedAt == "" {
		cp.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	cp.UpdatedAt = cp.CreatedAt
	return
}
