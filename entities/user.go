package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles recognized by the authorization middleware.
const (
	RoleAdmin    = "admin"
	RoleResident = "resident"
)

// User is an account in the building: either the admin or a resident family
// head. A user is referenced by at most one apartment.
type User struct {
	ID           string `gorm:"type:varchar(36);primaryKey" json:"id"`
	FullName     string `gorm:"not null" json:"full_name"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null;default:resident" json:"role"`
	Phone        string `json:"phone"`
	NID          string `json:"nid"`
	MembersCount int    `json:"members_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = RoleResident
	}
	if u.CreatedAt == "" {
		u.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	u.UpdatedAt = u.CreatedAt
	return
}
