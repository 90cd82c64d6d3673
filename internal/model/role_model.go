package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleStatus string

const (
	RoleActive   RoleStatus = "active"
	RoleInactive RoleStatus = "inactive"
)

func (s RoleStatus) Valid() bool {
	return s == RoleActive || s == RoleInactive
}

// Role is a job opening. Status is the only field that changes after creation.
type Role struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string     `gorm:"type:varchar(255);not null" json:"title"`
	Description      string     `gorm:"type:text;not null" json:"description"`
	Requirements     string     `gorm:"type:text;not null" json:"requirements"`
	Responsibilities string     `gorm:"type:text" json:"responsibilities,omitempty"`
	Status           RoleStatus `gorm:"type:varchar(20);not null;default:active" json:"status"`
	CreatedAt        time.Time  `gorm:"index" json:"created_at"`
}

func (r *Role) TableName() string {
	return "roles"
}

func (r *Role) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = RoleActive
	}
	return nil
}
