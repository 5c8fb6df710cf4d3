package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles. Authorization decisions go through
// middleware.RequireRole — never through string matching at call sites.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleKazi    Role = "kazi"
	RoleHarvest Role = "harvest"
	RoleUser    Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleKazi, RoleHarvest, RoleUser:
		return true
	}
	return false
}

// User is a system account.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        *string
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'user'"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
