package model

import "github.com/google/uuid"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type Role struct {
	BaseModel
	RoleName string `gorm:"not null;index" json:"roleName"`
}

// UserRole joins a user to a role. It deliberately carries no audit fields.
type UserRole struct {
	UserID uuid.UUID `gorm:"primaryKey;type:char(36)" json:"userId"`
	RoleID uuid.UUID `gorm:"primaryKey;type:char(36)" json:"roleId"`
}
