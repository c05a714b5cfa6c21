package model

import "github.com/google/uuid"

// ProblemSet is a named collection of problems. UserID is nullable: sets
// without an owner are legacy/shared data readable by any authenticated user.
type ProblemSet struct {
	BaseModel
	Title       string     `gorm:"not null" json:"title"`
	Description *string    `json:"description"`
	UserID      *uuid.UUID `gorm:"type:char(36);index" json:"userId"`
}
