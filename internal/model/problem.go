package model

import "github.com/google/uuid"

// ProblemType is serialized as its numeric value; the order is part of
// the wire contract.
type ProblemType int

const (
	SingleChoice ProblemType = iota
	MultipleChoice
	TrueFalse
	Essay
)

func (t ProblemType) Valid() bool {
	return t >= SingleChoice && t <= Essay
}

type Problem struct {
	BaseModel
	Content string      `gorm:"type:text;not null" json:"content"`
	Type    ProblemType `gorm:"not null" json:"type"`
	SetID   uuid.UUID   `gorm:"type:char(36);not null;index:idx_problems_set_order" json:"setId"`
	Order   int64       `gorm:"column:order;not null;index:idx_problems_set_order" json:"order"`
}
