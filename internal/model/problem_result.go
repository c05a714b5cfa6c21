package model

import "github.com/google/uuid"

type ProblemResultType int

const (
	ResultChoice ProblemResultType = iota
	ResultText
)

// ProblemResult is one selectable option of a problem; for essays a single
// Text-typed result with IsAnswer set holds the reference answer.
type ProblemResult struct {
	BaseModel
	ProblemID  uuid.UUID         `gorm:"type:char(36);not null;index:idx_problem_results_problem_order" json:"problemId"`
	ResultType ProblemResultType `gorm:"not null" json:"resultType"`
	Content    string            `gorm:"type:text;not null" json:"content"`
	Order      int64             `gorm:"column:order;not null;index:idx_problem_results_problem_order" json:"order"`
	IsAnswer   bool              `gorm:"not null" json:"isAnswer"`
}
