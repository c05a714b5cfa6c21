package model

import (
	"time"

	"github.com/google/uuid"
)

// ProblemStatus is the verdict of a graded submission.
type ProblemStatus int

const (
	Unattempted ProblemStatus = iota
	Correct
	Incorrect
	PartiallyCorrect
	NoAnswer
)

// UserAnswer is the single current answer of a (user, problem) pair.
// Uniqueness is enforced by idx_user_answers_user_problem, created in
// database.AutoMigrate over (user_id, problem_id, is_deleted); the row is
// mutated in place on re-submission so CreateAt/CreateBy survive.
type UserAnswer struct {
	BaseModel
	UserID       uuid.UUID     `gorm:"type:char(36);not null" json:"userId"`
	ProblemID    uuid.UUID     `gorm:"type:char(36);not null" json:"problemId"`
	ProblemSetID *uuid.UUID    `gorm:"type:char(36)" json:"problemSetId"`
	Status       ProblemStatus `gorm:"not null" json:"status"`
	TextAnswer   *string       `gorm:"type:text" json:"textAnswer"`
	AnsweredAt   time.Time     `json:"answeredAt"`
}

// UserAnswerSelection records one result id the user selected; the full set
// is replaced on every re-submission.
type UserAnswerSelection struct {
	BaseModel
	UserAnswerID    uuid.UUID `gorm:"type:char(36);not null;index" json:"userAnswerId"`
	ProblemResultID uuid.UUID `gorm:"type:char(36);not null" json:"problemResultId"`
}
