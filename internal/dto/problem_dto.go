package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/qtcyy/practice-system/internal/model"
)

// AuditDTO is the serialized form of model.BaseModel, embedded by every
// entity DTO so responses expose the full audit trail.
type AuditDTO struct {
	Id        uuid.UUID  `json:"id"`
	CreateAt  time.Time  `json:"createAt"`
	UpdateAt  time.Time  `json:"updateAt"`
	CreateBy  *uuid.UUID `json:"createBy"`
	UpdateBy  *uuid.UUID `json:"updateBy"`
	Version   int64      `json:"version"`
	IsDeleted bool       `json:"isDeleted"`
}

func NewAuditDTO(b model.BaseModel) AuditDTO {
	return AuditDTO{
		Id:        b.Id,
		CreateAt:  b.CreateAt,
		UpdateAt:  b.UpdateAt,
		CreateBy:  b.CreateBy,
		UpdateBy:  b.UpdateBy,
		Version:   b.Version.Int64,
		IsDeleted: b.IsDeleted != 0,
	}
}

type ProblemSetDTO struct {
	AuditDTO
	Title             string     `json:"title"`
	Description       *string    `json:"description"`
	UserID            *uuid.UUID `json:"userId"`
	TotalProblems     int64      `json:"totalProblems"`
	AttemptedProblems int64      `json:"attemptedProblems"`
}

type ProblemDTO struct {
	AuditDTO
	Content string              `json:"content"`
	Type    model.ProblemType   `json:"type"`
	SetID   uuid.UUID           `json:"setId"`
	Order   int64               `json:"order"`
	Status  model.ProblemStatus `json:"status"`
}

type ProblemResultDTO struct {
	AuditDTO
	ProblemID  uuid.UUID               `json:"problemId"`
	ResultType model.ProblemResultType `json:"resultType"`
	Content    string                  `json:"content"`
	Order      int64                   `json:"order"`
	IsAnswer   bool                    `json:"isAnswer"`
}

type UserAnswerDTO struct {
	AuditDTO
	UserID       uuid.UUID           `json:"userId"`
	ProblemID    uuid.UUID           `json:"problemId"`
	ProblemSetID *uuid.UUID          `json:"problemSetId"`
	Status       model.ProblemStatus `json:"status"`
	TextAnswer   *string             `json:"textAnswer"`
	AnsweredAt   time.Time           `json:"answeredAt"`
}

// ProblemDetailDTO is the full problem view: content, ordered results, the
// caller's answer and, for non-essay types, their previously selected ids.
type ProblemDetailDTO struct {
	AuditDTO
	Content          string             `json:"content"`
	Type             model.ProblemType  `json:"type"`
	SetID            uuid.UUID          `json:"setId"`
	Order            int64              `json:"order"`
	Results          []ProblemResultDTO `json:"results"`
	UserAnswer       *UserAnswerDTO     `json:"userAnswer"`
	SelectedResultId []uuid.UUID        `json:"selectedResultId,omitempty"`
}

type GetProblemSetResp struct {
	Message     string          `json:"message"`
	ProblemSets []ProblemSetDTO `json:"problemSets"`
}

type GetProblemsResp struct {
	Message  string       `json:"message"`
	Problems []ProblemDTO `json:"problems"`
}

type GetProblemDetailResp struct {
	Message       string           `json:"message"`
	ProblemDetail ProblemDetailDTO `json:"problemDetail"`
}

type NewProblemSetReq struct {
	Title string `json:"title" binding:"required"`
}

type NewProblemSetResp struct {
	Message    string        `json:"message"`
	ProblemSet ProblemSetDTO `json:"problemSet"`
}

type NewProblemReq struct {
	Content string            `json:"content" binding:"required"`
	Type    model.ProblemType `json:"type"`
}

type NewProblemResultReq struct {
	ResultType model.ProblemResultType `json:"resultType"`
	Content    string                  `json:"content" binding:"required"`
	IsAnswer   bool                    `json:"isAnswer"`
}

type AddProblemReq struct {
	ProblemSetID uuid.UUID             `json:"problemSetId" binding:"required"`
	Problem      NewProblemReq         `json:"problem" binding:"required"`
	Results      []NewProblemResultReq `json:"results" binding:"required,min=1,dive"`
}

type AddProblemResp struct {
	Message string             `json:"message"`
	Problem ProblemDTO         `json:"problem"`
	Results []ProblemResultDTO `json:"results"`
}

type SubmitAnswerReq struct {
	ProblemID        uuid.UUID           `json:"problemId" binding:"required"`
	ProblemSetID     *uuid.UUID          `json:"problemSetId"`
	SelectedResultID []uuid.UUID         `json:"selectedResultIds"`
	TextAnswer       *string             `json:"textAnswer"`
	Status           model.ProblemStatus `json:"status"`
}

type SubmitAnswerResp struct {
	Message      string              `json:"message"`
	UserAnswerID uuid.UUID           `json:"userAnswerId"`
	Status       model.ProblemStatus `json:"status"`
	AnsweredAt   time.Time           `json:"answeredAt"`
}

type EssayFeedbackReq struct {
	ProblemID uuid.UUID `json:"problemId" binding:"required"`
}

type EssayFeedbackResp struct {
	Message  string `json:"message"`
	Feedback string `json:"feedback"`
}
