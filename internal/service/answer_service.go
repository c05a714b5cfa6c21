package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/qtcyy/practice-system/internal/apperr"
	"github.com/qtcyy/practice-system/internal/dto"
	"github.com/qtcyy/practice-system/internal/grading"
	"github.com/qtcyy/practice-system/internal/model"
	"github.com/qtcyy/practice-system/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AnswerService grades a submission and persists it as the user's single
// current answer for the problem.
type AnswerService interface {
	Submit(ctx context.Context, userID uuid.UUID, req dto.SubmitAnswerReq) (*dto.SubmitAnswerResp, error)
}

type answerService struct {
	setRepo     repository.ProblemSetRepository
	problemRepo repository.ProblemRepository
	answerRepo  repository.UserAnswerRepository
}

func NewAnswerService(
	setRepo repository.ProblemSetRepository,
	problemRepo repository.ProblemRepository,
	answerRepo repository.UserAnswerRepository,
) AnswerService {
	return &answerService{setRepo: setRepo, problemRepo: problemRepo, answerRepo: answerRepo}
}

func (s *answerService) Submit(ctx context.Context, userID uuid.UUID, req dto.SubmitAnswerReq) (*dto.SubmitAnswerResp, error) {
	problem, err := s.problemRepo.FindByID(ctx, req.ProblemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Problem not found")
		}
		return nil, fmt.Errorf("loading problem: %w", err)
	}
	set, err := s.setRepo.FindByID(ctx, problem.SetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Problem not found")
		}
		return nil, fmt.Errorf("loading owning set: %w", err)
	}
	if err := RequireOwner("problem", set.UserID, userID); err != nil {
		return nil, err
	}

	correctIDs, err := s.problemRepo.FindCorrectResultIDs(ctx, problem.Id)
	if err != nil {
		return nil, fmt.Errorf("loading correct results: %w", err)
	}

	// The verdict is always recomputed here; whatever status the client
	// sent is discarded.
	sub := grading.Submission{SelectedResultIDs: req.SelectedResultID}
	if req.TextAnswer != nil {
		sub.TextAnswer = *req.TextAnswer
	}
	status := grading.Grade(problem.Type, correctIDs, sub)

	answer := model.UserAnswer{
		BaseModel:    model.BaseModel{CreateBy: &userID, UpdateBy: &userID},
		UserID:       userID,
		ProblemID:    problem.Id,
		ProblemSetID: req.ProblemSetID,
		Status:       status,
		TextAnswer:   req.TextAnswer,
		AnsweredAt:   time.Now().UTC(),
	}
	if answer.ProblemSetID == nil {
		answer.ProblemSetID = &problem.SetID
	}

	var selected []uuid.UUID
	if problem.Type != model.Essay {
		selected = req.SelectedResultID
	}
	if err := s.answerRepo.Upsert(ctx, &answer, selected); err != nil {
		return nil, fmt.Errorf("saving answer: %w", err)
	}
	log.Info().
		Str("userID", userID.String()).
		Str("problemID", problem.Id.String()).
		Int("status", int(answer.Status)).
		Msg("Answer submitted")

	return &dto.SubmitAnswerResp{
		Message:      "Answer submitted successfully",
		UserAnswerID: answer.Id,
		Status:       answer.Status,
		AnsweredAt:   answer.AnsweredAt,
	}, nil
}
