package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/qtcyy/practice-system/internal/apperr"
	"github.com/qtcyy/practice-system/internal/dto"
	"github.com/qtcyy/practice-system/internal/model"
	"github.com/qtcyy/practice-system/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProblemService assembles the read-side views: set summaries, ordered
// problem lists with the caller's verdicts, and the full problem detail.
type ProblemService interface {
	GetProblemSets(ctx context.Context, userID uuid.UUID) ([]dto.ProblemSetDTO, error)
	GetProblems(ctx context.Context, userID, problemSetID uuid.UUID) ([]dto.ProblemDTO, error)
	GetProblemDetail(ctx context.Context, userID, problemID uuid.UUID) (*dto.ProblemDetailDTO, error)
	GetIncorrectProblems(ctx context.Context, userID, problemSetID uuid.UUID) ([]dto.ProblemDTO, error)
}

type problemService struct {
	setRepo     repository.ProblemSetRepository
	problemRepo repository.ProblemRepository
	answerRepo  repository.UserAnswerRepository
}

func NewProblemService(
	setRepo repository.ProblemSetRepository,
	problemRepo repository.ProblemRepository,
	answerRepo repository.UserAnswerRepository,
) ProblemService {
	return &problemService{setRepo: setRepo, problemRepo: problemRepo, answerRepo: answerRepo}
}

func (s *problemService) GetProblemSets(ctx context.Context, userID uuid.UUID) ([]dto.ProblemSetDTO, error) {
	sets, err := s.setRepo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing problem sets: %w", err)
	}

	setIDs := make([]uuid.UUID, len(sets))
	for i, set := range sets {
		setIDs[i] = set.Id
	}

	totals, err := s.setRepo.CountProblems(ctx, setIDs)
	if err != nil {
		return nil, fmt.Errorf("counting problems: %w", err)
	}
	attempted, err := s.setRepo.CountAttempted(ctx, userID, setIDs)
	if err != nil {
		return nil, fmt.Errorf("counting attempted problems: %w", err)
	}

	result := make([]dto.ProblemSetDTO, len(sets))
	for i, set := range sets {
		result[i] = setToDTO(set, totals[set.Id], attempted[set.Id])
	}
	return result, nil
}

func (s *problemService) GetProblems(ctx context.Context, userID, problemSetID uuid.UUID) ([]dto.ProblemDTO, error) {
	set, err := s.setRepo.FindByID(ctx, problemSetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Problem set not found")
		}
		return nil, fmt.Errorf("loading problem set: %w", err)
	}
	if err := RequireOwner("problem set", set.UserID, userID); err != nil {
		return nil, err
	}

	problems, err := s.problemRepo.FindBySetID(ctx, problemSetID)
	if err != nil {
		return nil, fmt.Errorf("listing problems: %w", err)
	}
	return s.annotateStatuses(ctx, userID, problems)
}

func (s *problemService) GetProblemDetail(ctx context.Context, userID, problemID uuid.UUID) (*dto.ProblemDetailDTO, error) {
	problem, err := s.problemRepo.FindByID(ctx, problemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Problem not found")
		}
		return nil, fmt.Errorf("loading problem: %w", err)
	}
	set, err := s.setRepo.FindByID(ctx, problem.SetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A problem whose owning set is gone is unreachable data.
			return nil, apperr.NotFound("Problem not found")
		}
		return nil, fmt.Errorf("loading owning set: %w", err)
	}
	if err := RequireOwner("problem", set.UserID, userID); err != nil {
		return nil, err
	}

	results, err := s.problemRepo.FindResults(ctx, problemID)
	if err != nil {
		return nil, fmt.Errorf("loading results: %w", err)
	}

	detail := &dto.ProblemDetailDTO{
		AuditDTO: dto.NewAuditDTO(problem.BaseModel),
		Content:  problem.Content,
		Type:     problem.Type,
		SetID:    problem.SetID,
		Order:    problem.Order,
		Results:  make([]dto.ProblemResultDTO, len(results)),
	}
	for i, r := range results {
		detail.Results[i] = resultToDTO(r)
	}

	answer, err := s.answerRepo.FindByUserAndProblem(ctx, userID, problemID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("loading user answer: %w", err)
		}
		return detail, nil
	}
	answerDTO := answerToDTO(*answer)
	detail.UserAnswer = &answerDTO

	// The free-text answer lives on UserAnswer; selections only make sense
	// for choice types.
	if problem.Type == model.Essay {
		return detail, nil
	}
	selected, err := s.answerRepo.SelectionIDs(ctx, answer.Id)
	if err != nil {
		return nil, fmt.Errorf("loading selections: %w", err)
	}
	detail.SelectedResultId = selected
	return detail, nil
}

func (s *problemService) GetIncorrectProblems(ctx context.Context, userID, problemSetID uuid.UUID) ([]dto.ProblemDTO, error) {
	set, err := s.setRepo.FindByID(ctx, problemSetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Problem set not found")
		}
		return nil, fmt.Errorf("loading problem set: %w", err)
	}
	if err := RequireOwner("problem set", set.UserID, userID); err != nil {
		return nil, err
	}

	problems, err := s.problemRepo.FindIncorrectBySet(ctx, userID, problemSetID)
	if err != nil {
		log.Error().Err(err).Str("setID", problemSetID.String()).Msg("Failed to list incorrect problems")
		return nil, fmt.Errorf("listing incorrect problems: %w", err)
	}
	return s.annotateStatuses(ctx, userID, problems)
}

func (s *problemService) annotateStatuses(ctx context.Context, userID uuid.UUID, problems []model.Problem) ([]dto.ProblemDTO, error) {
	problemIDs := make([]uuid.UUID, len(problems))
	for i, p := range problems {
		problemIDs[i] = p.Id
	}
	statuses, err := s.answerRepo.StatusByProblems(ctx, userID, problemIDs)
	if err != nil {
		return nil, fmt.Errorf("loading answer statuses: %w", err)
	}

	result := make([]dto.ProblemDTO, len(problems))
	for i, p := range problems {
		status, ok := statuses[p.Id]
		if !ok {
			status = model.Unattempted
		}
		result[i] = problemToDTO(p, status)
	}
	return result, nil
}

func setToDTO(set model.ProblemSet, total, attempted int64) dto.ProblemSetDTO {
	return dto.ProblemSetDTO{
		AuditDTO:          dto.NewAuditDTO(set.BaseModel),
		Title:             set.Title,
		Description:       set.Description,
		UserID:            set.UserID,
		TotalProblems:     total,
		AttemptedProblems: attempted,
	}
}

func problemToDTO(p model.Problem, status model.ProblemStatus) dto.ProblemDTO {
	return dto.ProblemDTO{
		AuditDTO: dto.NewAuditDTO(p.BaseModel),
		Content:  p.Content,
		Type:     p.Type,
		SetID:    p.SetID,
		Order:    p.Order,
		Status:   status,
	}
}

func resultToDTO(r model.ProblemResult) dto.ProblemResultDTO {
	return dto.ProblemResultDTO{
		AuditDTO:   dto.NewAuditDTO(r.BaseModel),
		ProblemID:  r.ProblemID,
		ResultType: r.ResultType,
		Content:    r.Content,
		Order:      r.Order,
		IsAnswer:   r.IsAnswer,
	}
}

func answerToDTO(a model.UserAnswer) dto.UserAnswerDTO {
	return dto.UserAnswerDTO{
		AuditDTO:     dto.NewAuditDTO(a.BaseModel),
		UserID:       a.UserID,
		ProblemID:    a.ProblemID,
		ProblemSetID: a.ProblemSetID,
		Status:       a.Status,
		TextAnswer:   a.TextAnswer,
		AnsweredAt:   a.AnsweredAt,
	}
}
