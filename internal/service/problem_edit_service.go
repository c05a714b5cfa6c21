package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/qtcyy/practice-system/internal/apperr"
	"github.com/qtcyy/practice-system/internal/dto"
	"github.com/qtcyy/practice-system/internal/model"
	"github.com/qtcyy/practice-system/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProblemEditService is the authoring side: creating sets and appending
// problems with their candidate results.
type ProblemEditService interface {
	NewProblemSet(ctx context.Context, userID uuid.UUID, req dto.NewProblemSetReq) (*dto.ProblemSetDTO, error)
	AddProblem(ctx context.Context, userID uuid.UUID, req dto.AddProblemReq) (*dto.AddProblemResp, error)
}

type problemEditService struct {
	db      *gorm.DB
	setRepo repository.ProblemSetRepository
}

func NewProblemEditService(db *gorm.DB, setRepo repository.ProblemSetRepository) ProblemEditService {
	return &problemEditService{db: db, setRepo: setRepo}
}

func (s *problemEditService) NewProblemSet(ctx context.Context, userID uuid.UUID, req dto.NewProblemSetReq) (*dto.ProblemSetDTO, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperr.Validation("Problem set title cannot be empty")
	}

	set := model.ProblemSet{
		BaseModel: model.BaseModel{CreateBy: &userID, UpdateBy: &userID},
		Title:     title,
		UserID:    &userID,
	}
	if err := s.setRepo.Create(ctx, &set); err != nil {
		return nil, fmt.Errorf("creating problem set: %w", err)
	}
	log.Info().Str("setID", set.Id.String()).Str("userID", userID.String()).Msg("Problem set created")

	result := setToDTO(set, 0, 0)
	return &result, nil
}

func (s *problemEditService) AddProblem(ctx context.Context, userID uuid.UUID, req dto.AddProblemReq) (*dto.AddProblemResp, error) {
	set, err := s.setRepo.FindByID(ctx, req.ProblemSetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Problem set not found")
		}
		return nil, fmt.Errorf("loading problem set: %w", err)
	}
	if err := RequireOwner("problem set", set.UserID, userID); err != nil {
		return nil, err
	}
	if err := validateNewProblem(req); err != nil {
		return nil, err
	}

	var problem model.Problem
	if err := copier.Copy(&problem, &req.Problem); err != nil {
		return nil, fmt.Errorf("mapping problem: %w", err)
	}
	problem.Content = strings.TrimSpace(problem.Content)
	problem.SetID = set.Id
	problem.CreateBy = &userID
	problem.UpdateBy = &userID

	results := make([]model.ProblemResult, len(req.Results))
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order int64
		err := tx.Model(&model.Problem{}).
			Where("set_id = ?", set.Id).
			Select(`COALESCE(MAX("order"), -1) + 1`).
			Scan(&order).Error
		if err != nil {
			return fmt.Errorf("computing next order: %w", err)
		}
		problem.Order = order
		if err := tx.Create(&problem).Error; err != nil {
			return fmt.Errorf("creating problem: %w", err)
		}
		for i, r := range req.Results {
			results[i] = model.ProblemResult{
				BaseModel:  model.BaseModel{CreateBy: &userID, UpdateBy: &userID},
				ProblemID:  problem.Id,
				ResultType: r.ResultType,
				Content:    r.Content,
				Order:      int64(i),
				IsAnswer:   r.IsAnswer,
			}
		}
		if err := tx.Create(&results).Error; err != nil {
			return fmt.Errorf("creating results: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("problemID", problem.Id.String()).
		Str("setID", set.Id.String()).
		Int64("order", problem.Order).
		Msg("Problem added")

	resp := &dto.AddProblemResp{
		Message: "Problem added successfully",
		Problem: problemToDTO(problem, model.Unattempted),
		Results: make([]dto.ProblemResultDTO, len(results)),
	}
	for i, r := range results {
		resp.Results[i] = resultToDTO(r)
	}
	return resp, nil
}

func validateNewProblem(req dto.AddProblemReq) error {
	if !req.Problem.Type.Valid() {
		return apperr.Validation("Unknown problem type")
	}
	if strings.TrimSpace(req.Problem.Content) == "" {
		return apperr.Validation("Problem content cannot be empty")
	}

	if req.Problem.Type == model.Essay {
		if len(req.Results) != 1 {
			return apperr.Validation("Essay problems must have exactly one reference answer")
		}
		ref := req.Results[0]
		if ref.ResultType != model.ResultText || !ref.IsAnswer {
			return apperr.Validation("Essay reference answer must be a text result marked as answer")
		}
		return nil
	}

	if len(req.Results) < 2 {
		return apperr.Validation("Choice problems must have at least two results")
	}
	answers := 0
	for _, r := range req.Results {
		if r.IsAnswer {
			answers++
		}
	}
	if answers == 0 {
		return apperr.Validation("Choice problems must mark at least one result as answer")
	}
	if req.Problem.Type != model.MultipleChoice && answers > 1 {
		return apperr.Validation("Only multiple choice problems may have several answers")
	}
	return nil
}
