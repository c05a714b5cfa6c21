package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/qtcyy/practice-system/internal/model"
	"gorm.io/gorm"
)

type ProblemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Problem, error)
	FindBySetID(ctx context.Context, setID uuid.UUID) ([]model.Problem, error)
	FindIncorrectBySet(ctx context.Context, userID, setID uuid.UUID) ([]model.Problem, error)
	FindResults(ctx context.Context, problemID uuid.UUID) ([]model.ProblemResult, error)
	FindCorrectResultIDs(ctx context.Context, problemID uuid.UUID) ([]uuid.UUID, error)
}

type problemRepository struct {
	db *gorm.DB
}

func NewProblemRepository(db *gorm.DB) ProblemRepository {
	return &problemRepository{db: db}
}

func (r *problemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Problem, error) {
	var problem model.Problem
	if err := r.db.WithContext(ctx).First(&problem, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &problem, nil
}

func (r *problemRepository) FindBySetID(ctx context.Context, setID uuid.UUID) ([]model.Problem, error) {
	var problems []model.Problem
	err := r.db.WithContext(ctx).
		Where("set_id = ?", setID).
		Order("\"order\" ASC").
		Find(&problems).Error
	return problems, err
}

// FindIncorrectBySet returns the set's problems whose current answer by the
// user is Incorrect or PartiallyCorrect, in display order.
func (r *problemRepository) FindIncorrectBySet(ctx context.Context, userID, setID uuid.UUID) ([]model.Problem, error) {
	var problems []model.Problem
	err := r.db.WithContext(ctx).
		Joins("JOIN user_answers ON user_answers.problem_id = problems.id AND user_answers.is_deleted = 0").
		Where("problems.set_id = ? AND user_answers.user_id = ? AND user_answers.status IN ?",
			setID, userID, []model.ProblemStatus{model.Incorrect, model.PartiallyCorrect}).
		Order("problems.\"order\" ASC").
		Find(&problems).Error
	return problems, err
}

func (r *problemRepository) FindResults(ctx context.Context, problemID uuid.UUID) ([]model.ProblemResult, error) {
	var results []model.ProblemResult
	err := r.db.WithContext(ctx).
		Where("problem_id = ?", problemID).
		Order("\"order\" ASC").
		Find(&results).Error
	return results, err
}

func (r *problemRepository) FindCorrectResultIDs(ctx context.Context, problemID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.ProblemResult{}).
		Where("problem_id = ? AND is_answer = ?", problemID, true).
		Order("\"order\" ASC").
		Pluck("id", &ids).Error
	return ids, err
}
