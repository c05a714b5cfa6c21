package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/qtcyy/practice-system/internal/model"
	"gorm.io/gorm"
)

type ProblemSetRepository interface {
	Create(ctx context.Context, set *model.ProblemSet) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ProblemSet, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]model.ProblemSet, error)
	CountProblems(ctx context.Context, setIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	CountAttempted(ctx context.Context, userID uuid.UUID, setIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

type problemSetRepository struct {
	db *gorm.DB
}

func NewProblemSetRepository(db *gorm.DB) ProblemSetRepository {
	return &problemSetRepository{db: db}
}

func (r *problemSetRepository) Create(ctx context.Context, set *model.ProblemSet) error {
	return r.db.WithContext(ctx).Create(set).Error
}

func (r *problemSetRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ProblemSet, error) {
	var set model.ProblemSet
	if err := r.db.WithContext(ctx).First(&set, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *problemSetRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]model.ProblemSet, error) {
	var sets []model.ProblemSet
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("update_at DESC").
		Find(&sets).Error
	return sets, err
}

type setCount struct {
	SetID uuid.UUID
	Count int64
}

func (r *problemSetRepository) CountProblems(ctx context.Context, setIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if len(setIDs) == 0 {
		return map[uuid.UUID]int64{}, nil
	}
	var rows []setCount
	err := r.db.WithContext(ctx).Model(&model.Problem{}).
		Select("set_id AS set_id, COUNT(*) AS count").
		Where("set_id IN ?", setIDs).
		Group("set_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return countsToMap(rows), nil
}

// CountAttempted counts the user's answers per set; one UserAnswer per
// problem, so this is the attempted-problem count.
func (r *problemSetRepository) CountAttempted(ctx context.Context, userID uuid.UUID, setIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if len(setIDs) == 0 {
		return map[uuid.UUID]int64{}, nil
	}
	var rows []setCount
	err := r.db.WithContext(ctx).Model(&model.UserAnswer{}).
		Select("problem_set_id AS set_id, COUNT(*) AS count").
		Where("user_id = ? AND problem_set_id IN ?", userID, setIDs).
		Group("problem_set_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return countsToMap(rows), nil
}

func countsToMap(rows []setCount) map[uuid.UUID]int64 {
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.SetID] = row.Count
	}
	return counts
}
