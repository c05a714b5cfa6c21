package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/qtcyy/practice-system/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserAnswerRepository interface {
	FindByUserAndProblem(ctx context.Context, userID, problemID uuid.UUID) (*model.UserAnswer, error)
	StatusByProblems(ctx context.Context, userID uuid.UUID, problemIDs []uuid.UUID) (map[uuid.UUID]model.ProblemStatus, error)
	SelectionIDs(ctx context.Context, userAnswerID uuid.UUID) ([]uuid.UUID, error)
	Upsert(ctx context.Context, answer *model.UserAnswer, selectedIDs []uuid.UUID) error
}

type userAnswerRepository struct {
	db *gorm.DB
}

func NewUserAnswerRepository(db *gorm.DB) UserAnswerRepository {
	return &userAnswerRepository{db: db}
}

func (r *userAnswerRepository) FindByUserAndProblem(ctx context.Context, userID, problemID uuid.UUID) (*model.UserAnswer, error) {
	var answer model.UserAnswer
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND problem_id = ?", userID, problemID).
		First(&answer).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *userAnswerRepository) StatusByProblems(ctx context.Context, userID uuid.UUID, problemIDs []uuid.UUID) (map[uuid.UUID]model.ProblemStatus, error) {
	statuses := make(map[uuid.UUID]model.ProblemStatus, len(problemIDs))
	if len(problemIDs) == 0 {
		return statuses, nil
	}
	var answers []model.UserAnswer
	err := r.db.WithContext(ctx).
		Select("problem_id", "status").
		Where("user_id = ? AND problem_id IN ?", userID, problemIDs).
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	for _, a := range answers {
		statuses[a.ProblemID] = a.Status
	}
	return statuses, nil
}

func (r *userAnswerRepository) SelectionIDs(ctx context.Context, userAnswerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.UserAnswerSelection{}).
		Where("user_answer_id = ?", userAnswerID).
		Pluck("problem_result_id", &ids).Error
	return ids, err
}

// Upsert stores the user's current answer for a problem as one transaction:
// a single conditional insert keyed on idx_user_answers_user_problem (so two
// racing first submissions cannot produce two rows), then full replacement
// of the selection set. On the update path the existing row keeps its
// identity, CreateAt and CreateBy; answer is overwritten with the stored row.
func (r *userAnswerRepository) Upsert(ctx context.Context, answer *model.UserAnswer, selectedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		answer.AnsweredAt = now

		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "problem_id"}, {Name: "is_deleted"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"status":         answer.Status,
				"text_answer":    answer.TextAnswer,
				"problem_set_id": answer.ProblemSetID,
				"answered_at":    now,
				"update_at":      now,
				"update_by":      answer.UpdateBy,
				"version":        gorm.Expr("user_answers.version + 1"),
			}),
		}).Create(answer).Error
		if err != nil {
			return err
		}

		// The insert id is discarded when the conflict branch ran; read the
		// row that actually holds the answer.
		var saved model.UserAnswer
		if err := tx.Where("user_id = ? AND problem_id = ?", answer.UserID, answer.ProblemID).
			First(&saved).Error; err != nil {
			return err
		}
		*answer = saved

		// Replace selections: soft-delete the old set, insert the new one.
		err = tx.Model(&model.UserAnswerSelection{}).
			Where("user_answer_id = ?", saved.Id).
			Updates(map[string]interface{}{"is_deleted": 1, "update_by": saved.UserID}).Error
		if err != nil {
			return err
		}

		if len(selectedIDs) == 0 {
			return nil
		}
		selections := make([]model.UserAnswerSelection, 0, len(selectedIDs))
		for _, resultID := range selectedIDs {
			selections = append(selections, model.UserAnswerSelection{
				BaseModel:       model.BaseModel{CreateBy: &saved.UserID, UpdateBy: &saved.UserID},
				UserAnswerID:    saved.Id,
				ProblemResultID: resultID,
			})
		}
		return tx.Create(&selections).Error
	})
}
