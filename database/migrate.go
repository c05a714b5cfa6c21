package database

import (
	"github.com/qtcyy/practice-system/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for all models, plus the
// composite unique index that backs the answer upsert. is_deleted is part
// of the key so a soft-deleted answer does not block a fresh submission.
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.UserRole{},
		&model.ProblemSet{},
		&model.Problem{},
		&model.ProblemResult{},
		&model.UserAnswer{},
		&model.UserAnswerSelection{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}

	err = db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_user_answers_user_problem
		 ON user_answers (user_id, problem_id, is_deleted)`,
	).Error
	if err != nil {
		log.Error().Err(err).Msg("Creating answer uniqueness index failed")
		return err
	}

	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// SeedRoles makes sure the two built-in roles exist.
func SeedRoles(db *gorm.DB) error {
	for _, name := range []string{model.RoleUser, model.RoleAdmin} {
		role := model.Role{RoleName: name}
		err := db.Where("role_name = ?", name).FirstOrCreate(&role).Error
		if err != nil {
			log.Error().Err(err).Str("role", name).Msg("Seeding role failed")
			return err
		}
	}
	log.Info().Msg("Roles seeded")
	return nil
}
