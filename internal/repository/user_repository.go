package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/qtcyy/practice-system/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	RoleNameForUser(ctx context.Context, userID uuid.UUID) (string, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// RoleNameForUser returns the first role granted to the user, or "" when the
// user has none.
func (r *userRepository) RoleNameForUser(ctx context.Context, userID uuid.UUID) (string, error) {
	var roleName string
	err := r.db.WithContext(ctx).Model(&model.UserRole{}).
		Select("roles.role_name").
		Joins("JOIN roles ON roles.id = user_roles.role_id AND roles.is_deleted = 0").
		Where("user_roles.user_id = ?", userID).
		Limit(1).
		Scan(&roleName).Error
	return roleName, err
}
