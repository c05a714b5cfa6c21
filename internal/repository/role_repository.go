package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/qtcyy/practice-system/internal/model"
	"gorm.io/gorm"
)

type RoleRepository interface {
	FindByName(ctx context.Context, roleName string) (*model.Role, error)
	Grant(ctx context.Context, userID, roleID uuid.UUID) error
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindByName(ctx context.Context, roleName string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("role_name = ?", roleName).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) Grant(ctx context.Context, userID, roleID uuid.UUID) error {
	return r.db.WithContext(ctx).Create(&model.UserRole{UserID: userID, RoleID: roleID}).Error
}
