package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/optimisticlock"
	"gorm.io/plugin/soft_delete"
)

// BaseModel carries the audit columns shared by every persisted entity
// except UserRole. Version is the optimistic-concurrency token (starts at 1,
// +1 per successful mutation); IsDeleted is a flag soft delete excluded from
// normal queries by a standing filter.
type BaseModel struct {
	Id        uuid.UUID              `gorm:"primarykey;type:char(36)" json:"id"`
	CreateAt  time.Time              `gorm:"autoCreateTime" json:"createAt"`
	UpdateAt  time.Time              `gorm:"autoUpdateTime" json:"updateAt"`
	CreateBy  *uuid.UUID             `gorm:"type:char(36)" json:"createBy"`
	UpdateBy  *uuid.UUID             `gorm:"type:char(36)" json:"updateBy"`
	Version   optimisticlock.Version `json:"version"`
	IsDeleted soft_delete.DeletedAt  `gorm:"softDelete:flag" json:"isDeleted"`
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	return nil
}
