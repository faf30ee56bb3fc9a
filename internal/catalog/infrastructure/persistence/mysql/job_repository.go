package mysql

import (
	"context"

	"github.com/norteparts/catalogsync/internal/catalog/domain"
	"gorm.io/gorm"
)

type importJobRepository struct{ db *gorm.DB }

func (r *importJobRepository) Create(ctx context.Context, job *domain.ImportJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *importJobRepository) Update(ctx context.Context, job *domain.ImportJob) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *importJobRepository) GetByID(ctx context.Context, id uint) (*domain.ImportJob, error) {
	var j domain.ImportJob
	if err := r.db.WithContext(ctx).First(&j, id).Error; err != nil {
		return nil, err
	}
	return &j, nil
}
