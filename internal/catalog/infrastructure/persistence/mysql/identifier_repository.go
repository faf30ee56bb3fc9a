package mysql

import (
	"context"
	"fmt"

	"github.com/norteparts/catalogsync/internal/catalog/domain"
	"gorm.io/gorm"
)

type identifierRepository struct{ db *gorm.DB }

func (r *identifierRepository) Create(ctx context.Context, identifier *domain.ProductIdentifier) error {
	err := r.db.WithContext(ctx).Create(identifier).Error
	if isDuplicate(err) {
		return fmt.Errorf("%w: %s=%q", domain.ErrIdentifierExists, identifier.Kind, identifier.Value)
	}
	return err
}

func (r *identifierRepository) ListAll(ctx context.Context) ([]domain.ProductIdentifier, error) {
	var identifiers []domain.ProductIdentifier
	err := r.db.WithContext(ctx).Order("id").Find(&identifiers).Error
	return identifiers, err
}
