// Package mysql implements the catalog repositories over GORM. The
// implementations only use portable SQL so tests can run them against the
// pure-Go sqlite driver.
package mysql

import (
	"errors"
	"strings"

	"github.com/norteparts/catalogsync/internal/catalog/domain"
	"gorm.io/gorm"
)

// New bundles repositories bound to one gorm handle. Passing a transaction
// handle scopes every repository to that transaction.
func New(db *gorm.DB) domain.Repositories {
	return domain.Repositories{
		Suppliers:   &supplierRepository{db: db},
		Products:    &productRepository{db: db},
		Identifiers: &identifierRepository{db: db},
		Offers:      &offerRepository{db: db},
		Jobs:        &importJobRepository{db: db},
	}
}

// isDuplicate detects uniqueness violations across drivers. GORM's
// TranslateError covers mysql; the sqlite fallback matches the raw message.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
