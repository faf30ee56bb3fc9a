package domain

import (
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// IdentifierKind classifies a product identifier value.
type IdentifierKind string

const (
	KindMPN    IdentifierKind = "MPN"
	KindUPCEAN IdentifierKind = "UPC_EAN"
	KindSKUAlt IdentifierKind = "SKU_ALT"
)

// 12-14 digits = UPC/EAN
var reUPCEAN = regexp.MustCompile(`^\d{12,14}$`)

var reAlpha = regexp.MustCompile(`[A-Za-z\-]`)

// ClassifyIdentifier types a raw identifier: 12-14 all-digit strings are
// UPC/EAN, strings containing a letter or hyphen are MPN, everything else is
// an alternate SKU.
func ClassifyIdentifier(raw string) IdentifierKind {
	val := strings.TrimSpace(raw)
	if reUPCEAN.MatchString(val) {
		return KindUPCEAN
	}
	if reAlpha.MatchString(val) {
		return KindMPN
	}
	return KindSKUAlt
}

// ProductIdentifier is a typed alias pointing at one product. The
// (kind, value) pair is globally unique; it feeds the static-index matching
// strategy.
type ProductIdentifier struct {
	gorm.Model
	ProductID uint           `gorm:"column:product_id;index;not null"`
	Kind      IdentifierKind `gorm:"column:kind;type:varchar(16);not null;uniqueIndex:idx_identifier_kind_value"`
	Value     string         `gorm:"column:value;type:varchar(64);not null;uniqueIndex:idx_identifier_kind_value"`
}

func (ProductIdentifier) TableName() string { return "product_identifiers" }
