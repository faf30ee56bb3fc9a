package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SupplierOffer is the per-supplier price/availability record for one
// canonical product. Uniqueness is enforced both per (supplier, native SKU)
// and per (supplier, product): a supplier has at most one offer row per
// identifier string and per catalog entity.
type SupplierOffer struct {
	gorm.Model
	SupplierID uint `gorm:"column:supplier_id;not null;uniqueIndex:idx_offer_supplier_sku;uniqueIndex:idx_offer_supplier_product"`
	ProductID  uint `gorm:"column:product_id;not null;uniqueIndex:idx_offer_supplier_product"`
	// SupplierSKU is the identifier exactly as it appears in the feed.
	SupplierSKU string `gorm:"column:supplier_sku;type:varchar(64);not null;uniqueIndex:idx_offer_supplier_sku"`
	// MPN/GTIN as seen in the feed; may diverge from the canonical product.
	MPN        string          `gorm:"column:mpn;type:varchar(64)"`
	GTIN       string          `gorm:"column:gtin;type:varchar(64)"`
	NameInFeed string          `gorm:"column:name_in_feed;type:varchar(255)"`
	Price      decimal.Decimal `gorm:"column:price;type:decimal(12,2);not null"`
	Currency   string          `gorm:"column:currency;type:varchar(10);not null;default:'MXN'"`
	Stock      int             `gorm:"column:stock;not null;default:0"`
	LastSeen   time.Time       `gorm:"column:last_seen;not null"`
}

func (SupplierOffer) TableName() string { return "supplier_offers" }
