package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// ColumnMap is the per-supplier explicit column mapping: canonical field
// name ("sku", "price", "stock", ...) to the column label used in that
// supplier's feeds. Stored as JSON.
type ColumnMap map[string]string

func (m ColumnMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *ColumnMap) Scan(value interface{}) error {
	if value == nil {
		*m = ColumnMap{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ColumnMap", value)
	}
	if len(raw) == 0 {
		*m = ColumnMap{}
		return nil
	}
	return json.Unmarshal(raw, m)
}

// Supplier is a feed source. ColumnMap overrides column auto-detection
// field by field; USDDefault marks suppliers whose feeds quote in USD
// without saying so.
type Supplier struct {
	gorm.Model
	Name       string    `gorm:"column:name;type:varchar(120);not null;uniqueIndex"`
	Slug       string    `gorm:"column:slug;type:varchar(120);not null;uniqueIndex"`
	Website    string    `gorm:"column:website;type:varchar(255)"`
	ColumnMap  ColumnMap `gorm:"column:column_map;type:json"`
	USDDefault bool      `gorm:"column:usd_default;not null;default:false"`
}

func (Supplier) TableName() string { return "suppliers" }
