package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// Product is the deduplicated catalog entity multiple supplier offers point
// at. MPN and GTIN should be unique across products when present; that is a
// data-quality expectation, not a storage constraint, and the matcher treats
// the first hit as canonical.
type Product struct {
	gorm.Model
	Name        string `gorm:"column:name;type:varchar(200);not null"`
	Brand       string `gorm:"column:brand;type:varchar(100);index"`
	MPN         string `gorm:"column:mpn;type:varchar(64);index"`
	GTIN        string `gorm:"column:gtin;type:varchar(64);index"`
	Socket      string `gorm:"column:socket;type:varchar(64);index"`
	Description string `gorm:"column:description;type:text"`
	Slug        string `gorm:"column:slug;type:varchar(255);index"`
}

func (Product) TableName() string { return "products" }

// DeriveSlug builds the product slug from brand+MPN, falling back to GTIN
// and then the name.
func (p *Product) DeriveSlug() {
	switch {
	case p.MPN != "":
		p.Slug = Slugify(p.Brand + " " + p.MPN)
	case p.GTIN != "":
		p.Slug = Slugify(p.GTIN)
	default:
		p.Slug = Slugify(p.Name)
	}
}

var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify lower-cases, strips accents and collapses everything non
// alphanumeric into single hyphens.
func Slugify(s string) string {
	if folded, _, err := transform.String(asciiFold, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)
	var b strings.Builder
	prevHyphen := true
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
