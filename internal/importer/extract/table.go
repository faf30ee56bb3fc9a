// Package extract turns raw feed files (XLSX, CSV, PDF) into tables of raw
// string rows and locates the true header row inside them.
package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Table is one sheet (XLSX), file (CSV) or page table (PDF): rows of raw
// cells in source order, labels untouched.
type Table struct {
	Name string
	Rows [][]string
}

// Extractor produces the tables contained in one file. Extractors never
// mutate their input.
type Extractor interface {
	Extract(data []byte) ([]Table, error)
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeLabel folds a column label for comparisons: accents stripped,
// lower-cased, slashes treated as spaces, whitespace collapsed to single
// underscores. "UPC/EAN " and "upc_ean" normalize identically.
func NormalizeLabel(s string) string {
	if folded, _, err := transform.String(stripAccents, s); err == nil {
		s = folded
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "/", " ")
	return strings.Join(strings.Fields(s), "_")
}
