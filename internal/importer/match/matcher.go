// Package match resolves normalized feed records to canonical products.
// Two strategies exist behind one interface: the catalog matcher walks
// GTIN → MPN → name tokens, and the static-index matcher resolves purely
// from the identifier table built once per run.
package match

import (
	"context"
	"strings"

	"github.com/norteparts/catalogsync/internal/catalog/domain"
	"github.com/norteparts/catalogsync/internal/importer/normalize"
)

// Matcher resolves a record to an existing product, (nil, nil) when nothing
// matches.
type Matcher interface {
	Match(ctx context.Context, rec normalize.Record) (*domain.Product, error)
}

// NameTokens splits a free-text product name into the matching tokens:
// whitespace-delimited (slashes count as whitespace), longer than two runes,
// at most the first four.
func NameTokens(name string) []string {
	fields := strings.Fields(strings.ReplaceAll(name, "/", " "))
	var tokens []string
	for _, f := range fields {
		if len([]rune(f)) <= 2 {
			continue
		}
		tokens = append(tokens, f)
		if len(tokens) == 4 {
			break
		}
	}
	return tokens
}
