// Package normalize converts raw feed rows into typed records: column-role
// resolution, numeric coercion, identifier classification and conversion
// into the settlement currency.
package normalize

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/norteparts/catalogsync/internal/importer/extract"
)

// Record is one normalized feed row. Price is fixed-point two decimals in
// the settlement currency; Stock is clamped non-negative.
type Record struct {
	Identifier string
	Price      decimal.Decimal
	Stock      int
	MPN        string
	GTIN       string
	Name       string
	Brand      string
	Socket     string
	// Currency is the label as seen in the feed, empty when the column was
	// absent.
	Currency string
}

// HasKeys reports whether the record carries any identifying field at all.
func (r Record) HasKeys() bool {
	return r.Identifier != "" || r.MPN != "" || r.GTIN != "" || r.Name != ""
}

// Roles maps each resolved role to the normalized source column label.
type Roles map[Role]string

// Normalizer resolves column roles and coerces values. Candidate keyword
// sets and the currency table are injected configuration, not globals.
type Normalizer struct {
	candidates Candidates
	currencies CurrencyTable
}

func New(candidates Candidates, currencies CurrencyTable) *Normalizer {
	return &Normalizer{candidates: candidates, currencies: currencies}
}

// ResolveColumns determines which source column serves each role. An
// explicit per-supplier map wins field by field ("id" and "sku" are
// synonyms for the identifier column); any role it leaves out falls back to
// keyword auto-detection over the header labels.
func (n *Normalizer) ResolveColumns(labels []string, explicit map[string]string) Roles {
	roles := Roles{}
	for field, src := range explicit {
		role, ok := fieldRole(field)
		if !ok || strings.TrimSpace(src) == "" {
			continue
		}
		roles[role] = extract.NormalizeLabel(src)
	}
	for role, cands := range n.candidates {
		if _, done := roles[role]; done {
			continue
		}
		if label, ok := detectColumn(labels, cands); ok {
			roles[role] = label
		}
	}
	return roles
}

func fieldRole(field string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "id", "sku":
		return RoleID, true
	case "price":
		return RolePrice, true
	case "stock":
		return RoleStock, true
	case "mpn":
		return RoleMPN, true
	case "gtin":
		return RoleGTIN, true
	case "name":
		return RoleName, true
	case "brand":
		return RoleBrand, true
	case "socket":
		return RoleSocket, true
	case "currency":
		return RoleCurrency, true
	}
	return "", false
}

// detectColumn returns the first header label equal to a candidate, then
// the first containing one.
func detectColumn(labels []string, candidates []string) (string, bool) {
	for _, l := range labels {
		for _, c := range candidates {
			if l == c {
				return l, true
			}
		}
	}
	for _, l := range labels {
		if l == "" {
			continue
		}
		for _, c := range candidates {
			if strings.Contains(l, c) {
				return l, true
			}
		}
	}
	return "", false
}

// Pick reads a row value for a target label leniently: exact normalized
// match, then prefix in either direction (truncated headers), then
// containment. Two-phase on purpose; never implicit.
func Pick(row map[string]string, target string) string {
	if target == "" {
		return ""
	}
	if v, ok := row[target]; ok {
		return v
	}
	for k, v := range row {
		if strings.HasPrefix(k, target) || strings.HasPrefix(target, k) {
			return v
		}
	}
	for k, v := range row {
		if k == "" {
			continue
		}
		if strings.Contains(k, target) || strings.Contains(target, k) {
			return v
		}
	}
	return ""
}

// Options carries the per-run conversion parameters.
type Options struct {
	// Rate is settlement units per 1 USD.
	Rate decimal.Decimal
	// USDDefault applies the USD conversion when the row has no currency
	// label (feed formats known to quote in USD).
	USDDefault bool
}

// Row normalizes one raw row under resolved roles. A bad numeric cell
// degrades to zero instead of failing the row; feeds are noisy and one
// malformed cell must never abort a batch.
func (n *Normalizer) Row(row map[string]string, roles Roles, opts Options) Record {
	rec := Record{
		Identifier: strings.TrimSpace(Pick(row, roles[RoleID])),
		MPN:        strings.TrimSpace(Pick(row, roles[RoleMPN])),
		GTIN:       strings.TrimSpace(Pick(row, roles[RoleGTIN])),
		Name:       strings.TrimSpace(Pick(row, roles[RoleName])),
		Brand:      strings.TrimSpace(Pick(row, roles[RoleBrand])),
		Socket:     strings.TrimSpace(Pick(row, roles[RoleSocket])),
		Currency:   strings.TrimSpace(Pick(row, roles[RoleCurrency])),
	}

	price := ParseDecimal(Pick(row, roles[RolePrice]))
	rec.Price = n.ConvertPrice(price, rec.Currency, opts)

	if rec.Currency == "" {
		if opts.USDDefault {
			rec.Currency = "USD"
		} else {
			rec.Currency = n.currencies.Settlement
		}
	}

	rec.Stock = ParseStock(Pick(row, roles[RoleStock]))
	return rec
}

// HeaderKeywords exposes the vocabulary the header resolver needs.
func (n *Normalizer) HeaderKeywords() []string {
	return n.candidates.HeaderKeywords()
}

// ConvertPrice normalizes a price into the settlement currency: USD aliases
// (or an empty label under USDDefault) multiply by the exchange rate;
// everything else passes through. Always rounded to two decimals.
func (n *Normalizer) ConvertPrice(price decimal.Decimal, currency string, opts Options) decimal.Decimal {
	label := strings.ToLower(strings.TrimSpace(currency))
	usd := false
	switch {
	case label == "":
		usd = opts.USDDefault
	default:
		for _, alias := range n.currencies.USDAliases {
			if label == alias {
				usd = true
				break
			}
		}
	}
	if usd && !opts.Rate.IsZero() {
		price = price.Mul(opts.Rate)
	}
	price = price.Round(2)
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// ParseDecimal coerces a raw cell into a decimal, stripping currency
// symbols, letters and thousands separators first. Parse failure yields
// zero.
func ParseDecimal(raw string) decimal.Decimal {
	cleaned := cleanNumeric(raw)
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseStock coerces a stock cell into a non-negative int, accepting float
// spellings like "7.0".
func ParseStock(raw string) int {
	cleaned := cleanNumeric(raw)
	if cleaned == "" {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	stock := int(f)
	if stock < 0 {
		return 0
	}
	return stock
}

// cleanNumeric keeps digits, the decimal point and a leading minus;
// currency symbols, letters, spaces and comma separators are dropped.
func cleanNumeric(raw string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
