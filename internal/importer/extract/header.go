package extract

import "strings"

// HeaderConfig parameterizes the smart header search. Keyword vocabulary is
// supplied by the caller so tests and suppliers can tune it without touching
// package state.
type HeaderConfig struct {
	// ScanRows bounds how deep the search looks for a header row.
	ScanRows int
	// Keywords is the price/stock/identifier/currency vocabulary a header
	// must touch to be accepted.
	Keywords []string
	// MaxUnnamedRatio rejects candidates with too many blank labels.
	MaxUnnamedRatio float64
}

// DefaultHeaderConfig applies the documented thresholds.
func DefaultHeaderConfig(keywords []string) HeaderConfig {
	return HeaderConfig{
		ScanRows:        20,
		Keywords:        keywords,
		MaxUnnamedRatio: 0.6,
	}
}

// Header is a resolved header: normalized labels in column order plus the
// index of the first data row.
type Header struct {
	Labels   []string
	DataFrom int
}

// ResolveHeader locates the true header row of a table, tolerating
// decorative rows above it. Supplier sheets never guarantee the header sits
// at row 0, so three passes run in order of preference: single row,
// adjacent-pair composite (two-row headers), then a plain keyword scan of
// the row text. A false result means the table must be skipped, which is a
// per-sheet condition, not a fatal one.
func ResolveHeader(t Table, cfg HeaderConfig) (Header, bool) {
	if cfg.ScanRows <= 0 {
		cfg.ScanRows = 20
	}
	if cfg.MaxUnnamedRatio <= 0 {
		cfg.MaxUnnamedRatio = 0.6
	}
	limit := cfg.ScanRows
	if limit > len(t.Rows) {
		limit = len(t.Rows)
	}

	// Pass 1: each candidate row as a single-row header.
	for i := 0; i < limit; i++ {
		labels := normalizeRow(t.Rows[i])
		if cfg.accepts(labels) && i+1 <= len(t.Rows) {
			return Header{Labels: labels, DataFrom: i + 1}, true
		}
	}

	// Pass 2: adjacent row pairs composed per column, for sheets that stack
	// a unit/category row above the field names.
	for i := 0; i+1 < limit; i++ {
		labels := composeRows(t.Rows[i], t.Rows[i+1])
		if cfg.accepts(labels) && i+2 <= len(t.Rows) {
			return Header{Labels: labels, DataFrom: i + 2}, true
		}
	}

	// Pass 3: keyword occurrence in the concatenated row text with a data
	// row following.
	for i := 0; i < limit; i++ {
		text := NormalizeLabel(strings.Join(t.Rows[i], " "))
		if text == "" || !containsAny(text, cfg.Keywords) {
			continue
		}
		if i+1 < len(t.Rows) {
			return Header{Labels: normalizeRow(t.Rows[i]), DataFrom: i + 1}, true
		}
	}

	return Header{}, false
}

// DataRows materializes the rows under the header as maps of normalized
// label to raw cell. Columns without a label are dropped; for duplicate
// labels the first column wins. Fully empty rows are elided.
func (h Header) DataRows(t Table) []map[string]string {
	var out []map[string]string
	for i := h.DataFrom; i < len(t.Rows); i++ {
		row := t.Rows[i]
		record := make(map[string]string, len(h.Labels))
		empty := true
		for c, label := range h.Labels {
			if label == "" || c >= len(row) {
				continue
			}
			if _, seen := record[label]; seen {
				continue
			}
			record[label] = row[c]
			if strings.TrimSpace(row[c]) != "" {
				empty = false
			}
		}
		if !empty {
			out = append(out, record)
		}
	}
	return out
}

func (cfg HeaderConfig) accepts(labels []string) bool {
	if len(labels) == 0 {
		return false
	}
	unnamed := 0
	keyword := false
	for _, l := range labels {
		if l == "" {
			unnamed++
			continue
		}
		if !keyword && containsAny(l, cfg.Keywords) {
			keyword = true
		}
	}
	ratio := float64(unnamed) / float64(len(labels))
	return ratio < cfg.MaxUnnamedRatio && keyword
}

func normalizeRow(row []string) []string {
	labels := make([]string, len(row))
	for i, cell := range row {
		labels[i] = NormalizeLabel(cell)
	}
	return labels
}

func composeRows(top, bottom []string) []string {
	width := len(top)
	if len(bottom) > width {
		width = len(bottom)
	}
	labels := make([]string, width)
	for c := 0; c < width; c++ {
		var a, b string
		if c < len(top) {
			a = top[c]
		}
		if c < len(bottom) {
			b = bottom[c]
		}
		labels[c] = NormalizeLabel(strings.TrimSpace(a + " " + b))
	}
	return labels
}

func containsAny(label string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(label, kw) {
			return true
		}
	}
	return false
}
