package extract

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// cellGapFactor times the font size is the horizontal gap that splits two
// text fragments into separate cells.
const cellGapFactor = 0.6

// PDFExtractor scans every page and reconstructs one table per page from the
// positioned text: fragments grouped by line, then split into cells at
// horizontal gaps. Tables with fewer than two rows are discarded since they
// cannot hold both a header and data.
type PDFExtractor struct{}

func (PDFExtractor) Extract(data []byte) ([]Table, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	var tables []Table
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("read pdf page %d: %w", pageNum, err)
		}
		table, ok := pageTable(fmt.Sprintf("page-%d", pageNum), rows)
		if !ok {
			continue
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// pageTable assembles one table from a page's positioned rows, top of the
// page first (Position is the Y coordinate, which grows upward). Pages with
// fewer than two usable rows yield no table.
func pageTable(name string, rows pdf.Rows) (Table, bool) {
	sorted := make(pdf.Rows, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position > sorted[j].Position })

	var grid [][]string
	for _, row := range sorted {
		cells := splitCells(row.Content)
		if len(cells) > 0 {
			grid = append(grid, cells)
		}
	}
	if len(grid) < 2 {
		return Table{}, false
	}
	return Table{Name: name, Rows: grid}, true
}

// splitCells orders a line's fragments by X and merges adjacent fragments
// into one cell unless the gap between them exceeds the font-scaled
// threshold.
func splitCells(content pdf.TextHorizontal) []string {
	texts := make([]pdf.Text, len(content))
	copy(texts, content)
	sort.Slice(texts, func(i, j int) bool { return texts[i].X < texts[j].X })

	var cells []string
	var current strings.Builder
	var lastEnd float64
	for i, t := range texts {
		if t.S == "" {
			continue
		}
		gap := t.FontSize * cellGapFactor
		if gap <= 0 {
			gap = 6
		}
		if i > 0 && current.Len() > 0 && t.X-lastEnd > gap {
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(t.S)
		lastEnd = t.X + t.W
	}
	if current.Len() > 0 {
		cells = append(cells, strings.TrimSpace(current.String()))
	}

	out := cells[:0]
	for _, c := range cells {
		if c != "" {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
