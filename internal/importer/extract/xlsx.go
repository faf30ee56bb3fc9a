package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXExtractor reads every sheet of a workbook, values only (no formulas or
// styles). Merged cells are replicated across their span so multi-cell
// decorations above the header stay visible to the resolver.
type XLSXExtractor struct{}

func (XLSXExtractor) Extract(data []byte) ([]Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	var tables []Table
	for _, sheet := range f.GetSheetList() {
		grid, err := filledGrid(f, sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		if len(grid) == 0 {
			continue
		}
		tables = append(tables, Table{Name: sheet, Rows: grid})
	}
	return tables, nil
}

// filledGrid returns the sheet as a rectangular grid of trimmed cell values
// with merged-cell values copied into every covered position.
func filledGrid(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	maxCol := 0
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}

	grid := make([][]string, len(rows))
	for i := range grid {
		grid[i] = make([]string, maxCol)
		for j, cell := range rows[i] {
			if j < maxCol {
				grid[i][j] = strings.TrimSpace(cell)
			}
		}
	}

	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}
	for _, merge := range merges {
		val := strings.TrimSpace(merge.GetCellValue())
		startCol, startRow, err := excelize.CellNameToCoordinates(merge.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(merge.GetEndAxis())
		if err != nil {
			continue
		}
		for r := startRow - 1; r <= endRow-1 && r < len(grid); r++ {
			for c := startCol - 1; c <= endCol-1 && c < len(grid[r]); c++ {
				if r >= 0 && c >= 0 {
					grid[r][c] = val
				}
			}
		}
	}
	return grid, nil
}
