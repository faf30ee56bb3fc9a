package extract

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestXLSXExtract(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Distribuidora del Norte"},
		{"Clave", "Precio", "Existencia"},
		{"BX-100", 125.5, 4},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.MergeCell(sheet, "A1", "C1"); err != nil {
		t.Fatalf("merge: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	tables, err := XLSXExtractor{}.Extract(buf.Bytes())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("tables = %d, want 1", len(tables))
	}
	grid := tables[0].Rows

	// merged banner replicated across its span
	if grid[0][0] != "Distribuidora del Norte" || grid[0][2] != "Distribuidora del Norte" {
		t.Fatalf("merged row = %v", grid[0])
	}
	if grid[1][0] != "Clave" || grid[1][1] != "Precio" {
		t.Fatalf("header row = %v", grid[1])
	}
	if grid[2][0] != "BX-100" || grid[2][1] != "125.5" || grid[2][2] != "4" {
		t.Fatalf("data row = %v", grid[2])
	}
}

func TestXLSXExtractSkipsEmptySheets(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Clave", "Precio"}); err != nil {
		t.Fatalf("set row: %v", err)
	}
	if _, err := f.NewSheet("Vacía"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	tables, err := XLSXExtractor{}.Extract(buf.Bytes())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(tables) != 1 || tables[0].Name != sheet {
		t.Fatalf("tables = %+v, want only %q", tables, sheet)
	}
}
