package extract

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

func TestSplitCells(t *testing.T) {
	line := pdf.TextHorizontal{
		{S: "Clave", X: 10, W: 30, FontSize: 10},
		// close fragment, same cell
		{S: " interna", X: 41, W: 40, FontSize: 10},
		// wide gap, new cell
		{S: "Precio", X: 160, W: 35, FontSize: 10},
		{S: "Existencia", X: 300, W: 50, FontSize: 10},
	}
	cells := splitCells(line)
	want := []string{"Clave interna", "Precio", "Existencia"}
	if len(cells) != len(want) {
		t.Fatalf("cells = %v, want %v", cells, want)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("cells[%d] = %q, want %q", i, cells[i], want[i])
		}
	}
}

func TestSplitCellsUnorderedInput(t *testing.T) {
	line := pdf.TextHorizontal{
		{S: "Precio", X: 200, W: 35, FontSize: 10},
		{S: "Clave", X: 10, W: 30, FontSize: 10},
	}
	cells := splitCells(line)
	if len(cells) != 2 || cells[0] != "Clave" || cells[1] != "Precio" {
		t.Fatalf("cells = %v", cells)
	}
}

func TestPageTable(t *testing.T) {
	// rows arrive in stream order; Position grows upward, so the header at
	// the top of the page has the largest Y
	rows := pdf.Rows{
		{Position: 680, Content: pdf.TextHorizontal{
			{S: "BX-100", X: 50, W: 30, FontSize: 10},
			{S: "125.50", X: 200, W: 30, FontSize: 10},
		}},
		{Position: 700, Content: pdf.TextHorizontal{
			{S: "Clave", X: 50, W: 25, FontSize: 10},
			{S: "Precio", X: 200, W: 30, FontSize: 10},
		}},
	}
	table, ok := pageTable("page-1", rows)
	if !ok {
		t.Fatal("page with header and data discarded")
	}
	if table.Name != "page-1" || len(table.Rows) != 2 {
		t.Fatalf("table = %+v", table)
	}
	if table.Rows[0][0] != "Clave" || table.Rows[1][0] != "BX-100" {
		t.Fatalf("rows out of top-down order: %v", table.Rows)
	}
	if table.Rows[1][1] != "125.50" {
		t.Fatalf("data row = %v", table.Rows[1])
	}
}

func TestPageTableDiscardsSingleRowPage(t *testing.T) {
	rows := pdf.Rows{
		{Position: 700, Content: pdf.TextHorizontal{
			{S: "Página 1 de 1", X: 50, W: 60, FontSize: 10},
		}},
	}
	if _, ok := pageTable("page-1", rows); ok {
		t.Fatal("accepted a page that cannot hold header and data")
	}

	if _, ok := pageTable("page-2", nil); ok {
		t.Fatal("accepted an empty page")
	}
}

func TestSplitCellsEmpty(t *testing.T) {
	if cells := splitCells(pdf.TextHorizontal{{S: "  ", X: 0, W: 5, FontSize: 10}}); len(cells) != 0 {
		t.Fatalf("cells = %v, want none", cells)
	}
}
