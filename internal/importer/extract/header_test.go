package extract

import "testing"

var testKeywords = []string{"sku", "clave", "precio", "price", "existencia", "stock", "moneda"}

func TestResolveHeaderSkipsDecorativeRows(t *testing.T) {
	table := Table{
		Name: "lista",
		Rows: [][]string{
			{"DISTRIBUIDORA DEL NORTE S.A.", "", "", ""},
			{"Lista de precios agosto", "", "", ""},
			{"", "", "", ""},
			{"Clave", "Descripción", "Precio", "Existencia"},
			{"BX-100", "Procesador", "125.50", "4"},
		},
	}
	h, ok := ResolveHeader(table, DefaultHeaderConfig(testKeywords))
	if !ok {
		t.Fatal("header not resolved")
	}
	if h.DataFrom != 4 {
		t.Fatalf("DataFrom = %d, want 4", h.DataFrom)
	}
	want := []string{"clave", "descripcion", "precio", "existencia"}
	for i, l := range want {
		if h.Labels[i] != l {
			t.Fatalf("label[%d] = %q, want %q", i, h.Labels[i], l)
		}
	}
}

func TestResolveHeaderComposite(t *testing.T) {
	// group row stacked above the field names: composed per column
	table := Table{
		Rows: [][]string{
			{"", "Precio", "Precio", "", ""},
			{"Modelo", "Público", "Mayoreo", "Unidades", "Divisa"},
			{"BX-100", "100", "90", "4", "USD"},
		},
	}
	h, ok := ResolveHeader(table, DefaultHeaderConfig(testKeywords))
	if !ok {
		t.Fatal("composite header not resolved")
	}
	if h.DataFrom != 2 {
		t.Fatalf("DataFrom = %d, want 2", h.DataFrom)
	}
	if h.Labels[1] != "precio_publico" || h.Labels[2] != "precio_mayoreo" {
		t.Fatalf("composed labels = %v", h.Labels)
	}
}

func TestResolveHeaderRejectsKeywordlessTable(t *testing.T) {
	table := Table{
		Rows: [][]string{
			{"Columna A", "Columna B"},
			{"1", "2"},
		},
	}
	if _, ok := ResolveHeader(table, DefaultHeaderConfig(testKeywords)); ok {
		t.Fatal("accepted a table with no known vocabulary")
	}
}

func TestResolveHeaderNeedsDataBelow(t *testing.T) {
	// a keyword row at the very bottom has nothing to feed the pipeline
	table := Table{
		Rows: [][]string{
			{"precio", "", "", "", ""},
		},
	}
	if _, ok := ResolveHeader(table, DefaultHeaderConfig(testKeywords)); ok {
		t.Fatal("accepted a header with no data rows under it")
	}
}

func TestDataRows(t *testing.T) {
	table := Table{
		Rows: [][]string{
			{"Clave", "Precio", "Precio", ""},
			{"BX-100", "125.50", "110.00", "extra"},
			{"", "", "", ""},
			{"BX-200", "80"},
		},
	}
	h := Header{Labels: []string{"clave", "precio", "precio", ""}, DataFrom: 1}
	rows := h.DataRows(table)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2 (empty row elided)", len(rows))
	}
	// duplicate label: first column wins
	if rows[0]["precio"] != "125.50" {
		t.Fatalf("precio = %q, want first column", rows[0]["precio"])
	}
	// unlabeled column dropped
	if _, ok := rows[0][""]; ok {
		t.Fatal("unlabeled column leaked into the record")
	}
	// short row tolerated
	if rows[1]["clave"] != "BX-200" || rows[1]["precio"] != "80" {
		t.Fatalf("short row = %v", rows[1])
	}
}
