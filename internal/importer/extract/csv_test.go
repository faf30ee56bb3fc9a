package extract

import (
	"testing"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func TestCSVExtractUTF8BOM(t *testing.T) {
	data := append(append([]byte{}, bomUTF8...), []byte("Clave,Precio\nBX-100,125.50\n")...)
	tables, err := CSVExtractor{}.Extract(data)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(tables) != 1 || tables[0].Name != "csv" {
		t.Fatalf("tables = %+v", tables)
	}
	if tables[0].Rows[0][0] != "Clave" {
		t.Fatalf("BOM not stripped: %q", tables[0].Rows[0][0])
	}
}

func TestCSVExtractUTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, _, err := transform.Bytes(enc, []byte("Clave,Precio\nBX-100,125.50\n"))
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	tables, err := CSVExtractor{}.Extract(data)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	rows := tables[0].Rows
	if rows[1][0] != "BX-100" || rows[1][1] != "125.50" {
		t.Fatalf("utf-16 rows = %v", rows)
	}
}

func TestCSVExtractPadsRaggedRows(t *testing.T) {
	tables, err := CSVExtractor{}.Extract([]byte("Clave,Precio,Existencia\nBX-100,125.50\n"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	rows := tables[0].Rows
	if len(rows[1]) != 3 {
		t.Fatalf("row width = %d, want 3", len(rows[1]))
	}
	if rows[1][2] != "" {
		t.Fatalf("padding cell = %q", rows[1][2])
	}
}

func TestCSVExtractEmpty(t *testing.T) {
	tables, err := CSVExtractor{}.Extract(nil)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if tables != nil {
		t.Fatalf("tables = %v, want none", tables)
	}
}
