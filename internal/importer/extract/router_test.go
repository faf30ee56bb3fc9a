package extract

import (
	"errors"
	"testing"
)

func TestRouteByExtension(t *testing.T) {
	cases := []struct {
		filename string
		want     interface{}
	}{
		{"lista.xlsx", XLSXExtractor{}},
		{"Lista.CSV", CSVExtractor{}},
		{"precios.pdf", PDFExtractor{}},
	}
	for _, c := range cases {
		got, err := Route(c.filename, "")
		if err != nil {
			t.Fatalf("Route(%q): %v", c.filename, err)
		}
		if got != c.want {
			t.Errorf("Route(%q) = %T, want %T", c.filename, got, c.want)
		}
	}
}

func TestRouteUnsupported(t *testing.T) {
	_, err := Route("lista.xls", "")
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("err = %v, want UnsupportedFormatError", err)
	}
	if ufe.Ext != ".xls" {
		t.Fatalf("Ext = %q", ufe.Ext)
	}
}

func TestRouteForcedOverridesExtension(t *testing.T) {
	got, err := Route("lista.xlsx", FormatPDF)
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if _, ok := got.(PDFExtractor); !ok {
		t.Fatalf("forced format ignored, got %T", got)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(" PDF "); err != nil || f != FormatPDF {
		t.Fatalf("ParseFormat = %v, %v", f, err)
	}
	if _, err := ParseFormat("docx"); err == nil {
		t.Fatal("ParseFormat accepted an unknown format")
	}
}
