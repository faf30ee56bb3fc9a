package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a supported feed format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// UnsupportedFormatError reports a file extension no extractor handles.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported feed format: %q (use .xlsx, .csv or .pdf)", e.Ext)
}

// ParseFormat validates a configured format override value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unknown format override %q", s)
}

// Route selects an extractor for a filename. A non-empty forced format (the
// per-supplier override) wins over the extension rule. Pure dispatch.
func Route(filename string, forced Format) (Extractor, error) {
	if forced != "" {
		return extractorFor(forced)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return extractorFor(FormatXLSX)
	case ".csv":
		return extractorFor(FormatCSV)
	case ".pdf":
		return extractorFor(FormatPDF)
	default:
		return nil, &UnsupportedFormatError{Ext: ext}
	}
}

func extractorFor(f Format) (Extractor, error) {
	switch f {
	case FormatXLSX:
		return XLSXExtractor{}, nil
	case FormatCSV:
		return CSVExtractor{}, nil
	case FormatPDF:
		return PDFExtractor{}, nil
	default:
		return nil, &UnsupportedFormatError{Ext: string(f)}
	}
}
