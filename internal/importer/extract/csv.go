package extract

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// CSVExtractor reads one CSV file as a single table. Excel exports are
// tolerated: UTF-8 BOM prefixes and UTF-16 encodings are decoded, ragged
// rows are padded or truncated to the widest observed width.
type CSVExtractor struct{}

func (CSVExtractor) Extract(data []byte) ([]Table, error) {
	decoded, err := decodeToUTF8(data)
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	width := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		if len(row) > width {
			width = len(row)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	for i, row := range rows {
		if len(row) == width {
			continue
		}
		padded := make([]string, width)
		copy(padded, row)
		rows[i] = padded
	}
	return []Table{{Name: "csv", Rows: rows}}, nil
}

// decodeToUTF8 strips a UTF-8 BOM and converts UTF-16 input, returning plain
// UTF-8 bytes.
func decodeToUTF8(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[len(bomUTF8):], nil
	case bytes.HasPrefix(data, bomUTF16LE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, data)
		return out, err
	case bytes.HasPrefix(data, bomUTF16BE):
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, data)
		return out, err
	default:
		return data, nil
	}
}
