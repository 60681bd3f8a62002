package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadTable picks a parser by file extension and returns the rows as maps
// keyed by column header. headerRow is 1-based; everything above it is
// ignored.
func ReadTable(r io.Reader, filename string, headerRow int) ([]map[string]string, error) {
	if headerRow < 1 {
		headerRow = 1
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return readXLSX(r, headerRow)
	case ".xls":
		return readXLS(r, headerRow)
	case ".csv":
		return readCSV(r, headerRow)
	default:
		return nil, fmt.Errorf("unsupported table format: %s", filename)
	}
}

// headerNames returns the header row, substituting "Column N" for blanks.
func headerNames(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 || idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// rowsToMaps converts the raw grid into records keyed by header, dropping
// rows that are entirely blank. Short rows map missing cells to "".
func rowsToMaps(rows [][]string, headers []string, headerRow int) []map[string]string {
	var out []map[string]string
	for r := headerRow; r < len(rows); r++ {
		rec := rows[r]
		m := make(map[string]string, len(headers))
		empty := true
		for c := 0; c < len(headers); c++ {
			var v string
			if c < len(rec) {
				v = rec[c]
			}
			m[headers[c]] = v
			if empty && strings.TrimSpace(v) != "" {
				empty = false
			}
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out
}
