// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tealeg/xlsx/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Row is one spreadsheet data row keyed by header name.
type Row map[string]string

// Get returns the cell under column, or "" when the column or cell is absent.
func (r Row) Get(column string) string {
	return r[column]
}

// ReadOptions selects how a spreadsheet is read.
type ReadOptions struct {
	// Sheet names the XLSX sheet to read. Empty selects the first sheet.
	Sheet string
}

// ReadRows reads a spreadsheet with a header row. Files ending in .xlsx are
// read as workbooks; anything else is treated as UTF-8 CSV with an optional
// byte-order mark. A row of empty cells after the header is a data row in
// both formats, so an XLSX file and its CSV export number rows alike.
func ReadRows(path string, opts ReadOptions) ([]Row, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return readCSV(f)
}

func readCSV(r io.Reader) ([]Row, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	rows := []Row{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, zipRow(header, record))
	}
	return rows, nil
}

func readXLSX(path string, opts ReadOptions) ([]Row, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}

	sheet, err := pickSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	var header []string
	rows := []Row{}
	for _, row := range sheet.Rows {
		if row == nil {
			continue
		}
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			if cell != nil {
				cells[i] = cell.String()
			}
		}
		if header == nil {
			if !isBlank(cells) {
				header = cells
			}
			continue
		}
		rows = append(rows, zipRow(header, cells))
	}
	return rows, nil
}

func pickSheet(f *xlsx.File, name string) (*xlsx.Sheet, error) {
	if name != "" {
		sheet, ok := f.Sheet[name]
		if !ok {
			return nil, fmt.Errorf("sheet %q not found", name)
		}
		return sheet, nil
	}
	if len(f.Sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.Sheets[0], nil
}

// zipRow pairs header names with cells. Short rows leave trailing columns
// out; extra cells are ignored. A repeated header keeps the last value.
func zipRow(header, cells []string) Row {
	row := make(Row, len(header))
	for i, col := range header {
		if i < len(cells) {
			row[col] = cells[i]
		}
	}
	return row
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
