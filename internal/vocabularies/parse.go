package vocabularies

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RawEntry is one parsed workbook row: an abbreviation code with its
// expanded source-language and target-language phrases. Row is the
// 1-based row number in the workbook.
type RawEntry struct {
	Row        int    `json:"row"`
	Code       string `json:"code"`
	SourceText string `json:"source_text"`
	TargetText string `json:"target_text"`
}

// SkippedRow records a workbook row that could not be parsed as an entry.
type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ParseWorkbook extracts vocabulary entries from workbook bytes. The
// format is chosen by filename extension, falling back to content type.
// Structurally unusable rows are skipped and reported, never fatal; the
// parse only fails when the file itself cannot be read.
func ParseWorkbook(data []byte, filename, contentType string) ([]RawEntry, []SkippedRow, error) {
	switch workbookFormat(filename, contentType) {
	case "xlsx":
		return parseXLSX(data)
	case "csv":
		return parseCSV(data)
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

func workbookFormat(filename, contentType string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return "xlsx"
	case ".csv":
		return "csv"
	}

	switch contentType {
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return "xlsx"
	case "text/csv":
		return "csv"
	}

	return ""
}

func parseXLSX(data []byte) ([]RawEntry, []SkippedRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidFile)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	entries, skipped := collectEntries(rows)
	return entries, skipped, nil
}

func parseCSV(data []byte) ([]RawEntry, []SkippedRow, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
		}
		rows = append(rows, record)
	}

	entries, skipped := collectEntries(rows)
	return entries, skipped, nil
}

// collectEntries walks workbook rows in order, keeping each row with a
// code, source phrase, and target phrase in the first three columns.
// A leading header row is recognized by its first cell and dropped
// without a warning.
func collectEntries(rows [][]string) ([]RawEntry, []SkippedRow) {
	var entries []RawEntry
	var skipped []SkippedRow

	for i, row := range rows {
		num := i + 1

		if i == 0 && isHeaderRow(row) {
			continue
		}

		if isBlankRow(row) {
			continue
		}

		code := cell(row, 0)
		source := cell(row, 1)
		target := cell(row, 2)

		switch {
		case code == "":
			skipped = append(skipped, SkippedRow{Row: num, Reason: "missing code"})
		case source == "":
			skipped = append(skipped, SkippedRow{Row: num, Reason: "missing source phrase"})
		case target == "":
			skipped = append(skipped, SkippedRow{Row: num, Reason: "missing target phrase"})
		default:
			entries = append(entries, RawEntry{
				Row:        num,
				Code:       code,
				SourceText: source,
				TargetText: target,
			})
		}
	}

	return entries, skipped
}

func isHeaderRow(row []string) bool {
	first := strings.ToLower(cell(row, 0))
	return first == "code" || first == "abbreviation"
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
