package vocabularies_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/kmoussa/dragoman/internal/vocabularies"
)

const sampleCSV = `code,source,target
DISP,cash dispenser,distributeur de billets
JAM,card jam,carte coincée

REPL,replaced the module,remplacement du module
,orphan source,orphan target
NOSRC,,cible sans source
NOTGT,source sans cible,
`

func sampleXLSX(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	rows := [][]string{
		{"code", "source", "target"},
		{"DISP", "cash dispenser", "distributeur de billets"},
		{"JAM", "card jam", "carte coincée"},
	}
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName error: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, value); err != nil {
				t.Fatalf("SetCellValue error: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	return buf.Bytes()
}

func TestParseWorkbookCSV(t *testing.T) {
	entries, skipped, err := vocabularies.ParseWorkbook([]byte(sampleCSV), "terms.csv", "text/csv")
	if err != nil {
		t.Fatalf("ParseWorkbook error: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}

	first := entries[0]
	if first.Row != 2 || first.Code != "DISP" || first.SourceText != "cash dispenser" || first.TargetText != "distributeur de billets" {
		t.Errorf("entries[0] = %+v, want row 2 DISP entry", first)
	}

	// the csv reader drops the blank line, so REPL is the fourth record
	if entries[2].Row != 4 || entries[2].Code != "REPL" {
		t.Errorf("entries[2] = %+v, want REPL at row 4", entries[2])
	}

	if len(skipped) != 3 {
		t.Fatalf("len(skipped) = %d, want 3", len(skipped))
	}

	wantReasons := map[int]string{
		5: "missing code",
		6: "missing source phrase",
		7: "missing target phrase",
	}
	for _, s := range skipped {
		if wantReasons[s.Row] != s.Reason {
			t.Errorf("skipped row %d reason = %q, want %q", s.Row, s.Reason, wantReasons[s.Row])
		}
	}
}

func TestParseWorkbookXLSX(t *testing.T) {
	data := sampleXLSX(t)

	entries, skipped, err := vocabularies.ParseWorkbook(
		data,
		"terms.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	)
	if err != nil {
		t.Fatalf("ParseWorkbook error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if len(skipped) != 0 {
		t.Errorf("skipped = %+v, want none", skipped)
	}
	if entries[0].Code != "DISP" || entries[1].Code != "JAM" {
		t.Errorf("codes = %q, %q, want DISP, JAM", entries[0].Code, entries[1].Code)
	}
}

func TestParseWorkbookFormatDetection(t *testing.T) {
	csvData := []byte("MISC,first entry,première entrée\n")

	t.Run("extension wins over content type", func(t *testing.T) {
		entries, _, err := vocabularies.ParseWorkbook(csvData, "terms.csv", "application/octet-stream")
		if err != nil {
			t.Fatalf("ParseWorkbook error: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("len(entries) = %d, want 1", len(entries))
		}
	})

	t.Run("content type fallback", func(t *testing.T) {
		entries, _, err := vocabularies.ParseWorkbook(csvData, "terms", "text/csv")
		if err != nil {
			t.Fatalf("ParseWorkbook error: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("len(entries) = %d, want 1", len(entries))
		}
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		_, _, err := vocabularies.ParseWorkbook(csvData, "terms.pdf", "application/pdf")
		if !errors.Is(err, vocabularies.ErrUnsupportedFormat) {
			t.Errorf("ParseWorkbook error = %v, want ErrUnsupportedFormat", err)
		}
	})
}

func TestParseWorkbookInvalidFiles(t *testing.T) {
	t.Run("corrupt xlsx", func(t *testing.T) {
		_, _, err := vocabularies.ParseWorkbook([]byte("not a zip archive"), "terms.xlsx", "")
		if !errors.Is(err, vocabularies.ErrInvalidFile) {
			t.Errorf("ParseWorkbook error = %v, want ErrInvalidFile", err)
		}
	})

	t.Run("malformed csv", func(t *testing.T) {
		_, _, err := vocabularies.ParseWorkbook([]byte("a,\"unterminated\nb,c"), "terms.csv", "")
		if !errors.Is(err, vocabularies.ErrInvalidFile) {
			t.Errorf("ParseWorkbook error = %v, want ErrInvalidFile", err)
		}
	})
}

func TestParseWorkbookHeaderHandling(t *testing.T) {
	t.Run("abbreviation header dropped", func(t *testing.T) {
		data := []byte("Abbreviation,Source,Target\nDISP,cash dispenser,distributeur\n")

		entries, skipped, err := vocabularies.ParseWorkbook(data, "terms.csv", "")
		if err != nil {
			t.Fatalf("ParseWorkbook error: %v", err)
		}
		if len(entries) != 1 || len(skipped) != 0 {
			t.Errorf("entries = %d, skipped = %d, want header silently dropped", len(entries), len(skipped))
		}
	})

	t.Run("data in first row kept", func(t *testing.T) {
		data := []byte("DISP,cash dispenser,distributeur\n")

		entries, _, err := vocabularies.ParseWorkbook(data, "terms.csv", "")
		if err != nil {
			t.Fatalf("ParseWorkbook error: %v", err)
		}
		if len(entries) != 1 || entries[0].Row != 1 {
			t.Errorf("entries = %+v, want first row kept as data", entries)
		}
	})

	t.Run("header only yields no entries", func(t *testing.T) {
		data := []byte("code,source,target\n")

		entries, skipped, err := vocabularies.ParseWorkbook(data, "terms.csv", "")
		if err != nil {
			t.Fatalf("ParseWorkbook error: %v", err)
		}
		if len(entries) != 0 || len(skipped) != 0 {
			t.Errorf("entries = %d, skipped = %d, want nothing", len(entries), len(skipped))
		}
	})
}

func TestParseWorkbookWhitespace(t *testing.T) {
	data := []byte("  DISP  ,  cash dispenser  ,  distributeur  \n")

	entries, _, err := vocabularies.ParseWorkbook(data, "terms.csv", "")
	if err != nil {
		t.Fatalf("ParseWorkbook error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Code != "DISP" || e.SourceText != "cash dispenser" || e.TargetText != "distributeur" {
		t.Errorf("entry = %+v, want trimmed cells", e)
	}
}
