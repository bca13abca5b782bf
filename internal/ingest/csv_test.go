// internal/ingest/csv_test.go
package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benchlens/benchlens/internal/metrics"
)

func TestParseMatrixCSV(t *testing.T) {
	data := `label,p01,p02,p03
gpt4o_quality,4.5,,3.0
gpt4o_energy_wh,0.8,NA,1.1
bogus,1,2,3
`
	rows, err := ParseMatrixCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseMatrixCSV error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	quality := rows[0]
	if quality.Label != "gpt4o_quality" {
		t.Fatalf("unexpected label: %q", quality.Label)
	}
	if v := quality.Values["p01"]; v == nil || *v != 4.5 {
		t.Fatalf("expected p01=4.5, got %v", v)
	}
	if quality.Values["p02"] != nil {
		t.Fatal("empty cell must be null")
	}

	energy := rows[1]
	if energy.Values["p02"] != nil {
		t.Fatal("NA cell must be null")
	}
	if v := energy.Values["p03"]; v == nil || *v != 1.1 {
		t.Fatalf("expected p03=1.1, got %v", v)
	}
}

func TestParseMatrixCSVRaggedRows(t *testing.T) {
	data := `label,p01,p02
m1_quality,4
m2_quality,1,2,3
`
	rows, err := ParseMatrixCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseMatrixCSV error: %v", err)
	}
	if rows[0].Values["p02"] != nil {
		t.Fatal("short row must yield null for the missing prompt")
	}
	if v := rows[1].Values["p02"]; v == nil || *v != 2 {
		t.Fatalf("expected p02=2, got %v", v)
	}
	if len(rows[1].Values) != 2 {
		t.Fatalf("extra cells beyond the header must be ignored, got %v", rows[1].Values)
	}
}

func TestParseMatrixCSVRejectsBadInput(t *testing.T) {
	if _, err := ParseMatrixCSV(strings.NewReader("")); err == nil {
		t.Fatal("empty input should fail")
	}
	if _, err := ParseMatrixCSV(strings.NewReader("label\nm1_quality\n")); err == nil {
		t.Fatal("header without prompt columns should fail")
	}
}

func TestReadMatrixCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.csv")
	content := "label,p01\nm1_quality,4.5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rows, err := ReadMatrixCSV(path)
	if err != nil {
		t.Fatalf("ReadMatrixCSV error: %v", err)
	}
	records := metrics.Reshape(rows, nil)
	if len(records) != 1 || records[0].Model != "m1" || records[0].Value != 4.5 {
		t.Fatalf("unexpected records: %+v", records)
	}

	if _, err := ReadMatrixCSV(filepath.Join(dir, "missing.csv")); err == nil {
		t.Fatal("missing file should fail")
	}
}
