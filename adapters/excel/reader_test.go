package excel

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeTempCSV(t, "יצרן,סכום\nהראל,100\nמגדל,200\n")

	headers, rows, err := NewReader(path, "").Read(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(headers) != 2 || headers[0] != "יצרן" || headers[1] != "סכום" {
		t.Errorf("unexpected headers: %v", headers)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["יצרן"] != "הראל" || rows[1]["סכום"] != "200" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestReadCSVPadsShortRows(t *testing.T) {
	path := writeTempCSV(t, "name,amount\na,100\nb\n")

	headers, rows, err := NewReader(path, "").Read(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(headers) != 2 {
		t.Fatalf("unexpected headers: %v", headers)
	}

	// the short row still carries every schema key
	v, ok := rows[1]["amount"]
	if !ok {
		t.Fatal("missing cell must still be present in the row")
	}
	if v != "" {
		t.Errorf("missing cell must be empty, got %v", v)
	}
}

func TestReadCSVTrimsWhitespace(t *testing.T) {
	path := writeTempCSV(t, "name , amount\n a , 100 \n")

	headers, rows, err := NewReader(path, "").Read(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if headers[0] != "name" || headers[1] != "amount" {
		t.Errorf("headers must be trimmed, got %v", headers)
	}
	if rows[0]["name"] != "a" || rows[0]["amount"] != "100" {
		t.Errorf("cells must be trimmed, got %v", rows[0])
	}
}

func TestReadMissingFile(t *testing.T) {
	_, _, err := NewReader("/nowhere/missing.csv", "").Read(context.Background())
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestFileTypeByExtension(t *testing.T) {
	if NewReader("data.csv", "").fileType != "csv" {
		t.Error("expected csv file type")
	}
	if NewReader("data.XLSX", "").fileType != "xlsx" {
		t.Error("expected xlsx file type")
	}
	if NewReader("report.xlsx", "").sheetName != "Sheet1" {
		t.Error("expected default sheet name")
	}
}
