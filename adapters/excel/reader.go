package excel

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"agencydash/domain/analysis"
	"agencydash/internal"
	"agencydash/internal/errors"
)

// Reader reads Excel and CSV files into analyzer rows. It implements
// ports.RowSource.
type Reader struct {
	filePath  string
	sheetName string
	fileType  string // "xlsx" or "csv"
	log       *internal.Logger
}

// NewReader creates a reader for the given file. The file type is chosen by
// extension; anything that is not .csv is treated as a workbook.
func NewReader(filePath, sheetName string) *Reader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	return &Reader{
		filePath:  filePath,
		sheetName: sheetName,
		fileType:  fileType,
		log:       internal.DefaultLogger,
	}
}

// Read loads the file and returns its header row plus one Row per data row.
// Cells are trimmed strings; missing trailing cells are simply absent from
// the row.
func (r *Reader) Read(ctx context.Context) ([]string, []analysis.Row, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, nil, errors.NotFound("data file " + r.filePath)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var raw [][]string
	var err error
	switch r.fileType {
	case "csv":
		raw, err = r.readCSV()
	default:
		raw, err = r.readWorkbook()
	}
	if err != nil {
		return nil, nil, err
	}
	if len(raw) < 1 {
		return nil, nil, errors.InvalidInput("file has no header row")
	}

	headers, rows := splitRows(raw)
	r.log.Info("read %s file %s: %d columns, %d rows", r.fileType, r.filePath, len(headers), len(rows))
	return headers, rows, nil
}

func (r *Reader) readWorkbook() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open workbook %s", r.filePath)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheetName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", r.sheetName)
	}
	return rows, nil
}

func (r *Reader) readCSV() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open CSV file %s", r.filePath)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read CSV file %s", r.filePath)
	}
	return rows, nil
}

// splitRows turns raw string rows into a header list and keyed data rows.
func splitRows(raw [][]string) ([]string, []analysis.Row) {
	headers := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]analysis.Row, 0, len(raw)-1)
	for _, record := range raw[1:] {
		row := make(analysis.Row, len(headers))
		for j, h := range headers {
			if j < len(record) {
				row[h] = strings.TrimSpace(record[j])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return headers, rows
}
