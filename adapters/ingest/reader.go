// Package ingest reads CSV and Excel files into frames, coercing each
// column to the narrowest storage kind that parses every present cell.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"tabprof/domain/frame"
	"tabprof/internal"
	apperrors "tabprof/internal/errors"
)

// Reader handles reading Excel and CSV files
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	log      *internal.Logger
}

// NewReader creates a reader for the given path, dispatching on extension.
func NewReader(filePath string) *Reader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &Reader{filePath: filePath, fileType: fileType, log: internal.DefaultLogger}
}

// Read loads the file into a frame.
func (r *Reader) Read() (*frame.DataFrame, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, apperrors.IngestError(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath), err)
	}

	switch r.fileType {
	case "csv":
		f, err := os.Open(r.filePath)
		if err != nil {
			return nil, apperrors.IngestError("failed to open CSV file", err)
		}
		defer f.Close()
		return ReadCSV(f)
	case "xlsx":
		return r.readExcel()
	default:
		return nil, apperrors.InvalidInput("unsupported file type: " + r.fileType)
	}
}

// ReadCSV parses CSV content from a stream into a frame.
func ReadCSV(src io.Reader) (*frame.DataFrame, error) {
	rows, err := csv.NewReader(src).ReadAll()
	if err != nil {
		return nil, apperrors.IngestError("failed to read CSV content", err)
	}
	return fromRows(rows)
}

func (r *Reader) readExcel() (*frame.DataFrame, error) {
	start := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, apperrors.IngestError("failed to open Excel file", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.IngestError("failed to read sheet "+sheet, err)
	}
	r.log.Debug("[Reader] sheet %s read in %.2fms (%d rows)", sheet,
		float64(time.Since(start).Nanoseconds())/1e6, len(rows))

	return fromRows(rows)
}

func fromRows(rows [][]string) (*frame.DataFrame, error) {
	if len(rows) < 2 {
		return nil, apperrors.InvalidInput("input must have a header row and at least one data row")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	nrows := len(rows) - 1
	cols := make([]frame.Series, len(headers))
	for j, name := range headers {
		raw := make([]string, nrows)
		valid := make([]bool, nrows)
		for i := 0; i < nrows; i++ {
			cell := ""
			if j < len(rows[i+1]) {
				cell = strings.TrimSpace(rows[i+1][j])
			}
			raw[i] = cell
			valid[i] = cell != ""
		}
		cols[j] = coerceColumn(name, raw, valid)
	}

	df, err := frame.New(cols...)
	if err != nil {
		return nil, apperrors.IngestError("failed to assemble frame", err)
	}
	return df, nil
}

// coerceColumn tries int, float, bool and timestamp parses over the present
// cells, falling back to string storage.
func coerceColumn(name string, raw []string, valid []bool) frame.Series {
	if ints, ok := parseInts(raw, valid); ok {
		return frame.Ints(name, ints, valid)
	}
	if floats, ok := parseFloats(raw, valid); ok {
		return frame.Floats(name, floats, valid)
	}
	if bools, ok := parseBools(raw, valid); ok {
		return frame.Bools(name, bools, valid)
	}
	if times, ok := parseTimes(raw, valid); ok {
		return frame.Times(name, times, valid)
	}
	return frame.Strings(name, raw, valid)
}

func parseInts(raw []string, valid []bool) ([]int64, bool) {
	out := make([]int64, len(raw))
	any := false
	for i, cell := range raw {
		if !valid[i] {
			continue
		}
		v, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
		any = true
	}
	return out, any
}

func parseFloats(raw []string, valid []bool) ([]float64, bool) {
	out := make([]float64, len(raw))
	any := false
	for i, cell := range raw {
		if !valid[i] {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
		any = true
	}
	return out, any
}

func parseBools(raw []string, valid []bool) ([]bool, bool) {
	out := make([]bool, len(raw))
	any := false
	for i, cell := range raw {
		if !valid[i] {
			continue
		}
		switch strings.ToLower(cell) {
		case "true", "yes":
			out[i] = true
		case "false", "no":
			out[i] = false
		default:
			return nil, false
		}
		any = true
	}
	return out, any
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

func parseTimes(raw []string, valid []bool) ([]time.Time, bool) {
	out := make([]time.Time, len(raw))
	any := false
	for i, cell := range raw {
		if !valid[i] {
			continue
		}
		parsed := false
		for _, layout := range timeLayouts {
			if v, err := time.Parse(layout, cell); err == nil {
				out[i] = v
				parsed = true
				break
			}
		}
		if !parsed {
			return nil, false
		}
		any = true
	}
	return out, any
}
