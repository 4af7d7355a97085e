// Package excel reads an uploaded bonepile workbook into records.
// Parsing is streaming-free by design: uploads are capped by the HTTP body
// limit and a workbook is read fully from memory.
package excel

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"bonepiledash/internal/model"
)

// ErrInvalidFormat marks an unparseable workbook or a missing required column.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

const (
	fieldSN            = "sn"
	fieldPIC           = "pic"
	fieldResult        = "result"
	fieldNVDisposition = "nv_disposition"
	fieldIGSAction     = "igs_action"
	fieldIGSStatus     = "igs_status"
	fieldBPDuration    = "bp_duration"
)

// Header aliases per field, matched after normalization. The alias sets come
// from the worksheets seen in production; "IGS Action " ships with a trailing
// space, which normalization absorbs.
var columnAliases = map[string][]string{
	fieldSN:            {"sn", "serial number"},
	fieldPIC:           {"pic"},
	fieldResult:        {"result", "status"},
	fieldNVDisposition: {"nv disposition", "nv_disposition"},
	fieldIGSAction:     {"igs action", "igs_action"},
	fieldIGSStatus:     {"igs status", "igs_status"},
	fieldBPDuration:    {"bp_duration", "bp duration"},
}

var requiredFields = []string{
	fieldSN, fieldPIC, fieldResult, fieldNVDisposition, fieldIGSAction, fieldIGSStatus,
}

// Sheet is the parsed result: the worksheet name and its rows in order.
type Sheet struct {
	Name    string
	Records []model.Record
}

// AllowedFile reports whether the filename carries an accepted spreadsheet
// extension. Legacy .xls is accepted here and rejected at parse time if the
// content is not OOXML.
func AllowedFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

func normalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(h)), " ")
}

// Parse reads the first worksheet of an xlsx workbook into records.
// It fails with ErrInvalidFormat when the workbook cannot be opened or a
// required column is missing.
func Parse(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidFormat)
	}
	name := sheets[0]

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrInvalidFormat, name, err)
	}

	headerIdx := -1
	for i, row := range rows {
		if !rowEmpty(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrInvalidFormat, name)
	}

	cols, err := resolveColumns(rows[headerIdx])
	if err != nil {
		return nil, err
	}

	var records []model.Record
	for _, row := range rows[headerIdx+1:] {
		r := model.Record{
			SN:            cell(row, cols[fieldSN]),
			PIC:           cell(row, cols[fieldPIC]),
			Result:        cell(row, cols[fieldResult]),
			NVDisposition: cell(row, cols[fieldNVDisposition]),
			IGSAction:     cell(row, cols[fieldIGSAction]),
			IGSStatus:     cell(row, cols[fieldIGSStatus]),
		}
		if idx, ok := cols[fieldBPDuration]; ok {
			r.BPDuration = cell(row, idx)
		}
		// Some exports repeat the header as the first data row.
		if strings.EqualFold(strings.TrimSpace(r.SN), "sn") {
			continue
		}
		if r == (model.Record{}) {
			continue
		}
		records = append(records, r)
	}

	return &Sheet{Name: name, Records: records}, nil
}

func resolveColumns(header []string) (map[string]int, error) {
	byName := make(map[string]int)
	for i, h := range header {
		n := normalizeHeader(h)
		if n == "" {
			continue
		}
		if _, dup := byName[n]; !dup {
			byName[n] = i
		}
	}

	cols := make(map[string]int)
	for field, aliases := range columnAliases {
		for _, a := range aliases {
			if idx, ok := byName[a]; ok {
				cols[field] = idx
				break
			}
		}
	}
	for _, field := range requiredFields {
		if _, ok := cols[field]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", ErrInvalidFormat, field)
		}
	}
	return cols, nil
}

// cell returns a trimmed cell value; excelize trims trailing empty cells from
// each row, so out-of-range reads are empty strings.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
