// Package importer replaces portal collections from spreadsheet sources.
// Each import is destructive (the whole table is rebuilt) and runs inside a
// single transaction so an interrupted import never leaves a half-emptied
// collection behind.
package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nouasseur-portal/database/model"
	"nouasseur-portal/logger"

	"github.com/xuri/excelize/v2"
)

const insertBatchSize = 100

// readSheet reads the first worksheet of an Excel file into one map per
// row, keyed by the lowercased header row.
func readSheet(path string) ([]map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%s has no worksheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: worksheet %q has no data rows", path, sheet)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				record[header] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, record)
	}
	logger.Infof("read %d rows from %s (sheet %q)", len(records), path, sheet)
	return records, nil
}

// field returns the first non-empty value among the given header aliases.
func field(record map[string]string, names ...string) string {
	for _, name := range names {
		if v := record[name]; v != "" {
			return v
		}
	}
	return ""
}

// dateLayouts covers the date encodings seen across the source
// spreadsheets.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"1/2/06",
	"01-02-06",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// parseDate normalizes a raw spreadsheet cell into a calendar date. Excel
// serial numbers and several textual formats are accepted; anything else
// yields nil.
func parseDate(raw string) *model.Date {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return nil
		}
		d := model.NewDate(t)
		return &d
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d := model.NewDate(t)
			return &d
		}
	}
	return nil
}

// parseInt returns a pointer to the parsed integer, or nil for blank or
// non-numeric cells.
func parseInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// Excel sometimes renders integers as floats ("42.0").
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return nil
		}
		n = int(f)
	}
	return &n
}
