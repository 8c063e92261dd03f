package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

// exportColumns is the fixed leading column set for workbook exports;
// data_<key> columns follow in sorted order.
var exportColumns = []string{
	"report_id",
	"template_name",
	"username",
	"location_name",
	"report_period",
	"status",
	"submitted_at",
	"created_at",
	"updated_at",
}

// BuildWorkbook renders flattened export rows into an xlsx workbook.
func BuildWorkbook(rows []map[string]string) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Reports"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := append([]string{}, exportColumns...)
	headers = append(headers, dataColumns(rows)...)

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, row := range rows {
		for col, h := range headers {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, row[h]); err != nil {
				return nil, fmt.Errorf("write cell: %w", err)
			}
		}
	}
	return f, nil
}

// dataColumns collects every data_ column present across the rows,
// sorted for a stable header order.
func dataColumns(rows []map[string]string) []string {
	seen := map[string]bool{}
	for _, row := range rows {
		for key := range row {
			if strings.HasPrefix(key, "data_") {
				seen[key] = true
			}
		}
	}
	cols := make([]string, 0, len(seen))
	for key := range seen {
		cols = append(cols, key)
	}
	sort.Strings(cols)
	return cols
}
