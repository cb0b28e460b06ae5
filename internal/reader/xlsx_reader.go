package reader

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/zuhrulumam/fleet_inventory/internal/errors"
	"github.com/zuhrulumam/fleet_inventory/internal/models"
)

// XLSXReader reads one sheet of an Excel workbook into a models.Table.
// The first non-empty row is the header.
type XLSXReader struct {
	sheet string
}

// NewXLSXReader creates a new XLSXReader instance
func NewXLSXReader(config Config) *XLSXReader {
	return &XLSXReader{sheet: config.Sheet}
}

// ReadFile opens a workbook and reads the configured sheet
func (r *XLSXReader) ReadFile(ctx context.Context, filename string) (*models.Table, error) {
	name := filepath.Base(filename)

	file, err := openInput(filename)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(file)
	file.Close()
	if err != nil {
		return nil, errors.NewProcessingError("open", name, 0, fmt.Errorf("open workbook: %w", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewProcessingError("open", name, 0, errors.ErrEmptyFile)
	}

	sheet := r.sheet
	if sheet == "" {
		sheet = sheets[0]
	} else if !slices.Contains(sheets, sheet) {
		return nil, errors.NewProcessingError("open", name, 0, fmt.Errorf("%w: %q", errors.ErrSheetNotFound, sheet))
	}

	// raw values: a number format such as #,##0 would turn 1379 into "1,379"
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.NewProcessingError("read_sheet", name, 0, err)
	}

	return r.buildTable(ctx, name, rows)
}

// buildTable converts sheet rows to a Table, skipping blank rows
func (r *XLSXReader) buildTable(ctx context.Context, name string, rows [][]string) (*models.Table, error) {
	headerIdx := -1
	for i, row := range rows {
		if !isBlankRow(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, errors.NewProcessingError("read_header", name, 0, errors.ErrEmptyFile)
	}

	headers := mangleHeaders(slices.Clone(rows[headerIdx]))
	if err := ValidateHeaders(headers); err != nil {
		return nil, errors.NewProcessingError("validate_header", name, headerIdx+1, err)
	}

	table := &models.Table{
		FileName: name,
		Headers:  headers,
	}

	for i := headerIdx + 1; i < len(rows); i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if isBlankRow(rows[i]) {
			continue
		}

		data := make([]string, len(rows[i]))
		for j, cell := range rows[i] {
			data[j] = strings.TrimLeft(cell, " ")
		}

		row, err := buildRow(i+1, data, len(headers))
		if err != nil {
			return nil, errors.NewProcessingError("read_record", name, i+1, err)
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
