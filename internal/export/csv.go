// Package export writes clean records and aggregation views to flat files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/zuhrulumam/fleet_inventory/internal/aggregate"
	"github.com/zuhrulumam/fleet_inventory/internal/models"
)

// Format is an output file format
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
	FormatXLSX    Format = "xlsx"
)

// WriteFile writes records to path in the given format
func WriteFile(path string, format Format, records []models.CleanRecord) error {
	switch format {
	case FormatCSV:
		return createAndWrite(path, func(w io.Writer) error { return WriteCSV(w, records) })
	case FormatParquet:
		return createAndWrite(path, func(w io.Writer) error { return WriteParquet(w, records) })
	case FormatXLSX:
		return createAndWrite(path, NewWorkbook(records, nil).Write)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteCSV writes records with a Department, Equipment_Class,
// Equipment_Count header
func WriteCSV(w io.Writer, records []models.CleanRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(models.CleanColumns); err != nil {
		return err
	}
	for _, r := range records {
		if err := writer.Write(r.Values()); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteTableCSV writes a two-dimensional view with its row dimension as the
// first column
func WriteTableCSV(w io.Writer, t *aggregate.Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(append([]string{t.RowDim}, t.ColLabels...)); err != nil {
		return err
	}
	for i, label := range t.RowLabels {
		record := make([]string, 0, len(t.ColLabels)+1)
		record = append(record, label)
		for _, v := range t.Cells[i] {
			record = append(record, strconv.Itoa(v))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteTotalsCSV writes a single-dimension view
func WriteTotalsCSV(w io.Writer, t *aggregate.Totals) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{t.Dim, models.ColumnEquipmentCount}); err != nil {
		return err
	}
	for i, label := range t.Labels {
		if err := writer.Write([]string{label, strconv.Itoa(t.Values[i])}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func createAndWrite(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return file.Close()
}
