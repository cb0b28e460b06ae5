package export

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/zuhrulumam/fleet_inventory/internal/errors"
	"github.com/zuhrulumam/fleet_inventory/internal/models"
)

// WriteParquet writes records as a single Parquet file
func WriteParquet(w io.Writer, records []models.CleanRecord) error {
	writer := parquet.NewGenericWriter[models.CleanRecord](w)

	if _, err := writer.Write(records); err != nil {
		writer.Close()
		return err
	}

	return writer.Close()
}

// ReadParquet reads clean records back from a Parquet file written by
// WriteParquet
func ReadParquet(path string) ([]models.CleanRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	pf, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	if err := ValidateSchema(pf.Schema()); err != nil {
		return nil, err
	}

	reader := parquet.NewGenericReader[models.CleanRecord](file)
	defer reader.Close()

	records := make([]models.CleanRecord, reader.NumRows())
	n := 0
	for n < len(records) {
		m, err := reader.Read(records[n:])
		n += m
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if m == 0 {
			break
		}
	}

	return records[:n], nil
}

// ValidateSchema checks that schema carries every clean column
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[field.Name()] = true
	}

	for _, col := range models.CleanColumns {
		if !columns[col] {
			return fmt.Errorf("%w: %s", errors.ErrMissingColumn, col)
		}
	}

	return nil
}
