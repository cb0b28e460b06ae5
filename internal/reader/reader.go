package reader

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/zuhrulumam/fleet_inventory/internal/errors"
	"github.com/zuhrulumam/fleet_inventory/internal/models"
)

// Config holds configuration for the table readers
type Config struct {
	// Comma is the CSV field delimiter (default ',')
	Comma rune

	// Sheet is the workbook sheet to read (default: first sheet)
	Sheet string
}

// ReadFile reads a CSV or XLSX inventory export, chosen by file extension
func ReadFile(ctx context.Context, filename string, config Config) (*models.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return NewCSVReader(config).ReadFile(ctx, filename)
	case ".xlsx", ".xlsm":
		return NewXLSXReader(config).ReadFile(ctx, filename)
	default:
		return nil, errors.NewProcessingError("open", filepath.Base(filename), 0, errors.ErrUnsupportedFormat)
	}
}
