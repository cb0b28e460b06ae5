package reader

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zuhrulumam/fleet_inventory/internal/errors"
	"github.com/zuhrulumam/fleet_inventory/internal/models"
)

// utf8BOM is stripped from the first header label
const utf8BOM = "\ufeff"

// CSVReader reads a delimited inventory export into a models.Table
type CSVReader struct {
	// comma is the field delimiter
	comma rune
}

// NewCSVReader creates a new CSVReader instance
func NewCSVReader(config Config) *CSVReader {
	if config.Comma == 0 {
		config.Comma = ',' // Default delimiter
	}

	return &CSVReader{
		comma: config.Comma,
	}
}

// ReadFile opens filename and reads it as a table
func (r *CSVReader) ReadFile(ctx context.Context, filename string) (*models.Table, error) {
	file, err := openInput(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return r.Read(ctx, file, filepath.Base(filename))
}

// Read reads a header row and every data row from src. Rows shorter than
// the header are padded with missing cells; longer rows are malformed.
func (r *CSVReader) Read(ctx context.Context, src io.Reader, name string) (*models.Table, error) {
	csvReader := csv.NewReader(src)
	csvReader.Comma = r.comma
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1
	csvReader.ReuseRecord = true // Optimize memory allocation

	rawHeaders, err := csvReader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.NewProcessingError("read_header", name, 0, errors.ErrEmptyFile)
		}
		_, err = parseErrorLine(err)
		return nil, errors.NewProcessingError("read_header", name, 1, err)
	}

	headers := make([]string, len(rawHeaders))
	copy(headers, rawHeaders)
	headers[0] = strings.TrimPrefix(headers[0], utf8BOM)
	headers = mangleHeaders(headers)

	if err := ValidateHeaders(headers); err != nil {
		return nil, errors.NewProcessingError("validate_header", name, 1, err)
	}

	table := &models.Table{
		FileName: name,
		Headers:  headers,
	}

	for {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		data, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, err := parseErrorLine(err)
			return nil, errors.NewProcessingError("read_record", name, line, err)
		}

		line, _ := csvReader.FieldPos(0)
		row, err := buildRow(line, data, len(headers))
		if err != nil {
			return nil, errors.NewProcessingError("read_record", name, line, err)
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// buildRow converts raw cells into Fields, marking NA markers and short
// rows as missing
func buildRow(line int, data []string, width int) (models.Row, error) {
	if err := ValidateRecord(data, width); err != nil {
		return models.Row{}, err
	}

	cells := make([]models.Field, width)
	for i := range cells {
		if i < len(data) {
			cells[i] = cellField(data[i])
		}
	}

	return models.Row{LineNumber: line, Cells: cells}, nil
}

// openInput opens a file, mapping absence and emptiness to sentinel errors
func openInput(filename string) (*os.File, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewProcessingError("open", filepath.Base(filename), 0, errors.ErrFileNotFound)
		}
		return nil, fmt.Errorf("open file: %w", err)
	}

	// Check if file is empty
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if stat.Size() == 0 {
		file.Close()
		return nil, errors.NewProcessingError("open", filepath.Base(filename), 0, errors.ErrEmptyFile)
	}

	return file, nil
}

// parseErrorLine extracts the failing line from a csv.ParseError and marks
// the error as malformed CSV
func parseErrorLine(err error) (int, error) {
	var pe *csv.ParseError
	if stderrors.As(err, &pe) {
		return pe.Line, fmt.Errorf("%w: %v", errors.ErrInvalidCSV, pe.Err)
	}
	return 0, err
}
