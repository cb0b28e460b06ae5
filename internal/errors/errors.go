package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for structural failures. Row-level defects never produce
// one of these; they are filtered by the cleaner instead.
var (
	// ErrInvalidCSV indicates the CSV file format is invalid
	ErrInvalidCSV = errors.New("invalid CSV format")

	// ErrFileNotFound indicates the file doesn't exist
	ErrFileNotFound = errors.New("file not found")

	// ErrEmptyFile indicates the file is empty
	ErrEmptyFile = errors.New("empty file")

	// ErrMissingColumn indicates a required column is absent from the header
	ErrMissingColumn = errors.New("missing required column")

	// ErrUnsupportedFormat indicates the input extension is not readable
	ErrUnsupportedFormat = errors.New("unsupported input format")

	// ErrSheetNotFound indicates the requested workbook sheet doesn't exist
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrConservation indicates an aggregation view lost or gained equipment
	ErrConservation = errors.New("aggregation totals do not match")
)

// ProcessingError wraps errors with additional context
type ProcessingError struct {
	// Op is the operation that failed
	Op string

	// FileName is the file being processed
	FileName string

	// LineNumber is the line where the error occurred
	LineNumber int

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *ProcessingError) Error() string {
	if e.LineNumber > 0 {
		return fmt.Sprintf("%s: %s:%d: %v", e.Op, e.FileName, e.LineNumber, e.Err)
	}
	if e.FileName != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.FileName, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// NewProcessingError creates a new ProcessingError
func NewProcessingError(op, fileName string, lineNumber int, err error) *ProcessingError {
	return &ProcessingError{
		Op:         op,
		FileName:   fileName,
		LineNumber: lineNumber,
		Err:        err,
	}
}

// ValidationError represents a configuration or record validation error
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field=%s, value=%s, message=%s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Join combines validation errors into a single error, or nil when empty.
func Join(errs []*ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	joined := make([]error, len(errs))
	for i, err := range errs {
		joined[i] = err
	}
	return errors.Join(joined...)
}

// IsStructural reports whether err is a failure that aborts a whole run
// (unreadable, empty or malformed input).
func IsStructural(err error) bool {
	if err == nil {
		return false
	}

	var pe *ProcessingError
	switch {
	case errors.Is(err, ErrFileNotFound),
		errors.Is(err, ErrEmptyFile),
		errors.Is(err, ErrInvalidCSV),
		errors.Is(err, ErrMissingColumn),
		errors.Is(err, ErrUnsupportedFormat),
		errors.Is(err, ErrSheetNotFound):
		return true
	case errors.As(err, &pe):
		return true
	default:
		return false
	}
}
