package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessingError(t *testing.T) {
	tests := []struct {
		name       string
		op         string
		fileName   string
		lineNumber int
		err        error
		want       string
	}{
		{
			name:       "full error",
			op:         "read",
			fileName:   "fleet.csv",
			lineNumber: 42,
			err:        errors.New("wrong number of fields"),
			want:       "read: fleet.csv:42: wrong number of fields",
		},
		{
			name:       "no line number",
			op:         "bind",
			fileName:   "fleet.csv",
			lineNumber: 0,
			err:        ErrMissingColumn,
			want:       "bind: fleet.csv: missing required column",
		},
		{
			name:       "no file name",
			op:         "open",
			fileName:   "",
			lineNumber: 0,
			err:        ErrFileNotFound,
			want:       "open: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewProcessingError(tt.op, tt.fileName, tt.lineNumber, tt.err)
			assert.Equal(t, tt.want, err.Error())
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("output.format", "tsv", "must be one of [csv parquet xlsx]")
	want := "validation error: field=output.format, value=tsv, message=must be one of [csv parquet xlsx]"

	assert.Equal(t, want, err.Error())
}

func TestJoin(t *testing.T) {
	t.Run("empty is nil", func(t *testing.T) {
		assert.NoError(t, Join(nil))
	})

	t.Run("keeps every error", func(t *testing.T) {
		first := NewValidationError("a", "1", "bad")
		second := NewValidationError("b", "2", "worse")

		err := Join([]*ValidationError{first, second})
		require.Error(t, err)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, err.Error(), "field=a")
		assert.Contains(t, err.Error(), "field=b")
	})
}

func TestIsStructural(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"missing file", ErrFileNotFound, true},
		{"wrapped empty file", fmt.Errorf("open: %w", ErrEmptyFile), true},
		{"processing error", NewProcessingError("read", "x.csv", 3, errors.New("bare quote")), true},
		{"missing column", ErrMissingColumn, true},
		{"validation error", NewValidationError("f", "v", "m"), false},
		{"unknown", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStructural(tt.err))
		})
	}
}
