package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zuhrulumam/fleet_inventory/internal/errors"
)

func TestValidateHeaders(t *testing.T) {
	tests := []struct {
		name        string
		headers     []string
		expectError bool
	}{
		{
			name:        "valid headers",
			headers:     []string{"Department", "Department.1", "Equipment Class", "Equipment Count"},
			expectError: false,
		},
		{
			name:        "empty headers",
			headers:     []string{},
			expectError: true,
		},
		{
			name:        "duplicate headers",
			headers:     []string{"Department", "Department"},
			expectError: true,
		},
		{
			name:        "blank header field",
			headers:     []string{"Department", " ", "Equipment Count"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHeaders(tt.headers)
			assert.Equal(t, tt.expectError, err != nil, "ValidateHeaders() error = %v", err)
		})
	}
}

func TestMangleHeaders(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "split department columns",
			input: []string{"Department", "Department", "Equipment Class"},
			want:  []string{"Department", "Department.1", "Equipment Class"},
		},
		{
			name:  "three copies",
			input: []string{"A", "A", "A"},
			want:  []string{"A", "A.1", "A.2"},
		},
		{
			name:  "suffix already taken",
			input: []string{"A", "A.1", "A"},
			want:  []string{"A", "A.1", "A.2"},
		},
		{
			name:  "blank header",
			input: []string{"Department", "", "Equipment Count"},
			want:  []string{"Department", "Unnamed: 1", "Equipment Count"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mangleHeaders(tt.input)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, ValidateHeaders(got))
		})
	}
}

func TestValidateRecord(t *testing.T) {
	assert.NoError(t, ValidateRecord([]string{"a", "b"}, 3))
	assert.NoError(t, ValidateRecord([]string{"a", "b", "c"}, 3))
	assert.ErrorIs(t, ValidateRecord([]string{"a", "b", "c", "d"}, 3), errors.ErrInvalidCSV)
}

func TestIsNA(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"N/A", true},
		{"NaN", true},
		{"null", true},
		{"#N/A", true},
		{"12", false},
		{"n.a.", false},
		{"N/A ", false},
		{"Sedan", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNA(tt.input))
		})
	}
}
