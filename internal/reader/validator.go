package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zuhrulumam/fleet_inventory/internal/errors"
	"github.com/zuhrulumam/fleet_inventory/internal/models"
)

// naValues are cell values a spreadsheet export uses for "no value"
var naValues = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// IsNA reports whether a raw cell value denotes a missing value
func IsNA(value string) bool {
	_, ok := naValues[value]
	return ok
}

func cellField(value string) models.Field {
	if IsNA(value) {
		return models.Missing()
	}
	return models.Present(value)
}

// ValidateHeaders validates a header row after duplicate mangling
func ValidateHeaders(headers []string) error {
	if len(headers) == 0 {
		return errors.ErrInvalidCSV
	}

	seen := make(map[string]bool)

	for i, header := range headers {
		if strings.TrimSpace(header) == "" {
			return fmt.Errorf("empty header at column %d", i+1)
		}

		if seen[header] {
			return fmt.Errorf("duplicate header: %s", header)
		}
		seen[header] = true
	}

	return nil
}

// mangleHeaders names blank headers "Unnamed: <index>" and suffixes repeated
// headers with ".1", ".2", ... the way spreadsheet tooling exports them, so a
// second "Department" column becomes "Department.1".
func mangleHeaders(headers []string) []string {
	out := make([]string, len(headers))
	counts := make(map[string]int)
	used := make(map[string]bool)

	for i, h := range headers {
		if strings.TrimSpace(h) == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		used[h] = true
		out[i] = h
	}

	seen := make(map[string]bool)
	for i, h := range out {
		if !seen[h] {
			seen[h] = true
			continue
		}

		name := h
		for used[name] {
			counts[h]++
			name = h + "." + strconv.Itoa(counts[h])
		}
		used[name] = true
		seen[name] = true
		out[i] = name
	}

	return out
}

// ValidateRecord checks a data row against the header width
func ValidateRecord(data []string, width int) error {
	if len(data) > width {
		return fmt.Errorf(
			"%w: expected %d fields, saw %d",
			errors.ErrInvalidCSV,
			width,
			len(data),
		)
	}

	return nil
}
