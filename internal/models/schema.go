package models

import (
	"strconv"
	"strings"
)

// Normalized column labels of the fleet inventory export
const (
	ColumnDepartment          = "Department"
	ColumnDepartmentSecondary = "Department_secondary"
	ColumnEquipmentClass      = "Equipment_Class"
	ColumnEquipmentCount      = "Equipment_Count"
)

// CleanColumns is the column order of an exported clean dataset
var CleanColumns = []string{ColumnDepartment, ColumnEquipmentClass, ColumnEquipmentCount}

// NormalizeLabel trims a column label and replaces internal spaces with
// underscores, so "Equipment Class " becomes "Equipment_Class".
func NormalizeLabel(label string) string {
	return strings.ReplaceAll(strings.TrimSpace(label), " ", "_")
}

// NormalizeLabels applies NormalizeLabel to every header
func NormalizeLabels(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = NormalizeLabel(h)
	}
	return out
}

// IsSecondaryDepartmentLabel reports whether a normalized label names the
// second department fragment. Spreadsheet exports that repeat a header get
// a ".1" suffix on the copy.
func IsSecondaryDepartmentLabel(label string) bool {
	return label == ColumnDepartmentSecondary || label == ColumnDepartment+".1"
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
