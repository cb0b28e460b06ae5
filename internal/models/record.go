package models

// Field is a single cell value that may be absent. Absent cells come from
// short rows and spreadsheet NA markers; they are data, not errors.
type Field struct {
	Value string
	Valid bool
}

// Present returns a valid Field holding value
func Present(value string) Field {
	return Field{Value: value, Valid: true}
}

// Missing returns an absent Field
func Missing() Field {
	return Field{}
}

// Or returns the field value, or fallback when the field is absent
func (f Field) Or(fallback string) string {
	if !f.Valid {
		return fallback
	}
	return f.Value
}

// Row is one data row of a Table
type Row struct {
	// LineNumber is the original line (CSV) or row (XLSX) number, 1-indexed
	LineNumber int

	// Cells holds one Field per column, positionally aligned with Table.Headers
	Cells []Field
}

// Get returns the cell at the specified column index.
// Returns a missing Field if index is out of bounds.
func (r Row) Get(index int) Field {
	if index < 0 || index >= len(r.Cells) {
		return Missing()
	}
	return r.Cells[index]
}

// Table is a raw tabular export as read from disk, before any cleaning
type Table struct {
	// FileName is the source file name
	FileName string

	// Headers contains the column labels exactly as they appeared
	Headers []string

	// Rows contains the data rows in file order
	Rows []Row
}

// RawRecord is an unvalidated fleet inventory row bound to named fields
type RawRecord struct {
	LineNumber int
	FileName   string

	Department          Field
	DepartmentSecondary Field
	EquipmentClass      Field
	EquipmentCount      Field
}

// CleanRecord is a row that passed every cleaning stage
type CleanRecord struct {
	Department     string `validate:"required" parquet:"Department"`
	EquipmentClass string `validate:"required" parquet:"Equipment_Class"`
	EquipmentCount int    `parquet:"Equipment_Count"`
}

// Values returns the record as strings in export column order
func (r CleanRecord) Values() []string {
	return []string{r.Department, r.EquipmentClass, itoa(r.EquipmentCount)}
}
