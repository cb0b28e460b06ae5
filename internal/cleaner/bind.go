package cleaner

import (
	"fmt"

	"github.com/zuhrulumam/fleet_inventory/internal/errors"
	"github.com/zuhrulumam/fleet_inventory/internal/models"
)

// columns holds the positions of the fields a RawRecord is bound from.
// A position of -1 means the column is absent.
type columns struct {
	department int
	secondary  int
	class      int
	count      int
}

// bindColumns normalizes header labels and locates the inventory fields.
// Columns other than these are ignored.
func bindColumns(headers []string) (columns, error) {
	cols := columns{department: -1, secondary: -1, class: -1, count: -1}

	for i, label := range models.NormalizeLabels(headers) {
		switch {
		case label == models.ColumnDepartment && cols.department == -1:
			cols.department = i
		case label == models.ColumnDepartment && cols.secondary == -1,
			models.IsSecondaryDepartmentLabel(label) && cols.secondary == -1:
			cols.secondary = i
		case label == models.ColumnEquipmentClass && cols.class == -1:
			cols.class = i
		case label == models.ColumnEquipmentCount && cols.count == -1:
			cols.count = i
		}
	}

	required := []struct {
		name string
		idx  int
	}{
		{models.ColumnDepartment, cols.department},
		{models.ColumnEquipmentClass, cols.class},
		{models.ColumnEquipmentCount, cols.count},
	}
	for _, r := range required {
		if r.idx == -1 {
			return cols, fmt.Errorf("%w: %s", errors.ErrMissingColumn, r.name)
		}
	}

	return cols, nil
}

// Bind converts a table into raw records by normalized column label
func Bind(table *models.Table) ([]models.RawRecord, error) {
	cols, err := bindColumns(table.Headers)
	if err != nil {
		return nil, errors.NewProcessingError("bind", table.FileName, 0, err)
	}

	records := make([]models.RawRecord, len(table.Rows))
	for i, row := range table.Rows {
		records[i] = models.RawRecord{
			LineNumber:          row.LineNumber,
			FileName:            table.FileName,
			Department:          row.Get(cols.department),
			DepartmentSecondary: row.Get(cols.secondary),
			EquipmentClass:      row.Get(cols.class),
			EquipmentCount:      row.Get(cols.count),
		}
	}

	return records, nil
}

// CleanTable binds a raw table to records and cleans them. It fails only
// when the table lacks a required column.
func (c *Cleaner) CleanTable(table *models.Table) (*models.CleanResult, error) {
	records, err := Bind(table)
	if err != nil {
		return nil, err
	}

	return c.Clean(records), nil
}
