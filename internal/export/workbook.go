package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/zuhrulumam/fleet_inventory/internal/aggregate"
	"github.com/zuhrulumam/fleet_inventory/internal/models"
)

const (
	// SheetCleaned holds the clean records formatted as an Excel table
	SheetCleaned = "Cleaned"

	// CleanedTableName is the Excel table name on SheetCleaned
	CleanedTableName = "CleanedInventory"

	tableStyle = "TableStyleMedium2"
)

// Workbook builds an XLSX file with the clean records and, when views are
// given, one sheet per view
type Workbook struct {
	records []models.CleanRecord
	views   *aggregate.Views
}

// NewWorkbook creates a workbook builder. views may be nil.
func NewWorkbook(records []models.CleanRecord, views *aggregate.Views) *Workbook {
	return &Workbook{records: records, views: views}
}

// SaveAs writes the workbook to path
func (wb *Workbook) SaveAs(path string) error {
	f, err := wb.build()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// Write writes the workbook to w
func (wb *Workbook) Write(w io.Writer) error {
	f, err := wb.build()
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

func (wb *Workbook) build() (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), SheetCleaned); err != nil {
		f.Close()
		return nil, err
	}

	if err := wb.writeCleaned(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("sheet %s: %w", SheetCleaned, err)
	}

	if wb.views != nil {
		for _, t := range []*aggregate.Table{wb.views.ByDeptThenClass, wb.views.ByClassThenDept} {
			if err := writeTableSheet(f, t); err != nil {
				f.Close()
				return nil, fmt.Errorf("sheet %s: %w", t.Name, err)
			}
		}
		if err := writeTotalsSheet(f, wb.views.ByDeptTotal); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %s: %w", wb.views.ByDeptTotal.Name, err)
		}
	}

	return f, nil
}

// writeCleaned writes the records as an Excel table followed by an AutoSum
// row under the count column
func (wb *Workbook) writeCleaned(f *excelize.File) error {
	if err := setRow(f, SheetCleaned, 1, toCells(models.CleanColumns)); err != nil {
		return err
	}
	for i, r := range wb.records {
		row := []interface{}{r.Department, r.EquipmentClass, r.EquipmentCount}
		if err := setRow(f, SheetCleaned, i+2, row); err != nil {
			return err
		}
	}

	if len(wb.records) == 0 {
		return nil
	}

	last := len(wb.records) + 1
	end, err := excelize.CoordinatesToCellName(len(models.CleanColumns), last)
	if err != nil {
		return err
	}
	if err := f.AddTable(SheetCleaned, &excelize.Table{
		Range:          "A1:" + end,
		Name:           CleanedTableName,
		StyleName:      tableStyle,
		ShowRowStripes: boolPtr(true),
	}); err != nil {
		return err
	}

	totalRow := last + 1
	if err := f.SetCellValue(SheetCleaned, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return err
	}
	if err := f.SetCellFormula(SheetCleaned, fmt.Sprintf("C%d", totalRow), fmt.Sprintf("SUM(C2:C%d)", last)); err != nil {
		return err
	}

	return f.SetColWidth(SheetCleaned, "A", "B", 32)
}

func writeTableSheet(f *excelize.File, t *aggregate.Table) error {
	if _, err := f.NewSheet(t.Name); err != nil {
		return err
	}

	header := append(append([]string{t.RowDim}, t.ColLabels...), "Total")
	if err := setRow(f, t.Name, 1, toCells(header)); err != nil {
		return err
	}

	for i, label := range t.RowLabels {
		row := make([]interface{}, 0, len(t.ColLabels)+2)
		row = append(row, label)
		for _, v := range t.Cells[i] {
			row = append(row, v)
		}
		row = append(row, t.RowTotal(label))
		if err := setRow(f, t.Name, i+2, row); err != nil {
			return err
		}
	}

	totals := make([]interface{}, 0, len(t.ColLabels)+2)
	totals = append(totals, "Total")
	for _, col := range t.ColLabels {
		totals = append(totals, t.ColTotal(col))
	}
	totals = append(totals, t.GrandTotal())
	if err := setRow(f, t.Name, len(t.RowLabels)+2, totals); err != nil {
		return err
	}

	return f.SetPanes(t.Name, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	})
}

func writeTotalsSheet(f *excelize.File, t *aggregate.Totals) error {
	if _, err := f.NewSheet(t.Name); err != nil {
		return err
	}

	if err := setRow(f, t.Name, 1, toCells([]string{t.Dim, models.ColumnEquipmentCount})); err != nil {
		return err
	}
	for i, label := range t.Labels {
		if err := setRow(f, t.Name, i+2, []interface{}{label, t.Values[i]}); err != nil {
			return err
		}
	}

	return setRow(f, t.Name, len(t.Labels)+2, []interface{}{"Total", t.GrandTotal()})
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toCells(s []string) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

func boolPtr(b bool) *bool {
	return &b
}
