package aggregate

import (
	"fmt"

	"github.com/zuhrulumam/fleet_inventory/internal/errors"
	"github.com/zuhrulumam/fleet_inventory/internal/models"
)

// View names, also used as workbook sheet titles
const (
	ViewDeptByClass = "Dept x Class"
	ViewClassByDept = "Class x Dept"
	ViewDeptTotals  = "Dept Totals"
)

// Views holds the three summary views of a clean record set
type Views struct {
	// ByDeptThenClass has departments as rows and classes as columns
	ByDeptThenClass *Table

	// ByClassThenDept has classes as rows and departments as columns
	ByClassThenDept *Table

	// ByDeptTotal sums each department across all classes
	ByDeptTotal *Totals
}

// Aggregate builds all three views from records
func Aggregate(records []models.CleanRecord) *Views {
	return &Views{
		ByDeptThenClass: Pivot(ViewDeptByClass, records, Department, EquipmentClass),
		ByClassThenDept: Pivot(ViewClassByDept, records, EquipmentClass, Department),
		ByDeptTotal:     Sum(ViewDeptTotals, records, Department),
	}
}

// Verify checks that each view is keyed by the expected dimensions and that
// every view's grand total equals total.
func (v *Views) Verify(total int) error {
	dims := []struct {
		view string
		got  [2]string
		want [2]string
	}{
		{v.ByDeptThenClass.Name, [2]string{v.ByDeptThenClass.RowDim, v.ByDeptThenClass.ColDim}, [2]string{Department.Name, EquipmentClass.Name}},
		{v.ByClassThenDept.Name, [2]string{v.ByClassThenDept.RowDim, v.ByClassThenDept.ColDim}, [2]string{EquipmentClass.Name, Department.Name}},
		{v.ByDeptTotal.Name, [2]string{v.ByDeptTotal.Dim, ""}, [2]string{Department.Name, ""}},
	}
	for _, d := range dims {
		if d.got != d.want {
			return fmt.Errorf("%s: keyed by %v, want %v", d.view, d.got, d.want)
		}
	}

	sums := []struct {
		view string
		sum  int
	}{
		{v.ByDeptThenClass.Name, v.ByDeptThenClass.GrandTotal()},
		{v.ByClassThenDept.Name, v.ByClassThenDept.GrandTotal()},
		{v.ByDeptTotal.Name, v.ByDeptTotal.GrandTotal()},
	}
	for _, s := range sums {
		if s.sum != total {
			return fmt.Errorf("%w: %s sums to %d, want %d", errors.ErrConservation, s.view, s.sum, total)
		}
	}

	return nil
}
