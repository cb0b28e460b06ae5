// Package aggregate builds summed cross-tabulations of clean fleet records.
//
// Every view is a pure function of its input records. Key combinations with
// no contributing record hold the fill value 0, so the grand total of each
// view equals the total equipment count of the records it was built from.
package aggregate

import (
	"sort"

	"github.com/zuhrulumam/fleet_inventory/internal/models"
)

// KeyFunc extracts a categorical dimension from a record
type KeyFunc func(r models.CleanRecord) string

// Dimension is a named categorical key
type Dimension struct {
	Name string
	Key  KeyFunc
}

var (
	// Department groups by department name
	Department = Dimension{
		Name: models.ColumnDepartment,
		Key:  func(r models.CleanRecord) string { return r.Department },
	}

	// EquipmentClass groups by equipment class
	EquipmentClass = Dimension{
		Name: models.ColumnEquipmentClass,
		Key:  func(r models.CleanRecord) string { return r.EquipmentClass },
	}
)

// Table is a two-dimensional view of summed equipment counts
type Table struct {
	Name      string
	RowDim    string
	ColDim    string
	RowLabels []string
	ColLabels []string

	// Cells[i][j] is the sum for RowLabels[i] x ColLabels[j]
	Cells [][]int

	rowIndex map[string]int
	colIndex map[string]int
}

// Pivot sums equipment counts by rows x cols. Row and column labels are
// the distinct key values sorted ascending.
func Pivot(name string, records []models.CleanRecord, rows, cols Dimension) *Table {
	rowLabels := distinct(records, rows.Key)
	colLabels := distinct(records, cols.Key)

	t := newTable(name, rows.Name, cols.Name, rowLabels, colLabels)
	for _, r := range records {
		i := t.rowIndex[rows.Key(r)]
		j := t.colIndex[cols.Key(r)]
		t.Cells[i][j] += r.EquipmentCount
	}

	return t
}

func newTable(name, rowDim, colDim string, rowLabels, colLabels []string) *Table {
	t := &Table{
		Name:      name,
		RowDim:    rowDim,
		ColDim:    colDim,
		RowLabels: rowLabels,
		ColLabels: colLabels,
		Cells:     make([][]int, len(rowLabels)),
		rowIndex:  indexOf(rowLabels),
		colIndex:  indexOf(colLabels),
	}
	for i := range t.Cells {
		t.Cells[i] = make([]int, len(colLabels))
	}
	return t
}

// Cell returns the sum for row x col, or 0 for unknown labels
func (t *Table) Cell(row, col string) int {
	i, ok := t.rowIndex[row]
	if !ok {
		return 0
	}
	j, ok := t.colIndex[col]
	if !ok {
		return 0
	}
	return t.Cells[i][j]
}

// RowTotal returns the sum across all columns of row
func (t *Table) RowTotal(row string) int {
	i, ok := t.rowIndex[row]
	if !ok {
		return 0
	}
	total := 0
	for _, v := range t.Cells[i] {
		total += v
	}
	return total
}

// ColTotal returns the sum across all rows of col
func (t *Table) ColTotal(col string) int {
	j, ok := t.colIndex[col]
	if !ok {
		return 0
	}
	total := 0
	for i := range t.Cells {
		total += t.Cells[i][j]
	}
	return total
}

// GrandTotal returns the sum of every cell
func (t *Table) GrandTotal() int {
	total := 0
	for _, row := range t.Cells {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Transpose returns a new table with rows and columns swapped
func (t *Table) Transpose(name string) *Table {
	out := newTable(name, t.ColDim, t.RowDim, clone(t.ColLabels), clone(t.RowLabels))
	for i := range t.Cells {
		for j, v := range t.Cells[i] {
			out.Cells[j][i] = v
		}
	}
	return out
}

// Totals is a single-dimension view of summed equipment counts
type Totals struct {
	Name   string
	Dim    string
	Labels []string
	Values []int
}

// Sum totals equipment counts by one dimension, labels sorted ascending
func Sum(name string, records []models.CleanRecord, dim Dimension) *Totals {
	labels := distinct(records, dim.Key)
	index := indexOf(labels)

	values := make([]int, len(labels))
	for _, r := range records {
		values[index[dim.Key(r)]] += r.EquipmentCount
	}

	return &Totals{
		Name:   name,
		Dim:    dim.Name,
		Labels: labels,
		Values: values,
	}
}

// Get returns the total for label
func (t *Totals) Get(label string) (int, bool) {
	for i, l := range t.Labels {
		if l == label {
			return t.Values[i], true
		}
	}
	return 0, false
}

// GrandTotal returns the sum of all values
func (t *Totals) GrandTotal() int {
	total := 0
	for _, v := range t.Values {
		total += v
	}
	return total
}

// AutoSum returns the total equipment count of records
func AutoSum(records []models.CleanRecord) int {
	total := 0
	for _, r := range records {
		total += r.EquipmentCount
	}
	return total
}

func distinct(records []models.CleanRecord, key KeyFunc) []string {
	seen := make(map[string]struct{})
	var labels []string
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return labels
}

func indexOf(labels []string) map[string]int {
	m := make(map[string]int, len(labels))
	for i, l := range labels {
		m[l] = i
	}
	return m
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
