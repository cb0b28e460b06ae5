// Package report renders the validation report, failure messages and
// aggregation views for a terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/zuhrulumam/fleet_inventory/internal/aggregate"
	"github.com/zuhrulumam/fleet_inventory/internal/models"
)

const banner = "========================================"

// Reporter formats and writes reports
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{writer: w}
}

// PrintValidation prints the four-metric validation report
func (r *Reporter) PrintValidation(summary models.ValidationSummary) {
	fmt.Fprintf(r.writer, "Data Validation Report:\n")
	fmt.Fprintf(r.writer, "Total_Departments: %d\n", summary.Departments)
	fmt.Fprintf(r.writer, "Total_Equipment_Classes: %d\n", summary.EquipmentClasses)
	fmt.Fprintf(r.writer, "Total_Equipment_Count: %d\n", summary.TotalEquipment)
	fmt.Fprintf(r.writer, "Unique_Entries: %d\n", summary.Records)
}

// PrintFailure prints the single-line failure message
func (r *Reporter) PrintFailure(err error) {
	fmt.Fprintf(r.writer, "Error processing file: %v\n", err)
}

// PrintStages prints how many rows each cleaning stage kept and dropped
func (r *Reporter) PrintStages(result *models.CleanResult) {
	fmt.Fprintf(r.writer, "\n%s\nCleaning Stages\n%s\n", banner, banner)

	tw := tabwriter.NewWriter(r.writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Stage\tIn\tOut\tDropped")
	for _, s := range result.Stages {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", s.Stage, s.In, s.Out, s.Dropped())
	}
	tw.Flush()

	fmt.Fprintf(r.writer, "%s\n", banner)
}

// PrintViews prints all three aggregation views
func (r *Reporter) PrintViews(views *aggregate.Views) {
	r.PrintTable(views.ByDeptThenClass)
	r.PrintTable(views.ByClassThenDept)
	r.PrintTotals(views.ByDeptTotal)
}

// PrintTable prints a two-dimensional view with row and column totals
func (r *Reporter) PrintTable(t *aggregate.Table) {
	r.title(t.Name)

	tw := tabwriter.NewWriter(r.writer, 0, 0, 2, ' ', tabwriter.AlignRight)
	writeCells(tw, append(append([]string{t.RowDim}, t.ColLabels...), "Total"))
	for i, label := range t.RowLabels {
		cells := make([]string, 0, len(t.ColLabels)+2)
		cells = append(cells, label)
		for _, v := range t.Cells[i] {
			cells = append(cells, strconv.Itoa(v))
		}
		cells = append(cells, strconv.Itoa(t.RowTotal(label)))
		writeCells(tw, cells)
	}

	totals := make([]string, 0, len(t.ColLabels)+2)
	totals = append(totals, "Total")
	for _, col := range t.ColLabels {
		totals = append(totals, strconv.Itoa(t.ColTotal(col)))
	}
	totals = append(totals, strconv.Itoa(t.GrandTotal()))
	writeCells(tw, totals)
	tw.Flush()

	fmt.Fprintf(r.writer, "%s\n", banner)
}

// PrintTotals prints a single-dimension view
func (r *Reporter) PrintTotals(t *aggregate.Totals) {
	r.title(t.Name)

	tw := tabwriter.NewWriter(r.writer, 0, 0, 2, ' ', tabwriter.AlignRight)
	writeCells(tw, []string{t.Dim, models.ColumnEquipmentCount})
	for i, label := range t.Labels {
		writeCells(tw, []string{label, strconv.Itoa(t.Values[i])})
	}
	writeCells(tw, []string{"Total", strconv.Itoa(t.GrandTotal())})
	tw.Flush()

	fmt.Fprintf(r.writer, "%s\n", banner)
}

func (r *Reporter) title(name string) {
	fmt.Fprintf(r.writer, "\n%s\n%s\n%s\n", banner, name, banner)
}

// writeCells writes one tab-terminated line. AlignRight needs the trailing
// tab to right-align the last column.
func writeCells(w io.Writer, cells []string) {
	for _, c := range cells {
		fmt.Fprintf(w, "%s\t", c)
	}
	fmt.Fprintln(w)
}
