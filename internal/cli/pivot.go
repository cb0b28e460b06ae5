package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zuhrulumam/fleet_inventory/internal/aggregate"
	"github.com/zuhrulumam/fleet_inventory/internal/export"
	"github.com/zuhrulumam/fleet_inventory/internal/models"
)

// View file names written by --views-dir
const (
	DeptByClassFile = "dept_x_class.csv"
	ClassByDeptFile = "class_x_dept.csv"
	DeptTotalsFile  = "dept_totals.csv"
)

func (a *app) newPivotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pivot <file>",
		Short: "Clean an inventory export and print summed equipment views",
		Long: `Pivot cleans an inventory export like the clean command, then sums
equipment counts by department and equipment class in three views:
departments by classes, classes by departments and department totals.

Example:
  fleetclean pivot fleet.csv
  fleetclean pivot fleet.csv --workbook fleet_summary.xlsx --views-dir views/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, map[string]string{
				"input.sheet":      "sheet",
				"input.delimiter":  "delimiter",
				"output.workbook":  "workbook",
				"output.views_dir": "views-dir",
			}); err != nil {
				return err
			}

			p := a.newPipeline(cmd.OutOrStdout(), false)
			result := p.Load(cmd.Context(), args[0])
			if result == nil {
				return ErrProcessingFailed
			}

			views, err := p.Pivot(result)
			if err != nil {
				return err
			}
			p.Reporter().PrintViews(views)

			return a.writeViews(result.Records, views)
		},
	}

	cmd.Flags().String("workbook", "", "write an XLSX workbook with the cleaned data and all views")
	cmd.Flags().String("views-dir", "", "write each view as a CSV file into this directory")
	addInputFlags(cmd)

	return cmd
}

func (a *app) writeViews(records []models.CleanRecord, views *aggregate.Views) error {
	out := a.cfg.Output

	if out.Workbook != "" {
		if err := export.NewWorkbook(records, views).SaveAs(out.Workbook); err != nil {
			return fmt.Errorf("export workbook: %w", err)
		}
		a.logger.Info("workbook written", "path", out.Workbook)
	}

	if out.ViewsDir == "" {
		return nil
	}

	if err := os.MkdirAll(out.ViewsDir, 0755); err != nil {
		return fmt.Errorf("create views directory: %w", err)
	}

	files := []struct {
		name  string
		write func(w *os.File) error
	}{
		{DeptByClassFile, func(w *os.File) error { return export.WriteTableCSV(w, views.ByDeptThenClass) }},
		{ClassByDeptFile, func(w *os.File) error { return export.WriteTableCSV(w, views.ByClassThenDept) }},
		{DeptTotalsFile, func(w *os.File) error { return export.WriteTotalsCSV(w, views.ByDeptTotal) }},
	}

	for _, f := range files {
		path := filepath.Join(out.ViewsDir, f.name)
		if err := writeFile(path, f.write); err != nil {
			return fmt.Errorf("export view: %w", err)
		}
		a.logger.Info("view written", "path", path)
	}

	return nil
}

func writeFile(path string, write func(w *os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(file); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
