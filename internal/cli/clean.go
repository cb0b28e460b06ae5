package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zuhrulumam/fleet_inventory/internal/export"
)

func (a *app) newCleanCmd() *cobra.Command {
	var showStages bool

	cmd := &cobra.Command{
		Use:   "clean <file>",
		Short: "Clean an inventory export and print the validation report",
		Long: `Clean reads a CSV or XLSX inventory export, repairs and validates every
row, and prints a four-line validation report.

Example:
  fleetclean clean fleet.csv
  fleetclean clean fleet.xlsx --sheet Inventory --out clean.parquet --format parquet`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, map[string]string{
				"input.sheet":     "sheet",
				"input.delimiter": "delimiter",
				"output.path":     "out",
				"output.format":   "format",
			}); err != nil {
				return err
			}

			result := a.newPipeline(cmd.OutOrStdout(), showStages).Load(cmd.Context(), args[0])
			if result == nil {
				return ErrProcessingFailed
			}

			out := a.cfg.Output
			if out.Path == "" {
				return nil
			}
			if err := export.WriteFile(out.Path, export.Format(out.Format), result.Records); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			a.logger.Info("cleaned data written", "path", out.Path, "format", out.Format, "records", len(result.Records))

			return nil
		},
	}

	cmd.Flags().String("out", "", "write the cleaned records to this file")
	cmd.Flags().String("format", "", "output format: csv, parquet or xlsx (default: csv)")
	addInputFlags(cmd)
	cmd.Flags().BoolVar(&showStages, "stages", false, "print row counts for each cleaning stage")

	return cmd
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("sheet", "", "workbook sheet to read (default: first sheet)")
	cmd.Flags().String("delimiter", "", "CSV field delimiter (default: ,)")
}
