// Package pipeline runs the load, clean and aggregate workflow for one
// inventory file.
package pipeline

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/zuhrulumam/fleet_inventory/internal/aggregate"
	"github.com/zuhrulumam/fleet_inventory/internal/cleaner"
	"github.com/zuhrulumam/fleet_inventory/internal/errors"
	"github.com/zuhrulumam/fleet_inventory/internal/logging"
	"github.com/zuhrulumam/fleet_inventory/internal/models"
	"github.com/zuhrulumam/fleet_inventory/internal/reader"
	"github.com/zuhrulumam/fleet_inventory/internal/report"
)

// Pipeline orchestrates reading, cleaning and reporting
type Pipeline struct {
	config   Config
	reporter *report.Reporter
	logger   *slog.Logger
}

// Config holds pipeline configuration
type Config struct {
	// Input options
	Input reader.Config

	// Corrections extend the default spelling corrections
	Corrections map[string]string

	// Output receives the validation report or failure message
	Output io.Writer

	// ShowStages prints per-stage row counts after the report
	ShowStages bool

	Logger *slog.Logger
}

// NewPipeline creates a new processing pipeline
func NewPipeline(config Config) *Pipeline {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	logger := config.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &Pipeline{
		config:   config,
		reporter: report.NewReporter(config.Output),
		logger:   logger,
	}
}

// Reporter returns the reporter writing to the configured output
func (p *Pipeline) Reporter() *report.Reporter {
	return p.reporter
}

// Load reads and cleans path, then prints the validation report. A
// structural failure is printed as a single message and Load returns nil.
func (p *Pipeline) Load(ctx context.Context, path string) *models.CleanResult {
	logger := p.logger.With("run_id", uuid.NewString(), "file", path)
	start := time.Now()

	logger.Info("loading file")

	table, err := reader.ReadFile(ctx, path, p.config.Input)
	if err != nil {
		p.fail(logger, err)
		return nil
	}

	logger.Debug("file read", "rows", len(table.Rows), "headers", table.Headers)

	c := cleaner.New(
		cleaner.WithCorrections(cleaner.DefaultCorrections().With(p.config.Corrections)),
		cleaner.WithLogger(logger),
	)

	result, err := c.CleanTable(table)
	if err != nil {
		p.fail(logger, err)
		return nil
	}

	summary := result.Summary()
	logger.Info("file cleaned",
		"departments", summary.Departments,
		"equipment_classes", summary.EquipmentClasses,
		"total_equipment", summary.TotalEquipment,
		"records", summary.Records,
		"rejected", len(result.Rejected),
		"duration", time.Since(start),
	)

	p.reporter.PrintValidation(summary)
	if p.config.ShowStages {
		p.reporter.PrintStages(result)
	}

	return result
}

// Pivot builds the aggregation views for result and checks that every view
// conserves the total equipment count
func (p *Pipeline) Pivot(result *models.CleanResult) (*aggregate.Views, error) {
	views := aggregate.Aggregate(result.Records)

	total := aggregate.AutoSum(result.Records)
	if err := views.Verify(total); err != nil {
		p.logger.Error("aggregation check failed", "error", err)
		return nil, err
	}

	p.logger.Debug("views built",
		"departments", len(views.ByDeptTotal.Labels),
		"equipment_classes", len(views.ByClassThenDept.RowLabels),
		"total_equipment", total,
	)

	return views, nil
}

// fail logs err and prints the single failure line. Interrupted runs are
// logged as warnings, bad input as errors.
func (p *Pipeline) fail(logger *slog.Logger, err error) {
	switch {
	case errors.IsStructural(err):
		logger.Error("processing failed", "error", err, "structural", true)
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		logger.Warn("processing interrupted", "error", err)
	default:
		logger.Error("processing failed", "error", err)
	}
	p.reporter.PrintFailure(err)
}
