// Package cli implements the fleetclean command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zuhrulumam/fleet_inventory/internal/config"
	"github.com/zuhrulumam/fleet_inventory/internal/logging"
	"github.com/zuhrulumam/fleet_inventory/internal/pipeline"
	"github.com/zuhrulumam/fleet_inventory/internal/reader"
)

// ErrProcessingFailed is returned when the input file could not be
// processed. The failure message has already been printed.
var ErrProcessingFailed = errors.New("processing failed")

// Build information, set by the main package
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// app holds the state shared by one command tree
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCmd builds the fleetclean command tree
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "fleetclean",
		Short: "Clean fleet equipment inventory exports and build pivot summaries",
		Long: `fleetclean repairs spreadsheet exports of a fleet equipment inventory.

It rejoins department names split over two columns, trims and collapses
stray whitespace, drops rows with missing or non-numeric values, fixes
known misspellings and removes duplicate rows, then prints a validation
report. The pivot command also sums equipment counts by department and
equipment class.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./"+config.DefaultFileName+" if present)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default: info)")
	root.PersistentFlags().String("log-format", "", "log format: text or json (default: text)")

	root.AddCommand(
		a.newCleanCmd(),
		a.newPivotCmd(),
		a.newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command until it completes or the process is
// interrupted
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

// setup binds the flags of the running command, loads the configuration
// and builds the logger. bindings maps config keys to flag names.
func (a *app) setup(cmd *cobra.Command, bindings map[string]string) error {
	bindings["logging.level"] = "log-level"
	bindings["logging.format"] = "log-format"

	for key, name := range bindings {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := a.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(cfg.Logging, cmd.ErrOrStderr())
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", "path", used)
	}

	return nil
}

func (a *app) newPipeline(out io.Writer, showStages bool) *pipeline.Pipeline {
	return pipeline.NewPipeline(pipeline.Config{
		Input: reader.Config{
			Comma: a.cfg.Comma(),
			Sheet: a.cfg.Input.Sheet,
		},
		Corrections: a.cfg.CorrectionMap(),
		Output:      out,
		ShowStages:  showStages,
		Logger:      a.logger,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "fleetclean version %s\n", Version)
			fmt.Fprintf(out, "Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "Git commit: %s\n", GitCommit)
		},
	}
}
