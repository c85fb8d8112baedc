// Package main provides the CLI entry point for blokke-go.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ukaji3/blokke-go/internal/config"
	"github.com/ukaji3/blokke-go/pkg/blokke"
	"github.com/ukaji3/blokke-go/pkg/blokke/output"
)

var (
	outputPath  string
	asJSON      bool
	pretty      bool
	configPath  string
	debug       bool
	postgresDSN string
	quiet       bool
	defaultCfg  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "blokke [input.xlsx]",
		Short: "Convert BLOKKE schedules into activities",
		Long: `blokke-go reads the HOLD and BLOKKE sheets of a workbook and produces
the activity table (KLA, AKT_NAVN, POS, PER).`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (default: built-in)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write activities to this xlsx file")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of the activity table")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "Log debug information to the console")
	rootCmd.Flags().StringVar(&postgresDSN, "postgres", "", "Load activities into PostgreSQL (overrides configuration)")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "Do not print results to stdout")

	dumpCmd := &cobra.Command{
		Use:   "dumpconfig [DEST]",
		Short: "Write the active configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE:  dumpConfig,
	}
	dumpCmd.Flags().BoolVar(&defaultCfg, "default", false, "Write the built-in defaults with comments")
	rootCmd.AddCommand(dumpCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) (err error) {
	inputPath := args[0]

	cfg, err := config.LoadConfiguration(configPath)
	if err != nil {
		return fmt.Errorf("unable to load configuration: %w", err)
	}
	if debug {
		cfg.Logging.ConsoleLogger.Level = "debug"
	}
	if postgresDSN != "" {
		cfg.Output.Postgres.DSN = postgresDSN
	}

	log, err := cfg.Logging.Prepare()
	if err != nil {
		return fmt.Errorf("unable to prepare logger: %w", err)
	}
	defer func() {
		// stderr may refuse sync, nothing to report then
		_ = log.Sync()
	}()

	runID := uuid.New()
	log = log.With(zap.Stringer("run", runID))
	log.Debug("Starting conversion", zap.String("input", inputPath))

	ctx := cmd.Context()

	var sinks output.Multi
	switch {
	case quiet:
	case asJSON:
		sinks = append(sinks, output.JSON{W: os.Stdout, Pretty: pretty, Hold: cfg.Output.IncludeHold})
	default:
		sinks = append(sinks, output.Table{W: os.Stdout})
	}
	if outputPath != "" {
		sinks = append(sinks, output.XLSX{Path: outputPath, Sheet: cfg.Output.Sheet, IncludeHold: cfg.Output.IncludeHold})
	}
	if dsn := cfg.Output.Postgres.DSN; dsn != "" {
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return fmt.Errorf("unable to connect to database: %w", err)
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			return fmt.Errorf("unable to connect to database: %w", err)
		}
		sinks = append(sinks, output.Postgres{DB: pool, Table: cfg.Output.Postgres.Table, RunID: runID})
	}

	wb, err := blokke.OpenWorkbook(inputPath)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, wb.Close())
	}()

	opts := cfg.Options()
	opts.Logger = log

	res, err := blokke.Run(ctx, wb, sinks, opts)
	if err != nil {
		log.Error("Conversion failed", zap.Error(err))
		return err
	}
	if outputPath != "" {
		log.Info("Activities saved", zap.String("output", outputPath), zap.Int("activities", len(res.Activities)))
	}
	return nil
}

func dumpConfig(_ *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if defaultCfg {
		data, err = config.Prepare()
	} else {
		var cfg *config.Config
		if cfg, err = config.LoadConfiguration(configPath); err != nil {
			return fmt.Errorf("unable to load configuration: %w", err)
		}
		data, err = config.Dump(cfg)
	}
	if err != nil {
		return err
	}

	if len(args) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(args[0], data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	return nil
}
