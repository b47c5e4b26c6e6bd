package main

import (
	"os"
	"time"

	"github.com/litetable/litetable-go/internal/app"
	"github.com/litetable/litetable-go/internal/config"
	"github.com/litetable/litetable-go/internal/demo"
	isatty "github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const serviceName = "LiteTable"

var (
	configPath string
	demoOpts   demoOptions
)

type demoOptions struct {
	namespace string
	table     string
	cleanup   bool
}

var rootCmd = &cobra.Command{
	Use:           "litetable",
	Short:         "column-family store with a schema and row client",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the store and expose it over gRPC",
	Long: `
Runs the embedded store with its write-ahead log, snapshots and compaction, and serves it
over gRPC on server_address:server_port. Change events are streamed on cdc_port and
Prometheus metrics on metrics_port when those are non-zero.
`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "walk through namespace, table and row operations",
	Long: `
Creates a namespace and a table, tunes a column family, writes rows concurrently over one
shared connection, then reads, filters, deletes and scans them. With embedded=true the store
runs in-process; otherwise the demo dials server_address:server_port.
`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to litetable.conf (default is the LiteTable directory)")
	demoCmd.Flags().StringVar(&demoOpts.namespace, "namespace", demo.DefaultNamespace, "namespace to create")
	demoCmd.Flags().StringVar(&demoOpts.table, "table", demo.DefaultTable, "table to create")
	demoCmd.Flags().BoolVar(&demoOpts.cleanup, "cleanup", false, "delete the table when done")
	rootCmd.AddCommand(serveCmd, demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg(serviceName + " exited")
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.NewConfig()
	}
	if err != nil {
		return nil, err
	}
	setupLogging(cfg.Debug)
	return cfg, nil
}

func setupLogging(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rt, err := build(cfg, modeServe)
	if err != nil {
		return err
	}
	application, err := app.CreateApp(&app.Config{
		ServiceName: serviceName,
		StopTimeout: cfg.StopTimeoutDuration(),
	}, rt.deps...)
	if err != nil {
		return err
	}
	return application.Run(cmd.Context())
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rt, err := build(cfg, modeDemo)
	if err != nil {
		return err
	}
	runner, err := demo.New(&demo.Config{
		Schema:    rt.schema,
		Rows:      rt.rows,
		Out:       cmd.OutOrStdout(),
		Namespace: demoOpts.namespace,
		Table:     demoOpts.table,
		Cleanup:   demoOpts.cleanup,
	})
	if err != nil {
		return err
	}
	application, err := app.CreateApp(&app.Config{
		ServiceName: serviceName + " demo",
		StopTimeout: cfg.StopTimeoutDuration(),
	}, rt.deps...)
	if err != nil {
		return err
	}
	return application.RunTask(cmd.Context(), runner.Run)
}
