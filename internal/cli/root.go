// Package cli implements the tournament-cli commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"tournamentExport/internal/config"
	"tournamentExport/internal/exporter"
	"tournamentExport/internal/lib/logger"
	"tournamentExport/internal/lib/tracing"
	"tournamentExport/internal/storage"
	"tournamentExport/internal/storage/postgres"
)

type app struct {
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
}

// NewRootCmd builds the command tree. out receives command output and logs.
func NewRootCmd(version string, out io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "tournament-cli",
		Short:         "Export tournament registrations to the registration sheet",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd.ErrOrStderr())
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: $CONFIG_PATH)")

	root.AddCommand(
		newExportCmd(a),
		newPreviewCmd(a),
		newMigrateCmd(a),
		newSeedBandsCmd(a),
	)

	return root
}

// Execute runs the CLI with os.Args.
func Execute(version string) error {
	root := NewRootCmd(version, os.Stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func (a *app) loadConfig(logOut io.Writer) error {
	// .env is optional.
	_ = godotenv.Load()

	path := a.cfgFile
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.Setup(cfg.Env, logOut)
	return nil
}

// withExporter opens the database and the report sink, runs fn and releases
// everything afterwards.
func (a *app) withExporter(ctx context.Context, fn func(svc *exporter.Service) error) (err error) {
	if a.cfg.Tracing.Enabled {
		shutdown, err := tracing.Init(a.cfg.Tracing.ServiceName, a.cfg.Tracing.Output)
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	db, err := postgres.InitDB(&a.cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	sink, err := storage.NewReportSink(ctx, a.cfg.Report)
	if err != nil {
		return err
	}

	return fn(exporter.New(a.log, db, sink, a.cfg.Report.Layout.Placement()))
}
