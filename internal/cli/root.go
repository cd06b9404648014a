// Package cli holds the famctl commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"famtree/internal/config"
	"famtree/internal/domain"
	"famtree/internal/pkg/log"
	"famtree/internal/repository"
	"famtree/internal/usecase"
)

type options struct {
	sqlitePath string
	verbose    bool
}

// NewRootCmd builds the famctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "famctl",
		Short: "Admin tool for the family tree store",
		Long: `famctl works on the same store as the API, selected by DB_DRIVER.

Examples:

  famctl migrate
  famctl seed -f family.yaml
  famctl stats
  famctl layout --width 1024 --height 768
  famctl export -o backup.json
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.sqlitePath, "sqlite", "", "use this SQLite file instead of the configured store")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "print store logs")
	root.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if !opts.verbose {
			log.SetOutput(io.Discard)
		}
	}

	root.AddCommand(
		newMigrateCmd(opts),
		newStatsCmd(opts),
		newLayoutCmd(opts),
		newSeedCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
	)
	return root
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// open loads config, connects and migrates. The returned func closes the
// store.
func (o *options) open(ctx context.Context) (domain.FamilyUsecase, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if o.sqlitePath != "" {
		cfg.DBDriver = config.DriverSQLite
		cfg.SQLitePath = o.sqlitePath
	}
	store, closeFn, err := repository.Open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.DBDriver, err)
	}
	if err := store.Migrate(ctx); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return usecase.NewFamilyUC(store), closeFn, nil
}
