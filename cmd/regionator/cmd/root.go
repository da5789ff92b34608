// Package cmd implements the regionator command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cory-johannsen/regionator/internal/config"
	"github.com/cory-johannsen/regionator/internal/importer"
	"github.com/cory-johannsen/regionator/internal/observability"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logger  *zap.Logger
}

// NewRootCommand builds the regionator command tree.
//
// Postcondition: returns a root command with convert and import subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "regionator",
		Short: "Compile RDL region sources into content-loader documents",
		Long: `regionator compiles Region Definition Language sources into the JSON
documents consumed by the world server's content loader.

Each region becomes one context object followed by one item object
per mod placed in it.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "path to configuration file (default: built-in defaults)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: json, console")
	pf.String("format", "json", "document format: json, yaml")
	pf.Int("indent", 2, "JSON indent width; 0 writes compact JSON")
	bind(a.v, pf.Lookup("log-level"), "logging.level")
	bind(a.v, pf.Lookup("log-format"), "logging.format")
	bind(a.v, pf.Lookup("format"), "import.format")
	bind(a.v, pf.Lookup("indent"), "import.indent")

	root.AddCommand(newConvertCommand(a), newImportCommand(a))
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadInto(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) encoder() (importer.Encoder, error) {
	return importer.NewEncoder(a.cfg.Import.Format, a.cfg.Import.Indent)
}
