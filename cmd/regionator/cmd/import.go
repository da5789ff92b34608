package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/regionator/internal/importer"
	"github.com/cory-johannsen/regionator/internal/importer/rdlsource"
)

func newImportCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "import",
		Short: "Convert every region source in a directory",
		Long: `Import converts each region source in --source and writes one document
per region to --output, named after the region.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ic := a.cfg.Import
			if ic.SourceDir == "" || ic.OutputDir == "" {
				return errors.New("usage: regionator import --source <dir> --output <dir>")
			}
			enc, err := a.encoder()
			if err != nil {
				return err
			}

			imp := importer.New(rdlsource.NewSource(ic.Extension), enc, a.logger, ic.Workers)
			summary, err := imp.Run(cmd.Context(), ic.SourceDir, ic.OutputDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "import complete: %d region(s), %d mod(s) in %s\n",
				summary.Regions, summary.Mods, summary.Elapsed.Round(time.Millisecond))
			return nil
		},
	}

	f := c.Flags()
	f.String("source", "", "directory of region sources")
	f.String("output", "", "directory receiving one document per region")
	f.String("extension", ".rdl", "source file extension")
	f.Int("workers", 4, "regions converted concurrently")
	bind(a.v, f.Lookup("source"), "import.source_dir")
	bind(a.v, f.Lookup("output"), "import.output_dir")
	bind(a.v, f.Lookup("extension"), "import.extension")
	bind(a.v, f.Lookup("workers"), "import.workers")
	return c
}
