package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/regionator/internal/importer"
	"github.com/cory-johannsen/regionator/internal/importer/rdlsource"
)

func newConvertCommand(a *app) *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:   "convert <file.rdl>",
		Short: "Convert one region source to a document",
		Long: `Convert reads a single region source and writes its document to stdout,
or to the file named by --output. The region name is the file name
without its extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := a.encoder()
			if err != nil {
				return err
			}
			rd, err := rdlsource.LoadFile(args[0])
			if err != nil {
				return err
			}
			for _, w := range rd.Warnings {
				a.logger.Warn("source warning", zap.String("region", rd.Name), zap.String("warning", w))
			}
			data, err := importer.Render(rd, enc)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("writing region %q to %s: %w", rd.Name, output, err)
			}
			a.logger.Info("wrote region",
				zap.String("region", rd.Name),
				zap.String("path", output),
				zap.Int("mods", len(rd.Region.Mods)),
			)
			return nil
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return c
}
