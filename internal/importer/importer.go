package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Importer orchestrates region conversion from a Source to an output directory.
type Importer struct {
	source  Source
	encoder Encoder
	logger  *zap.Logger
	workers int
}

// Summary reports the outcome of a successful Run.
type Summary struct {
	Regions  int
	Mods     int
	Warnings int
	Elapsed  time.Duration
}

// New constructs an Importer backed by the given Source and Encoder. At most
// workers regions are converted concurrently; values below 1 mean 1.
//
// Precondition: source, encoder, and logger must be non-nil.
// Postcondition: returns a non-nil Importer.
func New(source Source, encoder Encoder, logger *zap.Logger, workers int) *Importer {
	if workers < 1 {
		workers = 1
	}
	return &Importer{source: source, encoder: encoder, logger: logger, workers: workers}
}

// Run loads regions from sourceDir, renders and validates each, and writes
// one document per region to outputDir as <region name><encoder ext>.
//
// Precondition: sourceDir must satisfy the source's layout requirements;
// outputDir must exist or be creatable.
// Postcondition: one document per region is written to outputDir, or the
// first error is returned and remaining conversions are cancelled.
func (imp *Importer) Run(ctx context.Context, sourceDir, outputDir string) (Summary, error) {
	overall := time.Now()

	t0 := time.Now()
	regions, err := imp.source.Load(ctx, sourceDir)
	if err != nil {
		return Summary{}, fmt.Errorf("loading source: %w", err)
	}
	imp.logger.Info("loaded regions",
		zap.Int("count", len(regions)),
		zap.Duration("elapsed", time.Since(t0).Round(time.Millisecond)),
	)

	seen := make(map[string]string, len(regions))
	for _, rd := range regions {
		if prev, dup := seen[rd.Name]; dup {
			return Summary{}, fmt.Errorf("region %q is defined by both %s and %s", rd.Name, prev, rd.Path)
		}
		seen[rd.Name] = rd.Path
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	var mods, warnings atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(imp.workers)
	for _, rd := range regions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t1 := time.Now()
			log := imp.logger.With(zap.String("region", rd.Name), zap.String("source", rd.Path))
			for _, w := range rd.Warnings {
				log.Warn("source warning", zap.String("warning", w))
			}

			data, err := Render(rd, imp.encoder)
			if err != nil {
				return err
			}

			outPath := filepath.Join(outputDir, rd.Name+imp.encoder.Ext())
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("writing region %q to %s: %w", rd.Name, outPath, err)
			}

			mods.Add(int64(len(rd.Region.Mods)))
			warnings.Add(int64(len(rd.Warnings)))
			log.Info("wrote region",
				zap.String("path", outPath),
				zap.Int("mods", len(rd.Region.Mods)),
				zap.Duration("elapsed", time.Since(t1).Round(time.Millisecond)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Regions:  len(regions),
		Mods:     int(mods.Load()),
		Warnings: int(warnings.Load()),
		Elapsed:  time.Since(overall),
	}
	imp.logger.Info("import complete",
		zap.Int("regions", summary.Regions),
		zap.Int("mods", summary.Mods),
		zap.Int("warnings", summary.Warnings),
		zap.Duration("elapsed", summary.Elapsed.Round(time.Millisecond)),
	)
	return summary, nil
}

// Render renders rd's region, serialises it with enc, and validates the result.
//
// Precondition: rd and enc must be non-nil.
// Postcondition: returns a serialised document that passes enc.Validate, or a
// non-nil error naming the region.
func Render(rd *RegionData, enc Encoder) ([]byte, error) {
	doc, err := rd.Region.Render()
	if err != nil {
		return nil, fmt.Errorf("rendering region %q (%s): %w", rd.Name, rd.Path, err)
	}
	data, err := enc.Encode(doc)
	if err != nil {
		return nil, fmt.Errorf("serialising region %q: %w", rd.Name, err)
	}
	// Validate output is loadable before it is written.
	if err := enc.Validate(data); err != nil {
		return nil, fmt.Errorf("region %q failed validation: %w", rd.Name, err)
	}
	return data, nil
}
