// Package rdlsource implements importer.Source for directories of RDL files.
package rdlsource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cory-johannsen/regionator/internal/importer"
	"github.com/cory-johannsen/regionator/internal/region"
)

// DefaultExtension selects region source files when none is configured.
const DefaultExtension = ".rdl"

var _ importer.Source = (*Source)(nil)

// Source reads one region per file from a flat directory:
//
//	sourceDir/
//	  Downtown_5f.rdl
//	  plaza.rdl
type Source struct {
	ext  string
	opts []region.Option
}

// NewSource constructs a Source matching files ending in ext. Empty ext means
// DefaultExtension. opts are applied to every Region built.
func NewSource(ext string, opts ...region.Option) *Source {
	if ext == "" {
		ext = DefaultExtension
	}
	return &Source{ext: ext, opts: opts}
}

// Load parses every matching file in sourceDir in name order.
//
// Precondition: sourceDir must be a readable directory.
// Postcondition: returns one RegionData per matching file, or a non-nil error
// naming the first file that could not be read or parsed.
func (s *Source) Load(ctx context.Context, sourceDir string) ([]*importer.RegionData, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", sourceDir, err)
	}

	var results []*importer.RegionData
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), s.ext) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rd, err := LoadFile(filepath.Join(sourceDir, e.Name()), s.opts...)
		if err != nil {
			return nil, err
		}
		results = append(results, rd)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no %s files found in %s", s.ext, sourceDir)
	}
	return results, nil
}

// LoadFile reads and parses a single region source file.
//
// Postcondition: returns a RegionData whose Region is named from path, or a
// non-nil error wrapping any *rdl.GrammarError.
func LoadFile(path string, opts ...region.Option) (*importer.RegionData, error) {
	name, err := importer.RegionNameFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading region file %s: %w", path, err)
	}
	r, warnings, err := region.FromRDL(name, string(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing region file %s: %w", path, err)
	}
	return &importer.RegionData{Name: name, Path: path, Region: r, Warnings: warnings}, nil
}
