package importer

import (
	"context"

	"github.com/cory-johannsen/regionator/internal/region"
)

// RegionData is one loaded region source, produced by every Source implementation.
type RegionData struct {
	// Name is the region name derived from Path.
	Name string
	// Path is the source file the region was read from.
	Path   string
	Region *region.Region
	// Warnings lists recoverable oddities found while decoding the source.
	Warnings []string
}

// Source loads regions from a format-specific source directory.
//
// Precondition: sourceDir must exist and contain the expected layout for the format.
// Postcondition: returns at least one RegionData, or a non-nil error.
type Source interface {
	Load(ctx context.Context, sourceDir string) ([]*RegionData, error)
}
