package importer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RegionNameFromPath derives a region name from a source file path: the
// second-to-last dot-separated segment, stripped of its directory.
// "maps/Downtown_5f.rdl" yields "Downtown_5f"; "a/b.c.rdl" yields "c".
//
// Postcondition: returns a non-empty name, or an error if path has no dot or
// the derived name is empty.
func RegionNameFromPath(path string) (string, error) {
	parts := strings.Split(path, ".")
	if len(parts) < 2 {
		return "", fmt.Errorf("region file %q has no extension", path)
	}
	seg := parts[len(parts)-2]
	if i := strings.LastIndexAny(seg, "/"+string(filepath.Separator)); i >= 0 {
		seg = seg[i+1:]
	}
	if seg == "" {
		return "", fmt.Errorf("region file %q yields an empty region name", path)
	}
	return seg, nil
}
