package reproject

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MaskName is the Robinson alpha mask file placed next to Robinson inputs.
const MaskName = "robinson_mask.tif"

// Layout is the project folder structure: inputs split by projection and
// outputs split by render object.
type Layout struct {
	Root string
}

// Dirs returns every folder of the layout.
func (l Layout) Dirs() []string {
	return []string{
		filepath.Join(l.Root, "Input"),
		l.InputDir(PlateCarree),
		l.InputDir(Robinson),
		filepath.Join(l.Root, "Output"),
		l.OutputDir("sphere"),
		l.OutputDir("robinson"),
	}
}

// InputDir is the input folder for a projection.
func (l Layout) InputDir(projection string) string {
	return filepath.Join(l.Root, "Input", projection)
}

// OutputDir is the render folder for an object type.
func (l Layout) OutputDir(object string) string {
	name := "Sphere"
	if strings.EqualFold(object, "robinson") {
		name = "Robinson"
	}
	return filepath.Join(l.Root, "Output", name)
}

// MaskPath is the Robinson alpha mask location.
func (l Layout) MaskPath() string {
	return filepath.Join(l.InputDir(Robinson), MaskName)
}

// Create makes any missing folders and returns those it created.
func (l Layout) Create() ([]string, error) {
	var created []string
	for _, dir := range l.Dirs() {
		if _, err := os.Stat(dir); err == nil {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return created, fmt.Errorf("creating %s: %w", dir, err)
		}
		created = append(created, dir)
	}
	return created, nil
}

// GeoTIFFs lists .tif and .tiff files in a projection's input folder, sorted,
// skipping the mask.
func (l Layout) GeoTIFFs(projection string) ([]string, error) {
	entries, err := os.ReadDir(l.InputDir(projection))
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if e.IsDir() || name == MaskName || (ext != ".tif" && ext != ".tiff") {
			continue
		}
		files = append(files, filepath.Join(l.InputDir(projection), name))
	}
	sort.Strings(files)
	return files, nil
}
