package frontend

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ROMSource lists the files offered in the game menu.
type ROMSource interface {
	// List returns full paths.
	List() ([]string, error)
}

// DirROMs lists the files of one directory. Exts filters by extension
// (case-insensitive, with the dot); empty accepts everything. Dot files
// are skipped.
type DirROMs struct {
	Dir  string
	Exts []string
}

func (d DirROMs) List() ([]string, error) {
	entries, err := os.ReadDir(d.Dir)
	if err != nil {
		return nil, fmt.Errorf("list roms: %w", err)
	}
	var roms []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !d.accepts(name) {
			continue
		}
		roms = append(roms, filepath.Join(d.Dir, name))
	}
	return roms, nil
}

func (d DirROMs) accepts(name string) bool {
	if len(d.Exts) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	return slices.ContainsFunc(d.Exts, func(e string) bool { return strings.ToLower(e) == ext })
}

// DisplayName is the menu label of a ROM path: the file name without its
// extension.
func DisplayName(rom string) string {
	base := filepath.Base(rom)
	if i := strings.LastIndexAny(base, "/:"); i >= 0 {
		base = base[i+1:]
	}
	if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" {
		return name
	}
	return base
}
