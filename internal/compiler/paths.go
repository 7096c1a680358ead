package compiler

import (
	"path/filepath"
	"strings"

	"github.com/hectorgimenez/d2rlabels/internal/highlight"
)

// Paths locates the mod files for one game installation.
type Paths struct {
	Home string
	// ModDir is <home>/mods/<mod>, the folder holding the .mpq and backups.
	ModDir string
	// ModRoot is the unpacked <mod>.mpq folder the game reads.
	ModRoot string
	Strings string
	Backups string
}

// ResolvePaths builds the mod layout below home. home may point to the game
// executable itself, in which case its directory is used.
func ResolvePaths(home, modName string) (Paths, error) {
	home = strings.TrimSpace(home)
	if home == "" {
		return Paths{}, &ConfigError{Reason: "game home directory is not set"}
	}
	if modName == "" {
		return Paths{}, &ConfigError{Reason: "mod name is not set"}
	}

	home = filepath.Clean(home)
	if strings.EqualFold(filepath.Ext(home), ".exe") {
		home = filepath.Dir(home)
	}

	modDir := filepath.Join(home, "mods", modName)
	modRoot := filepath.Join(modDir, modName+".mpq")

	return Paths{
		Home:    home,
		ModDir:  modDir,
		ModRoot: modRoot,
		Strings: filepath.Join(modRoot, "data", "local", "lng", "strings"),
		Backups: filepath.Join(modDir, "backup"),
	}, nil
}

func (p Paths) Locale(file string) string {
	return filepath.Join(p.Strings, file)
}

func (p Paths) Highlight(code string) string {
	return filepath.Join(p.ModRoot, filepath.FromSlash(highlight.RelPath(code)))
}
