package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hectorgimenez/d2rlabels/internal/locale"
)

const (
	DefaultAppPath      = "config/d2rlabels.yaml"
	DefaultSettingsPath = "config/settings.yaml"
	DefaultModName      = "d2rlabels"
)

// App holds the tool's own configuration, as opposed to the label settings.
type App struct {
	// HomeDir points at the game installation. A trailing executable is ignored.
	HomeDir         string   `yaml:"homeDir"`
	ModName         string   `yaml:"modName"`
	SelectedLocales []string `yaml:"selectedLocales"`
	Backup          bool     `yaml:"backup"`
	Debug           bool     `yaml:"debug"`
	LogDir          string   `yaml:"logDir"`
}

// Selection parses SelectedLocales, defaulting to enUS when none are set.
func (a App) Selection() (locale.Selection, error) {
	sel, err := locale.ParseSelection(a.SelectedLocales)
	if err != nil {
		return nil, err
	}
	if len(sel) == 0 {
		sel = locale.Selection{locale.EnUS}
	}
	return sel, nil
}

func LoadApp(path string) (App, error) {
	app := App{ModName: DefaultModName, LogDir: "logs"}
	if err := readYAML(path, &app); err != nil {
		return App{}, err
	}

	app.HomeDir = strings.TrimSpace(app.HomeDir)
	if app.ModName == "" {
		app.ModName = DefaultModName
	}

	return app, nil
}

// LoadSettings reads a settings snapshot and normalizes it.
func LoadSettings(path string) (Settings, error) {
	var s Settings
	if err := readYAML(path, &s); err != nil {
		return Settings{}, err
	}

	return s.Normalize(), nil
}

func WriteSettings(path string, s Settings) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("error encoding settings: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("error encoding settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating %s: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func readYAML(path string, out any) error {
	r, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	defer r.Close()

	d := yaml.NewDecoder(r)
	if err = d.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	return nil
}

// InstallDir is the folder holding the running executable, or the working
// directory when it cannot be determined.
func InstallDir() (string, error) {
	exePath, err := os.Executable()
	if err == nil {
		absPath, absErr := filepath.Abs(exePath)
		if absErr == nil {
			return filepath.Dir(absPath), nil
		}
	}

	workDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("error getting install directory: %w", err)
	}
	return workDir, nil
}

// Locate resolves a relative config path against the working directory
// first and the install directory second, so the tool finds its config when
// started from a shortcut.
func Locate(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	dir, err := InstallDir()
	if err != nil {
		return path
	}
	return filepath.Join(dir, path)
}
