package compiler

import (
	"errors"
	"fmt"

	"github.com/hectorgimenez/d2rlabels/internal/fileio"
)

type Phase string

const (
	PhaseApply Phase = "apply"
	PhaseLoad  Phase = "load"
)

// ConfigError is returned before any I/O when the request cannot be served.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// ReadError means a required string table is missing or unreadable.
type ReadError struct {
	File string
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading %s (%s): %v", e.File, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ParseError means a string table could not be decoded.
type ParseError struct {
	File string
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing %s (%s): %v", e.File, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var errMissing = errors.New("file not found")

// Title is the user facing headline of an error raised during phase.
func Title(err error, phase Phase) string {
	if err == nil {
		return ""
	}

	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return "Configuration required"
	}
	if phase == PhaseLoad {
		return "Failed to load settings"
	}

	var writeErr *fileio.WriteError
	if errors.As(err, &writeErr) {
		return "Failed to save settings"
	}
	return "Failed to apply settings"
}
