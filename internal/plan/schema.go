// Package plan loads workout plans from the embedded default or from user
// files in JSON, YAML or TOML.
package plan

import (
	"fmt"
	"path/filepath"
	"strings"
)

// File is the on-disk shape of a plan.
type File struct {
	Days []DayFile `json:"days" yaml:"days" toml:"days"`
}

type DayFile struct {
	Date      string         `json:"date" yaml:"date" toml:"date"`
	Label     string         `json:"label" yaml:"label" toml:"label"`
	Type      string         `json:"type" yaml:"type" toml:"type"`
	Duration  string         `json:"duration,omitempty" yaml:"duration,omitempty" toml:"duration,omitempty"`
	Exercises []ExerciseFile `json:"exercises" yaml:"exercises" toml:"exercises"`
}

type ExerciseFile struct {
	ID       string `json:"id" yaml:"id" toml:"id"`
	Name     string `json:"name" yaml:"name" toml:"name"`
	Sets     string `json:"sets,omitempty" yaml:"sets,omitempty" toml:"sets,omitempty"`
	Reps     string `json:"reps,omitempty" yaml:"reps,omitempty" toml:"reps,omitempty"`
	Duration string `json:"duration,omitempty" yaml:"duration,omitempty" toml:"duration,omitempty"`
	Notes    string `json:"notes,omitempty" yaml:"notes,omitempty" toml:"notes,omitempty"`
}

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat converts a flag value into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported plan format %q (expected json, yaml or toml)", s)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("plan file %q has no extension", path)
	}
	return ParseFormat(ext)
}
