package plan

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alexanderramin/physio/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default_plan.yaml
var defaultPlanYAML []byte

// ValidationError collects every problem found in a plan file.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid plan (%d problems): %s", len(e.Errs), strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() []error { return e.Errs }

// Default returns the bundled plan.
func Default() (*domain.Plan, error) {
	p, err := Parse(defaultPlanYAML, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("loading bundled plan: %w", err)
	}
	return p, nil
}

// DefaultFile returns the bundled plan in file form.
func DefaultFile() (*File, error) {
	return Decode(defaultPlanYAML, FormatYAML)
}

// Load reads a plan file; the format is taken from its extension.
func Load(path string) (*domain.Plan, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Build(f)
}

// LoadFile reads and decodes a plan file without validating it.
func LoadFile(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	f, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes, validates and converts data.
func Parse(data []byte, format Format) (*domain.Plan, error) {
	f, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return Build(f)
}

// Build validates f and converts it into a domain plan.
func Build(f *File) (*domain.Plan, error) {
	if errs := Validate(f); len(errs) > 0 {
		return nil, &ValidationError{Errs: errs}
	}
	return Convert(f)
}

// Decode parses data strictly: unknown fields are rejected.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parsing JSON plan: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing YAML plan: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("parsing TOML plan: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parsing TOML plan: unknown keys %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("unsupported plan format %q", format)
	}
	return &f, nil
}
