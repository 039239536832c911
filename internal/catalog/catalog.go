// Package catalog ships the preset inputs used by the render, verify and
// presets commands. Each case carries its expected distance array.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for catalog lookups.
var (
	// ErrUnknownCase is returned by Lookup for a name not in the catalog.
	ErrUnknownCase = errors.New("catalog: unknown case")

	// ErrInvalidCase indicates a case whose arrays disagree with its n.
	ErrInvalidCase = errors.New("catalog: invalid case")
)

// Custom names the default ad hoc input.
const Custom = "custom"

//go:embed catalog.yaml
var raw []byte

// Case is one example input together with its expected distances.
type Case struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	N           int    `yaml:"n"`
	Shortcuts   []int  `yaml:"shortcuts"`
	Expected    []int  `yaml:"expected"`
}

type document struct {
	Cases []Case `yaml:"cases"`
}

// Validate checks that both arrays hold exactly N values.
// Shortcut values are not range checked; out-of-range targets are legal input.
func (c Case) Validate() error {
	switch {
	case c.N < 1:
		return fmt.Errorf("%w: %q has n=%d", ErrInvalidCase, c.Name, c.N)
	case len(c.Shortcuts) != c.N:
		return fmt.Errorf("%w: %q has %d shortcuts for n=%d", ErrInvalidCase, c.Name, len(c.Shortcuts), c.N)
	case c.Expected != nil && len(c.Expected) != c.N:
		return fmt.Errorf("%w: %q has %d expected values for n=%d", ErrInvalidCase, c.Name, len(c.Expected), c.N)
	}

	return nil
}

// Load decodes the embedded catalog in file order.
func Load() ([]Case, error) {
	return Parse(raw)
}

// Parse decodes a catalog document and validates every case.
func Parse(data []byte) ([]Case, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	seen := make(map[string]bool, len(doc.Cases))
	for _, c := range doc.Cases {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidCase, c.Name)
		}
		seen[c.Name] = true
	}

	return doc.Cases, nil
}

// Lookup returns the embedded case with the given name.
func Lookup(name string) (Case, error) {
	cases, err := Load()
	if err != nil {
		return Case{}, err
	}
	for _, c := range cases {
		if c.Name == name {
			return c, nil
		}
	}

	return Case{}, fmt.Errorf("%w: %q", ErrUnknownCase, name)
}

// Names lists the embedded case names in file order.
func Names() ([]string, error) {
	cases, err := Load()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cases))
	for i, c := range cases {
		names[i] = c.Name
	}

	return names, nil
}
