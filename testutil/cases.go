// Package testutil provides shared fixtures and reference oracles for the
// primality tests and benchmarks.
package testutil

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed testdata/cases.yaml
var defaultCases []byte

var (
	ErrNoCases        = errors.New("fixture has no cases")
	ErrDuplicateInput = errors.New("duplicate input")
	ErrUnnamedCase    = errors.New("case has no name")
)

// Case is one known input and its expected primality.
type Case struct {
	Name  string `yaml:"name"`
	N     int64  `yaml:"n"`
	Prime bool   `yaml:"prime"`
	// Slow marks inputs whose trial division scans close to 2^31.5
	// candidates. Tests skip them in -short mode.
	Slow bool `yaml:"slow,omitempty"`
}

type caseFile struct {
	Cases []Case `yaml:"cases"`
}

// LoadCases decodes a YAML fixture and validates it.
func LoadCases(r io.Reader) ([]Case, error) {
	var f caseFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCases
		}
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	if err := validate(f.Cases); err != nil {
		return nil, err
	}
	return f.Cases, nil
}

// DefaultCases returns the embedded fixture table.
func DefaultCases() ([]Case, error) {
	return LoadCases(bytes.NewReader(defaultCases))
}

// MustDefaultCases is DefaultCases for test setup, panicking on a broken fixture.
func MustDefaultCases() []Case {
	cases, err := DefaultCases()
	if err != nil {
		panic(fmt.Sprintf("testutil: default cases: %v", err))
	}
	return cases
}

// Fast filters out cases marked Slow.
func Fast(cases []Case) []Case {
	out := make([]Case, 0, len(cases))
	for _, c := range cases {
		if !c.Slow {
			out = append(out, c)
		}
	}
	return out
}

func validate(cases []Case) error {
	if len(cases) == 0 {
		return ErrNoCases
	}
	seen := make(map[int64]string, len(cases))
	for i, c := range cases {
		if c.Name == "" {
			return fmt.Errorf("case %d (n=%d): %w", i, c.N, ErrUnnamedCase)
		}
		if prev, ok := seen[c.N]; ok {
			return fmt.Errorf("case %q: n=%d already listed as %q: %w", c.Name, c.N, prev, ErrDuplicateInput)
		}
		seen[c.N] = c.Name
	}
	return nil
}
