package model

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Outcome is what happened to a single target during a fix run.
type Outcome int

const (
	// Skipped indicates the target was not found on disk.
	Skipped Outcome = iota
	// Fixed indicates the target was read, rewritten and written back.
	Fixed
)

// String returns the lowercase label of the outcome.
func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// MarshalYAML renders the outcome by label.
func (o Outcome) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// UnmarshalYAML parses an outcome label.
func (o *Outcome) UnmarshalYAML(node *yaml.Node) error {
	switch node.Value {
	case "skipped":
		*o = Skipped
	case "fixed":
		*o = Fixed
	default:
		return fmt.Errorf("unknown outcome %q", node.Value)
	}

	return nil
}

// Result is the per-file record of a fix run.
type Result struct {
	Path    Path    `yaml:"path"`
	Outcome Outcome `yaml:"outcome"`
	Changed bool    `yaml:"changed"`
	Removed int     `yaml:"removed"`
}

// RunReport summarises a complete fix run.
type RunReport struct {
	Version  int       `yaml:"version"`
	Root     Path      `yaml:"root"`
	Started  time.Time `yaml:"started"`
	Finished time.Time `yaml:"finished"`
	Results  []Result  `yaml:"results"`
}

// Count returns how many results share the given outcome.
func (r RunReport) Count(outcome Outcome) int {
	n := 0

	for _, result := range r.Results {
		if result.Outcome == outcome {
			n++
		}
	}

	return n
}
