// Package model defines the data structures shared by the layoutfix layers.
package model

import "path/filepath"

// Path represents a repository-relative, slash-separated file path.
type Path string

// OSPath converts the path to the host separator convention.
func (p Path) OSPath() string {
	return filepath.FromSlash(string(p))
}

// TargetStatus describes a target file before any rewrite happens.
type TargetStatus struct {
	Path    Path
	Exists  bool
	Pending int // wrapper imports and tags still present
}
