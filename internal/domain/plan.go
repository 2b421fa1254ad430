package domain

import (
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"sort"
)

// MovePlan maps a normalized origin path to its destination path.
// Paths are source-root-relative, slash-separated, and cleaned.
// A path not present as a key stays in place.
type MovePlan map[string]string

// ParsePlan decodes a JSON object of origin -> destination pairs
// into a normalized MovePlan.
func ParsePlan(raw string) (MovePlan, error) {
	var pairs map[string]string
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		return nil, fmt.Errorf("invalid move mapping: %w", err)
	}

	plan := make(MovePlan, len(pairs))
	for origin, dest := range pairs {
		plan[NormalizePath(origin)] = NormalizePath(dest)
	}
	return plan, nil
}

// NormalizePath converts a path to the canonical slash-separated, cleaned form
func NormalizePath(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// DestinationOf returns the destination for a path, or the path itself
// when it is not being moved.
func (p MovePlan) DestinationOf(file string) string {
	if dest, ok := p[file]; ok {
		return dest
	}
	return file
}

// Origins returns the plan's origin paths sorted for deterministic
// processing and log order.
func (p MovePlan) Origins() []string {
	origins := make([]string, 0, len(p))
	for origin := range p {
		origins = append(origins, origin)
	}
	sort.Strings(origins)
	return origins
}
