package application

import (
	"fmt"
	"path"
	"strings"

	"tsreorg/internal/domain"
)

// ValidatePlan checks a parsed plan before any side effect takes place.
// Origins and destinations must stay under the source root, identity
// mappings are rejected, and destinations must be unique.
//
// Validation cannot see the working tree: collisions with files outside the
// plan, or untracked origins, still surface later as fatal move errors.
func ValidatePlan(plan domain.MovePlan) error {
	seen := make(map[string]string, len(plan))

	for _, origin := range plan.Origins() {
		dest := plan[origin]

		if origin == dest {
			return &PlanError{
				Origin:      origin,
				Destination: dest,
				Reason:      "origin and destination are the same",
			}
		}

		if reason := invalidPathReason("origin", origin); reason != "" {
			return &PlanError{Origin: origin, Destination: dest, Reason: reason}
		}
		if reason := invalidPathReason("destination", dest); reason != "" {
			return &PlanError{Origin: origin, Destination: dest, Reason: reason}
		}

		if prev, ok := seen[dest]; ok {
			return &PlanError{
				Origin:      origin,
				Destination: dest,
				Reason:      fmt.Sprintf("destination already used by %s", prev),
			}
		}
		seen[dest] = origin
	}

	return nil
}

// invalidPathReason reports why a plan path is unusable, or "" when it is fine
func invalidPathReason(role, p string) string {
	switch {
	case p == "" || p == ".":
		return fmt.Sprintf("%s path is empty", role)
	case path.IsAbs(p):
		return fmt.Sprintf("%s path must be relative to the source root", role)
	case p == ".." || strings.HasPrefix(p, "../"):
		return fmt.Sprintf("%s path escapes the source root", role)
	}
	return ""
}
