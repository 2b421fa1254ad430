package application

import "tsreorg/internal/domain"

// Re-export domain types for use by adapters
type (
	MovePlan   = domain.MovePlan
	SourceFile = domain.SourceFile
	FileUpdate = domain.FileUpdate
	RunRecord  = domain.RunRecord
)

// ParsePlan decodes a JSON move mapping into a normalized plan
func ParsePlan(raw string) (domain.MovePlan, error) {
	return domain.ParsePlan(raw)
}

// NormalizePath converts a path to the canonical slash-separated form
func NormalizePath(p string) string {
	return domain.NormalizePath(p)
}
