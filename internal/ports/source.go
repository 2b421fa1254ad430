package ports

import "tsreorg/internal/domain"

// SourceRepository defines filesystem access to the source tree being
// reorganized.
type SourceRepository interface {
	// ListFiles returns every .ts source file under the root, excluding
	// declaration (.d.ts) files, sorted by path. Contents are read up
	// front: each file is read once per run.
	ListFiles() ([]domain.SourceFile, error)

	// WriteFile writes content at the root-relative path.
	WriteFile(path, content string) error

	// Root returns the source root this repository operates on.
	Root() string
}
