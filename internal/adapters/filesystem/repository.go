package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tsreorg/internal/domain"
)

// Repository implements ports.SourceRepository on a source root directory
type Repository struct {
	rootPath string
}

// NewRepository creates a new filesystem repository
func NewRepository(rootPath string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(rootPath, "~") {
		home, _ := os.UserHomeDir()
		rootPath = filepath.Join(home, rootPath[1:])
	}
	return &Repository{rootPath: rootPath}
}

// Root returns the source root this repository operates on
func (r *Repository) Root() string {
	return r.rootPath
}

// ListFiles walks the source root collecting .ts files, skipping declaration
// (.d.ts) files and hidden directories. Contents are read up front so each
// file is read exactly once per run.
func (r *Repository) ListFiles() ([]domain.SourceFile, error) {
	var files []domain.SourceFile

	err := filepath.WalkDir(r.rootPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if p != r.rootPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if !strings.HasSuffix(name, ".ts") || strings.HasSuffix(name, ".d.ts") {
			return nil
		}

		content, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		rel, err := filepath.Rel(r.rootPath, p)
		if err != nil {
			return err
		}

		files = append(files, domain.SourceFile{
			Path:    domain.NormalizePath(rel),
			Content: string(content),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk source root: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	return files, nil
}

// WriteFile writes content at the root-relative path
func (r *Repository) WriteFile(relPath, content string) error {
	abs := filepath.Join(r.rootPath, filepath.FromSlash(relPath))
	if err := os.WriteFile(abs, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", relPath, err)
	}
	return nil
}
