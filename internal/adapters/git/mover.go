package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Mover implements ports.Mover with `git mv`, so file history survives the
// relocation. Commands run from the repository root, the parent of the
// source root.
type Mover struct {
	sourceRoot string
	repoRoot   string
	gitPath    string
}

// NewMover creates a Mover for the given source root. It fails when git is
// not available.
func NewMover(sourceRoot string) (*Mover, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil, fmt.Errorf("git not found in PATH: %w", err)
	}

	// Expand ~ to home directory
	if strings.HasPrefix(sourceRoot, "~") {
		home, _ := os.UserHomeDir()
		sourceRoot = filepath.Join(home, sourceRoot[1:])
	}

	abs, err := filepath.Abs(sourceRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source root: %w", err)
	}

	return &Mover{
		sourceRoot: abs,
		repoRoot:   filepath.Dir(abs),
		gitPath:    gitPath,
	}, nil
}

// Move relocates origin to destination (both source-root-relative) with
// `git mv`, creating the destination directory first. A non-zero exit
// carries git's output and aborts the run.
func (m *Mover) Move(origin, destination string) error {
	oldAbs := filepath.Join(m.sourceRoot, filepath.FromSlash(origin))
	newAbs := filepath.Join(m.sourceRoot, filepath.FromSlash(destination))

	if err := os.MkdirAll(filepath.Dir(newAbs), 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	cmd := exec.Command(m.gitPath, "mv", oldAbs, newAbs)
	cmd.Dir = m.repoRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("git mv: %s: %w", msg, err)
		}
		return fmt.Errorf("git mv: %w", err)
	}
	return nil
}
