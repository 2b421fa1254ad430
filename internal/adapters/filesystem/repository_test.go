package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	write := func(rel, content string) {
		t.Helper()
		abs := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(abs, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}

	write("a.ts", `export const a = 1;`)
	write("nested/c.ts", `import { a } from "../a.js";`)
	write("types.d.ts", `declare const a: number;`)
	write("readme.md", `not a source file`)
	write(".cache/d.ts", `hidden`)

	return root
}

func TestListFiles(t *testing.T) {
	root := setupTestTree(t)
	repo := NewRepository(root)

	files, err := repo.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}

	// Declaration files, non-.ts files, and hidden directories are excluded;
	// results come back sorted by path.
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
	if files[0].Path != "a.ts" || files[1].Path != "nested/c.ts" {
		t.Errorf("unexpected paths: %s, %s", files[0].Path, files[1].Path)
	}
	if files[1].Content != `import { a } from "../a.js";` {
		t.Errorf("unexpected content for nested/c.ts: %q", files[1].Content)
	}
}

func TestListFiles_MissingRoot(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "does-not-exist"))

	if _, err := repo.ListFiles(); err == nil {
		t.Fatal("expected error for missing root, got nil")
	}
}

func TestWriteFile(t *testing.T) {
	root := setupTestTree(t)
	repo := NewRepository(root)

	if err := repo.WriteFile("nested/c.ts", `import { a } from "../sub/a.js";`); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(root, "nested", "c.ts"))
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(content) != `import { a } from "../sub/a.js";` {
		t.Errorf("unexpected content: %q", content)
	}
}
