package domain

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// Pattern for relative ESM import statements with the compiled .js suffix,
// e.g. `from "./codec.js"` or `from "../util/paths.js"`. Non-relative
// (package) imports never match.
var importPattern = regexp.MustCompile(`from "(\.\.?/[^"]+\.js)"`)

// ResolveImportTarget resolves a relative import specifier against the
// importing file's directory and swaps the compiled .js suffix for the .ts
// source suffix. Malformed specifiers are not guarded; they propagate as
// bogus paths.
func ResolveImportTarget(fromFile, importPath string) string {
	if strings.HasSuffix(importPath, ".js") {
		importPath = strings.TrimSuffix(importPath, ".js") + ".ts"
	}
	return path.Join(path.Dir(fromFile), importPath)
}

// Relativize computes the import specifier that addresses toFile from
// fromFile's directory: relative, forward slashes, compiled .js suffix,
// and a leading ./ when the result has no relative-path marker.
//
// Resolving the returned specifier from fromFile via ResolveImportTarget
// reproduces toFile.
func Relativize(fromFile, toFile string) (string, error) {
	rel, err := filepath.Rel(path.Dir(fromFile), toFile)
	if err != nil {
		return "", fmt.Errorf("cannot relativize %s from %s: %w", toFile, fromFile, err)
	}

	rel = filepath.ToSlash(rel)
	if strings.HasSuffix(rel, ".ts") {
		rel = strings.TrimSuffix(rel, ".ts") + ".js"
	}
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	return rel, nil
}

// RewriteImports rewrites every relative import in content so that, read
// from the file's destination, each specifier still addresses its target's
// destination. Substitution happens only inside the matched statement;
// the rest of the content is untouched.
func RewriteImports(origin, destination, content string, plan MovePlan) (string, error) {
	var rewriteErr error

	rewritten := importPattern.ReplaceAllStringFunc(content, func(stmt string) string {
		if rewriteErr != nil {
			return stmt
		}

		importPath := importPattern.FindStringSubmatch(stmt)[1]
		target := ResolveImportTarget(origin, importPath)

		rel, err := Relativize(destination, plan.DestinationOf(target))
		if err != nil {
			rewriteErr = err
			return stmt
		}
		return strings.Replace(stmt, importPath, rel, 1)
	})

	if rewriteErr != nil {
		return "", rewriteErr
	}
	return rewritten, nil
}
