package domain

import "time"

// SourceFile is a discovered source file. Content is read once at the start
// of a run and mutated only in memory.
type SourceFile struct {
	Path    string // source-root-relative, normalized
	Content string
}

// FileUpdate records the destination and new content for one file whose
// imports or location changed.
type FileUpdate struct {
	Origin         string
	Destination    string
	Content        string
	Moved          bool
	ContentChanged bool
}

// RunRecord summarizes one completed reorganization run.
type RunRecord struct {
	ID        int64
	StartedAt time.Time
	Root      string
	Moved     int
	Updated   int
}

// ComputeUpdates resolves every relative import in every file to its pre-move
// target, maps the target through the plan, and relativizes it against the
// file's own destination. A file appears in the result iff its content or
// its path changed.
func ComputeUpdates(files []SourceFile, plan MovePlan) ([]FileUpdate, error) {
	var updates []FileUpdate

	for _, f := range files {
		dest := plan.DestinationOf(f.Path)

		rewritten, err := RewriteImports(f.Path, dest, f.Content, plan)
		if err != nil {
			return nil, err
		}

		if rewritten == f.Content && dest == f.Path {
			continue
		}

		updates = append(updates, FileUpdate{
			Origin:         f.Path,
			Destination:    dest,
			Content:        rewritten,
			Moved:          dest != f.Path,
			ContentChanged: rewritten != f.Content,
		})
	}

	return updates, nil
}
