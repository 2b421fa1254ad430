package ports

// Mover relocates a source file while preserving version-control history.
type Mover interface {
	// Move relocates origin to destination (both root-relative), creating
	// the destination directory first. A failed move is fatal to the run;
	// no cleanup is attempted.
	Move(origin, destination string) error
}
