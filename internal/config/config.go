package config

import "os"

const DefaultSourceRoot = "src"

// SourceRoot returns the source root from the TSREORG_ROOT env var,
// falling back to DefaultSourceRoot.
func SourceRoot() string {
	if env := os.Getenv("TSREORG_ROOT"); env != "" {
		return env
	}
	return DefaultSourceRoot
}
