package env

import (
	"os"
	"path/filepath"
)

// Args is a snapshot of a process argument vector: the program name followed
// by the invocation tokens.
type Args []string

// SystemArgs returns an Args instance populated with a copy of os.Args.
// Changes to the result never reach os.Args.
func SystemArgs() Args {
	copied := make([]string, len(os.Args))
	copy(copied, os.Args)
	return Args(copied)
}

// ProcessName returns the basename of the program, or "" if args is empty.
func (x Args) ProcessName() string {
	if len(x) == 0 {
		return ""
	}
	return filepath.Base(x[0])
}

// Argv returns just the passed arguments.
func (x Args) Argv() []string {
	if len(x) == 0 {
		return nil
	}
	return x[1:]
}
