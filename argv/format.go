package argv

// This file is about turning a Store back into command line and shell text.

import (
	"strings"

	"github.com/iancoleman/strcase"
	shellquote "github.com/kballard/go-shellquote"
)

// Tokens renders the store as invocation tokens, sorted by key. Bare flags
// become `--name`, everything else `--name=value`. For arguments that were read
// from tokens, reading the result with New gives back the same arguments.
// Values set with SetIfUndefined are written with fmt.Sprint and may read back
// differently, eg false comes back as the string "false".
func (s *Store) Tokens() []string {
	keys := s.Keys()
	tokens := make([]string, 0, len(keys))
	for _, k := range keys {
		name := "--" + strings.ToLower(k)
		if s.Flag(k) {
			tokens = append(tokens, name)
			continue
		}
		tokens = append(tokens, name+"="+stringify(s.values[k]))
	}
	return tokens
}

// CommandLine is Tokens joined into a single line, quoted where needed so
// that Parse reads it back.
func (s *Store) CommandLine() string {
	return shellquote.Join(s.Tokens()...)
}

// Exports renders the store as shell variable assignments, eg
// `LOG_LEVEL=debug`. Names are converted to SCREAMING_SNAKE_CASE so that keys
// such as LOG-LEVEL become valid variable names, and get a leading underscore
// when they would start with a digit. Values are escaped.
//
// When several keys convert to the same name, eg A-B and A_B, only the first
// key in sorted order is exported.
func (s *Store) Exports() []string {
	keys := s.Keys()
	lines := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		name := exportName(k)
		if seen[name] {
			continue
		}
		seen[name] = true
		lines = append(lines, name+"="+shellquote.Join(stringify(s.values[k])))
	}
	return lines
}

func exportName(key string) string {
	name := strcase.ToScreamingSnake(key)
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}
