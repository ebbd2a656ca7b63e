package argv

import (
	"fmt"
	"sort"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/justjake/go-argv/env"
)

// Store holds the arguments read from a sequence of invocation tokens, keyed
// by upper-cased name. A value is either the string that followed the name,
// or the boolean true for a bare flag.
//
// Store is populated once, by New. Afterwards the only way to change it is
// SetIfUndefined. A Store should not be mutated from several goroutines at
// once.
type Store struct {
	// map upper-cased name to value
	values map[string]interface{}
	// tokens that did not look like arguments, in order
	ignored []string
}

// New reads tokens in order and records every token that matches the
// argument pattern. When a name appears more than once, the last occurrence
// wins. Other tokens, eg the program name or positional arguments, are
// skipped.
func New(tokens []string) *Store {
	store := &Store{values: make(map[string]interface{})}
	for _, raw := range tokens {
		tok, ok := Match(raw)
		if !ok {
			store.ignored = append(store.ignored, raw)
			continue
		}
		store.values[tok.Key] = tok.Value
	}
	return store
}

// System returns a Store populated from the arguments of the current process.
func System() *Store {
	return New(env.SystemArgs())
}

// Parse splits a single command line into words using shell quoting rules,
// then reads them like New.
//
//   store, err := Parse(`build --target="linux amd64" --verbose`)
func Parse(line string) (*Store, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("argv: parse command line %q: %w", line, err)
	}
	return New(words), nil
}

// SetIfUndefined sets name to value, unless name already has a value.
func (s *Store) SetIfUndefined(name string, value interface{}) {
	key := Normalize(name)
	if _, found := s.values[key]; found {
		return
	}
	s.values[key] = value
}

// Get returns the value of the named argument, ignoring case. If the argument
// was not given, defaultValue is returned instead. A defaultValue that is a
// function without arguments is only called when the argument is missing, and
// its result is returned.
//
//   port := store.Get("port", 3000)
//   token := store.Get("token", func() string { return readTokenFile() })
func (s *Store) Get(name string, defaultValue interface{}) interface{} {
	if val, found := s.Lookup(name); found {
		return val
	}
	return Resolve(defaultValue)
}

// Lookup returns the value for the named argument and true if it is defined,
// or nil and false otherwise.
func (s *Store) Lookup(name string) (val interface{}, found bool) {
	val, found = s.values[Normalize(name)]
	return
}

// Has returns true if the named argument is defined.
func (s *Store) Has(name string) bool {
	_, found := s.Lookup(name)
	return found
}

// Field reads an already-normalized key without case folding.
func (s *Store) Field(key string) interface{} {
	return s.values[key]
}

// String returns the named argument as a string. Bare flags read as "true".
// If the argument is not defined, defaultValue is returned.
func (s *Store) String(name, defaultValue string) string {
	val, found := s.Lookup(name)
	if !found {
		return defaultValue
	}
	return stringify(val)
}

// Flag returns true if the named argument was given as a bare flag.
func (s *Store) Flag(name string) bool {
	val, _ := s.Lookup(name)
	b, ok := val.(bool)
	return ok && b
}

// Keys returns the defined keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len is the number of defined arguments.
func (s *Store) Len() int {
	return len(s.values)
}

// Values returns a copy of every defined argument.
func (s *Store) Values() map[string]interface{} {
	copied := make(map[string]interface{}, len(s.values))
	for k, v := range s.values {
		copied[k] = v
	}
	return copied
}

// Ignored returns the tokens that did not match the argument pattern, in the
// order they were read.
func (s *Store) Ignored() []string {
	copied := make([]string, len(s.ignored))
	copy(copied, s.ignored)
	return copied
}

// DefaultGetter returns a function that will get the given name from this
// store, or resolve defaultValue if it is not defined.
func (s *Store) DefaultGetter(name string, defaultValue interface{}) func() interface{} {
	return func() interface{} {
		return s.Get(name, defaultValue)
	}
}

// MemoGetter returns a function that will get the given name from this store,
// or call compute a single time to produce the value if the name is not
// defined.
func (s *Store) MemoGetter(name string, compute func() interface{}) func() interface{} {
	memod := Memoize(compute)
	return func() interface{} {
		if val, found := s.Lookup(name); found {
			return val
		}
		return memod()
	}
}

func stringify(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
