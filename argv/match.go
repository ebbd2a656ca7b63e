package argv

import (
	"regexp"
	"strings"
)

const quote = `(?P<quote>["']?)`
const dashes = `-+`
const key = `(?P<key>[\w\d_-]+)`
const separator = `[:=]?`
const value = `(?P<value>[^\n\r\x{2028}\x{2029}]*)`

var matcher = regexp.MustCompile(`^` + quote + dashes + key + separator + value + `$`)

// Token is a single invocation token that matched the argument pattern.
type Token struct {
	// Raw is the token exactly as it was received.
	Raw string
	// Key is the upper-cased argument name.
	Key string
	// Value is either the captured string or the boolean true.
	Value interface{}
}

// Match applies the argument pattern to a single token.
//
// Accepted shapes include `--name=value`, `-name:value`, `--flag`, and the
// same wrapped in a pair of quotes, eg `"--name=some value"`. Tokens that do
// not start with at least one dash (after an optional quote) do not match.
func Match(raw string) (tok Token, ok bool) {
	submatch := matcher.FindStringSubmatch(raw)
	if submatch == nil {
		return Token{}, false
	}

	q, name, val := submatch[1], submatch[2], submatch[3]
	if q != "" {
		val = strings.TrimSuffix(val, q)
	}

	tok = Token{Raw: raw, Key: Normalize(name)}
	if val == "" {
		tok.Value = true
	} else {
		tok.Value = val
	}
	return tok, true
}

// Normalize returns the key under which name is stored.
func Normalize(name string) string {
	return strings.ToUpper(name)
}
