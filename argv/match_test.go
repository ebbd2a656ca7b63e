package argv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	cases := []struct {
		in    string
		key   string
		value interface{}
	}{
		{"--name=value", "NAME", "value"},
		{"-name=value", "NAME", "value"},
		{"---name=value", "NAME", "value"},
		{"--name:value", "NAME", "value"},
		{"--Port=8080", "PORT", "8080"},
		{"--flag", "FLAG", true},
		{"-f", "F", true},
		{"--empty=", "EMPTY", true},
		{"--log-level=debug", "LOG-LEVEL", "debug"},
		{"--snake_case=1", "SNAKE_CASE", "1"},
		{"--port8080", "PORT8080", true},
		{"--name value", "NAME", " value"},
		{"--msg=hello  world", "MSG", "hello  world"},
		{"--eq==x", "EQ", "=x"},
		{"--url=http://host:80/?a=b", "URL", "http://host:80/?a=b"},
		{`"--name=some value"`, "NAME", "some value"},
		{`'--name=some value'`, "NAME", "some value"},
		{`"--quoted"`, "QUOTED", true},
		{`"--mixed=value'`, "MIXED", "value'"},
		{`--trailing="x"`, "TRAILING", `"x"`},
	}

	for _, c := range cases {
		tok, ok := Match(c.in)
		if !ok {
			t.Errorf("Match(%q) did not match", c.in)
			continue
		}
		assert.Equal(t, c.in, tok.Raw)
		assert.Equal(t, c.key, tok.Key, "key of %q", c.in)
		assert.Equal(t, c.value, tok.Value, "value of %q", c.in)
	}
}

func TestMatchRejects(t *testing.T) {
	cases := []string{
		"",
		"node",
		"script.js",
		"path/to/file",
		"name=value",
		"-",
		"--multi=line\nvalue",
		"--a=x\ry",
		"--a=x\u2028y",
		"--a=x\u2029y",
		`""--name`,
	}

	for _, in := range cases {
		if tok, ok := Match(in); ok {
			t.Errorf("Match(%q) -> %#v, expected no match", in, tok)
		}
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "NAME", Normalize("name"))
	assert.Equal(t, "NAME", Normalize("Name"))
	assert.Equal(t, "NAME", Normalize("NAME"))
	assert.Equal(t, "LOG-LEVEL", Normalize("log-level"))
}
