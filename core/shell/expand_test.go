package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Hatemabdelfatah/Simple-Shell-Multi-Processing/core/environ"
)

func testExpander(vars map[string]string) *Expander {
	env := environ.NewStore()
	for k, v := range vars {
		env.Setenv(k, v)
	}
	return NewExpander(env)
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		vars     map[string]string
		input    string
		expected string
	}{
		{
			name:     "no dollar is identity",
			input:    "plain-text_42",
			expected: "plain-text_42",
		},
		{
			name:     "simple reference",
			vars:     map[string]string{"FOO": "bar"},
			input:    "$FOO",
			expected: "bar",
		},
		{
			name:     "reference inside text",
			vars:     map[string]string{"FOO": "bar"},
			input:    "x${]", // regression guard: ${ is a bare $ then literals
			expected: "x{]",
		},
		{
			name:     "greedy name match consumes the suffix",
			vars:     map[string]string{"FOO": "bar"},
			input:    "x$FOOy",
			expected: "x",
		},
		{
			name:     "name stops at non-identifier",
			vars:     map[string]string{"NAME": "world"},
			input:    "$NAME!",
			expected: "world!",
		},
		{
			name:     "unset expands to empty",
			input:    "$UNSET",
			expected: "",
		},
		{
			name:     "bare dollar is dropped",
			input:    "$",
			expected: "",
		},
		{
			name:     "adjacent references",
			vars:     map[string]string{"A": "1", "B": "2"},
			input:    "x$A$B",
			expected: "x12",
		},
		{
			name:     "underscore and digits in names",
			vars:     map[string]string{"MY_VAR2": "ok"},
			input:    "$MY_VAR2",
			expected: "ok",
		},
		{
			name:     "value is not rescanned",
			vars:     map[string]string{"A": "$B", "B": "nope"},
			input:    "$A",
			expected: "$B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testExpander(tt.vars)
			assert.Equal(t, tt.expected, e.Expand(tt.input))
		})
	}
}

func TestExpandIsPure(t *testing.T) {
	env := environ.NewStore()
	env.Setenv("FOO", "bar")
	e := NewExpander(env)

	e.Expand("$FOO $BAZ qux")
	assert.Equal(t, []string{"FOO=bar"}, env.Environ())
}

func TestPostProcess(t *testing.T) {
	tests := []struct {
		name     string
		vars     map[string]string
		input    []string
		expected []string
	}{
		{
			name:     "expansion with whitespace is re-split",
			vars:     map[string]string{"AB": "a b"},
			input:    []string{"$AB"},
			expected: []string{"a", "b"},
		},
		{
			name:     "whitespace collapses without empty words",
			vars:     map[string]string{"AB": "  a \t\t b  "},
			input:    []string{"$AB"},
			expected: []string{"a", "b"},
		},
		{
			name:     "token without whitespace stays one token",
			vars:     map[string]string{"AB": "a-b"},
			input:    []string{"x", "$AB"},
			expected: []string{"x", "a-b"},
		},
		{
			name:     "empty expansion stays one empty token",
			input:    []string{"$UNSET"},
			expected: []string{""},
		},
		{
			name:     "re-splitting does not expand again",
			vars:     map[string]string{"V": "$HOME x", "HOME": "/root"},
			input:    []string{"$V"},
			expected: []string{"$HOME", "x"},
		},
		{
			name:     "order is preserved",
			vars:     map[string]string{"AB": "a b"},
			input:    []string{"first", "$AB", "last"},
			expected: []string{"first", "a", "b", "last"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testExpander(tt.vars)
			assert.Equal(t, tt.expected, e.PostProcess(tt.input))
		})
	}
}
