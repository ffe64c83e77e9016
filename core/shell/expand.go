package shell

import (
	"regexp"
	"strings"
)

// varRegex matches a $ reference and the maximal identifier run after
// it. The run may be empty: a bare $ before a non-identifier character
// names the empty variable, which is never set.
var varRegex = regexp.MustCompile(`\$[A-Za-z0-9_]*`)

// Env provides variable lookups for expansion.
type Env interface {
	Getenv(key string) string
}

// Expander substitutes $NAME references with values from an
// environment store.
type Expander struct {
	env Env
}

// NewExpander creates an Expander reading from env.
func NewExpander(env Env) *Expander {
	return &Expander{env: env}
}

// Expand replaces every $NAME in the token with the variable's value,
// or "" when unset. The name is the longest run of [A-Za-z0-9_] after
// the $, so a literal suffix glued to a reference becomes part of the
// name ("x$FOOy" reads the variable FOOy, not FOO).
func (e *Expander) Expand(token string) string {
	return varRegex.ReplaceAllStringFunc(token, func(ref string) string {
		return e.env.Getenv(ref[1:])
	})
}

// PostProcess expands every token and re-splits any whose expansion
// introduced spaces or tabs. Consecutive whitespace collapses and the
// re-split path emits no empty words; a token whose expansion has no
// whitespace passes through as one token, even when it expanded to "".
// The re-split words are not expanded again.
func (e *Expander) PostProcess(tokens []string) []string {
	var out []string
	for _, token := range tokens {
		expanded := e.Expand(token)
		if strings.ContainsAny(expanded, " \t") {
			out = append(out, splitWhitespace(expanded)...)
		} else {
			out = append(out, expanded)
		}
	}
	return out
}

func splitWhitespace(s string) []string {
	var words []string
	start := -1
	for i, c := range s {
		if c == ' ' || c == '\t' {
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, s[start:])
	}
	return words
}
