package shell

import "strings"

// Tokenize splits a command line into argument tokens on runs of spaces
// and tabs. Double quotes group text, including whitespace, into a
// single token and are dropped from the output; a quote that's never
// closed just extends the token to the end of the line.
//
// The result never contains empty tokens and no input is an error.
func Tokenize(line string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, c := range line {
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case (c == ' ' || c == '\t') && !inQuotes:
			flush()
		default:
			current.WriteRune(c)
		}
	}
	flush()

	return tokens
}
