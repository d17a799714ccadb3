package engine

import "strings"

// Tokenize splits an input line into tokens on unquoted whitespace.
// A span delimited by matching single or double quotes is kept atomic with
// the quote characters stripped, so `--name="John Doe"` stays one token.
// An unterminated quote consumes the rest of the input. There is no escape
// handling and no failure path.
func Tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	var quote rune
	inToken := false

	flush := func() {
		if inToken {
			tokens = append(tokens, current.String())
			current.Reset()
			inToken = false
		}
	}

	for _, r := range input {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	flush()

	return tokens
}
