// Package command tokenizes command lines and derives their signatures.
package command

import "strings"

// Tokenize splits a command line into whitespace-delimited tokens. Quoted
// segments form a single token with the quotes stripped; an unterminated
// quote consumes the rest of the line.
func Tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false
	var quoteChar rune

	for _, r := range input {
		switch r {
		case '"', '\'':
			if !inQuotes {
				inQuotes = true
				quoteChar = r
				if current.Len() > 0 {
					tokens = append(tokens, current.String())
					current.Reset()
				}
			} else if r == quoteChar {
				inQuotes = false
				tokens = append(tokens, current.String())
				current.Reset()
			} else {
				current.WriteRune(r)
			}
		case ' ', '\t':
			if inQuotes {
				current.WriteRune(r)
			} else {
				if current.Len() > 0 {
					tokens = append(tokens, current.String())
					current.Reset()
				}
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}
