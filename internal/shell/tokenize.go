package shell

import (
	"fmt"
	"strings"
)

// Tokenize splits an input line into a command word and its arguments.
// Single and double quotes group words, backslash escapes the next
// character outside single quotes. An unterminated quote is a parse error.
func Tokenize(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inToken := false

	const (
		stateNone = iota
		stateSingle
		stateDouble
	)
	state := stateNone
	escaped := false

	for _, r := range line {
		if escaped {
			current.WriteRune(r)
			escaped = false
			continue
		}

		switch state {
		case stateSingle:
			if r == '\'' {
				state = stateNone
			} else {
				current.WriteRune(r)
			}
		case stateDouble:
			switch r {
			case '"':
				state = stateNone
			case '\\':
				escaped = true
			default:
				current.WriteRune(r)
			}
		default:
			switch r {
			case '\'':
				state = stateSingle
				inToken = true
			case '"':
				state = stateDouble
				inToken = true
			case '\\':
				escaped = true
				inToken = true
			case ' ', '\t':
				if inToken {
					tokens = append(tokens, current.String())
					current.Reset()
					inToken = false
				}
			default:
				current.WriteRune(r)
				inToken = true
			}
		}
	}

	if escaped {
		return nil, fmt.Errorf("trailing backslash")
	}
	if state != stateNone {
		return nil, fmt.Errorf("unterminated quote")
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}
