package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmpty is returned for a line that is blank after trimming. Callers treat
// it as "skip this group".
var ErrEmpty = errors.New("empty selection")

// ParseError reports the first token that is not an integer.
type ParseError struct {
	Token string // Offending token, trimmed.
	Pos   int    // Zero-based position in the comma-separated list.
	Err   error  // Underlying strconv error, nil for empty tokens.
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("empty entry at position %d", e.Pos)
	}
	return fmt.Sprintf("invalid index %q at position %d", e.Token, e.Pos)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Selection is the ordered list of indices the operator typed, duplicates
// included.
type Selection []int

// Parse parses one input line. Whitespace around tokens is ignored. A single
// trailing comma ("0,1,") is tolerated; any other empty token is an error.
func Parse(line string) (Selection, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrEmpty
	}
	line = strings.TrimSuffix(line, ",")

	tokens := strings.Split(line, ",")
	sel := make(Selection, 0, len(tokens))
	for pos, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, &ParseError{Pos: pos}
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &ParseError{Token: tok, Pos: pos, Err: err}
		}
		sel = append(sel, n)
	}
	return sel, nil
}

// InRange reports whether idx addresses an element of a list of length n.
// Negative indices are never in range.
func InRange(idx, n int) bool {
	return idx >= 0 && idx < n
}
