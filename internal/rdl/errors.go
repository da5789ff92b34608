package rdl

import "fmt"

// GrammarError reports source text that does not conform to the RDL grammar.
// No partial tree accompanies it.
type GrammarError struct {
	Pos Position
	Msg string
}

// Error implements error.
func (e *GrammarError) Error() string {
	return fmt.Sprintf("rdl: %s: %s", e.Pos, e.Msg)
}

func errorf(pos Position, format string, args ...any) *GrammarError {
	return &GrammarError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
