package input

import (
	"errors"
	"fmt"
)

// ErrFileAccess is wrapped by every error caused by opening or reading an input file.
var ErrFileAccess = errors.New("input file not accessible")

// ParseError reports the first line a parser rejected.
type ParseError struct {
	Path string
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: parse %q: %v", e.Path, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
