package catalog

import (
	"errors"
	"fmt"
)

// ErrNoTitleColumn is wrapped by LoadError when the header lacks a Title column.
var ErrNoTitleColumn = errors.New("missing required Title column")

// LoadError reports a catalog file that could not be read as tabular data.
type LoadError struct {
	Source string
	Line   int
	Err    error
}

func (e *LoadError) Error() string {
	source := e.Source
	if source == "" {
		source = "catalog"
	}
	if e.Line > 0 {
		return fmt.Sprintf("load %s: line %d: %v", source, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
