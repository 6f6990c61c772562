package delta

import "fmt"

// ParseError is returned when an input string matches none of the attempted
// layouts.
type ParseError struct {
	Input   string
	Layouts []string
	Err     error
}

func (e *ParseError) Error() string {
	if len(e.Layouts) == 1 {
		return fmt.Sprintf("parse %q: input does not match layout %q", e.Input, e.Layouts[0])
	}
	return fmt.Sprintf("parse %q: no candidate layout matched (%d tried)", e.Input, len(e.Layouts))
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnitError is returned by Convert for an unrecognized unit.
type UnitError struct {
	Unit Unit
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("unrecognized duration unit %d", int(e.Unit))
}
