package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotAdjacent is returned by DirectionOf for coordinates outside each other's Moore neighborhood.
	ErrNotAdjacent = errors.New("coordinates are not adjacent")
	// ErrUnknownStrategy is returned by NewEngine for an unrecognised strategy name.
	ErrUnknownStrategy = errors.New("unknown generation strategy")
	// ErrUnknownPattern is returned by Pattern for an unrecognised pattern name.
	ErrUnknownPattern = errors.New("unknown pattern")
)

// DimensionError reports a malformed or empty grid description.
type DimensionError struct {
	Reason string
	// Row is the offending row, or -1 when the error is not about a single row.
	Row  int
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("invalid grid dimensions: %s", e.Reason)
	}
	return fmt.Sprintf("invalid grid dimensions: %s (row %d has %d columns, want %d)",
		e.Reason, e.Row, e.Got, e.Want)
}

func dimensionError(reason string) error {
	return errors.WithStack(&DimensionError{Reason: reason, Row: -1})
}

func raggedRowError(row, want, got int) error {
	return errors.WithStack(&DimensionError{
		Reason: "rows have unequal lengths",
		Row:    row,
		Want:   want,
		Got:    got,
	})
}
