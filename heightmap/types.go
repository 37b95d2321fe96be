// Package heightmap defines the elevation grid, its sentinel errors
// and the typed error reported for malformed puzzle input.
package heightmap

import (
	"errors"
	"fmt"
)

// Elevation bounds after remapping the S/E markers.
const (
	// MinHeight is the height of 'a' (and of the start marker 'S').
	MinHeight = 0
	// MaxHeight is the height of 'z' (and of the end marker 'E').
	MaxHeight = int('z' - 'a')
)

// Markers used in the textual elevation map.
const (
	StartMarker = 'S'
	EndMarker   = 'E'
)

// ErrMalformedInput is matched (via errors.Is) by every construction error below.
var ErrMalformedInput = errors.New("heightmap: malformed input")

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = malformed("input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = malformed("all rows must have the same length")
	// ErrMissingStart indicates no 'S' marker (or start index out of range).
	ErrMissingStart = malformed("start marker not found")
	// ErrMissingEnd indicates no 'E' marker (or end index out of range).
	ErrMissingEnd = malformed("end marker not found")
	// ErrDuplicateMarker indicates more than one 'S' or more than one 'E'.
	ErrDuplicateMarker = malformed("marker appears more than once")
	// ErrInvalidElevation indicates a character outside 'a'..'z', 'S', 'E'
	// or a numeric height outside [MinHeight, MaxHeight].
	ErrInvalidElevation = malformed("invalid elevation")
)

type malformedError struct{ msg string }

func malformed(msg string) error { return &malformedError{msg: msg} }

func (e *malformedError) Error() string { return "heightmap: " + e.msg }

func (e *malformedError) Is(target error) bool { return target == ErrMalformedInput }

// MalformedInputError reports where in the input a construction error was found.
// Row and Col are zero-based; -1 means the error is not tied to a position.
type MalformedInputError struct {
	Row, Col int
	Err      error
}

// Error implements the error interface.
func (e *MalformedInputError) Error() string {
	if e.Row < 0 {
		return e.Err.Error()
	}
	if e.Col < 0 {
		return fmt.Sprintf("%v (row %d)", e.Err, e.Row)
	}

	return fmt.Sprintf("%v (row %d, col %d)", e.Err, e.Row, e.Col)
}

// Unwrap returns the underlying sentinel.
func (e *MalformedInputError) Unwrap() error { return e.Err }

func errAt(row, col int, err error) error {
	return &MalformedInputError{Row: row, Col: col, Err: err}
}

// Grid is a rectangular elevation map. It is immutable once built.
// Heights[row][col] holds values in [MinHeight, MaxHeight]; Start and End are
// row-major indices (row*Width + col).
type Grid struct {
	Width, Height int
	Heights       [][]int
	Start, End    int
}
