// Package heightmap turns the textual elevation map into a validated Grid.
//
// What:
//
//   - Each character is a cell; 'a'..'z' are heights 0..25.
//   - 'S' marks the start cell (height of 'a'), 'E' the end cell (height of 'z').
//   - Cells are addressed by row-major index: row*Width + col.
//
// Errors:
//
//   - Every construction failure is a *MalformedInputError wrapping one of
//     ErrEmptyGrid, ErrNonRectangular, ErrMissingStart, ErrMissingEnd,
//     ErrDuplicateMarker or ErrInvalidElevation. All of them satisfy
//     errors.Is(err, ErrMalformedInput).
//
// Complexity:
//
//   - Parse, New: O(W×H) time and memory.
//   - Index, Coordinate, InBounds, Manhattan: O(1).
package heightmap
