// Package grid computes tile layouts for a conference video grid and diffs
// track sets for incremental reconciliation. Everything here is pure: no
// rendering host, no surfaces, just sizes, positions, and set differences.
package grid

import (
	"github.com/conclave-media/videogrid/pkg/errors"
)

// Bounds is the fixed capacity of a grid, declared at construction.
type Bounds struct {
	MaxRows int
	MaxCols int
}

// Capacity returns the maximum number of tiles the bounds can hold.
func (b Bounds) Capacity() int {
	return b.MaxRows * b.MaxCols
}

// Validate checks that the bounds can hold at least one tile.
func (b Bounds) Validate() error {
	if b.MaxRows < 1 || b.MaxCols < 1 {
		return errors.New(errors.ErrCodeConfigInvalid, "grid bounds must allow at least one tile").
			WithContext("max_rows", b.MaxRows).
			WithContext("max_cols", b.MaxCols)
	}
	return nil
}

// Position is a tile's cell assignment within the grid.
type Position struct {
	Row int
	Col int
}

// Layout is a computed arrangement: row/column counts plus one position per
// tile, in tile order.
type Layout struct {
	Rows      int
	Cols      int
	Positions []Position
}

// Dimensions computes (rows, cols) for n tiles. Rows grow with n up to
// MaxRows and never drop below 1, even for n = 0; columns are however many
// are needed to hold the remainder. Favoring rows over columns keeps small
// grids tall and visually balanced: 3 tiles stack in one column, a fifth
// tile opens the second column.
func (b Bounds) Dimensions(n int) (rows, cols int, err error) {
	rows = n
	if rows < 1 {
		rows = 1
	}
	if rows > b.MaxRows {
		rows = b.MaxRows
	}

	cols = (n + rows - 1) / rows
	if cols < 1 {
		cols = 1
	}

	if cols > b.MaxCols {
		return 0, 0, errors.New(errors.ErrCodeLayoutInconsistent, "computed columns exceed grid bounds").
			WithContext("tiles", n).
			WithContext("columns", cols).
			WithContext("max_rows", b.MaxRows).
			WithContext("max_cols", b.MaxCols)
	}
	return rows, cols, nil
}

// Arrange computes the full layout for the given tile IDs. Tiles fill
// column by column in input order: index i lands at (i % rows, i / rows).
// Arrange fails when the IDs exceed capacity; the error carries the
// offending ID list for diagnosis. The check runs in every build, not just
// under debug flags: silently truncating a call roster is worse than
// failing loudly.
func (b Bounds) Arrange(ids []string) (Layout, error) {
	if len(ids) > b.Capacity() {
		return Layout{}, errors.New(errors.ErrCodeCapacityExceeded, "more tracks than the grid can hold").
			WithContext("tracks", append([]string(nil), ids...)).
			WithContext("count", len(ids)).
			WithContext("capacity", b.Capacity())
	}

	rows, cols, err := b.Dimensions(len(ids))
	if err != nil {
		if gridErr, ok := err.(*errors.Error); ok {
			err = gridErr.WithContext("tracks", append([]string(nil), ids...))
		}
		return Layout{}, err
	}

	positions := make([]Position, len(ids))
	for i := range ids {
		positions[i] = Position{Row: i % rows, Col: i / rows}
	}

	return Layout{Rows: rows, Cols: cols, Positions: positions}, nil
}
