// Package life implements Conway's Game of Life (B3/S23) on a fixed-size
// toroidal grid.
//
// A Grid is owned by a single writer. Randomize and Advance must not run
// concurrently with each other or with reads that expect a stable
// generation; the package does no locking of its own.
package life

import (
	"errors"
	"fmt"
	"math"

	"torus-life/pkg/core"
)

// CellState is the state of a single cell.
type CellState uint8

const (
	// Dead is the zero value so freshly allocated buffers start empty.
	Dead CellState = 0
	// Alive must stay 1: Advance sums neighbor states directly.
	Alive CellState = 1
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

var (
	// ErrInvalidSize is returned when a grid would have no cells.
	ErrInvalidSize = errors.New("life: invalid grid size")
	// ErrOutOfBounds is matched by every *OutOfBoundsError.
	ErrOutOfBounds = errors.New("life: cell out of bounds")
)

// OutOfBoundsError reports a read outside the grid.
type OutOfBoundsError struct {
	Row, Col      int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", e.Row, e.Col, e.Width, e.Height)
}

// Is lets errors.Is(err, ErrOutOfBounds) match.
func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Grid holds two equally sized row-major buffers. cur is the committed
// generation; nxt is scratch space for Advance and is never exposed.
type Grid struct {
	w, h       int
	cur        []CellState
	nxt        []CellState
	generation uint64
}

// New returns a grid of width*height dead cells.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if height > math.MaxInt/width {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidSize, width, height)
	}
	total := width * height
	return &Grid{
		w:   width,
		h:   height,
		cur: make([]CellState, total),
		nxt: make([]CellState, total),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(width, height int) *Grid {
	g, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Generation returns the number of advances since construction or the last
// Randomize.
func (g *Grid) Generation() uint64 { return g.generation }

// Randomize replaces every cell with an independent coin flip drawn from a
// PCG source seeded with seed. Prior content is ignored.
func (g *Grid) Randomize(seed int64) {
	core.FillBinary(core.NewRNG(seed).Source(), g.cur)
	g.generation = 0
}

// Advance computes one full generation into the scratch buffer and swaps it
// in. It does not allocate.
func (g *Grid) Advance() {
	w, h := g.w, g.h
	cur, nxt := g.cur, g.nxt
	for r := 0; r < h; r++ {
		up := prev(r, h) * w
		mid := r * w
		down := next(r, h) * w
		for c := 0; c < w; c++ {
			left := prev(c, w)
			right := next(c, w)
			n := cur[up+left] + cur[up+c] + cur[up+right] +
				cur[mid+left] + cur[mid+right] +
				cur[down+left] + cur[down+c] + cur[down+right]
			nxt[mid+c] = Rule(cur[mid+c], int(n))
		}
	}
	g.cur, g.nxt = nxt, cur
	g.generation++
}

// Rule applies B3/S23 to a cell with the given live neighbor count.
func Rule(state CellState, neighbors int) CellState {
	if neighbors == 3 || (neighbors == 2 && state == Alive) {
		return Alive
	}
	return Dead
}

// prev and next wrap a coordinate on an axis of length n. Branches beat a
// general remainder here and avoid relying on the sign of %.
func prev(i, n int) int {
	if i == 0 {
		return n - 1
	}
	return i - 1
}

func next(i, n int) int {
	if i == n-1 {
		return 0
	}
	return i + 1
}

func (g *Grid) check(row, col int) error {
	if row < 0 || row >= g.h || col < 0 || col >= g.w {
		return &OutOfBoundsError{Row: row, Col: col, Width: g.w, Height: g.h}
	}
	return nil
}

// Get returns the state of the cell at (row, col). Coordinates are not
// wrapped; anything outside the grid yields an *OutOfBoundsError.
func (g *Grid) Get(row, col int) (CellState, error) {
	if err := g.check(row, col); err != nil {
		return Dead, err
	}
	return g.cur[row*g.w+col], nil
}

// Alive reports whether (row, col) is alive. It panics with an
// *OutOfBoundsError for coordinates outside the grid.
func (g *Grid) Alive(row, col int) bool {
	if err := g.check(row, col); err != nil {
		panic(err)
	}
	return g.cur[row*g.w+col] == Alive
}

// Neighbors returns the eight wrapped neighbors of (row, col) in row-major
// offset order.
func (g *Grid) Neighbors(row, col int) ([8]Coord, error) {
	if err := g.check(row, col); err != nil {
		return [8]Coord{}, err
	}
	up, down := prev(row, g.h), next(row, g.h)
	left, right := prev(col, g.w), next(col, g.w)
	return [8]Coord{
		{up, left}, {up, col}, {up, right},
		{row, left}, {row, right},
		{down, left}, {down, col}, {down, right},
	}, nil
}

// LiveNeighbors counts the alive cells among the neighbors of (row, col).
func (g *Grid) LiveNeighbors(row, col int) (int, error) {
	ns, err := g.Neighbors(row, col)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range ns {
		if g.cur[n.Row*g.w+n.Col] == Alive {
			count++
		}
	}
	return count, nil
}

// Population counts alive cells in the current generation.
func (g *Grid) Population() int {
	count := 0
	for _, c := range g.cur {
		count += int(c)
	}
	return count
}

// Snapshot copies the current generation into dst, growing it if needed,
// and returns the row-major result.
func (g *Grid) Snapshot(dst []CellState) []CellState {
	if cap(dst) < len(g.cur) {
		dst = make([]CellState, len(g.cur))
	}
	dst = dst[:len(g.cur)]
	copy(dst, g.cur)
	return dst
}

// Equal reports whether both grids have the same size and current cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cur {
		if other.cur[i] != c {
			return false
		}
	}
	return true
}
