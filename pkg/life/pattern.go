package life

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPattern is returned by Parse for malformed plaintext rows.
var ErrInvalidPattern = errors.New("life: invalid pattern")

// Parse builds a width*height grid and seeds its top-left corner from
// plaintext rows: 'O' or '*' is alive, '.' is dead. Rows may be shorter
// than width; missing cells stay dead.
func Parse(width, height int, rows ...string) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if len(rows) > height {
		return nil, fmt.Errorf("%w: %d rows for height %d", ErrInvalidPattern, len(rows), height)
	}
	for r, row := range rows {
		if len(row) > width {
			return nil, fmt.Errorf("%w: row %d has %d cells for width %d", ErrInvalidPattern, r, len(row), width)
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case 'O', '*':
				g.cur[r*width+c] = Alive
			case '.':
			default:
				return nil, fmt.Errorf("%w: row %d col %d: %q", ErrInvalidPattern, r, c, row[c])
			}
		}
	}
	return g, nil
}

// String renders the current generation in the format Parse accepts.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for r := 0; r < g.h; r++ {
		for _, c := range g.cur[r*g.w : (r+1)*g.w] {
			if c == Alive {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
