package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/go-gol/life/rules"
)

// Glyphs used by Parse and String for the two cell states.
const (
	AliveGlyph = 'x'
	DeadGlyph  = '-'
)

// Validation failures returned by the Board constructors and Add.
var (
	ErrInvalidDimensions = errors.New("board dimensions must be greater than 0")
	ErrSizeMismatch      = errors.New("cells slice must match board dimensions")
	ErrInvalidCharacter  = errors.New("board text must contain only whitespace, 'x', or '-'")
	ErrRaggedRows        = errors.New("board rows must all have the same number of columns")
	ErrOutOfBounds       = errors.New("board must be added inside boundaries")
)

// Board is a finite Game of Life grid. A Board is an immutable value:
// Next and Add build and return fresh Boards and never touch their
// receiver, so a Board can be shared freely once constructed.
type Board struct {
	width  int
	height int
	cells  []bool // row-major, index(x,y) = y*width + x
}

// New creates a board with the given dimensions. A nil cells slice
// means every cell starts dead; otherwise cells must hold exactly
// width*height states in row-major order.
func New(width, height int, cells []bool) (Board, error) {
	if width <= 0 || height <= 0 {
		return Board{}, errors.Wrapf(ErrInvalidDimensions, "[New] got %dx%d", width, height)
	}

	if cells == nil {
		cells = make([]bool, width*height)
	} else {
		if len(cells) != width*height {
			return Board{}, errors.Wrapf(ErrSizeMismatch,
				"[New] got %d cells for a %dx%d board", len(cells), width, height)
		}
		// The board owns its cells; don't alias the caller's slice.
		cells = append([]bool(nil), cells...)
	}

	return Board{width: width, height: height, cells: cells}, nil
}

// Parse builds a board from human-readable pattern text. Each
// whitespace-delimited token is one row, top to bottom; text row 0
// becomes storage row y=0.
func Parse(text string) (Board, error) {
	text = strings.TrimSpace(text)

	for _, c := range text {
		if !unicode.IsSpace(c) && c != AliveGlyph && c != DeadGlyph {
			return Board{}, errors.Wrapf(ErrInvalidCharacter, "[Parse] unexpected character %q", c)
		}
	}

	rows := strings.Fields(text)
	if len(rows) == 0 {
		return Board{}, errors.Wrap(ErrInvalidDimensions, "[Parse] empty pattern")
	}

	width := len(rows[0])
	cells := make([]bool, 0, width*len(rows))
	for i, row := range rows {
		if len(row) != width {
			return Board{}, errors.Wrapf(ErrRaggedRows,
				"[Parse] row %d has %d columns, want %d", i, len(row), width)
		}
		for _, c := range row {
			cells = append(cells, c == AliveGlyph)
		}
	}

	return New(width, len(rows), cells)
}

// Random creates a board where each cell is alive with the given
// probability.
func Random(width, height int, density float64) (Board, error) {
	b, err := New(width, height, nil)
	if err != nil {
		return Board{}, err
	}
	for i := range b.cells {
		b.cells[i] = rand.Float64() < density
	}
	return b, nil
}

// Width returns the number of columns.
func (b Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b Board) Height() int {
	return b.height
}

// index translates 2d coordinates to the flattened cells slice.
// Out-of-range coordinates are a caller bug: y*width+x can alias a
// valid index for an invalid (x,y), so this panics rather than
// returning a wrong cell.
func (b Board) index(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("model: coordinates (%d,%d) out of range for %dx%d board", x, y, b.width, b.height))
	}
	return y*b.width + x
}

// Alive reports whether the cell at (x,y) is alive. Coordinates must
// be in range; validate against Width/Height before calling.
func (b Board) Alive(x, y int) bool {
	return b.cells[b.index(x, y)]
}

// setAlive is the build-time mutator used while populating a board
// that has not been handed out yet. It is never called on a shared
// Board.
func (b Board) setAlive(x, y int, alive bool) {
	b.cells[b.index(x, y)] = alive
}

// Add overlays other onto a copy of b at the given offset, overwriting
// the destination cells (dead cells in other kill live cells in b).
// The inserted board must leave at least one free row and column of
// margin on the far edges: an offset that would sit flush with an edge
// is rejected. That strict check is the long-observed contract of this
// operation and is kept as is.
func (b Board) Add(other Board, offsetX, offsetY int) (Board, error) {
	if offsetX < 0 || offsetY < 0 ||
		offsetX+other.width >= b.width || offsetY+other.height >= b.height {
		return Board{}, errors.Wrapf(ErrOutOfBounds,
			"[Add] %dx%d board at offset (%d,%d) does not fit inside %dx%d",
			other.width, other.height, offsetX, offsetY, b.width, b.height)
	}

	merged := Board{
		width:  b.width,
		height: b.height,
		cells:  append([]bool(nil), b.cells...),
	}
	for y := 0; y < other.height; y++ {
		for x := 0; x < other.width; x++ {
			merged.setAlive(x+offsetX, y+offsetY, other.Alive(x, y))
		}
	}

	return merged, nil
}

// neighborAlive reports whether the neighbor in the given direction is
// alive. Positions off the board count as dead; there is no wraparound.
func (b Board) neighborAlive(x, y int, dir Direction) bool {
	off := dir.Offset()
	nx, ny := x+off.X, y+off.Y
	if nx < 0 || nx >= b.width || ny < 0 || ny >= b.height {
		return false
	}
	return b.cells[ny*b.width+nx]
}

// countAliveNeighbors counts live cells among the 8 adjacent positions.
func (b Board) countAliveNeighbors(x, y int) (count int) {
	for _, dir := range AllDirections() {
		if b.neighborAlive(x, y, dir) {
			count++
		}
	}
	return
}

// Next computes the successor generation. Every cell's next state is a
// function of the current snapshot only, so the result is built in a
// fresh board and b is left untouched.
func (b Board) Next() Board {
	next := Board{
		width:  b.width,
		height: b.height,
		cells:  make([]bool, len(b.cells)),
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if rules.ApplyConwayRules(b.countAliveNeighbors(x, y), b.Alive(x, y)) {
				next.setAlive(x, y, true)
			}
		}
	}
	return next
}

// String renders the board as pattern text: height lines of width
// glyphs, storage row y on text line y, a newline after every row.
// The output round-trips through Parse.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Alive(x, y) {
				sb.WriteRune(AliveGlyph)
			} else {
				sb.WriteRune(DeadGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Equal reports whether two boards have identical dimensions and cell
// states.
func (b Board) Equal(other Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Population returns the total number of living cells.
func (b Board) Population() (count int) {
	for _, alive := range b.cells {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an md5 fingerprint of the cell states, used for cheap
// state comparison in cycle detection.
func (b Board) Hash() string {
	h := md5.New()
	for _, alive := range b.cells {
		if alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
