package game

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

type Status int

const (
	None Status = iota
	Playing
	Ended
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Ended:
		return "ended"
	default:
		return "none"
	}
}

// MaxFields caps the board size accepted by [Params.Validate].
const MaxFields = 1 << 24

type Params struct {
	Rows      int `schema:"rows,required" yaml:"rows"`
	Cols      int `schema:"cols,required" yaml:"cols"`
	MineCount int `schema:"mines,required" yaml:"mines"`
}

func (p Params) Validate() error {
	if p.Rows < 1 || p.Cols < 1 {
		return fmt.Errorf(
			"%w: board must have positive dimensions (got %dx%d)",
			ErrInvalidConfiguration, p.Rows, p.Cols,
		)
	}
	if p.Rows > MaxFields/p.Cols {
		return fmt.Errorf(
			"%w: board %dx%d exceeds %d fields",
			ErrInvalidConfiguration, p.Rows, p.Cols, MaxFields,
		)
	}
	if p.MineCount > p.Rows*p.Cols {
		return fmt.Errorf(
			"%w: there can't be more mines than fields (%d > %d)",
			ErrInvalidConfiguration, p.MineCount, p.Rows*p.Cols,
		)
	}
	if p.MineCount < 1 {
		return fmt.Errorf(
			"%w: there has to be at least one mine", ErrInvalidConfiguration,
		)
	}
	return nil
}

func (p Params) InBounds(row, col int) bool {
	return 0 <= row && row < p.Rows && 0 <= col && col < p.Cols
}

type Board struct {
	params Params
	cells  []Cell // row-major, rows*cols
	status Status
	moves  int
}

func New(params Params, placer Placer) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return build(params, placer)
}

func NewRandom(params Params, r *rand.Rand) (*Board, error) {
	return New(params, Shuffle(r))
}

// build skips parameter validation; placement errors are still reported.
func build(params Params, placer Placer) (board *Board, err error) {
	defer func() {
		if r := recover(); r != nil {
			var ae AssertionError
			if e, ok := r.(error); ok && errors.As(e, &ae) {
				board, err = nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, ae)
				return
			}
			panic(r)
		}
	}()

	board = &Board{params: params}
	board.initialize()
	board.placeMines(placer)
	board.computeAdjacency()
	board.status = Playing

	Log.Debug(
		"board generated",
		slog.Int("rows", params.Rows),
		slog.Int("cols", params.Cols),
		slog.Int("mines", params.MineCount),
	)
	return board, nil
}

func (b *Board) initialize() {
	b.cells = make([]Cell, b.params.Rows*b.params.Cols)
	for row := range b.params.Rows {
		for col := range b.params.Cols {
			b.cells[b.index(row, col)] = newCell(row, col)
		}
	}
}

// panics [AssertionError]
func (b *Board) placeMines(placer Placer) {
	indices := placer.Place(b.params.Rows, b.params.Cols, b.params.MineCount)
	if len(indices) != b.params.MineCount {
		panic(AssertionError{fmt.Sprintf(
			"placer returned %d cells for %d mines", len(indices), b.params.MineCount,
		)})
	}
	for _, i := range indices {
		if i < 0 || i >= len(b.cells) {
			panic(AssertionError{fmt.Sprintf("mine index %d out of range", i)})
		}
		b.cells[i].assignMine()
	}
}

func (b *Board) computeAdjacency() {
	for i := range b.cells {
		cell := &b.cells[i]
		if cell.HasMine() {
			continue
		}
		count := 0
		for _, n := range b.neighbors(cell.row, cell.col) {
			if n.HasMine() {
				count++
			}
		}
		cell.setAdjacencyCount(count)
	}
}

func (b *Board) index(row, col int) int {
	return row*b.params.Cols + col
}

func (b *Board) get(row, col int) *Cell {
	return &b.cells[b.index(row, col)]
}

func (b *Board) neighborRange(row, col int) (fromRow, toRow, fromCol, toCol int) {
	fromRow, toRow = max(0, row-1), min(row+1, b.params.Rows-1)
	fromCol, toCol = max(0, col-1), min(col+1, b.params.Cols-1)
	return
}

// panics [AssertionError]
func (b *Board) neighbors(row, col int) []*Cell {
	if !b.InBounds(row, col) {
		panic(AssertionError{fmt.Sprintf("field not found %d:%d", row, col)})
	}
	var (
		fromRow, toRow, fromCol, toCol = b.neighborRange(row, col)
		neighbors                      = make([]*Cell, 0, 8)
	)
	for r := fromRow; r <= toRow; r++ {
		for c := fromCol; c <= toCol; c++ {
			if r != row || c != col {
				neighbors = append(neighbors, b.get(r, c))
			}
		}
	}
	return neighbors
}

// Neighbors returns copies of the in-bounds cells around row:col.
func (b *Board) Neighbors(row, col int) ([]Cell, error) {
	if !b.InBounds(row, col) {
		return nil, fmt.Errorf("%w: %d,%d", ErrInvalidField, row, col)
	}
	neighbors := b.neighbors(row, col)
	cells := make([]Cell, len(neighbors))
	for i, n := range neighbors {
		cells[i] = *n
	}
	return cells, nil
}

func (b *Board) Rows() int      { return b.params.Rows }
func (b *Board) Cols() int      { return b.params.Cols }
func (b *Board) MineCount() int { return b.params.MineCount }
func (b *Board) Params() Params { return b.params }
func (b *Board) Status() Status { return b.status }
func (b *Board) Moves() int     { return b.moves }
func (b *Board) Total() int     { return len(b.cells) }

func (b *Board) InBounds(row, col int) bool {
	return b.params.InBounds(row, col)
}

func (b *Board) Cell(row, col int) (Cell, error) {
	if !b.InBounds(row, col) {
		return Cell{}, fmt.Errorf("%w: %d,%d", ErrInvalidField, row, col)
	}
	return *b.get(row, col), nil
}

// Cells yields a copy of every cell in row-major order.
func (b *Board) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range b.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// Hidden counts safe cells the player has not seen yet.
func (b *Board) Hidden() (count int) {
	for _, c := range b.cells {
		if !c.revealed && !c.HasMine() {
			count++
		}
	}
	return
}
