package game

import (
	"fmt"
	"log/slog"

	"github.com/gammazero/deque"
)

type CellUpdate struct {
	Row, Col int
	Value    Value
}

type Update struct {
	Cells  []CellUpdate // newly revealed, in reveal order
	Status Status
}

func (c Cell) update() CellUpdate {
	return CellUpdate{Row: c.row, Col: c.col, Value: c.value}
}

// Select reveals row:col. Selecting a mine ends the game; selecting a safe
// cell reveals it together with its safe neighbors and cascades through
// every connected zero-count cell.
func (b *Board) Select(row, col int) (Update, error) {
	if !b.InBounds(row, col) {
		return Update{Status: b.status}, fmt.Errorf(
			"%w: %d,%d", ErrInvalidField, row, col,
		)
	}
	if b.status == Ended {
		return Update{Status: b.status}, ErrGameEnded
	}

	cell := b.get(row, col)

	if cell.Revealed() {
		return Update{Status: b.status}, nil
	}

	b.moves++

	if cell.HasMine() {
		cell.markRevealed()
		b.status = Ended
		Log.Debug(
			"mine selected",
			slog.Int("row", row), slog.Int("col", col), slog.Int("moves", b.moves),
		)
		return Update{Cells: []CellUpdate{cell.update()}, Status: b.status}, nil
	}

	return Update{Cells: b.reveal(cell), Status: b.status}, nil
}

func (b *Board) reveal(start *Cell) (revealed []CellUpdate) {
	var queue deque.Deque[*Cell]
	queued := make([]bool, len(b.cells))

	enqueue := func(c *Cell) {
		i := b.index(c.row, c.col)
		if c.HasMine() || queued[i] {
			return
		}
		queued[i] = true
		queue.PushBack(c)
	}

	start.markRevealed()
	revealed = append(revealed, start.update())
	queued[b.index(start.row, start.col)] = true

	for _, n := range b.neighbors(start.row, start.col) {
		enqueue(n)
	}

	for queue.Len() != 0 {
		c := queue.PopFront()
		if !c.Revealed() {
			c.markRevealed()
			revealed = append(revealed, c.update())
		}
		if c.value == 0 {
			for _, n := range b.neighbors(c.row, c.col) {
				enqueue(n)
			}
		}
	}

	return
}
