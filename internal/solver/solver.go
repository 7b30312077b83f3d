package solver

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/game"
)

var Log = logrus.New()

// View is the part of a board the solver may look at. Values of hidden
// cells are never read.
type View interface {
	Rows() int
	Cols() int
	Cell(row, col int) (game.Cell, error)
}

type Deduction struct {
	Safe  []game.Point
	Mines []game.Point
}

type Solver struct {
	view         View
	rows, cols   int
	mines        set[int]
	safe         set[int]
	inspectQueue deque.Deque[int]
}

func New(view View) *Solver {
	return &Solver{
		view:  view,
		rows:  view.Rows(),
		cols:  view.Cols(),
		mines: make(set[int]),
		safe:  make(set[int]),
	}
}

func (s *Solver) point(index int) game.Point {
	return game.Point{Row: index / s.cols, Col: index % s.cols}
}

func (s *Solver) cell(index int) game.Cell {
	p := s.point(index)
	c, err := s.view.Cell(p.Row, p.Col)
	if err != nil {
		Log.WithError(err).Fatal("solver index out of range")
	}
	return c
}

// count returns the mine count of an opened cell.
func (s *Solver) count(index int) (count int, ok bool) {
	c := s.cell(index)
	if !c.Revealed() || c.HasMine() {
		return 0, false
	}
	return int(c.Value()), true
}

func (s *Solver) neighborRange(index int, dist int) (fromRow, toRow, fromCol, toCol int) {
	var p = s.point(index)
	fromRow, toRow = max(0, p.Row-dist), min(p.Row+dist, s.rows-1)
	fromCol, toCol = max(0, p.Col-dist), min(p.Col+dist, s.cols-1)
	return
}

func (s *Solver) neighbors(index int, dist int, keep func(i int) bool) (indices []int) {
	var fromRow, toRow, fromCol, toCol = s.neighborRange(index, dist)
	for r := fromRow; r <= toRow; r++ {
		for c := fromCol; c <= toCol; c++ {
			var i = r*s.cols + c
			if i != index && keep(i) {
				indices = append(indices, i)
			}
		}
	}
	return
}

func (s *Solver) opened(i int) bool {
	_, ok := s.count(i)
	return ok
}

// unknown reports hidden cells that are not deduced either way.
func (s *Solver) unknown(i int) bool {
	return !s.cell(i).Revealed() && !s.mines.has(i) && !s.safe.has(i)
}

func (s *Solver) remainingMines(index int) (remaining int, ok bool) {
	remaining, ok = s.count(index)
	if !ok {
		return
	}
	remaining -= len(s.neighbors(index, 1, s.mines.has))
	return
}

func (s *Solver) mark(indices []int, mine bool) {
	for _, i := range indices {
		if mine {
			s.mines[i] = void{}
		} else {
			s.safe[i] = void{}
		}
		Log.WithFields(logrus.Fields{
			"cell": s.point(i),
			"mine": mine,
		}).Debug("deduced")
		for _, j := range s.neighbors(i, 2, s.opened) {
			s.inspectQueue.PushBack(j)
		}
	}
}

func (s *Solver) inspectCell(index int) {
	var unknown = s.neighbors(index, 1, s.unknown)
	if len(unknown) == 0 {
		return
	}

	var remaining, ok = s.remainingMines(index)
	if !ok {
		Log.Fatal("tried to inspect an unopened cell")
	}
	if remaining == 0 {
		s.mark(unknown, false)
		return
	}
	if remaining == len(unknown) {
		s.mark(unknown, true)
		return
	}

	// compare against every opened cell in a 5x5 radius whose unknown
	// neighbors are a strict subset of ours
	for _, i := range s.neighbors(index, 2, s.opened) {
		var (
			n      = s.neighbors(i, 1, s.unknown)
			shared = Intersect(unknown, n)
		)
		if len(n) == 0 || len(shared) != len(n) || len(n) == len(unknown) {
			continue
		}
		var rm, _ = s.remainingMines(i)
		var rest = Complement(n, unknown)
		switch remaining - rm {
		case 0:
			s.mark(rest, false)
			return
		case len(rest):
			s.mark(rest, true)
			return
		}
	}
}

// Solve deduces every cell that follows from the opened counts.
func (s *Solver) Solve() Deduction {
	for i := range s.rows * s.cols {
		if s.opened(i) {
			s.inspectQueue.PushBack(i)
		} else if c := s.cell(i); c.Revealed() && c.HasMine() {
			s.mines[i] = void{}
		}
	}

	for s.inspectQueue.Len() != 0 {
		s.inspectCell(s.inspectQueue.PopFront())
	}

	var d Deduction
	for _, i := range sorted(s.safe) {
		d.Safe = append(d.Safe, s.point(i))
	}
	for _, i := range sorted(s.mines) {
		d.Mines = append(d.Mines, s.point(i))
	}
	return d
}

// Hint returns a hidden cell that is certainly safe to select.
func Hint(view View) (game.Point, bool) {
	d := New(view).Solve()
	if len(d.Safe) == 0 {
		return game.Point{}, false
	}
	return d.Safe[0], true
}
