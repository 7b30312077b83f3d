package game

import (
	"fmt"
	"strconv"
)

type Value int8

const (
	Unassigned Value = -1
	Mine       Value = 9
	// 0-8 for a safe cell with given number of mined neighbors
)

func (v Value) String() string {
	switch v {
	case Mine:
		return "*"
	case 0, 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(v))
	default:
		return "?"
	}
}

type Cell struct {
	row, col int
	value    Value
	revealed bool
}

func newCell(row, col int) Cell {
	return Cell{row: row, col: col, value: Unassigned}
}

func (c Cell) Row() int       { return c.row }
func (c Cell) Col() int       { return c.col }
func (c Cell) Value() Value   { return c.value }
func (c Cell) Revealed() bool { return c.revealed }

func (c Cell) HasMine() bool {
	return c.value == Mine
}

func (c Cell) IsUnassigned() bool {
	return c.value == Unassigned
}

// panics [AssertionError]
func (c *Cell) assignMine() {
	if !c.IsUnassigned() {
		panic(AssertionError{
			fmt.Sprintf("cell %d:%d is already assigned", c.row, c.col),
		})
	}
	c.value = Mine
}

// panics [AssertionError]
func (c *Cell) setAdjacencyCount(n int) {
	if !c.IsUnassigned() {
		panic(AssertionError{
			fmt.Sprintf("cell %d:%d is already assigned", c.row, c.col),
		})
	}
	if n < 0 || n > 8 {
		panic(AssertionError{
			fmt.Sprintf("adjacency count %d out of range", n),
		})
	}
	c.value = Value(n)
}

func (c *Cell) markRevealed() {
	c.revealed = true
}
