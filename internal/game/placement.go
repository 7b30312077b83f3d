package game

import "math/rand/v2"

type Point struct {
	Row, Col int
}

// Placer chooses the cell indices (row*cols+col) that receive a mine.
type Placer interface {
	Place(rows, cols, mineCount int) []int
}

type PlacerFunc func(rows, cols, mineCount int) []int

// [PlacerFunc] implements [Placer]
func (f PlacerFunc) Place(rows, cols, mineCount int) []int {
	return f(rows, cols, mineCount)
}

// Shuffle mines the first mineCount cells of a uniformly random
// permutation of the board.
func Shuffle(r *rand.Rand) Placer {
	return PlacerFunc(func(rows, cols, mineCount int) []int {
		candidates := make([]int, rows*cols)
		for i := range candidates {
			candidates[i] = i
		}

		/*
		 * Pick a random remaining candidate, move it to the permuted
		 * order and drop it from the list.
		 */
		order := make([]int, 0, len(candidates))
		k := len(candidates)
		for k > 0 {
			i := r.IntN(k)
			order = append(order, candidates[i])
			k--
			candidates[i] = candidates[k]
		}

		return order[:min(mineCount, len(order))]
	})
}

// Fixed mines exactly the given points.
func Fixed(points ...Point) Placer {
	return PlacerFunc(func(rows, cols, _ int) []int {
		indices := make([]int, len(points))
		for i, p := range points {
			if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
				indices[i] = -1
				continue
			}
			indices[i] = p.Row*cols + p.Col
		}
		return indices
	})
}
