package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/game"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestIntersect(t *testing.T) {
	assert.Equal(t, []int{2, 3}, Intersect([]int{1, 2, 3}, []int{2, 3, 4}))
	assert.Empty(t, Intersect([]int{1}, []int{2}))
}

func TestComplement(t *testing.T) {
	assert.Equal(t, []int{4}, Complement([]int{1, 2, 3}, []int{2, 3, 4}))
	assert.Empty(t, Complement([]int{1, 2}, []int{1, 2}))
}

func TestSolveTrivialMine(t *testing.T) {
	// * . .
	// . . .
	// . . .
	b, err := game.New(game.Params{Rows: 3, Cols: 3, MineCount: 1}, game.Fixed(game.Point{Row: 0, Col: 0}))
	require.NoError(t, err)

	_, err = b.Select(2, 2)
	require.NoError(t, err)

	d := New(b).Solve()
	assert.Equal(t, []game.Point{{Row: 0, Col: 0}}, d.Mines)
	assert.Empty(t, d.Safe)

	_, ok := Hint(b)
	assert.False(t, ok)
}

func TestSolveSafeAfterMine(t *testing.T) {
	// 1-2-1 pattern above a hidden row
	// . * . * .
	// . . . . .
	// . . . . .
	b, err := game.New(
		game.Params{Rows: 3, Cols: 5, MineCount: 2},
		game.Fixed(game.Point{Row: 0, Col: 1}, game.Point{Row: 0, Col: 3}),
	)
	require.NoError(t, err)

	_, err = b.Select(2, 2)
	require.NoError(t, err)

	d := New(b).Solve()
	assert.ElementsMatch(t, []game.Point{{Row: 0, Col: 1}, {Row: 0, Col: 3}}, d.Mines)
	assert.ElementsMatch(t, []game.Point{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 0, Col: 4}}, d.Safe)
}

func TestHintIsAlwaysSafe(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	params := game.Params{Rows: 9, Cols: 9, MineCount: 10}

	for range 100 {
		b, err := game.NewRandom(params, r)
		require.NoError(t, err)

		var (
			start game.Cell
			found bool
		)
		for c := range b.Cells() {
			if c.Value() == 0 {
				start, found = c, true
				break
			}
		}
		if !found {
			continue
		}
		_, err = b.Select(start.Row(), start.Col())
		require.NoError(t, err)

		d := New(b).Solve()
		for _, p := range d.Safe {
			c, err := b.Cell(p.Row, p.Col)
			require.NoError(t, err)
			require.False(t, c.HasMine(), "hinted mined cell %v", p)
			require.False(t, c.Revealed())
		}
		for _, p := range d.Mines {
			c, err := b.Cell(p.Row, p.Col)
			require.NoError(t, err)
			require.True(t, c.HasMine(), "deduced mine on safe cell %v", p)
		}

		for {
			p, ok := Hint(b)
			if !ok || b.Status() != game.Playing {
				break
			}
			update, err := b.Select(p.Row, p.Col)
			require.NoError(t, err)
			require.Equal(t, game.Playing, update.Status)
		}
	}
}
