package maze

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand returns picks in order and records every n it was asked for.
// Once picks run out it returns 0, the first candidate.
type scriptedRand struct {
	picks []int
	asked []int
}

func (r *scriptedRand) IntN(n int) int {
	r.asked = append(r.asked, n)
	if len(r.picks) == 0 {
		return 0
	}
	pick := r.picks[0]
	r.picks = r.picks[1:]
	return pick
}

// lastRand always picks the last candidate.
type lastRand struct{}

func (lastRand) IntN(n int) int { return n - 1 }

// countPaths counts simple paths from cur to end through open passages.
func countPaths(m *Maze, cur, end CellPosition, seen map[CellPosition]bool) int {
	if cur == end {
		return 1
	}
	seen[cur] = true
	defer delete(seen, cur)

	total := 0
	for _, dir := range Directions {
		if !m.IsOpen(cur, dir) {
			continue
		}
		next := cur.Step(dir)
		if seen[next] {
			continue
		}
		total += countPaths(m, next, end, seen)
	}
	return total
}

func TestGenerate(t *testing.T) {
	t.Run("Rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -7}, {0, 0}} {
			m, err := Generate(dims[0], dims[1], &scriptedRand{})
			assert.ErrorIs(t, err, ErrInvalidDimension, "dims %v", dims)
			assert.Nil(t, m)
		}
	})

	t.Run("Rejects grids too large to allocate", func(t *testing.T) {
		for _, dims := range [][2]int{{math.MaxInt, math.MaxInt}, {math.MaxInt/2 + 1, 2}, {maxCells + 1, 1}, {1, maxCells + 1}, {1 << 13, 1 << 12}} {
			m, err := Generate(dims[0], dims[1], lastRand{})
			assert.ErrorIs(t, err, ErrInvalidDimension, "dims %v", dims)
			assert.Nil(t, m)
		}
	})

	t.Run("Rejects nil random source", func(t *testing.T) {
		_, err := Generate(3, 3, nil)
		assert.ErrorIs(t, err, ErrNilRand)
	})

	t.Run("Single cell maze", func(t *testing.T) {
		m, err := Generate(1, 1, &scriptedRand{})
		require.NoError(t, err)

		assert.Equal(t, m.Start(), m.End())
		assert.Empty(t, m.Passages())
		assert.Equal(t, Direction(0), m.Cell(m.Start()).Open())
		assert.NoError(t, m.Validate())
	})

	t.Run("First candidate carve sequence on 2x2", func(t *testing.T) {
		rng := &scriptedRand{}
		m, err := Generate(2, 2, rng)
		require.NoError(t, err)

		// (0,0) chooses between South and East, then each step has one option.
		assert.Equal(t, []int{2, 1, 1}, rng.asked)
		assert.Equal(t, []Passage{
			{From: CellPosition{0, 0}, To: CellPosition{1, 0}, Direction: South},
			{From: CellPosition{0, 1}, To: CellPosition{1, 1}, Direction: South},
			{From: CellPosition{1, 0}, To: CellPosition{1, 1}, Direction: East},
		}, m.Passages())
		assert.True(t, m.Cell(CellPosition{0, 0}).HasEastWall())
		assert.NoError(t, m.Validate())
	})

	t.Run("Last candidate carve sequence on 2x2", func(t *testing.T) {
		m, err := Generate(2, 2, lastRand{})
		require.NoError(t, err)

		assert.Equal(t, []Passage{
			{From: CellPosition{0, 0}, To: CellPosition{0, 1}, Direction: East},
			{From: CellPosition{0, 1}, To: CellPosition{1, 1}, Direction: South},
			{From: CellPosition{1, 0}, To: CellPosition{1, 1}, Direction: East},
		}, m.Passages())
		assert.True(t, m.Cell(CellPosition{0, 0}).HasSouthWall())
	})

	t.Run("Single row is a corridor", func(t *testing.T) {
		m, err := Generate(5, 1, lastRand{})
		require.NoError(t, err)

		for col := 0; col < 4; col++ {
			assert.True(t, m.IsOpen(CellPosition{0, col}, East), "col %d", col)
		}
		assert.Len(t, m.Passages(), 4)
	})
}

func TestNewSeeded(t *testing.T) {
	t.Run("Same seed yields the same maze", func(t *testing.T) {
		a, err := NewSeeded(12, 7, 42)
		require.NoError(t, err)
		b, err := NewSeeded(12, 7, 42)
		require.NoError(t, err)

		assert.Equal(t, a.Passages(), b.Passages())
		assert.Equal(t, a.String(), b.String())

		seed, ok := a.Seed()
		assert.True(t, ok)
		assert.Equal(t, uint64(42), seed)
	})

	t.Run("Known seeds carve known 2x2 mazes", func(t *testing.T) {
		// On 2x2 only the first pick at (0,0) is a real choice.
		southFirst := []Passage{
			{From: CellPosition{0, 0}, To: CellPosition{1, 0}, Direction: South},
			{From: CellPosition{0, 1}, To: CellPosition{1, 1}, Direction: South},
			{From: CellPosition{1, 0}, To: CellPosition{1, 1}, Direction: East},
		}
		eastFirst := []Passage{
			{From: CellPosition{0, 0}, To: CellPosition{0, 1}, Direction: East},
			{From: CellPosition{0, 1}, To: CellPosition{1, 1}, Direction: South},
			{From: CellPosition{1, 0}, To: CellPosition{1, 1}, Direction: East},
		}

		m, err := NewSeeded(2, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, southFirst, m.Passages())

		m, err = NewSeeded(2, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, eastFirst, m.Passages())
	})

	t.Run("Generate does not record a seed", func(t *testing.T) {
		m, err := Generate(3, 3, &scriptedRand{})
		require.NoError(t, err)

		_, ok := m.Seed()
		assert.False(t, ok)
	})

	t.Run("Unseeded maze records its drawn seed", func(t *testing.T) {
		m, err := New(6, 4)
		require.NoError(t, err)

		seed, ok := m.Seed()
		require.True(t, ok)

		replay, err := NewSeeded(6, 4, seed)
		require.NoError(t, err)
		assert.Equal(t, m.Passages(), replay.Passages())
	})
}

func TestSpanningTree(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 6}, {6, 1}, {2, 2}, {3, 5}, {9, 11}, {20, 20}}
	for _, size := range sizes {
		for seed := uint64(1); seed <= 5; seed++ {
			w, h := size[0], size[1]
			t.Run(fmt.Sprintf("%dx%d seed %d", w, h, seed), func(t *testing.T) {
				m, err := NewSeeded(w, h, seed)
				require.NoError(t, err)

				assert.Equal(t, w, m.Width())
				assert.Equal(t, h, m.Height())
				assert.Len(t, m.Passages(), w*h-1)
				assert.Equal(t, w*h, m.reachable(m.Start()))
				assert.NoError(t, m.Validate())

				for row := 0; row < h; row++ {
					for col := 0; col < w; col++ {
						pos := CellPosition{Row: row, Col: col}
						for _, dir := range Directions {
							if !m.IsOpen(pos, dir) {
								continue
							}
							next := m.Neighbor(pos, dir)
							assert.True(t, m.InBound(next.Row, next.Col), "%v opens %v outside", pos, dir)
							assert.True(t, m.IsOpen(next, dir.Opposite()), "%v -> %v not mirrored", pos, dir)
						}
					}
				}
			})
		}
	}
}

func TestUniquePath(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		m, err := NewSeeded(5, 4, seed)
		require.NoError(t, err)

		assert.Equal(t, 1, countPaths(m, m.Start(), m.End(), map[CellPosition]bool{}), "seed %d", seed)
	}
}

func TestCell(t *testing.T) {
	m, err := Generate(3, 3, &scriptedRand{})
	require.NoError(t, err)

	t.Run("Out of bound cell is fully walled", func(t *testing.T) {
		c := m.Cell(CellPosition{Row: -1, Col: 0})
		assert.Equal(t, Direction(0), c.Open())
		assert.False(t, m.IsOpen(CellPosition{Row: 3, Col: 3}, North))
	})

	t.Run("Invalid direction is never open", func(t *testing.T) {
		c := m.Cell(m.Start())
		assert.False(t, c.IsOpen(North|South|East|West))
		assert.False(t, c.IsOpen(0))
	})
}

func TestDirection(t *testing.T) {
	t.Run("Opposites mirror", func(t *testing.T) {
		for _, d := range Directions {
			assert.Equal(t, d, d.Opposite().Opposite())
			dr, dc := d.Delta()
			or, oc := d.Opposite().Delta()
			assert.Equal(t, 0, dr+or)
			assert.Equal(t, 0, dc+oc)
		}
		assert.Equal(t, Direction(0), (North | East).Opposite())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "North", North.String())
		assert.Equal(t, "South|West", (West | South).String())
		assert.Equal(t, "None", Direction(0).String())
	})
}
