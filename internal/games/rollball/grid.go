package rollball

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/rollball/internal/config"
	"github.com/vovakirdan/rollball/internal/core"
)

// Cell identifies a floor tile by integer grid coordinates.
type Cell struct {
	I, J int
}

// Grid is the tiled floor and its hazard ("hole") cells.
type Grid struct {
	cfg     config.GridConfig
	rng     *rand.Rand
	hazards map[Cell]bool
	sorted  []Cell // hazards in row-major order, rebuilt on every change
}

// NewGrid creates an empty grid. The rng is shared with the owning session.
func NewGrid(cfg config.GridConfig, rng *rand.Rand) *Grid {
	return &Grid{
		cfg:     cfg,
		rng:     rng,
		hazards: make(map[Cell]bool),
	}
}

// Center returns the cell the protected spawn block is centered on.
func (g *Grid) Center() Cell {
	return Cell{g.cfg.SizeX / 2, g.cfg.SizeY / 2}
}

// InBounds reports whether the cell lies on the floor.
func (g *Grid) InBounds(c Cell) bool {
	return c.I >= 0 && c.I < g.cfg.SizeX && c.J >= 0 && c.J < g.cfg.SizeY
}

// InSpawnBlock reports whether the cell is inside the protected spawn block.
func (g *Grid) InSpawnBlock(c Cell) bool {
	center := g.Center()
	return core.Abs(c.I-center.I) <= g.cfg.SpawnGuard && core.Abs(c.J-center.J) <= g.cfg.SpawnGuard
}

// IsHazard reports whether the cell is a hole.
func (g *Grid) IsHazard(c Cell) bool {
	return g.hazards[c]
}

// Hazards returns the hazard cells in row-major order. The slice must not be modified.
func (g *Grid) Hazards() []Cell {
	return g.sorted
}

// Generate replaces the hazard set with count random cells outside the spawn block.
// Panics if the grid cannot hold that many hazards; Validate rejects such configs up front.
func (g *Grid) Generate(count int) {
	if eligible := g.cfg.EligibleCells(); count > eligible {
		panic(fmt.Sprintf("rollball: %d hazards requested but only %d cells are eligible", count, eligible))
	}

	clear(g.hazards)
	for len(g.hazards) < count {
		c := Cell{g.rng.Intn(g.cfg.SizeX), g.rng.Intn(g.cfg.SizeY)}
		if !g.InSpawnBlock(c) {
			g.hazards[c] = true
		}
	}
	g.rebuild()
}

func (g *Grid) rebuild() {
	g.sorted = g.sorted[:0]
	for c := range g.hazards {
		g.sorted = append(g.sorted, c)
	}
	sort.Slice(g.sorted, func(a, b int) bool {
		if g.sorted[a].J != g.sorted[b].J {
			return g.sorted[a].J < g.sorted[b].J
		}
		return g.sorted[a].I < g.sorted[b].I
	})
}

// CellAt returns the cell under a world-space point.
func (g *Grid) CellAt(x, y float64) Cell {
	return Cell{
		I: int(math.Floor((x + g.cfg.HalfX()) / g.cfg.TileSize)),
		J: int(math.Floor((y + g.cfg.HalfY()) / g.cfg.TileSize)),
	}
}

// TileCenter converts a cell to the world-space center of its tile.
func (g *Grid) TileCenter(c Cell) (float64, float64) {
	x := float64(c.I)*g.cfg.TileSize - g.cfg.HalfX() + g.cfg.TileSize/2
	y := float64(c.J)*g.cfg.TileSize - g.cfg.HalfY() + g.cfg.TileSize/2
	return x, y
}

// FindSafeTile returns the center of a random non-hazard tile.
func (g *Grid) FindSafeTile() (float64, float64) {
	if len(g.hazards) >= g.cfg.SizeX*g.cfg.SizeY {
		panic("rollball: no safe tile left on the grid")
	}
	for {
		c := Cell{g.rng.Intn(g.cfg.SizeX), g.rng.Intn(g.cfg.SizeY)}
		if !g.hazards[c] {
			return g.TileCenter(c)
		}
	}
}

// FindSafeSpawn searches rings of growing Chebyshev radius around the grid center
// and returns the first non-hazard tile with the ball resting on the floor.
func (g *Grid) FindSafeSpawn(ballRadius float64) core.Vec3 {
	center := g.Center()
	limit := max(g.cfg.SizeX, g.cfg.SizeY)

	for r := 0; r <= limit; r++ {
		for i := center.I - r; i <= center.I+r; i++ {
			for j := center.J - r; j <= center.J+r; j++ {
				// Interior cells were already visited at a smaller radius.
				if core.Abs(i-center.I) != r && core.Abs(j-center.J) != r {
					continue
				}
				c := Cell{i, j}
				if g.InBounds(c) && !g.hazards[c] {
					x, y := g.TileCenter(c)
					return core.V3(x, y, ballRadius)
				}
			}
		}
	}

	x, y := g.TileCenter(center)
	return core.V3(x, y, ballRadius)
}
