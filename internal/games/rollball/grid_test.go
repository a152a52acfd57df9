package rollball

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/rollball/internal/config"
	"github.com/vovakirdan/rollball/internal/core"
)

func newTestGrid(cfg config.GridConfig) *Grid {
	return NewGrid(cfg, rand.New(rand.NewSource(7)))
}

// setHazards replaces the hazard set with exactly the given cells.
func setHazards(g *Grid, cells ...Cell) {
	clear(g.hazards)
	for _, c := range cells {
		g.hazards[c] = true
	}
	g.rebuild()
}

func TestGenerateHazardCount(t *testing.T) {
	cfg := config.DefaultRollballConfig()
	scaling := config.NewLevelScaling(cfg)
	g := newTestGrid(cfg.Grid)

	for _, level := range []int{1, 5, 10, 40, 100} {
		want := min(30+3*level, 150)
		g.Generate(scaling.HazardCount(level))

		if got := len(g.Hazards()); got != want {
			t.Errorf("level %d: len(Hazards()) = %d, expected %d", level, got, want)
		}
		for _, c := range g.Hazards() {
			if g.InSpawnBlock(c) {
				t.Errorf("level %d: hazard %v inside spawn block", level, c)
			}
			if !g.InBounds(c) {
				t.Errorf("level %d: hazard %v out of bounds", level, c)
			}
		}
	}
}

func TestGenerateIsSorted(t *testing.T) {
	g := newTestGrid(config.DefaultRollballConfig().Grid)
	g.Generate(60)

	hs := g.Hazards()
	for i := 1; i < len(hs); i++ {
		a, b := hs[i-1], hs[i]
		if a.J > b.J || (a.J == b.J && a.I >= b.I) {
			t.Fatalf("Hazards() not in row-major order at %d: %v then %v", i, a, b)
		}
	}
}

func TestGeneratePanicsWhenInfeasible(t *testing.T) {
	cfg := config.DefaultRollballConfig().Grid
	cfg.SizeX, cfg.SizeY = 8, 8
	g := newTestGrid(cfg)

	defer func() {
		if recover() == nil {
			t.Error("Generate() did not panic for an infeasible hazard count")
		}
	}()
	g.Generate(cfg.EligibleCells() + 1)
}

func TestCellConversions(t *testing.T) {
	g := newTestGrid(config.DefaultRollballConfig().Grid)

	tests := []struct {
		x, y float64
		want Cell
	}{
		{-900, -600, Cell{0, 0}},
		{-841, -541, Cell{0, 0}},
		{-840, -540, Cell{1, 1}},
		{0, 0, Cell{15, 10}},
		{899.9, 599.9, Cell{29, 19}},
	}
	for _, tt := range tests {
		if got := g.CellAt(tt.x, tt.y); got != tt.want {
			t.Errorf("CellAt(%v, %v) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}

	for _, c := range []Cell{{0, 0}, {15, 10}, {29, 19}, {3, 17}} {
		x, y := g.TileCenter(c)
		if got := g.CellAt(x, y); got != c {
			t.Errorf("CellAt(TileCenter(%v)) = %v", c, got)
		}
	}

	if x, y := g.TileCenter(Cell{0, 0}); x != -870 || y != -570 {
		t.Errorf("TileCenter({0,0}) = (%v, %v), expected (-870, -570)", x, y)
	}
}

func TestFindSafeSpawnCenter(t *testing.T) {
	cfg := config.DefaultRollballConfig()
	g := newTestGrid(cfg.Grid)
	g.Generate(100)

	got := g.FindSafeSpawn(cfg.Ball.Radius)
	want := core.V3(30, 30, cfg.Ball.Radius)
	if got != want {
		t.Errorf("FindSafeSpawn() = %v, expected %v", got, want)
	}
}

func TestFindSafeSpawnSingleOpenCell(t *testing.T) {
	cfg := config.DefaultRollballConfig().Grid
	g := newTestGrid(cfg)

	open := Cell{2, 17}
	var cells []Cell
	for i := range cfg.SizeX {
		for j := range cfg.SizeY {
			if (Cell{i, j}) != open {
				cells = append(cells, Cell{i, j})
			}
		}
	}
	setHazards(g, cells...)

	got := g.FindSafeSpawn(15)
	x, y := g.TileCenter(open)
	if got != core.V3(x, y, 15) {
		t.Errorf("FindSafeSpawn() = %v, expected tile %v at (%v, %v)", got, open, x, y)
	}
}

func TestFindSafeSpawnNearestRing(t *testing.T) {
	g := newTestGrid(config.DefaultRollballConfig().Grid)
	center := g.Center()
	setHazards(g, center)

	got := g.FindSafeSpawn(15)
	c := g.CellAt(got.X, got.Y)
	if c == center {
		t.Fatal("FindSafeSpawn() returned the hazard cell")
	}
	if core.Abs(c.I-center.I) > 1 || core.Abs(c.J-center.J) > 1 {
		t.Errorf("FindSafeSpawn() = %v, expected a neighbour of %v", c, center)
	}
}

func TestFindSafeTileAvoidsHazards(t *testing.T) {
	g := newTestGrid(config.DefaultRollballConfig().Grid)
	g.Generate(150)

	for range 500 {
		x, y := g.FindSafeTile()
		if c := g.CellAt(x, y); g.IsHazard(c) {
			t.Fatalf("FindSafeTile() returned hazard cell %v", c)
		}
	}
}
