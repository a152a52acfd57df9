package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/rollball/internal/config"
	"github.com/vovakirdan/rollball/internal/core"
	"github.com/vovakirdan/rollball/internal/games/rollball"
)

func newTestGame(t *testing.T) *rollball.Game {
	t.Helper()
	g, err := rollball.New(rollball.Options{Config: config.DefaultRollballConfig(), Seed: 7})
	if err != nil {
		t.Fatalf("rollball.New() error = %v", err)
	}
	return g
}

func TestDrawSnapshotMenu(t *testing.T) {
	g := newTestGame(t)
	s := core.NewScreen(100, 40)

	DrawSnapshot(s, g.Snapshot(), "")

	out := s.String()
	if !strings.Contains(out, "R O L L B A L L") {
		t.Error("menu overlay should show the title")
	}
	if !strings.Contains(s.Row(0), "ROLLBALL") {
		t.Errorf("HUD row = %q, expected banner", s.Row(0))
	}
}

func TestDrawSnapshotPlaying(t *testing.T) {
	g := newTestGame(t)
	snap := g.Apply(core.ActionStartGame)
	s := core.NewScreen(100, 40)

	DrawSnapshot(s, snap, "hello")

	out := s.String()
	if !strings.ContainsRune(out, ballGlyph) {
		t.Error("field should contain the ball")
	}
	if strings.Contains(out, "R O L L B A L L") {
		t.Error("no overlay expected while playing")
	}
	if !strings.Contains(s.Row(1), "hello") {
		t.Errorf("status row = %q, expected message", s.Row(1))
	}
}

func TestDrawSnapshotPaused(t *testing.T) {
	g := newTestGame(t)
	g.Apply(core.ActionStartGame)
	snap := g.Apply(core.ActionPauseToggle)
	s := core.NewScreen(100, 40)

	DrawSnapshot(s, snap, "")

	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("paused overlay expected")
	}
}

func TestDrawSnapshotTooSmall(t *testing.T) {
	g := newTestGame(t)
	s := core.NewScreen(30, 5)

	DrawSnapshot(s, g.Snapshot(), "")

	if !strings.Contains(s.String(), "Terminal too small") {
		t.Error("expected size warning")
	}
}

func TestViewportFollowsBall(t *testing.T) {
	snap := newTestGame(t).Apply(core.ActionStartGame)

	snap.Camera = rollball.CameraFirstPerson
	v := computeViewport(snap, 200, 100)
	if v.cols != 2*firstPersonRadius+1 || v.rows != 2*firstPersonRadius+1 {
		t.Errorf("first person viewport = %dx%d, expected %d", v.cols, v.rows, 2*firstPersonRadius+1)
	}
	if _, _, ok := v.screenPos(snap.CellAt(snap.Ball.Pos)); !ok {
		t.Error("ball cell should be visible")
	}

	snap.Camera = rollball.CameraOverhead
	v = computeViewport(snap, 200, 100)
	if v.cols != snap.Grid.SizeX || v.rows != snap.Grid.SizeY {
		t.Errorf("overhead viewport = %dx%d, expected whole grid", v.cols, v.rows)
	}
}

func TestViewportNorthIsUp(t *testing.T) {
	v := viewport{i0: 0, j0: 0, cols: 5, rows: 5}

	_, top, _ := v.screenPos(rollball.Cell{I: 0, J: 4})
	_, bottom, _ := v.screenPos(rollball.Cell{I: 0, J: 0})
	if top != 0 || bottom != 4 {
		t.Errorf("rows = (%d, %d), expected (0, 4)", top, bottom)
	}
	if _, _, ok := v.screenPos(rollball.Cell{I: 5, J: 0}); ok {
		t.Error("cell outside viewport should not be visible")
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "hi")
	drawText(s, 0, 1, "there", colorGold)

	out := RenderScreen(s)
	if !strings.Contains(out, "hi") || !strings.Contains(out, "there") {
		t.Errorf("RenderScreen() = %q, expected both lines", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", strings.Count(out, "\n"))
	}
}
