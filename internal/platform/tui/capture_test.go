package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/rollball/internal/core"
)

func TestCaptureRoundTrip(t *testing.T) {
	g := newTestGame(t)
	g.Apply(core.ActionStartGame)
	snap := g.Tick(0.016, core.InputFrame{MoveX: 1})

	dir := t.TempDir()
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	path, err := SaveCapture(dir, snap, now)
	if err != nil {
		t.Fatalf("SaveCapture() error = %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("capture path = %q, expected inside %q", path, dir)
	}

	got, takenAt, err := LoadCapture(path)
	if err != nil {
		t.Fatalf("LoadCapture() error = %v", err)
	}
	if !takenAt.Equal(now) {
		t.Errorf("takenAt = %v, expected %v", takenAt, now)
	}
	if got.Tick != snap.Tick || got.Phase != snap.Phase || got.Level != snap.Level {
		t.Errorf("loaded (tick %d, %s, level %d), expected (tick %d, %s, level %d)",
			got.Tick, got.Phase, got.Level, snap.Tick, snap.Phase, snap.Level)
	}
	if got.Ball.Pos != snap.Ball.Pos {
		t.Errorf("ball = %v, expected %v", got.Ball.Pos, snap.Ball.Pos)
	}
	if len(got.Hazards) != len(snap.Hazards) {
		t.Errorf("hazards = %d, expected %d", len(got.Hazards), len(snap.Hazards))
	}
	if len(got.Entities.Collectibles) != len(snap.Entities.Collectibles) {
		t.Errorf("collectibles = %d, expected %d", len(got.Entities.Collectibles), len(snap.Entities.Collectibles))
	}
}

func TestLoadCaptureErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadCapture(filepath.Join(dir, "missing.msgpack")); err == nil {
		t.Error("LoadCapture() on missing file should fail")
	}

	bad := filepath.Join(dir, "bad.msgpack")
	if err := os.WriteFile(bad, []byte("not msgpack"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadCapture(bad); err == nil {
		t.Error("LoadCapture() on garbage should fail")
	}
}
