package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/rollball/internal/games/rollball"
)

const captureVersion = 2

// capture is the on-disk form of a ctrl+s state dump.
type capture struct {
	Version  int               `msgpack:"v"`
	TakenAt  time.Time         `msgpack:"taken_at"`
	Snapshot rollball.Snapshot `msgpack:"snapshot"`
}

// DefaultCaptureDir returns ~/.rollball/captures.
func DefaultCaptureDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".rollball", "captures")
	}
	return filepath.Join(home, ".rollball", "captures")
}

// SaveCapture writes the snapshot as msgpack into dir and returns the file path.
func SaveCapture(dir string, snap rollball.Snapshot, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create capture directory %s: %w", dir, err)
	}

	data, err := msgpack.Marshal(&capture{Version: captureVersion, TakenAt: now, Snapshot: snap})
	if err != nil {
		return "", fmt.Errorf("tui: cannot encode capture: %w", err)
	}

	name := fmt.Sprintf("rollball_%s_t%d.msgpack", now.Format("20060102_150405"), snap.Tick)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write capture: %w", err)
	}
	return path, nil
}

// LoadCapture reads a capture written by SaveCapture.
func LoadCapture(path string) (rollball.Snapshot, time.Time, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return rollball.Snapshot{}, time.Time{}, fmt.Errorf("tui: cannot read capture: %w", err)
	}

	var c capture
	if err := msgpack.Unmarshal(data, &c); err != nil {
		return rollball.Snapshot{}, time.Time{}, fmt.Errorf("tui: cannot decode capture: %w", err)
	}
	if c.Version != captureVersion {
		return rollball.Snapshot{}, time.Time{}, fmt.Errorf("tui: unsupported capture version %d", c.Version)
	}
	return c.Snapshot, c.TakenAt, nil
}
