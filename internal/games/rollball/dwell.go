package rollball

// DwellMonitor punishes standing on the same tile for too long.
type DwellMonitor struct {
	limit    float64
	tracking bool
	cell     Cell
	elapsed  float64
}

// NewDwellMonitor creates a monitor that fires after limit seconds on one tile.
func NewDwellMonitor(limit float64) DwellMonitor {
	return DwellMonitor{limit: limit}
}

// Update feeds one tick. It returns true when the limit is reached, in which
// case the monitor has already been cleared.
func (d *DwellMonitor) Update(cell Cell, onFloor, overHazard bool, dt float64) bool {
	if !onFloor || overHazard {
		d.Clear()
		return false
	}
	if !d.tracking || d.cell != cell {
		d.tracking = true
		d.cell = cell
		d.elapsed = 0
		return false
	}

	d.elapsed += dt
	if d.elapsed >= d.limit {
		d.Clear()
		return true
	}
	return false
}

// Reduce takes seconds off the counter, never going below zero.
func (d *DwellMonitor) Reduce(seconds float64) {
	d.elapsed = max(0, d.elapsed-seconds)
}

// Clear stops tracking.
func (d *DwellMonitor) Clear() {
	d.tracking = false
	d.cell = Cell{}
	d.elapsed = 0
}

// Tracking reports whether a tile is being timed.
func (d *DwellMonitor) Tracking() bool { return d.tracking }

// Elapsed returns the seconds spent on the tracked tile.
func (d *DwellMonitor) Elapsed() float64 { return d.elapsed }

// Cell returns the tracked tile.
func (d *DwellMonitor) Cell() Cell { return d.cell }

// Limit returns the configured dwell limit.
func (d *DwellMonitor) Limit() float64 { return d.limit }
