package rollball

import "testing"

func TestDwellMonitor(t *testing.T) {
	d := NewDwellMonitor(1.0)
	a, b := Cell{1, 1}, Cell{2, 1}

	if d.Update(a, true, false, 0.25) || d.Elapsed() != 0 || !d.Tracking() {
		t.Fatalf("first update: tracking = %v, elapsed = %v", d.Tracking(), d.Elapsed())
	}
	d.Update(a, true, false, 0.25)
	d.Update(a, true, false, 0.25)
	if d.Elapsed() != 0.5 {
		t.Errorf("Elapsed() = %v, expected 0.5", d.Elapsed())
	}

	d.Update(b, true, false, 0.25)
	if d.Elapsed() != 0 || d.Cell() != b {
		t.Errorf("after cell change: cell = %v, elapsed = %v", d.Cell(), d.Elapsed())
	}

	d.Update(b, false, false, 0.25)
	if d.Tracking() {
		t.Error("still tracking while airborne")
	}

	d.Update(b, true, false, 0.25)
	d.Update(b, true, true, 0.25)
	if d.Tracking() {
		t.Error("still tracking over a hazard")
	}
}

func TestDwellMonitorFires(t *testing.T) {
	d := NewDwellMonitor(1.0)
	c := Cell{3, 4}
	d.Update(c, true, false, 0.5)

	fired := 0
	for range 4 {
		if d.Update(c, true, false, 0.5) {
			fired++
		}
	}
	// Fires after two accumulating updates, restarts, then needs two more.
	if fired != 1 {
		t.Errorf("fired %d times, expected 1", fired)
	}
}

func TestDwellReduceClampsAtZero(t *testing.T) {
	d := NewDwellMonitor(5)
	c := Cell{0, 0}
	d.Update(c, true, false, 0)
	d.Update(c, true, false, 2)

	d.Reduce(0.5)
	if d.Elapsed() != 1.5 {
		t.Errorf("Elapsed() = %v, expected 1.5", d.Elapsed())
	}
	d.Reduce(3)
	if d.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, expected 0", d.Elapsed())
	}
}
