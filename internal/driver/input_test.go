package driver

import "testing"

func TestWSInputPollConsumesAndClears(t *testing.T) {
	var w WSInput
	w.set(inputCommand{DX: 1, DY: 0, Action: true})

	dx, dy, action, _ := w.Poll()
	if dx != 1 || dy != 0 || !action {
		t.Fatalf("Poll() = (%d,%d,%v), want (1,0,true)", dx, dy, action)
	}

	dx, dy, action, _ = w.Poll()
	if dx != 0 || dy != 0 || action {
		t.Fatalf("second Poll() = (%d,%d,%v), want zero value (command consumed)", dx, dy, action)
	}
}
