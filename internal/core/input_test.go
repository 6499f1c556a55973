package core

import "testing"

func TestInputFrameFirstMoveWins(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Set(ActionLeft)
	f.Set(ActionUp)

	if f.Move() != ActionLeft {
		t.Errorf("Move() = %v, expected Left", f.Move())
	}
	if !f.Has(ActionUp) || !f.Has(ActionPause) {
		t.Error("all pressed actions should still be recorded")
	}

	f.Clear()
	if f.Move() != ActionNone {
		t.Errorf("Move() after Clear = %v, expected None", f.Move())
	}
	if f.Has(ActionLeft) {
		t.Error("Clear should drop recorded actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionDown)
	if !f.Has(ActionDown) || f.Move() != ActionDown {
		t.Error("Set on zero frame should record the action")
	}
}

func TestActionIsMove(t *testing.T) {
	moves := []Action{ActionUp, ActionDown, ActionLeft, ActionRight}
	for _, a := range moves {
		if !a.IsMove() {
			t.Errorf("%v should be a move", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionPause, ActionQuit} {
		if a.IsMove() {
			t.Errorf("%v should not be a move", a)
		}
	}
}
