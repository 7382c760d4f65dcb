package player

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestPoseWalkCycle(t *testing.T) {
	ps := NewPose()
	holding := [numSlots]bool{true, false}
	// walkT lands on pi/2 so the left leg is at full forward stride.
	ps.Update(math32.Pi/2/walkRate, true, holding)

	if !approx(ps.Legs[0].Z, -0.08+strideLength) || !approx(ps.Legs[0].Y, 0.1) {
		t.Errorf("left leg = %+v", ps.Legs[0])
	}
	if !approx(ps.Legs[1].Z, -0.08-strideLength) || !approx(ps.Legs[1].Y, 0.1+strideLift) {
		t.Errorf("right leg = %+v", ps.Legs[1])
	}
	if !approx(ps.Arms[LeftHand].Z, 0.1+armSway) || !approx(ps.Items[LeftHand].Z, 0.15+armSway) {
		t.Errorf("holding arm did not sway: arm=%+v item=%+v", ps.Arms[LeftHand], ps.Items[LeftHand])
	}
	if ps.Arms[RightHand] != restArms[RightHand] {
		t.Errorf("empty arm swayed: %+v", ps.Arms[RightHand])
	}
}

func TestPoseReturnsToRest(t *testing.T) {
	ps := NewPose()
	holding := [numSlots]bool{true, false}
	ps.Update(0.1, true, holding)
	for i := 0; i < 100; i++ {
		ps.Update(0.016, false, holding)
	}
	for i := range ps.Legs {
		if d := ps.Legs[i].Z - restLegs[i].Z; math32.Abs(d) > 1e-4 {
			t.Errorf("leg %d not at rest: %+v", i, ps.Legs[i])
		}
	}
	if math32.Abs(ps.Items[LeftHand].Z-restItems[LeftHand].Z) > 1e-4 {
		t.Errorf("item not at rest: %+v", ps.Items[LeftHand])
	}
}

func TestPoseBreathing(t *testing.T) {
	ps := NewPose()
	for i := 0; i < 500; i++ {
		ps.Update(0.016, false, [numSlots]bool{})
		if math32.Abs(ps.Breath) > breathDepth+1e-6 {
			t.Fatalf("breath %v exceeds depth", ps.Breath)
		}
	}
}
