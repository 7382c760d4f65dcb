package debug

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestRefreshThrottles(t *testing.T) {
	d := New()
	if !d.Refresh(60, rl.NewVector3(1.234, 0, -2)) {
		t.Fatal("first refresh should compute text")
	}
	if got := d.Lines(); got[0] != "FPS: 60" || got[1] != "Pos: 1.23, -2.00" {
		t.Fatalf("Lines = %q", got)
	}
	for i := 2; i < updateInterval; i++ {
		if d.Refresh(30, rl.Vector3{}) {
			t.Fatalf("refreshed early at frame %d", i)
		}
	}
	if !d.Refresh(30, rl.Vector3{}) {
		t.Fatal("refresh due at interval")
	}
	if d.Lines()[0] != "FPS: 30" {
		t.Errorf("Lines = %q", d.Lines())
	}
}
