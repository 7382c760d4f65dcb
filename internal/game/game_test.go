package game

import (
	"path/filepath"
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"lanternwalk/internal/config"
	"lanternwalk/internal/input"
	"lanternwalk/internal/logger"
	"lanternwalk/internal/player"
)

func newGame(t *testing.T) (*Game, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config", "game.yaml")
	g, err := New(config.Default(), path, logger.New(logger.Options{Level: "debug"}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, path
}

func TestNewEquipsLantern(t *testing.T) {
	g, _ := newGame(t)
	held := g.Player().Held(player.LeftHand)
	if held == nil || held.Name != "lantern" {
		t.Fatalf("left hand = %+v, want lantern", held)
	}
	if g.Player().Held(player.RightHand) != nil {
		t.Error("right hand should be empty")
	}
	if !g.light.Enabled {
		t.Error("lantern light disabled")
	}
}

func TestNewRejectsBadLayout(t *testing.T) {
	cfg := config.Default()
	cfg.World.Layout = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := New(cfg, "", logger.New(logger.Options{})); err == nil {
		t.Error("missing layout file accepted")
	}
}

func TestStepMovesAndLightFollows(t *testing.T) {
	g, _ := newGame(t)
	in := input.NewState(rl.NewVector2(0, 1), input.KeyForward)
	for i := 0; i < 10; i++ {
		g.Step(0.016, in)
	}
	p := g.Player().Position
	if p.Z >= 0 || p.X != 0 {
		t.Errorf("position = %v, want moved toward -Z", p)
	}
	if g.scene.Camera.Target.X != p.X || g.scene.Camera.Target.Z != p.Z {
		t.Errorf("camera target = %v, want above %v", g.scene.Camera.Target, p)
	}
	if g.light.Target.Z >= g.light.Position.Z {
		t.Errorf("light target %v should be ahead (-Z) of %v", g.light.Target, g.light.Position)
	}
}

func TestConsoleCommands(t *testing.T) {
	tests := []struct {
		line    string
		wantErr bool
		check   func(g *Game) bool
	}{
		{"fps --show", false, func(g *Game) bool { return g.debug.ShowFPS }},
		{"grid --show", false, func(g *Game) bool { return g.scene.GridVisible }},
		{"colliders --show", false, func(g *Game) bool { return g.scene.CollidersVisible }},
		{"colliders --show --hide", true, nil},
		{"tp 1 1", false, func(g *Game) bool { return g.Player().Position.X == 1 && g.Player().Position.Z == 1 }},
		{"tp -2 0", true, func(g *Game) bool { return g.Player().Position.X == 0 }},
		{"tp one 1", true, nil},
		{"speed 4", false, func(g *Game) bool { return g.Player().Tuning().Speed == 4 }},
		{"speed -1", true, func(g *Game) bool { return g.Player().Tuning().Speed == 15 }},
		{"speed", true, nil},
		{"jump", true, nil},
		{"", false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			g, _ := newGame(t)
			err := g.Exec(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Exec(%q) err = %v, wantErr %v", tt.line, err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(g) {
				t.Errorf("Exec(%q) did not have the expected effect", tt.line)
			}
		})
	}
}

func TestToggleFlagsReset(t *testing.T) {
	g, _ := newGame(t)
	for _, line := range []string{"grid --show", "grid"} {
		if err := g.Exec(line); err != nil {
			t.Fatal(err)
		}
	}
	if g.scene.GridVisible {
		t.Error("bare grid should toggle back off after --show")
	}
}

func TestSaveWritesToggles(t *testing.T) {
	g, path := newGame(t)
	for _, line := range []string{"colliders --show", "speed 6", "save"} {
		if err := g.Exec(line); err != nil {
			t.Fatalf("%s: %v", line, err)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug.ShowColliders || cfg.Player.Speed != 6 {
		t.Errorf("saved config = %+v", cfg)
	}
}

func TestHelpListsCommands(t *testing.T) {
	g, _ := newGame(t)
	if err := g.Exec("help"); err != nil {
		t.Fatal(err)
	}
	lines := g.log.Lines()
	last := lines[len(lines)-1]
	for _, name := range []string{"tp <x> <z>", "speed", "save", "colliders --show|--hide"} {
		if !strings.Contains(last, name) {
			t.Errorf("help output %q missing %q", last, name)
		}
	}
}
