package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"lanternwalk/internal/commands"
	"lanternwalk/internal/config"
)

// toggle registers a command with --show/--hide flags that flips *target.
func (g *Game) toggle(name, what string, target *bool) {
	fs := commands.NewFlagSet(name)
	show := fs.Bool("show", false, "show "+what)
	hide := fs.Bool("hide", false, "hide "+what)
	g.cmds.Register(name, name+" --show|--hide", fs, func([]string) error {
		defer func() { *show, *hide = false, false }()
		switch {
		case *show && *hide:
			return errors.New("pick one of --show and --hide")
		case *show:
			*target = true
		case *hide:
			*target = false
		default:
			*target = !*target
		}
		g.log.Info(what, "visible", *target)
		return nil
	})
}

func (g *Game) registerCommands() {
	g.toggle("fps", "fps counter", &g.debug.ShowFPS)
	g.toggle("grid", "grid", &g.scene.GridVisible)
	g.toggle("colliders", "colliders", &g.scene.CollidersVisible)

	g.cmds.Register("tp", "tp <x> <z>", nil, func(args []string) error {
		if len(args) != 2 {
			return errors.New("usage: tp <x> <z>")
		}
		x, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		z, err := parseFloat(args[1])
		if err != nil {
			return err
		}
		to := rl.NewVector3(x, g.player.Position.Y, z)
		if !g.player.Teleport(to) {
			return fmt.Errorf("tp: %.2f, %.2f is blocked", x, z)
		}
		g.log.Info("teleported", "x", x, "z", z)
		return nil
	})

	g.cmds.Register("speed", "speed <units per second>", nil, func(args []string) error {
		if len(args) != 1 {
			return errors.New("usage: speed <n>")
		}
		v, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		if err := g.player.SetSpeed(v); err != nil {
			return err
		}
		g.log.Info("speed set", "speed", v)
		return nil
	})

	g.cmds.Register("save", "save", nil, func([]string) error {
		cfg := g.cfg
		cfg.Debug = config.DebugConfig{
			ShowFPS:       g.debug.ShowFPS,
			ShowGrid:      g.scene.GridVisible,
			ShowColliders: g.scene.CollidersVisible,
		}
		cfg.Player.Speed = g.player.Tuning().Speed
		if err := config.Save(g.configPath, cfg); err != nil {
			return err
		}
		g.cfg = cfg
		g.log.Info("config saved", "path", g.configPath)
		return nil
	})

	g.cmds.Register("help", "help", nil, func([]string) error {
		var b strings.Builder
		for i, n := range g.cmds.Names() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(g.cmds.Usage(n))
		}
		g.log.Info("commands: " + b.String())
		return nil
	})
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return float32(v), nil
}
