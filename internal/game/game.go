package game

import (
	"fmt"

	"lanternwalk/internal/commands"
	"lanternwalk/internal/config"
	"lanternwalk/internal/debug"
	"lanternwalk/internal/input"
	"lanternwalk/internal/item"
	"lanternwalk/internal/logger"
	"lanternwalk/internal/player"
	"lanternwalk/internal/scene"
	"lanternwalk/internal/terminal"
	"lanternwalk/internal/world"
)

// Game owns every per-frame piece: input, level, player, camera and overlays.
// Update and Draw are the two halves of one frame and run on the same goroutine.
type Game struct {
	cfg        config.Config
	configPath string
	log        *logger.Logger

	input  *input.Sampler
	level  *world.Level
	player *player.Player
	light  *item.SpotLight
	scene  *scene.Scene
	debug  *debug.Debug
	term   *terminal.Terminal
	cmds   *commands.Registry
}

// New builds a game from cfg. configPath is where the console's save command writes.
// It does not touch the GPU, so it can run before the window exists.
func New(cfg config.Config, configPath string, log *logger.Logger) (*Game, error) {
	layout := world.DefaultLayout()
	if cfg.World.Layout != "" {
		l, err := world.LoadLayout(cfg.World.Layout)
		if err != nil {
			return nil, err
		}
		layout = l
	}

	tuning, err := player.DefaultTuning().Merge(cfg.Player)
	if err != nil {
		return nil, err
	}
	lanternSettings, err := item.DefaultLanternSettings().Merge(cfg.Lantern)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		configPath: configPath,
		log:        log,
		input:      input.New(),
		level:      world.Build(layout),
		scene:      scene.New(),
		debug:      debug.New(),
		cmds:       commands.NewRegistry(),
	}
	g.player = player.New(g.level, tuning)
	if !g.player.Teleport(g.level.Spawn()) {
		return nil, fmt.Errorf("game: spawn point %v is inside a solid", g.level.Spawn())
	}
	lantern, light := item.NewLantern(lanternSettings)
	g.player.Equip(player.LeftHand, lantern)
	g.light = light

	g.debug.ShowFPS = cfg.Debug.ShowFPS
	g.scene.GridVisible = cfg.Debug.ShowGrid
	g.scene.CollidersVisible = cfg.Debug.ShowColliders

	g.registerCommands()
	g.term = terminal.New(log, g.cmds)
	g.term.OnToggle = g.input.Suspend

	log.Info("level built", "colliders", g.level.Physics.Len(), "spawn", fmt.Sprint(g.level.Spawn()))
	log.Info("player ready", "speed", tuning.Speed, "radius", tuning.Radius, "holding", lantern.Name)
	return g, nil
}

// Update advances one frame. The window must exist because input is polled from it.
func (g *Game) Update(dt float32) {
	g.term.Update()
	g.input.Poll()
	g.Step(dt, g.input.State())
}

// Step advances the simulation with an explicit input snapshot.
func (g *Game) Step(dt float32, in input.State) {
	g.level.Update(dt)
	g.player.Update(dt, in)
	g.scene.Follow(g.player.Position)
}

// Draw renders the scene, then the debug overlay and the console on top.
func (g *Game) Draw() {
	g.scene.Draw(g.level, g.player, g.light)
	g.debug.Draw(g.player.Position)
	g.term.Draw()
}

// Resize logs framebuffer changes. The camera reads the aspect from the framebuffer
// every frame, so nothing else needs to follow.
func (g *Game) Resize(width, height int32) {
	g.log.Debug("window resized", "width", width, "height", height)
}

// Close drops held items and releases GPU resources.
func (g *Game) Close() {
	g.player.Unequip(player.LeftHand)
	g.player.Unequip(player.RightHand)
	g.scene.Unload()
}

// Player exposes the avatar, mainly for tests and tooling.
func (g *Game) Player() *player.Player {
	return g.player
}

// Exec runs one console line as if typed.
func (g *Game) Exec(line string) error {
	args, ok := commands.Parse(line)
	if !ok {
		return nil
	}
	return g.cmds.Execute(args)
}
