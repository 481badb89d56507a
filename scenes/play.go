package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/core"
	"github.com/automoto/coinhop/effects"
	"github.com/automoto/coinhop/shared/leveldata"
	"github.com/automoto/coinhop/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerWorld ecs.LayerID = iota
	layerHUD
)

// PlayScene hosts one level: the simulation driver plus the presentation
// world holding input, HUD and effects.
type PlayScene struct {
	ecs    *ecs.ECS
	driver *core.Driver
	canvas *systems.CanvasSlot
}

// NewPlayScene builds the simulation for layout and wires it to the
// ebitengine systems. The scene starts paused behind the start overlay.
func NewPlayScene(cfg config.Config, layout *leveldata.Layout, logger *log.Logger) (*PlayScene, error) {
	if logger == nil {
		logger = log.Default()
	}
	world, err := core.NewWorld(cfg, layout)
	if err != nil {
		return nil, fmt.Errorf("play scene: %w", err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	canvas := &systems.CanvasSlot{}
	renderer := &systems.WorldRenderer{Effects: e.World}
	audio := systems.NewAudioSink(cfg.Audio, logger)
	onHUD, onRunning := systems.HUDListener(e.World)

	driver := core.NewDriver(world, core.Deps{
		Surfaces:  canvas,
		Renderer:  renderer,
		Audio:     audio,
		Logger:    logger,
		OnHUD:     onHUD,
		OnRunning: onRunning,
		OnReward: func(r core.Reward) {
			effects.SpawnReward(e.World, r)
			logger.Debug("reward", "source", r.Source, "points", r.Points, "score", world.Score())
		},
	})

	session := e.World.Entry(e.World.Create(systems.Session))
	systems.Session.SetValue(session, systems.SessionData{
		Driver:   driver,
		Canvas:   canvas,
		Renderer: renderer,
		Audio:    audio,
		Logger:   logger,
	})

	// Input first, then commands, then the simulation frame that renders.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateControls)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateSimulation)

	e.AddRenderer(layerWorld, systems.DrawWorld)
	e.AddRenderer(layerHUD, systems.DrawHUD)
	e.AddRenderer(layerHUD, systems.DrawOverlay)

	logger.Info("level loaded", "level", layout.Name, "coins", len(layout.Coins), "enemies", len(layout.EnemySpawns))

	return &PlayScene{ecs: e, driver: driver, canvas: canvas}, nil
}

func (ps *PlayScene) Update() {
	ps.ecs.Update()
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ps.ecs.Draw(screen)
}

// Resize keeps the render canvas at the window's device size.
func (ps *PlayScene) Resize(width, height int, scale float64) {
	ps.canvas.Resize(width, height, scale)
}

// Driver exposes the simulation driver, mainly for shutdown logging.
func (ps *PlayScene) Driver() *core.Driver {
	return ps.driver
}
