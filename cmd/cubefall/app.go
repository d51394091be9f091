package main

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/game/debugui"
	"go.uber.org/zap"
)

// app implements ebiten.Game around one game.Game.
type app struct {
	game    *game.Game
	hud     *hud
	panel   *debugui.Panel
	backend *ebitenbackend.EbitenBackend
	logger  *zap.Logger
	views   []view
}

func newApp(g *game.Game, h *hud, panel *debugui.Panel, backend *ebitenbackend.EbitenBackend, logger *zap.Logger) *app {
	return &app{
		game:    g,
		hud:     h,
		panel:   panel,
		backend: backend,
		logger:  logger,
		views:   layoutViews(g.Field().Bounds()),
	}
}

func (a *app) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	a.backend.BeginFrame()

	dt := 1.0 / float64(ebiten.TPS())
	if !a.panel.Input.WantCaptureKeyboard {
		a.handleInput()
	}
	a.game.Tick(dt)
	a.hud.update(dt)

	a.backend.EndFrame()
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	snap := a.game.Snapshot()
	for _, v := range a.views {
		a.drawView(screen, v, snap)
	}
	a.drawHUD(screen, snap)

	a.backend.Draw(screen)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
