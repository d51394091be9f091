// Command cubefall is the desktop front end: an Ebiten window showing the
// field from the front, the side and above, with an optional ImGui debug panel.
package main

import (
	"errors"
	"flag"
	"log"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/game/debugui"
	"github.com/plus3/cubefall/internal/cli"
	"go.uber.org/zap"
)

const (
	screenWidth  = 960
	screenHeight = 720
	tps          = 60
)

func main() {
	configFlags := cli.RegisterConfigFlags(flag.CommandLine)
	debug := flag.Bool("debug", false, "Enable debug log output")
	showPanel := flag.Bool("panel", false, "Open the debug panel at startup")
	flag.Parse()

	logger, err := cli.NewLogger(*debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := configFlags.Config()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	hud := newHUD()
	g, err := game.New(cfg, game.WithLogger(logger), game.WithListener(hud))
	if err != nil {
		logger.Fatal("create game", zap.Error(err))
	}

	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("cubefall", screenWidth, screenHeight)
	imgui.CurrentIO().SetIniFilename("")

	panel := debugui.NewPanel(g, 120)
	panel.Visible = *showPanel
	g.Register(panel)

	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("cubefall")

	app := newApp(g, hud, panel, backend, logger)
	logger.Info("window open", zap.Any("config", cfg))
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run", zap.Error(err))
	}
	logger.Info("exit", zap.Int("score", g.Score()))
}
