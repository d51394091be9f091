package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/piece"
	"go.uber.org/zap"
)

type binding struct {
	key    ebiten.Key
	action func(a *app)
}

func move(fn func(g *game.Game) bool) func(a *app) {
	return func(a *app) { fn(a.game) }
}

func rotate(axis piece.Axis, dir piece.Direction) func(a *app) {
	return func(a *app) {
		if _, err := a.game.Rotate(axis, dir); err != nil {
			a.logger.Warn("rotate", zap.Error(err))
		}
	}
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, move((*game.Game).MoveLeft)},
	{ebiten.KeyArrowRight, move((*game.Game).MoveRight)},
	{ebiten.KeyArrowUp, move((*game.Game).MoveForward)},
	{ebiten.KeyArrowDown, move((*game.Game).MoveBack)},
	{ebiten.KeyA, rotate(piece.AxisY, piece.Positive)},
	{ebiten.KeyS, rotate(piece.AxisY, piece.Negative)},
	{ebiten.KeyW, rotate(piece.AxisX, piece.Positive)},
	{ebiten.KeyQ, rotate(piece.AxisX, piece.Negative)},
	{ebiten.KeyX, rotate(piece.AxisZ, piece.Positive)},
	{ebiten.KeyZ, rotate(piece.AxisZ, piece.Negative)},
	{ebiten.KeyD, move((*game.Game).HardDrop)},
	{ebiten.KeyEnter, (*app).startOrRestart},
	{ebiten.KeyTab, func(a *app) { a.panel.Toggle() }},
}

func (a *app) handleInput() {
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			b.action(a)
		}
	}
	a.game.SetSoftDrop(ebiten.IsKeyPressed(ebiten.KeySpace))
}

func (a *app) startOrRestart() {
	err := a.game.Start()
	if errors.Is(err, game.ErrAlreadyStarted) {
		a.game.Restart()
		return
	}
	if err != nil {
		a.logger.Error("start", zap.Error(err))
	}
}
