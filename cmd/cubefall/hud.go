package main

import (
	"fmt"

	"github.com/plus3/cubefall/game"
)

const flashSeconds = 1.5

// hud keeps the short-lived messages shown over the field.
type hud struct {
	game.NopListener
	flash    string
	flashFor float64
}

func newHUD() *hud {
	return &hud{}
}

func (h *hud) update(dt float64) {
	if h.flashFor > 0 {
		h.flashFor -= dt
	}
}

func (h *hud) message() string {
	if h.flashFor > 0 {
		return h.flash
	}
	return ""
}

func (h *hud) show(msg string) {
	h.flash = msg
	h.flashFor = flashSeconds
}

func (h *hud) OnLayersCleared(ys []int) {
	switch len(ys) {
	case 1:
		h.show("Layer!")
	default:
		h.show(fmt.Sprintf("%d layers!", len(ys)))
	}
}

func (h *hud) OnGameOver(score int) {
	h.show(fmt.Sprintf("Game over: %d", score))
}

func (h *hud) OnGameStarted() {
	h.flashFor = 0
}
