// Package gui is the graphical driver loop: raylib window, 2D camera
// mapped from the simulation camera, radial-gradient glows for bodies,
// faded trails, and optional sonification.
package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/AmirChGit/three-body-problem/internal/audio"
	"github.com/AmirChGit/three-body-problem/internal/config"
	"github.com/AmirChGit/three-body-problem/internal/physics"
	"github.com/AmirChGit/three-body-problem/internal/sim"
	"github.com/AmirChGit/three-body-problem/internal/stats"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

var (
	colBg      = rl.NewColor(10, 10, 14, 255)
	colText    = rl.NewColor(180, 180, 180, 255)
	colTextDim = rl.NewColor(90, 90, 90, 255)
)

type App struct {
	sim    *sim.Simulation
	store  *stats.Store
	cfg    *config.Config
	audio  *audio.Engine
	glow   rl.Texture2D
	paused bool
}

// Run opens the window and drives the simulation until it is closed.
func Run(cfg *config.Config, s *sim.Simulation, store *stats.Store) {
	rl.InitWindow(windowWidth, windowHeight, "three-body")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	app := &App{sim: s, store: store, cfg: cfg, audio: audio.NewEngine()}

	// silent mode is fine when no output device exists
	if err := app.audio.Start(); err == nil {
		defer app.audio.Stop()
		s.AddObserver(sim.ObserverFunc(func(sim.RunEnd) { app.audio.Bell() }))
	}

	img := rl.GenImageGradientRadial(64, 64, 0.0, rl.White, rl.NewColor(0, 0, 0, 0))
	app.glow = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(app.glow)

	for !rl.WindowShouldClose() {
		app.update()
		app.draw()
	}
}

func (a *App) update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.sim.Reset()
	}
	if a.paused {
		return
	}

	a.sim.Step()

	if a.audio.Active() {
		a.audio.SetSpread(a.spread())
	}
}

// spread is the live bounding-box size normalized against the
// divergence limit.
func (a *App) spread() float64 {
	var ps []physics.Vec2
	for _, b := range a.sim.Bodies() {
		if b.Alive() {
			ps = append(ps, b.Pos)
		}
	}
	if len(ps) == 0 {
		return 0
	}
	bounds := physics.ComputeBounds(ps)
	w, h := a.sim.Size()
	limit := math.Min(w, h) * a.cfg.Tuning.DivergenceFactor
	if limit <= 0 {
		return 0
	}
	return math.Max(bounds.Width(), bounds.Height()) / limit
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	cam := a.sim.Camera()
	rlCam := rl.Camera2D{
		Offset: rl.NewVector2(windowWidth/2, windowHeight/2),
		Target: rl.NewVector2(float32(cam.Pos.X), float32(cam.Pos.Y)),
		Zoom:   float32(cam.Zoom),
	}

	rl.BeginMode2D(rlCam)
	for _, b := range a.sim.Bodies() {
		col := hexColor(b.Color)
		a.drawTrail(b, col)
		a.drawBody(b, col, cam.Zoom)
	}
	rl.EndMode2D()

	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawTrail(b *physics.Body, col rl.Color) {
	if len(b.Trail) == 0 {
		return
	}
	prev := rl.NewVector2(float32(b.Pos.X), float32(b.Pos.Y))
	n := len(b.Trail)
	for i, p := range b.Trail {
		// head of the trail is newest; fade toward the tail
		alpha := float32(n-i) / float32(n) * 0.6
		cur := rl.NewVector2(float32(p.X), float32(p.Y))
		rl.DrawLineEx(prev, cur, 1.5, rl.Fade(col, alpha))
		prev = cur
	}
}

func (a *App) drawBody(b *physics.Body, col rl.Color, zoom float64) {
	r := float32(math.Max(b.Radius(), 2/zoom))
	pos := rl.NewVector2(float32(b.Pos.X), float32(b.Pos.Y))

	glowSize := r * 6
	rl.DrawTexturePro(a.glow,
		rl.NewRectangle(0, 0, float32(a.glow.Width), float32(a.glow.Height)),
		rl.NewRectangle(pos.X-glowSize/2, pos.Y-glowSize/2, glowSize, glowSize),
		rl.NewVector2(0, 0), 0, rl.Fade(col, 0.35))

	rl.DrawCircleV(pos, r, col)
}

func (a *App) drawHUD() {
	st := a.store.Stats()

	rl.DrawText(fmt.Sprintf("run #%d", st.TotalRuns+1), 20, 20, 20, colText)
	rl.DrawText(fmt.Sprintf("elapsed  %5.1fs", a.sim.RunElapsed().Seconds()), 20, 46, 20, colText)
	rl.DrawText(fmt.Sprintf("completed %d", st.TotalRuns), 20, 72, 20, colTextDim)
	rl.DrawText(fmt.Sprintf("longest  %5.1fs", st.LongestRunSeconds), 20, 98, 20, colTextDim)

	if a.paused {
		rl.DrawText("PAUSED", windowWidth/2-50, 20, 24, colText)
	}
	rl.DrawText("space pause  r reset  esc quit", 20, windowHeight-36, 18, colTextDim)
}

// hexColor parses "#rrggbb" body colors; anything else renders white.
func hexColor(s string) rl.Color {
	if len(s) != 7 || s[0] != '#' {
		return rl.White
	}
	parse := func(b string) uint8 {
		var v uint8
		for _, c := range b {
			v *= 16
			switch {
			case c >= '0' && c <= '9':
				v += uint8(c - '0')
			case c >= 'a' && c <= 'f':
				v += uint8(c-'a') + 10
			case c >= 'A' && c <= 'F':
				v += uint8(c-'A') + 10
			}
		}
		return v
	}
	return rl.NewColor(parse(s[1:3]), parse(s[3:5]), parse(s[5:7]), 255)
}
