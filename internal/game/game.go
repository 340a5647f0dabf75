// Package game runs the interactive shell: it owns the input widgets, the
// angle state and the live simulation, and redraws the trajectory every
// frame.
package game

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"trajview/internal/audio"
	"trajview/internal/config"
	"trajview/internal/physics"
	"trajview/internal/sim"
	"trajview/internal/ui"
)

const frameDT = 1.0 / 60.0

// Game implements ebiten.Game. One instance owns all mutable state; the
// event loop is single threaded.
type Game struct {
	width, height int

	inputVi *ui.TextInput
	inputVf *ui.TextInput

	angleDeg  float64
	speedMult float64

	sim         *sim.Simulation
	showVectors bool
	showTrail   bool

	sound *audio.Engine

	lastErr error
}

// NewGame returns a game with the quick-start defaults: vi prefilled, vf
// empty (landing speed equal to vi), angle at 45 degrees.
func NewGame() *Game {
	g := &Game{
		width:       config.WindowWidth,
		height:      config.WindowHeight,
		inputVi:     &ui.TextInput{Placeholder: "Initial speed vi (m/s)", Text: "30"},
		inputVf:     &ui.TextInput{Placeholder: "Final speed vf (m/s, empty = vi)"},
		angleDeg:    config.AngleDefault,
		speedMult:   1.0,
		sim:         sim.New(config.TrailLength),
		showVectors: true,
		showTrail:   true,
		sound:       audio.New(),
	}
	g.layoutInputs()
	return g
}

// Layout clamps the canvas to the minimum window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = clampCanvas(outsideWidth, outsideHeight)
	return g.width, g.height
}

func clampCanvas(w, h int) (int, int) {
	if w < config.MinWidth {
		w = config.MinWidth
	}
	if h < config.MinHeight {
		h = config.MinHeight
	}
	return w, h
}

// layoutInputs repositions the input boxes inside the panel for the current
// canvas size.
func (g *Game) layoutInputs() {
	panelX := g.width - config.PanelWidth
	g.inputVi.X, g.inputVi.Y = panelX+20, 80
	g.inputVi.W, g.inputVi.H = config.PanelWidth-40, 36
	g.inputVf.X, g.inputVf.Y = panelX+20, 150
	g.inputVf.W, g.inputVf.H = config.PanelWidth-40, 36
}

func (g *Game) Update() error {
	g.layoutInputs()
	g.inputVi.Update()
	g.inputVf.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Angle controls: wheel and arrow keys, with key repeat.
	_, wheelY := ebiten.Wheel()
	g.angleDeg += wheelY * config.AngleWheelStep
	if keyRepeats(ebiten.KeyUp) {
		g.angleDeg += config.AngleKeyStep
	}
	if keyRepeats(ebiten.KeyDown) {
		g.angleDeg -= config.AngleKeyStep
	}
	g.angleDeg = clampAngle(g.angleDeg)

	ev := g.evaluate()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.launch(ev)
	}

	// Letter shortcuts stay quiet while a box is being edited.
	if !g.inputVi.Focused && !g.inputVf.Focused {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			g.sim.TogglePause()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.sim.Stop()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyV) {
			g.showVectors = !g.showVectors
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyT) {
			g.showTrail = !g.showTrail
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyM) {
			g.sound.ToggleMute()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			g.copyReadout(ev)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
			g.speedMult = clampSpeedMult(g.speedMult * config.SpeedMultInc)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
			g.speedMult = clampSpeedMult(g.speedMult / config.SpeedMultInc)
		}
	}

	if g.sim.Step(frameDT, g.speedMult) {
		g.sound.PlayImpact()
	}

	return nil
}

// evaluation is the per-frame outcome of parsing the boxes and running the
// solver.
type evaluation struct {
	hasInput bool // vi box holds a number
	vi, vf   float64
	vfSet    bool
	res      physics.Result
}

func (g *Game) evaluate() evaluation {
	vi, viSet := g.inputVi.Value()
	vf, vfSet := g.inputVf.Value()

	g.inputVi.Invalid = !viSet || vi <= 0
	g.inputVf.Invalid = !vfSet && strings.TrimSpace(g.inputVf.Text) != ""

	if !viSet {
		return evaluation{}
	}
	return evaluation{
		hasInput: true,
		vi:       vi,
		vf:       vf,
		vfSet:    vfSet,
		res:      physics.Solve(vi, vf, vfSet, g.angleDeg, config.Gravity),
	}
}

func (g *Game) launch(ev evaluation) {
	if !ev.hasInput || !ev.res.Valid {
		return
	}
	g.sim.Launch(ev.vi, g.angleDeg, config.Gravity, ev.res)
	g.sound.PlayLaunch()
}

func (g *Game) copyReadout(ev evaluation) {
	text := strings.Join(g.readoutLines(ev), "\n")
	if err := clipboard.WriteAll(text); err != nil {
		g.lastErr = err
	}
}

func keyRepeats(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= 20 && d%3 == 0)
}

func clampAngle(deg float64) float64 {
	if deg < config.AngleMin {
		return config.AngleMin
	}
	if deg > config.AngleMax {
		return config.AngleMax
	}
	return deg
}

func clampSpeedMult(m float64) float64 {
	if m < config.SpeedMultMin {
		return config.SpeedMultMin
	}
	if m > config.SpeedMultMax {
		return config.SpeedMultMax
	}
	return m
}
