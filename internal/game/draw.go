package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"trajview/internal/config"
	"trajview/internal/physics"
	"trajview/internal/view"
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	plotW := g.width - config.PanelWidth
	ev := g.evaluate()

	var path []physics.Point
	if ev.hasInput && ev.res.Valid {
		path = physics.SamplePath(ev.vi, g.angleDeg, config.Gravity, ev.res.TimeOfFlight, config.PathSamples)
	}

	// Frame everything currently visible: the theoretical path, the live
	// trail and the projectile itself.
	framed := make([]physics.Point, 0, len(path)+config.TrailLength+1)
	framed = append(framed, path...)
	trail := g.sim.Trail()
	framed = append(framed, trail...)
	if g.sim.Launched() {
		framed = append(framed, g.sim.Pos)
	}
	vp := view.Fit(framed, 0, 0, plotW, g.height)

	g.drawGrid(screen, plotW, vp)
	g.drawPath(screen, path, vp)
	if g.showTrail {
		g.drawTrail(screen, trail, vp)
	}
	g.drawProjectile(screen, vp)
	g.drawLanding(screen, path, vp)

	g.drawPanel(screen, ev)

	if ev.hasInput && !ev.res.Valid {
		g.drawBanner(screen, ev.res.Reason)
	}
	g.drawHUD(screen)
}

func (g *Game) drawGrid(screen *ebiten.Image, plotW int, vp view.Viewport) {
	for x := 0; x <= plotW; x += config.GridStep {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(g.height), 1, config.GridColor, false)
	}
	for y := 0; y <= g.height; y += config.GridStep {
		vector.StrokeLine(screen, 0, float32(y), float32(plotW), float32(y), 1, config.GridColor, false)
	}

	// Axes, only when the world origin falls inside the plot.
	ox, oy := vp.ToScreen(physics.Point{})
	if ox >= 0 && ox <= float32(plotW) {
		vector.StrokeLine(screen, ox, 0, ox, float32(g.height), 2, config.AxisColor, false)
	}
	if oy >= 0 && oy <= float32(g.height) {
		vector.StrokeLine(screen, 0, oy, float32(plotW), oy, 2, config.AxisColor, false)
	}
}

func (g *Game) drawPath(screen *ebiten.Image, path []physics.Point, vp view.Viewport) {
	for i := 1; i < len(path); i++ {
		x1, y1 := vp.ToScreen(path[i-1])
		x2, y2 := vp.ToScreen(path[i])
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, config.PathColor, false)
	}
}

func (g *Game) drawTrail(screen *ebiten.Image, trail []physics.Point, vp view.Viewport) {
	for i := 1; i < len(trail); i++ {
		progress := clamp01(float64(i) / float64(len(trail)))
		r, gr, b := hsvToRgb(210-40*progress, 0.45, 1.0)
		col := color.RGBA{
			R: uint8(float64(r) * progress),
			G: uint8(float64(gr) * progress),
			B: uint8(float64(b) * progress),
			A: 255,
		}
		x1, y1 := vp.ToScreen(trail[i-1])
		x2, y2 := vp.ToScreen(trail[i])
		vector.StrokeLine(screen, x1, y1, x2, y2, 2, col, false)
	}
}

func (g *Game) drawProjectile(screen *ebiten.Image, vp view.Viewport) {
	if !g.sim.Launched() {
		return
	}
	x, y := vp.ToScreen(g.sim.Pos)
	vector.DrawFilledCircle(screen, x, y, 6, config.ProjectileColor, false)
	vector.StrokeCircle(screen, x, y, 6, 2, color.White, false)

	if g.showVectors && g.sim.Running {
		g.drawVelocityVector(screen, x, y)
	}
}

// drawVelocityVector draws the current velocity as an arrow anchored at the
// projectile, scaled for visibility rather than to the world scale.
func (g *Game) drawVelocityVector(screen *ebiten.Image, px, py float32) {
	const vectorScale = 0.1
	const headSize = 8

	endX := px + float32(g.sim.VX*vectorScale)
	endY := py - float32(g.sim.VY*vectorScale)
	vector.StrokeLine(screen, px, py, endX, endY, 3, config.VectorColor, false)

	ang := math.Atan2(g.sim.VY, g.sim.VX)
	h1x := endX - float32(headSize*math.Cos(ang-0.5))
	h1y := endY + float32(headSize*math.Sin(ang-0.5))
	h2x := endX - float32(headSize*math.Cos(ang+0.5))
	h2y := endY + float32(headSize*math.Sin(ang+0.5))
	vector.StrokeLine(screen, endX, endY, h1x, h1y, 3, config.VectorColor, false)
	vector.StrokeLine(screen, endX, endY, h2x, h2y, 3, config.VectorColor, false)
}

// drawLanding marks the landing point and draws the range guide along the
// launch-height axis.
func (g *Game) drawLanding(screen *ebiten.Image, path []physics.Point, vp view.Viewport) {
	if len(path) == 0 {
		return
	}
	lx, ly := vp.ToScreen(path[len(path)-1])
	vector.DrawFilledCircle(screen, lx, ly, 5, config.LandingColor, false)

	ox, axisY := vp.ToScreen(physics.Point{})
	vector.StrokeLine(screen, ox, axisY, lx, axisY, 1, config.GuideColor, false)
	vector.StrokeLine(screen, lx, axisY-6, lx, axisY+6, 1, config.GuideColor, false)
	vector.StrokeLine(screen, ox, axisY-6, ox, axisY+6, 1, config.GuideColor, false)
}

func (g *Game) drawPanel(screen *ebiten.Image, ev evaluation) {
	panelX := g.width - config.PanelWidth
	vector.DrawFilledRect(screen, float32(panelX), 0, config.PanelWidth, float32(g.height), config.PanelColor, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(g.height), 1, config.GuideColor, false)

	textX := panelX + 20
	ebitenutil.DebugPrintAt(screen, "Projectile Range", textX, 20)

	ebitenutil.DebugPrintAt(screen, "Inputs", textX, 60)
	g.inputVi.Draw(screen)
	g.inputVf.Draw(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Angle: %.1f deg", g.angleDeg), textX, 220)
	ebitenutil.DebugPrintAt(screen, "Mouse Wheel / Up / Down", textX, 240)

	ebitenutil.DebugPrintAt(screen, "Controls", textX, 280)
	help := []string{
		"SPACE: Launch",
		"P: Pause/Resume",
		"R: Reset",
		"V: Toggle Vectors",
		"T: Toggle Trail",
		"+/-: Speed",
		"M: Mute",
		"C: Copy Results",
		"ESC/Q: Quit",
	}
	for i, line := range help {
		ebitenutil.DebugPrintAt(screen, line, textX, 300+i*16)
	}

	infoY := 300 + len(help)*16 + 12
	for i, line := range g.statusLines() {
		ebitenutil.DebugPrintAt(screen, line, textX, infoY+i*16)
	}
	infoY += (len(g.statusLines()) + 1) * 16
	for i, line := range g.readoutLines(ev) {
		ebitenutil.DebugPrintAt(screen, line, textX, infoY+i*16)
	}
}

// drawBanner paints the physical-invalidity warning across the top of the
// plot area.
func (g *Game) drawBanner(screen *ebiten.Image, reason string) {
	text := "Warning: " + reason
	w := float32(len(text)*8 + 20)
	vector.DrawFilledRect(screen, 12, 34, w, 24, color.RGBA{R: 80, G: 24, B: 24, A: 230}, false)
	vector.StrokeRect(screen, 12, 34, w, 24, 1, config.ErrorColor, false)
	ebitenutil.DebugPrintAt(screen, text, 22, 38)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	status := "Scroll or press Up/Down to aim, SPACE to launch"
	if g.sound.Muted() {
		status += " | sound off"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// statusLines describes the live simulation for the panel.
func (g *Game) statusLines() []string {
	if !g.sim.Running {
		return []string{"Status: STOPPED"}
	}
	state := "RUNNING"
	if g.sim.Paused {
		state = "PAUSED"
	}
	return []string{
		"Status: " + state,
		fmt.Sprintf("Time: %.2f s", g.sim.Time),
		fmt.Sprintf("Position: (%.1f, %.1f) m", g.sim.Pos.X, g.sim.Pos.Y),
		fmt.Sprintf("Velocity: (%.1f, %.1f) m/s", g.sim.VX, g.sim.VY),
		fmt.Sprintf("Speed: %.1f m/s", g.sim.Speed()),
		fmt.Sprintf("Multiplier: %.1fx", g.speedMult),
	}
}

// readoutLines renders the theoretical results as text. The same lines feed
// the panel and the clipboard export.
func (g *Game) readoutLines(ev evaluation) []string {
	lines := []string{
		"Theoretical:",
		fmt.Sprintf("Angle = %.1f deg", g.angleDeg),
	}
	if !ev.hasInput {
		return append(lines, "Enter a valid initial speed (m/s).")
	}

	lines = append(lines, fmt.Sprintf("vi = %.3f m/s", ev.vi))
	if ev.vfSet {
		lines = append(lines, fmt.Sprintf("vf = %.3f m/s", ev.vf))
	} else {
		lines = append(lines, "vf = (assumed equal to vi)")
	}

	if !ev.res.Valid {
		return append(lines, "Warning: "+ev.res.Reason)
	}
	return append(lines,
		fmt.Sprintf("dy (land - launch) = %.3f m", ev.res.DeltaY),
		fmt.Sprintf("Time of flight = %.3f s", ev.res.TimeOfFlight),
		fmt.Sprintf("Range = %.3f m", ev.res.Range),
	)
}
