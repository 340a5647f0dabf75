package game

import (
	"strings"
	"testing"

	"trajview/internal/config"
	"trajview/internal/physics"
)

func TestClampCanvas(t *testing.T) {
	cases := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"above minimum", 960, 600, 960, 600},
		{"below both", 320, 200, 640, 480},
		{"narrow only", 500, 700, 640, 700},
		{"short only", 800, 100, 800, 480},
		{"exactly minimum", 640, 480, 640, 480},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, h := clampCanvas(tc.w, tc.h)
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("clampCanvas(%d, %d) = (%d, %d), want (%d, %d)",
					tc.w, tc.h, w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestLayoutTracksResize(t *testing.T) {
	g := NewGame()
	w, h := g.Layout(800, 520)
	if w != 800 || h != 520 {
		t.Errorf("Layout(800, 520) = (%d, %d), want passthrough", w, h)
	}
	w, h = g.Layout(100, 100)
	if w != config.MinWidth || h != config.MinHeight {
		t.Errorf("Layout(100, 100) = (%d, %d), want clamp to (%d, %d)",
			w, h, config.MinWidth, config.MinHeight)
	}
	g.layoutInputs()
	if g.inputVi.X != config.MinWidth-config.PanelWidth+20 {
		t.Errorf("inputVi.X = %d after resize, want panel-relative position", g.inputVi.X)
	}
}

func TestClampAngle(t *testing.T) {
	if got := clampAngle(120); got != config.AngleMax {
		t.Errorf("clampAngle(120) = %v, want %v", got, config.AngleMax)
	}
	if got := clampAngle(-5); got != config.AngleMin {
		t.Errorf("clampAngle(-5) = %v, want %v", got, config.AngleMin)
	}
	if got := clampAngle(45); got != 45.0 {
		t.Errorf("clampAngle(45) = %v, want 45", got)
	}
}

func TestClampSpeedMult(t *testing.T) {
	if got := clampSpeedMult(100); got != config.SpeedMultMax {
		t.Errorf("clampSpeedMult(100) = %v, want %v", got, config.SpeedMultMax)
	}
	if got := clampSpeedMult(0.001); got != config.SpeedMultMin {
		t.Errorf("clampSpeedMult(0.001) = %v, want %v", got, config.SpeedMultMin)
	}
}

func TestEvaluateDefaultsVfToVi(t *testing.T) {
	g := NewGame()
	g.inputVi.Text = "20"
	g.inputVf.Text = ""

	ev := g.evaluate()
	if !ev.hasInput {
		t.Fatal("hasInput = false with vi entered")
	}
	if ev.vfSet {
		t.Error("vfSet = true with an empty vf box")
	}
	if !ev.res.Valid {
		t.Fatalf("result invalid: %s", ev.res.Reason)
	}
	if ev.res.DeltaY != 0 {
		t.Errorf("DeltaY = %v with vf unset, want exactly 0", ev.res.DeltaY)
	}
}

func TestEvaluateEmptyViPrompts(t *testing.T) {
	g := NewGame()
	g.inputVi.Text = ""

	ev := g.evaluate()
	if ev.hasInput {
		t.Error("hasInput = true with empty vi box")
	}
	if !g.inputVi.Invalid {
		t.Error("inputVi.Invalid = false with empty vi box")
	}
	lines := g.readoutLines(ev)
	if !strings.Contains(strings.Join(lines, "\n"), "Enter a valid initial speed") {
		t.Errorf("readout %q missing the input prompt", lines)
	}
}

func TestEvaluateNegativeViWarns(t *testing.T) {
	g := NewGame()
	g.inputVi.Text = "-5"

	ev := g.evaluate()
	if !ev.hasInput {
		t.Fatal("hasInput = false with a parseable vi")
	}
	if ev.res.Valid {
		t.Fatal("result valid for negative vi")
	}
	if ev.res.Reason != physics.ReasonNegativeSpeed {
		t.Errorf("Reason = %q, want %q", ev.res.Reason, physics.ReasonNegativeSpeed)
	}
	if !g.inputVi.Invalid {
		t.Error("inputVi.Invalid = false for negative vi")
	}
}

func TestEvaluateFlagsPartialVf(t *testing.T) {
	g := NewGame()
	g.inputVi.Text = "20"
	g.inputVf.Text = "."

	g.evaluate()
	if !g.inputVf.Invalid {
		t.Error("inputVf.Invalid = false for a bare dot")
	}
	g.inputVf.Text = "15"
	g.evaluate()
	if g.inputVf.Invalid {
		t.Error("inputVf.Invalid = true for a well-formed number")
	}
}

func TestReadoutLinesValidResult(t *testing.T) {
	g := NewGame()
	g.inputVi.Text = "20"
	g.inputVf.Text = "20"
	g.angleDeg = 45

	text := strings.Join(g.readoutLines(g.evaluate()), "\n")
	for _, want := range []string{
		"Angle = 45.0 deg",
		"vi = 20.000 m/s",
		"vf = 20.000 m/s",
		"Time of flight = 2.883 s",
		"Range = 40.775 m",
		"dy (land - launch) = 0.000 m",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("readout missing %q:\n%s", want, text)
		}
	}
}

func TestReadoutLinesInvalidResult(t *testing.T) {
	g := NewGame()
	g.inputVi.Text = "10"
	g.inputVf.Text = "30"
	g.angleDeg = 10

	text := strings.Join(g.readoutLines(g.evaluate()), "\n")
	if !strings.Contains(text, "Warning: "+physics.ReasonNoRealSolution) {
		t.Errorf("readout missing the warning:\n%s", text)
	}
	if strings.Contains(text, "Range =") {
		t.Errorf("readout shows a range for an invalid result:\n%s", text)
	}
}

func TestLaunchRequiresValidResult(t *testing.T) {
	g := NewGame()
	g.sound.ToggleMute() // keep tests off the speaker

	g.launch(evaluation{})
	if g.sim.Launched() {
		t.Error("launch started with no input")
	}

	g.inputVi.Text = "20"
	ev := g.evaluate()
	g.launch(ev)
	if !g.sim.Running {
		t.Error("launch did not start for a valid result")
	}
}

func TestStatusLines(t *testing.T) {
	g := NewGame()
	g.sound.ToggleMute()

	if lines := g.statusLines(); len(lines) != 1 || lines[0] != "Status: STOPPED" {
		t.Errorf("statusLines() = %q, want stopped status only", lines)
	}

	g.inputVi.Text = "20"
	g.launch(g.evaluate())
	lines := g.statusLines()
	if lines[0] != "Status: RUNNING" {
		t.Errorf("lines[0] = %q, want running status", lines[0])
	}
	g.sim.TogglePause()
	if got := g.statusLines()[0]; got != "Status: PAUSED" {
		t.Errorf("status = %q, want paused", got)
	}
}

func TestHsvToRgbPrimaries(t *testing.T) {
	cases := []struct {
		h       float64
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{120, 0, 255, 0},
		{240, 0, 0, 255},
	}
	for _, tc := range cases {
		r, g, b := hsvToRgb(tc.h, 1, 1)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("hsvToRgb(%v, 1, 1) = (%d, %d, %d), want (%d, %d, %d)",
				tc.h, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestClamp01(t *testing.T) {
	if clamp01(-0.5) != 0 || clamp01(1.5) != 1 || clamp01(0.25) != 0.25 {
		t.Error("clamp01 out of contract")
	}
}
