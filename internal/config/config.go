package config

import "image/color"

const (
	WindowWidth  = 960
	WindowHeight = 600
	MinWidth     = 640
	MinHeight    = 480

	// Right-hand control panel
	PanelWidth = 320

	// Plot area margins (px)
	MarginLeft   = 40
	MarginRight  = 20
	MarginTop    = 20
	MarginBottom = 60
	GridStep     = 20

	// Physics
	Gravity = 9.81 // m/s^2

	// Angle control
	AngleMin       = 0.0
	AngleMax       = 89.9
	AngleDefault   = 45.0
	AngleWheelStep = 1.5
	AngleKeyStep   = 1.0

	// Plot sampling
	PathSamples = 300

	// Live simulation
	TrailLength  = 200
	SpeedMultMin = 0.1
	SpeedMultMax = 5.0
	SpeedMultInc = 1.5

	// Audio
	AudioSampleRate = 44100
)

var (
	BackgroundColor = color.RGBA{R: 18, G: 18, B: 22, A: 255}
	PanelColor      = color.RGBA{R: 24, G: 24, B: 30, A: 255}
	TextColor       = color.RGBA{R: 230, G: 230, B: 235, A: 255}
	DimTextColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	AccentColor     = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	InputBGColor    = color.RGBA{R: 35, G: 35, B: 42, A: 255}
	InputFocusColor = color.RGBA{R: 50, G: 50, B: 62, A: 255}
	ErrorColor      = color.RGBA{R: 255, G: 120, B: 120, A: 255}
	GridColor       = color.RGBA{R: 40, G: 44, B: 52, A: 255}
	AxisColor       = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	PathColor       = color.RGBA{R: 100, G: 100, B: 120, A: 255}
	TrailColor      = color.RGBA{R: 150, G: 200, B: 255, A: 255}
	ProjectileColor = color.RGBA{R: 255, G: 200, B: 100, A: 255}
	VectorColor     = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	LandingColor    = color.RGBA{R: 255, G: 180, B: 100, A: 255}
	GuideColor      = color.RGBA{R: 120, G: 120, B: 140, A: 255}
	ResultColor     = color.RGBA{R: 180, G: 255, B: 180, A: 255}
)
