// Package view maps world-space trajectory points into plot-area pixels.
package view

import (
	"trajview/internal/config"
	"trajview/internal/physics"
)

// DefaultScale is used when there is nothing to frame yet, in px per meter.
const DefaultScale = 6.0

// Viewport places the world origin on screen and fixes a uniform scale.
// World y grows upward, screen y grows downward.
type Viewport struct {
	OriginX float64 // px of world x=0
	OriginY float64 // px of world y=0
	Scale   float64 // px per meter
}

// ToScreen converts a world point to pixel coordinates.
func (v Viewport) ToScreen(p physics.Point) (x, y float32) {
	return float32(v.OriginX + p.X*v.Scale), float32(v.OriginY - p.Y*v.Scale)
}

// Fit frames the given points inside the plot rectangle, leaving the
// configured margins. The launch origin is always kept in frame and the
// scale never drops below 1 px per meter so degenerate extents stay
// readable. With no points it returns the default view anchored at the
// lower-left margin.
func Fit(points []physics.Point, plotX, plotY, plotW, plotH int) Viewport {
	if len(points) == 0 {
		return Viewport{
			OriginX: float64(plotX + config.MarginLeft),
			OriginY: float64(plotY + plotH - config.MarginBottom),
			Scale:   DefaultScale,
		}
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	minX = min(minX, 0)
	minY = min(minY, 0)
	maxX = max(maxX, 0)
	maxY = max(maxY, 0)

	usableW := float64(plotW - config.MarginLeft - config.MarginRight)
	usableH := float64(plotH - config.MarginTop - config.MarginBottom)
	widthWorld := max(1e-6, maxX-minX)
	heightWorld := max(1e-6, maxY-minY)
	scale := max(1.0, min(usableW/widthWorld, usableH/heightWorld))

	return Viewport{
		OriginX: float64(plotX+config.MarginLeft) - minX*scale,
		OriginY: float64(plotY+config.MarginTop) + maxY*scale,
		Scale:   scale,
	}
}
