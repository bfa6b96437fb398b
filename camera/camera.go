// Package camera provides a 2D pan/zoom viewport over the bounded
// simulation arena (adapted from a toroidal-world camera; this arena
// does not wrap, since walls bound it, so wrap-around panning and
// ghost-copy rendering are not applicable here).
package camera

// Camera controls the viewport into the simulation arena. Supports
// pan and zoom, clamped so the viewport never shows outside the
// arena bounds.
type Camera struct {
	X, Y float32

	Zoom float32

	ViewportW, ViewportH float32
	ArenaW, ArenaH       float32

	MinZoom, MaxZoom float32
}

// New creates a camera centered on the arena with 1:1 zoom.
func New(viewportW, viewportH, arenaW, arenaH float32) *Camera {
	minZoomX := viewportW / arenaW
	minZoomY := viewportH / arenaH
	minZoom := minZoomX
	if minZoomY > minZoom {
		minZoom = minZoomY
	}

	return &Camera{
		X:         arenaW / 2,
		Y:         arenaH / 2,
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		ArenaW:    arenaW,
		ArenaH:    arenaH,
		MinZoom:   minZoom,
		MaxZoom:   4.0,
	}
}

// WorldToScreen converts arena coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	dx := wx - c.X
	dy := wy - c.Y
	sx = c.ViewportW/2 + dx*c.Zoom
	sy = c.ViewportH/2 + dy*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to arena coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	dx := (sx - c.ViewportW/2) / c.Zoom
	dy := (sy - c.ViewportH/2) / c.Zoom
	return clamp(c.X+dx, 0, c.ArenaW), clamp(c.Y+dy, 0, c.ArenaH)
}

// IsVisible reports whether a circle at (wx, wy) with the given
// radius could be visible on screen (conservative cull check).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	dx := wx - c.X
	dy := wy - c.Y
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(dx) <= halfW && absf(dy) <= halfH
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	minZoomX := viewportW / c.ArenaW
	minZoomY := viewportH / c.ArenaH
	c.MinZoom = minZoomX
	if minZoomY > c.MinZoom {
		c.MinZoom = minZoomY
	}
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
}

// Pan moves the camera by the given screen-pixel delta, clamped so
// the viewport stays within the arena.
func (c *Camera) Pan(dx, dy float32) {
	c.X = clamp(c.X+dx/c.Zoom, c.ViewportW/(2*c.Zoom), c.ArenaW-c.ViewportW/(2*c.Zoom))
	c.Y = clamp(c.Y+dy/c.Zoom, c.ViewportH/(2*c.Zoom), c.ArenaH-c.ViewportH/(2*c.Zoom))
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the default position and zoom.
func (c *Camera) Reset() {
	c.X = c.ArenaW / 2
	c.Y = c.ArenaH / 2
	c.Zoom = 1.0
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(x, min, max float32) float32 {
	if min > max {
		return (min + max) / 2
	}
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
