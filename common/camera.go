package common

// Camera follows a target point in world pixels and keeps the view inside
// the world bounds.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int

	// smoothing factor (0..1). higher -> faster follow. e.g. 0.15
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera for a logical screen of the given size.
func NewCamera(screenW, screenH int, smooth float64) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH}
	c.SetSmooth(smooth)
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

// SetWorldBounds sets the world pixel dimensions for clamping camera position.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = Clamp(f, 0, 1)
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return c.PosX - float64(c.screenW)/2.0, c.PosY - float64(c.screenH)/2.0
}

// Update moves the camera toward the target world coordinate. Call from the
// fixed-rate Update loop to get consistent smoothing.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX = float64(Lerp(float32(c.PosX), float32(targetX), float32(c.smooth)))
		c.PosY = float64(Lerp(float32(c.PosY), float32(targetY), float32(c.smooth)))
	}
	c.clampToWorld()
}

// SnapTo immediately centers the camera on the given world coordinates.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.clampToWorld()
}

func (c *Camera) clampToWorld() {
	halfW := float64(c.screenW) / 2.0
	halfH := float64(c.screenH) / 2.0
	if c.worldW > 0 {
		if c.worldW < 2*halfW {
			// world smaller than view: center on world
			c.PosX = c.worldW / 2.0
		} else {
			c.PosX = Clamp(c.PosX, halfW, c.worldW-halfW)
		}
	}
	if c.worldH > 0 {
		if c.worldH < 2*halfH {
			c.PosY = c.worldH / 2.0
		} else {
			c.PosY = Clamp(c.PosY, halfH, c.worldH-halfH)
		}
	}
}
