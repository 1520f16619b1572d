package core

// Key identifies a directional input the controller reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// CameraController accumulates directional key state between frames.
type CameraController struct {
	Speed    float32
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

func NewCameraController(speed float32) *CameraController {
	return &CameraController{Speed: speed}
}

// ProcessKey records a key transition. Returns false for keys it does not own.
func (cc *CameraController) ProcessKey(key Key, pressed bool) bool {
	switch key {
	case KeyW, KeyUp:
		cc.Forward = pressed
	case KeyS, KeyDown:
		cc.Backward = pressed
	case KeyA, KeyLeft:
		cc.Left = pressed
	case KeyD, KeyRight:
		cc.Right = pressed
	default:
		return false
	}
	return true
}

// Update moves the eye for one tick. Strafing orbits the target at a fixed distance.
// A zero-length view direction yields NaN components rather than a panic.
func (cc *CameraController) Update(c *Camera) {
	forwardNorm := c.Target.Sub(c.Eye).Normalize()

	if cc.Forward {
		c.Eye = c.Eye.Add(forwardNorm.Mul(cc.Speed))
	}
	if cc.Backward {
		c.Eye = c.Eye.Sub(forwardNorm.Mul(cc.Speed))
	}

	right := forwardNorm.Cross(c.Up)

	forward := c.Target.Sub(c.Eye)
	forwardMag := forward.Len()

	if cc.Right {
		c.Eye = c.Target.Sub(forward.Add(right.Mul(cc.Speed)).Normalize().Mul(forwardMag))
	}
	if cc.Left {
		c.Eye = c.Target.Sub(forward.Sub(right.Mul(cc.Speed)).Normalize().Mul(forwardMag))
	}
}
