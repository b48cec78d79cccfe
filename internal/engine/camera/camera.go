// Package camera provides camera implementations for terrain viewing.
package camera

import (
	gomath "math"

	"github.com/SettlerNVG/go-terrain/pkg/math"
)

// Camera is the view the frame loop reads each frame.
type Camera interface {
	Position() math.Vec3
	ViewMatrix() math.Mat4
}

// FlyCamera is a free-look camera: WASD walks and strafes along the view
// direction, Q/E rise and sink, the mouse yaws and pitches.
type FlyCamera struct {
	Pos   math.Vec3
	Yaw   float32 // radians around Y, 0 looks down -Z
	Pitch float32 // radians, positive looks up

	// Limits
	MinPitch float32
	MaxPitch float32

	// Sensitivity
	LookSensitivity float32
	MoveSpeed       float32 // units per second
	SprintFactor    float32
}

// NewFlyCamera creates a fly camera at the given position looking toward
// the target.
func NewFlyCamera(pos, target math.Vec3) *FlyCamera {
	c := &FlyCamera{
		Pos:             pos,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		LookSensitivity: 0.004,
		MoveSpeed:       100,
		SprintFactor:    3,
	}
	dir := target.Sub(pos).Normalize()
	c.Yaw = float32(gomath.Atan2(float64(-dir.X), float64(-dir.Z)))
	c.Pitch = float32(gomath.Asin(float64(dir.Y)))
	return c
}

// Position returns the camera position in world space.
func (c *FlyCamera) Position() math.Vec3 {
	return c.Pos
}

// Forward returns the view direction.
func (c *FlyCamera) Forward() math.Vec3 {
	cp := float32(gomath.Cos(float64(c.Pitch)))
	return math.Vec3{
		X: -cp * float32(gomath.Sin(float64(c.Yaw))),
		Y: float32(gomath.Sin(float64(c.Pitch))),
		Z: -cp * float32(gomath.Cos(float64(c.Yaw))),
	}
}

// Right returns the strafe direction on the XZ plane.
func (c *FlyCamera) Right() math.Vec3 {
	return math.Vec3{
		X: float32(gomath.Cos(float64(c.Yaw))),
		Z: -float32(gomath.Sin(float64(c.Yaw))),
	}
}

// Walk moves along the view direction.
func (c *FlyCamera) Walk(d float32) {
	c.Pos = c.Pos.Add(c.Forward().Scale(d))
}

// Strafe moves sideways.
func (c *FlyCamera) Strafe(d float32) {
	c.Pos = c.Pos.Add(c.Right().Scale(d))
}

// Rise moves straight up (negative d sinks).
func (c *FlyCamera) Rise(d float32) {
	c.Pos.Y += d
}

// HandleLook applies a mouse delta to yaw and pitch, clamping pitch.
func (c *FlyCamera) HandleLook(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.LookSensitivity
	c.Pitch -= deltaY * c.LookSensitivity
	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	target := c.Pos.Add(c.Forward())
	return math.LookAt(c.Pos, target, math.Vec3{Y: 1})
}

// OrbitCamera orbits around a center point; useful for inspecting the LOD
// selection from above without flying.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32
	RotationX float32 // pitch (radians)
	RotationY float32 // yaw (radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        600.0,
		RotationX:       0.6,
		MinDistance:     50.0,
		MaxDistance:     5000.0,
		MinPitch:        0.1,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))
	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// HandleDrag updates rotation from a mouse drag delta, clamping pitch.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance from a scroll delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// FitTerrain centers the orbit on the terrain and backs off far enough to
// see the whole footprint.
func (c *OrbitCamera) FitTerrain(size, midHeight float32) {
	c.Center = math.Vec3{Y: midHeight}
	c.Distance = size * 1.2
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
	c.RotationX = 0.6
	c.RotationY = 0.0
}
