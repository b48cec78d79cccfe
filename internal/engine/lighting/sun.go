// Package lighting provides the directional sun light for terrain shading.
package lighting

import (
	gomath "math"

	"github.com/SettlerNVG/go-terrain/pkg/math"
)

// SunDirection converts azimuth/elevation angles in degrees to the light
// travel direction. Azimuth is rotation around Y (0 points down +Z),
// elevation is degrees above the horizon.
func SunDirection(azimuth, elevation float32) math.Vec3 {
	azRad := float64(azimuth) * gomath.Pi / 180.0
	elRad := float64(elevation) * gomath.Pi / 180.0

	// Direction toward the sun, then negated: light travels away from it.
	x := float32(gomath.Cos(elRad) * gomath.Sin(azRad))
	y := float32(gomath.Sin(elRad))
	z := float32(gomath.Cos(elRad) * gomath.Cos(azRad))

	return math.Vec3{X: -x, Y: -y, Z: -z}
}
