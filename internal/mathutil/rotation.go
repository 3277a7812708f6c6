package mathutil

import "math"

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// OrbitView maps Z-up world coordinates to screen space (X right, Y up,
// Z toward the viewer) for a camera at the given azimuth (degrees clockwise
// from north) and elevation (degrees above the horizon). Elevation 90 is a
// map view looking straight down.
//
//	OrbitView = Rx(elevation - 90°) @ Rz(azimuth)
func OrbitView(azimuth, elevation float64) Mat3 {
	return Mat3Mul(RotX(Deg2Rad(elevation-90)), RotZ(Deg2Rad(azimuth)))
}
