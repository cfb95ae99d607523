// Package camera builds view matrices for the preview renderer.
package camera

import "geosphere/internal/mathutil"

// Orbit is an orbit camera described by angles in degrees. Yaw spins
// around the vertical (Y) axis, pitch tilts toward the poles, roll
// turns around the view axis.
type Orbit struct {
	Yaw   float64
	Pitch float64
	Roll  float64
}

// Default frames the sphere slightly from above and to the side, so
// both a pole and the equator region are visible.
func Default() Orbit {
	return Orbit{Yaw: 30, Pitch: -20}
}

// ViewMatrix returns the world-to-view rotation: yaw first, then
// pitch, then roll.
func (o Orbit) ViewMatrix() mathutil.Mat3 {
	ry := mathutil.RotY(mathutil.Deg2Rad(o.Yaw))
	rx := mathutil.RotX(mathutil.Deg2Rad(o.Pitch))
	rz := mathutil.RotZ(mathutil.Deg2Rad(o.Roll))
	return mathutil.Mat3Mul(rz, mathutil.Mat3Mul(rx, ry))
}
