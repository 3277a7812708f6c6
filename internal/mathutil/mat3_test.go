package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func assertVec(t *testing.T, want, got r3.Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
	assert.InDelta(t, want.Z, got.Z, 1e-9)
}

func TestOrbitView(t *testing.T) {
	p := r3.Vec{X: 1, Y: 2, Z: 3}

	// Map view leaves world axes in place.
	assertVec(t, p, OrbitView(0, 90).MulVec(p))

	// Looking north from the horizon: up is Z, nearer points have smaller Y.
	assertVec(t, r3.Vec{X: 1, Y: 3, Z: -2}, OrbitView(0, 0).MulVec(p))

	// Azimuth 90 looks east: north ends up on the left.
	assertVec(t, r3.Vec{X: -2, Y: 1, Z: 3}, OrbitView(90, 90).MulVec(p))
}

func TestMat3(t *testing.T) {
	r := RotZ(Deg2Rad(30))
	assertVec(t, r3.Vec{X: 1, Y: 2, Z: 3}, Mat3Mul(r.Transpose(), r).MulVec(r3.Vec{X: 1, Y: 2, Z: 3}))
	assert.Equal(t, Mat3Identity(), Mat3Mul(Mat3Identity(), Mat3Identity()))
}
