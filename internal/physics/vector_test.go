package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	assert.Equal(t, Vec3{5, -3, 9}, a.Add(b))
	assert.Equal(t, Vec3{-3, 7, -3}, a.Sub(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.InDelta(t, 12.0, a.Dot(b), 1e-12)
}

func TestVec3Norm(t *testing.T) {
	assert.InDelta(t, 5.0, Vec3{3, 4, 0}.Norm(), 1e-12)
	assert.Zero(t, Vec3{}.Norm())
}

func TestVec3Dist(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{1, 3, 4}
	assert.InDelta(t, 5.0, a.Dist(b), 1e-12)
	assert.InDelta(t, a.Dist(b), b.Dist(a), 1e-12)
}

func TestVec3NormIsSqrtOfSelfDot(t *testing.T) {
	v := Vec3{-2.5, 1.25, 7}
	assert.InDelta(t, math.Sqrt(v.Dot(v)), v.Norm(), 1e-12)
}
