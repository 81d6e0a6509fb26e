// pkg/physics/transform.go
package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transform2D places local geometry in the world: scale first, then
// rotation, then translation.
// A zero Scale is treated as 1 so the zero value is the identity transform.
type Transform2D struct {
	Position Vector2D
	Rotation float64
	Scale    float64
}

// NewTransform2D creates an unscaled transform
func NewTransform2D(position Vector2D, rotation float64) Transform2D {
	return Transform2D{Position: position, Rotation: rotation, Scale: 1}
}

// ScaleFactor returns the effective uniform scale
func (t Transform2D) ScaleFactor() float64 {
	if t.Scale == 0 {
		return 1
	}
	return t.Scale
}

// Matrix returns the homogeneous 3x3 matrix of the transform
func (t Transform2D) Matrix() mgl64.Mat3 {
	s := t.ScaleFactor()
	return mgl64.Translate2D(t.Position.X, t.Position.Y).
		Mul3(mgl64.HomogRotate2D(t.Rotation)).
		Mul3(mgl64.Scale2D(s, s))
}

// Apply maps a local point into world space
func (t Transform2D) Apply(p Vector2D) Vector2D {
	w := t.Matrix().Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return Vector2D{X: w.X(), Y: w.Y()}
}

// ApplyAll maps every local point into world space
func (t Transform2D) ApplyAll(points []Vector2D) []Vector2D {
	m := t.Matrix()
	out := make([]Vector2D, len(points))
	for i, p := range points {
		w := m.Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
		out[i] = Vector2D{X: w.X(), Y: w.Y()}
	}
	return out
}

// ApplyDirection rotates a local direction into world space without
// translating or scaling it.
func (t Transform2D) ApplyDirection(d Vector2D) Vector2D {
	w := mgl64.HomogRotate2D(t.Rotation).Mul3x1(mgl64.Vec3{d.X, d.Y, 0})
	return Vector2D{X: w.X(), Y: w.Y()}
}

// Compose returns the world transform of a child placed at local
// relative to t.
func (t Transform2D) Compose(local Transform2D) Transform2D {
	return Transform2D{
		Position: t.Apply(local.Position),
		Rotation: t.Rotation + local.Rotation,
		Scale:    t.ScaleFactor() * local.ScaleFactor(),
	}
}
