// pkg/physics/transform_test.go
package physics

import (
	"math"
	"testing"
)

func TestTransform2D_Apply(t *testing.T) {
	tests := []struct {
		name      string
		transform Transform2D
		point     Vector2D
		expected  Vector2D
	}{
		{"zero_value_is_identity", Transform2D{}, Vector2D{X: 3, Y: -2}, Vector2D{X: 3, Y: -2}},
		{"translate", NewTransform2D(Vector2D{X: 10, Y: 5}, 0), Vector2D{X: 1, Y: 1}, Vector2D{X: 11, Y: 6}},
		{"rotate_quarter", NewTransform2D(Vector2D{}, math.Pi/2), Vector2D{X: 1, Y: 0}, Vector2D{X: 0, Y: 1}},
		{"scale_rotate_translate", Transform2D{Position: Vector2D{X: 10}, Rotation: math.Pi, Scale: 2}, Vector2D{X: 1, Y: 0}, Vector2D{X: 8, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.transform.Apply(tt.point)
			if !vecAlmostEqual(got, tt.expected) {
				t.Errorf("Apply(%v) = %v, expected %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestTransform2D_Compose(t *testing.T) {
	parent := NewTransform2D(Vector2D{X: 5, Y: 0}, math.Pi/2)
	local := NewTransform2D(Vector2D{X: 2, Y: 0}, 0)

	world := parent.Compose(local)
	if !vecAlmostEqual(world.Position, Vector2D{X: 5, Y: 2}) {
		t.Errorf("Compose().Position = %v, expected (5, 2)", world.Position)
	}
	if !almostEqual(world.Rotation, math.Pi/2) {
		t.Errorf("Compose().Rotation = %v, expected pi/2", world.Rotation)
	}

	dir := parent.ApplyDirection(Vector2D{X: 1, Y: 0})
	if !vecAlmostEqual(dir, Vector2D{X: 0, Y: 1}) {
		t.Errorf("ApplyDirection() = %v, expected (0, 1)", dir)
	}
}
