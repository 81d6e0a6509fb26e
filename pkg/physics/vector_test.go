// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vecAlmostEqual(a, b Vector2D) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestVector2D_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Vector2D
		expected Vector2D
	}{
		{"add", Vector2D{X: 3, Y: 4}.Add(Vector2D{X: 1, Y: 2}), Vector2D{X: 4, Y: 6}},
		{"sub", Vector2D{X: 3, Y: 4}.Sub(Vector2D{X: 1, Y: 2}), Vector2D{X: 2, Y: 2}},
		{"scale", Vector2D{X: 3, Y: -4}.Scale(2), Vector2D{X: 6, Y: -8}},
		{"negate", Vector2D{X: 3, Y: -4}.Negate(), Vector2D{X: -3, Y: 4}},
		{"perpendicular", Vector2D{X: 1, Y: 0}.Perpendicular(), Vector2D{X: 0, Y: 1}},
		{"lerp_half", Vector2D{X: 0, Y: 0}.Lerp(Vector2D{X: 10, Y: -4}, 0.5), Vector2D{X: 5, Y: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecAlmostEqual(tt.got, tt.expected) {
				t.Errorf("got %v, expected %v", tt.got, tt.expected)
			}
		})
	}
}

func TestVector2D_Length(t *testing.T) {
	v := Vector2D{X: 3, Y: 4}
	if v.Length() != 5 {
		t.Errorf("Length() = %v, expected 5", v.Length())
	}
	if v.LengthSquared() != 25 {
		t.Errorf("LengthSquared() = %v, expected 25", v.LengthSquared())
	}
	if d := v.DistanceSquared(Vector2D{}); d != 25 {
		t.Errorf("DistanceSquared() = %v, expected 25", d)
	}
	if d := v.Distance(Vector2D{X: 3, Y: 0}); d != 4 {
		t.Errorf("Distance() = %v, expected 4", d)
	}
}

func TestVector2D_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		expected Vector2D
	}{
		{"axis", Vector2D{X: 0, Y: -7}, Vector2D{X: 0, Y: -1}},
		{"diagonal", Vector2D{X: 3, Y: 4}, Vector2D{X: 0.6, Y: 0.8}},
		{"zero_stays_zero", Vector2D{}, Vector2D{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Normalize()
			if !vecAlmostEqual(result, tt.expected) {
				t.Errorf("Normalize() = %v, expected %v", result, tt.expected)
			}
			if math.IsNaN(result.X) || math.IsNaN(result.Y) {
				t.Error("Normalize() produced NaN")
			}
		})
	}
}

func TestVector2D_DotCross(t *testing.T) {
	a := Vector2D{X: 1, Y: 2}
	b := Vector2D{X: 3, Y: 4}
	if a.Dot(b) != 11 {
		t.Errorf("Dot() = %v, expected 11", a.Dot(b))
	}
	if a.Cross(b) != -2 {
		t.Errorf("Cross() = %v, expected -2", a.Cross(b))
	}
}

func TestVector2D_Facing(t *testing.T) {
	right := Vector2D{X: 1, Y: 0}
	tests := []struct {
		name     string
		other    Vector2D
		same     bool
		opposite bool
	}{
		{"same", Vector2D{X: 2, Y: 1}, true, false},
		{"opposite", Vector2D{X: -1, Y: 0.5}, false, true},
		{"perpendicular", Vector2D{X: 0, Y: 1}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := right.IsFacingSameDirection(tt.other); got != tt.same {
				t.Errorf("IsFacingSameDirection() = %v, expected %v", got, tt.same)
			}
			if got := right.IsFacingOppositeDirection(tt.other); got != tt.opposite {
				t.Errorf("IsFacingOppositeDirection() = %v, expected %v", got, tt.opposite)
			}
		})
	}
}

func TestVector2D_Rotate(t *testing.T) {
	v := Vector2D{X: 1, Y: 0}.Rotate(math.Pi / 2)
	if !vecAlmostEqual(v, Vector2D{X: 0, Y: 1}) {
		t.Errorf("Rotate(pi/2) = %v, expected (0, 1)", v)
	}
	if a := FromAngle(math.Pi, 2); !vecAlmostEqual(a, Vector2D{X: -2, Y: 0}) {
		t.Errorf("FromAngle(pi, 2) = %v, expected (-2, 0)", a)
	}
}

func BenchmarkVector2D_Normalize(b *testing.B) {
	v := Vector2D{X: 3, Y: 4}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Normalize()
	}
}
