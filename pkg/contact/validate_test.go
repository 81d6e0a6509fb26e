// pkg/contact/validate_test.go
package contact

import (
	"math"
	"testing"
)

func TestPoints_Validate_RemovesInvalid(t *testing.T) {
	ps := NewPoints(
		NewPoint(vec(0, 0), vec(0, 1)),
		Point{Position: vec(50, 50), Normal: vec(1, 0)},
		NewPoint(vec(2, 0), vec(1, 0)),
		Point{},
	)

	result, ok := ps.Validate()
	if !ok {
		t.Fatal("Validate() = false, expected true")
	}
	if ps.Len() != 2 {
		t.Fatalf("Len() after Validate() = %d, expected 2", ps.Len())
	}
	if ps.At(0).Position != vec(0, 0) || ps.At(1).Position != vec(2, 0) {
		t.Errorf("kept points out of order: %v", ps.Slice())
	}
	if result.Combined.Position != vec(1, 0) {
		t.Errorf("Combined position = %v, expected (1, 0)", result.Combined.Position)
	}
	if !vecAlmostEqual(result.Combined.Normal, vec(math.Sqrt2/2, math.Sqrt2/2)) {
		t.Errorf("Combined normal = %v, expected normalized (1, 1)", result.Combined.Normal)
	}
	if result.Closest.Valid || result.Furthest.Valid || result.PointingTowards.Valid {
		t.Error("reference-based results should be unset without a reference")
	}
}

func TestPoints_Validate_AllInvalid(t *testing.T) {
	tests := []struct {
		name   string
		points *Points
	}{
		{"empty", NewPoints()},
		{"single_invalid", NewPoints(Point{Position: vec(1, 1)})},
		{"many_invalid", NewPoints(Point{}, Point{Position: vec(2, 2)}, Point{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := tt.points.Validate()
			if ok {
				t.Error("Validate() = true, expected false")
			}
			if tt.points.Len() != 0 {
				t.Errorf("Len() = %d, expected the collection to be drained", tt.points.Len())
			}
			if result.Combined.Valid {
				t.Error("Combined should be invalid")
			}
		})
	}
}

func TestPoints_Validate_SinglePoint(t *testing.T) {
	p := NewPoint(vec(4, 0), vec(-1, 0))

	t.Run("short_circuits_all_outputs", func(t *testing.T) {
		ps := NewPoints(p)
		result, ok := ps.ValidatePoint(vec(0, 0))
		if !ok {
			t.Fatal("Validate() = false, expected true")
		}
		for name, got := range map[string]Point{
			"combined": result.Combined, "closest": result.Closest,
			"furthest": result.Furthest, "pointing": result.PointingTowards,
		} {
			if got != p {
				t.Errorf("%s = %v, expected %v", name, got, p)
			}
		}
	})

	t.Run("still_checks_reference", func(t *testing.T) {
		ps := NewPoints(p)
		if _, ok := ps.ValidatePoint(vec(10, 0)); ok {
			t.Error("point facing away from the reference should be discarded")
		}
		if ps.Len() != 0 {
			t.Error("discarded single point should leave the collection empty")
		}
	})
}

func TestPoints_ValidateDirection(t *testing.T) {
	ps := NewPoints(
		NewPoint(vec(0, 0), vec(0, 1)),
		NewPoint(vec(1, 0), vec(0, -1)),
		NewPoint(vec(2, 0), vec(1, 0)),
		NewPoint(vec(3, 0), vec(1, 1).Normalize()),
		NewPoint(vec(4, 0), vec(-1, 1).Normalize()),
	)

	result, ok := ps.ValidateDirection(vec(0, -1))
	if !ok {
		t.Fatal("ValidateDirection() = false, expected true")
	}
	if ps.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3 (same-facing and perpendicular removed): %v", ps.Len(), ps.Slice())
	}
	for _, p := range ps.Slice() {
		if p.Normal.Dot(vec(0, -1)) >= 0 {
			t.Errorf("kept point %v faces the reference direction", p)
		}
	}
	if !result.PointingTowards.Valid {
		t.Fatal("PointingTowards should be set when a direction is given")
	}
	if result.Closest.Valid {
		t.Error("Closest should be unset without a reference point")
	}
}

func TestPoints_ValidatePoint(t *testing.T) {
	ref := vec(0, 10)
	ps := NewPoints(
		NewPoint(vec(0, 0), vec(0, 1)),
		NewPoint(vec(5, 0), vec(0, -1)),
		NewPoint(vec(3, 0), vec(0, 1)),
	)

	result, ok := ps.ValidatePoint(ref)
	if !ok {
		t.Fatal("ValidatePoint() = false, expected true")
	}
	if ps.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", ps.Len())
	}
	if result.Closest.Position != vec(0, 0) {
		t.Errorf("Closest = %v, expected (0, 0)", result.Closest)
	}
	if result.Furthest.Position != vec(3, 0) {
		t.Errorf("Furthest = %v, expected (3, 0)", result.Furthest)
	}
	// Without an explicit direction each normal is compared with the
	// direction from the reference point to its position.
	if result.PointingTowards.Position != vec(3, 0) {
		t.Errorf("PointingTowards = %v, expected (3, 0)", result.PointingTowards)
	}
	if result.Combined.Position != vec(1.5, 0) || result.Combined.Normal != vec(0, 1) {
		t.Errorf("Combined = %v, expected (1.5, 0) with normal (0, 1)", result.Combined)
	}
}

func TestPoints_ValidatePoint_TieKeepsFirstSeenInBackwardPass(t *testing.T) {
	ps := NewPoints(
		NewPoint(vec(1, 0), vec(0, 1)),
		NewPoint(vec(-1, 0), vec(0, 1)),
	)

	result, ok := ps.ValidatePoint(vec(0, 10))
	if !ok {
		t.Fatal("ValidatePoint() = false, expected true")
	}
	if result.Closest.Position != vec(-1, 0) || result.Furthest.Position != vec(-1, 0) {
		t.Errorf("tie resolved to %v / %v, expected the last inserted point", result.Closest, result.Furthest)
	}
}

func TestPoints_ValidateDirectionPoint(t *testing.T) {
	ps := NewPoints(
		NewPoint(vec(0, 0), vec(0, 1)),
		NewPoint(vec(1, 0), vec(0, -1)),
		NewPoint(vec(2, 0), vec(-1, 0.1).Normalize()),
	)

	_, ok := ps.ValidateDirectionPoint(vec(0, -1), vec(10, 10))
	if !ok {
		t.Fatal("ValidateDirectionPoint() = false, expected true")
	}
	if ps.Len() != 1 || ps.At(0).Position != vec(0, 0) {
		t.Errorf("expected only (0, 0) to survive, got %v", ps.Slice())
	}
}

func BenchmarkPoints_ValidatePoint(b *testing.B) {
	src := make([]Point, 0, 32)
	for i := 0; i < 32; i++ {
		src = append(src, NewPoint(vec(float64(i), 0), vec(0, 1)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ps := NewPoints(src...)
		ps.ValidatePoint(vec(0, 10))
	}
}
