// pkg/contact/points_test.go
package contact

import (
	"testing"
)

func TestPoints_NilCollection(t *testing.T) {
	var ps *Points
	if ps.Len() != 0 || !ps.IsEmpty() {
		t.Error("nil collection should be empty")
	}
	if ps.Copy() != nil {
		t.Error("Copy() of nil should be nil")
	}
	if ps.Filter(Closest, vec(0, 0)).Valid {
		t.Error("Filter() on nil should return an invalid point")
	}
	if _, ok := ps.Validate(); ok {
		t.Error("Validate() on nil should report no points")
	}
}

func TestPoints_AppendAndCopy(t *testing.T) {
	a := NewPoints(NewPoint(vec(1, 0), vec(0, 1)))
	b := NewPoints(NewPoint(vec(2, 0), vec(0, 1)), NewPoint(vec(3, 0), vec(0, 1)))

	a.Append(b)
	a.Append(nil)
	if a.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", a.Len())
	}
	if a.At(2).Position != vec(3, 0) {
		t.Errorf("At(2) = %v, expected position (3, 0)", a.At(2))
	}

	c := a.Copy()
	c.Clear()
	if a.Len() != 3 {
		t.Error("clearing a copy changed the original")
	}
	if !a.Contains(NewPoint(vec(2, 0), vec(0, 1))) {
		t.Error("Contains() should find an equal point")
	}
}

func TestPoints_FlipNormals(t *testing.T) {
	ps := NewPoints(
		NewPoint(vec(0, 0), vec(0, -1)),
		NewPoint(vec(1, 0), vec(0, 1)),
	)

	ps.FlipNormalsTowardsPoint(vec(0, 5))
	for i := 0; i < ps.Len(); i++ {
		p := ps.At(i)
		if vec(0, 5).Sub(p.Position).Dot(p.Normal) < 0 {
			t.Errorf("point %d still faces away from reference: %v", i, p)
		}
	}

	ps.FlipAllNormals()
	if ps.At(0).Normal != vec(0, -1) || ps.At(1).Normal != vec(0, -1) {
		t.Errorf("FlipAllNormals() = %v", ps.Slice())
	}

	ps.FlipNormalsTowardsDirection(vec(0, 1))
	if ps.At(0).Normal != vec(0, 1) || ps.At(1).Normal != vec(0, 1) {
		t.Errorf("FlipNormalsTowardsDirection() = %v", ps.Slice())
	}
}

func TestPoints_GetUnique(t *testing.T) {
	a := NewPoint(vec(1, 1), vec(0, 1))
	b := NewPoint(vec(1, 1), vec(1, 0))
	c := NewPoint(vec(2, 2), vec(0, 1))
	ps := NewPoints(a, b, a, c, c)

	positions := ps.GetUniquePoints()
	if len(positions) != 2 {
		t.Errorf("GetUniquePoints() = %v, expected 2 positions", positions)
	}

	once := ps.GetUniqueCollisionPoints()
	if once.Len() != 3 {
		t.Fatalf("GetUniqueCollisionPoints() len = %d, expected 3", once.Len())
	}
	if once.Len() > ps.Len() {
		t.Error("unique set larger than the source")
	}

	twice := once.GetUniqueCollisionPoints()
	if twice.Len() != once.Len() {
		t.Fatalf("second pass len = %d, expected %d", twice.Len(), once.Len())
	}
	for i := 0; i < once.Len(); i++ {
		if !twice.Contains(once.At(i)) {
			t.Errorf("second pass lost %v", once.At(i))
		}
	}
	if ps.Len() != 5 {
		t.Error("GetUniqueCollisionPoints() must not modify the source")
	}
}
