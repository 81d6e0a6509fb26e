// Package shape provides the geometric primitives attached to colliders and
// the pairwise overlap and intersection tests between them.
//
// Shapes are immutable values in world space. Colliders keep a local
// definition and call Transform to place it in the world every step.
package shape

import (
	"fmt"

	"github.com/opd-ai/go-contact/pkg/physics"
)

// Kind identifies the concrete primitive behind a Shape
type Kind int

const (
	KindSegment Kind = iota
	KindCircle
	KindTriangle
	KindRect
	KindPolygon
	KindPolyline
)

func (k Kind) String() string {
	switch k {
	case KindSegment:
		return "segment"
	case KindCircle:
		return "circle"
	case KindTriangle:
		return "triangle"
	case KindRect:
		return "rect"
	case KindPolygon:
		return "polygon"
	case KindPolyline:
		return "polyline"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is a 2D primitive that can be tested against other shapes
type Shape interface {
	Kind() Kind
	Center() physics.Vector2D
	BoundingBox() physics.Rect
	// Transform places a local definition in the world
	Transform(t physics.Transform2D) Shape
}

// edged is implemented by every shape made of straight edges
type edged interface {
	Shape
	Edges() []Segment
	Vertices() []physics.Vector2D
	Closed() bool
}
