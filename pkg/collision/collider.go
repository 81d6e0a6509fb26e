// pkg/collision/collider.go
package collision

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/opd-ai/go-contact/pkg/contact"
	"github.com/opd-ai/go-contact/pkg/event"
	"github.com/opd-ai/go-contact/pkg/physics"
	"github.com/opd-ai/go-contact/pkg/shape"
)

// ErrColliderOwnership is raised (as a panic) when a collider is updated on
// behalf of an object that does not own it.
var ErrColliderOwnership = errors.New("collider is owned by a different object")

var colliderIDs atomic.Uint64

// Collider attaches one shape to an Object. The shape is kept in local
// space and re-placed in the world whenever the owner moves.
type Collider struct {
	// Enabled colliders take part in overlap and intersection tests
	Enabled bool
	// ComputeIntersections makes the handler collect contact points for
	// this collider. When false, touching is reported as an overlap only.
	ComputeIntersections bool
	// Offset places the shape relative to the owner's transform
	Offset physics.Transform2D
	// Hooks receives this collider's notifications before the signals fire
	Hooks ColliderHooks

	OnIntersected  event.Signal[Collision]
	OnOverlapped   event.Signal[Collision]
	OnContactEnded event.Signal[*Collider]

	id       uint64
	local    shape.Shape
	world    shape.Shape
	parent   *Object
	velocity physics.Vector2D
}

// NewCollider creates an enabled collider for a local-space shape
func NewCollider(s shape.Shape) *Collider {
	return &Collider{
		Enabled:              true,
		ComputeIntersections: true,
		id:                   colliderIDs.Add(1),
		local:                s,
		world:                s,
	}
}

// ID returns a process-unique identifier
func (c *Collider) ID() uint64 {
	return c.id
}

// Parent returns the owning object, or nil
func (c *Collider) Parent() *Object {
	return c.parent
}

// LocalShape returns the shape as defined relative to the owner
func (c *Collider) LocalShape() shape.Shape {
	return c.local
}

// Shape returns the shape placed in world space
func (c *Collider) Shape() shape.Shape {
	return c.world
}

// SetShape replaces the local shape and places it against the owner's
// current transform.
func (c *Collider) SetShape(s shape.Shape) {
	c.local = s
	if c.parent != nil {
		c.InitializeShape(c.parent.Transform)
		return
	}
	c.world = s
}

// Velocity is the world-space velocity of the shape center measured over
// the last UpdateShape call.
func (c *Collider) Velocity() physics.Vector2D {
	return c.velocity
}

// InitializeShape places the shape against t and resets the tracked velocity
func (c *Collider) InitializeShape(t physics.Transform2D) {
	c.velocity = physics.Vector2D{}
	if c.local == nil {
		c.world = nil
		return
	}
	c.world = c.local.Transform(t.Compose(c.Offset))
}

// UpdateShape moves the shape to owner's current transform. It panics with
// ErrColliderOwnership if owner is not the collider's parent.
func (c *Collider) UpdateShape(owner *Object, dt float64) {
	if c.parent != owner {
		var ownerID uint64
		if owner != nil {
			ownerID = owner.ID()
		}
		panic(fmt.Errorf("update collider %d from object %d: %w", c.id, ownerID, ErrColliderOwnership))
	}
	if c.local == nil {
		return
	}

	previous := c.world
	c.world = c.local.Transform(owner.Transform.Compose(c.Offset))

	if previous == nil || dt <= 0 {
		c.velocity = physics.Vector2D{}
		return
	}
	c.velocity = c.world.Center().Sub(previous.Center()).Scale(1 / dt)
}

// BoundingBox returns the world-space bounds of the shape
func (c *Collider) BoundingBox() physics.Rect {
	if c.world == nil {
		return physics.Rect{}
	}
	return c.world.BoundingBox()
}

func (c *Collider) active() bool {
	return c != nil && c.Enabled && c.world != nil
}

// Overlap reports whether both colliders are enabled and their shapes touch
func (c *Collider) Overlap(other *Collider) bool {
	if !c.active() || !other.active() {
		return false
	}
	return shape.Overlap(c.world, other.world)
}

// OverlapShape reports whether the collider touches a world-space shape
func (c *Collider) OverlapShape(s shape.Shape) bool {
	if !c.active() || s == nil {
		return false
	}
	return shape.Overlap(c.world, s)
}

// Intersect returns the contact points between the two colliders with
// normals taken from other's surface, or nil when there are none.
func (c *Collider) Intersect(other *Collider) *contact.Points {
	if !c.active() || !other.active() {
		return nil
	}
	return shape.Intersect(c.world, other.world)
}

// IntersectShape returns the contact points against a world-space shape
// with normals taken from s, or nil when there are none.
func (c *Collider) IntersectShape(s shape.Shape) *contact.Points {
	if !c.active() || s == nil {
		return nil
	}
	return shape.Intersect(c.world, s)
}

func (c *Collider) hooks() ColliderHooks {
	if c.Hooks == nil {
		return NopColliderHooks{}
	}
	return c.Hooks
}

func (c *Collider) resolveIntersected(col Collision) {
	c.hooks().Intersected(col)
	c.OnIntersected.Emit(col)
}

func (c *Collider) resolveOverlapped(col Collision) {
	c.hooks().Overlapped(col)
	c.OnOverlapped.Emit(col)
}

func (c *Collider) resolveContactEnded(other *Collider) {
	c.hooks().ContactEnded(other)
	c.OnContactEnded.Emit(other)
}

func (c *Collider) String() string {
	kind := "none"
	if c.local != nil {
		kind = c.local.Kind().String()
	}
	return fmt.Sprintf("Collider(%d, %s)", c.id, kind)
}
