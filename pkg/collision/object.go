// Package collision runs narrow-phase collision between objects made of
// colliders and drives their contact notifications.
//
// An Object owns a set of Colliders. A Handler registered as an ecs.System
// moves objects every step, finds candidate pairs with a quad tree and
// calls ResolveCollision, ResolveContactEnded and
// ResolveColliderContactEnded as pairs start, keep and stop touching.
package collision

import (
	"fmt"
	"slices"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-contact/pkg/contact"
	"github.com/opd-ai/go-contact/pkg/event"
	"github.com/opd-ai/go-contact/pkg/physics"
	"github.com/opd-ai/go-contact/pkg/shape"
)

// ColliderPair names two colliders whose contact ended
type ColliderPair struct {
	Self  *Collider
	Other *Collider
}

// Object is an entity taking part in collision
type Object struct {
	ecs.BasicEntity

	Transform physics.Transform2D
	Velocity  physics.Vector2D

	Enabled bool
	// Passive objects receive contact normals computed on their own
	// surface, pointing toward the other object.
	Passive bool
	// FilterCollisionPoints reduces each collider pair to one point
	// chosen by FilterType.
	FilterCollisionPoints bool
	FilterType            contact.FilterType
	// AdvancedCollisionNotification enables the per-collider callbacks
	AdvancedCollisionNotification bool

	Hooks Hooks

	OnCollision              event.Signal[*Information]
	OnContactEnded           event.Signal[*Object]
	OnColliderIntersected    event.Signal[Collision]
	OnColliderOverlapped     event.Signal[Collision]
	OnColliderContactEnded   event.Signal[ColliderPair]
	OnCollisionSystemEntered event.Signal[*Handler]
	OnCollisionSystemLeft    event.Signal[*Handler]

	colliders map[*Collider]struct{}
	order     []*Collider
	handler   *Handler
}

// NewObject creates an enabled object placed at transform
func NewObject(transform physics.Transform2D, colliders ...*Collider) *Object {
	o := &Object{
		BasicEntity: ecs.NewBasic(),
		Transform:   transform,
		Enabled:     true,
		colliders:   make(map[*Collider]struct{}),
	}
	for _, c := range colliders {
		o.AddCollider(c)
	}
	return o
}

// Handler returns the handler the object is registered with, or nil
func (o *Object) Handler() *Handler {
	return o.handler
}

// Colliders returns the colliders in the order they were added
func (o *Object) Colliders() []*Collider {
	return slices.Clone(o.order)
}

// ColliderCount returns the number of colliders
func (o *Object) ColliderCount() int {
	return len(o.order)
}

// HasCollider reports whether c belongs to the object
func (o *Object) HasCollider(c *Collider) bool {
	_, ok := o.colliders[c]
	return ok
}

// AddCollider attaches c, detaching it from any previous owner first, and
// places its shape against the current transform. It returns false if c
// is nil or already attached.
func (o *Object) AddCollider(c *Collider) bool {
	if c == nil || o.HasCollider(c) {
		return false
	}
	if c.parent != nil {
		c.parent.RemoveCollider(c)
	}
	if o.colliders == nil {
		o.colliders = make(map[*Collider]struct{})
	}
	o.colliders[c] = struct{}{}
	o.order = append(o.order, c)
	c.parent = o
	c.InitializeShape(o.Transform)
	return true
}

// RemoveCollider detaches c. It returns false if c is not attached.
func (o *Object) RemoveCollider(c *Collider) bool {
	if !o.HasCollider(c) {
		return false
	}
	delete(o.colliders, c)
	if i := slices.Index(o.order, c); i >= 0 {
		o.order = slices.Delete(o.order, i, i+1)
	}
	c.parent = nil
	return true
}

// Update integrates the position by velocity and moves every collider
func (o *Object) Update(dt float64) {
	o.Transform.Position = o.Transform.Position.Add(o.Velocity.Scale(dt))
	for _, c := range o.order {
		c.UpdateShape(o, dt)
	}
}

// BoundingBox is the union of the enabled colliders' bounds. Colliders with
// a flat box are skipped. A disabled object, or one without a collider that
// has area, yields an empty rect.
func (o *Object) BoundingBox() physics.Rect {
	var box physics.Rect
	if !o.Enabled {
		return box
	}
	for _, c := range o.order {
		if !c.Enabled {
			continue
		}
		cb := c.BoundingBox()
		if cb.IsEmpty() {
			continue
		}
		box = box.Union(cb)
	}
	return box
}

func (o *Object) eligible() bool {
	return o != nil && o.Enabled && len(o.order) > 0
}

// Overlap reports whether any collider pair of the two objects touches
func (o *Object) Overlap(other *Object) bool {
	if !o.eligible() || !other.eligible() {
		return false
	}
	for _, a := range o.order {
		for _, b := range other.order {
			if a.Overlap(b) {
				return true
			}
		}
	}
	return false
}

// OverlapShape reports whether any collider touches s
func (o *Object) OverlapShape(s shape.Shape) bool {
	if !o.eligible() || s == nil {
		return false
	}
	for _, c := range o.order {
		if c.OverlapShape(s) {
			return true
		}
	}
	return false
}

// Intersect gathers the contact points of every collider pair, with
// normals on other's surfaces. It returns nil if either object is
// disabled or has no colliders, or if no points were found.
func (o *Object) Intersect(other *Object) *contact.Points {
	if !o.eligible() || !other.eligible() {
		return nil
	}
	points := contact.NewPoints()
	for _, a := range o.order {
		for _, b := range other.order {
			points.Append(a.Intersect(b))
		}
	}
	if points.IsEmpty() {
		return nil
	}
	return points
}

// IntersectShape gathers the contact points of every collider against s
func (o *Object) IntersectShape(s shape.Shape) *contact.Points {
	if !o.eligible() || s == nil {
		return nil
	}
	points := contact.NewPoints()
	for _, c := range o.order {
		points.Append(c.IntersectShape(s))
	}
	if points.IsEmpty() {
		return nil
	}
	return points
}

// Collide builds the collision information seen from o against other. It
// returns nil when no collider pair touches. FirstContact is left false
// for the caller to fill in.
func (o *Object) Collide(other *Object) *Information {
	if !o.eligible() || !other.eligible() {
		return nil
	}
	var info *Information
	for _, a := range o.order {
		for _, b := range other.order {
			if !a.Overlap(b) {
				continue
			}
			if info == nil {
				info = &Information{Self: o, Other: other}
			}
			info.Add(Collision{
				Self:          a,
				Other:         b,
				SelfVelocity:  a.Velocity(),
				OtherVelocity: b.Velocity(),
				Points:        o.contactPoints(a, b),
			})
		}
	}
	return info
}

// contactPoints intersects a pair of colliders from o's perspective
func (o *Object) contactPoints(self, other *Collider) *contact.Points {
	if !self.ComputeIntersections {
		return nil
	}

	var points *contact.Points
	if o.Passive && !other.parent.Passive {
		points = other.Intersect(self)
	} else {
		points = self.Intersect(other)
	}
	if points == nil || !o.FilterCollisionPoints {
		return points
	}
	return contact.NewPoints(points.Filter(o.FilterType, self.Shape().Center()))
}

func (o *Object) hooks() Hooks {
	if o.Hooks == nil {
		return NopHooks{}
	}
	return o.Hooks
}

// ResolveCollision dispatches a step's contact with info.Other. With
// advanced notification every collider pair is dispatched as well: pairs
// with points as intersections, the rest as overlaps.
func (o *Object) ResolveCollision(info *Information) {
	o.hooks().Collision(info)
	o.OnCollision.Emit(info)

	if !o.AdvancedCollisionNotification {
		return
	}
	for _, c := range info.Collisions {
		if c.Points != nil {
			c.Self.resolveIntersected(c)
			o.hooks().ColliderIntersected(c)
			o.OnColliderIntersected.Emit(c)
		} else {
			c.Self.resolveOverlapped(c)
			o.hooks().ColliderOverlapped(c)
			o.OnColliderOverlapped.Emit(c)
		}
	}
}

// ResolveContactEnded dispatches the end of every contact with other
func (o *Object) ResolveContactEnded(other *Object) {
	o.hooks().ContactEnded(other)
	o.OnContactEnded.Emit(other)
}

// ResolveColliderContactEnded dispatches the end of contact between two
// colliders. It does nothing unless advanced notification is enabled.
func (o *Object) ResolveColliderContactEnded(self, other *Collider) {
	if !o.AdvancedCollisionNotification {
		return
	}
	self.resolveContactEnded(other)
	o.hooks().ColliderContactEnded(self, other)
	o.OnColliderContactEnded.Emit(ColliderPair{Self: self, Other: other})
}

func (o *Object) String() string {
	return fmt.Sprintf("Object(%d, %d colliders)", o.ID(), len(o.order))
}
