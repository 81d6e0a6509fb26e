// pkg/collision/hooks.go
package collision

// Hooks are the overridable callbacks of an Object. Each runs before the
// signal of the same name; both always fire.
type Hooks interface {
	Collision(info *Information)
	ContactEnded(other *Object)
	ColliderIntersected(c Collision)
	ColliderOverlapped(c Collision)
	ColliderContactEnded(self, other *Collider)
}

// NopHooks implements Hooks with empty bodies. Embed it to override only
// some callbacks.
type NopHooks struct{}

func (NopHooks) Collision(*Information)              {}
func (NopHooks) ContactEnded(*Object)                {}
func (NopHooks) ColliderIntersected(Collision)       {}
func (NopHooks) ColliderOverlapped(Collision)        {}
func (NopHooks) ColliderContactEnded(_, _ *Collider) {}

// ColliderHooks are the overridable callbacks of a single Collider
type ColliderHooks interface {
	Intersected(c Collision)
	Overlapped(c Collision)
	ContactEnded(other *Collider)
}

// NopColliderHooks implements ColliderHooks with empty bodies
type NopColliderHooks struct{}

func (NopColliderHooks) Intersected(Collision)  {}
func (NopColliderHooks) Overlapped(Collision)   {}
func (NopColliderHooks) ContactEnded(*Collider) {}
