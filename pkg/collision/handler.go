// pkg/collision/handler.go
package collision

import (
	"cmp"
	"context"
	"slices"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-contact/pkg/config"
	"github.com/opd-ai/go-contact/pkg/contact"
	"github.com/opd-ai/go-contact/pkg/event"
	"github.com/opd-ai/go-contact/pkg/logging"
	"github.com/opd-ai/go-contact/pkg/physics"
	"github.com/opd-ai/go-contact/pkg/validation"
)

// objectPair is an ordered (self, other) pair of objects in contact
type objectPair struct {
	self, other *Object
}

// colliderPair is an ordered pair of colliders in contact. The handler
// maps it to the objects that owned them when contact was detected.
type colliderPair struct {
	self, other *Collider
}

// Handler owns the broad phase and the per-step contact state of a set of
// objects. It implements ecs.System.
type Handler struct {
	config *config.Config
	logger *logging.Logger
	bus    *event.Bus

	spatialIndex *physics.QuadTree
	outside      []*Object

	objects []*Object
	index   map[uint64]*Object
	seq     map[*Object]uint64
	nextSeq uint64

	contacts         map[objectPair]struct{}
	colliderContacts map[colliderPair]objectPair

	defaultFilter contact.FilterType
	steps         uint64
}

// NewHandler creates a handler. A nil config uses config.DefaultConfig and
// a nil logger discards output.
func NewHandler(cfg *config.Config, logger *logging.Logger) *Handler {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	h := &Handler{
		config:           cfg,
		logger:           logger,
		bus:              event.NewEventBus(),
		index:            make(map[uint64]*Object),
		seq:              make(map[*Object]uint64),
		contacts:         make(map[objectPair]struct{}),
		colliderContacts: make(map[colliderPair]objectPair),
	}
	h.initSpatialIndex()

	if ft, err := cfg.ObjectDefaults.Filter(); err == nil {
		h.defaultFilter = ft
	} else {
		logger.Warn(context.Background(), "Ignoring invalid default filter type",
			"filter_type", cfg.ObjectDefaults.FilterType, "error", err.Error())
	}
	return h
}

func (h *Handler) initSpatialIndex() {
	w := h.config.World
	h.spatialIndex = physics.NewQuadTree(
		physics.Rect{
			Center: physics.Vector2D{X: w.X, Y: w.Y},
			Width:  w.Width,
			Height: w.Height,
		},
		h.config.QuadTree.Capacity,
		h.config.QuadTree.MaxDepth,
	)
}

// Bus returns the bus carrying object and contact events
func (h *Handler) Bus() *event.Bus {
	return h.bus
}

// Objects returns the registered objects in registration order
func (h *Handler) Objects() []*Object {
	return slices.Clone(h.objects)
}

// Object looks up a registered object by entity id
func (h *Handler) Object(id uint64) (*Object, bool) {
	o, ok := h.index[id]
	return o, ok
}

// Steps returns the number of completed steps
func (h *Handler) Steps() uint64 {
	return h.steps
}

// AddObject registers o. It returns false if o is nil, already
// registered with this or another handler, or has an invalid transform or
// collider shape.
func (h *Handler) AddObject(o *Object) bool {
	ctx := context.Background()
	if o == nil {
		return false
	}
	if o.handler != nil {
		h.logger.Warn(ctx, "Object already registered with a collision handler",
			"object_id", o.ID(), "same_handler", o.handler == h)
		return false
	}

	if err := validateObject(o); err != nil {
		h.logger.Warn(ctx, "Rejected invalid collision object",
			"object_id", o.ID(), "error", err.Error())
		return false
	}

	if h.config.ObjectDefaults.ApplyDefaults {
		h.applyDefaults(o)
	}

	h.nextSeq++
	h.seq[o] = h.nextSeq
	h.objects = append(h.objects, o)
	h.index[o.ID()] = o
	o.handler = h

	h.logger.Info(ctx, "Object added to collision handler",
		"object_id", o.ID(), "colliders", o.ColliderCount(), "passive", o.Passive)
	o.OnCollisionSystemEntered.Emit(h)
	h.bus.Publish(event.NewObjectEvent(event.ObjectAdded, h, o.ID()))
	return true
}

func validateObject(o *Object) error {
	if err := validation.ValidateTransform(o.Transform); err != nil {
		return err
	}
	for _, c := range o.order {
		if err := validation.ValidateTransform(c.Offset); err != nil {
			return logging.WrapError(err, "collider %d offset", c.ID())
		}
		if err := validation.ValidateShape(c.LocalShape()); err != nil {
			return logging.WrapError(err, "collider %d", c.ID())
		}
	}
	return nil
}

func (h *Handler) applyDefaults(o *Object) {
	d := h.config.ObjectDefaults
	o.FilterCollisionPoints = d.FilterCollisionPoints
	o.FilterType = h.defaultFilter
	o.AdvancedCollisionNotification = d.AdvancedCollisionNotification
}

// RemoveObject unregisters o. Contacts it was part of end immediately on
// both sides. It returns false if o is not registered here.
func (h *Handler) RemoveObject(o *Object) bool {
	ctx := context.Background()
	if o == nil || o.handler != h {
		h.logger.Warn(ctx, "Cannot remove object not registered with this handler")
		return false
	}

	h.endObjectContacts(ctx, o)

	if i := slices.Index(h.objects, o); i >= 0 {
		h.objects = slices.Delete(h.objects, i, i+1)
	}
	if i := slices.Index(h.outside, o); i >= 0 {
		h.outside = slices.Delete(h.outside, i, i+1)
	}
	delete(h.index, o.ID())
	delete(h.seq, o)
	o.handler = nil

	h.logger.Info(ctx, "Object removed from collision handler", "object_id", o.ID())
	o.OnCollisionSystemLeft.Emit(h)
	h.bus.Publish(event.NewObjectEvent(event.ObjectRemoved, h, o.ID()))
	return true
}

// endObjectContacts ends every contact involving o
func (h *Handler) endObjectContacts(ctx context.Context, o *Object) {
	colliderPairs := make(map[colliderPair]objectPair)
	for pair, owners := range h.colliderContacts {
		if owners.self != o && owners.other != o {
			colliderPairs[pair] = owners
		}
	}
	h.endColliderContacts(colliderPairs)

	pairs := make(map[objectPair]struct{})
	for pair := range h.contacts {
		if pair.self != o && pair.other != o {
			pairs[pair] = struct{}{}
		}
	}
	h.endContacts(ctx, pairs)
}

// ActiveContacts returns the objects o is currently touching
func (h *Handler) ActiveContacts(o *Object) []*Object {
	var others []*Object
	for pair := range h.contacts {
		if pair.self == o {
			others = append(others, pair.other)
		}
	}
	slices.SortFunc(others, h.compareObjects)
	return others
}

// Clear unregisters every object without dispatching contact ends
func (h *Handler) Clear() {
	for _, o := range h.Objects() {
		o.handler = nil
		o.OnCollisionSystemLeft.Emit(h)
	}
	h.objects = nil
	h.outside = nil
	clear(h.index)
	clear(h.seq)
	clear(h.contacts)
	clear(h.colliderContacts)
	h.spatialIndex.Clear()
}

// Update advances the handler by dt seconds. It satisfies ecs.System.
func (h *Handler) Update(dt float32) {
	h.Step(float64(dt))
}

// Remove unregisters the object backing the entity. It satisfies
// ecs.System.
func (h *Handler) Remove(basic ecs.BasicEntity) {
	if o, ok := h.index[basic.ID()]; ok {
		h.RemoveObject(o)
	}
}

// New is called when the handler is added to an ecs.World
func (h *Handler) New(w *ecs.World) {
	h.logger.Info(context.Background(), "Collision handler added to world",
		"world_width", h.config.World.Width, "world_height", h.config.World.Height)
}

// Step moves every object by dt, finds touching pairs and dispatches their
// contact notifications.
func (h *Handler) Step(dt float64) {
	ctx := logging.WithCorrelationID(context.Background(), "")
	objects := h.Objects()

	h.updateObjects(objects, dt)
	h.populateSpatialIndex(objects)

	contacts := make(map[objectPair]struct{})
	colliderContacts := make(map[colliderPair]objectPair)
	for _, self := range objects {
		if self.handler != h || !self.eligible() {
			continue
		}
		for _, other := range h.candidates(self) {
			h.detectContact(ctx, self, other, contacts, colliderContacts)
		}
	}

	h.endColliderContacts(colliderContacts)
	h.endContacts(ctx, contacts)
	h.steps++
}

func (h *Handler) updateObjects(objects []*Object, dt float64) {
	for _, o := range objects {
		if o.Enabled {
			o.Update(dt)
		}
	}
}

// broadPhaseBounds pads each collider so flat shapes still have area
func (h *Handler) broadPhaseBounds(o *Object) physics.Rect {
	var box physics.Rect
	for _, c := range o.order {
		if c.Enabled {
			box = box.Union(c.BoundingBox().Enlarge(h.config.BroadPhaseMargin))
		}
	}
	return box
}

func (h *Handler) populateSpatialIndex(objects []*Object) {
	h.spatialIndex.Clear()
	h.outside = h.outside[:0]
	for _, o := range objects {
		if !o.eligible() {
			continue
		}
		box := h.broadPhaseBounds(o)
		if box.IsEmpty() || !h.spatialIndex.Insert(box, o) {
			h.outside = append(h.outside, o)
		}
	}
}

// candidates returns the objects that may touch self, in registration order
func (h *Handler) candidates(self *Object) []*Object {
	box := h.broadPhaseBounds(self)
	var found []*Object
	for _, item := range h.spatialIndex.Query(box) {
		if o := item.(*Object); o != self {
			found = append(found, o)
		}
	}
	for _, o := range h.outside {
		if o != self {
			found = append(found, o)
		}
	}
	slices.SortFunc(found, h.compareObjects)
	return found
}

func (h *Handler) compareObjects(a, b *Object) int {
	return cmp.Compare(h.seq[a], h.seq[b])
}

// detectContact tests one ordered pair and dispatches the collision to self
func (h *Handler) detectContact(ctx context.Context, self, other *Object,
	contacts map[objectPair]struct{}, colliderContacts map[colliderPair]objectPair,
) {
	if other.handler != h || !other.eligible() {
		return
	}
	info := self.Collide(other)
	if info == nil {
		return
	}

	pair := objectPair{self: self, other: other}
	_, touching := h.contacts[pair]
	info.FirstContact = !touching
	contacts[pair] = struct{}{}
	h.contacts[pair] = struct{}{}

	for i, c := range info.Collisions {
		cp := colliderPair{self: c.Self, other: c.Other}
		_, wasTouching := h.colliderContacts[cp]
		info.Collisions[i].FirstContact = !wasTouching
		colliderContacts[cp] = pair
		h.colliderContacts[cp] = pair
	}

	if !touching {
		h.logger.Debug(ctx, "Contact started",
			"self_id", self.ID(), "other_id", other.ID(), "collider_pairs", info.Len())
		h.bus.Publish(event.NewContactEvent(event.ContactStarted, h, self.ID(), other.ID()))
	}
	self.ResolveCollision(info)
}

// endColliderContacts dispatches every collider pair not in current
func (h *Handler) endColliderContacts(current map[colliderPair]objectPair) {
	var ended []colliderPair
	for pair := range h.colliderContacts {
		if _, ok := current[pair]; !ok {
			ended = append(ended, pair)
		}
	}
	slices.SortFunc(ended, func(a, b colliderPair) int {
		return cmp.Or(cmp.Compare(a.self.id, b.self.id), cmp.Compare(a.other.id, b.other.id))
	})

	for _, pair := range ended {
		owners := h.colliderContacts[pair]
		delete(h.colliderContacts, pair)
		owners.self.ResolveColliderContactEnded(pair.self, pair.other)
	}
}

// endContacts dispatches every object pair not in current
func (h *Handler) endContacts(ctx context.Context, current map[objectPair]struct{}) {
	var ended []objectPair
	for pair := range h.contacts {
		if _, ok := current[pair]; !ok {
			ended = append(ended, pair)
		}
	}
	slices.SortFunc(ended, func(a, b objectPair) int {
		return cmp.Or(cmp.Compare(a.self.ID(), b.self.ID()), cmp.Compare(a.other.ID(), b.other.ID()))
	})

	for _, pair := range ended {
		delete(h.contacts, pair)
		h.logger.Debug(ctx, "Contact ended", "self_id", pair.self.ID(), "other_id", pair.other.ID())
		h.bus.Publish(event.NewContactEvent(event.ContactEnded, h, pair.self.ID(), pair.other.ID()))
		pair.self.ResolveContactEnded(pair.other)
	}
}
