package domain

import (
	"errors"

	"tactical-sim/internal/core/types"
)

var ErrAlreadyRegistered = errors.New("actor already registered")

type registrySlot struct {
	gen   uint16
	actor Actor
}

// Registry владеет временем жизни акторов. Остальные части системы
// держат только EntityID и разрешают его через Get: после Destroy
// старый handle возвращает nil.
type Registry struct {
	slots []registrySlot
	free  []uint32
	live  int
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Spawn регистрирует актора и выдаёт ему handle.
func (r *Registry) Spawn(a Actor) (types.EntityID, error) {
	if IsNilActor(a) {
		return types.NilEntityID, errors.New("spawn: nil actor")
	}
	e := a.base()
	if !e.id.IsNil() && r.Get(e.id) == a {
		return e.id, ErrAlreadyRegistered
	}

	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, registrySlot{gen: 1})
	}

	slot := &r.slots[idx]
	slot.actor = a
	r.live++

	e.id = types.PackEntityID(e.kind, slot.gen, idx)
	return e.id, nil
}

// Get возвращает актора или nil, если handle устарел или пуст.
func (r *Registry) Get(id types.EntityID) Actor {
	if id.IsNil() {
		return nil
	}
	idx := id.Index()
	if int(idx) >= len(r.slots) {
		return nil
	}
	slot := r.slots[idx]
	if slot.gen != id.Generation() || slot.actor == nil {
		return nil
	}
	return slot.actor
}

// Destroy освобождает слот и инвалидирует все выданные handle.
func (r *Registry) Destroy(id types.EntityID) bool {
	a := r.Get(id)
	if a == nil {
		return false
	}

	idx := id.Index()
	slot := &r.slots[idx]
	slot.actor = nil
	slot.gen++
	if slot.gen == 0 {
		slot.gen = 1
	}
	r.free = append(r.free, idx)
	r.live--

	e := a.base()
	e.id = types.NilEntityID
	e.placed = false
	return true
}

func (r *Registry) Len() int { return r.live }

// Each обходит живые слоты в порядке индексов.
func (r *Registry) Each(fn func(Actor)) {
	for _, s := range r.slots {
		if s.actor != nil {
			fn(s.actor)
		}
	}
}
