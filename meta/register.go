// Package meta implements the grammar register consulted and extended by the
// parser.
//
// A Register holds operators, archetypes and shape values for one grammar
// scope. Registers form a tree through parent links: reads fall back to the
// parent when the local slot is absent, writes only ever touch the local
// register.
package meta

import (
	"fmt"
	"sort"

	"github.com/gofrs/uuid"
)

// Collection maps names to the values of one collection group.
type Collection map[string]Value

// Names returns the names holding a value, sorted.
func (c Collection) Names() []string {
	names := make([]string, 0, len(c))
	for name, v := range c {
		if v != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Register is one node of the grammar register tree. A Register is not safe
// for concurrent use.
type Register struct {
	id          uuid.UUID
	parent      *Register
	singletons  map[Group]Value
	collections map[Group]Collection
}

// New returns an empty register. Reads that miss locally continue in parent,
// which may be nil.
func New(parent *Register) *Register {
	return &Register{
		id:          uuid.Must(uuid.NewV4()),
		parent:      parent,
		singletons:  map[Group]Value{},
		collections: map[Group]Collection{},
	}
}

// Parent returns the parent register, or nil for a root register.
func (r *Register) Parent() *Register { return r.parent }

// ID returns the unique identifier of the register.
func (r *Register) ID() uuid.UUID { return r.id }

func (r *Register) String() string {
	return "Scope#" + r.id.String()
}

// ReadElement returns the value stored at slot.
//
// For a singleton slot the local value wins, otherwise the parent is asked.
// For a collection slot the parent is asked only when the register has no
// local collection for the group at all. Once a local collection exists, a
// name missing from it is absent even if an ancestor defines it.
func (r *Register) ReadElement(slot Slot) (Value, bool) {
	for reg := r; reg != nil; reg = reg.parent {
		if !slot.group.IsCollection() {
			if v, ok := reg.singletons[slot.group]; ok {
				return v, v != nil
			}
			continue
		}
		if c, ok := reg.collections[slot.group]; ok {
			v, ok := c[slot.name]
			return v, ok && v != nil
		}
	}
	return nil, false
}

// WriteElement stores value at slot in this register. Collections are
// created on first write. Writing nil shadows the slot so that reads no
// longer reach the parent.
//
// It panics if value does not belong in the slot's group.
func (r *Register) WriteElement(slot Slot, value Value) {
	if !accepts(slot.group, value) {
		panic(fmt.Sprintf("meta: cannot store %T in %s", value, slot.group))
	}
	if !slot.group.IsCollection() {
		r.singletons[slot.group] = value
		return
	}
	c, ok := r.collections[slot.group]
	if !ok {
		c = Collection{}
		r.collections[slot.group] = c
	}
	c[slot.name] = value
}

// ReadCollection returns the collection for group: the local one if it
// exists, otherwise the nearest ancestor's.
func (r *Register) ReadCollection(group Group) (Collection, bool) {
	for reg := r; reg != nil; reg = reg.parent {
		if c, ok := reg.collections[group]; ok {
			return c, true
		}
	}
	return nil, false
}

// LocalCollection returns the collection for group defined in this register
// only.
func (r *Register) LocalCollection(group Group) (Collection, bool) {
	c, ok := r.collections[group]
	return c, ok
}

// Names returns the sorted names visible in a collection group.
func (r *Register) Names(group Group) []string {
	c, ok := r.ReadCollection(group)
	if !ok {
		return nil
	}
	return c.Names()
}
