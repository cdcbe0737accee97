// descriptor.go — type descriptor registry & hierarchy search for xgx-throw.
//
// Scope:
//   - Per-type static metadata: a type's direct bases, in declared order, each
//     with an erased upcast that adjusts a pointer-to-derived into a
//     pointer-to-that-base (the address of the embedded base field).
//   - A depth-first search between related descriptors that lets a handler
//     declared for a base type catch a value raised as a derived type.
//
// Design:
//   - Descriptors are created once, during package initialization, and never
//     mutated afterwards. Identity is the *Descriptor pointer.
//   - The registry maps a concrete Go type to its descriptor so Raise/Catch
//     can find the static metadata for a type parameter. Reflection is used
//     ONLY as the registry key; matching never consults the Go runtime — the
//     search walks the hand-rolled descriptor graph exclusively.
//   - Descriptors form a DAG: zero, one, or multiple direct bases. Declared
//     base order is significant (it is the dispatch priority when several
//     bases could satisfy different clauses).
package xgxthrow

import (
	"fmt"
	"reflect"
	"sync"
)

// Descriptor is the static metadata for one raisable type: its name and its
// direct base links in declared order. Create via Describe; compare by pointer.
type Descriptor struct {
	name  string
	bases []baseLink
}

// baseLink is one edge of the descriptor DAG: the base's descriptor plus the
// erased upcast adjusting an owner-typed pointer into a base-typed pointer.
type baseLink struct {
	desc   *Descriptor
	upcast func(addr any) any
}

// Base declares one direct base of a type being described. Construct with
// BaseOf; the order Bases are passed to Describe is the search order.
type Base struct {
	desc   *Descriptor
	upcast func(addr any) any
}

// BaseOf declares B as a direct base of T. The upcast receives a *T and must
// return the address of the embedded B (pointer adjustment, no copying):
//
//	Describe[RangeError]("range_error",
//	    BaseOf(func(e *RangeError) *RuntimeError { return &e.RuntimeError }))
//
// B must already be described: declare hierarchies bottom-up. A nil upcast or
// an undescribed base is a programming error and panics.
func BaseOf[T any, B any](upcast func(*T) *B) Base {
	if upcast == nil {
		panic("xgxthrow: BaseOf requires a non-nil upcast")
	}
	desc, ok := DescriptorOf[B]()
	if !ok {
		panic(fmt.Sprintf("xgxthrow: base type %s is not described; describe bases before derived types",
			typeOf[B]()))
	}
	return Base{
		desc:   desc,
		upcast: func(addr any) any { return upcast(addr.(*T)) },
	}
}

var (
	descMu     sync.RWMutex
	descByType = map[reflect.Type]*Descriptor{}
)

// typeOf returns the registry key for T. Pointer-free so T itself (not *T)
// identifies the entry.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Describe registers T as raisable under the given name with the given direct
// bases (possibly none) and returns its descriptor. Registration is intended
// for package var blocks; the registry is read-only after initialization.
// Describing the same type twice panics.
func Describe[T any](name string, bases ...Base) *Descriptor {
	t := typeOf[T]()
	d := &Descriptor{name: name, bases: make([]baseLink, len(bases))}
	for i, b := range bases {
		d.bases[i] = baseLink{desc: b.desc, upcast: b.upcast}
	}

	descMu.Lock()
	defer descMu.Unlock()
	if _, dup := descByType[t]; dup {
		panic(fmt.Sprintf("xgxthrow: type %s described twice", t))
	}
	descByType[t] = d
	return d
}

// DescriptorOf returns the descriptor registered for T, if any.
func DescriptorOf[T any]() (*Descriptor, bool) {
	descMu.RLock()
	defer descMu.RUnlock()
	d, ok := descByType[typeOf[T]()]
	return d, ok
}

// Name returns the name the type was described under.
func (d *Descriptor) Name() string { return d.name }

// NumBases returns the number of direct bases, in declared order.
func (d *Descriptor) NumBases() int { return len(d.bases) }

// search walks the descriptor DAG depth-first from d toward target, adjusting
// addr through each base upcast. It returns the adjusted address of the first
// match and true, or nil and false when target is unreachable from d.
//
// Bases are visited in declared order, so when a diamond makes the same
// ancestor reachable through several paths, the leftmost-declared base's path
// wins. That resolution is deterministic but callers should not depend on
// WHICH subobject address is produced for diamonds beyond that guarantee.
func (d *Descriptor) search(addr any, target *Descriptor) (any, bool) {
	if d == target {
		return addr, true
	}
	for _, b := range d.bases {
		if found, ok := b.desc.search(b.upcast(addr), target); ok {
			return found, true
		}
	}
	return nil, false
}
