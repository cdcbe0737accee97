// thrown.go — the type-erased, uniquely-owned exception handle for xgx-throw.
//
// A Thrown wraps one raised value: the descriptor of its OWN (most-derived)
// type plus the address of the stored value. It owns the value exclusively:
// disposal runs at most once over the handle's whole lifetime, no matter how
// many scopes the handle propagates through.
//
// Ownership discipline (normative):
//   - Exactly one owner at any time. Propagation and rethrow TRANSFER the
//     *Thrown pointer; they never duplicate disposal responsibility.
//   - A non-matching dispatch clause only inspects the handle through the
//     hierarchy search; it never mutates or disposes it.
//   - Dropping a handle without consuming it must still dispose it exactly
//     once (Outcome.Discard covers the top-level case).
package xgxthrow

import "fmt"

// Disposer is the optional teardown hook for raised values. When the stored
// value's pointer type implements it, Dispose runs exactly once: when a
// matching clause consumes the handle, when a catch-all releases it, or when
// an unconsumed outcome is discarded.
type Disposer interface {
	Dispose()
}

// Thrown is a raised exception in type-erased form. Obtain one from a failed
// Outcome via Thrown(); create via Raise.
type Thrown struct {
	desc     *Descriptor
	addr     any // pointer to the owned concrete value
	disposed bool
}

// newThrown takes ownership of value, storing it behind a fresh pointer and
// tagging the handle with E's descriptor. Raising an undescribed type is a
// programming error and panics.
func newThrown[E any](value E) *Thrown {
	d, ok := DescriptorOf[E]()
	if !ok {
		panic(fmt.Sprintf("xgxthrow: cannot raise undescribed type %s", typeOf[E]()))
	}
	v := value
	return &Thrown{desc: d, addr: &v}
}

// Descriptor returns the descriptor of the stored value's dynamic type.
func (t *Thrown) Descriptor() *Descriptor { return t.desc }

// As runs the hierarchy search from the handle's dynamic type toward target.
// On a match it returns the adjusted address (a pointer to the target-typed
// subobject) and true. Inspection only: the handle is not consumed.
func (t *Thrown) As(target *Descriptor) (any, bool) {
	return t.desc.search(t.addr, target)
}

// dispose releases the owned value, invoking its Disposer hook if present.
// Idempotent so every consumption path can call it without double-teardown.
func (t *Thrown) dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	if d, ok := t.addr.(Disposer); ok {
		d.Dispose()
	}
}
