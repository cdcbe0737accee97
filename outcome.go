// outcome.go — the tagged result of an evaluated unit of work for xgx-throw.
//
// Outcome[T] is an explicit tagged variant over four states:
//
//	Value(T)            — the unit of work completed with a result.
//	Exception(*Thrown)  — a typed exception is propagating (owned handle).
//	DomainError(Error)  — a domain-coded error is propagating (no allocation).
//	Rethrow             — a handler asked to keep propagating the original
//	                      failure; carries no payload of its own.
//
// Invariants:
//   - Exactly one state is active. The discriminant is an explicit tag, not
//     a sentinel packed into the payload.
//   - Each Outcome is produced by exactly one construction path and consumed
//     exactly once: by a caller awaiting the value, by Dispatch, or by
//     Discard.
//
// Misuse (programming errors) panics: reading Value() of a failed outcome,
// Err() of a non-DomainError outcome, or Propagate of a succeeded one.
package xgxthrow

// outcomeState discriminates the active variant of an Outcome.
type outcomeState uint8

const (
	stateValue outcomeState = iota
	stateException
	stateError
	stateRethrow
)

// Void is the result type of computations that produce no value. Value(Void)
// is the only success shape such computations have.
type Void struct{}

// Outcome is the tri/four-state result of one evaluated unit of work.
// The zero Outcome is Value(zero T); prefer the explicit constructors.
type Outcome[T any] struct {
	state  outcomeState
	value  T
	thrown *Thrown
	err    Error
}

// Return delivers a value: the success construction path.
func Return[T any](value T) Outcome[T] {
	return Outcome[T]{state: stateValue, value: value}
}

// Done is the success outcome of a void computation.
func Done() Outcome[Void] { return Return(Void{}) }

// Raise signals a typed exception: value is wrapped in an owned handle tagged
// with its type's descriptor. The result type T is given explicitly:
//
//	return xgxthrow.Raise[int](xgxthrow.NewOverflowError("divide by zero"))
//
// Raising an undescribed type panics (programming error).
func Raise[T any, E any](value E) Outcome[T] {
	return Outcome[T]{state: stateException, thrown: newThrown(value)}
}

// RaiseCode signals a domain error from a typed code, resolving the domain
// through the registry (panics if the code type has no domain).
func RaiseCode[T any, E ~int](code E) Outcome[T] {
	return RaiseError[T](NewError(code))
}

// RaiseError signals a domain error from an already-built Error value.
// The invalid zero Error panics (programming error).
func RaiseError[T any](err Error) Outcome[T] {
	if err.domain == nil {
		panic("xgxthrow: RaiseError with an invalid zero Error")
	}
	return Outcome[T]{state: stateError, err: err}
}

// Rethrow signals "keep propagating the original failure". Only meaningful
// as a dispatch clause result; Dispatch translates it back into the original
// outcome with the exception handle untouched. A Rethrow outcome that reaches
// value consumption with no enclosing failure is misuse and panics there.
func Rethrow[T any]() Outcome[T] {
	return Outcome[T]{state: stateRethrow}
}

// Succeeded reports whether the Value state is active.
func (o Outcome[T]) Succeeded() bool { return o.state == stateValue }

// Failed reports whether any non-Value state is active.
func (o Outcome[T]) Failed() bool { return o.state != stateValue }

// IsException reports whether a typed exception is propagating.
func (o Outcome[T]) IsException() bool { return o.state == stateException }

// IsError reports whether a domain error is propagating.
func (o Outcome[T]) IsError() bool { return o.state == stateError }

// IsRethrow reports whether this is the payloadless rethrow signal.
func (o Outcome[T]) IsRethrow() bool { return o.state == stateRethrow }

// Value returns the delivered value. Calling it on a non-Value outcome is a
// programming error and panics.
func (o Outcome[T]) Value() T {
	switch o.state {
	case stateValue:
		return o.value
	case stateRethrow:
		panic("xgxthrow: rethrow signal consumed with no enclosing failure")
	default:
		panic("xgxthrow: Value called on a failed outcome")
	}
}

// Err returns the propagating domain error. Calling it on a non-DomainError
// outcome is a programming error and panics.
func (o Outcome[T]) Err() Error {
	if o.state != stateError {
		panic("xgxthrow: Err called on an outcome that is not a domain error")
	}
	return o.err
}

// Thrown returns the propagating exception handle, or nil if the Exception
// state is not active. Inspection only; ownership stays with the outcome.
func (o Outcome[T]) Thrown() *Thrown {
	if o.state != stateException {
		return nil
	}
	return o.thrown
}

// Discard drops an unconsumed outcome, releasing the exception handle (and
// its Disposer hook) exactly once if one is held. Use at the top level when
// an unmatched failure is deliberately abandoned.
func (o Outcome[T]) Discard() {
	if o.state == stateException {
		o.thrown.dispose()
	}
}

// Propagate transfers a failure verbatim across a result-type boundary:
// exception handles MOVE without being touched or disposed; domain errors
// copy their (domain, code) pair; the rethrow signal stays a rethrow signal.
// Propagating a succeeded outcome is a programming error and panics.
func Propagate[T any, U any](o Outcome[U]) Outcome[T] {
	switch o.state {
	case stateException:
		return Outcome[T]{state: stateException, thrown: o.thrown}
	case stateError:
		return Outcome[T]{state: stateError, err: o.err}
	case stateRethrow:
		return Outcome[T]{state: stateRethrow}
	default:
		panic("xgxthrow: Propagate called on a succeeded outcome")
	}
}
