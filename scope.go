// scope.go — evaluated scopes, propagation, and the try/catch composition.
//
// Run is the suspendable-computation seam: it executes one unit of work to
// completion or to its first failure point and produces its Outcome. The
// contract honored here:
//
//   - Locally-owned resources registered with Scope.Defer are released in
//     REVERSE acquisition order before the Outcome becomes visible to
//     anything outside the frame — so resource teardown strictly precedes
//     any handler clause and any enclosing scope's own teardown.
//   - Await hands a failed sub-outcome to the enclosing frame verbatim:
//     exception handles move untouched (ownership transfer, not a copy);
//     domain errors copy their (domain, code) pair.
//
// The unwinding mechanism is an internal panic token recovered inside Run.
// It never escapes: foreign panics are re-raised unchanged, and the token
// type is unexported so user code cannot intercept a propagating failure
// except through Dispatch.
package xgxthrow

// Scope tracks one frame's locally-owned resources. A Scope is only valid
// inside the Run body it was passed to; it is not safe for concurrent use.
type Scope struct {
	releases []func()
}

// Defer registers a release for a resource the frame just acquired.
// Releases run in reverse registration order, on success and failure alike,
// before the frame's Outcome is published. A nil release is ignored.
func (s *Scope) Defer(release func()) {
	if release == nil {
		return
	}
	s.releases = append(s.releases, release)
}

// runReleases tears down the frame's resources in reverse acquisition order.
func (s *Scope) runReleases() {
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}

// unwind carries a failure out of a frame during propagation. Internal only.
type unwind struct {
	state  outcomeState
	thrown *Thrown
	err    Error
}

// Run evaluates body as one unit of work and returns its Outcome. The body
// either returns an outcome normally or unwinds through Await/Check; both
// paths release the scope's resources before Run returns. Panics that are
// not propagating failures pass through after teardown, like Go defers.
func Run[T any](body func(*Scope) Outcome[T]) Outcome[T] {
	s := &Scope{}
	var out Outcome[T]
	func() {
		defer func() {
			r := recover()
			s.runReleases()
			if r == nil {
				return
			}
			u, ok := r.(unwind)
			if !ok {
				panic(r)
			}
			out = Outcome[T]{state: u.state, thrown: u.thrown, err: u.err}
		}()
		out = body(s)
	}()
	return out
}

// Await consumes a sub-computation's outcome inside a Run body. On success
// it returns the value; on failure it unwinds the current frame, transferring
// the failure — exception handle intact — to the enclosing frame's Outcome.
// Awaiting a bare rethrow signal (no enclosing failure exists at this point)
// is a programming error and panics.
func Await[U any](s *Scope, o Outcome[U]) U {
	switch o.state {
	case stateValue:
		return o.value
	case stateRethrow:
		panic("xgxthrow: rethrow signal consumed with no enclosing failure")
	default:
		panic(unwind{state: o.state, thrown: o.thrown, err: o.err})
	}
}

// Check is Await for void sub-computations.
func Check(s *Scope, o Outcome[Void]) {
	Await(s, o)
}

// TryCatch evaluates body as its own scope and dispatches the result against
// the clause list: the frame's resources are fully released before any
// clause body runs. Nested TryCatch composes by treating the inner result as
// the value the outer scope produces.
func TryCatch[T any](body func(*Scope) Outcome[T], clauses ...Clause[T]) Outcome[T] {
	return Dispatch(Run(body), clauses...)
}
