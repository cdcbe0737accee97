// doc.go — package documentation for xgx-throw
//
// Package xgxthrow is a structured failure-propagation core: raise, carry,
// inspect, and selectively handle either typed exception values belonging to
// a user-extensible hierarchy, or lightweight domain-coded errors — all
// without leaning on the host runtime's reflection for matching. It is
// designed to be:
//   - Explicit at call sites (outcomes are values, consumption is visible)
//   - Deterministic (source-order dispatch, declared-order hierarchy search)
//   - Policy-free (no logging/formatting/retry rules in core)
//
// # The Outcome Model
//
// Every evaluated unit of work produces an Outcome[T] in exactly one state:
//
//   - Value(T): the computation delivered a result.
//   - Exception: a typed exception propagates, held by a uniquely-owned,
//     type-erased handle (Thrown).
//   - DomainError: a cheap (domain, code) pair propagates; no allocation.
//   - Rethrow: a handler asked to keep propagating the original failure.
//
// Outcomes are produced once and consumed once — by Await/Value, by Dispatch,
// or by Discard.
//
// # Raising and Catching
//
// Typed exceptions form a hierarchy described once, statically, at package
// initialization: each type names its direct bases in declared order together
// with an upcast to the embedded base. A handler declared for a base type
// catches every type derived from it, via a depth-first search over that
// static graph.
//
//	res := xgxthrow.TryCatch(func(s *xgxthrow.Scope) xgxthrow.Outcome[int] {
//	    q := xgxthrow.Await(s, divide(4, 0))
//	    return xgxthrow.Return(q)
//	},
//	    xgxthrow.Catch(func(e *xgxthrow.OverflowError) xgxthrow.Outcome[int] {
//	        return xgxthrow.Return(0)
//	    }),
//	    xgxthrow.CatchAll(func() xgxthrow.Outcome[int] {
//	        return xgxthrow.Return(-1)
//	    }),
//	)
//
// # Dispatch Order
//
// Clauses match strictly in source order and the FIRST match wins — even when
// a later clause names the raised value's exact type. This is deliberate: the
// clause list is a priority list, not a specificity lattice. A catch-all, if
// present, must be last. A clause body may return Rethrow() to restore the
// original failure verbatim and keep it propagating, unconsumed.
//
// # Domains
//
// A Domain is identity-compared: two domains with numerically identical codes
// never cross-match. Each domain supplies a success code and a total
// code-to-message function. The builtin ErrcDomain covers errno-flavored
// failures out of the box.
//
// # Resource Teardown
//
// Run/TryCatch guarantee that a frame's resources registered via Scope.Defer
// are released in reverse acquisition order before the frame's Outcome is
// visible — therefore before any handler clause runs and before any enclosing
// frame's own teardown.
//
// # Ownership
//
// A Thrown handle has exactly one owner at any time. Propagation and rethrow
// transfer it; nothing duplicates it. Its payload teardown (the optional
// Disposer hook) runs exactly once: on consumption by a matching clause, on
// release by a catch-all, or on Discard of an unconsumed outcome.
//
// # Minimal Surface, Clear Semantics
//
// The surface is intentionally small:
//   - Describe / BaseOf / DescriptorOf
//   - NewDomain / DomainOf / NewError
//   - Return / Raise / RaiseCode / RaiseError / Rethrow / Propagate
//   - Catch / CatchCode / CatchError / CatchAll / Dispatch
//   - Run / Await / Check / TryCatch
//
// Programming misuse (catching an undescribed type, a catch-all that is not
// last, consuming a bare rethrow signal) panics; everything else is a value.
package xgxthrow
