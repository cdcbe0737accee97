// dispatch.go — the ordered, first-match-wins catch engine for xgx-throw.
//
// Dispatch consumes an Outcome plus an ordered clause list and produces a new
// Outcome. The matching rules, in full:
//
//   - A Value outcome returns unchanged; no clause runs.
//   - Clauses are tried strictly in list order. FIRST MATCH WINS, even when a
//     later clause is a more exact type match. This source-order policy is
//     deliberate and load-bearing; do not "improve" it to most-specific-wins.
//   - Catch[E]   applies to Exception outcomes whose dynamic type reaches E
//     through the hierarchy search; the body gets the E-typed subobject.
//   - CatchCode[E] applies to DomainError outcomes whose domain pointer IS
//     the domain registered for E (identity, never code equality).
//   - CatchError applies to every DomainError outcome, no domain filter.
//   - CatchAll always applies and must be the last clause.
//   - A body returning Rethrow restores the ORIGINAL outcome verbatim; the
//     exception handle is not disposed and keeps propagating.
//   - Otherwise a matched exception handle is disposed right after the body
//     returns, and the body's own outcome — success or a fresh failure —
//     becomes the dispatch result.
//   - No clause applying returns the input unchanged: unmatched failures are
//     never silently dropped; they propagate to the enclosing scope.
package xgxthrow

import "fmt"

// clauseKind discriminates what a clause declared to match.
type clauseKind uint8

const (
	clauseException clauseKind = iota
	clauseCode
	clauseError
	clauseAll
)

// Clause is one handler in a dispatch list. Build clauses with Catch,
// CatchCode, CatchError, or CatchAll; the zero Clause is invalid.
type Clause[T any] struct {
	kind   clauseKind
	desc   *Descriptor // clauseException: target type
	domain *Domain     // clauseCode: required domain identity
	runExc func(addr any) Outcome[T]
	runErr func(err Error) Outcome[T]
	runAll func() Outcome[T]
}

// Catch declares a handler for exception type E, matched hierarchy-aware: a
// clause for a base type catches every type derived from it. The body
// receives a pointer to the E-typed subobject inside the raised value; the
// pointer is only valid during the body. Declaring a clause for an
// undescribed type panics (programming error).
func Catch[E any, T any](body func(*E) Outcome[T]) Clause[T] {
	desc, ok := DescriptorOf[E]()
	if !ok {
		panic(fmt.Sprintf("xgxthrow: catch clause for undescribed type %s", typeOf[E]()))
	}
	return Clause[T]{
		kind:   clauseException,
		desc:   desc,
		runExc: func(addr any) Outcome[T] { return body(addr.(*E)) },
	}
}

// CatchCode declares a handler for the domain registered for code type E.
// It matches by domain-pointer identity only: another domain's numerically
// equal codes never match. The body receives the decoded typed code.
func CatchCode[E ~int, T any](body func(E) Outcome[T]) Clause[T] {
	d, ok := DomainOf[E]()
	if !ok {
		panic(fmt.Sprintf("xgxthrow: catch clause for code type %s with no registered domain", typeOf[E]()))
	}
	return Clause[T]{
		kind:   clauseCode,
		domain: d,
		runErr: func(e Error) Outcome[T] { return body(E(e.code)) },
	}
}

// CatchError declares a handler for ANY domain error, invoked with the full
// (domain, code) pair unconditionally. It never matches typed exceptions.
func CatchError[T any](body func(Error) Outcome[T]) Clause[T] {
	return Clause[T]{kind: clauseError, runErr: body}
}

// CatchAll declares the handler of last resort: it matches every failure and
// must be the last clause. The body is invoked with no argument; a matched
// exception handle is released without exposing its payload (after the body,
// so the body may still Rethrow).
func CatchAll[T any](body func() Outcome[T]) Clause[T] {
	return Clause[T]{kind: clauseAll, runAll: body}
}

// Dispatch applies the clause list to o and returns the resulting outcome.
// A catch-all anywhere but last panics (programming error), whether or not
// the outcome is a failure.
func Dispatch[T any](o Outcome[T], clauses ...Clause[T]) Outcome[T] {
	for i := range clauses {
		if clauses[i].kind == clauseAll && i != len(clauses)-1 {
			panic("xgxthrow: catch-all clause must be the last clause")
		}
	}

	if o.state == stateValue {
		return o
	}

	for _, c := range clauses {
		switch c.kind {
		case clauseException:
			if o.state != stateException {
				continue
			}
			addr, ok := o.thrown.As(c.desc)
			if !ok {
				continue
			}
			res := c.runExc(addr)
			if res.state == stateRethrow {
				return o // original preserved, handle not disposed
			}
			o.thrown.dispose()
			return res

		case clauseCode:
			if o.state != stateError || o.err.domain != c.domain {
				continue
			}
			res := c.runErr(o.err)
			if res.state == stateRethrow {
				return o
			}
			return res

		case clauseError:
			if o.state != stateError {
				continue
			}
			res := c.runErr(o.err)
			if res.state == stateRethrow {
				return o
			}
			return res

		case clauseAll:
			res := c.runAll()
			if res.state == stateRethrow {
				return o
			}
			if o.state == stateException {
				o.thrown.dispose()
			}
			return res
		}
	}

	// Unmatched failure: propagate verbatim to the enclosing scope.
	return o
}
