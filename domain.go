// domain.go — error domains and the lightweight Error value for xgx-throw.
//
// Scope:
//   - Domain: an immutable, identity-compared singleton translating the small
//     integer codes of one code space to success/failure and to messages.
//   - Error: a (domain, code) pair. Cheap — no allocation, no payload.
//   - A flat registry from a code TYPE to its domain, so raising or catching
//     a typed code finds its domain without the caller naming it.
//
// Semantics (normative):
//   - Two Errors are the same KIND iff their domain pointers are identical.
//     Codes are meaningful only relative to their domain; numeric equality
//     across domains means nothing and never matches.
//   - message must be total and must not fail: every code maps to a string.
//   - The registry is flat: code spaces have no hierarchy.
package xgxthrow

import (
	"fmt"
	"reflect"
	"sync"
)

// Domain defines one error-code space: a name, a success code, and a total
// code-to-message translation. Create via NewDomain; compare by pointer —
// the ADDRESS is the identity, never the name or the code values.
type Domain struct {
	name    string
	success int
	message func(code int) string
}

var (
	domainMu     sync.RWMutex
	domainByType = map[reflect.Type]*Domain{}
)

// NewDomain creates the domain for code type E and registers it so that
// NewError/RaiseCode/CatchCode can find it from the type alone. message must
// be total and non-failing. Registration is intended for package var blocks;
// registering a second domain for the same code type panics.
func NewDomain[E ~int](name string, success E, message func(E) string) *Domain {
	if message == nil {
		panic("xgxthrow: NewDomain requires a non-nil message function")
	}
	d := &Domain{
		name:    name,
		success: int(success),
		message: func(code int) string { return message(E(code)) },
	}

	t := typeOf[E]()
	domainMu.Lock()
	defer domainMu.Unlock()
	if _, dup := domainByType[t]; dup {
		panic(fmt.Sprintf("xgxthrow: domain for code type %s registered twice", t))
	}
	domainByType[t] = d
	return d
}

// DomainOf returns the domain registered for code type E, if any.
func DomainOf[E ~int]() (*Domain, bool) {
	domainMu.RLock()
	defer domainMu.RUnlock()
	d, ok := domainByType[typeOf[E]()]
	return d, ok
}

// Name returns the domain name. Informational only; identity is the pointer.
func (d *Domain) Name() string { return d.name }

// Success reports whether code is the domain's success code.
func (d *Domain) Success(code int) bool { return code == d.success }

// Message translates code to its message. Total: defined for every code.
// What it returns for the success code is up to the domain.
func (d *Domain) Message(code int) string { return d.message(code) }

// Error is a domain-coded error value: a domain pointer plus an integer code.
// The zero Error is invalid; construct via NewError or In.
type Error struct {
	domain *Domain
	code   int
}

// NewError builds an Error from a typed code, resolving the domain through
// the registry. Using a code type with no registered domain is a programming
// error and panics.
func NewError[E ~int](code E) Error {
	d, ok := DomainOf[E]()
	if !ok {
		panic(fmt.Sprintf("xgxthrow: no domain registered for code type %s", typeOf[E]()))
	}
	return Error{domain: d, code: int(code)}
}

// In builds an Error with an explicit domain, for codes whose type carries no
// registration (e.g. plain ints sourced externally).
func (d *Domain) In(code int) Error {
	return Error{domain: d, code: code}
}

// Domain returns the error's domain. Nil only for the invalid zero Error.
func (e Error) Domain() *Domain { return e.domain }

// Code returns the raw integer code, meaningful only within e.Domain().
func (e Error) Code() int { return e.code }

// Success reports whether the code is the domain's success code.
func (e Error) Success() bool { return e.domain != nil && e.domain.Success(e.code) }

// Failure reports whether the code is not the domain's success code.
func (e Error) Failure() bool { return !e.Success() }

// Message returns the domain's translation of the code.
func (e Error) Message() string {
	if e.domain == nil {
		return "invalid error"
	}
	return e.domain.Message(e.code)
}

// Error implements the stdlib error interface for interop: "<domain>: <message>".
func (e Error) Error() string {
	if e.domain == nil {
		return "invalid error"
	}
	return e.domain.name + ": " + e.Message()
}

var _ error = Error{}
