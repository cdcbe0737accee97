// domain_test.go — verification for error domains and the Error value.
package xgxthrow

import "testing"

// Two code spaces with numerically identical codes, to prove identity-based
// matching never crosses domains.
type parseCode int

const (
	parseOK parseCode = iota
	parseUnexpectedToken
	parseTruncated
)

type storeCode int

const (
	storeOK storeCode = iota
	storeNotFound
	storeCorrupt
)

var (
	parseDomain = NewDomain("parse", parseOK, func(c parseCode) string {
		switch c {
		case parseUnexpectedToken:
			return "unexpected token"
		case parseTruncated:
			return "truncated input"
		default:
			return "unspecified parse error"
		}
	})
	storeDomain = NewDomain("store", storeOK, func(c storeCode) string {
		switch c {
		case storeNotFound:
			return "entry not found"
		case storeCorrupt:
			return "entry corrupt"
		default:
			return "unspecified store error"
		}
	})
)

func TestDomainOf_Lookup(t *testing.T) {
	t.Parallel()

	d, ok := DomainOf[parseCode]()
	if !ok {
		t.Fatalf("DomainOf[parseCode]: expected ok=true")
	}
	if d != parseDomain {
		t.Fatalf("DomainOf[parseCode]: want %p got %p", parseDomain, d)
	}

	type never int
	if _, ok := DomainOf[never](); ok {
		t.Fatalf("DomainOf[never]: expected ok=false")
	}
}

func TestDomain_SuccessAndMessage(t *testing.T) {
	t.Parallel()

	if !parseDomain.Success(int(parseOK)) {
		t.Fatalf("Success(parseOK): want true")
	}
	if parseDomain.Success(int(parseTruncated)) {
		t.Fatalf("Success(parseTruncated): want false")
	}
	if got := parseDomain.Message(int(parseUnexpectedToken)); got != "unexpected token" {
		t.Fatalf("Message: want %q got %q", "unexpected token", got)
	}
	// Total: codes outside the enumeration still translate.
	if got := parseDomain.Message(12345); got == "" {
		t.Fatalf("Message must be total; got empty string")
	}
}

func TestNewError_ResolvesDomainFromCodeType(t *testing.T) {
	t.Parallel()

	e := NewError(parseTruncated)
	if e.Domain() != parseDomain {
		t.Fatalf("NewError domain: want parseDomain")
	}
	if e.Code() != int(parseTruncated) {
		t.Fatalf("NewError code: want %d got %d", int(parseTruncated), e.Code())
	}
	if e.Success() {
		t.Fatalf("parseTruncated must be a failure")
	}
	if !e.Failure() {
		t.Fatalf("Failure(): want true")
	}
	if got := e.Message(); got != "truncated input" {
		t.Fatalf("Message: want %q got %q", "truncated input", got)
	}
}

func TestNewError_SuccessCode(t *testing.T) {
	t.Parallel()

	e := NewError(storeOK)
	if !e.Success() {
		t.Fatalf("success code must report Success()=true")
	}
}

func TestError_IdentityNotCodeEquality(t *testing.T) {
	t.Parallel()

	// Same numeric code, different domains: never the same kind.
	a := NewError(parseUnexpectedToken) // code 1 in parse
	b := NewError(storeNotFound)        // code 1 in store
	if a.Code() != b.Code() {
		t.Fatalf("test setup: codes must be numerically identical")
	}
	if a.Domain() == b.Domain() {
		t.Fatalf("domains must differ by identity")
	}
}

func TestDomain_In_ExplicitDomain(t *testing.T) {
	t.Parallel()

	e := storeDomain.In(int(storeCorrupt))
	if e.Domain() != storeDomain {
		t.Fatalf("In: domain identity lost")
	}
	if got := e.Message(); got != "entry corrupt" {
		t.Fatalf("In message: want %q got %q", "entry corrupt", got)
	}
}

func TestError_StdlibInterop(t *testing.T) {
	t.Parallel()

	var err error = NewError(storeNotFound)
	if got, want := err.Error(), "store: entry not found"; got != want {
		t.Fatalf("Error(): want %q got %q", want, got)
	}
}

func TestNewError_UnregisteredCodeTypePanics(t *testing.T) {
	t.Parallel()

	type never int
	defer func() {
		if recover() == nil {
			t.Fatalf("NewError for unregistered code type: expected panic")
		}
	}()
	_ = NewError(never(1))
}

func TestNewDomain_DuplicatePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("NewDomain twice for the same code type: expected panic")
		}
	}()
	_ = NewDomain("parse_again", parseOK, func(parseCode) string { return "" })
}
