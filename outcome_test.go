// outcome_test.go — verification for the Outcome variant and its lifecycle.
package xgxthrow

import "testing"

// tracedPayload counts its own disposals so tests can assert exactly-once
// teardown across every consumption path.
type tracedPayload struct {
	Exception
	disposals *int
}

func (p *tracedPayload) Dispose() { *p.disposals++ }

var tracedPayloadDesc = Describe[tracedPayload]("traced_payload",
	BaseOf(func(p *tracedPayload) *Exception { return &p.Exception }))

func newTraced(msg string, disposals *int) tracedPayload {
	return tracedPayload{Exception: NewException(msg), disposals: disposals}
}

func TestOutcome_ValueState(t *testing.T) {
	t.Parallel()

	o := Return(1337)
	if !o.Succeeded() || o.Failed() {
		t.Fatalf("Return: want Succeeded=true Failed=false")
	}
	if o.IsException() || o.IsError() || o.IsRethrow() {
		t.Fatalf("Return: no failure state may be active")
	}
	if got := o.Value(); got != 1337 {
		t.Fatalf("Value: want 1337 got %d", got)
	}
}

func TestOutcome_VoidSuccess(t *testing.T) {
	t.Parallel()

	o := Done()
	if !o.Succeeded() {
		t.Fatalf("Done: want Succeeded=true")
	}
	_ = o.Value() // Void value is legal to read
}

func TestOutcome_ExceptionState(t *testing.T) {
	t.Parallel()

	o := Raise[int](NewRuntimeError("boom"))
	if !o.Failed() || !o.IsException() {
		t.Fatalf("Raise: want Failed=true IsException=true")
	}
	th := o.Thrown()
	if th == nil {
		t.Fatalf("Thrown: want non-nil handle")
	}
	if th.Descriptor() != RuntimeErrorDesc {
		t.Fatalf("Thrown descriptor: want runtime_error got %q", th.Descriptor().Name())
	}

	// Inspection through the hierarchy search does not consume the handle.
	addr, ok := th.As(ExceptionDesc)
	if !ok {
		t.Fatalf("As(ExceptionDesc): expected a match")
	}
	if got := addr.(*Exception).Message(); got != "boom" {
		t.Fatalf("payload message: want %q got %q", "boom", got)
	}
}

func TestOutcome_DomainErrorState(t *testing.T) {
	t.Parallel()

	o := RaiseCode[int](ErrcTimedOut)
	if !o.IsError() {
		t.Fatalf("RaiseCode: want IsError=true")
	}
	e := o.Err()
	if e.Domain() != ErrcDomain {
		t.Fatalf("Err domain: want ErrcDomain")
	}
	if e.Code() != int(ErrcTimedOut) {
		t.Fatalf("Err code: want %d got %d", int(ErrcTimedOut), e.Code())
	}
	if o.Thrown() != nil {
		t.Fatalf("Thrown on a domain error: want nil")
	}
}

func TestOutcome_RethrowState(t *testing.T) {
	t.Parallel()

	o := Rethrow[int]()
	if !o.IsRethrow() || !o.Failed() {
		t.Fatalf("Rethrow: want IsRethrow=true Failed=true")
	}
}

func TestOutcome_ValuePanicsOnFailure(t *testing.T) {
	t.Parallel()

	t.Run("exception", func(t *testing.T) {
		o := Raise[int](NewRuntimeError("boom"))
		defer o.Discard()
		defer func() {
			if recover() == nil {
				t.Fatalf("Value on exception outcome: expected panic")
			}
		}()
		_ = o.Value()
	})

	t.Run("rethrow_without_enclosing_failure", func(t *testing.T) {
		o := Rethrow[int]()
		defer func() {
			if recover() == nil {
				t.Fatalf("Value on bare rethrow signal: expected panic")
			}
		}()
		_ = o.Value()
	})
}

func TestOutcome_ErrPanicsOnNonDomainError(t *testing.T) {
	t.Parallel()

	o := Return(1)
	defer func() {
		if recover() == nil {
			t.Fatalf("Err on value outcome: expected panic")
		}
	}()
	_ = o.Err()
}

func TestOutcome_DiscardDisposesExactlyOnce(t *testing.T) {
	t.Parallel()

	disposals := 0
	o := Raise[int](newTraced("dropped", &disposals))

	o.Discard()
	o.Discard() // second drop must be a no-op

	if disposals != 1 {
		t.Fatalf("disposals: want 1 got %d", disposals)
	}
}

func TestOutcome_DiscardOnNonExceptionIsNoop(t *testing.T) {
	t.Parallel()

	Return(1).Discard()
	RaiseCode[int](ErrcIOError).Discard()
	Rethrow[int]().Discard()
}

func TestPropagate_MovesFailureVerbatim(t *testing.T) {
	t.Parallel()

	t.Run("exception_handle_moves_untouched", func(t *testing.T) {
		disposals := 0
		inner := Raise[int](newTraced("boom", &disposals))
		outer := Propagate[string](inner)

		if !outer.IsException() {
			t.Fatalf("Propagate: want IsException=true")
		}
		if outer.Thrown() != inner.Thrown() {
			t.Fatalf("Propagate: handle identity must be preserved")
		}
		if disposals != 0 {
			t.Fatalf("Propagate must not dispose; disposals=%d", disposals)
		}
		outer.Discard()
		if disposals != 1 {
			t.Fatalf("disposals after discard: want 1 got %d", disposals)
		}
	})

	t.Run("domain_error_copies_pair", func(t *testing.T) {
		inner := RaiseCode[int](ErrcPermissionDenied)
		outer := Propagate[string](inner)
		if !outer.IsError() {
			t.Fatalf("Propagate: want IsError=true")
		}
		if outer.Err() != inner.Err() {
			t.Fatalf("Propagate: (domain, code) pair must be identical")
		}
	})

	t.Run("rethrow_stays_rethrow", func(t *testing.T) {
		if !Propagate[string](Rethrow[int]()).IsRethrow() {
			t.Fatalf("Propagate of rethrow: want IsRethrow=true")
		}
	})

	t.Run("value_panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatalf("Propagate of a succeeded outcome: expected panic")
			}
		}()
		_ = Propagate[string](Return(1))
	})
}

func TestRaise_UndescribedTypePanics(t *testing.T) {
	t.Parallel()

	type never struct{}
	defer func() {
		if recover() == nil {
			t.Fatalf("Raise of an undescribed type: expected panic")
		}
	}()
	_ = Raise[int](never{})
}

func TestRaiseError_ZeroErrorPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("RaiseError with zero Error: expected panic")
		}
	}()
	_ = RaiseError[int](Error{})
}
