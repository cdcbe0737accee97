// builtin.go — the builtin exception hierarchy xgx-throw ships with.
//
// Shape (embedding = direct base; descriptors registered bottom-up):
//
//	Exception
//	├── RuntimeError
//	│   ├── RangeError
//	│   ├── OverflowError
//	│   └── UnderflowError
//	└── LogicError
//	    ├── InvalidArgument
//	    ├── LengthError
//	    └── OutOfRange
//
// These are plain message-carrying values. Projects define their own raisable
// types the same way: embed a base, describe the type with BaseOf links in
// declared order, raise values of it. Nothing here is special-cased by the
// engine.
package xgxthrow

// Exception is the root of the builtin hierarchy: a raisable value carrying
// a human-readable message.
type Exception struct {
	msg string
}

// NewException creates a root-level exception with the given message.
func NewException(msg string) Exception { return Exception{msg: msg} }

// Message returns the message the exception was raised with.
func (e Exception) Message() string { return e.msg }

// RuntimeError reports conditions only detectable while the program runs.
type RuntimeError struct {
	Exception
}

func NewRuntimeError(msg string) RuntimeError {
	return RuntimeError{Exception: NewException(msg)}
}

// RangeError reports a result outside the range of the computation.
type RangeError struct {
	RuntimeError
}

func NewRangeError(msg string) RangeError {
	return RangeError{RuntimeError: NewRuntimeError(msg)}
}

// OverflowError reports an arithmetic overflow.
type OverflowError struct {
	RuntimeError
}

func NewOverflowError(msg string) OverflowError {
	return OverflowError{RuntimeError: NewRuntimeError(msg)}
}

// UnderflowError reports an arithmetic underflow.
type UnderflowError struct {
	RuntimeError
}

func NewUnderflowError(msg string) UnderflowError {
	return UnderflowError{RuntimeError: NewRuntimeError(msg)}
}

// LogicError reports a violated precondition or invariant in program logic.
type LogicError struct {
	Exception
}

func NewLogicError(msg string) LogicError {
	return LogicError{Exception: NewException(msg)}
}

// InvalidArgument reports an argument rejected by the callee.
type InvalidArgument struct {
	LogicError
}

func NewInvalidArgument(msg string) InvalidArgument {
	return InvalidArgument{LogicError: NewLogicError(msg)}
}

// LengthError reports an attempt to exceed a length limit.
type LengthError struct {
	LogicError
}

func NewLengthError(msg string) LengthError {
	return LengthError{LogicError: NewLogicError(msg)}
}

// OutOfRange reports an access outside the valid range.
type OutOfRange struct {
	LogicError
}

func NewOutOfRange(msg string) OutOfRange {
	return OutOfRange{LogicError: NewLogicError(msg)}
}

// Builtin descriptors, registered bottom-up so BaseOf finds every base.
// Declaration order within the block is the initialization order.
var (
	ExceptionDesc = Describe[Exception]("exception")

	RuntimeErrorDesc = Describe[RuntimeError]("runtime_error",
		BaseOf(func(e *RuntimeError) *Exception { return &e.Exception }))
	RangeErrorDesc = Describe[RangeError]("range_error",
		BaseOf(func(e *RangeError) *RuntimeError { return &e.RuntimeError }))
	OverflowErrorDesc = Describe[OverflowError]("overflow_error",
		BaseOf(func(e *OverflowError) *RuntimeError { return &e.RuntimeError }))
	UnderflowErrorDesc = Describe[UnderflowError]("underflow_error",
		BaseOf(func(e *UnderflowError) *RuntimeError { return &e.RuntimeError }))

	LogicErrorDesc = Describe[LogicError]("logic_error",
		BaseOf(func(e *LogicError) *Exception { return &e.Exception }))
	InvalidArgumentDesc = Describe[InvalidArgument]("invalid_argument",
		BaseOf(func(e *InvalidArgument) *LogicError { return &e.LogicError }))
	LengthErrorDesc = Describe[LengthError]("length_error",
		BaseOf(func(e *LengthError) *LogicError { return &e.LogicError }))
	OutOfRangeDesc = Describe[OutOfRange]("out_of_range",
		BaseOf(func(e *OutOfRange) *LogicError { return &e.LogicError }))
)
