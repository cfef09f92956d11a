package errors

import (
	"fmt"

	"github.com/thanhminhmr/go-errchain/chain"
)

// Error is a chained error: a message plus an optional single cause, the next
// node in the chain. The chain package renders the whole chain on one line,
// and Unwrap exposes it to the standard errors package.
//
// Methods that return Error may either modify the current error in place or
// return a new instance. Callers should always use the returned value and
// must not assume that the original error remains unchanged.
type Error interface {
	error

	// GetCause returns the direct cause of this Error, or nil.
	GetCause() error

	// WithCause attaches cause as the direct cause of this Error. A nil cause
	// leaves the Error unchanged.
	//
	// Note: This method may modify the current Error or return a new one.
	// Always use the returned value.
	WithCause(cause error) Error

	// GetRecovered returns the value captured from a panic recovery, if any.
	// It returns nil if no value was recovered.
	GetRecovered() any

	// SetRecovered stores a recovered panic value inside this Error.
	//
	// Note: This method may modify the current Error or return a new one.
	// Always use the returned value.
	SetRecovered(recovered any) Error

	// GetStackTrace returns the stack trace captured for this Error. The
	// slice may be empty if no stack trace was filled.
	GetStackTrace() StackFrames

	// FillStackTrace captures the current call stack and attaches it to the
	// Error. The skip parameter controls how many additional stack frames are
	// omitted: 0 includes the caller of FillStackTrace, 1 skips that frame,
	// and higher values skip more.
	//
	// Note: This method may modify the current Error or return a new one.
	// Always use the returned value.
	FillStackTrace(skip int) Error

	// Full returns this Error wrapped in a chain.Formatter, rendering the
	// Error with its whole chain of causes.
	Full() chain.Formatter

	// FullError is shorthand for Full().String().
	FullError() string

	__() // private
}

// Wrap chains cause behind a new Error carrying message.
func Wrap(message string, cause error) Error {
	return wrapped{Message: message, Cause: cause}
}

// ========================================

type Template string

func (e Template) Format(arg ...any) String {
	return String(fmt.Sprintf(string(e), arg...))
}
