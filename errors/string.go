package errors

import "github.com/thanhminhmr/go-errchain/chain"

// type check
var _ Error = String("")

// String is a string-based Error. It behaves like a simple error containing
// only a message, with no cause, recovered value, or stack trace.
//
// String is often used as a starting point for building a chain. When a
// cause, a recovered value, or a stack trace is added, a new Error will be
// created that keeps the message and includes the added details:
//
//	err := errors.String("read failed").WithCause(cause)
//
// String can also be used as a constant error value, for example:
//
//	const ErrRead = errors.String("read failed")
type String string

func (e String) Error() string {
	return string(e)
}

func (e String) GetCause() error {
	return nil
}

func (e String) WithCause(cause error) Error {
	if cause == nil {
		return e
	}
	return wrapped{
		Message: string(e),
		Cause:   cause,
	}
}

func (e String) GetRecovered() any {
	return nil
}

func (e String) SetRecovered(recovered any) Error {
	if recovered == nil {
		return e
	}
	return wrapped{
		Message:   string(e),
		Recovered: recovered,
	}
}

func (e String) GetStackTrace() StackFrames {
	return nil
}

func (e String) FillStackTrace(skip int) Error {
	return wrapped{
		Message:    string(e),
		StackTrace: StackTrace(skip + 1),
	}
}

func (e String) Full() chain.Formatter {
	return chain.Full(e)
}

func (e String) FullError() string {
	return chain.String(e)
}

func (e String) __() {}

func (e String) Is(target error) bool {
	return is(e, target)
}

func (e String) As(target any) bool {
	return as(e, target)
}
