package errors

import "github.com/thanhminhmr/go-errchain/chain"

// type check
var _ Error = wrapped{}

type wrapped struct {
	Message    string
	Cause      error
	Recovered  any
	StackTrace StackFrames
}

func (e wrapped) Error() string {
	return e.Message
}

func (e wrapped) GetCause() error {
	return e.Cause
}

func (e wrapped) WithCause(cause error) Error {
	if cause != nil {
		e.Cause = cause
	}
	return e
}

func (e wrapped) GetRecovered() any {
	return e.Recovered
}

func (e wrapped) SetRecovered(recovered any) Error {
	e.Recovered = recovered
	return e
}

func (e wrapped) GetStackTrace() StackFrames {
	return e.StackTrace
}

func (e wrapped) FillStackTrace(skip int) Error {
	e.StackTrace = StackTrace(skip + 1)
	return e
}

func (e wrapped) Full() chain.Formatter {
	return chain.Full(e)
}

func (e wrapped) FullError() string {
	return chain.String(e)
}

func (e wrapped) __() {}

func (e wrapped) Unwrap() error {
	return e.Cause
}

func (e wrapped) Is(target error) bool {
	return is(e, target)
}

func (e wrapped) As(target any) bool {
	return as(e, target)
}
