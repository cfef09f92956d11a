//go:build !no_zerolog

package errors

import (
	"github.com/rs/zerolog"

	"github.com/thanhminhmr/go-errchain/chain"
)

func (e String) MarshalZerologObject(event *zerolog.Event) {
	event.Str("error", string(e))
}

func (e wrapped) MarshalZerologObject(event *zerolog.Event) {
	event.Str("error", e.Message)
	if e.Cause != nil {
		event.Str("full", chain.String(e)).AnErr("cause", e.Cause)
	}
	if e.Recovered != nil {
		event.Any("recovered", e.Recovered)
	}
	if e.StackTrace != nil {
		event.Array("stack_trace", e.StackTrace)
	}
}

func (f StackFrame) MarshalZerologObject(event *zerolog.Event) {
	event.Str("function", f.Function).Str("file", f.File).Int("line", f.Line)
}

func (s StackFrames) MarshalZerologArray(array *zerolog.Array) {
	for _, frame := range s {
		array.Object(frame)
	}
}
