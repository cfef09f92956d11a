package errors

const PanicError = String("panicked")

// Panic panics with value wrapped as an Error, capturing a stack trace if the
// value does not carry one already.
func Panic(value any) {
	if err, ok := value.(Error); ok {
		if err.GetStackTrace() == nil {
			value = err.FillStackTrace(1)
		}
	} else {
		value = wrapped{
			Message:    string(PanicError),
			Recovered:  value,
			StackTrace: StackTrace(1),
		}
	}
	panic(value)
}

// Recover converts a recovered panic value into an Error, capturing a stack
// trace if the value does not carry one already. It returns nil when
// recovered is nil, so it composes with the builtin recover:
//
//	if err := errors.Recover(recover()); err != nil { ... }
func Recover(recovered any) Error {
	if recovered == nil {
		return nil
	}
	if err, ok := recovered.(Error); ok {
		if err.GetStackTrace() == nil {
			return err.FillStackTrace(1)
		}
		return err
	}
	return wrapped{
		Message:    string(PanicError),
		Recovered:  recovered,
		StackTrace: StackTrace(1),
	}
}
