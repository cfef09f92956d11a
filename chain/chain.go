// Package chain renders an error together with its whole chain of causes as a
// single line of text.
//
// Error messages are separated with ": "; up to MessageLimit messages per
// chain are printed, after which a single ": ..." is printed. The limit is the
// only defense against cyclic chains, there is no cycle detection.
//
// The cause of an error is whatever errors.Unwrap reports: at most one error,
// obtained from an Unwrap() error method. Errors joining multiple causes with
// Unwrap() []error report no cause and render as a single message.
package chain

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// MessageLimit is the maximum number of messages printed for a single chain.
//
// This value includes the root error. If there are more causes left, the next
// cause is printed as "..." and rendering ends. Changing this value is a
// breaking change.
const MessageLimit = 1024

const separator = ": "
const truncationMarker = "..."

// Write renders err and its causes to writer on a single line.
//
// A nil err writes nothing. Any error from the writer aborts rendering
// immediately and is returned unchanged; how much text was already written is
// unspecified in that case.
func Write(writer io.Writer, err error) error {
	if err == nil {
		return nil
	}
	if _, failed := io.WriteString(writer, err.Error()); failed != nil {
		return failed
	}
	printed := 1
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		if printed >= MessageLimit {
			_, failed := io.WriteString(writer, separator+truncationMarker)
			return failed
		}
		if _, failed := io.WriteString(writer, separator); failed != nil {
			return failed
		}
		if _, failed := io.WriteString(writer, cause.Error()); failed != nil {
			return failed
		}
		// saturating, the counter must never wrap around
		if printed != math.MaxInt {
			printed++
		}
	}
	return nil
}

// String renders err and its causes into a single-line string.
func String(err error) string {
	var builder strings.Builder
	_ = Write(&builder, err) // strings.Builder never fails
	return builder.String()
}

// ========================================

// type check
var _ fmt.Formatter = Formatter{}
var _ fmt.Stringer = Formatter{}

// Formatter is a formatting wrapper around an error. It renders the error
// with its whole chain of causes, so it can be embedded in any formatted
// output:
//
//	fmt.Printf("upload aborted: %s\n", chain.Full(err))
//
// Formatter holds the error it was given, it never copies or mutates the
// chain.
type Formatter struct {
	Err error
}

// Full wraps err in a Formatter.
func Full(err error) Formatter {
	return Formatter{Err: err}
}

func (f Formatter) Format(state fmt.State, _ rune) {
	// a failed write already aborted rendering, and the fmt machinery has no
	// way to surface the failure
	_ = Write(state, f.Err)
}

func (f Formatter) String() string {
	return String(f.Err)
}
