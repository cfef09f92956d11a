package chain_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/thanhminhmr/go-errchain/chain"
)

type textError string

func (e textError) Error() string {
	return string(e)
}

type causedError struct {
	message string
	cause   error
}

func (e *causedError) Error() string {
	return e.message
}

func (e *causedError) Unwrap() error {
	return e.cause
}

type cyclicError string

func (e cyclicError) Error() string {
	return string(e)
}

func (e cyclicError) Unwrap() error {
	return e
}

// buildChain links messages into a chain, first message outermost.
func buildChain(messages []string) error {
	var err error
	for index := len(messages) - 1; index >= 0; index-- {
		err = &causedError{message: messages[index], cause: err}
	}
	return err
}

func numberedMessages(count int) []string {
	messages := make([]string, count)
	for index := range messages {
		messages[index] = "m" + strconv.Itoa(index+1)
	}
	return messages
}

func TestErrorWithoutCause(t *testing.T) {
	actual := chain.String(textError("permission denied"))
	if actual != "permission denied" {
		t.Fatalf("expected %q, got %q", "permission denied", actual)
	}
}

func TestErrorWithCause(t *testing.T) {
	input := &causedError{message: "upload failed", cause: textError("permission denied")}
	actual := chain.String(input)
	if actual != "upload failed: permission denied" {
		t.Fatalf("expected %q, got %q", "upload failed: permission denied", actual)
	}
}

func TestErrorWithCyclicCauseChain(t *testing.T) {
	actual := chain.String(cyclicError("cycle detected"))
	expected := strings.Repeat("cycle detected: ", chain.MessageLimit) + "..."
	if actual != expected {
		t.Fatalf("expected %d bytes of %q followed by the marker, got %d bytes", len(expected), "cycle detected: ", len(actual))
	}
}

func TestChainExactlyAtLimit(t *testing.T) {
	messages := numberedMessages(chain.MessageLimit)
	actual := chain.String(buildChain(messages))
	expected := strings.Join(messages, ": ")
	if actual != expected {
		t.Fatalf("expected all %d messages without a marker, got %q...%q", chain.MessageLimit, actual[:16], actual[len(actual)-16:])
	}
	if count := strings.Count(actual, ": "); count != chain.MessageLimit-1 {
		t.Fatalf("expected %d separators, got %d", chain.MessageLimit-1, count)
	}
}

type unreadableError struct {
	read *bool
}

func (e *unreadableError) Error() string {
	*e.read = true
	return "must not be read"
}

func TestChainBeyondLimit(t *testing.T) {
	messages := numberedMessages(chain.MessageLimit)
	read := false
	tail := &unreadableError{read: &read}
	var err error = tail
	for index := len(messages) - 1; index >= 0; index-- {
		err = &causedError{message: messages[index], cause: err}
	}
	actual := chain.String(err)
	expected := strings.Join(messages, ": ") + ": ..."
	if actual != expected {
		t.Fatalf("expected %d messages and the marker, got %q", chain.MessageLimit, actual[len(actual)-16:])
	}
	if read {
		t.Fatalf("expected the message beyond the limit to never be read")
	}
}

func TestEmptyMessages(t *testing.T) {
	input := &causedError{message: "", cause: textError("")}
	if actual := chain.String(input); actual != ": " {
		t.Fatalf("expected %q, got %q", ": ", actual)
	}
}

func TestNilError(t *testing.T) {
	if actual := chain.String(nil); actual != "" {
		t.Fatalf("expected empty string, got %q", actual)
	}
	if err := chain.Write(&strings.Builder{}, nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestMultipleCausesRenderAsSingleMessage(t *testing.T) {
	// Unwrap() []error is outside the single-line contract
	input := joinedError{textError("first"), textError("second")}
	if actual := chain.String(input); actual != "joined" {
		t.Fatalf("expected %q, got %q", "joined", actual)
	}
}

type joinedError []error

func (e joinedError) Error() string {
	return "joined"
}

func (e joinedError) Unwrap() []error {
	return e
}

func TestFormatterEmbedding(t *testing.T) {
	input := &causedError{message: "upload failed", cause: textError("permission denied")}
	actual := fmt.Sprintf("the app crashed: %s", chain.Full(input))
	if actual != "the app crashed: upload failed: permission denied" {
		t.Fatalf("expected the chain embedded mid-string, got %q", actual)
	}
	if actual := chain.Full(input).String(); actual != "upload failed: permission denied" {
		t.Fatalf("expected %q, got %q", "upload failed: permission denied", actual)
	}
	if actual := fmt.Sprintf("%v", chain.Full(input)); actual != "upload failed: permission denied" {
		t.Fatalf("expected %q, got %q", "upload failed: permission denied", actual)
	}
}

type failingWriter struct {
	failure error
	budget  int
	writes  int
}

func (w *failingWriter) Write(payload []byte) (int, error) {
	w.writes++
	if w.budget <= 0 {
		return 0, w.failure
	}
	w.budget--
	return len(payload), nil
}

func TestWriterFailurePropagation(t *testing.T) {
	failure := textError("sink failed")
	input := buildChain([]string{"a", "b", "c"})
	for budget := 0; budget < 5; budget++ {
		writer := &failingWriter{failure: failure, budget: budget}
		err := chain.Write(writer, input)
		if err != failure {
			t.Fatalf("budget %d: expected the sink failure unchanged, got %v", budget, err)
		}
		if writer.writes != budget+1 {
			t.Fatalf("budget %d: expected rendering to stop at the failed write, got %d writes", budget, writer.writes)
		}
	}
	// "a", ": ", "b", ": ", "c" is five writes in total
	writer := &failingWriter{failure: failure, budget: 5}
	if err := chain.Write(writer, input); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestWriterFailureOnTruncationMarker(t *testing.T) {
	failure := textError("sink failed")
	// the root plus two writes per remaining message reaches the marker
	writer := &failingWriter{failure: failure, budget: 1 + 2*(chain.MessageLimit-1)}
	if err := chain.Write(writer, cyclicError("cycle detected")); err != failure {
		t.Fatalf("expected the sink failure unchanged, got %v", err)
	}
}
