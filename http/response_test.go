package http_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/thanhminhmr/go-errchain/errors"
	"github.com/thanhminhmr/go-errchain/http"
)

func TestServerErrorResponseRendersTheWholeChain(t *testing.T) {
	response := http.ServerErrorResponse{
		Status: nethttp.StatusForbidden,
		Cause:  errors.Wrap("upload failed", errors.String("permission denied")),
	}
	recorder := httptest.NewRecorder()
	if err := response.Render(recorder); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if recorder.Code != nethttp.StatusForbidden {
		t.Fatalf("expected status 403, got %d", recorder.Code)
	}
	if body := recorder.Body.String(); body != "upload failed: permission denied" {
		t.Fatalf("expected the chain as the body, got %q", body)
	}
	if contentType := recorder.Header().Get("Content-Type"); contentType != "text/plain; charset=utf-8" {
		t.Fatalf("expected a plain text response, got %q", contentType)
	}
}

type failingResponseWriter struct {
	header  nethttp.Header
	failure error
}

func (w *failingResponseWriter) Header() nethttp.Header {
	return w.header
}

func (w *failingResponseWriter) WriteHeader(int) {}

func (w *failingResponseWriter) Write([]byte) (int, error) {
	return 0, w.failure
}

func TestServerErrorResponseSinkFailure(t *testing.T) {
	failure := errors.New("client went away")
	response := http.ServerErrorResponse{
		Status: nethttp.StatusForbidden,
		Cause:  errors.String("upload failed"),
	}
	writer := &failingResponseWriter{header: nethttp.Header{}, failure: failure}
	if err := response.Render(writer); err != failure {
		t.Fatalf("expected the sink failure unchanged, got %v", err)
	}
}

func TestServerJsonResponse(t *testing.T) {
	response := http.ServerJsonResponse{
		Status:   nethttp.StatusOK,
		Response: map[string]string{"state": "done"},
	}
	recorder := httptest.NewRecorder()
	if err := response.Render(recorder); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if body := recorder.Body.String(); body != "{\"state\":\"done\"}\n" {
		t.Fatalf("expected the json body, got %q", body)
	}
}
