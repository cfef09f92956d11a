package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/thanhminhmr/go-errchain/chain"
)

type ServerResponse interface {
	Render(writer http.ResponseWriter) error
}

// ServerErrorResponse renders Cause with its whole chain as the plain-text
// response body, a single line per the chain package contract.
type ServerErrorResponse struct {
	Status int
	Cause  error
}

func (e ServerErrorResponse) Render(writer http.ResponseWriter) error {
	header := writer.Header()
	header.Add("Content-Type", "text/plain; charset=utf-8")
	header.Add("X-Content-Type-Options", "nosniff")
	writer.WriteHeader(e.Status)
	// a failed write aborts rendering and surfaces unchanged
	return chain.Write(writer, e.Cause)
}

func (e ServerErrorResponse) Error() string {
	return e.Cause.Error()
}

func (e ServerErrorResponse) MarshalZerologObject(event *zerolog.Event) {
	event.Str("error", chain.String(e.Cause)).Int("status", e.Status)
}

type ServerJsonResponse struct {
	Status   int
	Response any
}

func (r ServerJsonResponse) Render(writer http.ResponseWriter) error {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(r.Status)
	return json.NewEncoder(writer).Encode(r.Response)
}
