// Package httputil holds the JSON response helpers shared by every handler.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "statehouse/pkg/domain-errors"
)

// ErrorResponse is the envelope for every non-2xx response.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err into a status code and error envelope.
// Errors without a code, and internal errors, are reported without detail so
// driver messages never reach the client.
func WriteError(w http.ResponseWriter, err error) {
	de, ok := dErrors.As(err)
	if !ok {
		WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: string(dErrors.CodeInternal)})
		return
	}
	resp := ErrorResponse{Error: string(de.Code)}
	if de.Code != dErrors.CodeInternal {
		resp.Detail = de.Message
	}
	WriteJSON(w, dErrors.ToHTTPStatus(de.Code), resp)
}
