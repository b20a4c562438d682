// Package httputil centralizes JSON response and error envelopes so every
// handler speaks the same dialect.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "custos/pkg/domain-errors"
)

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the JSON error envelope. Internal
// errors deliberately omit the description so store details never reach the
// wire.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)

	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal {
		if desc := dErrors.Description(err); desc != "" {
			body["error_description"] = desc
		}
	}

	WriteJSON(w, dErrors.HTTPStatus(code), body)
}
