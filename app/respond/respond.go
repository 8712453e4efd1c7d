// Package respond writes JSON responses for the HTTP handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"blogpost/app/apperr"

	"github.com/rs/zerolog"
)

// JSON writes payload with the given status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error renders err as {"message": ...}. Server errors are logged with their
// cause using the request logger; the cause never reaches the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	ae := apperr.As(err)
	log := zerolog.Ctx(r.Context())
	if ae.HTTPStatus >= http.StatusInternalServerError {
		log.Error().Err(ae.Cause).Str("code", ae.Code).Msg("request failed")
	} else {
		log.Info().Str("code", ae.Code).Msg(ae.Message)
	}
	JSON(w, ae.HTTPStatus, ae)
}
