package api

import (
	"encoding/json"
	"net/http"

	"github.com/vytor/chessroyale/internal/errors"
	"github.com/vytor/chessroyale/internal/logger"
)

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// respond writes a successful envelope around data.
func respond(w http.ResponseWriter, r *http.Request, status int, data any) {
	writeJSON(w, r, status, successEnvelope{Success: true, Data: data})
}

// handleError centralizes error handling for HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	appErr := errors.As(err)

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else if appErr.Status >= 400 {
		log.Warn("client error: %v", appErr)
	} else {
		log.Debug("error: %v", appErr)
	}

	writeJSON(w, r, appErr.Status, errorEnvelope{
		Success: false,
		Error: errorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
		},
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.NewBadRequestError("invalid JSON body")
	}
	return nil
}
