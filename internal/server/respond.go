package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Tomlord1122/storefront-backend/internal/apperror"
)

// dataResponse always serializes data, so a lookup without a match yields
// "data": null.
type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Status  int  `json:"status,omitempty"`
}

type ackResponse struct {
	Success bool  `json:"success"`
	OrderID *uint `json:"orderId,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
}

// responder writes envelopes and logs through the owning server's logger.
type responder struct {
	logger *slog.Logger
}

func (rs responder) respondWithData(w http.ResponseWriter, code int, data any) {
	rs.respondWithJSON(w, code, dataResponse{Success: true, Data: data})
}

func (rs responder) respondWithError(w http.ResponseWriter, code int, message string) {
	rs.respondWithJSON(w, code, errorResponse{Success: false, Error: message, Status: code})
}

// respondWithAppError maps err to its status and passes its message through
// unchanged. Server-side failures are logged.
func (rs responder) respondWithAppError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperror.HTTPStatus(err)
	if code >= http.StatusInternalServerError {
		rs.logger.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	}
	rs.respondWithError(w, code, err.Error())
}

func (rs responder) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		rs.logger.Error("marshal JSON response", slog.String("error", err.Error()))
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"Internal server error preparing response","status":500}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	// Browsers only send Origin on cross-site calls; plain clients still get
	// the permissive header.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// decodeJSON reads the request body into dst. An empty body decodes as {}.
// The body must hold exactly one JSON value.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return apperror.Validation("Invalid JSON")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperror.Validation("Invalid JSON")
	}
	return nil
}
