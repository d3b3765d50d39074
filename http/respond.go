package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"go.uber.org/zap"

	"calcdesk/domain"
	"calcdesk/repository"
)

const maxBodyBytes = 1 << 20

// errorBody is the shape of every error response. Result is always null so
// that clients can treat "no result" uniformly.
type errorBody struct {
	Result *struct{} `json:"result"`
	Error  string    `json:"error"`
}

// writeJSON encodes into a buffer first so that an encoding failure can still
// produce a clean 500.
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Debug("failed to write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, status int, msg string) {
	writeJSON(w, logger, status, errorBody{Error: msg})
}

// writeServiceError maps service errors onto status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrNoResult):
		writeError(w, logger, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, repository.ErrRecordNotFound):
		writeError(w, logger, http.StatusNotFound, err.Error())
	default:
		logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err))
		writeError(w, logger, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a JSON request body into dst. It writes the error
// response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, logger *zap.Logger, dst any) bool {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			writeError(w, logger, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return false
		}
	}

	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		logger.Debug("invalid request body", zap.Error(err))
		writeError(w, logger, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

// calculate adapts a calculator service method to an HTTP handler.
func calculate[In, Out any](
	logger *zap.Logger,
	fn func(ctx context.Context, input In) (Out, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input In
		if !decodeJSON(w, r, logger, &input) {
			return
		}

		result, err := fn(r.Context(), input)
		if err != nil {
			writeServiceError(w, r, logger, err)
			return
		}
		writeJSON(w, logger, http.StatusOK, result)
	}
}
