package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"calcdesk/repository"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// RecordHandler serves stored calculations for export and sharing.
type RecordHandler struct {
	records repository.CalculationRepository
	logger  *zap.Logger
}

func NewRecordHandler(records repository.CalculationRepository, logger *zap.Logger) *RecordHandler {
	return &RecordHandler{records: records, logger: logger}
}

func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid record id")
		return
	}

	record, err := h.records.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, record)
}

// List returns the newest records, optionally for one ?calculator=.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, h.logger, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(n, maxListLimit)
	}

	records, err := h.records.List(r.Context(), r.URL.Query().Get("calculator"), limit)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]any{"records": records})
}
