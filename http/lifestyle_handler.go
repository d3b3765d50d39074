package http

import (
	"net/http"

	"go.uber.org/zap"

	"calcdesk/service"
	"calcdesk/tables"
)

type LifestyleHandler struct {
	bmi           *service.BMIService
	compatibility *service.CompatibilityService
	logger        *zap.Logger
}

func NewLifestyleHandler(
	bmi *service.BMIService,
	compatibility *service.CompatibilityService,
	logger *zap.Logger,
) *LifestyleHandler {
	return &LifestyleHandler{bmi: bmi, compatibility: compatibility, logger: logger}
}

func (h *LifestyleHandler) BMI(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, h.bmi.Calculate)(w, r)
}

func (h *LifestyleHandler) Compatibility(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, h.compatibility.Score)(w, r)
}

func (h *LifestyleHandler) Signs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string][]string{"signs": tables.Signs()})
}
