package http

import (
	"net/http"

	"go.uber.org/zap"

	"calcdesk/service"
)

type DebtExitHandler struct {
	service *service.DebtExitService
	logger  *zap.Logger
}

func NewDebtExitHandler(service *service.DebtExitService, logger *zap.Logger) *DebtExitHandler {
	return &DebtExitHandler{service: service, logger: logger}
}

func (h *DebtExitHandler) CalculateDebtExitPlan(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, h.service.CalculateDebtExitPlan)(w, r)
}
