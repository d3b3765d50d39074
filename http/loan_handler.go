package http

import (
	"net/http"

	"go.uber.org/zap"

	"calcdesk/service"
)

type LoanHandler struct {
	service *service.LoanService
	logger  *zap.Logger
}

func NewLoanHandler(service *service.LoanService, logger *zap.Logger) *LoanHandler {
	return &LoanHandler{service: service, logger: logger}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, h.service.CalculateLoan)(w, r)
}
