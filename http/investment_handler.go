package http

import (
	"net/http"

	"go.uber.org/zap"

	"calcdesk/service"
)

type InvestmentHandler struct {
	investment *service.InvestmentService
	roi        *service.ROIService
	logger     *zap.Logger
}

func NewInvestmentHandler(
	investment *service.InvestmentService,
	roi *service.ROIService,
	logger *zap.Logger,
) *InvestmentHandler {
	return &InvestmentHandler{investment: investment, roi: roi, logger: logger}
}

func (h *InvestmentHandler) FutureValue(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, h.investment.FutureValue)(w, r)
}

func (h *InvestmentHandler) ROI(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, h.roi.Calculate)(w, r)
}
