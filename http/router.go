package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"calcdesk/repository"
	"calcdesk/service"
)

// Services bundles what the router serves.
type Services struct {
	Loan               *service.LoanService
	TermRecommendation *service.TermRecommendationService
	DebtExit           *service.DebtExitService
	Investment         *service.InvestmentService
	ROI                *service.ROIService
	Tax                *service.TaxService
	EPF                *service.EPFService
	BMI                *service.BMIService
	Compatibility      *service.CompatibilityService
	Records            repository.CalculationRepository
}

type RouterConfig struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
	// Limiter applies to the calculation endpoints; nil disables it.
	Limiter *RateLimiter
}

// NewRouter wires every endpoint.
func NewRouter(svc Services, cfg RouterConfig, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Retry-After"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, logger, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, logger, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
	})

	loan := NewLoanHandler(svc.Loan, logger)
	term := NewTermRecommendationHandler(svc.TermRecommendation, logger)
	debt := NewDebtExitHandler(svc.DebtExit, logger)
	investment := NewInvestmentHandler(svc.Investment, svc.ROI, logger)
	tax := NewTaxHandler(svc.Tax, svc.EPF, logger)
	lifestyle := NewLifestyleHandler(svc.BMI, svc.Compatibility, logger)
	format := NewFormatHandler(logger)
	records := NewRecordHandler(svc.Records, logger)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/locales", format.Locales)
		r.Get("/format", format.Format)
		r.Get("/tax/tables", tax.Tables)
		r.Get("/fun/signs", lifestyle.Signs)

		if svc.Records != nil {
			r.Get("/records", records.List)
			r.Get("/records/{id}", records.Get)
		}

		r.Group(func(r chi.Router) {
			if cfg.Limiter != nil {
				r.Use(RateLimitMiddleware(cfg.Limiter, logger))
			}

			r.Post("/loan", loan.CalculateLoan)
			r.Post("/loan/recommend-term", term.RecommendTerm)
			r.Post("/loan/debt-exit-plan", debt.CalculateDebtExitPlan)
			r.Post("/investment/future-value", investment.FutureValue)
			r.Post("/investment/roi", investment.ROI)
			r.Post("/tax/stamp-duty", tax.StampDuty)
			r.Post("/tax/income-tax", tax.IncomeTax)
			r.Post("/tax/epf", tax.EPF)
			r.Post("/health/bmi", lifestyle.BMI)
			r.Post("/fun/compatibility", lifestyle.Compatibility)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}
