package http

import (
	"net/http"

	"go.uber.org/zap"

	"calcdesk/locale"
	"calcdesk/service"
)

type FormatHandler struct {
	logger *zap.Logger
}

func NewFormatHandler(logger *zap.Logger) *FormatHandler {
	return &FormatHandler{logger: logger}
}

func (h *FormatHandler) Locales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]any{
		"default": locale.DefaultTag,
		"locales": locale.Supported(),
	})
}

// Format renders ?value= with the formatter named by ?kind= (currency when
// absent) in ?locale=.
func (h *FormatHandler) Format(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind := q.Get("kind")
	if kind == "" {
		kind = service.FormatKindCurrency
	}

	result, err := service.FormatValue(kind, q.Get("value"), q.Get("locale"))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}
