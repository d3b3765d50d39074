package http

import (
	"net/http"

	"go.uber.org/zap"

	"calcdesk/calc"
	"calcdesk/service"
	"calcdesk/tables"
)

type TaxHandler struct {
	tax    *service.TaxService
	epf    *service.EPFService
	logger *zap.Logger
}

func NewTaxHandler(tax *service.TaxService, epf *service.EPFService, logger *zap.Logger) *TaxHandler {
	return &TaxHandler{tax: tax, epf: epf, logger: logger}
}

func (h *TaxHandler) StampDuty(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, h.tax.StampDuty)(w, r)
}

func (h *TaxHandler) IncomeTax(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, h.tax.IncomeTax)(w, r)
}

func (h *TaxHandler) EPF(w http.ResponseWriter, r *http.Request) {
	calculate(h.logger, h.epf.Project)(w, r)
}

// bandView renders a band with rates in percent; JSON has no infinity, so
// the top band omits To.
type bandView struct {
	From float64  `json:"from"`
	To   *float64 `json:"to,omitempty"`
	Rate float64  `json:"rate"`
}

type tableView struct {
	Key          string     `json:"key"`
	Name         string     `json:"name"`
	Currency     string     `json:"currency"`
	EligibleUpTo float64    `json:"eligible_up_to,omitempty"`
	Bands        []bandView `json:"bands"`
}

func viewBands(bands []calc.Band) []bandView {
	out := make([]bandView, 0, len(bands))
	for _, b := range bands {
		v := bandView{From: b.Lower, Rate: b.Rate * 100}
		if !b.Unbounded() {
			upper := b.Upper
			v.To = &upper
		}
		out = append(out, v)
	}
	return out
}

// Tables lists every band table.
func (h *TaxHandler) Tables(w http.ResponseWriter, r *http.Request) {
	out := []tableView{}
	for _, key := range tables.BandKeys() {
		table, err := tables.Bands(key)
		if err != nil {
			writeServiceError(w, r, h.logger, err)
			return
		}
		out = append(out, tableView{
			Key:          table.Key,
			Name:         table.Name,
			Currency:     table.Currency,
			EligibleUpTo: table.EligibleUpTo,
			Bands:        viewBands(table.Bands),
		})
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}
