package service

import (
	"fmt"
	"strings"
	"time"

	"calcdesk/domain"
	"calcdesk/locale"
)

// Format kinds.
const (
	FormatKindCurrency = "currency"
	FormatKindCompact  = "compact"
	FormatKindNumber   = "number"
	FormatKindPercent  = "percent"
	FormatKindDate     = "date"
)

type FormatResult struct {
	Kind      string `json:"kind"`
	Input     string `json:"input"`
	Locale    string `json:"locale"`
	Formatted string `json:"formatted"`
}

// FormatValue renders text, parsed as an amount in tag (or as a YYYY-MM-DD
// date), with the formatter named by kind.
func FormatValue(kind, text, tag string) (FormatResult, error) {
	cfg := locale.Lookup(tag)
	res := FormatResult{Kind: kind, Input: text, Locale: cfg.Tag}

	if kind == FormatKindDate {
		t, err := time.Parse(birthDateLayout, strings.TrimSpace(text))
		if err != nil {
			return FormatResult{}, noResult("invalid date %q", text)
		}
		res.Formatted = locale.FormatDate(t, cfg.Tag)
		return res, nil
	}

	value, ok := locale.ParseAmount(text, cfg.Tag)
	if !ok {
		return FormatResult{}, noResult("invalid amount %q", text)
	}

	switch kind {
	case FormatKindCurrency:
		res.Formatted = locale.FormatCurrency(value, cfg.Tag)
	case FormatKindCompact:
		res.Formatted = locale.FormatCompactCurrency(value, cfg.Tag)
	case FormatKindNumber:
		res.Formatted = locale.FormatNumber(value, cfg.Tag)
	case FormatKindPercent:
		res.Formatted = locale.FormatPercentage(value, cfg.Tag)
	default:
		return FormatResult{}, fmt.Errorf("%w: unknown format kind %q", domain.ErrNoResult, kind)
	}
	return res, nil
}
