package locale

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount recovers a number from text produced by FormatCurrency or
// FormatNumber, or typed by a user: the locale's currency symbol and code,
// grouping separators and whitespace are stripped before parsing. ok is
// false when nothing numeric remains.
func ParseAmount(text, tag string) (float64, bool) {
	cfg := Lookup(tag)

	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, cfg.CurrencySymbol, "")
	cleaned = strings.ReplaceAll(strings.ToUpper(cleaned), cfg.CurrencyCode, "")
	cleaned = strings.ReplaceAll(cleaned, cfg.GroupSeparator, "")
	if cfg.DecimalSeparator != "." {
		cleaned = strings.ReplaceAll(cleaned, cfg.DecimalSeparator, ".")
	}
	cleaned = strings.Join(strings.Fields(cleaned), "")
	if cleaned == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseCurrencyInput is ParseAmount with the historical fallback of 0 for
// text that does not parse. Call sites that must tell "nothing entered"
// apart from zero use ParseAmount.
func ParseCurrencyInput(text, tag string) float64 {
	v, _ := ParseAmount(text, tag)
	return v
}
