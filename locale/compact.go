package locale

import "math"

type compactUnit struct {
	size   float64
	suffix string
}

// Ordered largest first.
var (
	westernCompact = []compactUnit{
		{size: 1e12, suffix: "T"},
		{size: 1e9, suffix: "B"},
		{size: 1e6, suffix: "M"},
		{size: 1e3, suffix: "K"},
	}
	indianCompact = []compactUnit{
		{size: 1e7, suffix: " Cr"},
		{size: 1e5, suffix: " L"},
		{size: 1e3, suffix: " K"},
	}
)

// FormatCompactCurrency renders large amounts with a magnitude suffix and at
// most two fraction digits: "$1.5M", "£12K", "₹19.27 L", "₹1,927.35 Cr".
// Amounts below one thousand fall through to FormatCurrency.
func FormatCompactCurrency(amount float64, tag string) string {
	cfg := Lookup(tag)
	if s, ok := nonFinite(amount); ok {
		return s
	}

	abs := math.Abs(amount)
	for i, unit := range cfg.compact {
		if abs < unit.size {
			continue
		}
		// 999,999 would otherwise render as "1,000K".
		if i > 0 && math.Round(abs/unit.size*100)/100 >= cfg.compact[i-1].size/unit.size {
			unit = cfg.compact[i-1]
		}
		body, _ := cfg.render(abs/unit.size, 0, 2)
		if amount < 0 {
			return "-" + cfg.CurrencySymbol + body + unit.suffix
		}
		return cfg.CurrencySymbol + body + unit.suffix
	}
	return FormatCurrency(amount, tag)
}
