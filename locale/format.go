package locale

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NumberOptions bounds the fraction digits FormatNumber renders.
type NumberOptions struct {
	MinFractionDigits int
	MaxFractionDigits int
}

// DefaultNumberOptions renders between 0 and 2 fraction digits.
var DefaultNumberOptions = NumberOptions{MinFractionDigits: 0, MaxFractionDigits: 2}

func (o NumberOptions) normalize() NumberOptions {
	if o.MinFractionDigits < 0 {
		o.MinFractionDigits = 0
	}
	if o.MaxFractionDigits > 20 {
		o.MaxFractionDigits = 20
	}
	if o.MaxFractionDigits < o.MinFractionDigits {
		o.MaxFractionDigits = o.MinFractionDigits
	}
	return o
}

// FormatCurrency renders amount in the locale's currency, e.g. "$1,234.56",
// "-£12.00" or "₹12,34,567.89". A non-finite amount renders as "NaN" or
// "∞"; callers must not pass one.
func FormatCurrency(amount float64, tag string) string {
	cfg := Lookup(tag)
	if s, ok := nonFinite(amount); ok {
		return s
	}
	body, negative := cfg.render(amount, cfg.fractionDigits, cfg.fractionDigits)
	if negative {
		return "-" + cfg.CurrencySymbol + body
	}
	return cfg.CurrencySymbol + body
}

// FormatNumber renders value with locale grouping. Without options it uses
// DefaultNumberOptions.
func FormatNumber(value float64, tag string, opts ...NumberOptions) string {
	o := DefaultNumberOptions
	if len(opts) > 0 {
		o = opts[0].normalize()
	}
	cfg := Lookup(tag)
	if s, ok := nonFinite(value); ok {
		return s
	}
	body, negative := cfg.render(value, o.MinFractionDigits, o.MaxFractionDigits)
	if negative {
		return "-" + body
	}
	return body
}

// FormatPercentage renders value, given on a 0-100 scale, with one or two
// fraction digits and a percent sign: 9.5445 -> "9.54%", 0 -> "0.0%".
func FormatPercentage(value float64, tag string) string {
	cfg := Lookup(tag)
	if s, ok := nonFinite(value); ok {
		return s + "%"
	}
	ratio := decimal.NewFromFloat(value).Div(decimal.NewFromInt(100))
	body, negative := cfg.renderDecimal(ratio.Shift(2), 1, 2)
	if negative {
		return "-" + body + "%"
	}
	return body + "%"
}

// FormatDate renders the calendar date of t in the locale's day/month/year
// order.
func FormatDate(t time.Time, tag string) string {
	return t.Format(Lookup(tag).dateLayout)
}

// render rounds |value| half away from zero to maxFrac digits, trims trailing
// zeros down to minFrac digits and applies grouping. The sign is returned
// separately so callers can place it before a currency symbol.
func (c Config) render(value float64, minFrac, maxFrac int) (string, bool) {
	return c.renderDecimal(decimal.NewFromFloat(value), minFrac, maxFrac)
}

func (c Config) renderDecimal(d decimal.Decimal, minFrac, maxFrac int) (string, bool) {
	d = d.Round(int32(maxFrac))
	negative := d.IsNegative()
	digits := d.Abs().StringFixed(int32(maxFrac))

	intPart, frac, _ := strings.Cut(digits, ".")
	if len(frac) > minFrac {
		frac = strings.TrimRight(frac, "0")
		for len(frac) < minFrac {
			frac += "0"
		}
	}

	out := groupDigits(intPart, c.PrimaryGroup, c.SecondaryGroup, c.GroupSeparator)
	if frac != "" {
		out += c.DecimalSeparator + frac
	}
	return out, negative
}

func groupDigits(s string, primary, secondary int, sep string) string {
	if primary <= 0 || len(s) <= primary {
		return s
	}
	if secondary <= 0 {
		secondary = primary
	}

	head, tail := s[:len(s)-primary], s[len(s)-primary:]
	groups := []string{tail}
	for len(head) > secondary {
		groups = append(groups, head[len(head)-secondary:])
		head = head[:len(head)-secondary]
	}
	groups = append(groups, head)

	var b strings.Builder
	b.Grow(len(s) + len(groups)*len(sep))
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteString(sep)
		}
	}
	return b.String()
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "∞", true
	case math.IsInf(v, -1):
		return "-∞", true
	}
	return "", false
}
