// Package locale holds the fixed table of supported locales and the pure
// functions that render numbers, money, percentages and dates for them.
//
// Every function takes the locale tag as an explicit argument. Unknown or
// malformed tags resolve to the closest supported locale, or to DefaultTag
// when nothing is close.
package locale

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// DefaultTag is used when a tag cannot be matched to a supported locale.
const DefaultTag = "en-US"

// Config describes how one locale renders numbers, money and dates.
type Config struct {
	Tag               string `json:"tag"`
	CurrencyCode      string `json:"currency_code"`
	CurrencySymbol    string `json:"currency_symbol"`
	NumberFormatTag   string `json:"number_format_tag"`
	DateFormatPattern string `json:"date_format_pattern"`

	// PrimaryGroup is the size of the right-most digit group, SecondaryGroup
	// the size of every group left of it (3/3 western, 3/2 Indian).
	PrimaryGroup     int    `json:"primary_group"`
	SecondaryGroup   int    `json:"secondary_group"`
	GroupSeparator   string `json:"group_separator"`
	DecimalSeparator string `json:"decimal_separator"`

	fractionDigits int
	dateLayout     string
	compact        []compactUnit
}

// FractionDigits is the number of minor-unit digits of the locale's currency.
func (c Config) FractionDigits() int {
	return c.fractionDigits
}

var (
	supportedTags = []string{"en-US", "en-GB", "en-AU", "en-IN"}

	registry = map[string]Config{
		"en-US": {
			Tag:               "en-US",
			CurrencyCode:      "USD",
			CurrencySymbol:    "$",
			NumberFormatTag:   "en-US",
			DateFormatPattern: "MM/dd/yyyy",
			PrimaryGroup:      3,
			SecondaryGroup:    3,
			compact:           westernCompact,
		},
		"en-GB": {
			Tag:               "en-GB",
			CurrencyCode:      "GBP",
			CurrencySymbol:    "£",
			NumberFormatTag:   "en-GB",
			DateFormatPattern: "dd/MM/yyyy",
			PrimaryGroup:      3,
			SecondaryGroup:    3,
			compact:           westernCompact,
		},
		"en-AU": {
			Tag:               "en-AU",
			CurrencyCode:      "AUD",
			CurrencySymbol:    "$",
			NumberFormatTag:   "en-AU",
			DateFormatPattern: "dd/MM/yyyy",
			PrimaryGroup:      3,
			SecondaryGroup:    3,
			compact:           westernCompact,
		},
		"en-IN": {
			Tag:               "en-IN",
			CurrencyCode:      "INR",
			CurrencySymbol:    "₹",
			NumberFormatTag:   "en-IN",
			DateFormatPattern: "dd/MM/yyyy",
			PrimaryGroup:      3,
			SecondaryGroup:    2,
			compact:           indianCompact,
		},
	}

	matcher language.Matcher
)

var datePatternReplacer = strings.NewReplacer("yyyy", "2006", "MM", "01", "dd", "02")

func init() {
	tags := make([]language.Tag, 0, len(supportedTags))
	for _, key := range supportedTags {
		cfg := registry[key]
		unit := currency.MustParseISO(cfg.CurrencyCode)
		cfg.fractionDigits, _ = currency.Standard.Rounding(unit)
		cfg.dateLayout = datePatternReplacer.Replace(cfg.DateFormatPattern)
		if cfg.GroupSeparator == "" {
			cfg.GroupSeparator = ","
		}
		if cfg.DecimalSeparator == "" {
			cfg.DecimalSeparator = "."
		}
		registry[key] = cfg
		tags = append(tags, language.MustParse(key))
	}
	matcher = language.NewMatcher(tags)
}

// Lookup returns the configuration for tag. Exact keys win; otherwise the
// closest supported locale is used, and DefaultTag when none is close.
func Lookup(tag string) Config {
	if cfg, ok := registry[tag]; ok {
		return cfg
	}
	parsed, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return registry[DefaultTag]
	}
	_, idx, confidence := matcher.Match(parsed)
	if confidence == language.No || idx < 0 || idx >= len(supportedTags) {
		return registry[DefaultTag]
	}
	return registry[supportedTags[idx]]
}

// IsSupported reports whether tag is one of the supported keys verbatim.
func IsSupported(tag string) bool {
	_, ok := registry[tag]
	return ok
}

// Supported lists every supported locale in a stable order.
func Supported() []Config {
	out := make([]Config, 0, len(supportedTags))
	for _, key := range supportedTags {
		out = append(out, registry[key])
	}
	return out
}
