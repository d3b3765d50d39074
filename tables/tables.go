// Package tables loads the immutable reference data the calculators share:
// progressive band tables for taxes and duties, and the zodiac
// compatibility matrix. The data is embedded and parsed once.
package tables

import (
	"embed"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"calcdesk/calc"
)

//go:embed data/*.yaml
var dataFS embed.FS

var (
	ErrUnknownTable = errors.New("unknown table")
	ErrUnknownSign  = errors.New("unknown sign")
)

// BandTable is a named, validated list of progressive bands.
type BandTable struct {
	Key      string      `json:"key"`
	Name     string      `json:"name"`
	Currency string      `json:"currency"`
	Bands    []calc.Band `json:"bands"`

	// EligibleUpTo is the highest value the table may be applied to; zero
	// means no limit.
	EligibleUpTo float64 `json:"eligible_up_to,omitempty"`
}

// Eligible reports whether value may be charged with this table.
func (t BandTable) Eligible(value float64) bool {
	return t.EligibleUpTo <= 0 || value <= t.EligibleUpTo
}

type rawBand struct {
	UpTo *float64 `yaml:"upto"`
	Rate float64  `yaml:"rate"`
}

type rawTable struct {
	Key          string    `yaml:"key"`
	Name         string    `yaml:"name"`
	Currency     string    `yaml:"currency"`
	EligibleUpTo float64   `yaml:"eligible_up_to"`
	SurchargeOf  string    `yaml:"surcharge_of"`
	Surcharge    float64   `yaml:"surcharge"`
	Bands        []rawBand `yaml:"bands"`
}

type rawZodiac struct {
	Signs []struct {
		Name   string `yaml:"name"`
		Starts string `yaml:"starts"`
	} `yaml:"signs"`
	Verdicts []verdict `yaml:"verdicts"`
	Pairs    []struct {
		A     string `yaml:"a"`
		B     string `yaml:"b"`
		Score int    `yaml:"score"`
	} `yaml:"pairs"`
}

type verdict struct {
	Min   int    `yaml:"min"`
	Label string `yaml:"label"`
}

type signStart struct {
	name     string
	monthDay int
}

type catalog struct {
	bands    map[string]BandTable
	keys     []string
	scores   calc.SymmetricTable[int]
	signs    []signStart
	verdicts []verdict
}

var (
	loadOnce sync.Once
	loaded   *catalog
	loadErr  error
)

// Load parses the embedded tables. It is safe to call repeatedly; the data
// is parsed on the first call only. Other functions in this package call it
// implicitly.
func Load() error {
	_, err := get()
	return err
}

func get() (*catalog, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parse()
	})
	return loaded, loadErr
}

func parse() (*catalog, error) {
	c := &catalog{bands: make(map[string]BandTable)}

	var bandDoc struct {
		Tables []rawTable `yaml:"tables"`
	}
	if err := decode("data/bands.yaml", &bandDoc); err != nil {
		return nil, err
	}
	for _, raw := range bandDoc.Tables {
		table, err := c.buildBandTable(raw)
		if err != nil {
			return nil, err
		}
		c.bands[table.Key] = table
		c.keys = append(c.keys, table.Key)
	}

	var zodiac rawZodiac
	if err := decode("data/zodiac.yaml", &zodiac); err != nil {
		return nil, err
	}
	if err := c.buildZodiac(zodiac); err != nil {
		return nil, err
	}
	return c, nil
}

func decode(name string, dst any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (c *catalog) buildBandTable(raw rawTable) (BandTable, error) {
	if raw.Key == "" {
		return BandTable{}, fmt.Errorf("band table without key")
	}
	if _, dup := c.bands[raw.Key]; dup {
		return BandTable{}, fmt.Errorf("duplicate band table %q", raw.Key)
	}

	table := BandTable{
		Key:          raw.Key,
		Name:         raw.Name,
		Currency:     raw.Currency,
		EligibleUpTo: raw.EligibleUpTo,
	}

	if raw.SurchargeOf != "" {
		base, ok := c.bands[raw.SurchargeOf]
		if !ok {
			return BandTable{}, fmt.Errorf("table %q: surcharge of %w %q", raw.Key, ErrUnknownTable, raw.SurchargeOf)
		}
		table.Bands = calc.Surcharge(base.Bands, raw.Surcharge)
	} else {
		lower := 0.0
		for _, b := range raw.Bands {
			upper := math.Inf(1)
			if b.UpTo != nil {
				upper = *b.UpTo
			}
			table.Bands = append(table.Bands, calc.Band{Lower: lower, Upper: upper, Rate: b.Rate})
			lower = upper
		}
	}

	if err := calc.ValidateBands(table.Bands); err != nil {
		return BandTable{}, fmt.Errorf("table %q: %w", raw.Key, err)
	}
	return table, nil
}

func (c *catalog) buildZodiac(raw rawZodiac) error {
	known := make(map[string]bool, len(raw.Signs))
	for _, s := range raw.Signs {
		var month, day int
		if _, err := fmt.Sscanf(s.Starts, "%d-%d", &month, &day); err != nil {
			return fmt.Errorf("sign %q start %q: %w", s.Name, s.Starts, err)
		}
		c.signs = append(c.signs, signStart{name: s.Name, monthDay: month*100 + day})
		known[s.Name] = true
	}
	sort.Slice(c.signs, func(i, j int) bool { return c.signs[i].monthDay < c.signs[j].monthDay })

	entries := make(map[calc.PairKey]int, len(raw.Pairs))
	for _, p := range raw.Pairs {
		if !known[p.A] || !known[p.B] {
			return fmt.Errorf("pair %s/%s: %w", p.A, p.B, ErrUnknownSign)
		}
		entries[calc.PairKey{A: p.A, B: p.B}] = p.Score
	}
	c.scores = calc.NewSymmetricTable(entries)

	for a := range known {
		for b := range known {
			if _, ok := c.scores.Lookup(a, b); !ok {
				return fmt.Errorf("missing compatibility score for %s/%s", a, b)
			}
		}
	}

	c.verdicts = raw.Verdicts
	sort.Slice(c.verdicts, func(i, j int) bool { return c.verdicts[i].Min > c.verdicts[j].Min })
	return nil
}

// Bands returns the band table registered under key.
func Bands(key string) (BandTable, error) {
	c, err := get()
	if err != nil {
		return BandTable{}, err
	}
	table, ok := c.bands[key]
	if !ok {
		return BandTable{}, fmt.Errorf("%w %q", ErrUnknownTable, key)
	}
	table.Bands = append([]calc.Band(nil), table.Bands...)
	return table, nil
}

// BandKeys lists the band tables in declaration order.
func BandKeys() []string {
	c, err := get()
	if err != nil {
		return nil
	}
	return append([]string(nil), c.keys...)
}

// Compatibility scores two signs on a 0-100 scale. Sign names are matched
// case-insensitively.
func Compatibility(a, b string) (int, error) {
	c, err := get()
	if err != nil {
		return 0, err
	}
	a, b = normalizeSign(a), normalizeSign(b)
	score, ok := c.scores.Lookup(a, b)
	if !ok {
		return 0, fmt.Errorf("%w: %q/%q", ErrUnknownSign, a, b)
	}
	return score, nil
}

// Verdict labels a compatibility score.
func Verdict(score int) string {
	c, err := get()
	if err != nil {
		return ""
	}
	for _, v := range c.verdicts {
		if score >= v.Min {
			return v.Label
		}
	}
	return ""
}

// Signs lists the known sign names ordered by start date.
func Signs() []string {
	c, err := get()
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(c.signs))
	for _, s := range c.signs {
		out = append(out, s.name)
	}
	return out
}

// SignForDate returns the sun sign for a birth date.
func SignForDate(t time.Time) string {
	c, err := get()
	if err != nil || len(c.signs) == 0 {
		return ""
	}
	md := int(t.Month())*100 + t.Day()
	// Early January belongs to the sign that started the previous December.
	sign := c.signs[len(c.signs)-1].name
	for _, s := range c.signs {
		if md >= s.monthDay {
			sign = s.name
		}
	}
	return sign
}

func normalizeSign(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
