package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"calcdesk/domain"
	"calcdesk/locale"
	"calcdesk/repository"
)

// roundTo2Decimals rounds half away from zero to cents.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

func noResult(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrNoResult, fmt.Sprintf(format, args...))
}

// Store is what every calculator service shares: the record repository, the
// result cache and the default locale. A nil *Store is valid and does
// nothing beyond locale resolution.
type Store struct {
	records       repository.CalculationRepository
	cache         repository.CacheRepository
	ttl           time.Duration
	defaultLocale string
	logger        *zap.Logger
	now           func() time.Time
}

type StoreOption func(*Store)

// WithCache memoises results in cache for ttl.
func WithCache(cache repository.CacheRepository, ttl time.Duration) StoreOption {
	return func(s *Store) {
		s.cache = cache
		s.ttl = ttl
	}
}

// WithDefaultLocale sets the tag used when a request names no locale.
func WithDefaultLocale(tag string) StoreOption {
	return func(s *Store) {
		s.defaultLocale = locale.Lookup(tag).Tag
	}
}

func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

func NewStore(records repository.CalculationRepository, opts ...StoreOption) *Store {
	s := &Store{
		records:       records,
		cache:         repository.NopCache{},
		defaultLocale: locale.DefaultTag,
		logger:        zap.NewNop(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = repository.NopCache{}
	}
	return s
}

// Records exposes the repository for the export and share endpoints.
func (s *Store) Records() repository.CalculationRepository {
	if s == nil {
		return nil
	}
	return s.records
}

// resolveLocale picks the locale a result is rendered in. An explicit tag
// wins; otherwise the first supported locale paying in currency, then the
// configured default.
func (s *Store) resolveLocale(tag, currency string) string {
	if tag != "" {
		return locale.Lookup(tag).Tag
	}
	if currency != "" {
		for _, cfg := range locale.Supported() {
			if cfg.CurrencyCode == currency {
				return cfg.Tag
			}
		}
	}
	if s == nil {
		return locale.DefaultTag
	}
	return s.defaultLocale
}

func (s *Store) clock() time.Time {
	if s == nil || s.now == nil {
		return time.Now()
	}
	return s.now()
}

func (s *Store) log() *zap.Logger {
	if s == nil || s.logger == nil {
		return zap.NewNop()
	}
	return s.logger
}

func cacheKey(calculator string, input any) (string, bool) {
	data, err := json.Marshal(input)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("calc:%s:%016x", calculator, xxhash.Sum64(data)), true
}

// run memoises compute by input and records the fresh result. Recording and
// caching are best effort: failures are logged, never returned.
func run[T any](
	ctx context.Context,
	s *Store,
	calculator, tag string,
	input any,
	compute func() (T, error),
	setRecordID func(*T, string),
) (T, error) {
	if s == nil {
		return compute()
	}

	key, keyed := cacheKey(calculator, input)
	if keyed {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var cached T
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
			s.log().Warn("discarding unreadable cache entry", zap.String("key", key))
		}
	}

	result, err := compute()
	if err != nil {
		return result, err
	}

	if s.records != nil {
		record, err := domain.NewCalculationRecord(calculator, tag, input, result)
		if err == nil {
			err = s.records.Save(ctx, record)
		}
		if err != nil {
			s.log().Warn("failed to save calculation",
				zap.String("calculator", calculator),
				zap.Error(err))
		} else {
			setRecordID(&result, record.ID.String())
		}
	}

	if keyed {
		if data, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
				s.log().Warn("failed to cache calculation",
					zap.String("calculator", calculator),
					zap.Error(err))
			}
		}
	}
	return result, nil
}
