package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Engine holds the settings of a conversion engine.
type Engine struct {
	// Locale is the default locale for symbols and messages.
	Locale string `env:"FORMCONV_LOCALE" envDefault:"en"`
	// TwoDigitYearStart fixes the first year of the two-digit year window.
	// Zero selects the sliding window around the current year.
	TwoDigitYearStart int `env:"FORMCONV_TWO_DIGIT_YEAR_START" envDefault:"0"`
	// TZOffsetMinutes is the fixed zone offset applied to date converters,
	// for example "-300". Empty uses the local zone.
	TZOffsetMinutes string `env:"FORMCONV_TZ_OFFSET_MINUTES"`
	// CatalogPath is a message catalog file or directory layered over the
	// built-in catalog.
	CatalogPath string `env:"FORMCONV_CATALOG_PATH"`
	// SymbolsPath is a YAML or JSON file with extra locale symbol tables.
	SymbolsPath string `env:"FORMCONV_SYMBOLS_PATH"`
	// CacheSize bounds the number of compiled date converters kept.
	CacheSize int `env:"FORMCONV_CACHE_SIZE" envDefault:"128"`

	Env       string `env:"FORMCONV_ENV" envDefault:"development"`
	LogLevel  string `env:"FORMCONV_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FORMCONV_LOG_FORMAT" envDefault:"text"`
}

// DefaultEngine returns the settings used when nothing is configured.
func DefaultEngine() Engine {
	return Engine{
		Locale:    "en",
		CacheSize: 128,
		Env:       "development",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadEngine reads Engine from the environment and validates it.
func LoadEngine() (Engine, error) {
	var cfg Engine
	if err := Load(&cfg); err != nil {
		return Engine{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Engine{}, err
	}
	return cfg, nil
}

// Offset parses TZOffsetMinutes. It returns nil when no offset is set.
func (c Engine) Offset() (*int, error) {
	s := strings.TrimSpace(c.TZOffsetMinutes)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, "+"))
	if err != nil {
		return nil, fmt.Errorf("%w: FORMCONV_TZ_OFFSET_MINUTES %q", ErrInvalidValue, c.TZOffsetMinutes)
	}
	if n < -18*60 || n > 18*60 {
		return nil, fmt.Errorf("%w: FORMCONV_TZ_OFFSET_MINUTES %d is outside +/-1080", ErrInvalidValue, n)
	}
	return &n, nil
}

// Validate checks values the environment parser cannot.
func (c Engine) Validate() error {
	if c.CacheSize <= 0 {
		return fmt.Errorf("%w: FORMCONV_CACHE_SIZE must be positive, got %d", ErrInvalidValue, c.CacheSize)
	}
	if c.TwoDigitYearStart < 0 {
		return fmt.Errorf("%w: FORMCONV_TWO_DIGIT_YEAR_START must not be negative, got %d", ErrInvalidValue, c.TwoDigitYearStart)
	}
	if strings.TrimSpace(c.Locale) == "" {
		return fmt.Errorf("%w: FORMCONV_LOCALE is empty", ErrInvalidValue)
	}
	_, err := c.Offset()
	return err
}
