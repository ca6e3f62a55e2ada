package locale

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a symbols file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForFile picks the format from a file extension.
func FormatForFile(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadFile reads a symbols file keyed by locale tag:
//
//	en:
//	  months: [January, ...]
//	  short_months: [Jan, ...]
//	  weekdays: [Sunday, ...]
//	  short_weekdays: [Sun, ...]
//	  eras: [BC, AD]
//	  ampm: [AM, PM]
//	  decimal_separator: "."
//	  grouping_separator: ","
func LoadFile(ctx context.Context, path string) (map[string]Symbols, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	format, err := FormatForFile(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(ctx, content, format)
}

// Parse decodes symbol tables from content in the given format.
func Parse(ctx context.Context, content []byte, format Format) (map[string]Symbols, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var raw map[string]symbolsFile
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, errors.Join(ErrFailedToParseFile, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, errors.Join(ErrFailedToParseFile, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no locales found", ErrFailedToParseFile)
	}

	out := make(map[string]Symbols, len(raw))
	for tag, f := range raw {
		sym, err := f.toSymbols()
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", tag, err)
		}
		out[tag] = sym
	}
	return out, nil
}

// RegisterFile loads path and registers every table it contains.
func (r *Registry) RegisterFile(ctx context.Context, path string) error {
	tables, err := LoadFile(ctx, path)
	if err != nil {
		return err
	}
	for tag, sym := range tables {
		if err := r.Register(tag, sym); err != nil {
			return err
		}
	}
	return nil
}
