package formconv_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	formconv "github.com/percussion/percussioncms-sub004"
	"github.com/percussion/percussioncms-sub004/pkg/config"
	"github.com/percussion/percussioncms-sub004/pkg/convert"
	"github.com/percussion/percussioncms-sub004/pkg/datetime"
	"github.com/percussion/percussioncms-sub004/pkg/i18n"
	"github.com/percussion/percussioncms-sub004/pkg/number"
	"github.com/percussion/percussioncms-sub004/pkg/validator"
)

var fixedNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func newEngine(t *testing.T, mutate func(*config.Engine), opts ...formconv.Option) *formconv.Engine {
	t.Helper()
	cfg := config.DefaultEngine()
	cfg.TZOffsetMinutes = "0"
	if mutate != nil {
		mutate(&cfg)
	}
	opts = append([]formconv.Option{formconv.WithClock(func() time.Time { return fixedNow })}, opts...)
	e, err := formconv.New(context.Background(), cfg, opts...)
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("invalid config", func(t *testing.T) {
		cfg := config.DefaultEngine()
		cfg.CacheSize = 0
		_, err := formconv.New(context.Background(), cfg)
		assert.ErrorIs(t, err, formconv.ErrEngineSetup)
		assert.ErrorIs(t, err, config.ErrInvalidValue)
	})

	t.Run("unsupported catalog file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "messages.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
		cfg := config.DefaultEngine()
		cfg.CatalogPath = path
		_, err := formconv.New(context.Background(), cfg)
		assert.ErrorIs(t, err, formconv.ErrUnsupportedCatalog)
	})

	t.Run("missing symbols file", func(t *testing.T) {
		cfg := config.DefaultEngine()
		cfg.SymbolsPath = filepath.Join(t.TempDir(), "absent.yaml")
		_, err := formconv.New(context.Background(), cfg)
		assert.ErrorIs(t, err, formconv.ErrEngineSetup)
	})

	t.Run("defaults", func(t *testing.T) {
		e := newEngine(t, nil)
		assert.Equal(t, "en", e.Config().Locale)
		assert.Contains(t, e.Registry().Tags(), "de")
		assert.Equal(t, []string{"de", "en"}, e.Translator().SupportedLanguages())
	})
}

func TestEngineDateTime(t *testing.T) {
	t.Parallel()
	e := newEngine(t, nil)

	t.Run("parses in the requested locale", func(t *testing.T) {
		conv, err := e.DateTime("d. MMMM yyyy", "de-AT")
		require.NoError(t, err)

		v, err := e.Convert(conv, "3. März 2024", "Start")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), v.(time.Time).UTC())
	})

	t.Run("converters are cached per pattern, locale and offset", func(t *testing.T) {
		a, err := e.DateTime("yyyy-MM-dd", "en")
		require.NoError(t, err)
		b, err := e.DateTime("yyyy-MM-dd", "en-GB")
		require.NoError(t, err)
		assert.Same(t, a, b)

		c, err := e.DateTime("yyyy-MM-dd", "en", formconv.WithOffset(60))
		require.NoError(t, err)
		assert.NotSame(t, a, c)
		offset, ok := c.Offset()
		require.True(t, ok)
		assert.Equal(t, 60, offset)

		assert.GreaterOrEqual(t, e.CacheStats().Hits, uint64(1))
	})

	t.Run("custom messages bypass the cache", func(t *testing.T) {
		a, err := e.DateTime("HH:mm", "en", formconv.WithMessages(map[string]string{"detail": "{0}: use {2}"}))
		require.NoError(t, err)
		_, err = a.Parse("noon", "Opens")
		require.Error(t, err)
		assert.Equal(t, "Opens: use 15:45", e.Describe("en", err))
		assert.Equal(t, datetime.TypeTime, a.Type())
	})

	t.Run("empty pattern", func(t *testing.T) {
		_, err := e.DateTime("", "en")
		assert.ErrorIs(t, err, formconv.ErrEmptyPattern)
	})

	t.Run("invalid locale tag", func(t *testing.T) {
		_, err := e.DateTime("yyyy", "!!")
		assert.Error(t, err)
	})
}

func TestEngineTwoDigitYear(t *testing.T) {
	t.Parallel()

	sliding := newEngine(t, nil)
	conv, err := sliding.DateTime("dd/MM/yy", "en")
	require.NoError(t, err)
	v, err := conv.Parse("01/01/50", "d")
	require.NoError(t, err)
	assert.Equal(t, 1950, v.Year())

	fixed := newEngine(t, func(c *config.Engine) { c.TwoDigitYearStart = 2000 })
	conv, err = fixed.DateTime("dd/MM/yy", "en")
	require.NoError(t, err)
	v, err = conv.Parse("01/01/50", "d")
	require.NoError(t, err)
	assert.Equal(t, 2050, v.Year())
}

func TestEngineNumber(t *testing.T) {
	t.Parallel()
	e := newEngine(t, nil)

	conv, err := e.Number(number.Integer, "en", formconv.WithMin(1), formconv.WithMax(10))
	require.NoError(t, err)

	v, err := e.Convert(conv, "7", "Qty")
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)

	_, err = e.Convert(conv, "11", "Qty")
	assert.ErrorIs(t, err, convert.ErrMaximum)
	assert.Equal(t, `Qty: "11" is greater than the allowed maximum of 10.`, e.Describe("en", err))

	_, err = e.Number(number.Byte, "en", formconv.WithMax(1000))
	assert.ErrorIs(t, err, number.ErrBoundOutOfRange)

	de, err := e.Number(number.Double, "de", formconv.WithPrecision(6, 2))
	require.NoError(t, err)
	v, err = e.Convert(de, "1.234,56", "Betrag")
	require.NoError(t, err)
	assert.InDelta(t, 1234.56, v.(float64), 1e-9)

	_, err = e.Convert(de, "1.234,567", "Betrag")
	assert.ErrorIs(t, err, convert.ErrConvert)
	assert.Equal(t, `Betrag: "1.234,567" ist keine gültige Zahl.`, e.Describe("de", err))
}

func TestEngineProcess(t *testing.T) {
	t.Parallel()
	e := newEngine(t, func(c *config.Engine) { c.Locale = "de" })

	conv, err := e.DateTime("dd.MM.yyyy", "")
	require.NoError(t, err)
	noWeekends := validator.NewDateRestriction([]string{"sat", "sun"}, nil, validator.WithFormatter(conv))

	t.Run("valid", func(t *testing.T) {
		v, err := e.Process(conv, "03.06.2024", "Lieferung", noWeekends)
		require.NoError(t, err)
		assert.Equal(t, time.Monday, v.(time.Time).Weekday())
	})

	t.Run("conversion failure is described in the configured locale", func(t *testing.T) {
		_, err := e.Process(conv, "31.02.2024", "Lieferung", noWeekends)
		require.Error(t, err)
		assert.Equal(t, `Lieferung: "31.02.2024" ist kein gültiges Datum. Beispiel: 29.11.1998`, e.Describe("", err))
	})

	t.Run("validation failure", func(t *testing.T) {
		_, err := e.Process(conv, "01.06.2024", "Lieferung", noWeekends)
		assert.ErrorIs(t, err, validator.ErrRestricted)
		assert.Equal(t, "Lieferung: 01.06.2024 fällt auf einen Samstag, der nicht zulässig ist.", e.Describe("", err))
		assert.Equal(t, "Lieferung: 01.06.2024 falls on a Samstag, which is not allowed.", e.Describe("en", err))
	})

	t.Run("blank input passes validators", func(t *testing.T) {
		v, err := e.Process(conv, "  ", "Lieferung", noWeekends)
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestEngineDescribe(t *testing.T) {
	t.Parallel()
	e := newEngine(t, nil)

	assert.Empty(t, e.Describe("en", nil))
	assert.Nil(t, e.DescribeAll("en", nil))
	assert.Equal(t, assert.AnError.Error(), e.Describe("en", assert.AnError))

	err := validator.Apply(
		validator.Check{Label: "Name", Value: "Al", Validators: []validator.Validator{
			validator.NewLength(validator.Bound(3), validator.Bound(3)),
		}},
		validator.Check{Label: "Age", Value: 200, Validators: []validator.Validator{
			validator.NewRange(validator.Bound(0.0), validator.Bound(150.0)),
		}},
	)
	require.Error(t, err)
	assert.Equal(t, []string{
		`Name: "Al" must be exactly 3 characters long.`,
		"Age: 200 is not between 0 and 150.",
	}, e.DescribeAll("en", err))
	assert.Len(t, formconv.Messages(err), 2)

	ctx := e.Translator().WithAcceptLanguage(context.Background(), "de-CH,de;q=0.9")
	assert.Equal(t, `Name: "Al" muss genau 3 Zeichen lang sein.`, e.DescribeContext(ctx, err))
	assert.Equal(t, `Name: "Al" must be exactly 3 characters long.`, e.DescribeContext(context.Background(), err))
}

func TestEngineHints(t *testing.T) {
	t.Parallel()
	e := newEngine(t, nil)

	conv, err := e.DateTime("MM/dd/yyyy", "en")
	require.NoError(t, err)

	hints := e.Hints("en", conv,
		validator.NewDateRestriction([]string{"sat", "sun"}, nil),
		validator.NewDateTimeRangeBetween(
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		),
	)
	assert.Equal(t, []string{
		"Example: 11/29/1998",
		"The following days are not allowed: Sunday, Saturday.",
		"Enter a date between 01/01/2024 and 12/31/2024.",
	}, hints)

	qty, err := e.Number(number.Integer, "de")
	require.NoError(t, err)
	assert.Equal(t, []string{"Geben Sie eine Zahl zwischen 1 und 10 ein."},
		e.Hints("de", qty, validator.NewRange(validator.Bound(1.0), validator.Bound(10.0))))
}

func TestEngineCatalogLayering(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	catalog := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte(`
en:
  org.apache.myfaces.trinidad.validator.LengthValidator.MAXIMUM: "{0} is too long (max {2})."
`), 0o600))
	symbols := filepath.Join(dir, "symbols.yaml")
	require.NoError(t, os.WriteFile(symbols, []byte(`
nl:
  months: [januari, februari, maart, april, mei, juni, juli, augustus, september, oktober, november, december]
  short_months: [jan, feb, mrt, apr, mei, jun, jul, aug, sep, okt, nov, dec]
  weekdays: [zondag, maandag, dinsdag, woensdag, donderdag, vrijdag, zaterdag]
  short_weekdays: [zo, ma, di, wo, do, vr, za]
  eras: [v.Chr., n.Chr.]
  ampm: [a.m., p.m.]
  decimal_separator: ","
  grouping_separator: "."
`), 0o600))

	var logs bytes.Buffer
	cfg := config.DefaultEngine()
	cfg.LogLevel = "debug"
	log, err := formconv.NewLogger(cfg, &logs)
	require.NoError(t, err)

	e := newEngine(t, func(c *config.Engine) {
		c.CatalogPath = catalog
		c.SymbolsPath = symbols
	}, formconv.WithLogger(log))

	_, err = e.Validate("abcdef", "Code", validator.NewLength(nil, validator.Bound(5)))
	assert.Equal(t, "Code is too long (max 5).", e.Describe("en", err))

	conv, err := e.DateTime("d MMMM yyyy", "nl")
	require.NoError(t, err)
	assert.Equal(t, "29 november 1998", conv.Example())
	assert.Contains(t, logs.String(), "date/time converter compiled")

	ctx := i18n.WithLanguage(context.Background(), "de")
	_, err = e.ProcessContext(ctx, conv, "nope", "Start")
	require.Error(t, err)
	assert.Contains(t, logs.String(), "lang=de")
}
