package pattern_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percussion/percussioncms-sub004/pkg/locale"
	"github.com/percussion/percussioncms-sub004/pkg/pattern"
)

var (
	english = locale.English()
	sample  = time.Date(1998, time.November, 29, 15, 45, 31, 0, time.UTC)
	fixedAt = func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) }
)

func utcOptions() pattern.ParseOptions {
	return pattern.ParseOptions{Location: time.UTC, Now: fixedAt}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	t.Run("splits fields and literals", func(t *testing.T) {
		tokens := pattern.Tokenize("yyyy-MM-dd")
		require.Len(t, tokens, 5)
		assert.True(t, tokens[0].IsField('y'))
		assert.Equal(t, 4, tokens[0].Count)
		assert.Equal(t, "-", tokens[1].Text)
		assert.True(t, tokens[2].IsField('M'))
		assert.Equal(t, 2, tokens[2].Count)
		assert.True(t, tokens[4].IsField('d'))
	})

	t.Run("spans reconstruct the pattern", func(t *testing.T) {
		for _, src := range []string{
			"yyyy-MM-dd HH:mm:ss",
			"h 'o''clock' a",
			"EEE, d MMM yyyy '",
			"''dd''",
			"dd.MM.yyyy – HH:mm",
		} {
			var b strings.Builder
			for _, tok := range pattern.Tokenize(src) {
				b.WriteString(tok.Source(src))
			}
			assert.Equal(t, src, b.String())
		}
	})

	t.Run("quoted text with escaped quote", func(t *testing.T) {
		tokens := pattern.Tokenize("h 'o''clock' a")
		require.Len(t, tokens, 5)
		assert.Equal(t, pattern.KindLiteral, tokens[2].Kind)
		assert.True(t, tokens[2].Quoted)
		assert.Equal(t, "o'clock", tokens[2].Text)
	})

	t.Run("two quotes are a quote character", func(t *testing.T) {
		tokens := pattern.Tokenize("''")
		require.Len(t, tokens, 1)
		assert.Equal(t, "'", tokens[0].Text)
	})

	t.Run("unterminated quote runs to the end", func(t *testing.T) {
		tokens := pattern.Tokenize("dd 'at yyyy")
		require.Len(t, tokens, 3)
		assert.Equal(t, "at yyyy", tokens[2].Text)
	})

	t.Run("empty pattern", func(t *testing.T) {
		assert.Empty(t, pattern.Tokenize(""))
	})
}

func TestPatternRewrite(t *testing.T) {
	t.Parallel()

	p := pattern.Compile("dd-MMM-yyyy")
	assert.True(t, p.HasFieldCount('M', 3))
	assert.Equal(t, "dd-MM-yyyy", p.WithFieldCount('M', 3, 2).String())
	assert.Equal(t, "dd-M-yyyy", p.WithFieldCount('M', 3, 1).String())

	q := pattern.Compile("dd/MM/yyyy 'a/b'")
	assert.True(t, q.HasLiteral("/"))
	assert.Equal(t, "dd-MM-yyyy 'a/b'", q.ReplaceLiteral("/", "-").String())
	assert.False(t, pattern.Compile("'a/b'").HasLiteral("/"))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		value   time.Time
		want    string
	}{
		{"yyyy-MM-dd HH:mm:ss", sample, "1998-11-29 15:45:31"},
		{"EEE, d MMM yy", sample, "Sun, 29 Nov 98"},
		{"EEEE MMMM", sample, "Sunday November"},
		{"h:mm a", sample, "3:45 PM"},
		{"K:mm", sample, "3:45"},
		{"hh 'o''clock'", sample, "03 o'clock"},
		{"kk", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "24"},
		{"hh a", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "12 AM"},
		{"ss.SSS", time.Date(2024, 1, 1, 0, 0, 7, 45*int(time.Millisecond), time.UTC), "07.045"},
		{"z", sample, "GMT"},
		{"z", sample.In(time.FixedZone("", 5*3600+1800)), "GMT+05:30"},
		{"Z", sample, "+0000"},
		{"Z", sample.In(time.FixedZone("", -8*3600)), "-0800"},
		{"yyyy G", time.Date(0, 3, 1, 0, 0, 0, 0, time.UTC), "0001 BC"},
		{"yyyy G", sample, "1998 AD"},
		{"dd Q MM", sample, "29  11"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, pattern.Compile(tt.pattern).Format(tt.value, &english))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("round trips a full date time", func(t *testing.T) {
		p := pattern.Compile("yyyy-MM-dd HH:mm:ss")
		got, ok := p.Parse("1998-11-29 15:45:31", &english, utcOptions())
		require.True(t, ok)
		assert.True(t, sample.Equal(got))
	})

	t.Run("accepts leap day", func(t *testing.T) {
		got, ok := pattern.Compile("yyyy-MM-dd").Parse("2024-02-29", &english, utcOptions())
		require.True(t, ok)
		assert.Equal(t, time.February, got.Month())
		assert.Equal(t, 29, got.Day())
	})

	t.Run("rejects a date the calendar would roll over", func(t *testing.T) {
		p := pattern.Compile("yyyy-MM-dd")
		_, ok := p.Parse("2023-02-29", &english, utcOptions())
		assert.False(t, ok)
		_, ok = p.Parse("2023-13-01", &english, utcOptions())
		assert.False(t, ok)
		_, ok = p.Parse("2023-04-31", &english, utcOptions())
		assert.False(t, ok)
	})

	t.Run("rejects out of range time fields", func(t *testing.T) {
		p := pattern.Compile("HH:mm")
		_, ok := p.Parse("25:00", &english, utcOptions())
		assert.False(t, ok)
		_, ok = p.Parse("10:60", &english, utcOptions())
		assert.False(t, ok)
	})

	t.Run("rejects trailing input", func(t *testing.T) {
		_, ok := pattern.Compile("yyyy-MM-dd").Parse("2024-01-02x", &english, utcOptions())
		assert.False(t, ok)
	})

	t.Run("rejects mismatched literal", func(t *testing.T) {
		_, ok := pattern.Compile("yyyy-MM-dd").Parse("2024/01/02", &english, utcOptions())
		assert.False(t, ok)
	})

	t.Run("month names ignore case", func(t *testing.T) {
		got, ok := pattern.Compile("dd-MMM-yyyy").Parse("29-nov-1998", &english, utcOptions())
		require.True(t, ok)
		assert.Equal(t, time.November, got.Month())

		got, ok = pattern.Compile("MMMM d, yyyy").Parse("MARCH 5, 2024", &english, utcOptions())
		require.True(t, ok)
		assert.Equal(t, time.March, got.Month())
	})

	t.Run("weekday must agree with the date", func(t *testing.T) {
		p := pattern.Compile("EEE, d MMM yyyy")
		_, ok := p.Parse("Sun, 29 Nov 1998", &english, utcOptions())
		assert.True(t, ok)
		_, ok = p.Parse("Mon, 29 Nov 1998", &english, utcOptions())
		assert.False(t, ok)
	})

	t.Run("twelve hour clock", func(t *testing.T) {
		p := pattern.Compile("h:mm a")
		for input, hour := range map[string]int{
			"12:30 AM": 0,
			"12:30 PM": 12,
			"1:05 PM":  13,
			"11:59 am": 11,
		} {
			got, ok := p.Parse(input, &english, utcOptions())
			require.True(t, ok, input)
			assert.Equal(t, hour, got.Hour(), input)
		}
	})

	t.Run("hour 24 is midnight", func(t *testing.T) {
		got, ok := pattern.Compile("kk:mm").Parse("24:00", &english, utcOptions())
		require.True(t, ok)
		assert.Equal(t, 0, got.Hour())
	})

	t.Run("milliseconds", func(t *testing.T) {
		got, ok := pattern.Compile("HH:mm:ss.SSS").Parse("10:11:12.345", &english, utcOptions())
		require.True(t, ok)
		assert.Equal(t, 345*int(time.Millisecond), got.Nanosecond())
	})

	t.Run("general time zone", func(t *testing.T) {
		p := pattern.Compile("yyyy-MM-dd HH:mm z")
		got, ok := p.Parse("2024-01-02 10:00 GMT+02:00", &english, utcOptions())
		require.True(t, ok)
		_, offset := got.Zone()
		assert.Equal(t, 7200, offset)
		assert.Equal(t, 8, got.UTC().Hour())

		got, ok = p.Parse("2024-01-02 10:00 GMT", &english, utcOptions())
		require.True(t, ok)
		_, offset = got.Zone()
		assert.Equal(t, 0, offset)

		_, ok = p.Parse("2024-01-02 10:00 GMT+2", &english, utcOptions())
		assert.False(t, ok)
	})

	t.Run("rfc 822 zone", func(t *testing.T) {
		p := pattern.Compile("HH:mm Z")
		got, ok := p.Parse("10:00 -0530", &english, utcOptions())
		require.True(t, ok)
		_, offset := got.Zone()
		assert.Equal(t, -(5*3600 + 1800), offset)

		_, ok = p.Parse("10:00 +05", &english, utcOptions())
		assert.False(t, ok)
	})

	t.Run("era", func(t *testing.T) {
		got, ok := pattern.Compile("yyyy G").Parse("0001 BC", &english, utcOptions())
		require.True(t, ok)
		assert.Equal(t, 0, got.Year())

		got, ok = pattern.Compile("yyyy G").Parse("0044 bc", &english, utcOptions())
		require.True(t, ok)
		assert.Equal(t, -43, got.Year())
	})

	t.Run("year zero is rejected", func(t *testing.T) {
		_, ok := pattern.Compile("yyyy").Parse("0000", &english, utcOptions())
		assert.False(t, ok)
	})

	t.Run("uses the requested location", func(t *testing.T) {
		loc := time.FixedZone("test", 3600)
		got, ok := pattern.Compile("yyyy-MM-dd").Parse("2024-01-02", &english, pattern.ParseOptions{Location: loc})
		require.True(t, ok)
		assert.Equal(t, loc, got.Location())
	})

	t.Run("unknown letters match verbatim", func(t *testing.T) {
		p := pattern.Compile("yyyy Q")
		_, ok := p.Parse("2024 Q", &english, utcOptions())
		assert.True(t, ok)
		_, ok = p.Parse("2024 X", &english, utcOptions())
		assert.False(t, ok)
	})

	t.Run("localized names", func(t *testing.T) {
		german := locale.German()
		got, ok := pattern.Compile("d. MMMM yyyy").Parse("3. März 2024", &german, utcOptions())
		require.True(t, ok)
		assert.Equal(t, time.March, got.Month())
	})
}

func TestParseYear(t *testing.T) {
	t.Parallel()

	t.Run("two digit years use a sliding window", func(t *testing.T) {
		p := pattern.Compile("MM/dd/yy")
		got, ok := p.Parse("01/02/51", &english, utcOptions())
		require.True(t, ok)
		assert.Equal(t, 1951, got.Year())

		got, ok = p.Parse("01/02/30", &english, utcOptions())
		require.True(t, ok)
		assert.Equal(t, 2030, got.Year())
	})

	t.Run("two digit years honour an explicit start", func(t *testing.T) {
		opts := utcOptions()
		opts.TwoDigitYearStart = 1950
		p := pattern.Compile("yy")

		got, ok := p.Parse("49", &english, opts)
		require.True(t, ok)
		assert.Equal(t, 2049, got.Year())

		got, ok = p.Parse("50", &english, opts)
		require.True(t, ok)
		assert.Equal(t, 1950, got.Year())
	})

	t.Run("short pattern accepts a full year", func(t *testing.T) {
		got, ok := pattern.Compile("dd.MM.yy").Parse("29.11.1998", &english, utcOptions())
		require.True(t, ok)
		assert.Equal(t, 1998, got.Year())
	})

	t.Run("short pattern rejects three digits", func(t *testing.T) {
		_, ok := pattern.Compile("yy").Parse("024", &english, utcOptions())
		assert.False(t, ok)
	})

	t.Run("four letter pattern rejects three digits", func(t *testing.T) {
		_, ok := pattern.Compile("yyyy").Parse("024", &english, utcOptions())
		assert.False(t, ok)
	})
}

func TestExpandTwoDigitYear(t *testing.T) {
	t.Parallel()

	now := fixedAt()
	assert.Equal(t, 1951, pattern.ExpandTwoDigitYear(51, 0, now))
	assert.Equal(t, 2043, pattern.ExpandTwoDigitYear(43, 0, now))
	assert.Equal(t, 1944, pattern.ExpandTwoDigitYear(44, 0, now))
	assert.Equal(t, 2000, pattern.ExpandTwoDigitYear(0, 1950, now))
	assert.Equal(t, 1999, pattern.ExpandTwoDigitYear(99, 1950, now))
}

func TestFormatParseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		"yyyy-MM-dd'T'HH:mm:ss.SSSZ",
		"EEEE, MMMM d, yyyy h:mm:ss a z",
		"dd.MM.yyyy HH:mm",
	} {
		t.Run(src, func(t *testing.T) {
			p := pattern.Compile(src)
			in := time.Date(2021, time.July, 14, 9, 5, 0, 0, time.UTC)
			got, ok := p.Parse(p.Format(in, &english), &english, utcOptions())
			require.True(t, ok)
			assert.True(t, in.Equal(got), "got %v", got)
		})
	}
}
