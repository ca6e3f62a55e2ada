package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/percussion/percussioncms-sub004/pkg/message"
)

func TestKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"org.apache.myfaces.trinidad.convert.DateTimeConverter.CONVERT_DATE",
		message.ConverterKey("DateTimeConverter", "CONVERT_DATE"))
	assert.Equal(t,
		"org.apache.myfaces.trinidad.validator.LengthValidator.MAXIMUM",
		message.ValidatorKey("LengthValidator", "MAXIMUM"))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"positional", "{0} must be at most {1}", []any{"Age", 10}, "Age must be at most 10"},
		{"repeated and reordered", "{1}/{0}/{1}", []any{"a", "b"}, "b/a/b"},
		{"missing argument kept", "{0} and {2}", []any{"x"}, "x and {2}"},
		{"non numeric braces kept", "{name} {0}", []any{"x"}, "{name} x"},
		{"unterminated brace", "{0} {", []any{"x"}, "x {"},
		{"no args", "{0}", nil, "{0}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, message.Format(tt.template, tt.args...))
		})
	}
}

func TestMessageString(t *testing.T) {
	t.Parallel()

	t.Run("without template", func(t *testing.T) {
		m := message.New("k.CODE", "Label", 3)
		assert.Equal(t, "k.CODE [Label, 3]", m.String())
		assert.Equal(t, "k.CODE", message.New("k.CODE").String())
	})

	t.Run("custom template", func(t *testing.T) {
		m := message.Overrides{message.OverrideMax: "{0} is too big"}.
			Apply(message.OverrideMax, message.New("k.MAXIMUM", "Qty", "12", 10))
		assert.True(t, m.HasTemplate())
		assert.Equal(t, "Qty is too big", m.String())
	})

	t.Run("absent override keeps the catalog key", func(t *testing.T) {
		var o message.Overrides
		m := o.Apply(message.OverrideMin, message.New("k.MINIMUM"))
		assert.False(t, m.HasTemplate())
	})
}

func TestOverridesClone(t *testing.T) {
	t.Parallel()

	o := message.Overrides{message.OverrideHint: "h"}
	c := o.Clone()
	c[message.OverrideHint] = "changed"
	assert.Equal(t, "h", o[message.OverrideHint])
	assert.Nil(t, message.Overrides(nil).Clone())
}
