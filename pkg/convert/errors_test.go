package convert_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percussion/percussioncms-sub004/pkg/convert"
	"github.com/percussion/percussioncms-sub004/pkg/message"
)

func TestConversionError(t *testing.T) {
	t.Parallel()

	err := &convert.ConversionError{
		Kind:    convert.ErrMaximum,
		Code:    "MAXIMUM",
		Label:   "Quantity",
		Value:   "300",
		Message: message.New(message.ConverterKey("ByteConverter", "MAXIMUM"), "Quantity", "300", 127),
	}

	assert.Equal(t, `Quantity: "300": value is above the maximum`, err.Error())
	assert.ErrorIs(t, err, convert.ErrMaximum)
	assert.NotErrorIs(t, err, convert.ErrMinimum)

	wrapped := fmt.Errorf("field: %w", err)
	got, ok := convert.AsConversionError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "MAXIMUM", got.Code)

	_, ok = convert.AsConversionError(errors.New("other"))
	assert.False(t, ok)
}

func TestConversionErrorWithoutLabel(t *testing.T) {
	t.Parallel()

	err := &convert.ConversionError{Kind: convert.ErrConvert, Value: "x"}
	assert.Equal(t, `"x": value cannot be converted`, err.Error())
}
