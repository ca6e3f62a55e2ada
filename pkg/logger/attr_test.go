package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percussion/percussioncms-sub004/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("conv", logger.Pattern("dd/MM/yyyy"), logger.Locale("de"))
	require.Equal(t, "conv", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "pattern", g[0].Key)
	assert.Equal(t, "locale", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		key  string
		want any
	}{
		{logger.Pattern("HH:mm"), "pattern", "HH:mm"},
		{logger.Locale("fr"), "locale", "fr"},
		{logger.Label("Start"), "label", "Start"},
		{logger.MessageKey("k"), "message_key", "k"},
		{logger.Kind("Integer"), "kind", "Integer"},
		{logger.Component("engine"), "component", "engine"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.attr.Key)
		assert.Equal(t, tt.want, tt.attr.Value.Any())
	}

	assert.True(t, logger.Locale("").Equal(slog.Attr{}))
	assert.True(t, logger.Label("").Equal(slog.Attr{}))
	assert.True(t, logger.Kind(nil).Equal(slog.Attr{}))
}
