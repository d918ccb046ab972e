package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofiltro/catalog/pkg/logger"
)

func TestNewDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Info("hello", slog.String("k", "v"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "v", record["k"])
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
	)

	log.Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelWarn),
	)

	log.Info("dropped")
	log.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestWithAttrAddsStaticAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "catalog-api")),
	)

	log.Info("hello")

	assert.Contains(t, buf.String(), "catalog-api")
}

func TestWithDevelopmentEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithDevelopment("catalog-api"),
		logger.WithOutput(&buf),
	)

	log.Debug("visible")

	out := buf.String()
	assert.Contains(t, out, "visible")
	assert.True(t, strings.Contains(out, "service=catalog-api"))
}

func TestWithFormatPanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}
