package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/humanbelnik/flowquest/core/internal/config"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type LoggerSuite struct {
	suite.Suite
}

func (s *LoggerSuite) TestParseLevel(t provider.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func (s *LoggerSuite) TestJSONFormat(t provider.T) {
	var buf bytes.Buffer
	l := New(&buf, config.Log{Level: "info", Format: "json"})

	l.Debug("hidden")
	l.Info("turn advanced", "round", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "turn advanced", line["msg"])
	assert.EqualValues(t, 3, line["round"])
}

func (s *LoggerSuite) TestTextFormat(t provider.T) {
	var buf bytes.Buffer
	l := New(&buf, config.Log{Level: "warn"})

	l.Info("hidden")
	l.Warn("ledger retry", "attempt", 2)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "ledger retry")
}

func (s *LoggerSuite) TestFileWriter(t provider.T) {
	path := filepath.Join(os.TempDir(), "flowquest-logger-test.log")
	defer os.Remove(path)

	w := FileWriter(path)
	l := New(w, config.Log{Format: "json"})
	l.Info("room created", "code", "ABC123")
	require.NoError(t, w.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "ABC123")
}

func TestLoggerSuite(t *testing.T) {
	suite.RunSuite(t, new(LoggerSuite))
}
