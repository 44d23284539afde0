package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/threatlens/pkg/utils/logging"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for input, want := range cases {
		got, err := logging.ParseLogLevel(input)
		gt.NoError(t, err)
		gt.Equal(t, want, got)
	}

	_, err := logging.ParseLogLevel("verbose")
	gt.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := logging.ParseFormat("json")
	gt.NoError(t, err)
	gt.Equal(t, logging.FormatJSON, f)

	f, err = logging.ParseFormat("Console")
	gt.NoError(t, err)
	gt.Equal(t, logging.FormatConsole, f)

	_, err = logging.ParseFormat("xml")
	gt.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	t.Run("non-terminal writer gets JSON", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLogger(slog.LevelInfo, &buf)
		logger.Info("dataset loaded", "rows", 3000)

		var record map[string]any
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		gt.Equal(t, "dataset loaded", record["msg"])
		gt.Equal(t, any(float64(3000)), record["rows"])
	})

	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerWithFormat(slog.LevelWarn, &buf, logging.FormatJSON)
		logger.Info("ignored")
		gt.Equal(t, 0, buf.Len())
	})

	t.Run("console format writes text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerWithFormat(slog.LevelInfo, &buf, logging.FormatConsole)
		logger.Info("cache hit")
		gt.S(t, buf.String()).Contains("cache hit")
	})
}
