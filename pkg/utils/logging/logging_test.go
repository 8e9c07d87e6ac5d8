package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/flowreach/flowreach/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestFrom_FallsBackToDefault(t *testing.T) {
	logger := logging.From(context.Background())
	gt.Value(t, logger).NotNil()
}

func TestWith_CarriesLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)

	ctx := logging.With(context.Background(), logger)
	logging.From(ctx).Info("hello", "key", "value")

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	gt.Value(t, entry["msg"]).Equal("hello")
	gt.Value(t, entry["key"]).Equal("value")
}

func TestNew_MasksSecretFields(t *testing.T) {
	type creds struct {
		Token string `masq:"secret"`
		Name  string
	}

	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)
	logger.Info("configured", "creds", creds{Token: "super-secret-token", Name: "bot"})

	out := buf.String()
	gt.B(t, strings.Contains(out, "super-secret-token")).False()
	gt.B(t, strings.Contains(out, "bot")).True()
}
