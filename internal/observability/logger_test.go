package observability_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/life-guide/internal/observability"
)

func TestLoggerFromContextAddsIDs(t *testing.T) {
	var buf bytes.Buffer
	observability.Init(&buf, slog.LevelInfo)

	ctx := observability.WithRequestID(context.Background(), "req-1")
	ctx = observability.WithSessionID(ctx, "sess-1")
	observability.LoggerFromContext(ctx).Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "sess-1", line["session_id"])
}

func TestInitRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	observability.Init(&buf, slog.LevelWarn)

	observability.Logger().Info("dropped")
	assert.Zero(t, buf.Len())

	observability.WithFields("k", "v").Warn("kept")
	assert.Contains(t, buf.String(), `"k":"v"`)
}
