package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// envelope mirrors apiResponse with raw data for per-test decoding
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Cod     int             `json:"cod"`
	Success bool            `json:"success"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "response should be valid JSON")
	return resp
}
