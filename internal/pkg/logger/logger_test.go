package logger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return NewFromZap(zap.New(core)), logs
}

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "socialclub.log")

	l, err := NewZapLogger(ZapConfig{Service: "commerce", Level: "debug", FilePath: path, Type: "file"}, nil)
	require.NoError(t, err)

	l.Info("hello")
	assert.Equal(t, path, l.GetFilePath())
	assert.NoError(t, l.Close())
	assert.FileExists(t, path)
}

func TestNewZapLogger_FileWithoutPath(t *testing.T) {
	_, err := NewZapLogger(ZapConfig{Level: "info", Type: "file"}, nil)
	assert.Error(t, err)
}

func TestGlobalHelpers(t *testing.T) {
	l, logs := observedLogger()
	SetGlobalLogger(l)
	t.Cleanup(func() { SetGlobalLogger(nil) })

	Info("info message", String("key", "value"))
	Warn("warn message", Int("n", 1))
	ErrorCtx(context.Background(), "error message", Err(errors.New("boom")))
	DebugCtx(context.Background(), "debug message", Bool("flag", true))

	require.Equal(t, 4, logs.Len())
	entries := logs.All()
	assert.Equal(t, "info message", entries[0].Message)
	assert.Equal(t, "value", entries[0].ContextMap()["key"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}

func TestLogHTTPRequest_Levels(t *testing.T) {
	l, logs := observedLogger()

	l.LogHTTPRequest(nil, http.MethodGet, "/payout", "127.0.0.1", "c-1", "r-1", http.StatusOK, time.Millisecond, nil)
	l.LogHTTPRequest(nil, http.MethodGet, "/payout", "127.0.0.1", "c-1", "r-2", http.StatusNotFound, time.Millisecond, nil)
	l.LogHTTPRequest(nil, http.MethodGet, "/payout", "127.0.0.1", "c-1", "r-3", http.StatusBadGateway, time.Millisecond, errors.New("upstream"))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, zap.ErrorLevel, entries[2].Level)
	assert.Equal(t, "r-3", entries[2].ContextMap()["request_id"])
}

func TestZapEchoMiddleware(t *testing.T) {
	l, logs := observedLogger()
	e := echo.New()
	e.Use(ZapEchoMiddleware(l))
	e.GET("/ping", func(c echo.Context) error {
		c.Set("customer_id", "c-42")
		return c.String(http.StatusOK, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping?x=1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "c-42", fields["customer_id"])
	assert.Equal(t, "/ping?x=1", fields["path"])
}
