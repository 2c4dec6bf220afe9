package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	rq := require.New(t)

	rq.Equal(zapcore.DebugLevel, parseLevel("DEBUG"))
	rq.Equal(zapcore.WarnLevel, parseLevel(" warn "))
	rq.Equal(zapcore.InfoLevel, parseLevel("verbose"))
}

func TestNew(t *testing.T) {
	rq := require.New(t)

	logger, err := New("debug", "console")
	rq.NoError(err)
	rq.True(logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = New("error", "json")
	rq.NoError(err)
	rq.False(logger.Core().Enabled(zapcore.InfoLevel))
}

func TestGinMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rq := require.New(t)

	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	r := gin.New()
	r.Use(GinLogger(logger), GinRecovery(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	rq.Equal(http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	rq.Equal(http.StatusInternalServerError, w.Code)

	rq.Equal(1, logs.FilterMessage("[http] recovered from panic").Len())
	rq.GreaterOrEqual(logs.FilterMessage("[http] request").Len(), 2)
	rq.Nil(OrNop(nil).Check(zapcore.DebugLevel, "x"))
}
