package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn", "json", "fulfillment")
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if line["message"] != "shown" || line["service"] != "fulfillment" || line["level"] != "warn" {
		t.Fatalf("unexpected line: %v", line)
	}
}

func TestNewWithWriter_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "loud", "json", "svc")
	log.Debug().Msg("debug")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at info level")
	}
}

func TestGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	r := gin.New()
	r.Use(GinLogger(NewWithWriter(&buf, "info", "json", "svc")), GinRecovery(NewWithWriter(&buf, "info", "json", "svc")))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("bad log line %q: %v", buf.String(), err)
	}
	if line["level"] != "warn" || line["path"] != "/missing" || line["status"] != float64(404) {
		t.Fatalf("unexpected line: %v", line)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", w.Code)
	}
}
