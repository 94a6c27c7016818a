package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CorrelationIDMiddleware())
	router.GET("/id", func(c *gin.Context) { c.String(http.StatusOK, GetCorrelationID(c)) })

	cases := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "kept", incoming: "req-123", keep: true},
		{name: "missing", incoming: "", keep: false},
		{name: "too long", incoming: strings.Repeat("a", maxCorrelationIDLen+1), keep: false},
		{name: "spaces", incoming: "a b", keep: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/id", nil)
			if tc.incoming != "" {
				req.Header.Set(correlationIDHeader, tc.incoming)
			}
			router.ServeHTTP(w, req)

			got := w.Body.String()
			if got == "" || w.Header().Get(correlationIDHeader) != got {
				t.Fatalf("expected id echoed in header, body=%q header=%q", got, w.Header().Get(correlationIDHeader))
			}
			if tc.keep && got != tc.incoming {
				t.Fatalf("expected incoming id kept, got %q", got)
			}
			if !tc.keep && got == tc.incoming {
				t.Fatalf("expected regenerated id")
			}
		})
	}
}
