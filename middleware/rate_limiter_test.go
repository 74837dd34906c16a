package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hogarlink/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func doRequest(r *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Real-IP", ip)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitHonorsConfiguredMax(t *testing.T) {
	prev := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 2
	defer func() { config.AppConfig.MaxRequestsPerMin = prev }()

	r := newLimitedRouter()

	assert.Equal(t, http.StatusOK, doRequest(r, "203.0.113.10"))
	assert.Equal(t, http.StatusOK, doRequest(r, "203.0.113.10"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "203.0.113.10"))
}

func TestRateLimitIsPerIP(t *testing.T) {
	prev := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 1
	defer func() { config.AppConfig.MaxRequestsPerMin = prev }()

	r := newLimitedRouter()

	assert.Equal(t, http.StatusOK, doRequest(r, "203.0.113.21"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "203.0.113.21"))
	assert.Equal(t, http.StatusOK, doRequest(r, "203.0.113.22"))
}

func TestClientIPResolution(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{"forwarded_for_first_hop", "198.51.100.7, 10.0.0.1", "", "10.0.0.2:1234", "198.51.100.7"},
		{"real_ip_header", "", "198.51.100.8", "10.0.0.2:1234", "198.51.100.8"},
		{"remote_addr_strips_port", "", "", "198.51.100.9:5678", "198.51.100.9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tc.remoteAddr
			if tc.forwarded != "" {
				c.Request.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if tc.realIP != "" {
				c.Request.Header.Set("X-Real-IP", tc.realIP)
			}
			assert.Equal(t, tc.want, clientIP(c))
		})
	}
}
