package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name              string
		remoteAddr        string
		xForwardedFor     string
		xRealIP           string
		trustProxy        bool
		trustedProxyCount int
		want              string
	}{
		{
			name:       "direct connection",
			remoteAddr: "192.0.2.10:4321",
			want:       "192.0.2.10",
		},
		{
			name:       "ipv6 direct connection",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		{
			name:          "forwarded for ignored without trust",
			remoteAddr:    "198.51.100.9:1000",
			xForwardedFor: "203.0.113.1",
			want:          "198.51.100.9",
		},
		{
			name:       "real ip ignored without trust",
			remoteAddr: "198.51.100.9:1000",
			xRealIP:    "203.0.113.1",
			want:       "198.51.100.9",
		},
		{
			name:          "forwarded for with one trusted proxy",
			remoteAddr:    "10.0.0.1:1000",
			xForwardedFor: "203.0.113.1, 10.0.0.2",
			trustProxy:    true,
			want:          "203.0.113.1",
		},
		{
			name:          "client prepended entries are skipped",
			remoteAddr:    "10.0.0.1:1000",
			xForwardedFor: "1.1.1.1, 203.0.113.1, 10.0.0.2",
			trustProxy:    true,
			want:          "203.0.113.1",
		},
		{
			name:              "two trusted proxies",
			remoteAddr:        "10.0.0.1:1000",
			xForwardedFor:     "203.0.113.1, 10.0.0.2, 10.0.0.3",
			trustProxy:        true,
			trustedProxyCount: 2,
			want:              "203.0.113.1",
		},
		{
			name:          "single entry",
			remoteAddr:    "10.0.0.1:1000",
			xForwardedFor: " 203.0.113.1 ",
			trustProxy:    true,
			want:          "203.0.113.1",
		},
		{
			name:          "invalid forwarded value falls back to peer",
			remoteAddr:    "10.0.0.1:1000",
			xForwardedFor: "not-an-ip",
			trustProxy:    true,
			want:          "10.0.0.1",
		},
		{
			name:       "real ip with trust",
			remoteAddr: "10.0.0.1:1000",
			xRealIP:    "203.0.113.7",
			trustProxy: true,
			want:       "203.0.113.7",
		},
		{
			name:       "invalid real ip falls back to peer",
			remoteAddr: "10.0.0.1:1000",
			xRealIP:    "<script>",
			trustProxy: true,
			want:       "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xForwardedFor != "" {
				req.Header.Set("X-Forwarded-For", tt.xForwardedFor)
			}
			if tt.xRealIP != "" {
				req.Header.Set("X-Real-IP", tt.xRealIP)
			}

			assert.Equal(t, tt.want, GetClientIP(req, tt.trustProxy, tt.trustedProxyCount))
			assert.Equal(t, tt.want, ProxyConfig{Trust: tt.trustProxy, TrustedCount: tt.trustedProxyCount}.ClientIP(req))
		})
	}
}
