package security

import (
	"net"
	"net/http"
	"strings"
)

// ProxyConfig says whether forwarding headers can be believed.
type ProxyConfig struct {
	// Trust enables X-Forwarded-For and X-Real-IP. Leave it off unless the
	// service only receives traffic through a reverse proxy you run.
	Trust bool

	// TrustedCount is the number of proxies appended to X-Forwarded-For by
	// your own infrastructure. Zero means one.
	TrustedCount int
}

// ClientIP returns the client address for r under this configuration.
func (p ProxyConfig) ClientIP(r *http.Request) string {
	return GetClientIP(r, p.Trust, p.TrustedCount)
}

// GetClientIP extracts the client IP address from the request. Proxy headers
// are read only when trustProxy is set, and only values that parse as an IP
// are accepted; otherwise the peer address is used.
//
// X-Forwarded-For reads "client, proxy1, proxy2"; the rightmost
// trustedProxyCount entries are our own proxies and are skipped.
func GetClientIP(r *http.Request, trustProxy bool, trustedProxyCount int) string {
	if trustProxy {
		if ip := ipFromXFF(r.Header.Get("X-Forwarded-For"), trustedProxyCount); ip != "" {
			return ip
		}
		if ip := ipFromXRealIP(r.Header.Get("X-Real-IP")); ip != "" {
			return ip
		}
	}
	return ipFromRemoteAddr(r.RemoteAddr)
}

func ipFromXFF(xff string, trustedProxyCount int) string {
	if xff == "" {
		return ""
	}

	ips := strings.Split(xff, ",")
	clientIP := strings.TrimSpace(ips[clientIPIndex(len(ips), trustedProxyCount)])
	if net.ParseIP(clientIP) != nil {
		return clientIP
	}
	return ""
}

// clientIPIndex is len(ips)-proxies-1, clamped to the leftmost entry.
func clientIPIndex(numIPs, trustedProxyCount int) int {
	proxies := trustedProxyCount
	if proxies <= 0 {
		proxies = 1
	}

	index := numIPs - proxies - 1
	if index < 0 {
		return 0
	}
	return index
}

func ipFromXRealIP(xri string) string {
	xri = strings.TrimSpace(xri)
	if net.ParseIP(xri) != nil {
		return xri
	}
	return ""
}

func ipFromRemoteAddr(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
