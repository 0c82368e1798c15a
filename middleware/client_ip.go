package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the viewer's IP for geolocation and rate limiting.
// Proxy headers win over the socket address; X-Forwarded-For carries the
// original client first when the request crossed several hops.
func getClientIP(c *gin.Context) string {
	for _, header := range []string{"X-Forwarded-For", "X-Real-IP"} {
		value := c.GetHeader(header)
		if value == "" {
			continue
		}
		if first, _, found := strings.Cut(value, ","); found {
			value = first
		}
		if ip := strings.TrimSpace(value); ip != "" {
			return ip
		}
	}

	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
