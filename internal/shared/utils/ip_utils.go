package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ExtractClientIP extracts the real client IP address from the request.
//
// Priority order:
// 1. X-Forwarded-For header (standard proxy header, takes first IP)
// 2. X-Real-IP header (nginx/cloudflare)
// 3. Direct connection RemoteAddr (fallback)
func ExtractClientIP(c *gin.Context) string {
	// X-Forwarded-For format: "client, proxy1, proxy2"
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		clientIP := strings.TrimSpace(ips[0])
		if isValidIP(clientIP) {
			return clientIP
		}
	}

	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		if isValidIP(xri) {
			return xri
		}
	}

	// RemoteAddr format: "IP:port" or "[IPv6]:port"
	remoteAddr := c.Request.RemoteAddr
	ip, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		ip = remoteAddr
	}

	if isValidIP(ip) {
		return ip
	}

	return "127.0.0.1"
}

// UserAgent returns the request's User-Agent header.
func UserAgent(c *gin.Context) string {
	return c.GetHeader("User-Agent")
}

func isValidIP(ip string) bool {
	if ip == "" {
		return false
	}
	return net.ParseIP(ip) != nil
}
