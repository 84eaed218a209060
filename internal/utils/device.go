package utils

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lighty7/Finances-backend/internal/models"
)

// GetDeviceInfo builds a coarse device fingerprint from the User-Agent
// header. Detection is deliberately shallow: the values feed session
// metadata and notification emails, nothing security-sensitive.
func GetDeviceInfo(c *gin.Context) models.DeviceInfo {
	userAgent := c.Request.UserAgent()

	info := models.DeviceInfo{
		UserAgent: userAgent,
		Platform:  "desktop",
		Browser:   "unknown",
	}

	if strings.Contains(userAgent, "Mobile") {
		info.Platform = "mobile"
	} else if strings.Contains(userAgent, "Tablet") {
		info.Platform = "tablet"
	} else if userAgent == "" {
		info.Platform = "unknown"
	}

	switch {
	case strings.Contains(userAgent, "Edge"):
		info.Browser = "Edge"
	case strings.Contains(userAgent, "Chrome"):
		info.Browser = "Chrome"
	case strings.Contains(userAgent, "Firefox"):
		info.Browser = "Firefox"
	case strings.Contains(userAgent, "Safari"):
		info.Browser = "Safari"
	}

	return info
}
