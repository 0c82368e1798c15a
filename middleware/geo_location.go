// File: middleware/geolocation.go
package middleware

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"ard/config"
	"ard/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ViewerLocationKey is where the resolved viewer location lives in the gin
// context.
const ViewerLocationKey = "userLocation"

// ipGeo is the shape returned by the ipapi.co lookup.
type ipGeo struct {
	City      string  `json:"city"`
	Region    string  `json:"region"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// geoCache caches IP lookup results keyed by IP address.
var (
	geoCache   = make(map[string]*ipGeo)
	cacheMutex sync.RWMutex
)

// isPrivateIP checks if an IP is private or loopback.
func isPrivateIP(ip string) bool {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}
	if parsedIP.IsLoopback() {
		return true
	}
	privateIPBlocks := []*net.IPNet{
		{IP: net.IPv4(10, 0, 0, 0), Mask: net.CIDRMask(8, 32)},
		{IP: net.IPv4(172, 16, 0, 0), Mask: net.CIDRMask(12, 32)},
		{IP: net.IPv4(192, 168, 0, 0), Mask: net.CIDRMask(16, 32)},
	}
	for _, block := range privateIPBlocks {
		if block.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// lookupIP resolves an IP to coordinates via ipapi.co, caching the result.
// Private IPs and lookup failures return nil.
func lookupIP(ip string, logger *zap.Logger) *ipGeo {
	cacheMutex.RLock()
	if geo, exists := geoCache[ip]; exists {
		cacheMutex.RUnlock()
		return geo
	}
	cacheMutex.RUnlock()

	if ip == "" || isPrivateIP(ip) {
		return nil
	}

	url := fmt.Sprintf("https://ipapi.co/%s/json/", ip)
	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		logger.Warn("geolocation API query failed", zap.String("ip", ip), zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("geolocation API returned non-OK status", zap.String("ip", ip), zap.Int("status", resp.StatusCode))
		return nil
	}

	var geo ipGeo
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		logger.Warn("failed to decode geolocation response", zap.String("ip", ip), zap.Error(err))
		return nil
	}
	if geo.Latitude == 0 && geo.Longitude == 0 {
		return nil
	}

	cacheMutex.Lock()
	geoCache[ip] = &geo
	cacheMutex.Unlock()
	return &geo
}

// fallbackLocation is the configured default city used when the viewer's
// position cannot be determined. The engine never leaves the viewer location
// undefined.
func fallbackLocation() models.Location {
	return models.Location{
		Lat:   config.AppConfig.DefaultLat,
		Lng:   config.AppConfig.DefaultLng,
		City:  config.AppConfig.DefaultCity,
		State: config.AppConfig.DefaultState,
	}
}

// ViewerLocationMiddleware resolves where the viewer is, in order of trust:
// explicit lat/lng query parameters (device geolocation), then the client
// IP's geolocation, then the configured fallback city.
func ViewerLocationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()

		if latStr, lngStr := c.Query("lat"), c.Query("lng"); latStr != "" && lngStr != "" {
			lat, latErr := strconv.ParseFloat(latStr, 64)
			lng, lngErr := strconv.ParseFloat(lngStr, 64)
			if latErr == nil && lngErr == nil {
				c.Set(ViewerLocationKey, models.Location{
					Lat:   lat,
					Lng:   lng,
					City:  "Near You",
					State: "Detected",
				})
				c.Next()
				return
			}
			logger.Warn("invalid lat/lng query parameters",
				zap.String("lat", latStr), zap.String("lng", lngStr))
		}

		if geo := lookupIP(getClientIP(c), logger); geo != nil {
			c.Set(ViewerLocationKey, models.Location{
				Lat:   geo.Latitude,
				Lng:   geo.Longitude,
				City:  geo.City,
				State: geo.Region,
			})
			c.Next()
			return
		}

		c.Set(ViewerLocationKey, fallbackLocation())
		c.Next()
	}
}

// ViewerLocation extracts the resolved location from the request context.
func ViewerLocation(c *gin.Context) models.Location {
	if v, ok := c.Get(ViewerLocationKey); ok {
		if loc, ok := v.(models.Location); ok {
			return loc
		}
	}
	return fallbackLocation()
}
