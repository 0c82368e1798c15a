package utils

import (
	"fmt"
	"math"
	"time"

	"ard/models"
)

const earthRadiusKm = 6371

// Distance computes the great-circle distance in kilometers between two
// points using the haversine formula, rounded to one decimal place.
// Non-finite coordinates yield 0 rather than an error; callers must not read
// 0 as "colocated" when one side was simply unknown.
func Distance(a, b models.Coordinate) float64 {
	if !finite(a.Lat) || !finite(a.Lng) || !finite(b.Lat) || !finite(b.Lng) {
		return 0
	}

	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return math.Round(earthRadiusKm*c*10) / 10
}

// MinDistance returns the minimum distance from a viewer to any of the ad's
// listed locations. An all-locations ad still computes a real minimum over
// its listed locations; the radius filter is where the flag short-circuits.
// An empty list yields +Inf so a record with no coordinates ranks last in
// distance mode, never first.
func MinDistance(user models.Coordinate, locations []models.Location) float64 {
	min := math.Inf(1)
	for _, loc := range locations {
		if d := Distance(user, loc.Coordinate()); d < min {
			min = d
		}
	}
	return min
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// FormatDistance renders a distance for the feed card.
func FormatDistance(km float64) string {
	if km <= 0 {
		return "Nearby"
	}
	if km < 1 {
		return fmt.Sprintf("%dm away", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%gkm away", km)
}

// TimeAgo renders how long ago an epoch-millis timestamp was.
func TimeAgo(millis int64) string {
	diff := time.Since(time.UnixMilli(millis))
	if hours := int(diff.Hours()); hours > 0 {
		return fmt.Sprintf("%dh ago", hours)
	}
	if minutes := int(diff.Minutes()); minutes > 0 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	return "Just now"
}

// ExpiresIn renders the remaining lifetime of an ad.
func ExpiresIn(expiresAt int64) string {
	diff := time.Until(time.UnixMilli(expiresAt))
	if diff <= 0 {
		return "Expired"
	}
	hours := int(diff.Hours())
	minutes := int(diff.Minutes()) % 60
	return fmt.Sprintf("%dh %dm left", hours, minutes)
}
