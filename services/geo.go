package services

import (
	"strconv"
	"strings"

	"IsletmeBulucu/models"

	"github.com/mmcloughlin/geohash"
)

// ParseCoordinates reads a "latitude,longitude" pair. It returns false for
// anything outside valid WGS84 ranges.
func ParseCoordinates(s string) (models.GeoLocation, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return models.GeoLocation{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return models.GeoLocation{}, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.GeoLocation{}, false
	}
	if !(lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180) {
		return models.GeoLocation{}, false
	}
	return models.GeoLocation{Latitude: lat, Longitude: lng}, true
}

// GeoHash encodes a location at the library's full precision.
func GeoHash(loc models.GeoLocation) string {
	return geohash.Encode(loc.Latitude, loc.Longitude)
}
