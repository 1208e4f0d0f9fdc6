package services

import (
	"testing"

	"IsletmeBulucu/models"

	"github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		in   string
		want models.GeoLocation
		ok   bool
	}{
		{"40.9876, 29.0281", models.GeoLocation{Latitude: 40.9876, Longitude: 29.0281}, true},
		{"-90,180", models.GeoLocation{Latitude: -90, Longitude: 180}, true},
		{"91,0", models.GeoLocation{}, false},
		{"40.1", models.GeoLocation{}, false},
		{"north,east", models.GeoLocation{}, false},
		{"", models.GeoLocation{}, false},
		{"NaN,NaN", models.GeoLocation{}, false},
		{"41,Inf", models.GeoLocation{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseCoordinates(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestGeoHash(t *testing.T) {
	hash := GeoHash(models.GeoLocation{Latitude: 40.9876, Longitude: 29.0281})
	assert.Len(t, hash, 12)

	lat, lng := geohash.Decode(hash)
	assert.InDelta(t, 40.9876, lat, 1e-6)
	assert.InDelta(t, 29.0281, lng, 1e-6)
}
