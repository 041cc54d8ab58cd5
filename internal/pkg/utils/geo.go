package utils

import (
	"math"
	"strconv"
)

// Привязка пиксельных координат карты кампуса UW к широте/долготе.
const (
	campusLatitude       = 47.65878405511131
	campusLatitudeOffset = 807.35188
	campusLatitudeScale  = -0.00000576766

	campusLongitude       = -122.30800012952701
	campusLongitudeOffset = 1370.6408
	campusLongitudeScale  = 0.000008533
)

// LatLng - географическая точка для Leaflet
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CampusToLatLng переводит координаты карты кампуса (x вправо, y вниз) в широту/долготу
func CampusToLatLng(x, y float64) LatLng {
	return LatLng{
		Lat: campusLatitude + (y-campusLatitudeOffset)*campusLatitudeScale,
		Lng: campusLongitude + (x-campusLongitudeOffset)*campusLongitudeScale,
	}
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// FormatCost prints a cost the way the UI shows it: no trailing zeros, "120" not "120.00".
func FormatCost(cost float64) string {
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return "0"
	}
	return strconv.FormatFloat(cost, 'f', -1, 64)
}
