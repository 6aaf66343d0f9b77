package geo

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/roadpath/core"
)

// EarthRadius is the mean Earth radius in metres (IUGG).
const EarthRadius = 6371008.8

// ErrUnknownMetric indicates an unsupported metric name.
var ErrUnknownMetric = errors.New("geo: unknown metric")

// Metric names an edge-weight function.
type Metric string

const (
	// MetricHaversine weighs edges by great-circle length in metres.
	MetricHaversine Metric = "haversine"

	// MetricPlanar weighs edges by Euclidean length in degrees.
	MetricPlanar Metric = "planar"
)

// ParseMetric converts a case-insensitive name into a Metric.
func ParseMetric(s string) (Metric, error) {
	switch m := Metric(strings.ToLower(strings.TrimSpace(s))); m {
	case MetricHaversine, MetricPlanar:
		return m, nil
	}

	return "", fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownMetric, s, MetricHaversine, MetricPlanar)
}

// WeightFunc returns the core.WeightFunc implementing m.
func (m Metric) WeightFunc() (core.WeightFunc, error) {
	switch m {
	case MetricHaversine:
		return Haversine, nil
	case MetricPlanar:
		return Planar, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, string(m))
}

// Unit returns a short unit label for distances measured with m.
func (m Metric) Unit() string {
	if m == MetricHaversine {
		return "m"
	}

	return "°"
}

// Haversine returns the great-circle distance between a and b in metres.
func Haversine(a, b core.Node) float64 {
	lat1, lat2 := radians(a.Lat), radians(b.Lat)
	dLat := lat2 - lat1
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadius * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Planar returns the Euclidean distance between a and b in degrees.
func Planar(a, b core.Node) float64 {
	return math.Hypot(b.Lon-a.Lon, b.Lat-a.Lat)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
