package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/airspace-service/internal/pkg/errors"
)

const (
	earthRadiusM   = 6371000.0
	metresPerNM    = 1852.0
	degreesPerRad  = 180.0 / math.Pi
	radiansPerDeg  = math.Pi / 180.0
	latLonLiterals = 16
)

// Point is a position in signed decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ParseLatLon decodes a fixed-width YAIXM position literal, e.g.
// "515812N 0001550W" -> (51.97, -0.263889). South and west are negative.
func ParseLatLon(literal string) (Point, error) {
	if len(literal) != latLonLiterals {
		return Point{}, malformedCoordinate(literal)
	}

	lat, err := parseAngle(literal[0:2], literal[2:4], literal[4:6])
	if err != nil {
		return Point{}, malformedCoordinate(literal)
	}
	switch literal[6] {
	case 'N':
	case 'S':
		lat = -lat
	default:
		return Point{}, malformedCoordinate(literal)
	}

	lon, err := parseAngle(literal[8:11], literal[11:13], literal[13:15])
	if err != nil {
		return Point{}, malformedCoordinate(literal)
	}
	switch literal[15] {
	case 'E':
	case 'W':
		lon = -lon
	default:
		return Point{}, malformedCoordinate(literal)
	}

	return Point{Lat: lat, Lon: lon}, nil
}

func parseAngle(deg, min, sec string) (float64, error) {
	d, err := strconv.Atoi(deg)
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(min)
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(sec)
	if err != nil {
		return 0, err
	}
	return float64(d) + float64(m)/60.0 + float64(s)/3600.0, nil
}

// ParseRadius decodes a distance literal ("5 nm", "3 km") to metres.
// The source data carries nautical miles and kilometres only; any
// non-"nm" unit token is kilometres.
func ParseRadius(literal string) (float64, error) {
	parts := strings.Fields(literal)
	if len(parts) != 2 {
		return 0, malformedDistance(literal)
	}

	dist, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, malformedDistance(literal)
	}

	if parts[1] == "nm" {
		return dist * metresPerNM, nil
	}
	return dist * 1000.0, nil
}

// MetresToNM converts metres back to nautical miles for the OpenAir DC
// record.
func MetresToNM(metres float64) float64 {
	return metres / metresPerNM
}

// Offset returns the point at the given bearing (degrees clockwise from
// north) and distance from p, using an equirectangular approximation
// with latitude-scaled longitude. Good enough at national-chart scale.
func (p Point) Offset(bearingDeg, metres float64) Point {
	theta := bearingDeg * radiansPerDeg
	angular := metres / earthRadiusM * degreesPerRad

	return Point{
		Lat: p.Lat + angular*math.Cos(theta),
		Lon: p.Lon + angular*math.Sin(theta)/math.Cos(p.Lat*radiansPerDeg),
	}
}

// Bearing returns the bearing from p to q in degrees [0, 360), on the
// same flat-earth approximation as Offset.
func (p Point) Bearing(q Point) float64 {
	dx := (q.Lon - p.Lon) * math.Cos(p.Lat*radiansPerDeg)
	dy := q.Lat - p.Lat

	b := math.Atan2(dx, dy) * degreesPerRad
	if b < 0 {
		b += 360.0
	}
	return b
}

// FormatDMS renders a point in the OpenAir DP coordinate form,
// e.g. "51:58:12 N 000:15:50 W".
func FormatDMS(p Point) string {
	latDeg, latMin, latSec := splitDMS(math.Abs(p.Lat))
	lonDeg, lonMin, lonSec := splitDMS(math.Abs(p.Lon))

	latHemi := byte('N')
	if p.Lat < 0 {
		latHemi = 'S'
	}
	lonHemi := byte('E')
	if p.Lon < 0 {
		lonHemi = 'W'
	}

	return fmt.Sprintf("%02d:%02d:%02d %c %03d:%02d:%02d %c",
		latDeg, latMin, latSec, latHemi,
		lonDeg, lonMin, lonSec, lonHemi,
	)
}

func splitDMS(degrees float64) (int, int, int) {
	total := int(math.Round(degrees * 3600.0))
	return total / 3600, (total / 60) % 60, total % 60
}

func malformedCoordinate(literal string) error {
	return errors.ErrMalformedCoordinate.WithDetails(map[string]interface{}{
		"literal": literal,
	})
}

func malformedDistance(literal string) error {
	return errors.ErrMalformedDistance.WithDetails(map[string]interface{}{
		"literal": literal,
	})
}
