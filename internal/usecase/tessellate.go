package usecase

import (
	"github.com/airspace-service/internal/domain"
	"github.com/airspace-service/internal/pkg/errors"
	"github.com/airspace-service/internal/pkg/geo"
)

// Angular resolution for circle and arc sampling, in degrees.
const arcStepDegrees = 1.0

// circleSteps samples per full circle at the fixed resolution.
const circleSteps = 360

// volumeOutline is the tessellated boundary of one volume: either a
// closed polygon point sequence, or a native circle when the geometry
// is a single unmodified circle (the target format has a dedicated
// record for that case).
type volumeOutline struct {
	points []geo.Point
	circle *nativeCircle
}

type nativeCircle struct {
	centre   geo.Point
	radiusNM float64
}

// tessellate converts a volume's boundary segments into one ordered
// outline in decimal degrees. A cursor is tracked across segments so
// arcs continuing from the previous segment's end resolve correctly.
func tessellate(v *domain.Volume) (*volumeOutline, error) {
	if len(v.Boundary) == 1 && v.Boundary[0].Circle != nil {
		return tessellateNativeCircle(v.Boundary[0].Circle)
	}

	var points []geo.Point
	for i := range v.Boundary {
		seg := &v.Boundary[i]
		switch {
		case seg.Line != nil:
			for _, literal := range seg.Line {
				p, err := geo.ParseLatLon(literal)
				if err != nil {
					return nil, err
				}
				points = append(points, p)
			}

		case seg.Circle != nil:
			ring, err := tessellateCircle(seg.Circle)
			if err != nil {
				return nil, err
			}
			points = append(points, ring...)

		case seg.Arc != nil:
			if len(points) == 0 {
				return nil, errors.ErrAmbiguousArcStart
			}
			arcPoints, err := tessellateArc(seg.Arc, points[len(points)-1])
			if err != nil {
				return nil, err
			}
			points = append(points, arcPoints...)

		default:
			return nil, errors.ErrDatasetDecode.WithDetails(map[string]interface{}{
				"cause": "empty boundary segment",
			})
		}
	}

	// Downstream renderers expect an explicitly closed ring.
	if len(points) > 0 && points[0] != points[len(points)-1] {
		points = append(points, points[0])
	}

	return &volumeOutline{points: points}, nil
}

func tessellateNativeCircle(c *domain.Circle) (*volumeOutline, error) {
	centre, err := geo.ParseLatLon(c.Centre)
	if err != nil {
		return nil, err
	}
	radius, err := geo.ParseRadius(c.Radius)
	if err != nil {
		return nil, err
	}
	return &volumeOutline{
		circle: &nativeCircle{centre: centre, radiusNM: geo.MetresToNM(radius)},
	}, nil
}

// tessellateCircle samples a full ring at the fixed resolution,
// starting at bearing 0, closed by repeating the first point.
func tessellateCircle(c *domain.Circle) ([]geo.Point, error) {
	centre, err := geo.ParseLatLon(c.Centre)
	if err != nil {
		return nil, err
	}
	radius, err := geo.ParseRadius(c.Radius)
	if err != nil {
		return nil, err
	}

	ring := make([]geo.Point, 0, circleSteps+1)
	for i := 0; i < circleSteps; i++ {
		ring = append(ring, centre.Offset(float64(i)*arcStepDegrees, radius))
	}
	ring = append(ring, ring[0])
	return ring, nil
}

// tessellateArc samples from the cursor's bearing to the named end
// point, sweeping in the given direction. The cursor itself is already
// part of the outline; the exact parsed end point is the final vertex.
func tessellateArc(a *domain.Arc, cursor geo.Point) ([]geo.Point, error) {
	centre, err := geo.ParseLatLon(a.Centre)
	if err != nil {
		return nil, err
	}
	radius, err := geo.ParseRadius(a.Radius)
	if err != nil {
		return nil, err
	}
	end, err := geo.ParseLatLon(a.To)
	if err != nil {
		return nil, err
	}

	from := centre.Bearing(cursor)
	to := centre.Bearing(end)

	var points []geo.Point
	if a.Dir == "cw" {
		if to <= from {
			to += 360.0
		}
		for b := from + arcStepDegrees; b < to; b += arcStepDegrees {
			points = append(points, centre.Offset(b, radius))
		}
	} else {
		if to >= from {
			to -= 360.0
		}
		for b := from - arcStepDegrees; b > to; b -= arcStepDegrees {
			points = append(points, centre.Offset(b, radius))
		}
	}

	points = append(points, end)
	return points, nil
}
