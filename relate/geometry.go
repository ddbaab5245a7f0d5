package relate

import (
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"

	"github.com/geotopo/georelate/seq"
)

// Geometry is one side of a relate operation: an input geometry tagged as
// the A or B operand. Segment strings extracted from it carry it as their
// shared context.
type Geometry struct {
	geom geom.T
	isA  bool
}

func NewGeometry(g geom.T, isA bool) (*Geometry, error) {
	if g == nil {
		return nil, errors.New("nil geometry")
	}
	return &Geometry{geom: g, isA: isA}, nil
}

func (g *Geometry) IsA() bool {
	return g.isA
}

func (g *Geometry) Geom() geom.T {
	return g.geom
}

// ExtractSegmentStrings decomposes the geometry into one segment string per
// line or polygon ring. Lines and polygons get sequential element ids,
// rings of one polygon share the polygon's element id and are numbered
// RingShell for the exterior and 1..n for holes. Points contribute no
// segments and are skipped. With orient set, every string is normalized at
// construction.
func (g *Geometry) ExtractSegmentStrings(orient bool) ([]*SegmentString, error) {
	var out []*SegmentString
	elementID := 0
	if err := g.extract(g.geom, orient, &elementID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Geometry) extract(t geom.T, orient bool, elementID *int, out *[]*SegmentString) error {
	switch v := t.(type) {
	case *geom.LineString:
		return g.addLine(v.Coords(), orient, elementID, out)
	case *geom.MultiLineString:
		for i := 0; i < v.NumLineStrings(); i++ {
			if err := g.addLine(v.LineString(i).Coords(), orient, elementID, out); err != nil {
				return err
			}
		}
		return nil
	case *geom.LinearRing:
		// bare ring, no enclosing polygon to reference
		s, err := seq.NewSequence(v.Coords())
		if err != nil {
			return errors.Wrapf(err, "ring %d", *elementID)
		}
		ss, err := CreateRing(s, g.isA, *elementID, RingShell, nil, g, orient)
		if err != nil {
			return err
		}
		*elementID++
		*out = append(*out, ss)
		return nil
	case *geom.Polygon:
		return g.addPolygon(v, orient, elementID, out)
	case *geom.MultiPolygon:
		for i := 0; i < v.NumPolygons(); i++ {
			if err := g.addPolygon(v.Polygon(i), orient, elementID, out); err != nil {
				return err
			}
		}
		return nil
	case *geom.GeometryCollection:
		for _, sub := range v.Geoms() {
			if err := g.extract(sub, orient, elementID, out); err != nil {
				return err
			}
		}
		return nil
	case *geom.Point, *geom.MultiPoint:
		return nil
	}
	return errors.Errorf("unsupported geometry type %T", t)
}

func (g *Geometry) addLine(pts []geom.Coord, orient bool, elementID *int, out *[]*SegmentString) error {
	s, err := seq.NewSequence(pts)
	if err != nil {
		return errors.Wrapf(err, "line %d", *elementID)
	}
	ss, err := CreateLine(s, g.isA, *elementID, g, orient)
	if err != nil {
		return err
	}
	*elementID++
	*out = append(*out, ss)
	return nil
}

func (g *Geometry) addPolygon(p *geom.Polygon, orient bool, elementID *int, out *[]*SegmentString) error {
	for ringID := 0; ringID < p.NumLinearRings(); ringID++ {
		s, err := seq.NewSequence(p.LinearRing(ringID).Coords())
		if err != nil {
			return errors.Wrapf(err, "polygon %d ring %d", *elementID, ringID)
		}
		ss, err := CreateRing(s, g.isA, *elementID, ringID, p, g, orient)
		if err != nil {
			return err
		}
		*out = append(*out, ss)
	}
	*elementID++
	return nil
}
