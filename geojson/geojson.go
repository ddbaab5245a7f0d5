package geojson

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"
)

// ToGeom converts a parsed GeoJSON geometry into its go-geom equivalent.
func ToGeom(g *geojson.Geometry) (geom.T, error) {
	if g == nil {
		return nil, errors.New("nil geometry")
	}
	switch g.Type {
	case geojson.GeometryPoint:
		return geom.NewPoint(geom.XY).SetCoords(geom.Coord(g.Point))
	case geojson.GeometryMultiPoint:
		return geom.NewMultiPoint(geom.XY).SetCoords(coords1(g.MultiPoint))
	case geojson.GeometryLineString:
		return geom.NewLineString(geom.XY).SetCoords(coords1(g.LineString))
	case geojson.GeometryMultiLineString:
		return geom.NewMultiLineString(geom.XY).SetCoords(coords2(g.MultiLineString))
	case geojson.GeometryPolygon:
		return geom.NewPolygon(geom.XY).SetCoords(coords2(g.Polygon))
	case geojson.GeometryMultiPolygon:
		return geom.NewMultiPolygon(geom.XY).SetCoords(coords3(g.MultiPolygon))
	case geojson.GeometryCollection:
		gc := geom.NewGeometryCollection()
		for _, sub := range g.Geometries {
			sg, err := ToGeom(sub)
			if err != nil {
				return nil, err
			}
			if err := gc.Push(sg); err != nil {
				return nil, err
			}
		}
		return gc, nil
	}
	return nil, errors.Errorf("unsupported geometry type %s", g.Type)
}

// FeatureGeometry converts the geometry of a GeoJSON feature.
func FeatureGeometry(f *geojson.Feature) (geom.T, error) {
	if f == nil || f.Geometry == nil {
		return nil, errors.New("feature has no geometry")
	}
	return ToGeom(f.Geometry)
}

func coords1(ps [][]float64) []geom.Coord {
	out := make([]geom.Coord, len(ps))
	for i, p := range ps {
		out[i] = geom.Coord(p)
	}
	return out
}

func coords2(ps [][][]float64) [][]geom.Coord {
	out := make([][]geom.Coord, len(ps))
	for i, p := range ps {
		out[i] = coords1(p)
	}
	return out
}

func coords3(ps [][][][]float64) [][][]geom.Coord {
	out := make([][][]geom.Coord, len(ps))
	for i, p := range ps {
		out[i] = coords2(p)
	}
	return out
}
