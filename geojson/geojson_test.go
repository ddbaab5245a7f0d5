package geojson

import (
	"testing"

	"github.com/cheekybits/is"
	geojson "github.com/paulmach/go.geojson"
	geom "github.com/twpayne/go-geom"
)

func TestToGeomPolygon(t *testing.T) {
	is := is.New(t)

	in := `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}`
	g, err := geojson.UnmarshalGeometry([]byte(in))
	is.NoErr(err)

	out, err := ToGeom(g)
	is.NoErr(err)

	poly, ok := out.(*geom.Polygon)
	is.True(ok)
	is.Equal(poly.NumLinearRings(), 1)
	is.Equal(poly.LinearRing(0).Coords()[1], geom.Coord{1, 0})
}

func TestToGeomLineString(t *testing.T) {
	is := is.New(t)

	in := `{"type":"LineString","coordinates":[[0,0],[5,5],[10,0]]}`
	g, err := geojson.UnmarshalGeometry([]byte(in))
	is.NoErr(err)

	out, err := ToGeom(g)
	is.NoErr(err)

	ls, ok := out.(*geom.LineString)
	is.True(ok)
	is.Equal(ls.NumCoords(), 3)
	is.Equal(ls.Coord(2), geom.Coord{10, 0})
}

func TestToGeomCollection(t *testing.T) {
	is := is.New(t)

	in := `{"type":"GeometryCollection","geometries":[
		{"type":"Point","coordinates":[1,2]},
		{"type":"LineString","coordinates":[[0,0],[1,1]]}
	]}`
	g, err := geojson.UnmarshalGeometry([]byte(in))
	is.NoErr(err)

	out, err := ToGeom(g)
	is.NoErr(err)

	gc, ok := out.(*geom.GeometryCollection)
	is.True(ok)
	is.Equal(gc.NumGeoms(), 2)
}

func TestFeatureGeometry(t *testing.T) {
	is := is.New(t)

	in := `{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]},"properties":null}`
	f, err := geojson.UnmarshalFeature([]byte(in))
	is.NoErr(err)

	out, err := FeatureGeometry(f)
	is.NoErr(err)
	_, ok := out.(*geom.Polygon)
	is.True(ok)

	_, err = FeatureGeometry(nil)
	is.NotNil(err)
}

func TestToGeomNil(t *testing.T) {
	is := is.New(t)

	_, err := ToGeom(nil)
	is.NotNil(err)
}
