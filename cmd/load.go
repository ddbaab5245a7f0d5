package cmd

import (
	"os"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"

	convert "github.com/geotopo/georelate/geojson"
	"github.com/geotopo/georelate/noding"
	"github.com/geotopo/georelate/relate"
)

func loadFeatures(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read %s", path)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to parse %s", path)
	}
	return fc, nil
}

// loadGeom reads one geometry from a GeoJSON file. Accepts a feature
// collection (first feature), a single feature or a bare geometry.
func loadGeom(path string) (geom.T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read %s", path)
	}
	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil && len(fc.Features) > 0 {
		return convert.FeatureGeometry(fc.Features[0])
	}
	if f, err := geojson.UnmarshalFeature(data); err == nil && f.Geometry != nil {
		return convert.FeatureGeometry(f)
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to parse %s", path)
	}
	return convert.ToGeom(g)
}

// nodeSections decomposes both geometries and scans every A/B string pair.
func nodeSections(ga, gb geom.T, orient bool) ([]*relate.NodeSection, error) {
	a, err := relate.NewGeometry(ga, true)
	if err != nil {
		return nil, err
	}
	b, err := relate.NewGeometry(gb, false)
	if err != nil {
		return nil, err
	}

	ssa, err := a.ExtractSegmentStrings(orient)
	if err != nil {
		return nil, err
	}
	ssb, err := b.ExtractSegmentStrings(orient)
	if err != nil {
		return nil, err
	}

	var sections []*relate.NodeSection
	for _, sa := range ssa {
		for _, sb := range ssb {
			ns, err := noding.FindNodeSections(sa, sb)
			if err != nil {
				return nil, err
			}
			sections = append(sections, ns...)
		}
	}
	return sections, nil
}
