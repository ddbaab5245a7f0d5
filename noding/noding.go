package noding

import (
	"math"
	"sort"

	"github.com/golang/geo/r2"
	geom "github.com/twpayne/go-geom"

	"github.com/geotopo/georelate/relate"
	"github.com/geotopo/georelate/seq"
)

// segmentRect is the axis-aligned envelope of segment i of ss.
func segmentRect(ss *relate.SegmentString, i int) r2.Rect {
	a := ss.Coordinate(i)
	b := ss.Coordinate(i + 1)
	return r2.RectFromPoints(r2.Point{X: a[0], Y: a[1]}, r2.Point{X: b[0], Y: b[1]})
}

// orientationIndex returns 1 when q lies to the left of p1->p2, -1 to the
// right, 0 when collinear.
func orientationIndex(p1, p2, q geom.Coord) int {
	det := (p2[0]-p1[0])*(q[1]-p1[1]) - (p2[1]-p1[1])*(q[0]-p1[0])
	switch {
	case det > 0:
		return 1
	case det < 0:
		return -1
	}
	return 0
}

// Intersect computes the intersection of segments [a,b] and [c,d]. It
// returns no points when they are disjoint, one point for a proper or
// endpoint intersection, and the two overlap endpoints when the segments
// are collinear and overlap.
func Intersect(a, b, c, d geom.Coord) []geom.Coord {
	o1 := orientationIndex(a, b, c)
	o2 := orientationIndex(a, b, d)

	if o1 == 0 && o2 == 0 {
		return collinearOverlap(a, b, c, d)
	}

	o3 := orientationIndex(c, d, a)
	o4 := orientationIndex(c, d, b)

	if o1*o2 > 0 || o3*o4 > 0 {
		return nil
	}

	// endpoint touches, no division needed
	switch {
	case o1 == 0:
		return []geom.Coord{c}
	case o2 == 0:
		return []geom.Coord{d}
	case o3 == 0:
		return []geom.Coord{a}
	case o4 == 0:
		return []geom.Coord{b}
	}

	return []geom.Coord{lineIntersection(a, b, c, d)}
}

func lineIntersection(a, b, c, d geom.Coord) geom.Coord {
	rx, ry := b[0]-a[0], b[1]-a[1]
	sx, sy := d[0]-c[0], d[1]-c[1]
	denom := rx*sy - ry*sx
	t := ((c[0]-a[0])*sy - (c[1]-a[1])*sx) / denom
	return geom.Coord{a[0] + t*rx, a[1] + t*ry}
}

// collinearOverlap reports the shared extent of two collinear segments,
// parameterized along the axis with the larger spread.
func collinearOverlap(a, b, c, d geom.Coord) []geom.Coord {
	axis := 0
	if math.Abs(b[1]-a[1]) > math.Abs(b[0]-a[0]) {
		axis = 1
	}
	lo1, hi1 := minmax(a, b, axis)
	lo2, hi2 := minmax(c, d, axis)
	if hi1[axis] < lo2[axis] || hi2[axis] < lo1[axis] {
		return nil
	}
	start := lo1
	if lo2[axis] > lo1[axis] {
		start = lo2
	}
	end := hi1
	if hi2[axis] < hi1[axis] {
		end = hi2
	}
	if seq.Equals2D(start, end) {
		return []geom.Coord{start}
	}
	return []geom.Coord{start, end}
}

func minmax(p, q geom.Coord, axis int) (geom.Coord, geom.Coord) {
	if p[axis] <= q[axis] {
		return p, q
	}
	return q, p
}

// FindNodeSections runs an envelope-filtered scan over all segment pairs of
// two strings and returns the node sections at every intersection, sorted.
// A vertex intersection is reported once per string, by the segment that
// owns the vertex; sections for the same string at the same point are
// merged.
func FindNodeSections(ssA, ssB *relate.SegmentString) ([]*relate.NodeSection, error) {
	var sections []*relate.NodeSection
	for i := 0; i < ssA.Size()-1; i++ {
		ra := segmentRect(ssA, i)
		for j := 0; j < ssB.Size()-1; j++ {
			if !ra.Intersects(segmentRect(ssB, j)) {
				continue
			}
			pts := Intersect(ssA.Coordinate(i), ssA.Coordinate(i+1),
				ssB.Coordinate(j), ssB.Coordinate(j+1))
			for _, pt := range pts {
				var err error
				sections, err = appendOwned(sections, ssA, i, pt)
				if err != nil {
					return nil, err
				}
				sections, err = appendOwned(sections, ssB, j, pt)
				if err != nil {
					return nil, err
				}
			}
		}
	}
	return mergeSections(sections), nil
}

func appendOwned(sections []*relate.NodeSection, ss *relate.SegmentString, segIndex int, pt geom.Coord) ([]*relate.NodeSection, error) {
	owns, err := ss.IsSegmentOwnerOfPoint(segIndex, pt)
	if err != nil {
		return nil, err
	}
	if !owns {
		return sections, nil
	}
	n, err := ss.CreateNodeSection(segIndex, pt)
	if err != nil {
		return nil, err
	}
	return append(sections, n), nil
}

func mergeSections(sections []*relate.NodeSection) []*relate.NodeSection {
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Compare(sections[j]) < 0
	})
	out := sections[:0]
	for i, n := range sections {
		if i > 0 && n.Compare(sections[i-1]) == 0 {
			continue
		}
		out = append(out, n)
	}
	return out
}
