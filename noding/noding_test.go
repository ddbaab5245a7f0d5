package noding

import (
	"testing"

	"github.com/cheekybits/is"
	geom "github.com/twpayne/go-geom"

	"github.com/geotopo/georelate/relate"
	"github.com/geotopo/georelate/seq"
)

func ring(t *testing.T, isA bool, pts ...[2]float64) *relate.SegmentString {
	coords := make([]geom.Coord, len(pts))
	for i, p := range pts {
		coords[i] = geom.Coord{p[0], p[1]}
	}
	s, err := seq.NewSequence(coords)
	if err != nil {
		t.Fatal(err)
	}
	ss, err := relate.CreateRing(s, isA, 0, relate.RingShell, nil, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	return ss
}

func line(t *testing.T, isA bool, pts ...[2]float64) *relate.SegmentString {
	coords := make([]geom.Coord, len(pts))
	for i, p := range pts {
		coords[i] = geom.Coord{p[0], p[1]}
	}
	s, err := seq.NewSequence(coords)
	if err != nil {
		t.Fatal(err)
	}
	ss, err := relate.CreateLine(s, isA, 0, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	return ss
}

func TestIntersectProper(t *testing.T) {
	is := is.New(t)

	pts := Intersect(
		geom.Coord{0, 0}, geom.Coord{10, 10},
		geom.Coord{0, 10}, geom.Coord{10, 0})
	is.Equal(len(pts), 1)
	is.Equal(pts[0], geom.Coord{5, 5})
}

func TestIntersectDisjoint(t *testing.T) {
	is := is.New(t)

	pts := Intersect(
		geom.Coord{0, 0}, geom.Coord{1, 0},
		geom.Coord{0, 1}, geom.Coord{1, 1})
	is.Equal(len(pts), 0)

	// collinear but apart
	pts = Intersect(
		geom.Coord{0, 0}, geom.Coord{1, 0},
		geom.Coord{2, 0}, geom.Coord{3, 0})
	is.Equal(len(pts), 0)

	// collinear extension of the segment, off its end
	pts = Intersect(
		geom.Coord{0, 0}, geom.Coord{1, 0},
		geom.Coord{2, 0}, geom.Coord{2, 1})
	is.Equal(len(pts), 0)
}

func TestIntersectEndpointTouch(t *testing.T) {
	is := is.New(t)

	pts := Intersect(
		geom.Coord{0, 0}, geom.Coord{10, 0},
		geom.Coord{5, 5}, geom.Coord{5, 0})
	is.Equal(len(pts), 1)
	is.Equal(pts[0], geom.Coord{5, 0})
}

func TestIntersectCollinearOverlap(t *testing.T) {
	is := is.New(t)

	pts := Intersect(
		geom.Coord{0, 0}, geom.Coord{10, 0},
		geom.Coord{5, 0}, geom.Coord{15, 0})
	is.Equal(len(pts), 2)
	is.Equal(pts[0], geom.Coord{5, 0})
	is.Equal(pts[1], geom.Coord{10, 0})

	// vertical segments overlap too
	pts = Intersect(
		geom.Coord{0, 0}, geom.Coord{0, 10},
		geom.Coord{0, 5}, geom.Coord{0, 15})
	is.Equal(len(pts), 2)

	// touching at a single shared point
	pts = Intersect(
		geom.Coord{0, 0}, geom.Coord{10, 0},
		geom.Coord{10, 0}, geom.Coord{20, 0})
	is.Equal(len(pts), 1)
	is.Equal(pts[0], geom.Coord{10, 0})
}

func TestFindNodeSectionsCrossingSquares(t *testing.T) {
	is := is.New(t)

	a := ring(t, true,
		[2]float64{0, 0}, [2]float64{0, 10}, [2]float64{10, 10},
		[2]float64{10, 0}, [2]float64{0, 0})
	b := ring(t, false,
		[2]float64{5, 5}, [2]float64{5, 15}, [2]float64{15, 15},
		[2]float64{15, 5}, [2]float64{5, 5})

	sections, err := FindNodeSections(a, b)
	is.NoErr(err)

	// two boundary crossings, one section per geometry each
	is.Equal(len(sections), 4)
	for _, n := range sections {
		is.False(n.IsNodeAtVertex())
		onCrossing := seq.Equals2D(n.Point(), geom.Coord{5, 10}) ||
			seq.Equals2D(n.Point(), geom.Coord{10, 5})
		is.True(onCrossing)
		is.NotNil(n.Prev())
		is.NotNil(n.Next())
	}

	// sorted A before B
	is.True(sections[0].IsA())
	is.False(sections[len(sections)-1].IsA())
}

func TestFindNodeSectionsSharedVertex(t *testing.T) {
	is := is.New(t)

	a := ring(t, true,
		[2]float64{0, 0}, [2]float64{0, 10}, [2]float64{10, 10},
		[2]float64{10, 0}, [2]float64{0, 0})
	b := ring(t, false,
		[2]float64{10, 10}, [2]float64{10, 20}, [2]float64{20, 20},
		[2]float64{20, 10}, [2]float64{10, 10})

	sections, err := FindNodeSections(a, b)
	is.NoErr(err)

	// the shared corner yields exactly one section per geometry
	is.Equal(len(sections), 2)
	for _, n := range sections {
		is.True(n.IsNodeAtVertex())
		is.Equal(n.Point(), geom.Coord{10, 10})
	}
	is.True(sections[0].IsA())
	is.False(sections[1].IsA())
}

func TestFindNodeSectionsDisjoint(t *testing.T) {
	is := is.New(t)

	a := line(t, true, [2]float64{0, 0}, [2]float64{1, 0})
	b := line(t, false, [2]float64{5, 5}, [2]float64{6, 5})

	sections, err := FindNodeSections(a, b)
	is.NoErr(err)
	is.Equal(len(sections), 0)
}

func TestFindNodeSectionsLineEndpointOnRing(t *testing.T) {
	is := is.New(t)

	a := line(t, true, [2]float64{-5, 5}, [2]float64{0, 5})
	b := ring(t, false,
		[2]float64{0, 0}, [2]float64{0, 10}, [2]float64{10, 10},
		[2]float64{10, 0}, [2]float64{0, 0})

	sections, err := FindNodeSections(a, b)
	is.NoErr(err)
	is.Equal(len(sections), 2)

	// the line ends at the ring boundary: its section has no successor
	lineSection := sections[0]
	is.True(lineSection.IsA())
	is.True(lineSection.IsNodeAtVertex())
	is.Equal(lineSection.Point(), geom.Coord{0, 5})
	is.Nil(lineSection.Next())
	is.Equal(lineSection.Prev(), geom.Coord{-5, 5})
}
