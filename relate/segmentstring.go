package relate

import (
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"

	"github.com/geotopo/georelate/seq"
)

// Dimension classifies a segment string as linear or areal.
type Dimension int

const (
	DimensionLine Dimension = 1
	DimensionArea Dimension = 2
)

const (
	// RingNone is the ring id of a segment string that is not a polygon ring.
	RingNone = -1
	// RingShell is the ring id of a polygon exterior ring. Holes are
	// numbered from 1.
	RingShell = 0

	// IndexUnknown marks a segment index that is not known to the caller.
	// Only nextVertex accepts it, for the two-point special rule; every
	// other entry point requires a concrete index.
	IndexUnknown = -1
)

// SegmentString is a list of coordinates read as Size()-1 consecutive
// segments, tagged with its topological provenance: which input geometry it
// belongs to, whether it is a line or a polygon ring, which element and
// ring of that geometry it is, and the polygon it bounds if areal.
//
// The caller-supplied sequence is never mutated. When normalization changes
// the data, a derived copy is installed and used for all further reads.
type SegmentString struct {
	orig  *seq.Sequence
	store *seq.Sequence // set once normalization changes the data

	isA       bool
	dim       Dimension
	elementID int
	ringID    int
	polygonal geom.T
	parent    *Geometry
}

// CreateLine builds a linear segment string. With orient set, consecutive
// duplicate points are collapsed up front.
func CreateLine(s *seq.Sequence, isA bool, elementID int, parent *Geometry, orient bool) (*SegmentString, error) {
	return createSegmentString(s, isA, DimensionLine, elementID, RingNone, nil, parent, orient)
}

// CreateRing builds an areal segment string for one ring of poly. With
// orient set, the ring is deduplicated and oriented so the polygon interior
// lies to the right of traversal: shells clockwise, holes counter-clockwise.
func CreateRing(s *seq.Sequence, isA bool, elementID, ringID int, poly geom.T, parent *Geometry, orient bool) (*SegmentString, error) {
	return createSegmentString(s, isA, DimensionArea, elementID, ringID, poly, parent, orient)
}

func createSegmentString(s *seq.Sequence, isA bool, dim Dimension, elementID, ringID int, poly geom.T, parent *Geometry, orient bool) (*SegmentString, error) {
	if s == nil {
		return nil, errors.New("segment string needs a sequence")
	}
	if s.Size() < 2 {
		return nil, errors.Errorf("segment string needs at least 2 points, got %d", s.Size())
	}
	ss := &SegmentString{
		orig:      s,
		isA:       isA,
		dim:       dim,
		elementID: elementID,
		ringID:    ringID,
		polygonal: poly,
		parent:    parent,
	}
	if orient {
		if dim == DimensionArea {
			ss.OrientAndRemoveRepeated(ringID == RingShell)
		} else {
			ss.RemoveRepeated()
		}
	}
	return ss, nil
}

func (ss *SegmentString) IsA() bool {
	return ss.isA
}

func (ss *SegmentString) Geometry() *Geometry {
	return ss.parent
}

func (ss *SegmentString) Polygonal() geom.T {
	return ss.polygonal
}

func (ss *SegmentString) Dimension() Dimension {
	return ss.dim
}

func (ss *SegmentString) ElementID() int {
	return ss.elementID
}

func (ss *SegmentString) RingID() int {
	return ss.ringID
}

// sequence is the active coordinate buffer: the normalized copy when one
// was made, the caller's original otherwise.
func (ss *SegmentString) sequence() *seq.Sequence {
	if ss.store != nil {
		return ss.store
	}
	return ss.orig
}

func (ss *SegmentString) Size() int {
	return ss.sequence().Size()
}

func (ss *SegmentString) Coordinate(i int) geom.Coord {
	return ss.sequence().Coord(i)
}

func (ss *SegmentString) IsClosed() bool {
	return ss.sequence().IsClosed()
}

// CreateNodeSection snapshots the local topology at an intersection point
// known to lie on segment segIndex. Once the string is normalized this is a
// pure read and safe to call from concurrent readers.
func (ss *SegmentString) CreateNodeSection(segIndex int, intPt geom.Coord) (*NodeSection, error) {
	if err := ss.checkSegmentIndex(segIndex); err != nil {
		return nil, err
	}
	c0 := ss.Coordinate(segIndex)
	c1 := ss.Coordinate(segIndex + 1)
	atVertex := seq.Equals2D(intPt, c0) || seq.Equals2D(intPt, c1)
	return &NodeSection{
		isA:       ss.isA,
		dim:       ss.dim,
		elementID: ss.elementID,
		ringID:    ss.ringID,
		polygonal: ss.polygonal,
		atVertex:  atVertex,
		prev:      ss.prevVertex(segIndex, intPt),
		pt:        intPt,
		next:      ss.nextVertex(segIndex, intPt),
	}, nil
}

// prevVertex finds the vertex before pt, which lies on segment segIndex.
// Returns nil at the start vertex of an open string.
func (ss *SegmentString) prevVertex(segIndex int, pt geom.Coord) geom.Coord {
	segStart := ss.Coordinate(segIndex)
	if !seq.Equals2D(segStart, pt) {
		return segStart
	}

	// pt is at the segment start, step back one vertex
	if segIndex > 0 {
		return ss.Coordinate(segIndex - 1)
	}

	if ss.IsClosed() {
		return ss.prevInRing(segIndex)
	}

	return nil
}

// nextVertex finds the vertex after pt, which lies on segment segIndex.
// segIndex may be IndexUnknown for a two-point string, which then wraps
// onto its own first vertex even when open. Returns nil at the end vertex
// of an open string.
func (ss *SegmentString) nextVertex(segIndex int, pt geom.Coord) geom.Coord {
	segEnd := ss.Coordinate(segIndex + 1)
	if !seq.Equals2D(segEnd, pt) {
		return segEnd
	}

	// pt is at the segment end, step forward one vertex
	if ss.Size() == 2 && segIndex == IndexUnknown {
		return ss.Coordinate(0)
	}

	if segIndex < ss.Size()-2 {
		return ss.Coordinate(segIndex + 2)
	}

	if ss.IsClosed() {
		return ss.nextInRing(segIndex + 1)
	}

	return nil
}

// prevInRing wraps backwards past the ring start, skipping the duplicated
// closing point.
func (ss *SegmentString) prevInRing(index int) geom.Coord {
	prev := index - 1
	if prev < 0 {
		prev = ss.Size() - 2
	}
	return ss.Coordinate(prev)
}

// nextInRing wraps forwards past the ring end, skipping the duplicated
// closing point.
func (ss *SegmentString) nextInRing(index int) geom.Coord {
	next := index + 1
	if next > ss.Size()-1 {
		next = 1
	}
	return ss.Coordinate(next)
}

// IsSegmentOwnerOfPoint decides whether segment segIndex is responsible for
// emitting topology at pt, so that a vertex shared by two consecutive
// segments is processed exactly once. A segment always owns its start
// vertex and any interior point, and owns its end vertex only when it is
// the final segment of an open string.
func (ss *SegmentString) IsSegmentOwnerOfPoint(segIndex int, pt geom.Coord) (bool, error) {
	if err := ss.checkSegmentIndex(segIndex); err != nil {
		return false, err
	}
	if seq.Equals2D(pt, ss.Coordinate(segIndex)) {
		return true, nil
	}
	if seq.Equals2D(pt, ss.Coordinate(segIndex+1)) {
		isFinal := segIndex == ss.Size()-2
		if ss.IsClosed() || !isFinal {
			// the following segment owns it as its start
			return false, nil
		}
		// terminal endpoint of an open string, nothing follows to claim it
		return true, nil
	}
	return true, nil
}

func (ss *SegmentString) checkSegmentIndex(segIndex int) error {
	if segIndex < 0 || segIndex > ss.Size()-2 {
		return errors.Errorf("segment index %d out of range [0, %d]", segIndex, ss.Size()-2)
	}
	return nil
}

// OrientAndRemoveRepeated conditions a ring: collapses consecutive
// duplicate points and forces the traversal order to match orientCW.
// Already-conditioned strings are left untouched, so a second call with the
// same argument changes nothing. Must not run concurrently with reads.
func (ss *SegmentString) OrientAndRemoveRepeated(orientCW bool) {
	s := ss.sequence()
	isFlipped := orientCW == seq.IsCCW(s)
	hasRepeated := s.HasRepeatedPoints()
	if !isFlipped && !hasRepeated {
		return
	}

	if hasRepeated {
		ss.store = seq.RemoveRepeated(s)
		if isFlipped {
			ss.store.Reverse()
		}
		return
	}

	ss.store = s.Clone()
	ss.store.Reverse()
}

// RemoveRepeated collapses consecutive duplicate points, for strings where
// orientation is immaterial. No-op when there are none.
func (ss *SegmentString) RemoveRepeated() {
	s := ss.sequence()
	if !s.HasRepeatedPoints() {
		return
	}
	ss.store = seq.RemoveRepeated(s)
}
