package seq

import (
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"
)

// Sequence is an ordered list of coordinates. Coordinates may carry extra
// dimensions (Z, M), comparisons only ever look at X and Y.
type Sequence struct {
	pts []geom.Coord
}

// NewSequence wraps a coordinate slice. The slice is not copied, callers
// keep ownership of the backing data.
func NewSequence(pts []geom.Coord) (*Sequence, error) {
	if len(pts) < 2 {
		return nil, errors.Errorf("sequence needs at least 2 points, got %d", len(pts))
	}
	return &Sequence{pts: pts}, nil
}

func (s *Sequence) Size() int {
	return len(s.pts)
}

func (s *Sequence) Coord(i int) geom.Coord {
	return s.pts[i]
}

func (s *Sequence) Coords() []geom.Coord {
	return s.pts
}

// IsClosed reports whether the first point equals the last.
func (s *Sequence) IsClosed() bool {
	return Equals2D(s.pts[0], s.pts[len(s.pts)-1])
}

// Clone makes a deep copy, points included.
func (s *Sequence) Clone() *Sequence {
	pts := make([]geom.Coord, len(s.pts))
	for i, p := range s.pts {
		c := make(geom.Coord, len(p))
		copy(c, p)
		pts[i] = c
	}
	return &Sequence{pts: pts}
}

// Reverse flips the point order in place.
func (s *Sequence) Reverse() {
	for i, j := 0, len(s.pts)-1; i < j; i, j = i+1, j-1 {
		s.pts[i], s.pts[j] = s.pts[j], s.pts[i]
	}
}

// HasRepeatedPoints reports whether two consecutive points are 2D-equal.
func (s *Sequence) HasRepeatedPoints() bool {
	for i := 1; i < len(s.pts); i++ {
		if Equals2D(s.pts[i-1], s.pts[i]) {
			return true
		}
	}
	return false
}

// Equals2D compares X and Y only, ignoring extra dimensions.
func Equals2D(a, b geom.Coord) bool {
	return a[0] == b[0] && a[1] == b[1]
}

// RemoveRepeated returns a new sequence with consecutive duplicate points
// collapsed, keeping the first occurrence of each run. The input is left
// untouched and the result shares its points.
func RemoveRepeated(s *Sequence) *Sequence {
	pts := make([]geom.Coord, 0, s.Size())
	for i, p := range s.pts {
		if i > 0 && Equals2D(s.pts[i-1], p) {
			continue
		}
		pts = append(pts, p)
	}
	return &Sequence{pts: pts}
}

// IsCCW reports whether a closed sequence is traversed counter-clockwise,
// using the shoelace sum over consecutive points.
func IsCCW(s *Sequence) bool {
	sum := 0.0
	for i := 0; i < len(s.pts)-1; i++ {
		p := s.pts[i]
		next := s.pts[i+1]
		sum += (next[0] - p[0]) * (next[1] + p[1])
	}
	return sum < 0
}
