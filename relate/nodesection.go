package relate

import (
	"fmt"
	"strings"

	geom "github.com/twpayne/go-geom"
)

// NodeSection is a snapshot of the local topology at one intersection point
// on one segment string: the provenance of the owning string plus the
// vertices on either side of the intersection. The coordinate references
// point into the owning string's active buffer and must not outlive it.
//
// Prev and Next are nil at the open ends of a line.
type NodeSection struct {
	isA       bool
	dim       Dimension
	elementID int
	ringID    int
	polygonal geom.T
	atVertex  bool
	prev      geom.Coord
	pt        geom.Coord
	next      geom.Coord
}

func (n *NodeSection) IsA() bool {
	return n.isA
}

func (n *NodeSection) Dimension() Dimension {
	return n.dim
}

func (n *NodeSection) ElementID() int {
	return n.elementID
}

func (n *NodeSection) RingID() int {
	return n.ringID
}

func (n *NodeSection) Polygonal() geom.T {
	return n.polygonal
}

// IsNodeAtVertex reports whether the intersection lands exactly on one of
// the owning string's vertices.
func (n *NodeSection) IsNodeAtVertex() bool {
	return n.atVertex
}

func (n *NodeSection) Prev() geom.Coord {
	return n.prev
}

func (n *NodeSection) Point() geom.Coord {
	return n.pt
}

func (n *NodeSection) Next() geom.Coord {
	return n.next
}

// Compare orders sections by provenance (geometry, dimension, element,
// ring) and then by intersection point, so a topology graph builder can
// group sections for the same node deterministically. Sections comparing
// equal describe the same event.
func (n *NodeSection) Compare(o *NodeSection) int {
	if n.isA != o.isA {
		if n.isA {
			return -1
		}
		return 1
	}
	if c := compareInt(int(n.dim), int(o.dim)); c != 0 {
		return c
	}
	if c := compareInt(n.elementID, o.elementID); c != 0 {
		return c
	}
	if c := compareInt(n.ringID, o.ringID); c != 0 {
		return c
	}
	if c := compareFloat(n.pt[0], o.pt[0]); c != 0 {
		return c
	}
	return compareFloat(n.pt[1], o.pt[1])
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (n *NodeSection) String() string {
	var b strings.Builder
	if n.isA {
		b.WriteString("A:")
	} else {
		b.WriteString("B:")
	}
	if n.dim == DimensionArea {
		b.WriteString("A")
	} else {
		b.WriteString("L")
	}
	fmt.Fprintf(&b, " e%d", n.elementID)
	if n.ringID != RingNone {
		fmt.Fprintf(&b, " r%d", n.ringID)
	}
	b.WriteString(" ")
	writeCoord(&b, n.prev)
	b.WriteString(" > ")
	writeCoord(&b, n.pt)
	if n.atVertex {
		b.WriteString("(v)")
	}
	b.WriteString(" > ")
	writeCoord(&b, n.next)
	return b.String()
}

func writeCoord(b *strings.Builder, c geom.Coord) {
	if c == nil {
		b.WriteString("-")
		return
	}
	fmt.Fprintf(b, "(%g %g)", c[0], c[1])
}
