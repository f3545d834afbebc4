package grid

const (
	E        = D << 1
	edgeMod  = 1 << E
	edgeMask = edgeMod - 1
)

// Edge is an unordered pair of adjacent Dots packed into a single int.
// NewEdge canonicalizes the pair so every physical edge has exactly one
// representation regardless of traversal direction.
type Edge int

// InvalidEdge is the zero value; it never names a legal edge.
const InvalidEdge Edge = 0

func NewEdge(d1, d2 Dot) Edge {
	if d1 > d2 {
		d1, d2 = d2, d1
	}
	return Edge((d1 << E) + d2)
}

func (e Edge) Dot1() Dot {
	return Dot(e) >> E
}

func (e Edge) Dot2() Dot {
	return Dot(e) & edgeMask
}

// Horizontal reports whether both endpoints share a row.
func (e Edge) Horizontal() bool {
	return e.Dot1().Row() == e.Dot2().Row()
}

func (e Edge) String() string {
	return e.Dot1().String() + " -> " + e.Dot2().String()
}
