package grid

import "errors"

// Errors returned by grid operations.
var (
	ErrTooSmall    = errors.New("grid needs at least 2 rows and 2 cols")
	ErrOutOfBounds = errors.New("coordinate out of grid bounds")
	ErrInvalidEdge = errors.New("dots are not grid-adjacent")
)

// Grid is a fixed rows×cols lattice of dots. The legal edge set is
// enumerated once at construction; all methods are pure reads after
// that.
type Grid struct {
	Rows int
	Cols int

	edges   []Edge
	edgeSet map[Edge]struct{}
}

func New(rows, cols int) (Grid, error) {
	if rows < 2 || cols < 2 {
		return Grid{}, ErrTooSmall
	}

	g := Grid{
		Rows:    rows,
		Cols:    cols,
		edgeSet: make(map[Edge]struct{}),
	}

	for i := range rows {
		for j := range cols {
			d := NewDot(i, j)
			if i+1 < rows {
				g.addEdge(NewEdge(d, NewDot(i+1, j)))
			}
			if j+1 < cols {
				g.addEdge(NewEdge(d, NewDot(i, j+1)))
			}
		}
	}

	return g, nil
}

func (g *Grid) addEdge(e Edge) {
	g.edges = append(g.edges, e)
	g.edgeSet[e] = struct{}{}
}

// Edges returns every legal edge in enumeration order. Callers must
// not mutate the returned slice.
func (g Grid) Edges() []Edge {
	return g.edges
}

func (g Grid) EdgeCount() int {
	return len(g.edges)
}

// Boxes returns every box of the grid in row-major order.
func (g Grid) Boxes() (boxes []Box) {
	for i := range g.Rows - 1 {
		for j := range g.Cols - 1 {
			boxes = append(boxes, NewBox(i, j))
		}
	}
	return
}

func (g Grid) BoxCount() int {
	return (g.Rows - 1) * (g.Cols - 1)
}

func (g Grid) containsDot(d Dot) bool {
	return d.Row() >= 0 && d.Row() < g.Rows && d.Col() >= 0 && d.Col() < g.Cols
}

// Check classifies an edge: ErrOutOfBounds if an endpoint leaves the
// lattice, ErrInvalidEdge if the dots are not orthogonally adjacent.
func (g Grid) Check(e Edge) error {
	if !g.containsDot(e.Dot1()) || !g.containsDot(e.Dot2()) {
		return ErrOutOfBounds
	}
	if _, ok := g.edgeSet[e]; !ok {
		return ErrInvalidEdge
	}
	return nil
}

// BoxEdges returns the 4 bounding edges of the box, failing when the
// box coordinate lies outside [0, Rows-2] × [0, Cols-2].
func (g Grid) BoxEdges(b Box) ([4]Edge, error) {
	if b.Row() < 0 || b.Row() > g.Rows-2 || b.Col() < 0 || b.Col() > g.Cols-2 {
		return [4]Edge{}, ErrOutOfBounds
	}
	return b.Edges(), nil
}

// AdjacentBoxes returns the 1 or 2 boxes bounded by the edge, the box
// above or left of it first. A perimeter edge borders exactly one box.
func (g Grid) AdjacentBoxes(e Edge) (boxes []Box) {
	d := e.Dot1()
	r := d.Row()
	c := d.Col()

	if e.Horizontal() {
		if r-1 >= 0 {
			boxes = append(boxes, NewBox(r-1, c))
		}
		if r <= g.Rows-2 {
			boxes = append(boxes, NewBox(r, c))
		}
		return
	}

	if c-1 >= 0 {
		boxes = append(boxes, NewBox(r, c-1))
	}
	if c <= g.Cols-2 {
		boxes = append(boxes, NewBox(r, c))
	}
	return
}
