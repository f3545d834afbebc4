package grid

// Box is a unit cell identified by its top-left Dot.
type Box Dot

func NewBox(row, col int) Box {
	return Box(NewDot(row, col))
}

func (b Box) Row() int {
	return Dot(b).Row()
}

func (b Box) Col() int {
	return Dot(b).Col()
}

func (b Box) Dots() [4]Dot {
	r := b.Row()
	c := b.Col()

	return [...]Dot{
		NewDot(r, c),
		NewDot(r, c+1),
		NewDot(r+1, c),
		NewDot(r+1, c+1),
	}
}

// Edges returns the 4 bounding edges of the box in canonical form.
func (b Box) Edges() [4]Edge {
	r := b.Row()
	c := b.Col()

	d00 := NewDot(r, c)
	d01 := NewDot(r, c+1)
	d10 := NewDot(r+1, c)
	d11 := NewDot(r+1, c+1)

	return [...]Edge{
		NewEdge(d00, d01), // top
		NewEdge(d10, d11), // bottom
		NewEdge(d00, d10), // left
		NewEdge(d01, d11), // right
	}
}

func (b Box) String() string {
	return Dot(b).String()
}
