package grid

import "fmt"

const (
	D       = 8
	dotMod  = 1 << D
	dotMask = dotMod - 1
)

// Dot is a lattice point packed into a single int as (row << D) | col.
// Packing keeps Dot comparable and usable as a map key without string
// formatting.
type Dot int

func NewDot(row, col int) Dot {
	return Dot((row << D) + col)
}

func (d Dot) Row() int {
	return int(d) >> D
}

func (d Dot) Col() int {
	return int(d) & dotMask
}

func (d Dot) String() string {
	return fmt.Sprintf("(%d, %d)", d.Row(), d.Col())
}
