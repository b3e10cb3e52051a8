package solver

import "github.com/eng618/binairo-csp/pkg/grid"

// DomainMask is a 2-bit set over {0,1}, per the dense-array representation
// recommended in spec.md §9 in place of the source's string-keyed hash
// maps.
type DomainMask uint8

const (
	maskZero DomainMask = 1 << 0
	maskOne  DomainMask = 1 << 1
	maskFull DomainMask = maskZero | maskOne
	maskNone DomainMask = 0
)

// Has reports whether v is a member of the mask.
func (m DomainMask) Has(v grid.Value) bool {
	switch v {
	case grid.Zero:
		return m&maskZero != 0
	case grid.One:
		return m&maskOne != 0
	default:
		return false
	}
}

// Without returns the mask with v removed.
func (m DomainMask) Without(v grid.Value) DomainMask {
	switch v {
	case grid.Zero:
		return m &^ maskZero
	case grid.One:
		return m &^ maskOne
	default:
		return m
	}
}

// Len returns the number of values still in the mask.
func (m DomainMask) Len() int {
	n := 0
	if m&maskZero != 0 {
		n++
	}
	if m&maskOne != 0 {
		n++
	}
	return n
}

// Values returns the members of the mask in ascending order.
func (m DomainMask) Values() []grid.Value {
	var out []grid.Value
	if m&maskZero != 0 {
		out = append(out, grid.Zero)
	}
	if m&maskOne != 0 {
		out = append(out, grid.One)
	}
	return out
}

func maskFor(v grid.Value) DomainMask {
	switch v {
	case grid.Zero:
		return maskZero
	case grid.One:
		return maskOne
	default:
		return maskNone
	}
}

// DomainSet is a per-cell domain table, N x N bitmasks, built lazily by
// the solvers that need it (AC-3, AC-4, MAC) and scoped to one solver
// call.
type DomainSet struct {
	n    int
	mask [][]DomainMask
}

// NewDomainSet builds a domain set from g: filled cells get a singleton
// mask, empty cells get the full {0,1} mask.
func NewDomainSet(g *grid.Grid) *DomainSet {
	n := g.Size()
	ds := &DomainSet{n: n, mask: make([][]DomainMask, n)}
	for r := 0; r < n; r++ {
		row := make([]DomainMask, n)
		for c := 0; c < n; c++ {
			v := g.Get(r, c)
			if v == grid.Empty {
				row[c] = maskFull
			} else {
				row[c] = maskFor(v)
			}
		}
		ds.mask[r] = row
	}
	return ds
}

// Get returns the domain mask at (r,c).
func (d *DomainSet) Get(r, c int) DomainMask {
	return d.mask[r][c]
}

// Set overwrites the domain mask at (r,c).
func (d *DomainSet) Set(r, c int, m DomainMask) {
	d.mask[r][c] = m
}

// Remove deletes v from the domain at (r,c) and reports whether the
// domain actually changed.
func (d *DomainSet) Remove(r, c int, v grid.Value) bool {
	before := d.mask[r][c]
	after := before.Without(v)
	if after == before {
		return false
	}
	d.mask[r][c] = after
	return true
}

// Clone returns a deep copy, used by MAC to snapshot the full domain
// table before a tentative assignment and restore it on backtrack.
func (d *DomainSet) Clone() *DomainSet {
	clone := &DomainSet{n: d.n, mask: make([][]DomainMask, d.n)}
	for r, row := range d.mask {
		newRow := make([]DomainMask, len(row))
		copy(newRow, row)
		clone.mask[r] = newRow
	}
	return clone
}

// RestoreFrom overwrites d's contents with snapshot's, used by MAC to
// roll back a branch's domain shrinkage on backtrack.
func (d *DomainSet) RestoreFrom(snapshot *DomainSet) {
	d.mask = snapshot.mask
}

// Neighbors returns every other cell sharing a row or column with (r,c).
func Neighbors(n, r, c int) [][2]int {
	out := make([][2]int, 0, 2*(n-1))
	for i := 0; i < n; i++ {
		if i != c {
			out = append(out, [2]int{r, i})
		}
	}
	for i := 0; i < n; i++ {
		if i != r {
			out = append(out, [2]int{i, c})
		}
	}
	return out
}
