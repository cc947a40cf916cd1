package gridgraph

// ConnectedComponents finds all contiguous regions of Open cells under
// orthogonal connectivity. Components are ordered by their first cell in
// row-major order; cells within a component are listed in BFS order from
// that first cell, following the fixed neighbor order.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Cell {
	seen := make([]bool, len(g.open))
	var comps [][]Cell

	for i0, open := range g.open {
		if !open || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []Cell{g.Coordinate(i0)}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.Neighbors(queue[qi]) {
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// ComponentOf returns the index into ConnectedComponents() of the region
// containing c, or -1 if c is Blocked or out of bounds.
func (g *Grid) ComponentOf(c Cell) int {
	if !g.IsOpen(c) {
		return -1
	}
	for i, comp := range g.ConnectedComponents() {
		for _, x := range comp {
			if x == c {
				return i
			}
		}
	}
	return -1
}
