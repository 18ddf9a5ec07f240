package layout

// mask is a row-major boolean grid the same shape as the cell buffer;
// carving works on masks before they are collapsed into Cell values.
type mask []bool

// findRuns returns the number of maximal contiguous true-runs in arr.
func findRuns(arr []bool) int {
	runs := 0
	prev := false
	for _, v := range arr {
		if v && !prev {
			runs++
		}
		prev = v
	}
	return runs
}

// thinnestSegment returns the shortest true-run length found across
// every row and every column of m (width x height), as (minRowRun,
// minColRun). A mask with no true-runs on an axis leaves that axis's
// minimum at the full width/height, matching the reference behaviour.
func thinnestSegment(m mask, width, height int) (int, int) {
	minW := width
	minH := height

	for y := 0; y < height; y++ {
		row := m[y*width : y*width+width]
		if findRuns(row) == 0 {
			continue
		}
		start := -1
		for x := 0; x <= width; x++ {
			open := x < width && row[x]
			if open {
				if start == -1 {
					start = x
				}
			} else if start != -1 {
				if run := x - start; run < minW {
					minW = run
				}
				start = -1
			}
		}
	}

	for x := 0; x < width; x++ {
		start := -1
		for y := 0; y <= height; y++ {
			open := y < height && m[y*width+x]
			if open {
				if start == -1 {
					start = y
				}
			} else if start != -1 {
				if run := y - start; run < minH {
					minH = run
				}
				start = -1
			}
		}
	}

	return minW, minH
}

// FloodFill replaces every 4-connected cell reachable from (x0, y0)
// whose value equals the seed's with to. Implemented with an explicit
// stack, never recursion, so a wide doorway or large room can't blow
// the call stack. Used by the simulator to toggle an entire doorway
// strip in one action.
func FloodFill(cells []Cell, width, height, x0, y0 int, to Cell) {
	from := cells[y0*width+x0]
	if from == to {
		return
	}
	type pt struct{ x, y int }
	stack := []pt{{x0, y0}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.x < 0 || p.y < 0 || p.x >= width || p.y >= height {
			continue
		}
		idx := p.y*width + p.x
		if cells[idx] != from {
			continue
		}
		cells[idx] = to
		stack = append(stack,
			pt{p.x - 1, p.y}, pt{p.x + 1, p.y},
			pt{p.x, p.y - 1}, pt{p.x, p.y + 1},
		)
	}
}
