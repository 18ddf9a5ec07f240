package layout

import "chosenoffset.com/tidyroom/internal/rng"

// makeConcaveShell builds a width x height mask of open cells with one
// rectangular notch carved out of a random corner, so the outer
// boundary of the apartment isn't a plain rectangle. Draw order is
// part of the determinism contract: w1, then h1, then the corner.
func makeConcaveShell(width, height int, seed uint64) mask {
	r := rng.New(seed)
	shell := make(mask, width*height)
	for i := range shell {
		shell[i] = true
	}

	w1 := r.IntRange(3, 5)
	if w1 > width {
		w1 = width
	}
	h1 := r.IntRange(3, 5)
	if h1 > height {
		h1 = height
	}
	corner := r.Intn(4)

	for y := 0; y < h1; y++ {
		for x := 0; x < w1; x++ {
			var idx int
			switch corner {
			case 0: // top-left
				idx = y*width + x
			case 1: // top-right
				idx = y*width + (width - w1 + x)
			case 2: // bottom-right
				idx = (height-h1+y)*width + (width - w1 + x)
			default: // bottom-left
				idx = (height-h1+y)*width + x
			}
			shell[idx] = false
		}
	}
	return shell
}
