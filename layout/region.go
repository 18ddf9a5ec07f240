package layout

// region is a 4-connected patch of open cells tracked during BSP
// carving: its mask, cached area, and bounding box. Discarded once
// labelling collapses regions into the final Cell buffer.
type region struct {
	m    mask
	area int
	miny, maxy, minx, maxx int
}

func newRegion(m mask, width, height int) region {
	miny, maxy, minx, maxx := height, -1, width, -1
	area := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !m[y*width+x] {
				continue
			}
			area++
			if y < miny {
				miny = y
			}
			if y > maxy {
				maxy = y
			}
			if x < minx {
				minx = x
			}
			if x > maxx {
				maxx = x
			}
		}
	}
	return region{m: m, area: area, miny: miny, maxy: maxy, minx: minx, maxx: maxx}
}
