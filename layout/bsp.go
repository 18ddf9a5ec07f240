package layout

import (
	"github.com/sirupsen/logrus"

	"chosenoffset.com/tidyroom/internal/rng"
)

const (
	minThickCells = 3
	minSizeRatio  = 0.2
	minAR         = 1.2
	maxAR         = 4.0
	sampleC       = 10
)

type splitCandidate struct {
	vertical bool
	coord    int
}

// sideAspectRatio computes the bounding-box aspect ratio of a side
// mask against its own thinnest segment, the way §4.3 defines "ar".
func sideAspectRatio(side mask, width, height int) float64 {
	mw, mh := thinnestSegment(side, width, height)
	minx, maxx, miny, maxy := width, -1, height, -1
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !side[y*width+x] {
				continue
			}
			if x < minx {
				minx = x
			}
			if x > maxx {
				maxx = x
			}
			if y < miny {
				miny = y
			}
			if y > maxy {
				maxy = y
			}
		}
	}
	bw := maxx - minx + 1
	bh := maxy - miny + 1
	if bw >= bh {
		if mh < 1 {
			mh = 1
		}
		return float64(bw) / float64(mh)
	}
	if mw < 1 {
		mw = 1
	}
	return float64(bh) / float64(mw)
}

// carveBSP recursively splits shell into target regions and returns
// them alongside the wall mask those splits (plus the outer boundary)
// produced. Region order is push order: larger part first, smaller
// second, which is what assigns room ids.
func carveBSP(shell mask, targetRooms int, seed uint64, width, height int, log logrus.FieldLogger) ([]region, mask) {
	r := rng.New(seed)
	wallMask := make(mask, width*height)
	regions := []region{newRegion(append(mask(nil), shell...), width, height)}

	for len(regions) < targetRooms {
		// pop largest-area region (stable: first max by area)
		best := 0
		for i := 1; i < len(regions); i++ {
			if regions[i].area > regions[best].area {
				best = i
			}
		}
		reg := regions[best]
		regions = append(regions[:best], regions[best+1:]...)

		if reg.area < 2*MinRoomAreaCells {
			regions = append(regions, reg)
			log.WithField("area", reg.area).Debug("bsp: region below area floor, stopping split")
			break
		}
		if (reg.maxy-reg.miny+1) < 2*minThickCells || (reg.maxx-reg.minx+1) < 2*minThickCells {
			regions = append(regions, reg)
			log.Debug("bsp: region too thin to split, stopping")
			break
		}

		candidates := gatherCandidates(reg, width, height, r)
		if len(candidates) == 0 {
			regions = append(regions, reg)
			log.Debug("bsp: no valid split candidate, stopping")
			break
		}

		pick := candidates[r.Choice(len(candidates))]
		a, b := applySplit(reg, pick, wallMask, width, height)
		if a.area >= b.area {
			regions = append(regions, a, b)
		} else {
			regions = append(regions, b, a)
		}
	}

	carveOuterWalls(shell, wallMask, width, height)
	return regions, wallMask
}

func gatherCandidates(reg region, width, height int, r *rng.Source) []splitCandidate {
	var candidates []splitCandidate

	xs := make([]int, 0, reg.maxx-reg.minx)
	for x := reg.minx + 1; x < reg.maxx; x++ {
		xs = append(xs, x)
	}
	if len(xs) > sampleC {
		idx := r.Sample(len(xs), sampleC)
		sampled := make([]int, len(idx))
		for i, j := range idx {
			sampled[i] = xs[j]
		}
		xs = sampled
	}
	for _, x := range xs {
		if validVerticalSplit(reg, x, width, height) {
			candidates = append(candidates, splitCandidate{vertical: true, coord: x})
		}
	}

	ys := make([]int, 0, reg.maxy-reg.miny)
	for y := reg.miny + 1; y < reg.maxy; y++ {
		ys = append(ys, y)
	}
	if len(ys) > sampleC {
		idx := r.Sample(len(ys), sampleC)
		sampled := make([]int, len(idx))
		for i, j := range idx {
			sampled[i] = ys[j]
		}
		ys = sampled
	}
	for _, y := range ys {
		if validHorizontalSplit(reg, y, width, height) {
			candidates = append(candidates, splitCandidate{vertical: false, coord: y})
		}
	}

	return candidates
}

func validVerticalSplit(reg region, x, width, height int) bool {
	col := make([]bool, reg.maxy-reg.miny+1)
	for y := reg.miny; y <= reg.maxy; y++ {
		col[y-reg.miny] = reg.m[y*width+x]
	}
	if findRuns(col) != 1 {
		return false
	}
	for _, v := range col {
		if !v {
			return false
		}
	}

	left, right := 0, 0
	leftMask := make(mask, width*height)
	rightMask := make(mask, width*height)
	for i, v := range reg.m {
		if !v {
			continue
		}
		if i%width < x {
			left++
			leftMask[i] = true
		} else if i%width > x {
			right++
			rightMask[i] = true
		}
	}
	if float64(left) < minSizeRatio*float64(reg.area) || float64(right) < minSizeRatio*float64(reg.area) {
		return false
	}

	arL := sideAspectRatio(leftMask, width, height)
	if arL < minAR || arL > maxAR {
		return false
	}
	arR := sideAspectRatio(rightMask, width, height)
	return arR >= minAR && arR <= maxAR
}

func validHorizontalSplit(reg region, y, width, height int) bool {
	row := make([]bool, reg.maxx-reg.minx+1)
	for x := reg.minx; x <= reg.maxx; x++ {
		row[x-reg.minx] = reg.m[y*width+x]
	}
	if findRuns(row) != 1 {
		return false
	}
	for _, v := range row {
		if !v {
			return false
		}
	}

	top, bot := 0, 0
	topMask := make(mask, width*height)
	botMask := make(mask, width*height)
	for i, v := range reg.m {
		if !v {
			continue
		}
		if i/width < y {
			top++
			topMask[i] = true
		} else if i/width > y {
			bot++
			botMask[i] = true
		}
	}
	if float64(top) < minSizeRatio*float64(reg.area) || float64(bot) < minSizeRatio*float64(reg.area) {
		return false
	}

	arT := sideAspectRatio(topMask, width, height)
	if arT < minAR || arT > maxAR {
		return false
	}
	arB := sideAspectRatio(botMask, width, height)
	return arB >= minAR && arB <= maxAR
}

func applySplit(reg region, pick splitCandidate, wallMask mask, width, height int) (region, region) {
	maskA := append(mask(nil), reg.m...)
	maskB := append(mask(nil), reg.m...)

	if pick.vertical {
		for y := reg.miny; y <= reg.maxy; y++ {
			wallMask[y*width+pick.coord] = true
		}
		for idx := range maskA {
			if idx%width >= pick.coord {
				maskA[idx] = false
			}
			if idx%width <= pick.coord {
				maskB[idx] = false
			}
		}
	} else {
		for x := reg.minx; x <= reg.maxx; x++ {
			wallMask[pick.coord*width+x] = true
		}
		for idx := range maskA {
			if idx/width >= pick.coord {
				maskA[idx] = false
			}
			if idx/width <= pick.coord {
				maskB[idx] = false
			}
		}
	}

	return newRegion(maskA, width, height), newRegion(maskB, width, height)
}

func carveOuterWalls(shell mask, wallMask mask, width, height int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !shell[y*width+x] {
				continue
			}
			found := false
			for dy := -1; dy <= 1 && !found; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dy == 0 && dx == 0 {
						continue
					}
					ny, nx := y+dy, x+dx
					if ny < 0 || nx < 0 || ny >= height || nx >= width || !shell[ny*width+nx] {
						wallMask[y*width+x] = true
						found = true
						break
					}
				}
			}
		}
	}
}
