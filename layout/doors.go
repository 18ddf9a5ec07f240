package layout

import (
	"sort"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/tidyroom/internal/rng"
)

const (
	doorMinCells = 2
	doorMaxCells = 4
)

type edgeKey struct{ a, b Cell }

func makeEdgeKey(a, b Cell) edgeKey {
	if a < b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

// carveDoors builds the region-adjacency graph, grows a spanning tree
// from the highest-degree region, and carves one doorway strip per
// tree edge. Non-tree adjacencies stay walled. Returns the door mask;
// wallMask is mutated to remove the carved cells.
func carveDoors(labels []Cell, wallMask mask, shell mask, seed uint64, width, height int, log logrus.FieldLogger) mask {
	r := rng.New(seed)

	adjacency := make(map[edgeKey][]int)
	var keys []edgeKey
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			idx := y*width + x
			if !wallMask[idx] {
				continue
			}
			if !(shell[idx-width] && shell[idx+width] && shell[idx-1] && shell[idx+1]) {
				continue
			}
			left, right := labels[idx-1], labels[idx+1]
			if left >= 0 && right >= 0 && left != right {
				k := makeEdgeKey(left, right)
				if _, ok := adjacency[k]; !ok {
					keys = append(keys, k)
				}
				adjacency[k] = append(adjacency[k], idx)
				continue
			}
			up, down := labels[idx-width], labels[idx+width]
			if up >= 0 && down >= 0 && up != down {
				k := makeEdgeKey(up, down)
				if _, ok := adjacency[k]; !ok {
					keys = append(keys, k)
				}
				adjacency[k] = append(adjacency[k], idx)
			}
		}
	}

	doorMask := make(mask, width*height)
	if len(adjacency) == 0 {
		log.Warn("doors: no region adjacency found, layout will be disconnected")
		return doorMask
	}

	graph := make(map[Cell]map[Cell]bool)
	for k := range adjacency {
		if graph[k.a] == nil {
			graph[k.a] = make(map[Cell]bool)
		}
		if graph[k.b] == nil {
			graph[k.b] = make(map[Cell]bool)
		}
		graph[k.a][k.b] = true
		graph[k.b][k.a] = true
	}

	var central Cell
	bestDegree := -1
	var nodes []Cell
	for n := range graph {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	for _, n := range nodes {
		if d := len(graph[n]); d > bestDegree {
			bestDegree = d
			central = n
		}
	}

	seen := map[Cell]bool{central: true}
	queue := []Cell{central}
	treeEdges := make(map[edgeKey]bool)
	var treeOrder []edgeKey
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		var neighbors []Cell
		for v := range graph[u] {
			neighbors = append(neighbors, v)
		}
		sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })
		for _, v := range neighbors {
			if !seen[v] {
				seen[v] = true
				k := makeEdgeKey(u, v)
				if !treeEdges[k] {
					treeEdges[k] = true
					treeOrder = append(treeOrder, k)
				}
				queue = append(queue, v)
			}
		}
	}

	for _, edge := range treeOrder {
		cells := append([]int(nil), adjacency[edge]...)
		allSameCol := true
		col0 := cells[0] % width
		for _, idx := range cells {
			if idx%width != col0 {
				allSameCol = false
				break
			}
		}
		if allSameCol {
			sort.Ints(cells)
		} else {
			sort.Slice(cells, func(i, j int) bool { return cells[i]%width < cells[j]%width })
		}

		total := len(cells)
		w := r.IntRange(doorMinCells, doorMaxCells)
		if w > total {
			w = total
		}
		start := r.Intn(total - w + 1)
		for _, idx := range cells[start : start+w] {
			wallMask[idx] = false
			doorMask[idx] = true
		}
	}

	return doorMask
}
