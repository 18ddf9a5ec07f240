package layout

import (
	"fmt"

	"chosenoffset.com/tidyroom/internal/rng"
)

// RoomNamePool is the fixed set of names rooms are drawn from, in the
// teacher's static-registry style (a plain ordered slice, not a map,
// since order only matters for the shuffle, not lookup).
var RoomNamePool = []string{
	"Living Room", "Kitchen", "Bedroom", "Bathroom", "Dining Room",
	"Study", "Guest Room", "Office", "Hallway", "Playroom",
}

// assignRoomNames shuffles the pool with the seeded stream and takes
// the first regionCount entries. When regionCount exceeds the pool
// size, the pool is cycled with a numeric suffix ("Bedroom 2") rather
// than leaving extra rooms unnamed: an unnamed room cell would break
// InRoomNamed and WorldHas lookups by index.
func assignRoomNames(regionCount int, seed uint64) []string {
	r := rng.New(seed)
	pool := append([]string(nil), RoomNamePool...)
	r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	names := make([]string, regionCount)
	for i := 0; i < regionCount; i++ {
		base := pool[i%len(pool)]
		cycle := i/len(pool) + 1
		if cycle > 1 {
			names[i] = fmt.Sprintf("%s %d", base, cycle)
		} else {
			names[i] = base
		}
	}
	return names
}
