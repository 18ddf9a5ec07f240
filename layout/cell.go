package layout

// Cell is a single grid entry: non-negative values are room ids,
// negative values are the sentinels below. Kept as int8 so the wire
// encoding matches the one-byte-per-cell contract other
// implementations of this generator agree on.
type Cell int8

const (
	// OUTSIDE marks a cell outside the generated shell entirely.
	OUTSIDE Cell = -2
	// WALL marks an impassable carved wall cell.
	WALL Cell = -1
	// ClosedDoor marks a doorway currently shut.
	ClosedDoor Cell = -3
	// OpenDoor marks a doorway currently open.
	OpenDoor Cell = -4
)

// MaxRoomID is the largest room id a Cell can carry (int8 range minus
// the four negative sentinels leaves 0..127, but 126 keeps a spare
// sentinel slot free the way the source reserves one).
const MaxRoomID = 126

// MinRoomAreaCells is the minimum area, in cells, a carved region must
// cover to be accepted as a room.
const MinRoomAreaCells = 24

// obstacles is the set of cell values a moving agent cannot enter.
var obstacles = map[Cell]bool{OUTSIDE: true, WALL: true, ClosedDoor: true}

// IsObstacle reports whether c blocks agent movement.
func IsObstacle(c Cell) bool { return obstacles[c] }

// IsRoom reports whether c identifies a room (non-negative).
func IsRoom(c Cell) bool { return c >= 0 }
