package maze

import "fmt"

// TileKind classifies a tile byte into its semantic category.
type TileKind int

// Tile kinds.
const (
	TileEmpty    TileKind = iota // walkable gap, also zero padding
	TileWall                     // '*' maze wall
	TileBuilding                 // 'A'..'Z' building instance marker
	TileUnknown                  // any other byte
)

// Classify maps a raw tile byte to its kind. The mapping is evaluated once
// per tile during the scan so range checks stay out of the synthesis code.
func Classify(b byte) TileKind {
	switch {
	case b == '*':
		return TileWall
	case b == ' ' || b == 0:
		return TileEmpty
	case b >= 'A' && b <= 'Z':
		return TileBuilding
	default:
		return TileUnknown
	}
}

// BuildingLetter returns the building instance letter for a building tile,
// or 0 when the byte is not a building marker.
func BuildingLetter(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b
	}
	return 0
}

// String returns a human-readable kind name.
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "Empty"
	case TileWall:
		return "Wall"
	case TileBuilding:
		return "Building"
	case TileUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("TileKind(%d)", int(k))
	}
}
