// pkg/hexmap/map.go
package hexmap

// TileType is the terrain of a tile.
type TileType int

const (
	Plain TileType = iota
	Mountain
)

func (t TileType) String() string {
	switch t {
	case Plain:
		return "Plain"
	case Mountain:
		return "Mountain"
	}
	return "Unknown"
}

// Toggled returns the opposite terrain.
func (t TileType) Toggled() TileType {
	if t == Mountain {
		return Plain
	}
	return Mountain
}

// Tile is the record stored for every addressable hex.
// OnPath is owned by the path planner; Damage is the tower overlay and is
// only non-zero while OnPath is set.
type Tile struct {
	Type     TileType
	IsGoal   bool
	IsSpawn  bool
	HasTower bool
	IsCursor bool
	OnPath   bool
	Damage   int
}

// Rand is the subset of a random source the generator needs.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// HexMap is a hexagonal board of the given radius centred on Origin.
// Tiles live in a dense slice indexed by Index.
type HexMap struct {
	Radius  int
	HexSize float64
	Goal    Hex
	Spawns  [6]Hex

	tiles []Tile
	valid []bool // corners of the box outside the hexagon are false
	hexes []Hex // spiral order
}

// NewHexMap builds a board: every hex of the spiral of radius gets a tile,
// a Mountain with probability mountainRatio. The goal sits at the origin and
// one spawn is picked at random on each of the six edges of the outer ring.
// Goal and spawns are always Plain.
func NewHexMap(radius int, hexSize float64, mountainRatio float64, rng Rand) *HexMap {
	if radius < 1 {
		radius = 1
	}
	side := 2*radius + 1
	hm := &HexMap{
		Radius:  radius,
		HexSize: hexSize,
		Goal:    Origin,
		tiles:   make([]Tile, side*side),
		valid:   make([]bool, side*side),
		hexes:   Spiral(Origin, radius),
	}

	ring := Ring(Origin, radius)
	for i := 0; i < 6; i++ {
		edge := ring[i*radius : (i+1)*radius]
		hm.Spawns[i] = edge[rng.Intn(len(edge))]
	}

	for _, hex := range hm.hexes {
		idx := hm.index(hex)
		hm.valid[idx] = true
		tile := Tile{Type: Plain}
		if rng.Float64() < mountainRatio {
			tile.Type = Mountain
		}
		hm.tiles[idx] = tile
	}

	goal := hm.mustTile(hm.Goal)
	goal.Type = Plain
	goal.IsGoal = true
	for _, spawn := range hm.Spawns {
		tile := hm.mustTile(spawn)
		tile.Type = Plain
		tile.IsSpawn = true
	}
	return hm
}

func (hm *HexMap) index(hex Hex) int {
	side := 2*hm.Radius + 1
	return (hex.Q+hm.Radius)*side + (hex.R + hm.Radius)
}

func (hm *HexMap) mustTile(hex Hex) *Tile {
	return &hm.tiles[hm.index(hex)]
}

// Index returns the stable arena index of hex, or false when hex is outside
// the board. The coordinate box is checked first so index never overflows.
func (hm *HexMap) Index(hex Hex) (int, bool) {
	if hex.Q < -hm.Radius || hex.Q > hm.Radius || hex.R < -hm.Radius || hex.R > hm.Radius {
		return 0, false
	}
	idx := hm.index(hex)
	return idx, hm.valid[idx]
}

// Contains reports whether hex is addressable.
func (hm *HexMap) Contains(hex Hex) bool {
	_, ok := hm.Index(hex)
	return ok
}

// Resolve returns the tile record of hex. Mutating the returned tile mutates
// the board.
func (hm *HexMap) Resolve(hex Hex) (*Tile, bool) {
	idx, ok := hm.Index(hex)
	if !ok {
		return nil, false
	}
	return &hm.tiles[idx], true
}

// Hexes returns every addressable hex in spiral order. The slice is shared;
// callers must not modify it.
func (hm *HexMap) Hexes() []Hex {
	return hm.hexes
}

// Len is the number of addressable tiles.
func (hm *HexMap) Len() int {
	return len(hm.hexes)
}

// SpawnIndex returns which spawn slot hex occupies.
func (hm *HexMap) SpawnIndex(hex Hex) (int, bool) {
	for i, s := range hm.Spawns {
		if s == hex {
			return i, true
		}
	}
	return 0, false
}

// Neighbors возвращает существующих соседей гекса
func (hm *HexMap) Neighbors(hex Hex) []Hex {
	valid := make([]Hex, 0, 6)
	for _, n := range hex.AllPossibleNeighbors() {
		if hm.Contains(n) {
			valid = append(valid, n)
		}
	}
	return valid
}

// GetHexesInRange returns the addressable hexes within radius steps of
// center, in spiral order.
func (hm *HexMap) GetHexesInRange(center Hex, radius int) []Hex {
	var result []Hex
	for _, hex := range Spiral(center, radius) {
		if hm.Contains(hex) {
			result = append(result, hex)
		}
	}
	return result
}

// WorldPos returns the world coordinates of the centre of hex.
func (hm *HexMap) WorldPos(hex Hex) (x, y float64) {
	return hex.ToPixel(hm.HexSize)
}

// HexAt converts world coordinates back to a hex (which may be off-board).
func (hm *HexMap) HexAt(x, y float64) Hex {
	return PixelToHex(x, y, hm.HexSize)
}
