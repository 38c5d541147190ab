package component

// Enemy представляет вражескую сущность.
// Index is the progress along Paths[Spawn]; Lerp is the fraction of the way
// to the next path hex. X, Y is the world position derived from both.
type Enemy struct {
	Health    int
	MaxHealth int
	Value     int // Награда за уничтожение
	Spawn     int
	Index     int
	Lerp      float64
	Speed     float64 // Доля от базовой скорости
	X, Y      float64
	Stranded  bool
}
