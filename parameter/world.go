package parameter

// World dimensions, Y is vertical
const (
	WorldWidth  = 256
	WorldHeight = 64
	WorldDepth  = 256

	// ChunkSize is the edge of the dirty-tracking region in blocks
	ChunkSize = 16

	// RandomTickDivisor spreads one random block update per this many cells per tick
	RandomTickDivisor = 400

	// GrassSpreadTries is how many neighbours a lit grass block tries per update
	GrassSpreadTries = 4

	// BushChance is the 1-in-N chance of a bush on a lit grass surface at generation
	BushChance = 96

	DefaultSavePath = "level.dat"
)

// Terrain noise
const (
	TerrainScale       = 1.0 / 48.0
	TerrainAlpha       = 2.0
	TerrainBeta        = 2.0
	TerrainOctaves     = 3
	TerrainSurfaceFrac = 0.6  // mean surface height as a fraction of world height
	TerrainAmplitude   = 0.18 // surface relief as a fraction of world height
	TerrainDirtDepth   = 4
)
