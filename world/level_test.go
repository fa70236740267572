package world

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-voxel/vmath"
)

func newTestLevel() *Level {
	return NewLevel(16, 16, 16, DefaultCatalog(), 1)
}

// flatLevel has rock up to y=3 and a grass surface at y=4
func flatLevel() *Level {
	l := newTestLevel()
	for x := 0; x < l.Width; x++ {
		for z := 0; z < l.Depth; z++ {
			for y := 0; y < 4; y++ {
				l.blocks[l.index(x, y, z)] = Rock
			}
			l.blocks[l.index(x, 4, z)] = Grass
		}
	}
	l.recalcLight()
	return l
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6}, c.IDs())
	assert.True(t, c.IsSolid(Rock))
	assert.False(t, c.IsSolid(Bush))
	assert.False(t, c.IsSolid(Air))
	assert.Equal(t, "grass", c.Name(Grass))
	assert.Equal(t, "air", c.Name(Air))
	assert.Equal(t, "unknown", c.Name(200))
	assert.Equal(t, '"', c.Get(Grass).Rune())
	assert.Equal(t, []uint8{Grass, Dirt}, c.Get(Bush).Soil)
	assert.True(t, c.Get(Grass).Ticks())
	assert.False(t, c.Get(Rock).Ticks())
}

func TestLoadCatalogRejectsBadInput(t *testing.T) {
	_, err := LoadCatalog([]byte("materials:\n  - id: 0\n    name: void\n"))
	assert.Error(t, err)

	_, err = LoadCatalog([]byte("materials:\n  - id: 1\n    name: a\n  - id: 1\n    name: b\n"))
	assert.Error(t, err)

	_, err = LoadCatalog([]byte("materials: ["))
	assert.Error(t, err)
}

func TestSetBlockReportsChange(t *testing.T) {
	l := newTestLevel()

	assert.True(t, l.SetBlock(1, 2, 3, Rock))
	assert.Equal(t, Rock, l.Block(1, 2, 3))
	assert.False(t, l.SetBlock(1, 2, 3, Rock), "same material is no change")
	assert.False(t, l.SetBlock(-1, 0, 0, Rock), "out of bounds")
	assert.False(t, l.SetBlock(0, 16, 0, Rock), "out of bounds")
	assert.Equal(t, Air, l.Block(99, 0, 0))
}

func TestSetBlockNotifiesListeners(t *testing.T) {
	l := newTestLevel()
	var dirty [][3]int
	l.AddListener(ListenerFunc(func(cx, cy, cz int) {
		dirty = append(dirty, [3]int{cx, cy, cz})
	}))

	l.SetBlock(8, 8, 8, Rock)
	assert.NotEmpty(t, dirty)
	for _, c := range dirty {
		assert.Equal(t, [3]int{0, 0, 0}, c)
	}

	before := len(dirty)
	l.SetBlock(8, 8, 8, Rock)
	assert.Len(t, dirty, before, "no-op writes do not notify")
}

func TestLightColumns(t *testing.T) {
	l := flatLevel()

	assert.True(t, l.IsLit(3, 4, 3), "surface block is lit")
	assert.True(t, l.IsLit(3, 10, 3))
	assert.False(t, l.IsLit(3, 3, 3), "below the surface is shadowed")
	assert.True(t, l.IsLit(-1, 0, 0), "outside the grid is lit")

	l.SetBlock(3, 8, 3, Rock)
	assert.False(t, l.IsLit(3, 6, 3))
	assert.True(t, l.IsLit(4, 6, 3))

	l.SetBlock(3, 8, 3, Air)
	assert.True(t, l.IsLit(3, 6, 3))
}

func TestCubes(t *testing.T) {
	l := flatLevel()

	box := vmath.NewAABB(2.2, 5, 2.2, 2.8, 6.8, 2.8)
	assert.Empty(t, l.Cubes(box))

	cubes := l.Cubes(box.Expand(0, -1, 0))
	require.Len(t, cubes, 1)
	assert.Equal(t, vmath.BlockAABB(2, 4, 2), cubes[0])

	// Outside the grid nothing collides
	assert.Empty(t, l.Cubes(vmath.NewAABB(-5, 0, -5, -4, 5, -4)))
}

func TestBoundingVolume(t *testing.T) {
	l := newTestLevel()

	box, ok := l.BoundingVolume(Brick, 1, 2, 3)
	assert.True(t, ok)
	assert.Equal(t, vmath.BlockAABB(1, 2, 3), box)

	_, ok = l.BoundingVolume(Bush, 1, 2, 3)
	assert.False(t, ok)
}

func TestGrassDecaysInShadow(t *testing.T) {
	l := flatLevel()
	l.SetBlock(5, 5, 5, Rock)

	for i := 0; i < 20000 && l.Block(5, 4, 5) == Grass; i++ {
		l.Tick()
	}
	assert.Equal(t, Dirt, l.Block(5, 4, 5))
}

func TestGrassSpreadsToLitDirt(t *testing.T) {
	l := flatLevel()
	l.SetBlock(6, 4, 6, Dirt)

	for i := 0; i < 20000 && l.Block(6, 4, 6) == Dirt; i++ {
		l.Tick()
	}
	assert.Equal(t, Grass, l.Block(6, 4, 6))
}

func TestBushNeedsSoilAndLight(t *testing.T) {
	l := flatLevel()
	l.SetBlock(7, 5, 7, Bush)
	l.SetBlock(9, 4, 9, Brick)
	l.SetBlock(9, 5, 9, Bush)

	for i := 0; i < 20000 && l.Block(9, 5, 9) == Bush; i++ {
		l.Tick()
	}
	assert.Equal(t, Air, l.Block(9, 5, 9), "bush on brick is removed")

	l.SetBlock(7, 9, 7, Rock)
	for i := 0; i < 20000 && l.Block(7, 5, 7) == Bush; i++ {
		l.Tick()
	}
	assert.Equal(t, Air, l.Block(7, 5, 7), "shadowed bush is removed")
}

func TestGenerate(t *testing.T) {
	l := NewLevel(32, 32, 32, DefaultCatalog(), 0)
	l.Generate(42)

	assert.Equal(t, int64(42), l.Seed())
	for x := 0; x < l.Width; x++ {
		for z := 0; z < l.Depth; z++ {
			h := l.SurfaceHeight(x, z)
			require.Greater(t, h, 0)
			top := l.Block(x, h-1, z)
			assert.Equal(t, Grass, top, "column %d,%d", x, z)
			assert.Equal(t, Rock, l.Block(x, 0, z))
		}
	}

	other := NewLevel(32, 32, 32, DefaultCatalog(), 0)
	other.Generate(42)
	assert.Equal(t, l.blocks, other.blocks, "generation is deterministic")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	l := NewLevel(16, 16, 16, DefaultCatalog(), 0)
	l.Generate(7)
	l.SetBlock(3, 15, 3, Wood)

	var buf bytes.Buffer
	require.NoError(t, l.Encode(&buf))

	restored := NewLevel(16, 16, 16, DefaultCatalog(), 0)
	require.NoError(t, restored.Decode(&buf))
	assert.Equal(t, l.blocks, restored.blocks)
	assert.Equal(t, int64(7), restored.Seed())
	assert.False(t, restored.IsLit(3, 14, 3))
}

func TestDecodeFailureLeavesLevelUnchanged(t *testing.T) {
	src := NewLevel(8, 8, 8, DefaultCatalog(), 0)
	var buf bytes.Buffer
	require.NoError(t, src.Encode(&buf))

	l := flatLevel()
	before := bytes.Clone(l.blocks)

	err := l.Decode(bytes.NewReader(buf.Bytes()))
	assert.ErrorIs(t, err, ErrBadSave)
	assert.Equal(t, before, l.blocks)

	err = l.Decode(bytes.NewReader([]byte("not a save")))
	assert.Error(t, err)
	assert.Equal(t, before, l.blocks)
}

func TestSaveLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "level.dat")

	l := flatLevel()
	l.SetBlock(1, 1, 1, Air)
	require.NoError(t, l.Save(path))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	restored := newTestLevel()
	require.NoError(t, restored.Load(path))
	assert.Equal(t, l.blocks, restored.blocks)

	assert.Error(t, restored.Load(filepath.Join(dir, "missing.dat")))
}
