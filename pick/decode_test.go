package pick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	nameA = 101
	nameB = 102
	nameC = 103
)

func TestDecodeSelectsClosestRecord(t *testing.T) {
	buf := []uint32{
		1, 5, 5, nameA,
		1, 3, 3, nameB,
		1, 4, 4, nameC,
	}
	sel := Decode(buf, 3)

	assert.True(t, sel.Found())
	assert.Equal(t, []uint32{nameB}, sel.Names())
	assert.Equal(t, uint32(3), sel.Depth())

	_, ok := sel.Result()
	assert.False(t, ok, "single-name record is not a block hit")
}

func TestDecodeEmptyStream(t *testing.T) {
	sel := Decode(nil, 0)
	assert.False(t, sel.Found())
	_, ok := sel.Result()
	assert.False(t, ok)

	sel = Decode(make([]uint32, 16), 0)
	assert.False(t, sel.Found())
}

func TestDecodeTooFewNamesIsNoHit(t *testing.T) {
	sel := Decode([]uint32{3, 1, 1, 7, 8, 9}, 1)
	assert.True(t, sel.Found())
	_, ok := sel.Result()
	assert.False(t, ok)
}

func TestDecodeBlockFace(t *testing.T) {
	buf := []uint32{
		4, 900, 900, 1, 2, 3, 4,
		4, 200, 200, 5, 6, 7, 1,
		4, 200, 200, 9, 9, 9, 0, // equal depth does not replace
	}
	r, ok := Decode(buf, 3).Result()
	assert.True(t, ok)
	assert.Equal(t, Result{X: 5, Y: 6, Z: 7, Face: 1}, r)
}

func TestDecodeFirstRecordAlwaysWins(t *testing.T) {
	buf := []uint32{4, 0xFFFFFFFF, 0xFFFFFFFF, 1, 1, 1, 2}
	r, ok := Decode(buf, 1).Result()
	assert.True(t, ok)
	assert.Equal(t, Result{X: 1, Y: 1, Z: 1, Face: 2}, r)
}

func TestDecodeNegativeCoordinates(t *testing.T) {
	neg := uint32(0xFFFFFFFF) // -1 as int32
	r, ok := Decode([]uint32{4, 1, 1, neg, 0, neg, 5}, 1).Result()
	assert.True(t, ok)
	assert.Equal(t, Result{X: -1, Y: 0, Z: -1, Face: 5}, r)
}

func TestDecodeTruncatedRecord(t *testing.T) {
	buf := []uint32{
		4, 50, 50, 1, 2, 3, 0,
		4, 10, 10, 7, 7, // declares 4 names, buffer ends after 2
	}
	r, ok := Decode(buf, 2).Result()
	assert.True(t, ok)
	assert.Equal(t, Result{X: 1, Y: 2, Z: 3, Face: 0}, r, "truncated record does not contribute")

	// Header cut short
	r, ok = Decode([]uint32{4, 50, 50, 1, 2, 3, 0, 4}, 2).Result()
	assert.True(t, ok)
	assert.Equal(t, 1, r.X)
}

func TestDecodeHitCountBeyondBuffer(t *testing.T) {
	sel := Decode([]uint32{1, 9, 9, nameA}, 50)
	assert.Equal(t, []uint32{nameA}, sel.Names())
}

func TestDecodeOverflowReadsToEnd(t *testing.T) {
	buf := []uint32{
		1, 8, 8, nameA,
		1, 2, 2, nameB,
		4, 1, 1, 3, // partial trailing record written up to the end
	}
	sel := Decode(buf, -1)
	assert.Equal(t, []uint32{nameB}, sel.Names())
}

func TestDecodeCapsNamesButKeepsCursor(t *testing.T) {
	long := []uint32{12, 9, 9}
	for i := uint32(0); i < 12; i++ {
		long = append(long, 1000+i)
	}
	buf := append(long, 4, 5, 5, 2, 3, 4, 1)

	sel := Decode(buf, 2)
	assert.Equal(t, uint32(5), sel.Depth(), "second record decoded at the right offset")
	r, ok := sel.Result()
	assert.True(t, ok)
	assert.Equal(t, Result{X: 2, Y: 3, Z: 4, Face: 1}, r)

	first := Decode(long, 1)
	assert.Len(t, first.Names(), 10)
	assert.Equal(t, uint32(1009), first.Names()[9])
}
