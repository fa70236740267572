package pick

import "github.com/lixenwraith/vi-voxel/parameter"

// Result identifies the picked block face
type Result struct {
	X, Y, Z int
	Face    int
}

// Selection is the closest hit record found in a select buffer
type Selection struct {
	names [parameter.MaxNames]uint32
	count int // names retained, at most MaxNames
	total int // names declared by the record
	depth uint32
	found bool
}

// Decode walks a select buffer of hits records laid out as
// nameCount, minDepth, maxDepth, names[nameCount]
// The first record and any record strictly closer than the current best replace the selection
// A negative hit count means the buffer overflowed; records are then read until the buffer ends
// A record running past the end of the buffer stops decoding without contributing
func Decode(buf []uint32, hits int) Selection {
	var sel Selection
	pos := 0
	for n := 0; hits < 0 || n < hits; n++ {
		if pos+3 > len(buf) {
			break
		}
		count := int(buf[pos])
		minDepth := buf[pos+1]
		start := pos + 3
		if count < 0 || count > len(buf)-start {
			break
		}

		if !sel.found || minDepth < sel.depth {
			sel.found = true
			sel.depth = minDepth
			sel.total = count
			sel.count = copy(sel.names[:], buf[start:start+count])
		}
		pos = start + count
	}
	return sel
}

// Found reports whether any record was decoded
func (s Selection) Found() bool {
	return s.found
}

// Depth returns the minimum depth of the selected record
func (s Selection) Depth() uint32 {
	return s.depth
}

// Names returns the retained names of the selected record
func (s Selection) Names() []uint32 {
	return s.names[:s.count]
}

// Result converts the selection into a block face
// Records carrying fewer than four names are not block hits
func (s Selection) Result() (Result, bool) {
	if !s.found || s.count < 4 {
		return Result{}, false
	}
	return Result{
		X:    int(int32(s.names[0])),
		Y:    int(int32(s.names[1])),
		Z:    int(int32(s.names[2])),
		Face: int(s.names[3]),
	}, true
}
