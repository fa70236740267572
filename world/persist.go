package world

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

const (
	saveFormat  = "vi-voxel-level"
	saveVersion = 1
)

// ErrBadSave is returned when a save stream is not a compatible level
var ErrBadSave = errors.New("world: incompatible save")

// saveHeader is the plain JSON first line of a save stream
type saveHeader struct {
	Format  string `json:"format"`
	Version int    `json:"version"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Depth   int    `json:"depth"`
	Seed    int64  `json:"seed"`
}

// saveBody is the gob-encoded remainder
type saveBody struct {
	Blocks []byte
}

// Save writes the level to path through a temporary file
func (l *Level) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	if err := l.Encode(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Encode writes a zstd stream holding a JSON header line and a gob body
func (l *Level) Encode(w io.Writer) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(enc, 256*1024)

	hb, err := json.Marshal(saveHeader{
		Format:  saveFormat,
		Version: saveVersion,
		Width:   l.Width,
		Height:  l.Height,
		Depth:   l.Depth,
		Seed:    l.seed,
	})
	if err != nil {
		enc.Close()
		return err
	}
	if _, err := bw.Write(append(hb, '\n')); err != nil {
		enc.Close()
		return err
	}
	if err := gob.NewEncoder(bw).Encode(saveBody{Blocks: l.blocks}); err != nil {
		enc.Close()
		return fmt.Errorf("gob encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Load replaces the level contents with the save at path
// On any error the level is left unchanged
func (l *Level) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	if err := l.Decode(f); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Decode reads a stream written by Encode
// Dimensions must match the level; the level is untouched on error
func (l *Level) Decode(r io.Reader) error {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 256*1024)
	line, err := br.ReadBytes('\n')
	if err != nil {
		return fmt.Errorf("%w: header: %v", ErrBadSave, err)
	}

	var h saveHeader
	if err := json.Unmarshal(line, &h); err != nil {
		return fmt.Errorf("%w: header: %v", ErrBadSave, err)
	}
	if h.Format != saveFormat || h.Version != saveVersion {
		return fmt.Errorf("%w: format %q version %d", ErrBadSave, h.Format, h.Version)
	}
	if h.Width != l.Width || h.Height != l.Height || h.Depth != l.Depth {
		return fmt.Errorf("%w: size %dx%dx%d, want %dx%dx%d",
			ErrBadSave, h.Width, h.Height, h.Depth, l.Width, l.Height, l.Depth)
	}

	var body saveBody
	if err := gob.NewDecoder(br).Decode(&body); err != nil {
		return fmt.Errorf("%w: gob decode: %v", ErrBadSave, err)
	}
	if len(body.Blocks) != len(l.blocks) {
		return fmt.Errorf("%w: %d blocks, want %d", ErrBadSave, len(body.Blocks), len(l.blocks))
	}

	copy(l.blocks, body.Blocks)
	l.reseed(h.Seed)
	l.recalcLight()
	l.markAll()
	return nil
}
