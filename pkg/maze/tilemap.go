package maze

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Tilemap format errors.
var (
	ErrTruncatedTilemap     = errors.New("truncated tilemap data")
	ErrInvalidTilemapBounds = errors.New("invalid tilemap dimensions")
)

// maxTilemapDim bounds parsed dimensions so a corrupt header cannot force
// a huge allocation.
const maxTilemapDim = 1 << 16

// Write writes the tilemap snapshot: int32 width, int32 height, then
// W*H raw tile bytes in row-major order. Little-endian, no header, no
// padding.
func (m *Maze) Write(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, int32(m.W)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(m.H)); err != nil {
		return err
	}
	_, err := w.Write(m.Data)
	return err
}

// WriteTilemap writes the tilemap snapshot to a file.
func (m *Maze) WriteTilemap(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating tilemap %s: %w", path, err)
	}

	if err := m.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing tilemap %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("writing tilemap %s: %w", path, err)
	}
	return nil
}

// ParseTilemap parses a tilemap snapshot from raw bytes.
func ParseTilemap(data []byte) (*Maze, error) {
	r := bytes.NewReader(data)

	var width, height int32
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return nil, fmt.Errorf("%w: reading width", ErrTruncatedTilemap)
	}
	if err := binary.Read(r, binary.LittleEndian, &height); err != nil {
		return nil, fmt.Errorf("%w: reading height", ErrTruncatedTilemap)
	}

	if width < 0 || height < 0 || width > maxTilemapDim || height > maxTilemapDim {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTilemapBounds, width, height)
	}

	m := &Maze{
		W:    int(width),
		H:    int(height),
		Data: make([]byte, int(width)*int(height)),
	}
	if _, err := io.ReadFull(r, m.Data); err != nil {
		return nil, fmt.Errorf("%w: reading %d cells", ErrTruncatedTilemap, len(m.Data))
	}

	return m, nil
}

// LoadTilemap parses a tilemap snapshot file from disk.
func LoadTilemap(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tilemap %s: %w", path, err)
	}
	return ParseTilemap(data)
}
