// Package maze loads ASCII maze maps into a rectangular tile grid.
package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Maze is a rectangular tile grid parsed from an ASCII map.
// Data is row-major with one byte per cell; len(Data) == W*H.
type Maze struct {
	W    int
	H    int
	Data []byte
}

// Parse reads an ASCII map from r and builds the tile grid.
//
// Lines that are empty or start with ';' are comments and do not count
// toward the grid dimensions. The grid width is the length of the longest
// data line; shorter rows are zero-padded on the right. A source with no
// data lines yields an empty 0x0 grid.
func Parse(r io.Reader) (*Maze, error) {
	lines, err := dataLines(r)
	if err != nil {
		return nil, err
	}

	// First pass: dimensions.
	maxW := 0
	for _, line := range lines {
		if len(line) > maxW {
			maxW = len(line)
		}
	}

	m := &Maze{
		W:    maxW,
		H:    len(lines),
		Data: make([]byte, maxW*len(lines)),
	}

	// Second pass: copy rows into the zero-filled buffer.
	for y, line := range lines {
		copy(m.Data[y*m.W:], line)
	}

	return m, nil
}

// dataLines collects the non-comment lines of r, newline stripped.
func dataLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || line[0] == ';' {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading map: %w", err)
	}

	return lines, nil
}

// Load parses an ASCII map file from disk.
func Load(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing map %s: %w", path, err)
	}
	return m, nil
}

// At returns the tile byte at (x, y), or 0 for out-of-bounds coordinates.
func (m *Maze) At(x, y int) byte {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return 0
	}
	return m.Data[y*m.W+x]
}

// Set overwrites the tile byte at (x, y). Out-of-bounds writes are ignored.
func (m *Maze) Set(x, y int, b byte) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.Data[y*m.W+x] = b
}

// CountByKind returns the number of tiles of each kind.
func (m *Maze) CountByKind() map[TileKind]int {
	counts := make(map[TileKind]int)
	for _, b := range m.Data {
		counts[Classify(b)]++
	}
	return counts
}

// String renders the grid one text row per line, with zero-padding bytes
// shown as spaces. Intended for logs and the dump command.
func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow((m.W + 1) * m.H)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			b := m.Data[y*m.W+x]
			if b == 0 {
				b = ' '
			}
			sb.WriteByte(b)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
