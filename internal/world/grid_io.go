package world

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Raw binary grid dump: little-endian int32 width and height, then one
// 4-byte record per tile in row-major order (wall, floor, ceiling,
// solid). Door state is deliberately not part of the dump so the stored
// grid and the dynamic door state stay independently serializable; the
// external save system owns file handling and door persistence.

const tileRecordSize = 4

// WriteTo dumps the grid in the raw binary format.
func (g *TileGrid) WriteTo(w io.Writer) error {
	header := [2]int32{int32(g.Width), int32(g.Height)}
	if err := binary.Write(w, binary.LittleEndian, header[:]); err != nil {
		return fmt.Errorf("write grid header: %w", err)
	}

	buf := make([]byte, len(g.tiles)*tileRecordSize)
	for i, t := range g.tiles {
		o := i * tileRecordSize
		buf[o] = t.Wall
		buf[o+1] = t.Floor
		buf[o+2] = t.Ceiling
		if t.Solid {
			buf[o+3] = 1
		}
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write grid tiles: %w", err)
	}
	return nil
}

// ReadGrid reconstructs a grid from the raw binary format.
func ReadGrid(r io.Reader) (*TileGrid, error) {
	var header [2]int32
	if err := binary.Read(r, binary.LittleEndian, header[:]); err != nil {
		return nil, fmt.Errorf("read grid header: %w", err)
	}

	grid, err := NewTileGrid(int(header[0]), int(header[1]))
	if err != nil {
		return nil, err
	}

	buf := make([]byte, len(grid.tiles)*tileRecordSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read grid tiles: %w", err)
	}

	for i := range grid.tiles {
		o := i * tileRecordSize
		grid.tiles[i] = Tile{
			Wall:    buf[o],
			Floor:   buf[o+1],
			Ceiling: buf[o+2],
			Solid:   buf[o+3] != 0,
		}
	}
	return grid, nil
}
