package maskgen

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Raw layout: little-endian int32 Nx, Ny, Nz, then Nx*Ny*Nz*3 float64 values
// in Buf order.
const rawHeaderSize = 12

// SaveRawRGB64 dumps the mask buffer to path, creating parent directories.
func (s *Scene) SaveRawRGB64(path string) error {
	if s.Nx < 0 || s.Ny < 0 || s.Nz < 0 {
		return fmt.Errorf("negative dimensions: Nx=%d Ny=%d Nz=%d", s.Nx, s.Ny, s.Nz)
	}
	// 64-bit multiply to avoid overflow
	want := int64(s.Nx) * int64(s.Ny) * int64(s.Nz) * 3
	if int64(len(s.Buf)) != want {
		return fmt.Errorf("buffer length mismatch: got %d, expected %d (Nx*Ny*Nz*3)", len(s.Buf), want)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	header := [3]int32{int32(s.Nx), int32(s.Ny), int32(s.Nz)}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		f.Close()
		return err
	}
	if want > 0 {
		if err := binary.Write(w, binary.LittleEndian, s.Buf); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadRawRGB64 reads a file written by SaveRawRGB64. Only the grid and the
// buffer are restored; the spatial placement is not part of the format.
// The header must match the file size exactly.
func LoadRawRGB64(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, err
	}

	r := bufio.NewReader(f)
	var header [3]int32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("read raw header %s: %w", path, err)
	}
	nx, ny, nz := int64(header[0]), int64(header[1]), int64(header[2])
	if nx < 0 || ny < 0 || nz < 0 {
		return nil, fmt.Errorf("raw %s: negative dimensions (%d, %d, %d)", path, nx, ny, nz)
	}
	// each factor is < 2^31, so the first product fits; check the rest against the body size
	body := st.Size() - rawHeaderSize
	values := body / 8
	n := nx * ny
	if n > 0 && (nz > values/n || nz*n > values/3) {
		return nil, fmt.Errorf("raw %s: header (%d, %d, %d) needs more than the %d bytes stored", path, nx, ny, nz, body)
	}
	want := n * nz * 3
	if want*8 != body {
		return nil, fmt.Errorf("raw %s: header (%d, %d, %d) needs %d bytes, file has %d", path, nx, ny, nz, want*8, body)
	}

	s := &Scene{Nx: int(nx), Ny: int(ny), Nz: int(nz), StrideY: int(nz) * 3, StrideX: int(ny*nz) * 3}
	s.Buf = make([]Real, want)
	if want > 0 {
		if err := binary.Read(r, binary.LittleEndian, s.Buf); err != nil {
			return nil, fmt.Errorf("read raw body %s: %w", path, err)
		}
	}
	if _, err := r.ReadByte(); err != io.EOF {
		return nil, fmt.Errorf("raw %s: trailing data after %d values", path, len(s.Buf))
	}
	return s, nil
}
