// Package snapshot exports committed terrain and gears to a compressed file
// and reads them back.
//
// A file is a zstd stream holding one JSON header line followed by a gob
// encoded body. The header line keeps files recognizable with zstdcat.
package snapshot

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/landsim/internal/core"
	"github.com/vovakirdan/landsim/internal/fpnum"
	"github.com/vovakirdan/landsim/internal/landgen"
	"github.com/vovakirdan/landsim/internal/physics"
)

// Version is written into every header.
const Version = 1

// ErrCorrupt is returned when a file decodes but its contents disagree.
var ErrCorrupt = errors.New("snapshot: corrupt terrain snapshot")

// Header describes a snapshot.
type Header struct {
	Version       int       `json:"version"`
	TemplateID    string    `json:"template_id"`
	Seed          string    `json:"seed"`
	Tick          uint64    `json:"tick"`
	Width         int       `json:"width"`
	Height        int       `json:"height"`
	TerrainDigest uint64    `json:"terrain_digest"`
	PhysicsDigest uint64    `json:"physics_digest"`
	CreatedAt     time.Time `json:"created_at"`
}

// TerrainV1 is the on-disk body.
type TerrainV1 struct {
	Header   Header
	Cells    []uint32 // Row-major land codes
	Gears    []GearV1
	Drowned  int
	NextGear uint32
}

// GearV1 stores a gear with raw fixed-point components.
type GearV1 struct {
	ID      uint32
	X, Y    int64
	VX, VY  int64
	Resting bool
}

// Capture copies land and the physics state into a snapshot body. The
// header's size, tick and digests are filled in from land and phys.
func Capture(h Header, land *landgen.Land2D[uint32], phys *physics.World) TerrainV1 {
	h.Version = Version
	h.Width, h.Height = land.Width(), land.Height()
	h.Tick = phys.Ticks()
	h.TerrainDigest = land.Digest()
	h.PhysicsDigest = phys.Digest()

	cells := make([]uint32, 0, land.Size().Area())
	for y := 0; y < land.Height(); y++ {
		cells = append(cells, land.Row(y)...)
	}

	gears := phys.Gears()
	gv := make([]GearV1, len(gears))
	for i, g := range gears {
		gv[i] = GearV1{
			ID:      uint32(g.ID),
			X:       g.Position.X.Raw(),
			Y:       g.Position.Y.Raw(),
			VX:      g.Velocity.X.Raw(),
			VY:      g.Velocity.Y.Raw(),
			Resting: g.Resting,
		}
	}
	return TerrainV1{
		Header:   h,
		Cells:    cells,
		Gears:    gv,
		Drowned:  phys.Drowned(),
		NextGear: uint32(phys.NextGearID()),
	}
}

// Land rebuilds the terrain bitmap.
func (t TerrainV1) Land() (*landgen.Land2D[uint32], error) {
	w, h := t.Header.Width, t.Header.Height
	if w <= 0 || h <= 0 || len(t.Cells) != w*h {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrCorrupt, len(t.Cells), w, h)
	}

	land := landgen.NewLand2D[uint32](core.Sz(w, h), 0)
	for y := 0; y < h; y++ {
		copy(land.Row(y), t.Cells[y*w:(y+1)*w])
	}
	if land.Digest() != t.Header.TerrainDigest {
		return nil, fmt.Errorf("%w: terrain digest mismatch", ErrCorrupt)
	}
	return land, nil
}

// Physics rebuilds the physics world so that stepping it continues the
// captured trajectory.
func (t TerrainV1) Physics() (*physics.World, error) {
	gears := make([]physics.Gear, len(t.Gears))
	for i, g := range t.Gears {
		gears[i] = physics.Gear{
			ID:       physics.GearID(g.ID),
			Position: fpnum.Point{X: fpnum.Number(g.X), Y: fpnum.Number(g.Y)},
			Velocity: fpnum.Point{X: fpnum.Number(g.VX), Y: fpnum.Number(g.VY)},
			Resting:  g.Resting,
		}
	}
	size := core.Sz(t.Header.Width, t.Header.Height)
	phys := physics.Restore(size, gears, t.Header.Tick, t.Drowned, physics.GearID(t.NextGear))
	if phys.Digest() != t.Header.PhysicsDigest {
		return nil, fmt.Errorf("%w: physics digest mismatch", ErrCorrupt)
	}
	return phys, nil
}

// Write stores snap at path, creating parent directories.
func Write(path string, snap TerrainV1) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("snapshot: cannot create %s: %w", path, err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	bw := bufio.NewWriterSize(enc, 256*1024)

	hb, err := json.Marshal(snap.Header)
	if err != nil {
		enc.Close()
		return fmt.Errorf("snapshot: header: %w", err)
	}
	if _, err := bw.Write(append(hb, '\n')); err != nil {
		enc.Close()
		return err
	}
	if err := gob.NewEncoder(bw).Encode(&snap); err != nil {
		enc.Close()
		return fmt.Errorf("gob encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return f.Sync()
}

// Read loads a whole snapshot. The header line must agree with the
// header stored in the body.
func Read(path string) (TerrainV1, error) {
	var snap TerrainV1
	br, closeFn, err := open(path)
	if err != nil {
		return snap, err
	}
	defer closeFn()

	line, err := br.ReadBytes('\n')
	if err != nil {
		return snap, fmt.Errorf("%w: missing header: %v", ErrCorrupt, err)
	}
	var h Header
	if err := json.Unmarshal(line, &h); err != nil {
		return snap, fmt.Errorf("%w: header: %v", ErrCorrupt, err)
	}
	if err := gob.NewDecoder(br).Decode(&snap); err != nil {
		return snap, fmt.Errorf("gob decode: %w", err)
	}
	if snap.Header.Version != Version {
		return snap, fmt.Errorf("%w: version %d", ErrCorrupt, snap.Header.Version)
	}
	if !h.matches(snap.Header) {
		return snap, fmt.Errorf("%w: header line disagrees with body", ErrCorrupt)
	}
	return snap, nil
}

func (h Header) matches(o Header) bool {
	created := h.CreatedAt.Equal(o.CreatedAt)
	h.CreatedAt, o.CreatedAt = time.Time{}, time.Time{}
	return created && h == o
}

func open(path string) (*bufio.Reader, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return bufio.NewReaderSize(dec, 256*1024), func() {
		dec.Close()
		f.Close()
	}, nil
}
