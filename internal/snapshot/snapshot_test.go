package snapshot

import (
	"encoding/gob"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/landsim/internal/core"
	"github.com/vovakirdan/landsim/internal/fpnum"
	"github.com/vovakirdan/landsim/internal/landgen"
	"github.com/vovakirdan/landsim/internal/physics"
)

func sampleState() (*landgen.Land2D[uint32], *physics.World) {
	land := landgen.NewLand2D[uint32](core.Sz(40, 20), 0)
	for y := 15; y < 20; y++ {
		land.DrawLine(core.Pt(0, y), core.Pt(34, y), 0xffffffff)
	}
	w := physics.New(land.Size())
	w.AddGear(core.Pt(5, 2), fpnum.Point{X: fpnum.One})
	w.AddGear(core.Pt(30, 2), fpnum.Point{})
	w.AddGear(core.Pt(37, 2), fpnum.Point{Y: fpnum.FromInt(2)}) // Falls through the gap
	for i := 0; i < 10; i++ {
		w.Step(fpnum.One, land)
	}
	return land, w
}

func TestWriteRead(t *testing.T) {
	land, w := sampleState()
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := Capture(Header{TemplateID: "box", Seed: "abc", CreatedAt: created}, land, w)

	path := filepath.Join(t.TempDir(), "out", "terrain.zst")
	if err := Write(path, snap); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got.Header.TemplateID != "box" || got.Header.Width != 40 || got.Header.Height != 20 || got.Header.Tick != 10 {
		t.Errorf("header = %+v", got.Header)
	}
	if got.Header.Version != Version || got.Header.PhysicsDigest != w.Digest() || !got.Header.CreatedAt.Equal(created) {
		t.Errorf("header = %+v", got.Header)
	}

	restored, err := got.Land()
	if err != nil {
		t.Fatalf("Land failed: %v", err)
	}
	if !restored.Equal(land) {
		t.Error("restored terrain differs")
	}

	phys, err := got.Physics()
	if err != nil {
		t.Fatalf("Physics failed: %v", err)
	}
	if phys.Drowned() != 1 || phys.NextGearID() != w.NextGearID() {
		t.Errorf("drowned %d, next gear %d", phys.Drowned(), phys.NextGearID())
	}
	gears, orig := phys.Gears(), w.Gears()
	if len(gears) != len(orig) {
		t.Fatalf("got %d gears, expected %d", len(gears), len(orig))
	}
	for i := range orig {
		if gears[i] != orig[i] {
			t.Errorf("gear %d = %+v, expected %+v", i, gears[i], orig[i])
		}
	}

	for i := 0; i < 15; i++ {
		w.Step(fpnum.One, land)
		phys.Step(fpnum.One, restored)
	}
	if phys.Digest() != w.Digest() {
		t.Error("restored physics diverged from the original")
	}
}

func TestReadRejectsMismatchedHeader(t *testing.T) {
	land, w := sampleState()
	snap := Capture(Header{TemplateID: "box", Seed: "s"}, land, w)

	forged := snap.Header
	forged.Seed = "other"
	hb, err := json.Marshal(forged)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "forged.zst")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := enc.Write(append(hb, '\n')); err != nil {
		t.Fatal(err)
	}
	if err := gob.NewEncoder(enc).Encode(&snap); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := Read(path); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
}

func TestLandRejectsCorruptBody(t *testing.T) {
	land, w := sampleState()
	snap := Capture(Header{}, land, w)

	short := snap
	short.Cells = short.Cells[:10]
	if _, err := short.Land(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("short cells: expected ErrCorrupt, got %v", err)
	}

	tampered := snap
	tampered.Cells = append([]uint32(nil), snap.Cells...)
	tampered.Cells[0] = 7
	if _, err := tampered.Land(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("tampered cells: expected ErrCorrupt, got %v", err)
	}

	moved := snap
	moved.Gears = append([]GearV1(nil), snap.Gears...)
	moved.Gears[0].X++
	if _, err := moved.Physics(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("moved gear: expected ErrCorrupt, got %v", err)
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.zst")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "junk.zst")
	if err := os.WriteFile(path, []byte("not zstd at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(path); err == nil {
		t.Error("expected an error for a non-zstd file")
	}
}
