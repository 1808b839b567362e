package processor

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tnze/go-mc/nbt"

	"github.com/OCharnyshevich/minedmap/internal/config"
	"github.com/OCharnyshevich/minedmap/internal/region"
	"github.com/OCharnyshevich/minedmap/internal/storage"
	"github.com/OCharnyshevich/minedmap/internal/world/de"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func encodeChunk(t *testing.T, c de.Chunk) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := nbt.NewEncoder(&buf).Encode(c, ""); err != nil {
		t.Fatalf("encode chunk: %v", err)
	}
	return buf.Bytes()
}

// setupWorld creates a save with a valid region (0,0) holding three chunks,
// a region (1,-1) whose only chunk has an unknown format tag and a file
// that is not a region.
func setupWorld(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		InputDir:  filepath.Join(root, "world"),
		OutputDir: filepath.Join(root, "map"),
		Workers:   2,
	}

	chunks := map[region.Pos][]byte{
		{X: 0, Z: 0}:  encodeChunk(t, de.Chunk{DataVersion: 3465, Status: "minecraft:full"}),
		{X: 3, Z: 9}:  encodeChunk(t, de.Chunk{DataVersion: 3465, XPos: 3, ZPos: 9, Status: "minecraft:full"}),
		{X: 31, Z: 1}: encodeChunk(t, de.Chunk{DataVersion: 3465, XPos: 31, ZPos: 1, Status: "minecraft:features"}),
	}
	if err := region.Save(cfg.RegionDir(), 0, 0, chunks); err != nil {
		t.Fatalf("save region: %v", err)
	}

	corrupt := make([]byte, 3*4096)
	binary.BigEndian.PutUint32(corrupt[0:4], 2<<8|1)
	binary.BigEndian.PutUint32(corrupt[2*4096:], 1)
	corrupt[2*4096+4] = 9
	if err := os.WriteFile(filepath.Join(cfg.RegionDir(), "r.1.-1.mca"), corrupt, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(cfg.RegionDir(), "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestRunSkipsBrokenRegions(t *testing.T) {
	cfg := setupWorld(t)

	results, err := New(cfg, testLogger()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	byPos := make(map[[2]int]Result)
	for _, r := range results {
		byPos[[2]int{r.X, r.Z}] = r
	}

	ok := byPos[[2]int{0, 0}]
	if ok.Err != nil {
		t.Fatalf("region (0,0): %v", ok.Err)
	}
	if len(ok.Chunks) != 3 {
		t.Errorf("region (0,0) decoded %d chunks, want 3", len(ok.Chunks))
	}
	if ok.Generated != 2 {
		t.Errorf("region (0,0) has %d generated chunks, want 2", ok.Generated)
	}

	broken := byPos[[2]int{1, -1}]
	if !errors.Is(broken.Err, region.ErrUnknownFormat) {
		t.Errorf("region (1,-1) error = %v, want ErrUnknownFormat", broken.Err)
	}

	store, err := storage.New(cfg.OutputDir, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	idx, err := store.LoadRegionIndex()
	if err != nil || idx == nil {
		t.Fatalf("LoadRegionIndex = %v, %v", idx, err)
	}
	if len(idx.Regions) != 2 {
		t.Errorf("index has %d regions, want 2", len(idx.Regions))
	}
	if idx.Bounds == nil || *idx.Bounds != (storage.Bounds{}) {
		t.Errorf("index bounds = %+v, want only region (0,0)", idx.Bounds)
	}
}

func TestRunStrictRegions(t *testing.T) {
	cfg := setupWorld(t)
	cfg.StrictRegions = true

	_, err := New(cfg, testLogger()).Run(context.Background())
	if !errors.Is(err, region.ErrUnknownFormat) {
		t.Fatalf("Run error = %v, want ErrUnknownFormat", err)
	}
}

func TestRunCancelled(t *testing.T) {
	cfg := setupWorld(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(cfg, testLogger()).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
}

func TestRunMissingRegionDir(t *testing.T) {
	cfg := &config.Config{InputDir: t.TempDir(), OutputDir: t.TempDir(), Workers: 1}
	if _, err := New(cfg, testLogger()).Run(context.Background()); err == nil {
		t.Fatal("Run succeeded without a region dir")
	}
}
