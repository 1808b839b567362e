// Package processor decodes all region files of a world save.
package processor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/minedmap/internal/config"
	"github.com/OCharnyshevich/minedmap/internal/region"
	"github.com/OCharnyshevich/minedmap/internal/storage"
	"github.com/OCharnyshevich/minedmap/internal/world/de"
)

// Result is the outcome of decoding one region file.
type Result struct {
	X, Z int
	// Chunks lists the positions of all decoded chunks in file order.
	Chunks []region.Pos
	// Generated counts the chunks whose world generation has finished.
	Generated int
	Err       error
}

// Processor walks the region directory of a world save.
type Processor struct {
	cfg *config.Config
	log *slog.Logger
}

// New creates a Processor with the given config and logger.
func New(cfg *config.Config, log *slog.Logger) *Processor {
	return &Processor{cfg: cfg, log: log}
}

type regionFile struct {
	x, z int
	path string
}

// listRegions returns the region files of the save, ignoring files that
// do not follow the r.<x>.<z>.mca naming convention.
func (p *Processor) listRegions() ([]regionFile, error) {
	dir := p.cfg.RegionDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read region dir: %w", err)
	}

	var files []regionFile
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		x, z, ok := region.ParseFilename(e.Name())
		if !ok {
			p.log.Debug("ignoring file in region dir", "name", e.Name())
			continue
		}
		files = append(files, regionFile{x: x, z: z, path: filepath.Join(dir, e.Name())})
	}
	return files, nil
}

// Run decodes every region file, up to cfg.Workers at a time, and writes
// the region index to the output directory. A region that fails to decode
// is logged and skipped unless cfg.StrictRegions is set.
func (p *Processor) Run(ctx context.Context) ([]Result, error) {
	files, err := p.listRegions()
	if err != nil {
		return nil, err
	}
	p.log.Info("processing regions", "count", len(files), "workers", p.cfg.Workers)

	results := make([]Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)

	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res := processRegion(f)
			results[i] = res

			if res.Err != nil {
				if p.cfg.StrictRegions {
					return fmt.Errorf("region (%d,%d): %w", f.x, f.z, res.Err)
				}
				p.log.Warn("skipping region", "x", f.x, "z", f.z, "error", res.Err)
				return nil
			}
			p.log.Debug("processed region", "x", f.x, "z", f.z,
				"chunks", len(res.Chunks), "generated", res.Generated)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := p.saveIndex(results); err != nil {
		return nil, err
	}
	return results, nil
}

// processRegion decodes a single region file. Each call owns its file.
func processRegion(f regionFile) Result {
	res := Result{X: f.x, Z: f.z}

	rf, err := region.Open(f.path)
	if err != nil {
		res.Err = err
		return res
	}
	defer rf.Close()

	res.Err = region.ForEachChunk(rf.Region, func(x, z int, chunk *de.Chunk) {
		res.Chunks = append(res.Chunks, region.Pos{X: x, Z: z})
		if chunk.Generated() {
			res.Generated++
		}
	})
	return res
}

func (p *Processor) saveIndex(results []Result) error {
	store, err := storage.New(p.cfg.OutputDir, p.log)
	if err != nil {
		return err
	}

	entries := make([]storage.RegionEntry, 0, len(results))
	for _, r := range results {
		e := storage.RegionEntry{X: r.X, Z: r.Z, Chunks: len(r.Chunks)}
		if r.Err != nil {
			e.Error = r.Err.Error()
		}
		entries = append(entries, e)
	}
	return store.SaveRegionIndex(storage.NewRegionIndex(entries))
}
