package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const regionIndexFile = "regions.json"

// Storage handles file-based output of the map data directory.
type Storage struct {
	dir string
	log *slog.Logger
}

// New creates a new Storage rooted at dir, creating it as needed.
func New(dir string, log *slog.Logger) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}
	return &Storage{dir: dir, log: log}, nil
}

// LoadRegionIndex reads regions.json, or returns nil if it does not exist.
func (s *Storage) LoadRegionIndex() (*RegionIndex, error) {
	path := filepath.Join(s.dir, regionIndexFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read region index: %w", err)
	}

	var idx RegionIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parse region index: %w", err)
	}
	return &idx, nil
}

// SaveRegionIndex writes idx to regions.json atomically.
func (s *Storage) SaveRegionIndex(idx *RegionIndex) error {
	path := filepath.Join(s.dir, regionIndexFile)
	if err := s.atomicWriteJSON(path, idx); err != nil {
		return err
	}
	s.log.Info("saved region index", "path", path, "regions", len(idx.Regions))
	return nil
}

// atomicWriteJSON marshals v to JSON and writes it atomically using a temp file + rename.
func (s *Storage) atomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
