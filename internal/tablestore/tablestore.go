package tablestore

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store keeps one raw table file per region. Writes go to a temp file in
// the same directory and are renamed into place, so a reader never sees
// a partially written table and an interrupted download leaves the
// previous file untouched.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create tables dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// PathFor returns the canonical path of a region's table file. The file
// may not exist yet.
func (s *Store) PathFor(regionID string) string {
	return filepath.Join(s.dir, regionID+".csv")
}

// Fingerprint returns the hex sha256 of the stored table, or "" when no
// table has ever been stored for the region.
func (s *Store) Fingerprint(regionID string) (string, error) {
	f, err := os.Open(s.PathFor(regionID))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash table: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// WriteAtomic replaces the region's table with the contents of r. Either
// the full new table becomes visible or the old one stays in place.
func (s *Store) WriteAtomic(regionID string, r io.Reader) error {
	tmp, err := os.CreateTemp(s.dir, regionID+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp table: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp table: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp table: %w", err)
	}

	if err := os.Rename(tmpName, s.PathFor(regionID)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace table: %w", err)
	}
	return nil
}
