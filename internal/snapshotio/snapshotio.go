// Package snapshotio reads venue snapshots from disk and writes computed
// paths for renderers.
//
// Snapshots are accepted as JSON or TOML. The field names follow the
// persisted records (id, type, floorId, roomId, fromId, toId), so an export
// from the admin store can be used as is. Every decoded snapshot is checked
// with venue.Snapshot.Validate before it is returned.
//
// Paths are written either as a plain JSON document or as a GeoJSON
// FeatureCollection built with github.com/paulmach/orb/geojson.
package snapshotio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

// ErrUnknownFormat indicates a file extension or format name that is neither
// JSON nor TOML.
var ErrUnknownFormat = errors.New("snapshotio: unknown format")

// Format names a snapshot encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath derives the format from a file extension (.json or .toml).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Load reads and validates the snapshot stored at path.
func Load(path string) (venue.Snapshot, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return venue.Snapshot{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return venue.Snapshot{}, err
	}
	defer f.Close()

	snap, err := Decode(f, format)
	if err != nil {
		return venue.Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}

	return snap, nil
}

// Decode reads a snapshot in the given format from r and validates it.
func Decode(r io.Reader, format Format) (venue.Snapshot, error) {
	var snap venue.Snapshot

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&snap); err != nil {
			return venue.Snapshot{}, fmt.Errorf("decode json: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&snap); err != nil {
			return venue.Snapshot{}, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return venue.Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := snap.Validate(); err != nil {
		return venue.Snapshot{}, err
	}

	return snap, nil
}
