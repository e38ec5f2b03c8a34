package snapshotio

import (
	"encoding/json"
	"io"

	"github.com/paulmach/orb/geojson"

	"github.com/DanishNasarudin/wvpac-pathfinder/geom"
	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

// pathDocument is the plain JSON shape of a computed path.
type pathDocument struct {
	Length float64       `json:"length"`
	Count  int           `json:"count"`
	Points []venue.Point `json:"points"`
}

// WritePathJSON writes path as {"length", "count", "points"}. An empty path
// is written with an empty points array, never null.
func WritePathJSON(w io.Writer, path []venue.Point) error {
	if path == nil {
		path = []venue.Point{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(pathDocument{
		Length: geom.PathLength(path),
		Count:  len(path),
		Points: path,
	})
}

// PathFeatureCollection converts path into GeoJSON for map layers.
//
// The collection holds one LineString feature for the whole path (omitted
// when the path has fewer than two points) followed by one Point feature per
// waypoint: consecutive samples sharing an ID are collapsed to the first.
func PathFeatureCollection(path []venue.Point) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if len(path) >= 2 {
		line := geojson.NewFeature(geom.LineString(path))
		line.Properties["kind"] = "route"
		line.Properties["length"] = geom.PathLength(path)
		fc.Append(line)
	}

	for i, p := range path {
		if i > 0 && path[i-1].ID == p.ID {
			continue
		}
		f := geojson.NewFeature(p.Coord())
		f.ID = p.ID
		f.Properties["kind"] = string(p.Kind)
		f.Properties["name"] = p.Name
		f.Properties["floorId"] = p.FloorID
		if p.RoomID != nil {
			f.Properties["roomId"] = *p.RoomID
		}
		fc.Append(f)
	}

	return fc
}

// WritePathGeoJSON writes PathFeatureCollection(path) to w.
func WritePathGeoJSON(w io.Writer, path []venue.Point) error {
	data, err := PathFeatureCollection(path).MarshalJSON()
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)

	return err
}
