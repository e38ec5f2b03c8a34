package snapshotio_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanishNasarudin/wvpac-pathfinder/internal/snapshotio"
	"github.com/DanishNasarudin/wvpac-pathfinder/venue"
)

const snapshotJSON = `{
  "floors": [{"id": 1, "name": "Ground", "level": 0, "active": true}],
  "rooms":  [{"id": 10, "name": "Lab", "floorId": 1}, {"id": 20, "name": "Office", "floorId": 1}],
  "points": [
    {"id": 1, "type": "point", "name": "Lab door", "x": 0, "y": 0, "floorId": 1, "roomId": 10},
    {"id": 2, "type": "junction", "name": "", "x": 5, "y": 0, "floorId": 1, "roomId": null},
    {"id": 3, "type": "point", "name": "Office door", "x": 10, "y": 0, "floorId": 1, "roomId": 20}
  ],
  "edges": [
    {"id": 1, "fromId": 1, "toId": 2, "floorId": 1},
    {"id": 2, "fromId": 2, "toId": 3, "floorId": 1}
  ]
}`

const snapshotTOML = `
[[floors]]
id = 1
name = "Ground"
level = 0
active = true

[[points]]
id = 1
type = "point"
name = "Lab door"
x = 0.0
y = 0.0
floorId = 1
roomId = 10

[[points]]
id = 2
type = "junction"
x = 5.0
y = 0.0
floorId = 1

[[edges]]
id = 1
fromId = 1
toId = 2
floorId = 1
`

func TestDecode_JSON(t *testing.T) {
	snap, err := snapshotio.Decode(strings.NewReader(snapshotJSON), snapshotio.FormatJSON)
	require.NoError(t, err)
	require.Len(t, snap.Points, 3)
	require.Len(t, snap.Edges, 2)
	assert.Equal(t, venue.KindJunction, snap.Points[1].Kind)
	assert.Nil(t, snap.Points[1].RoomID)
	require.NotNil(t, snap.Points[2].RoomID)
	assert.Equal(t, 20, *snap.Points[2].RoomID)
}

func TestDecode_TOML(t *testing.T) {
	snap, err := snapshotio.Decode(strings.NewReader(snapshotTOML), snapshotio.FormatTOML)
	require.NoError(t, err)
	require.Len(t, snap.Points, 2)
	assert.True(t, snap.Points[0].InRoom(10))
	assert.Nil(t, snap.Points[1].RoomID)
	require.Len(t, snap.Edges, 1)
	require.NotNil(t, snap.Edges[0].FloorID)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := snapshotio.Decode(strings.NewReader(`{"points": [`), snapshotio.FormatJSON)
	require.Error(t, err)

	dup := `{"points": [
	  {"id": 1, "type": "point", "x": 0, "y": 0, "floorId": 1},
	  {"id": 1, "type": "point", "x": 1, "y": 0, "floorId": 1}
	], "edges": []}`
	_, err = snapshotio.Decode(strings.NewReader(dup), snapshotio.FormatJSON)
	require.ErrorIs(t, err, venue.ErrDuplicatePoint)

	_, err = snapshotio.Decode(strings.NewReader("x"), snapshotio.Format("yaml"))
	require.ErrorIs(t, err, snapshotio.ErrUnknownFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "venue.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(snapshotJSON), 0o644))
	snap, err := snapshotio.Load(jsonPath)
	require.NoError(t, err)
	assert.Len(t, snap.Rooms, 2)

	tomlPath := filepath.Join(dir, "venue.TOML")
	require.NoError(t, os.WriteFile(tomlPath, []byte(snapshotTOML), 0o644))
	snap, err = snapshotio.Load(tomlPath)
	require.NoError(t, err)
	assert.Len(t, snap.Floors, 1)

	_, err = snapshotio.Load(filepath.Join(dir, "venue.yaml"))
	require.ErrorIs(t, err, snapshotio.ErrUnknownFormat)

	_, err = snapshotio.Load(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func samplePath() []venue.Point {
	return []venue.Point{
		{ID: 1, Kind: venue.KindPoint, Name: "Lab door", X: 0, Y: 0, FloorID: 1, RoomID: venue.IntPtr(10)},
		{ID: 1, Kind: venue.KindPoint, Name: "Lab door", X: 1, Y: 0, FloorID: 1, RoomID: venue.IntPtr(10)},
		{ID: 2, Kind: venue.KindJunction, X: 1, Y: 0, FloorID: 1},
		{ID: 2, Kind: venue.KindJunction, X: 1, Y: 1, FloorID: 1},
	}
}

func TestWritePathJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, snapshotio.WritePathJSON(&buf, samplePath()))

	var doc struct {
		Length float64       `json:"length"`
		Count  int           `json:"count"`
		Points []venue.Point `json:"points"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.InDelta(t, 2.0, doc.Length, 1e-12)
	assert.Equal(t, 4, doc.Count)
	assert.Equal(t, samplePath(), doc.Points)

	buf.Reset()
	require.NoError(t, snapshotio.WritePathJSON(&buf, nil))
	assert.Contains(t, buf.String(), `"points": []`)
}

func TestPathFeatureCollection(t *testing.T) {
	fc := snapshotio.PathFeatureCollection(samplePath())
	require.Len(t, fc.Features, 3, "one line plus one feature per waypoint")

	line, ok := fc.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Len(t, line, 4)
	assert.Equal(t, "route", fc.Features[0].Properties["kind"])

	door, ok := fc.Features[1].Geometry.(orb.Point)
	require.True(t, ok)
	assert.Equal(t, orb.Point{0, 0}, door)
	assert.Equal(t, 10, fc.Features[1].Properties["roomId"])
	assert.NotContains(t, fc.Features[2].Properties, "roomId")

	assert.Empty(t, snapshotio.PathFeatureCollection(nil).Features)
}

func TestWritePathGeoJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, snapshotio.WritePathGeoJSON(&buf, samplePath()))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, fc.Features, 3)
	assert.Equal(t, "LineString", fc.Features[0].Geometry.GeoJSONType())
}
