package emitter

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/anyseat/go-anyseat-places"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture_json = `[
  {"id": "1", "name": "TCDC Bangkok", "type": "library", "coordinates": {"lat": 13.7286, "lng": 100.5145}, "images": ["a.jpg", "b.jpg"], "wifiAvailable": true, "powerOutlets": true},
  {"id": "2", "name": "Roast", "type": "cafe", "coordinates": {"lat": 13.7307, "lng": 100.5697}, "address": "Thong Lo Soi 17", "images": ["c.jpg"], "wifiAvailable": true}
]`

const fixture_csv = `id,name,type,latitude,longitude,address,description,images,wifi,power
1,TCDC Bangkok,library,13.7286,100.5145,,,a.jpg;b.jpg,true,true
2,Roast,cafe,13.7307,100.5697,Thong Lo Soi 17,,c.jpg,true,
`

const fixture_yaml = `
- id: "1"
  name: TCDC Bangkok
  type: library
  coordinates: {lat: 13.7286, lng: 100.5145}
  images: [a.jpg, b.jpg]
  wifiAvailable: true
  powerOutlets: true
- id: "2"
  name: Roast
  type: cafe
  coordinates: {lat: 13.7307, lng: 100.5697}
  address: Thong Lo Soi 17
  images: [c.jpg]
  wifiAvailable: true
`

func expectedFixture() []*places.Place {
	return []*places.Place{
		{Id: "1", Name: "TCDC Bangkok", Type: places.Library, Coordinates: places.Coordinates{Lat: 13.7286, Lng: 100.5145}, Images: []string{"a.jpg", "b.jpg"}, WifiAvailable: true, PowerOutlets: true},
		{Id: "2", Name: "Roast", Type: places.Cafe, Coordinates: places.Coordinates{Lat: 13.7307, Lng: 100.5697}, Address: "Thong Lo Soi 17", Images: []string{"c.jpg"}, WifiAvailable: true},
	}
}

func writeFixture(t *testing.T, name string, body string) string {

	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	err := os.WriteFile(path, []byte(body), 0644)
	require.NoError(t, err)

	return path
}

func writeSQLiteFixture(t *testing.T) string {

	t.Helper()

	path := filepath.Join(t.TempDir(), "places.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)

	defer db.Close()

	_, err = db.Exec(SQLiteSchema)
	require.NoError(t, err)

	insert := `INSERT INTO places (id, name, type, latitude, longitude, address, description, images, wifi, power) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = db.Exec(insert, "1", "TCDC Bangkok", "library", 13.7286, 100.5145, "", "", `["a.jpg","b.jpg"]`, 1, 1)
	require.NoError(t, err)

	_, err = db.Exec(insert, "2", "Roast", "cafe", 13.7307, 100.5697, "Thong Lo Soi 17", "", `["c.jpg"]`, 1, 0)
	require.NoError(t, err)

	return path
}

func TestEmittersAgree(t *testing.T) {

	ctx := context.Background()

	json_path := writeFixture(t, "places.json", fixture_json)
	csv_path := writeFixture(t, "places.csv", fixture_csv)
	yaml_path := writeFixture(t, "places.yaml", fixture_yaml)
	sqlite_path := writeSQLiteFixture(t)

	uris := []string{
		fmt.Sprintf("json://%s", json_path),
		fmt.Sprintf("json:///places.json?reader-uri=fs://%s", filepath.Dir(json_path)),
		fmt.Sprintf("csv://%s", csv_path),
		fmt.Sprintf("yaml://%s", yaml_path),
		fmt.Sprintf("sqlite3://%s", sqlite_path),
	}

	for _, uri := range uris {

		dataset, err := Load(ctx, uri)
		require.NoError(t, err, uri)

		assert.Equal(t, expectedFixture(), dataset, uri)
	}
}

func TestCSVEmitterBzip2(t *testing.T) {

	ctx := context.Background()

	path, err := filepath.Abs(filepath.Join("testdata", "places.csv.bz2"))
	require.NoError(t, err)

	dataset, err := Load(ctx, fmt.Sprintf("csv://%s?bzip2=true", path))
	require.NoError(t, err)

	assert.Equal(t, expectedFixture(), dataset)

	plain, err := filepath.Abs(filepath.Join("testdata", "places.csv"))
	require.NoError(t, err)

	dataset, err = Load(ctx, fmt.Sprintf("csv://%s?bzip2=false", plain))
	require.NoError(t, err)

	assert.Equal(t, expectedFixture(), dataset)

	_, err = NewEmitter(ctx, fmt.Sprintf("csv://%s?bzip2=maybe", path))
	assert.Error(t, err)
}

func TestCSVRoundTrip(t *testing.T) {

	for _, pl := range expectedFixture() {

		row := PlaceToRow(pl)

		pl2, err := RowToPlace(row)
		require.NoError(t, err)

		assert.Equal(t, pl, pl2)
	}

	_, err := RowToPlace(map[string]string{CSVId: "x", CSVLatitude: "north", CSVLongitude: "1"})
	assert.Error(t, err)
}

func TestEmbedEmitter(t *testing.T) {

	ctx := context.Background()

	dataset, err := Load(ctx, "embed://")
	require.NoError(t, err)

	require.NotEmpty(t, dataset)
	assert.NoError(t, places.Validate(dataset))

	types := places.Types(dataset)
	assert.ElementsMatch(t, places.KnownTypes(), types)
}

func TestCollectRejectsInvalid(t *testing.T) {

	ctx := context.Background()

	duplicate := writeFixture(t, "dupe.json", `[{"id":"1","type":"cafe","coordinates":{"lat":1,"lng":1}},{"id":"1","type":"cafe","coordinates":{"lat":2,"lng":2}}]`)

	_, err := Load(ctx, fmt.Sprintf("json://%s", duplicate))
	assert.ErrorIs(t, err, places.ErrDuplicateId)

	out_of_range := writeFixture(t, "range.json", `[{"id":"1","type":"cafe","coordinates":{"lat":91,"lng":1}}]`)

	_, err = Load(ctx, fmt.Sprintf("json://%s", out_of_range))
	assert.ErrorIs(t, err, places.ErrInvalidPlace)

	not_array := writeFixture(t, "object.json", `{"id":"1"}`)

	_, err = Load(ctx, fmt.Sprintf("json://%s", not_array))
	assert.Error(t, err)
}

func TestEmitterSchemes(t *testing.T) {

	schemes := EmitterSchemes()

	for _, s := range []string{"csv://", "embed://", "json://", "sqlite3://", "yaml://"} {
		assert.Contains(t, schemes, s)
	}

	_, err := NewEmitter(context.Background(), "carrier-pigeon://")
	assert.ErrorIs(t, err, ErrUnsupportedScheme)

	_, err = NewEmitter(context.Background(), "/usr/local/data/places.json")
	assert.ErrorIs(t, err, ErrMissingScheme)
}
