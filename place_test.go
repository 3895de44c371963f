package places

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceValidate(t *testing.T) {

	pl := &Place{Id: "1", Type: Cafe, Coordinates: Coordinates{Lat: 13.7563, Lng: 100.5018}}
	assert.NoError(t, pl.Validate())

	tests := map[string]*Place{
		"missing id":    {Type: Cafe},
		"unknown type":  {Id: "1", Type: "museum"},
		"latitude":      {Id: "1", Type: Cafe, Coordinates: Coordinates{Lat: -90.5}},
		"longitude":     {Id: "1", Type: Cafe, Coordinates: Coordinates{Lng: 180.1}},
		"nan latitude":  {Id: "1", Type: Cafe, Coordinates: Coordinates{Lat: math.NaN()}},
		"inf longitude": {Id: "1", Type: Cafe, Coordinates: Coordinates{Lng: math.Inf(-1)}},
	}

	for label, pl := range tests {
		assert.ErrorIs(t, pl.Validate(), ErrInvalidPlace, label)
	}

	edge := &Place{Id: "1", Type: Library, Coordinates: Coordinates{Lat: -90, Lng: 180}}
	assert.NoError(t, edge.Validate())
}

func TestPlaceTypes(t *testing.T) {

	assert.Equal(t, "Workspace", Workspace.Label())
	assert.Equal(t, "", PlaceType("").Label())
	assert.Equal(t, "📚", Library.Emoji())
	assert.Equal(t, "📍", PlaceType("museum").Emoji())
	assert.True(t, Cafe.IsKnown())
	assert.False(t, PlaceType("Cafe").IsKnown())
}

func TestPlaceJSON(t *testing.T) {

	body := `{"id":"a","name":"Roast","type":"cafe","coordinates":{"lat":13.73,"lng":100.57},"wifiAvailable":true}`

	var pl Place

	err := json.Unmarshal([]byte(body), &pl)
	require.NoError(t, err)

	assert.True(t, pl.WifiAvailable)
	assert.False(t, pl.PowerOutlets, "absent flags are false")
	assert.Empty(t, pl.Images)
	assert.Equal(t, orb.Point{100.57, 13.73}, pl.Point())
	assert.Equal(t, "Roast a", pl.String())

	out, err := json.Marshal(&pl)
	require.NoError(t, err)

	assert.JSONEq(t, body, string(out))
}
