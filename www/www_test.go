package www

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anyseat/go-anyseat-places"
	"github.com/anyseat/go-anyseat-places/listing"
	"github.com/paulmach/orb/geojson"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() []*places.Place {
	return []*places.Place{
		{Id: "1", Name: "TCDC", Type: places.Library, Coordinates: places.Coordinates{Lat: 13.7286, Lng: 100.5145}, WifiAvailable: true, PowerOutlets: true},
		{Id: "2", Name: "Roast", Type: places.Cafe, Coordinates: places.Coordinates{Lat: 13.7307, Lng: 100.5697}, WifiAvailable: true},
		{Id: "3", Name: "Neilson Hays", Type: places.Library, Coordinates: places.Coordinates{Lat: 13.7262, Lng: 100.5339}},
	}
}

func newTestMux(t *testing.T) (*http.ServeMux, *Metrics) {

	t.Helper()

	m, err := NewMetrics()
	require.NoError(t, err)

	opts := &HandlerOptions{
		Dataset:  testDataset(),
		Metrics:  m,
		PageSize: 2,
	}

	return NewServeMux(opts), m
}

func get(t *testing.T, mux http.Handler, path string) *httptest.ResponseRecorder {

	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rsp := httptest.NewRecorder()

	mux.ServeHTTP(rsp, req)
	return rsp
}

func TestPlacesHandler(t *testing.T) {

	mux, m := newTestMux(t)

	rsp := get(t, mux, "/api/places?type=library&selected=3")
	require.Equal(t, http.StatusOK, rsp.Code)

	var p listing.Page

	err := json.Unmarshal(rsp.Body.Bytes(), &p)
	require.NoError(t, err)

	assert.Equal(t, 2, p.Total)
	require.Len(t, p.Places, 2)
	assert.Equal(t, "1", p.Places[0].Id)
	assert.False(t, p.Places[0].Selected)
	assert.True(t, p.Places[1].Selected)

	rsp = get(t, mux, "/api/places?page=2")
	require.Equal(t, http.StatusOK, rsp.Code)

	err = json.Unmarshal(rsp.Body.Bytes(), &p)
	require.NoError(t, err)

	assert.Equal(t, 3, p.Total)
	assert.Equal(t, 2, p.LastPage)
	require.Len(t, p.Places, 1)
	assert.Equal(t, "3", p.Places[0].Id)

	rsp = get(t, mux, "/api/places?wifi=true&power=true&type=cafe")
	require.Equal(t, http.StatusOK, rsp.Code)

	err = json.Unmarshal(rsp.Body.Bytes(), &p)
	require.NoError(t, err)

	assert.Equal(t, 0, p.Total)
	assert.Empty(t, p.Places)

	for _, page := range []string{"0", "two", "99999999999999999999"} {
		rsp = get(t, mux, "/api/places?page="+page)
		assert.Equal(t, http.StatusBadRequest, rsp.Code, page)
	}

	rsp = get(t, mux, "/api/places?page=4611686018427387905")
	require.Equal(t, http.StatusOK, rsp.Code)

	err = json.Unmarshal(rsp.Body.Bytes(), &p)
	require.NoError(t, err)

	assert.Equal(t, 3, p.Total)
	assert.Empty(t, p.Places)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.requests.WithLabelValues("places", "200")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.requests.WithLabelValues("places", "400")))
}

func TestPlaceHandler(t *testing.T) {

	mux, m := newTestMux(t)

	rsp := get(t, mux, "/api/places/2")
	require.Equal(t, http.StatusOK, rsp.Code)

	var pl places.Place

	err := json.Unmarshal(rsp.Body.Bytes(), &pl)
	require.NoError(t, err)

	assert.Equal(t, "Roast", pl.Name)

	rsp = get(t, mux, "/api/places/z")
	assert.Equal(t, http.StatusNotFound, rsp.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("place", "404")))
}

func TestTypesHandler(t *testing.T) {

	mux, _ := newTestMux(t)

	rsp := get(t, mux, "/api/types")
	require.Equal(t, http.StatusOK, rsp.Code)

	var types []places.PlaceType

	err := json.Unmarshal(rsp.Body.Bytes(), &types)
	require.NoError(t, err)

	assert.Equal(t, []places.PlaceType{places.Library, places.Cafe}, types)
}

func TestMapHandler(t *testing.T) {

	mux, _ := newTestMux(t)

	rsp := get(t, mux, "/api/map?wifi=1&selected=2")
	require.Equal(t, http.StatusOK, rsp.Code)

	assert.Equal(t, "13.730700,100.569700,15", rsp.Header().Get(ViewportHeader))

	fc, err := geojson.UnmarshalFeatureCollection(rsp.Body.Bytes())
	require.NoError(t, err)

	require.Len(t, fc.Features, 2)
	assert.Equal(t, false, fc.Features[0].Properties["selected"])
	assert.Equal(t, true, fc.Features[1].Properties["selected"])

	// Selected but filtered out: the map still flies there, no marker is highlighted.
	rsp = get(t, mux, "/api/map?wifi=1&selected=3")
	require.Equal(t, http.StatusOK, rsp.Code)

	assert.Equal(t, "13.726200,100.533900,15", rsp.Header().Get(ViewportHeader))
	assert.NotContains(t, rsp.Body.String(), `"selected":true`)

	rsp = get(t, mux, "/api/map?selected=z")
	require.Equal(t, http.StatusOK, rsp.Code)

	assert.Equal(t, "13.756300,100.501800,13", rsp.Header().Get(ViewportHeader))
}

func TestMetricsHandler(t *testing.T) {

	mux, _ := newTestMux(t)

	get(t, mux, "/api/types")

	rsp := get(t, mux, "/metrics")
	require.Equal(t, http.StatusOK, rsp.Code)

	body := rsp.Body.String()

	assert.True(t, strings.Contains(body, `anyseat_http_requests_total{code="200",route="types"} 1`), body)
}
