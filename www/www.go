// Package www provides read-only HTTP handlers over a static place dataset. Each request derives
// its own filter selection from the query string; no state is shared between requests.
package www

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/anyseat/go-anyseat-places"
	"github.com/anyseat/go-anyseat-places/filter"
	"github.com/anyseat/go-anyseat-places/listing"
	"github.com/anyseat/go-anyseat-places/mapview"
	"github.com/anyseat/go-anyseat-places/session"
	"github.com/anyseat/go-anyseat-places/viewport"
)

// ViewportHeader carries the "lat,lng,zoom" viewport for a map response.
const ViewportHeader = "X-Anyseat-Viewport"

type HandlerOptions struct {
	Dataset  []*places.Place
	Metrics  *Metrics
	PageSize int
	Logger   *slog.Logger
}

// NewServeMux returns a `http.ServeMux` with every handler in this package attached.
func NewServeMux(opts *HandlerOptions) *http.ServeMux {

	mux := http.NewServeMux()

	mux.Handle("GET /api/places", PlacesHandler(opts))
	mux.Handle("GET /api/places/{id}", PlaceHandler(opts))
	mux.Handle("GET /api/types", TypesHandler(opts))
	mux.Handle("GET /api/map", MapHandler(opts))

	if opts.Metrics != nil {
		mux.Handle("GET /metrics", opts.Metrics.Handler())
	}

	return mux
}

// PlacesHandler returns a page of places matching the "type", "wifi" and "power" query parameters.
// The "selected" parameter marks the matching card; "page" defaults to 1.
func PlacesHandler(opts *HandlerOptions) http.Handler {

	route := "places"

	fn := func(rsp http.ResponseWriter, req *http.Request) {

		q := req.URL.Query()

		page := 1
		str_page := q.Get("page")

		if str_page != "" {

			v, err := strconv.Atoi(str_page)

			if err != nil {
				writeError(opts, rsp, route, "Invalid 'page' value: "+str_page, http.StatusBadRequest)
				return
			}

			page = v
		}

		sess := newSession(opts, req, viewport.NewRecorder(viewport.Default()))
		defer sess.Close()

		filtered := sess.Filtered()
		opts.Metrics.observeResults(route, len(filtered))

		selected_id, _ := sess.Coordinator().Current()

		p, err := listing.Paginate(filtered, selected_id, page, opts.PageSize)

		if err != nil {

			if errors.Is(err, listing.ErrInvalidPage) {
				writeError(opts, rsp, route, "Invalid 'page' value: "+str_page, http.StatusBadRequest)
				return
			}

			writeError(opts, rsp, route, "Failed to paginate places", http.StatusInternalServerError)
			return
		}

		writeJSON(opts, rsp, route, p)
	}

	return http.HandlerFunc(fn)
}

// PlaceHandler returns the place whose ID is the "id" path value.
func PlaceHandler(opts *HandlerOptions) http.Handler {

	route := "place"

	fn := func(rsp http.ResponseWriter, req *http.Request) {

		id := req.PathValue("id")
		pl, exists := places.Find(opts.Dataset, id)

		if !exists {
			writeError(opts, rsp, route, "Place not found", http.StatusNotFound)
			return
		}

		writeJSON(opts, rsp, route, pl)
	}

	return http.HandlerFunc(fn)
}

// TypesHandler returns the place types present in the dataset, in dataset order.
func TypesHandler(opts *HandlerOptions) http.Handler {

	route := "types"

	fn := func(rsp http.ResponseWriter, req *http.Request) {
		writeJSON(opts, rsp, route, places.Types(opts.Dataset))
	}

	return http.HandlerFunc(fn)
}

// MapHandler returns the filtered places as a GeoJSON FeatureCollection. The viewport is the
// selected place at `viewport.SelectedZoom` when "selected" names a known place, otherwise the
// default Bangkok viewport.
func MapHandler(opts *HandlerOptions) http.Handler {

	route := "map"

	fn := func(rsp http.ResponseWriter, req *http.Request) {

		r := viewport.NewRecorder(viewport.Default())

		sess := newSession(opts, req, r)
		defer sess.Close()

		filtered := sess.Filtered()
		opts.Metrics.observeResults(route, len(filtered))

		selected_id, _ := sess.Coordinator().Current()

		fc := mapview.FeatureCollection(filtered, selected_id)

		rsp.Header().Set(ViewportHeader, r.Viewport().String())
		writeJSON(opts, rsp, route, fc)
	}

	return http.HandlerFunc(fn)
}

// newSession applies the filter and selection described by the query string of 'req' to a new
// session over the dataset.
func newSession(opts *HandlerOptions, req *http.Request, renderer viewport.Renderer) *session.Session {

	q := req.URL.Query()

	sess := session.New(opts.Dataset, renderer)
	sess.Engine().Apply(filter.ParseQuery(q))
	sess.Select(q.Get("selected"))

	return sess
}

func writeJSON(opts *HandlerOptions, rsp http.ResponseWriter, route string, v any) {

	rsp.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(rsp)
	err := enc.Encode(v)

	if err != nil {
		logger(opts).Error("Failed to encode response", "route", route, "error", err)
		opts.Metrics.observeRequest(route, http.StatusInternalServerError)
		return
	}

	opts.Metrics.observeRequest(route, http.StatusOK)
}

func writeError(opts *HandlerOptions, rsp http.ResponseWriter, route string, msg string, code int) {

	logger(opts).Debug("Request failed", "route", route, "code", code, "message", msg)

	opts.Metrics.observeRequest(route, code)
	http.Error(rsp, msg, code)
}

func logger(opts *HandlerOptions) *slog.Logger {

	if opts.Logger != nil {
		return opts.Logger
	}

	return slog.Default()
}
