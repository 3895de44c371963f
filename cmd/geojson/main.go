package main

/*

./bin/geojson -emitter-uri embed:// -type library -selected 1 > libraries.geojson

*/

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/anyseat/go-anyseat-places"
	"github.com/anyseat/go-anyseat-places/emitter"
	"github.com/anyseat/go-anyseat-places/mapview"
	"github.com/anyseat/go-anyseat-places/session"
	"github.com/anyseat/go-anyseat-places/viewport"
)

func main() {

	var emitter_uri string
	var selected_id string
	var wifi bool
	var power bool

	types := make([]places.PlaceType, 0)

	flag.StringVar(&emitter_uri, "emitter-uri", "embed://", "A registered anyseat/go-anyseat-places/emitter.Emitter URI.")
	flag.StringVar(&selected_id, "selected", "", "The ID of the place to mark as selected.")
	flag.BoolVar(&wifi, "wifi", false, "Only include places with Wi-Fi.")
	flag.BoolVar(&power, "power", false, "Only include places with power outlets.")

	flag.Func("type", "Only include places of this type. May be specified multiple times.", func(v string) error {
		types = append(types, places.PlaceType(v))
		return nil
	})

	flag.Parse()

	ctx := context.Background()

	dataset, err := emitter.Load(ctx, emitter_uri)

	if err != nil {
		log.Fatalf("Failed to load places, %v", err)
	}

	r := viewport.NewRecorder(viewport.Fit(dataset))

	sess := session.New(dataset, r)
	defer sess.Close()

	for _, t := range types {

		if !sess.Engine().Selection().Has(t) {
			sess.ToggleType(t)
		}
	}

	sess.SetWifiRequired(wifi)
	sess.SetPowerRequired(power)
	sess.Select(selected_id)

	fc := mapview.FeatureCollection(sess.Filtered(), selected_id)

	body, err := fc.MarshalJSON()

	if err != nil {
		log.Fatalf("Failed to marshal feature collection, %v", err)
	}

	_, err = os.Stdout.Write(body)

	if err != nil {
		log.Fatalf("Failed to write feature collection, %v", err)
	}

	slog.Info("Viewport", "viewport", r.Viewport().String(), "count", len(fc.Features))
}
