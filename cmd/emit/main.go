package main

/*

./bin/emit -emitter-uri csv:///usr/local/data/anyseat/places.csv -type cafe -wifi

*/

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/anyseat/go-anyseat-places"
	"github.com/anyseat/go-anyseat-places/emitter"
	"github.com/anyseat/go-anyseat-places/filter"
)

func main() {

	var emitter_uri string
	var wifi bool
	var power bool
	var verbose bool

	s := filter.Selection{}

	flag.StringVar(&emitter_uri, "emitter-uri", "embed://", "A registered anyseat/go-anyseat-places/emitter.Emitter URI.")
	flag.BoolVar(&wifi, "wifi", false, "Only emit places with Wi-Fi.")
	flag.BoolVar(&power, "power", false, "Only emit places with power outlets.")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose (debug) logging.")

	flag.Func("type", "Only emit places of this type. May be specified multiple times.", func(v string) error {

		t := places.PlaceType(v)

		if !s.Has(t) {
			s.ToggleType(t)
		}

		return nil
	})

	flag.Parse()

	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	s.SetWifiRequired(wifi)
	s.SetPowerRequired(power)

	ctx := context.Background()

	e, err := emitter.NewEmitter(ctx, emitter_uri)

	if err != nil {
		log.Fatal(err)
	}

	defer e.Close()

	enc := json.NewEncoder(os.Stdout)
	count := 0

	for pl, err := range e.Emit(ctx) {

		if err != nil {
			slog.Error("Failed to yield place", "error", err)
			continue
		}

		if !filter.Matches(pl, s) {
			slog.Debug("Skip place", "place", pl)
			continue
		}

		err = enc.Encode(pl)

		if err != nil {
			log.Fatalf("Failed to encode %s, %v", pl, err)
		}

		count += 1
	}

	slog.Debug("Complete", "uri", emitter_uri, "count", count)
}
