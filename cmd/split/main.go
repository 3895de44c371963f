package main

/*

./bin/split \
    -workers 10 \
    -emitter-uri json:///usr/local/data/anyseat/places.json \
    -target /usr/local/data/anyseat/by-type

Produces one CSV file per place type, for example cafe.csv, library.csv and workspace.csv.

*/

import (
	"context"
	"flag"
	"log"
)

func main() {

	var emitter_uri string
	var target string
	var workers int

	flag.StringVar(&emitter_uri, "emitter-uri", "embed://", "A registered anyseat/go-anyseat-places/emitter.Emitter URI.")
	flag.StringVar(&target, "target", ".", "The directory to write per-type CSV files to.")
	flag.IntVar(&workers, "workers", 5, "The maximum number of workers to process places.")

	flag.Parse()

	ctx := context.Background()

	_, err := split(ctx, emitter_uri, target, workers)

	if err != nil {
		log.Fatalf("Failed to split places, %v", err)
	}
}
