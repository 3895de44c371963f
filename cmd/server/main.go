package main

/*

./bin/server -addr localhost:8080 -emitter-uri embed://

curl 'http://localhost:8080/api/places?type=cafe&wifi=true'
curl 'http://localhost:8080/api/map?selected=4'

*/

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/anyseat/go-anyseat-places/emitter"
	"github.com/anyseat/go-anyseat-places/listing"
	"github.com/anyseat/go-anyseat-places/www"
)

func main() {

	var addr string
	var emitter_uri string
	var page_size int
	var verbose bool

	flag.StringVar(&addr, "addr", "localhost:8080", "The address the HTTP server listens on.")
	flag.StringVar(&emitter_uri, "emitter-uri", "embed://", "A registered anyseat/go-anyseat-places/emitter.Emitter URI.")
	flag.IntVar(&page_size, "page-size", listing.DefaultPageSize, "The number of places returned per page.")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose (debug) logging.")

	flag.Parse()

	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx := context.Background()

	dataset, err := emitter.Load(ctx, emitter_uri)

	if err != nil {
		log.Fatalf("Failed to load places, %v", err)
	}

	slog.Info("Loaded places", "uri", emitter_uri, "count", len(dataset))

	metrics, err := www.NewMetrics()

	if err != nil {
		log.Fatalf("Failed to create metrics, %v", err)
	}

	opts := &www.HandlerOptions{
		Dataset:  dataset,
		Metrics:  metrics,
		PageSize: page_size,
		Logger:   slog.Default(),
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           www.NewServeMux(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {

		slog.Info("Listening for requests", "addr", addr)

		err := srv.ListenAndServe()

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to serve requests, %v", err)
		}
	}()

	stop_ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	<-stop_ctx.Done()

	slog.Info("Shutting down server")

	shutdown_ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = srv.Shutdown(shutdown_ctx)

	if err != nil {
		slog.Error("Failed to shut down server", "error", err)
	}
}
