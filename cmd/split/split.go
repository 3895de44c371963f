package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/anyseat/go-anyseat-places"
	"github.com/anyseat/go-anyseat-places/emitter"
	"github.com/sfomuseum/go-csvdict/v2"
)

// typeWriter pairs a CSV writer with the file it writes to.
type typeWriter struct {
	fh *os.File
	wr *csvdict.Writer
}

func (tw *typeWriter) Close() error {

	err := tw.wr.Flush()

	if err != nil {
		tw.fh.Close()
		return err
	}

	return tw.fh.Close()
}

// split writes every valid place emitted by 'emitter_uri' to a "<type>.csv" file in 'target'. It
// returns the number of places written.
func split(ctx context.Context, emitter_uri string, target string, workers int) (int64, error) {

	if workers < 1 {
		workers = 1
	}

	info, err := os.Stat(target)

	if err != nil {
		return 0, fmt.Errorf("Failed to stat %s, %w", target, err)
	}

	if !info.IsDir() {
		return 0, fmt.Errorf("%s is not a directory", target)
	}

	e, err := emitter.NewEmitter(ctx, emitter_uri)

	if err != nil {
		return 0, fmt.Errorf("Failed to create emitter, %w", err)
	}

	defer e.Close()

	writers := make(map[places.PlaceType]*typeWriter)
	counter := int64(0)

	mu := new(sync.Mutex)
	wg := new(sync.WaitGroup)

	throttle := make(chan bool, workers)

	for i := 0; i < workers; i++ {
		throttle <- true
	}

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	done_ch := make(chan bool)

	go func() {
		for {
			select {
			case <-done_ch:
				return
			case <-ticker.C:
				slog.Info("Status", "count", atomic.LoadInt64(&counter))
			}
		}
	}()

	write_place := func(pl *places.Place) error {

		row := emitter.PlaceToRow(pl)

		mu.Lock()
		defer mu.Unlock()

		tw, exists := writers[pl.Type]

		if !exists {

			csv_path := filepath.Join(target, fmt.Sprintf("%s.csv", pl.Type))
			fh, err := os.Create(csv_path)

			if err != nil {
				return fmt.Errorf("Failed to create %s, %w", csv_path, err)
			}

			wr, err := csvdict.NewWriter(fh)

			if err != nil {
				fh.Close()
				return fmt.Errorf("Failed to create writer for %s, %w", csv_path, err)
			}

			tw = &typeWriter{fh: fh, wr: wr}
			writers[pl.Type] = tw
		}

		err := tw.wr.WriteRow(row)

		if err != nil {
			return err
		}

		atomic.AddInt64(&counter, 1)
		return nil
	}

	for pl, err := range e.Emit(ctx) {

		if err != nil {
			slog.Error("Failed to yield place", "error", err)
			continue
		}

		err = pl.Validate()

		if err != nil {
			slog.Warn("Skipping invalid place", "place", pl, "error", err)
			continue
		}

		<-throttle
		wg.Add(1)

		go func(pl *places.Place) {

			defer func() {
				throttle <- true
				wg.Done()
			}()

			err := write_place(pl)

			if err != nil {
				slog.Error("Failed to write place", "place", pl, "error", err)
			}
		}(pl)
	}

	wg.Wait()
	close(done_ch)

	errs := make([]error, 0)

	for t, tw := range writers {

		err := tw.Close()

		if err != nil {
			errs = append(errs, fmt.Errorf("Failed to close writer for %s, %w", t, err))
		}
	}

	slog.Info("Complete", "uri", emitter_uri, "types", len(writers), "count", atomic.LoadInt64(&counter))
	return atomic.LoadInt64(&counter), errors.Join(errs...)
}
