package emitter

import (
	"context"
	"fmt"
	"io"
	"iter"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/anyseat/go-anyseat-places"
	"github.com/whosonfirst/go-reader"
)

// JSONEmitter reads a JSON array of places through a whosonfirst/go-reader `Reader`.
//
//	json:///usr/local/data/anyseat/places.json
//	json:///places.json?reader-uri=fs:///usr/local/data/anyseat
type JSONEmitter struct {
	Emitter
	reader io.ReadCloser
}

func init() {

	ctx := context.Background()
	err := RegisterEmitter(ctx, "json", NewJSONEmitter)

	if err != nil {
		panic(err)
	}
}

func NewJSONEmitter(ctx context.Context, uri string) (Emitter, error) {

	u, err := url.Parse(uri)

	if err != nil {
		return nil, err
	}

	q := u.Query()

	reader_uri := q.Get("reader-uri")
	key := strings.TrimLeft(u.Path, "/")

	if reader_uri == "" {

		if u.Path == "" {
			return nil, fmt.Errorf("Missing path")
		}

		root := filepath.Dir(u.Path)
		key = filepath.Base(u.Path)

		reader_uri = fmt.Sprintf("fs://%s", root)
	}

	r, err := reader.NewReader(ctx, reader_uri)

	if err != nil {
		return nil, fmt.Errorf("Failed to create reader for %s, %w", reader_uri, err)
	}

	fh, err := r.Read(ctx, key)

	if err != nil {
		return nil, fmt.Errorf("Failed to read %s, %w", key, err)
	}

	e := &JSONEmitter{
		reader: fh,
	}

	return e, nil
}

func (e *JSONEmitter) Emit(ctx context.Context) iter.Seq2[*places.Place, error] {
	return places.Emit(ctx, e.reader)
}

func (e *JSONEmitter) Close() error {
	return e.reader.Close()
}
