package emitter

import (
	"context"
	"fmt"
	"iter"
	"net/url"
	"os"

	"github.com/anyseat/go-anyseat-places"
	"gopkg.in/yaml.v3"
)

// YAMLEmitter reads a YAML sequence of places, using the same field names as the JSON encoding.
//
//	yaml:///usr/local/data/anyseat/places.yaml
type YAMLEmitter struct {
	Emitter
	dataset []*places.Place
}

func init() {

	ctx := context.Background()
	err := RegisterEmitter(ctx, "yaml", NewYAMLEmitter)

	if err != nil {
		panic(err)
	}
}

func NewYAMLEmitter(ctx context.Context, uri string) (Emitter, error) {

	u, err := url.Parse(uri)

	if err != nil {
		return nil, err
	}

	r, err := os.Open(u.Path)

	if err != nil {
		return nil, err
	}

	defer r.Close()

	var dataset []*places.Place

	dec := yaml.NewDecoder(r)
	err = dec.Decode(&dataset)

	if err != nil {
		return nil, fmt.Errorf("Failed to decode %s, %w", u.Path, err)
	}

	e := &YAMLEmitter{
		dataset: dataset,
	}

	return e, nil
}

func (e *YAMLEmitter) Emit(ctx context.Context) iter.Seq2[*places.Place, error] {

	return func(yield func(*places.Place, error) bool) {

		for _, pl := range e.dataset {

			if pl == nil {
				continue
			}

			if !yield(pl, nil) {
				return
			}
		}
	}
}

func (e *YAMLEmitter) Close() error {
	return nil
}
