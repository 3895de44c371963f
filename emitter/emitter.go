// Package emitter loads the static place dataset from different sources. A source is named by a
// URI whose scheme picks the implementation from an internal roster:
//
//	json:///path/to/places.json     a JSON array of places
//	embed://                        the dataset compiled into the data package
//	csv:///path/to/places.csv       one row per place, "?bzip2=true" for compressed files
//	yaml:///path/to/places.yaml     a YAML sequence of places
//	sqlite3:///path/to/places.db    rows of the "places" table
//
// Emitters yield places as they are read and do not validate them. Use `Load` to collect every
// place from a URI and validate the result as a dataset.
package emitter

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net/url"
	"sort"
	"strings"

	"github.com/aaronland/go-roster"
	"github.com/anyseat/go-anyseat-places"
)

// ErrMissingScheme is returned by `NewEmitter` for URIs without a scheme.
var ErrMissingScheme = errors.New("missing emitter scheme")

// ErrUnsupportedScheme is returned by `NewEmitter` for schemes nothing has registered.
var ErrUnsupportedScheme = errors.New("unsupported emitter scheme")

// Emitter yields the places of a single source, in source order.
type Emitter interface {
	Emit(context.Context) iter.Seq2[*places.Place, error]
	Close() error
}

var emitter_roster roster.Roster

// EmitterInitializationFunc creates an `Emitter` for a URI whose scheme it was registered under.
type EmitterInitializationFunc func(ctx context.Context, uri string) (Emitter, error)

// RegisterEmitter makes 'init_func' the constructor for URIs with scheme 'scheme'.
func RegisterEmitter(ctx context.Context, scheme string, init_func EmitterInitializationFunc) error {

	err := ensureEmitterRoster()

	if err != nil {
		return err
	}

	return emitter_roster.Register(ctx, scheme, init_func)
}

func ensureEmitterRoster() error {

	if emitter_roster != nil {
		return nil
	}

	r, err := roster.NewDefaultRoster()

	if err != nil {
		return err
	}

	emitter_roster = r
	return nil
}

// NewEmitter returns the `Emitter` registered for the scheme of 'uri'.
func NewEmitter(ctx context.Context, uri string) (Emitter, error) {

	u, err := url.Parse(uri)

	if err != nil {
		return nil, fmt.Errorf("Failed to parse emitter URI, %w", err)
	}

	if u.Scheme == "" {
		return nil, fmt.Errorf("%w in '%s'", ErrMissingScheme, uri)
	}

	err = ensureEmitterRoster()

	if err != nil {
		return nil, err
	}

	i, err := emitter_roster.Driver(ctx, u.Scheme)

	if err != nil {
		return nil, fmt.Errorf("%w '%s', %v", ErrUnsupportedScheme, u.Scheme, err)
	}

	return i.(EmitterInitializationFunc)(ctx, uri)
}

// EmitterSchemes returns the registered schemes as sorted "scheme://" strings.
func EmitterSchemes() []string {

	schemes := make([]string, 0)

	if ensureEmitterRoster() != nil {
		return schemes
	}

	for _, dr := range emitter_roster.Drivers(context.Background()) {
		schemes = append(schemes, strings.ToLower(dr)+"://")
	}

	sort.Strings(schemes)
	return schemes
}
