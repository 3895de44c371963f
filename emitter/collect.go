package emitter

import (
	"context"
	"fmt"

	"github.com/anyseat/go-anyseat-places"
)

// Collect drains 'e' and returns every place it yields, in order. Any error yielded by 'e', an
// invalid place or a duplicate ID aborts the collection.
func Collect(ctx context.Context, e Emitter) ([]*places.Place, error) {

	dataset := make([]*places.Place, 0)

	for pl, err := range e.Emit(ctx) {

		if err != nil {
			return nil, fmt.Errorf("Failed to emit place, %w", err)
		}

		dataset = append(dataset, pl)
	}

	err := places.Validate(dataset)

	if err != nil {
		return nil, err
	}

	return dataset, nil
}

// Load is a convenience method that creates a new `Emitter` for 'uri', collects its places
// and closes it.
func Load(ctx context.Context, uri string) ([]*places.Place, error) {

	e, err := NewEmitter(ctx, uri)

	if err != nil {
		return nil, fmt.Errorf("Failed to create emitter, %w", err)
	}

	defer e.Close()

	return Collect(ctx, e)
}
