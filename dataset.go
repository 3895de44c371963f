package places

import (
	"errors"
	"fmt"
)

// ErrDuplicateId is returned (wrapped) by `Validate` when two places share the same ID.
var ErrDuplicateId = errors.New("duplicate place id")

// Types returns the distinct place types present in 'dataset' in the order they first appear.
func Types(dataset []*Place) []PlaceType {

	seen := make(map[PlaceType]bool)
	types := make([]PlaceType, 0)

	for _, pl := range dataset {

		if seen[pl.Type] {
			continue
		}

		seen[pl.Type] = true
		types = append(types, pl.Type)
	}

	return types
}

// Find returns the place in 'dataset' whose ID matches 'id'.
func Find(dataset []*Place, id string) (*Place, bool) {

	for _, pl := range dataset {

		if pl.Id == id {
			return pl, true
		}
	}

	return nil, false
}

// Validate ensures that every place in 'dataset' is valid and that no two places share an ID.
func Validate(dataset []*Place) error {

	seen := make(map[string]bool)

	for idx, pl := range dataset {

		if pl == nil {
			return fmt.Errorf("%w, record at offset %d is nil", ErrInvalidPlace, idx)
		}

		err := pl.Validate()

		if err != nil {
			return err
		}

		if seen[pl.Id] {
			return fmt.Errorf("%w, %s", ErrDuplicateId, pl.Id)
		}

		seen[pl.Id] = true
	}

	return nil
}
