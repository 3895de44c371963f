package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
)

// Emit decodes a JSON array of places from 'r' and yields each record in the order it appears.
// A record that fails to decode is yielded as an error and iteration stops, since the decoder
// can not resynchronize in the middle of an array.
func Emit(ctx context.Context, r io.Reader) iter.Seq2[*Place, error] {

	return func(yield func(*Place, error) bool) {

		dec := json.NewDecoder(r)

		tok, err := dec.Token()

		if err != nil {
			yield(nil, fmt.Errorf("Failed to read opening token, %w", err))
			return
		}

		delim, ok := tok.(json.Delim)

		if !ok || delim != '[' {
			yield(nil, fmt.Errorf("Expected JSON array, got %v", tok))
			return
		}

		for dec.More() {

			select {
			case <-ctx.Done():
				yield(nil, ctx.Err())
				return
			default:
				// pass
			}

			var pl *Place

			err := dec.Decode(&pl)

			if err != nil {
				yield(nil, fmt.Errorf("Failed to decode place, %w", err))
				return
			}

			if pl == nil {
				continue
			}

			if !yield(pl, nil) {
				return
			}
		}
	}
}
