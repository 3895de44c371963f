package emitter

import (
	"context"
	"io/fs"
	"iter"

	"github.com/anyseat/go-anyseat-places"
	"github.com/anyseat/go-anyseat-places/data"
)

// EmbedEmitter yields the Bangkok dataset bundled with this package.
type EmbedEmitter struct {
	Emitter
	reader fs.File
}

func init() {

	ctx := context.Background()
	err := RegisterEmitter(ctx, "embed", NewEmbedEmitter)

	if err != nil {
		panic(err)
	}
}

func NewEmbedEmitter(ctx context.Context, uri string) (Emitter, error) {

	r, err := data.FS.Open(data.Path)

	if err != nil {
		return nil, err
	}

	e := &EmbedEmitter{
		reader: r,
	}

	return e, nil
}

func (e *EmbedEmitter) Emit(ctx context.Context) iter.Seq2[*places.Place, error] {
	return places.Emit(ctx, e.reader)
}

func (e *EmbedEmitter) Close() error {
	return e.reader.Close()
}
