package filter

import (
	"github.com/anyseat/go-anyseat-places"
)

// Engine holds a dataset and the current `Selection` and keeps the filtered subset current.
// Every mutation re-derives the subset and notifies subscribers before returning. Engine is
// not safe for concurrent use.
type Engine struct {
	dataset     []*places.Place
	selection   Selection
	filtered    []*places.Place
	subscribers map[int]func([]*places.Place)
	next_id     int
}

// NewEngine returns an `Engine` over 'dataset' with a neutral selection. The dataset is never modified.
func NewEngine(dataset []*places.Place) *Engine {

	e := &Engine{
		dataset:     dataset,
		subscribers: make(map[int]func([]*places.Place)),
	}

	e.filtered = Derive(dataset, e.selection)
	return e
}

func (e *Engine) Dataset() []*places.Place {
	return e.dataset
}

// Filtered returns the subset of the dataset matching the current selection.
func (e *Engine) Filtered() []*places.Place {
	return e.filtered
}

// Selection returns a copy of the current selection.
func (e *Engine) Selection() Selection {
	return e.selection.Clone()
}

func (e *Engine) ToggleType(t places.PlaceType) {
	e.selection.ToggleType(t)
	e.update()
}

func (e *Engine) SetWifiRequired(v bool) {
	e.selection.SetWifiRequired(v)
	e.update()
}

func (e *Engine) SetPowerRequired(v bool) {
	e.selection.SetPowerRequired(v)
	e.update()
}

// Apply replaces the current selection with a copy of 's'.
func (e *Engine) Apply(s Selection) {
	e.selection = s.Clone()
	e.update()
}

// Reset clears every criterion.
func (e *Engine) Reset() {
	e.selection = Selection{}
	e.update()
}

// Subscribe registers 'cb' to be called with the filtered subset after every mutation. The
// returned function removes the subscription.
func (e *Engine) Subscribe(cb func([]*places.Place)) func() {

	if e.subscribers == nil {
		e.subscribers = make(map[int]func([]*places.Place))
	}

	id := e.next_id
	e.next_id += 1

	e.subscribers[id] = cb

	return func() {
		delete(e.subscribers, id)
	}
}

func (e *Engine) update() {

	e.filtered = Derive(e.dataset, e.selection)

	for id := 0; id < e.next_id; id++ {

		cb, exists := e.subscribers[id]

		if exists {
			cb(e.filtered)
		}
	}
}
