// Package session wires a filter engine, a selection coordinator and a viewport controller
// together over a single dataset, the way one open page of the listing uses them.
package session

import (
	"github.com/anyseat/go-anyseat-places"
	"github.com/anyseat/go-anyseat-places/filter"
	"github.com/anyseat/go-anyseat-places/selection"
	"github.com/anyseat/go-anyseat-places/viewport"
)

type Session struct {
	engine      *filter.Engine
	coordinator *selection.Coordinator
	controller  *viewport.Controller
}

// New returns a `Session` over 'dataset'. Selection changes are forwarded to 'renderer'.
func New(dataset []*places.Place, renderer viewport.Renderer) *Session {

	engine := filter.NewEngine(dataset)
	coordinator := selection.NewCoordinator()
	controller := viewport.NewController(dataset, renderer, coordinator)

	s := &Session{
		engine:      engine,
		coordinator: coordinator,
		controller:  controller,
	}

	return s
}

func (s *Session) Engine() *filter.Engine {
	return s.engine
}

func (s *Session) Coordinator() *selection.Coordinator {
	return s.coordinator
}

// Types returns the place types available for filtering, in dataset order.
func (s *Session) Types() []places.PlaceType {
	return places.Types(s.engine.Dataset())
}

func (s *Session) Filtered() []*places.Place {
	return s.engine.Filtered()
}

func (s *Session) ToggleType(t places.PlaceType) {
	s.engine.ToggleType(t)
}

func (s *Session) SetWifiRequired(v bool) {
	s.engine.SetWifiRequired(v)
}

func (s *Session) SetPowerRequired(v bool) {
	s.engine.SetPowerRequired(v)
}

func (s *Session) Select(id string) {
	s.coordinator.Select(id)
}

func (s *Session) Clear() {
	s.coordinator.Clear()
}

// Selected returns the selected place if it is part of the filtered subset. A selection that the
// current filters exclude (or that names an unknown ID) is left in place but reported as false.
func (s *Session) Selected() (*places.Place, bool) {

	id, ok := s.coordinator.Current()

	if !ok {
		return nil, false
	}

	return places.Find(s.engine.Filtered(), id)
}

// Close detaches the viewport controller.
func (s *Session) Close() {
	s.controller.Close()
}
