// Package filter derives the visible subset of places from a dataset and a set of inclusion criteria.
package filter

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/anyseat/go-anyseat-places"
)

// Selection is the set of inclusion criteria applied to a dataset. The zero value
// applies no criteria. An empty set of types means "any type", not "no types".
type Selection struct {
	types        map[places.PlaceType]bool
	RequireWifi  bool
	RequirePower bool
}

// NewSelection returns a `Selection` whose type set contains 'types'.
func NewSelection(types ...places.PlaceType) Selection {

	s := Selection{}

	for _, t := range types {

		if !s.Has(t) {
			s.ToggleType(t)
		}
	}

	return s
}

// ToggleType removes 't' from the type set if present and adds it otherwise.
func (s *Selection) ToggleType(t places.PlaceType) {

	if s.types[t] {
		delete(s.types, t)
		return
	}

	if s.types == nil {
		s.types = make(map[places.PlaceType]bool)
	}

	s.types[t] = true
}

func (s *Selection) SetWifiRequired(v bool) {
	s.RequireWifi = v
}

func (s *Selection) SetPowerRequired(v bool) {
	s.RequirePower = v
}

// Has reports whether 't' is in the type set.
func (s Selection) Has(t places.PlaceType) bool {
	return s.types[t]
}

// SelectedTypes returns a sorted copy of the type set.
func (s Selection) SelectedTypes() []places.PlaceType {

	types := make([]places.PlaceType, 0, len(s.types))

	for t := range s.types {
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool {
		return types[i] < types[j]
	})

	return types
}

// IsNeutral reports whether 's' applies no criteria at all.
func (s Selection) IsNeutral() bool {
	return len(s.types) == 0 && !s.RequireWifi && !s.RequirePower
}

// Clone returns a copy of 's' that shares no state with it.
func (s Selection) Clone() Selection {
	return Selection{
		types:        cloneTypes(s.types),
		RequireWifi:  s.RequireWifi,
		RequirePower: s.RequirePower,
	}
}

// Query encodes 's' as URL query parameters understood by `ParseQuery`.
func (s Selection) Query() url.Values {

	q := url.Values{}

	for _, t := range s.SelectedTypes() {
		q.Add("type", string(t))
	}

	if s.RequireWifi {
		q.Set("wifi", "true")
	}

	if s.RequirePower {
		q.Set("power", "true")
	}

	return q
}

// ParseQuery derives a `Selection` from the "type", "wifi" and "power" parameters in 'q'.
// "type" may be repeated or comma-separated. Boolean values that fail to parse are treated as false.
func ParseQuery(q url.Values) Selection {

	s := Selection{}

	for _, str_types := range q["type"] {

		for _, str_t := range strings.Split(str_types, ",") {

			str_t = strings.TrimSpace(str_t)

			if str_t == "" {
				continue
			}

			t := places.PlaceType(str_t)

			if !s.Has(t) {
				s.ToggleType(t)
			}
		}
	}

	s.RequireWifi = parseBool(q.Get("wifi"))
	s.RequirePower = parseBool(q.Get("power"))

	return s
}

// Matches reports whether 'pl' passes every criterion in 's'.
func Matches(pl *places.Place, s Selection) bool {

	if len(s.types) > 0 && !s.types[pl.Type] {
		return false
	}

	if s.RequireWifi && !pl.WifiAvailable {
		return false
	}

	if s.RequirePower && !pl.PowerOutlets {
		return false
	}

	return true
}

// Derive returns the places in 'dataset' that match 's', in their original order. It never
// modifies 'dataset' and never returns nil.
func Derive(dataset []*places.Place, s Selection) []*places.Place {

	filtered := make([]*places.Place, 0, len(dataset))

	for _, pl := range dataset {

		if Matches(pl, s) {
			filtered = append(filtered, pl)
		}
	}

	return filtered
}

func cloneTypes(types map[places.PlaceType]bool) map[places.PlaceType]bool {

	if len(types) == 0 {
		return nil
	}

	clone := make(map[places.PlaceType]bool, len(types))

	for t := range types {
		clone[t] = true
	}

	return clone
}

func parseBool(str_v string) bool {

	if str_v == "" {
		return false
	}

	v, err := strconv.ParseBool(str_v)

	if err != nil {
		return false
	}

	return v
}
