package places

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
)

// {"id":"1","name":"TCDC Bangkok","type":"library","coordinates":{"lat":13.7286,"lng":100.5145},"address":"Grand Postal Building, Charoen Krung Rd","wifiAvailable":true,"powerOutlets":true}

// ErrInvalidPlace is returned (wrapped) by `Place.Validate` when a record fails validation.
var ErrInvalidPlace = errors.New("invalid place")

// PlaceType is the category of a place.
type PlaceType string

const (
	Cafe      PlaceType = "cafe"
	Library   PlaceType = "library"
	Workspace PlaceType = "workspace"
)

// KnownTypes returns the closed set of place types in display order.
func KnownTypes() []PlaceType {
	return []PlaceType{Cafe, Library, Workspace}
}

// IsKnown reports whether 't' is one of the closed set of place types.
func (t PlaceType) IsKnown() bool {

	switch t {
	case Cafe, Library, Workspace:
		return true
	default:
		return false
	}
}

// Emoji returns the glyph used to draw a map marker for 't'.
func (t PlaceType) Emoji() string {

	switch t {
	case Cafe:
		return "☕"
	case Library:
		return "📚"
	case Workspace:
		return "💼"
	default:
		return "📍"
	}
}

// Label returns 't' with its first letter upper-cased.
func (t PlaceType) Label() string {

	str_t := string(t)

	if str_t == "" {
		return ""
	}

	return strings.ToUpper(str_t[:1]) + str_t[1:]
}

type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Point returns 'c' as an `orb.Point`, which is ordered [longitude, latitude].
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}

type Place struct {
	Id            string      `json:"id" yaml:"id"`
	Name          string      `json:"name" yaml:"name"`
	Type          PlaceType   `json:"type" yaml:"type"`
	Coordinates   Coordinates `json:"coordinates" yaml:"coordinates"`
	Address       string      `json:"address,omitempty" yaml:"address,omitempty"`
	Description   string      `json:"description,omitempty" yaml:"description,omitempty"`
	Images        []string    `json:"images,omitempty" yaml:"images,omitempty"`
	WifiAvailable bool        `json:"wifiAvailable,omitempty" yaml:"wifiAvailable,omitempty"`
	PowerOutlets  bool        `json:"powerOutlets,omitempty" yaml:"powerOutlets,omitempty"`
}

func (pl *Place) String() string {
	return fmt.Sprintf("%s %s", pl.Name, pl.Id)
}

// Point returns the location of 'pl' as an `orb.Point`.
func (pl *Place) Point() orb.Point {
	return pl.Coordinates.Point()
}

// Validate ensures that 'pl' has an ID, a known type and finite coordinates within range.
func (pl *Place) Validate() error {

	if pl.Id == "" {
		return fmt.Errorf("%w, missing id", ErrInvalidPlace)
	}

	if !pl.Type.IsKnown() {
		return fmt.Errorf("%w, %s has unknown type '%s'", ErrInvalidPlace, pl.Id, pl.Type)
	}

	lat := pl.Coordinates.Lat
	lng := pl.Coordinates.Lng

	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90.0 || lat > 90.0 {
		return fmt.Errorf("%w, %s has invalid latitude %f", ErrInvalidPlace, pl.Id, lat)
	}

	if math.IsNaN(lng) || math.IsInf(lng, 0) || lng < -180.0 || lng > 180.0 {
		return fmt.Errorf("%w, %s has invalid longitude %f", ErrInvalidPlace, pl.Id, lng)
	}

	return nil
}
