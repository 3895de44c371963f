// Package mapview renders places as GeoJSON map markers.
package mapview

import (
	"github.com/anyseat/go-anyseat-places"
	"github.com/paulmach/orb/geojson"
)

// Feature returns a point feature for 'pl'. The "selected" property is true when 'pl' has the ID 'selected_id'.
func Feature(pl *places.Place, selected_id string) *geojson.Feature {

	f := geojson.NewFeature(pl.Point())
	f.ID = pl.Id

	f.Properties["name"] = pl.Name
	f.Properties["type"] = string(pl.Type)
	f.Properties["label"] = pl.Type.Label()
	f.Properties["emoji"] = pl.Type.Emoji()
	f.Properties["selected"] = selected_id != "" && pl.Id == selected_id
	f.Properties["wifi"] = pl.WifiAvailable
	f.Properties["power"] = pl.PowerOutlets
	f.Properties["image_count"] = len(pl.Images)

	if pl.Address != "" {
		f.Properties["address"] = pl.Address
	}

	if pl.Description != "" {
		f.Properties["description"] = pl.Description
	}

	if len(pl.Images) > 0 {
		f.Properties["image"] = pl.Images[0]
	}

	return f
}

// FeatureCollection returns one marker per place in 'filtered', in order. A 'selected_id' that
// matches none of them highlights nothing.
func FeatureCollection(filtered []*places.Place, selected_id string) *geojson.FeatureCollection {

	fc := geojson.NewFeatureCollection()

	for _, pl := range filtered {
		fc.Append(Feature(pl, selected_id))
	}

	return fc
}
