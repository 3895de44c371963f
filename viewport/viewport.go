// Package viewport moves a map view to the selected place.
package viewport

import (
	"fmt"

	"github.com/anyseat/go-anyseat-places"
	"github.com/anyseat/go-anyseat-places/selection"
	"github.com/paulmach/orb"
)

const (
	DefaultZoom  = 13
	SelectedZoom = 15
)

// DefaultCenter is central Bangkok.
var DefaultCenter = orb.Point{100.5018, 13.7563}

// Renderer is a map view that can be asked to animate to a new viewport. Requests are
// fire-and-forget; nothing is reported back.
type Renderer interface {
	FlyTo(center orb.Point, zoom int)
}

type Viewport struct {
	Center orb.Point
	Zoom   int
}

func Default() Viewport {
	return Viewport{Center: DefaultCenter, Zoom: DefaultZoom}
}

// String returns "lat,lng,zoom".
func (v Viewport) String() string {
	return fmt.Sprintf("%.6f,%.6f,%d", v.Center.Lat(), v.Center.Lon(), v.Zoom)
}

// Fit returns a viewport centered on the bounds of 'dataset' at the default zoom level, or the
// default viewport if 'dataset' is empty.
func Fit(dataset []*places.Place) Viewport {

	if len(dataset) == 0 {
		return Default()
	}

	mp := make(orb.MultiPoint, len(dataset))

	for i, pl := range dataset {
		mp[i] = pl.Point()
	}

	return Viewport{
		Center: mp.Bound().Center(),
		Zoom:   DefaultZoom,
	}
}

// Controller reacts to selection changes by flying a `Renderer` to the selected place. It only
// ever reads the selection.
type Controller struct {
	dataset     []*places.Place
	renderer    Renderer
	unsubscribe func()
}

// NewController binds 'renderer' to 'c'. Selected IDs are resolved against 'dataset'; IDs that
// can not be resolved, and cleared selections, leave the viewport where it is.
func NewController(dataset []*places.Place, renderer Renderer, c *selection.Coordinator) *Controller {

	ctrl := &Controller{
		dataset:  dataset,
		renderer: renderer,
	}

	ctrl.unsubscribe = c.Subscribe(ctrl.onChange)
	return ctrl
}

// Close detaches the controller from its coordinator.
func (ctrl *Controller) Close() {

	if ctrl.unsubscribe != nil {
		ctrl.unsubscribe()
		ctrl.unsubscribe = nil
	}
}

func (ctrl *Controller) onChange(ch selection.Change) {

	if ch.Current == "" {
		return
	}

	pl, exists := places.Find(ctrl.dataset, ch.Current)

	if !exists {
		return
	}

	ctrl.renderer.FlyTo(pl.Point(), SelectedZoom)
}

// Recorder is a `Renderer` that remembers the most recent viewport it was asked to fly to.
type Recorder struct {
	current Viewport
	count   int
}

func NewRecorder(v Viewport) *Recorder {
	return &Recorder{current: v}
}

func (r *Recorder) FlyTo(center orb.Point, zoom int) {
	r.current = Viewport{Center: center, Zoom: zoom}
	r.count += 1
}

func (r *Recorder) Viewport() Viewport {
	return r.current
}

// Count returns the number of fly-to requests received.
func (r *Recorder) Count() int {
	return r.count
}
