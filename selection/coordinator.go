// Package selection tracks the single place that is currently selected and tells interested views when it changes.
package selection

// State describes whether a place is selected.
type State int

const (
	Unselected State = iota
	Selected
)

func (s State) String() string {

	switch s {
	case Selected:
		return "selected"
	default:
		return "unselected"
	}
}

// Change describes a transition between two selections. An empty string means nothing is selected.
type Change struct {
	Previous string
	Current  string
}

// Coordinator holds at most one selected place ID. IDs are not checked against any dataset;
// selecting an ID that is not currently visible (or does not exist) is allowed. Coordinator is
// not safe for concurrent use.
type Coordinator struct {
	current     string
	subscribers map[int]func(Change)
	next_id     int
}

func NewCoordinator() *Coordinator {

	c := &Coordinator{
		subscribers: make(map[int]func(Change)),
	}

	return c
}

// Select replaces the current selection with 'id'. An empty 'id' clears the selection.
// Subscribers are notified, in the order they subscribed, before Select returns.
func (c *Coordinator) Select(id string) {

	if id == c.current {
		return
	}

	ch := Change{
		Previous: c.current,
		Current:  id,
	}

	c.current = id

	for i := 0; i < c.next_id; i++ {

		cb, exists := c.subscribers[i]

		if exists {
			cb(ch)
		}
	}
}

// Clear removes the current selection, if any.
func (c *Coordinator) Clear() {
	c.Select("")
}

// Current returns the selected ID and true, or an empty string and false when nothing is selected.
func (c *Coordinator) Current() (string, bool) {
	return c.current, c.current != ""
}

func (c *Coordinator) State() State {

	if c.current == "" {
		return Unselected
	}

	return Selected
}

// Subscribe registers 'cb' to be called on every change of selection. The returned function
// removes the subscription.
func (c *Coordinator) Subscribe(cb func(Change)) func() {

	if c.subscribers == nil {
		c.subscribers = make(map[int]func(Change))
	}

	id := c.next_id
	c.next_id += 1

	c.subscribers[id] = cb

	return func() {
		delete(c.subscribers, id)
	}
}
