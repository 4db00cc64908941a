package input

import "slices"

// Sink receives commands from attached adapters.
type Sink func(Command)

// Adapter is a device that emits commands. Attach hands it the emit
// function; Detach tells it to release any state.
type Adapter interface {
	Attach(emit Sink)
	Detach()
}

// Dispatcher forwards commands from any number of adapters to one sink.
type Dispatcher struct {
	sink     Sink
	adapters []Adapter
}

// NewDispatcher returns a dispatcher that delivers to sink.
func NewDispatcher(sink Sink) *Dispatcher {
	return &Dispatcher{sink: sink}
}

// Attach connects a and returns a func that disconnects it. Commands
// emitted after detaching are dropped. Calling detach twice is harmless.
func (d *Dispatcher) Attach(a Adapter) (detach func()) {
	attached := true
	d.adapters = append(d.adapters, a)
	a.Attach(func(c Command) {
		if attached && d.sink != nil {
			d.sink(c)
		}
	})

	return func() {
		if !attached {
			return
		}
		attached = false
		d.adapters = slices.DeleteFunc(d.adapters, func(x Adapter) bool { return x == a })
		a.Detach()
	}
}

// Adapters returns the attached adapters in attach order.
func (d *Dispatcher) Adapters() []Adapter {
	return slices.Clone(d.adapters)
}

// PointerAdapter turns press/release pairs into move commands. It serves
// any pointer device: mouse drags, touch swipes.
type PointerAdapter struct {
	tracker *Tracker
	emit    Sink
}

// NewPointerAdapter returns a pointer adapter with the given threshold.
func NewPointerAdapter(threshold float64) *PointerAdapter {
	return &PointerAdapter{tracker: NewTracker(threshold)}
}

// Attach implements Adapter.
func (p *PointerAdapter) Attach(emit Sink) {
	p.emit = emit
}

// Detach implements Adapter.
func (p *PointerAdapter) Detach() {
	p.tracker.Cancel()
	p.emit = nil
}

// Press starts a gesture.
func (p *PointerAdapter) Press(pt Point) {
	p.tracker.Begin(pt)
}

// Release ends a gesture and emits a move if it was long enough.
func (p *PointerAdapter) Release(pt Point) bool {
	dir, ok := p.tracker.End(pt)
	if !ok || p.emit == nil {
		return false
	}
	p.emit(Move(dir))
	return true
}

// Dragging reports whether a gesture is in progress.
func (p *PointerAdapter) Dragging() bool {
	return p.tracker.Active()
}
