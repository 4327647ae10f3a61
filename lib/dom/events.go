package dom

import "golang.org/x/net/html"

// Event is delivered to listeners during Dispatch. Target is the node the
// event was dispatched on and is preserved as the event bubbles; there is
// no shadow retargeting, so listeners above a shadow boundary still see the
// original target.
type Event struct {
	Type          string
	Target        *html.Node
	CurrentTarget *html.Node
	Detail        any

	stopped bool
}

// NewEvent returns an event of the given type with no detail payload.
func NewEvent(typ string) *Event {
	return &Event{Type: typ}
}

// StopPropagation prevents the event from bubbling past the current node.
// Remaining listeners on the current node are skipped as well.
func (e *Event) StopPropagation() {
	e.stopped = true
}

type listener struct {
	id int
	fn func(*Event)
}

// ListenOptions scopes a listener registration.
type ListenOptions struct {
	// Signal, when set, ties the listener's lifetime to an AbortController:
	// aborting the controller removes the listener synchronously.
	Signal *AbortSignal
}

// AbortController owns an AbortSignal and cancels everything registered
// under it. One controller backs one action binding set.
type AbortController struct {
	signal *AbortSignal
}

// AbortSignal carries cancellation for listeners registered with it.
type AbortSignal struct {
	aborted bool
	cancels []func()
}

// NewAbortController returns a controller with a fresh signal.
func NewAbortController() *AbortController {
	return &AbortController{signal: &AbortSignal{}}
}

// Signal returns the controller's signal for use in ListenOptions.
func (c *AbortController) Signal() *AbortSignal { return c.signal }

// Abort synchronously removes every listener registered under the signal.
// Aborting twice is a no-op.
func (c *AbortController) Abort() {
	if c.signal.aborted {
		return
	}
	c.signal.aborted = true
	cancels := c.signal.cancels
	c.signal.cancels = nil
	for _, cancel := range cancels {
		cancel()
	}
}

// Aborted reports whether the signal's controller has been aborted.
func (s *AbortSignal) Aborted() bool { return s.aborted }

// Listen registers a listener for events of the given type on n and returns
// a removal function. Registering against an already-aborted signal is a
// no-op.
func (d *Document) Listen(n *html.Node, typ string, fn func(*Event), opts ListenOptions) func() {
	if opts.Signal != nil && opts.Signal.aborted {
		return func() {}
	}
	m := d.metaOf(n)
	if m.listeners == nil {
		m.listeners = make(map[string][]*listener)
	}
	d.nextListenerID++
	l := &listener{id: d.nextListenerID, fn: fn}
	m.listeners[typ] = append(m.listeners[typ], l)

	remove := func() {
		ls := m.listeners[typ]
		for i, cand := range ls {
			if cand.id == l.id {
				m.listeners[typ] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
	if opts.Signal != nil {
		opts.Signal.cancels = append(opts.Signal.cancels, remove)
	}
	return remove
}

// Dispatch delivers ev to listeners on n and then bubbles it through n's
// ancestors. Leaving a shadow sub-tree, propagation continues at the host.
func (d *Document) Dispatch(n *html.Node, ev *Event) {
	if ev.Target == nil {
		ev.Target = n
	}
	cur := n
	for cur != nil && !ev.stopped {
		ev.CurrentTarget = cur
		if m, ok := d.meta[cur]; ok {
			// Snapshot so listeners may remove themselves (or be aborted)
			// mid-dispatch without skipping entries.
			ls := append([]*listener(nil), m.listeners[ev.Type]...)
			for _, l := range ls {
				if ev.stopped {
					break
				}
				l.fn(ev)
			}
		}
		if cur.Parent != nil {
			cur = cur.Parent
			continue
		}
		if m, ok := d.meta[cur]; ok && m.host != nil {
			cur = m.host
			continue
		}
		cur = nil
	}
}
