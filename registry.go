package domwire

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/pthm/domwire/lib/dom"
)

// instanceKey is the node-data key holding a node's component instance.
const instanceKey = "domwire.instance"

// Registry maps tags to component definitions and implements dom.Upgrader:
// set it as a document's Upgrader and registered tags are instantiated and
// bound as their nodes become connected.
type Registry struct {
	defs map[string]*Definition
	log  zerolog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger routes the registry's debug and error events through the given
// logger. The default logger discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// NewRegistry creates an empty component registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		defs: make(map[string]*Definition),
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Define registers component definitions. The tag is derived and cached,
// declared attrs are merged into the observed set, and attr defaults are
// validated. Panics on an invalid definition or a tag collision, so
// registration problems surface at startup rather than during dispatch.
func (r *Registry) Define(defs ...*Definition) {
	for _, def := range defs {
		if err := def.finalize(); err != nil {
			panic(err.Error())
		}
		if _, exists := r.defs[def.tag]; exists {
			panic(fmt.Sprintf("%v: %q", ErrDuplicateTag, def.tag))
		}
		r.defs[def.tag] = def
		r.log.Debug().Str("tag", def.tag).Strs("attrs", def.attrs).Strs("targets", def.targets).Msg("defined component")
	}
}

// Definition returns the definition registered for tag.
func (r *Registry) Definition(tag string) (*Definition, bool) {
	def, ok := r.defs[tag]
	return def, ok
}

// InstanceOf returns the component instance bound to n, or nil.
func (r *Registry) InstanceOf(d *dom.Document, n *html.Node) Component {
	comp, _ := d.NodeData(n, instanceKey).(Component)
	return comp
}

// Connected implements dom.Upgrader. For a registered tag it creates the
// component instance on first attachment (reusing it on re-attachment) and
// runs the binding lifecycle. Binding errors are logged; errors and panics
// from the component's own attach hook propagate to the caller.
func (r *Registry) Connected(d *dom.Document, n *html.Node) {
	def, ok := r.defs[n.Data]
	if !ok {
		return
	}
	comp := r.InstanceOf(d, n)
	if comp == nil {
		comp = def.New()
		d.SetNodeData(n, instanceKey, comp)
	}
	b := comp.base()
	b.doc, b.node, b.def = d, n, def
	r.log.Debug().Str("tag", def.tag).Msg("binding component")
	if err := r.bind(d, def, comp); err != nil {
		r.log.Error().Err(err).Str("tag", def.tag).Msg("action bind failed")
	}
}

// Disconnected implements dom.Upgrader. It stops the instance's mutation
// watcher (bound actions stay live) and invokes the detach hook if the
// component has one.
func (r *Registry) Disconnected(d *dom.Document, n *html.Node) {
	comp := r.InstanceOf(d, n)
	if comp == nil {
		return
	}
	b := comp.base()
	if b.stopWatcher != nil {
		b.stopWatcher()
		b.stopWatcher = nil
	}
	if dc, ok := comp.(Disconnecter); ok {
		dc.Disconnected()
	}
}
