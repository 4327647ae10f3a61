package domwire

import (
	"errors"

	"github.com/pthm/domwire/lib/dom"
)

// templatedKey marks a node whose template has already been cloned, so a
// host-driven re-attachment does not render twice.
const templatedKey = "domwire.templated"

// bind runs the attach lifecycle for a component instance, in order:
// template clone, attr binding install and reconcile, attach hook, mutation
// watcher, initial deep action bind. Target accessors need no installation;
// they resolve lazily on every access.
func (r *Registry) bind(d *dom.Document, def *Definition, comp Component) error {
	b := comp.base()

	name := def.TemplateName
	if name == "" {
		name = def.tag
	}
	if t := d.Template(name); t != nil && d.NodeData(b.node, templatedKey) == nil {
		parent := b.node
		if !def.LightDOM {
			parent = d.AttachShadow(b.node)
		}
		for _, n := range t.Clone() {
			d.Append(parent, n)
		}
		d.SetNodeData(b.node, templatedKey, true)
	}

	if err := installAttrs(b); err != nil {
		return err
	}

	if c, ok := comp.(Connecter); ok {
		c.Connected()
	}

	if b.stopWatcher != nil {
		b.stopWatcher()
	}
	w := newWatcher(d, r, comp)
	w.start()
	b.stopWatcher = w.stop

	err := BindActionsDeep(d, r, b.node)
	if sr := d.ShadowRoot(b.node); sr != nil {
		err = errors.Join(err, BindActionsDeep(d, r, sr))
	}
	return err
}
