package domwire

import (
	"golang.org/x/net/html"

	"github.com/pthm/domwire/lib/dom"
)

type watcherState int

const (
	watcherWatching watcherState = iota
	watcherStopped
)

// watcher keeps a bound instance's action declarations live: structural
// additions under the instance (or its shadow sub-tree) get a deep bind,
// and changes to the action attribute rebind exactly the changed node. It
// also feeds AttrChangedCallback for the instance's observed attributes.
//
// The watcher moves from watching to stopped only through stop; stopping
// halts new rebinding but leaves already-bound actions live.
type watcher struct {
	doc   *dom.Document
	reg   *Registry
	comp  Component
	obs   *dom.Observer
	state watcherState
}

func newWatcher(d *dom.Document, r *Registry, comp Component) *watcher {
	return &watcher{doc: d, reg: r, comp: comp}
}

func (w *watcher) start() {
	b := w.comp.base()
	filter := append([]string{ActionAttr}, b.def.observed...)
	opts := dom.ObserveOptions{
		ChildList:       true,
		Subtree:         true,
		Attributes:      true,
		AttributeFilter: filter,
	}
	w.obs = dom.NewObserver(w.doc, w.handle)
	w.obs.Observe(b.node, opts)
	if sr := w.doc.ShadowRoot(b.node); sr != nil {
		w.obs.Observe(sr, opts)
	}
	w.state = watcherWatching
}

func (w *watcher) stop() {
	if w.state == watcherStopped {
		return
	}
	w.state = watcherStopped
	w.obs.Disconnect()
}

// handle processes one delivered batch in record order.
func (w *watcher) handle(records []dom.MutationRecord) {
	if w.state != watcherWatching {
		return
	}
	b := w.comp.base()
	for _, rec := range records {
		switch rec.Type {
		case dom.MutChildList:
			for _, added := range rec.Added {
				if added.Type != html.ElementNode {
					continue
				}
				if err := BindActionsDeep(w.doc, w.reg, added); err != nil {
					w.reg.log.Error().Err(err).Str("tag", b.def.tag).Msg("rebind on insert failed")
				}
			}
		case dom.MutAttributes:
			if rec.AttrName == ActionAttr {
				if err := BindActions(w.doc, w.reg, rec.Target); err != nil {
					w.reg.log.Error().Err(err).Str("tag", b.def.tag).Msg("rebind on attribute change failed")
				}
				continue
			}
			if rec.Target != b.node {
				continue
			}
			if cb, ok := w.comp.(AttrChangedCallback); ok {
				if field, known := b.def.fieldForAttr(rec.AttrName); known {
					cb.AttrChanged(field, rec.OldValue, w.doc.Attr(b.node, rec.AttrName))
				}
			}
		}
	}
}
