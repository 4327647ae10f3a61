package domwire

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/pthm/domwire/lib/dom"
)

// Harness bundles a document wired to a registry for exercising components
// in tests: mount markup, flush mutation batches, dispatch events, and
// reach bound instances without repeating the setup in every test.
type Harness struct {
	Doc      *dom.Document
	Registry *Registry
}

// NewHarness creates a fresh document with the registry installed as its
// upgrader.
func NewHarness(reg *Registry) *Harness {
	doc := dom.NewDocument()
	doc.Upgrader = reg
	return &Harness{Doc: doc, Registry: reg}
}

// Mount parses markup into the document body, binding any registered
// components it contains.
func (h *Harness) Mount(markup string) ([]*html.Node, error) {
	return h.Doc.Mount(markup)
}

// Flush delivers pending mutation batches, driving the watchers.
func (h *Harness) Flush() {
	h.Doc.Flush()
}

// First returns the first element matching sel, or an error naming the
// selector when nothing matches.
func (h *Harness) First(sel string) (*html.Node, error) {
	n := dom.Query(h.Doc.Root(), sel)
	if n == nil {
		return nil, fmt.Errorf("domwire: no element matches %q", sel)
	}
	return n, nil
}

// Instance returns the component bound to the first element matching sel.
func (h *Harness) Instance(sel string) (Component, error) {
	n, err := h.First(sel)
	if err != nil {
		return nil, err
	}
	comp := h.Registry.InstanceOf(h.Doc, n)
	if comp == nil {
		return nil, fmt.Errorf("domwire: element %q has no bound component", sel)
	}
	return comp, nil
}

// Click dispatches a click event on n.
func (h *Harness) Click(n *html.Node) {
	h.Doc.Dispatch(n, dom.NewEvent("click"))
}

// Dispatch dispatches an event of the given type on n.
func (h *Harness) Dispatch(n *html.Node, typ string) {
	h.Doc.Dispatch(n, dom.NewEvent(typ))
}
