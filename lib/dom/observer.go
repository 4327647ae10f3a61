package dom

import "golang.org/x/net/html"

// MutationType distinguishes structural from attribute mutation records.
type MutationType int

const (
	// MutChildList records children added to or removed from Target.
	MutChildList MutationType = iota
	// MutAttributes records an attribute change on Target.
	MutAttributes
)

func (t MutationType) String() string {
	switch t {
	case MutChildList:
		return "childList"
	case MutAttributes:
		return "attributes"
	default:
		return "unknown"
	}
}

// MutationRecord describes one mutation. Records are queued on the document
// and delivered in batches by Flush.
type MutationRecord struct {
	Type     MutationType
	Target   *html.Node
	Added    []*html.Node
	Removed  []*html.Node
	AttrName string
	OldValue string
}

// ObserveOptions selects which mutations an observed scope receives.
type ObserveOptions struct {
	// ChildList delivers structural records.
	ChildList bool
	// Subtree extends the scope from the root to all its descendants,
	// within the root's tree (shadow sub-trees are observed separately).
	Subtree bool
	// Attributes delivers attribute records.
	Attributes bool
	// AttributeFilter, when non-empty, restricts attribute records to the
	// named attributes.
	AttributeFilter []string
}

type observeScope struct {
	root *html.Node
	opts ObserveOptions
}

func (sc observeScope) contains(n *html.Node) bool {
	if n == sc.root {
		return true
	}
	if !sc.opts.Subtree {
		return false
	}
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if cur == sc.root {
			return true
		}
	}
	return false
}

// Observer collects mutation records for one callback across one or more
// observed scopes.
type Observer struct {
	doc     *Document
	fn      func([]MutationRecord)
	scopes  []observeScope
	pending []MutationRecord
}

// NewObserver registers a mutation observer on the document. It receives
// nothing until Observe is called.
func NewObserver(d *Document, fn func([]MutationRecord)) *Observer {
	o := &Observer{doc: d, fn: fn}
	d.observers = append(d.observers, o)
	return o
}

// Observe adds a scope. One observer may watch several roots, e.g. a
// component node and its shadow root.
func (o *Observer) Observe(root *html.Node, opts ObserveOptions) {
	o.scopes = append(o.scopes, observeScope{root: root, opts: opts})
}

// Disconnect detaches the observer from the document and drops any pending
// records. Records already delivered are unaffected.
func (o *Observer) Disconnect() {
	o.scopes = nil
	o.pending = nil
	for i, cand := range o.doc.observers {
		if cand == o {
			o.doc.observers = append(o.doc.observers[:i:i], o.doc.observers[i+1:]...)
			return
		}
	}
}

func (o *Observer) wants(rec MutationRecord) bool {
	for _, sc := range o.scopes {
		if !sc.contains(rec.Target) {
			continue
		}
		switch rec.Type {
		case MutChildList:
			if sc.opts.ChildList {
				return true
			}
		case MutAttributes:
			if !sc.opts.Attributes {
				continue
			}
			if len(sc.opts.AttributeFilter) == 0 {
				return true
			}
			for _, name := range sc.opts.AttributeFilter {
				if name == rec.AttrName {
					return true
				}
			}
		}
	}
	return false
}

func (d *Document) enqueue(rec MutationRecord) {
	for _, o := range d.observers {
		if o.wants(rec) {
			o.pending = append(o.pending, rec)
		}
	}
}

// Flush delivers pending mutation records. Each observer receives its
// pending records as one batch, in enqueue order; delivery repeats until no
// observer has pending records, so mutations performed inside a callback
// are delivered in the same flush.
func (d *Document) Flush() {
	for {
		progressed := false
		observers := append([]*Observer(nil), d.observers...)
		for _, o := range observers {
			if len(o.pending) == 0 {
				continue
			}
			batch := o.pending
			o.pending = nil
			progressed = true
			o.fn(batch)
		}
		if !progressed {
			return
		}
	}
}
