package dom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Upgrader receives connect and disconnect notifications for elements as
// they enter or leave the connected tree. The domwire registry implements
// this to instantiate and bind registered components.
type Upgrader interface {
	Connected(d *Document, n *html.Node)
	Disconnected(d *Document, n *html.Node)
}

// nodeMeta is the side-table entry for a node. Entries are created lazily;
// most nodes never get one.
type nodeMeta struct {
	listeners map[string][]*listener
	shadow    *html.Node // isolated sub-tree root attached to this node
	host      *html.Node // set on shadow roots, points back at the host
	data      map[string]any
}

// Document owns an element tree and all per-node state that html.Node
// cannot carry: listeners, shadow sub-trees, expando data, templates, and
// pending mutation records.
type Document struct {
	root      *html.Node
	body      *html.Node
	meta      map[*html.Node]*nodeMeta
	templates map[string]*Template
	observers []*Observer

	// Upgrader, when set, is notified of element connect/disconnect.
	Upgrader Upgrader

	nextListenerID int
}

// NewDocument returns an empty document with an html/body skeleton.
func NewDocument() *Document {
	root := &html.Node{Type: html.DocumentNode}
	htmlEl := &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	root.AppendChild(htmlEl)
	htmlEl.AppendChild(body)
	return &Document{
		root:      root,
		body:      body,
		meta:      make(map[*html.Node]*nodeMeta),
		templates: make(map[string]*Template),
	}
}

// Root returns the document node at the top of the main tree.
func (d *Document) Root() *html.Node { return d.root }

// Body returns the body element; Mount appends parsed markup here.
func (d *Document) Body() *html.Node { return d.body }

func (d *Document) metaOf(n *html.Node) *nodeMeta {
	m, ok := d.meta[n]
	if !ok {
		m = &nodeMeta{}
		d.meta[n] = m
	}
	return m
}

// RootOf returns the topmost node of n's tree. It does not cross shadow
// boundaries; for a node inside an isolated sub-tree it returns the shadow
// root itself.
func (d *Document) RootOf(n *html.Node) *html.Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// HostOf returns the shadow host when n lives inside an isolated sub-tree,
// or nil when it does not.
func (d *Document) HostOf(n *html.Node) *html.Node {
	if m, ok := d.meta[d.RootOf(n)]; ok {
		return m.host
	}
	return nil
}

// Connected reports whether n is reachable from the document root, crossing
// shadow boundaries through their hosts.
func (d *Document) Connected(n *html.Node) bool {
	r := d.RootOf(n)
	if r == d.root {
		return true
	}
	if m, ok := d.meta[r]; ok && m.host != nil {
		return d.Connected(m.host)
	}
	return false
}

// Append attaches child as the last child of parent, detaching it from any
// previous parent first. A childList mutation record is queued, and if the
// parent is connected the upgrader runs over the child's element tree.
func (d *Document) Append(parent, child *html.Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	parent.AppendChild(child)
	d.enqueue(MutationRecord{Type: MutChildList, Target: parent, Added: []*html.Node{child}})
	if d.Connected(parent) {
		d.connectTree(child)
	}
}

// Remove detaches n from its parent. A childList mutation record is queued,
// and if n was connected the upgrader's Disconnected hook runs over its
// element tree.
func (d *Document) Remove(n *html.Node) {
	if n.Parent == nil {
		return
	}
	wasConnected := d.Connected(n)
	parent := n.Parent
	parent.RemoveChild(n)
	d.enqueue(MutationRecord{Type: MutChildList, Target: parent, Removed: []*html.Node{n}})
	if wasConnected {
		d.disconnectTree(n)
	}
}

func (d *Document) connectTree(n *html.Node) {
	if d.Upgrader == nil {
		return
	}
	d.walkElements(n, func(el *html.Node) {
		d.Upgrader.Connected(d, el)
	})
}

func (d *Document) disconnectTree(n *html.Node) {
	if d.Upgrader == nil {
		return
	}
	d.walkElements(n, func(el *html.Node) {
		d.Upgrader.Disconnected(d, el)
	})
}

// walkElements visits n and its element descendants in tree order,
// descending into shadow sub-trees after their host.
func (d *Document) walkElements(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	if m, ok := d.meta[n]; ok && m.shadow != nil {
		for c := m.shadow.FirstChild; c != nil; c = c.NextSibling {
			d.walkElements(c, fn)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.walkElements(c, fn)
	}
}

// Attr returns the value of the named attribute, or "" if absent.
func (d *Document) Attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func (d *Document) HasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// SetAttr sets the named attribute and queues an attribute mutation record
// carrying the previous value.
func (d *Document) SetAttr(n *html.Node, name, val string) {
	old := ""
	found := false
	for i, a := range n.Attr {
		if a.Key == name {
			old = a.Val
			n.Attr[i].Val = val
			found = true
			break
		}
	}
	if !found {
		n.Attr = append(n.Attr, html.Attribute{Key: name, Val: val})
	}
	d.enqueue(MutationRecord{Type: MutAttributes, Target: n, AttrName: name, OldValue: old})
}

// RemoveAttr removes the named attribute if present.
func (d *Document) RemoveAttr(n *html.Node, name string) {
	for i, a := range n.Attr {
		if a.Key == name {
			old := a.Val
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			d.enqueue(MutationRecord{Type: MutAttributes, Target: n, AttrName: name, OldValue: old})
			return
		}
	}
}

// ToggleAttr sets or removes a presence-based attribute.
func (d *Document) ToggleAttr(n *html.Node, name string, on bool) {
	if on {
		if !d.HasAttr(n, name) {
			d.SetAttr(n, name, "")
		}
		return
	}
	d.RemoveAttr(n, name)
}

// SetNodeData stores an expando value on n under key. A nil value deletes
// the entry.
func (d *Document) SetNodeData(n *html.Node, key string, v any) {
	m := d.metaOf(n)
	if m.data == nil {
		m.data = make(map[string]any)
	}
	if v == nil {
		delete(m.data, key)
		return
	}
	m.data[key] = v
}

// NodeData returns the expando value stored on n under key, or nil.
func (d *Document) NodeData(n *html.Node, key string) any {
	if m, ok := d.meta[n]; ok && m.data != nil {
		return m.data[key]
	}
	return nil
}
