package dom

import "golang.org/x/net/html"

// AttachShadow creates and returns the isolated sub-tree for host. A host
// has at most one shadow root; attaching twice returns the existing root.
// The root itself is a container node without attributes.
func (d *Document) AttachShadow(host *html.Node) *html.Node {
	m := d.metaOf(host)
	if m.shadow != nil {
		return m.shadow
	}
	sr := &html.Node{Type: html.DocumentNode, Data: "#shadow-root"}
	m.shadow = sr
	d.metaOf(sr).host = host
	return sr
}

// ShadowRoot returns host's isolated sub-tree root, or nil if none has been
// attached.
func (d *Document) ShadowRoot(host *html.Node) *html.Node {
	if m, ok := d.meta[host]; ok {
		return m.shadow
	}
	return nil
}

// IsShadowRoot reports whether n is the root of an isolated sub-tree.
func (d *Document) IsShadowRoot(n *html.Node) bool {
	m, ok := d.meta[n]
	return ok && m.host != nil
}
