package dom

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Template is a named, reusable markup fragment. Content is parsed once;
// every use clones it.
type Template struct {
	name    string
	content []*html.Node
}

// Name returns the template's registered name.
func (t *Template) Name() string { return t.name }

// Clone returns a deep copy of the template's content nodes, detached and
// ready to be appended.
func (t *Template) Clone() []*html.Node {
	out := make([]*html.Node, 0, len(t.content))
	for _, n := range t.content {
		out = append(out, cloneNode(n))
	}
	return out
}

func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:     n.Type,
		DataAtom: n.DataAtom,
		Data:     n.Data,
		Attr:     append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneNode(child))
	}
	return c
}

// DefineTemplate registers a named template from markup, replacing any
// previous definition of the same name.
func (d *Document) DefineTemplate(name, markup string) error {
	nodes, err := ParseFragment(markup)
	if err != nil {
		return err
	}
	d.templates[name] = &Template{name: name, content: nodes}
	return nil
}

// DefineTemplateComponent registers a named template from a templ
// component, rendered once at definition time.
func (d *Document) DefineTemplateComponent(name string, c templ.Component) error {
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		return err
	}
	return d.DefineTemplate(name, b.String())
}

// Template resolves a named fragment. Explicit definitions win; otherwise
// <template data-name="..."> elements anywhere under the document root are
// matched by name. Returns nil when no template carries the name.
func (d *Document) Template(name string) *Template {
	if t, ok := d.templates[name]; ok {
		return t
	}
	for _, tpl := range QueryAll(d.root, "template") {
		if d.Attr(tpl, "data-name") != name {
			continue
		}
		var content []*html.Node
		for c := tpl.FirstChild; c != nil; c = c.NextSibling {
			content = append(content, c)
		}
		return &Template{name: name, content: content}
	}
	return nil
}

// ParseFragment parses markup in body context and returns the top-level
// nodes, detached from the parse context.
func ParseFragment(markup string) ([]*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
	return nodes, nil
}

// Mount parses markup and appends the resulting nodes to the document body,
// running upgrade hooks for elements that become connected. The appended
// top-level nodes are returned.
func (d *Document) Mount(markup string) ([]*html.Node, error) {
	nodes, err := ParseFragment(markup)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		d.Append(d.body, n)
	}
	return nodes, nil
}
