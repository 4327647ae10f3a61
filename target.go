package domwire

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/pthm/domwire/lib/dom"
)

// Target resolution searches for descendants whose target declaration
// carries the literal token "tag.field". The instance's shadow sub-tree is
// searched first, then its light tree; in both passes descendants owned by
// a nested instance of the same tag are excluded. Results are never cached:
// every access re-runs the search so structural changes are reflected on
// the next read.

func findTarget(d *dom.Document, node *html.Node, tag, field string) *html.Node {
	all := findTargets(d, node, tag, field)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

func findTargets(d *dom.Document, node *html.Node, tag, field string) []*html.Node {
	key := tag + "." + field
	var out []*html.Node

	if sr := d.ShadowRoot(node); sr != nil {
		for _, n := range dom.QueryAll(sr, "["+TargetAttr+"]") {
			if !hasTargetToken(d, n, key) {
				continue
			}
			// A same-tag ancestor inside the sub-tree means the match
			// belongs to a nested instance.
			if ancestorWithTag(n, sr, tag) != nil {
				continue
			}
			out = append(out, n)
		}
	}

	for _, n := range dom.QueryAll(node, "["+TargetAttr+"]") {
		if !hasTargetToken(d, n, key) {
			continue
		}
		if nearestAncestorWithTag(n, tag) != node {
			continue
		}
		out = append(out, n)
	}
	return out
}

func hasTargetToken(d *dom.Document, n *html.Node, key string) bool {
	for _, tok := range strings.Fields(d.Attr(n, TargetAttr)) {
		if tok == key {
			return true
		}
	}
	return false
}

// ancestorWithTag returns the first strict ancestor of n carrying tag,
// stopping before stop. Nil when there is none.
func ancestorWithTag(n, stop *html.Node, tag string) *html.Node {
	for cur := n.Parent; cur != nil && cur != stop; cur = cur.Parent {
		if cur.Type == html.ElementNode && cur.Data == tag {
			return cur
		}
	}
	return nil
}

// nearestAncestorWithTag returns the nearest strict ancestor of n carrying
// tag, or nil.
func nearestAncestorWithTag(n *html.Node, tag string) *html.Node {
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if cur.Type == html.ElementNode && cur.Data == tag {
			return cur
		}
	}
	return nil
}
