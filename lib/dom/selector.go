package dom

import (
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Compiled selectors are cached process-wide; action declarations repeat
// the same handful of selectors across many nodes.
var (
	selMu    sync.RWMutex
	selCache = map[string]cascadia.Selector{}
)

// CompileSelector compiles a CSS selector, caching the result.
func CompileSelector(sel string) (cascadia.Selector, error) {
	selMu.RLock()
	s, ok := selCache[sel]
	selMu.RUnlock()
	if ok {
		return s, nil
	}
	s, err := cascadia.Compile(sel)
	if err != nil {
		return nil, err
	}
	selMu.Lock()
	selCache[sel] = s
	selMu.Unlock()
	return s, nil
}

// Matches reports whether n is an element matching sel. Unparseable
// selectors match nothing.
func Matches(n *html.Node, sel string) bool {
	s, err := CompileSelector(sel)
	if err != nil || n.Type != html.ElementNode {
		return false
	}
	return s.Match(n)
}

// Closest returns the nearest inclusive ancestor of n matching sel, staying
// within n's tree (it does not cross shadow boundaries). Returns nil when
// nothing matches or the selector is unparseable.
func Closest(n *html.Node, sel string) *html.Node {
	s, err := CompileSelector(sel)
	if err != nil {
		return nil
	}
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type == html.ElementNode && s.Match(cur) {
			return cur
		}
	}
	return nil
}

// Query returns the first descendant of root matching sel in tree order,
// excluding root itself.
func Query(root *html.Node, sel string) *html.Node {
	all := QueryAll(root, sel)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// QueryAll returns all descendants of root matching sel in tree order,
// excluding root itself. Shadow sub-trees are separate trees and are not
// descended into.
func QueryAll(root *html.Node, sel string) []*html.Node {
	s, err := CompileSelector(sel)
	if err != nil {
		return nil
	}
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && s.Match(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}
