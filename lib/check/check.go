// Package check statically verifies action and target declarations in
// markup files against the domwire grammar and, optionally, a TOML manifest
// of component definitions. It backs the domwire CLI.
package check

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/net/html"

	"github.com/pthm/domwire"
	"github.com/pthm/domwire/lib/dom"
)

// Manifest declares the components a markup tree is checked against.
type Manifest struct {
	Components []ManifestComponent `toml:"component"`
}

// ManifestComponent mirrors a domwire.Definition for checking purposes.
type ManifestComponent struct {
	// Name is the Go type name; the tag is derived from it unless Tag is
	// set, matching registration.
	Name     string   `toml:"name"`
	Tag      string   `toml:"tag"`
	Attrs    []string `toml:"attrs"`
	Targets  []string `toml:"targets"`
	Methods  []string `toml:"methods"`
	Template string   `toml:"template"`
}

// LoadManifest reads a TOML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("check: manifest %s: %w", path, err)
	}
	return &m, nil
}

// Problem is one finding in a checked file. Node is the tag of the element
// carrying the offending token.
type Problem struct {
	File  string
	Node  string
	Token string
	Msg   string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: <%s> %q: %s", p.File, p.Node, p.Token, p.Msg)
}

type componentInfo struct {
	methods map[string]bool
	targets map[string]bool
}

// Checker verifies declaration tokens. With a nil manifest only the grammar
// and selectors are checked; with a manifest, methods and target fields
// must resolve to declared components.
type Checker struct {
	tags map[string]*componentInfo
}

// New builds a checker from an optional manifest.
func New(m *Manifest) *Checker {
	c := &Checker{}
	if m == nil {
		return c
	}
	c.tags = make(map[string]*componentInfo, len(m.Components))
	for _, mc := range m.Components {
		tag := mc.Tag
		if tag == "" {
			tag = domwire.TagName(mc.Name)
		}
		info := &componentInfo{
			methods: make(map[string]bool, len(mc.Methods)),
			targets: make(map[string]bool, len(mc.Targets)),
		}
		for _, name := range mc.Methods {
			info.methods[name] = true
		}
		for _, name := range mc.Targets {
			info.targets[name] = true
		}
		c.tags[tag] = info
	}
	return c
}

// CheckFile parses one markup file and returns its problems.
func (c *Checker) CheckFile(path string) ([]Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	root, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("check: parse %s: %w", path, err)
	}
	return c.check(path, root), nil
}

// CheckMarkup checks a markup string, reporting problems under name.
func (c *Checker) CheckMarkup(name, markup string) ([]Problem, error) {
	nodes, err := dom.ParseFragment(markup)
	if err != nil {
		return nil, fmt.Errorf("check: parse %s: %w", name, err)
	}
	var problems []Problem
	for _, n := range nodes {
		problems = append(problems, c.check(name, n)...)
	}
	return problems, nil
}

func (c *Checker) check(file string, root *html.Node) []Problem {
	var problems []Problem
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			problems = append(problems, c.checkElement(file, n)...)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return problems
}

func (c *Checker) checkElement(file string, n *html.Node) []Problem {
	var problems []Problem
	for _, a := range n.Attr {
		switch a.Key {
		case domwire.ActionAttr:
			for _, tok := range strings.Fields(a.Val) {
				problems = append(problems, c.checkAction(file, n, tok)...)
			}
		case domwire.TargetAttr:
			for _, tok := range strings.Fields(a.Val) {
				problems = append(problems, c.checkTarget(file, n, tok)...)
			}
		}
	}
	return problems
}

func (c *Checker) checkAction(file string, n *html.Node, tok string) []Problem {
	decl, err := domwire.ParseActionToken(tok)
	if err != nil {
		return []Problem{{File: file, Node: n.Data, Token: tok, Msg: err.Error()}}
	}
	if _, err := dom.CompileSelector(decl.Selector); err != nil {
		return []Problem{{File: file, Node: n.Data, Token: tok, Msg: fmt.Sprintf("bad selector: %v", err)}}
	}
	if c.tags == nil {
		return nil
	}
	// Only bare-tag selectors can be resolved to a manifest component;
	// compound selectors dispatch to whatever matches at runtime.
	info, ok := c.tags[decl.Selector]
	if !ok {
		return nil
	}
	if !info.methods[decl.Method] {
		return []Problem{{
			File: file, Node: n.Data, Token: tok,
			Msg: fmt.Sprintf("component %q declares no method %q", decl.Selector, decl.Method),
		}}
	}
	return nil
}

func (c *Checker) checkTarget(file string, n *html.Node, tok string) []Problem {
	dot := strings.Index(tok, ".")
	if dot <= 0 || dot == len(tok)-1 {
		return []Problem{{File: file, Node: n.Data, Token: tok, Msg: "target token is not tag.field"}}
	}
	if c.tags == nil {
		return nil
	}
	tag, field := tok[:dot], tok[dot+1:]
	info, ok := c.tags[tag]
	if !ok {
		return nil
	}
	if !info.targets[field] {
		return []Problem{{
			File: file, Node: n.Data, Token: tok,
			Msg: fmt.Sprintf("component %q declares no target %q", tag, field),
		}}
	}
	return nil
}
