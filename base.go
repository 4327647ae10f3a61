package domwire

import (
	"golang.org/x/net/html"

	"github.com/pthm/domwire/lib/dom"
)

// Component is satisfied by any type embedding *Base. The wiring layer
// reaches declared methods, attrs, and targets through it.
type Component interface {
	base() *Base
}

// Connecter is implemented by components that want the attach hook. It runs
// after templates, attrs, and targets are wired, so the hook observes a
// fully set-up instance. Panics inside the hook propagate to the caller.
type Connecter interface {
	Connected()
}

// Disconnecter is implemented by components that want a hook when their
// node leaves the connected tree.
type Disconnecter interface {
	Disconnected()
}

// AttrChangedCallback is implemented by components that want notification
// when one of their declared attr-backed attributes changes. Names are
// reported in field form (greetingTarget, not data-greeting-target).
type AttrChangedCallback interface {
	AttrChanged(name, oldValue, newValue string)
}

// Base is embedded by user components to declare their wiring and to access
// attr-backed fields and targets once bound.
//
// Declarations happen in the component constructor, before the instance is
// attached to a node:
//
//	type HelloWorldElement struct {
//	    *domwire.Base
//	}
//
//	func NewHelloWorld() *HelloWorldElement {
//	    c := &HelloWorldElement{Base: domwire.NewBase()}
//	    c.Attr("greetingTarget", "world")
//	    c.Target("output")
//	    c.Method("buttonClick", c.buttonClick)
//	    return c
//	}
//
// Attr-backed fields hold no in-memory copy after setup: every read and
// write goes through the node's attribute via an explicit binding table.
type Base struct {
	doc  *dom.Document
	node *html.Node
	def  *Definition

	methods      map[string]func(*dom.Event)
	attrOrder    []string
	attrDefaults map[string]any
	bindings     map[string]*attrBinding
	targetOrder  []string
	targetPlural map[string]bool

	stopWatcher func()
}

// NewBase returns an empty Base ready for declarations.
func NewBase() *Base {
	return &Base{
		methods:      make(map[string]func(*dom.Event)),
		attrDefaults: make(map[string]any),
		targetPlural: make(map[string]bool),
	}
}

func (b *Base) base() *Base { return b }

// Method registers a named handler for action dispatch. Dispatch to a name
// with no registered handler is a silent no-op.
func (b *Base) Method(name string, fn func(*dom.Event)) {
	b.methods[name] = fn
}

// Attr declares an attr-backed field. The default's Go type fixes the
// field's variant for the life of the instance: int or float64 for numeric
// fields, bool for presence-based fields, string otherwise. A nil default
// declares an empty string field.
func (b *Base) Attr(name string, def any) {
	if _, ok := b.attrDefaults[name]; !ok {
		b.attrOrder = append(b.attrOrder, name)
	}
	b.attrDefaults[name] = def
}

// Target declares a singular target field resolved lazily via FindTarget.
func (b *Base) Target(name string) {
	b.declareTarget(name, false)
}

// Targets declares a plural target field resolved lazily via FindTargets.
func (b *Base) Targets(name string) {
	b.declareTarget(name, true)
}

func (b *Base) declareTarget(name string, plural bool) {
	if _, ok := b.targetPlural[name]; !ok {
		b.targetOrder = append(b.targetOrder, name)
	}
	b.targetPlural[name] = plural
}

// Node returns the element this instance is bound to, nil before binding.
func (b *Base) Node() *html.Node { return b.node }

// Doc returns the owning document, nil before binding.
func (b *Base) Doc() *dom.Document { return b.doc }

// Tag returns the component's derived tag name, "" before binding.
func (b *Base) Tag() string {
	if b.def == nil {
		return ""
	}
	return b.def.tag
}

func (b *Base) method(name string) (func(*dom.Event), bool) {
	fn, ok := b.methods[name]
	return fn, ok
}

func (b *Base) binding(name string) *attrBinding {
	if b.bindings == nil {
		return nil
	}
	return b.bindings[name]
}

// Number reads a numeric attr-backed field. Absent or unparseable
// attributes read as 0.
func (b *Base) Number(name string) float64 {
	if bind := b.binding(name); bind != nil {
		return bind.number()
	}
	f, _ := coerceNumber(b.attrDefaults[name])
	return f
}

// SetNumber writes a numeric attr-backed field through its attribute.
func (b *Base) SetNumber(name string, v float64) {
	if bind := b.binding(name); bind != nil {
		bind.setNumber(v)
	}
}

// Bool reads a presence-based attr-backed field.
func (b *Base) Bool(name string) bool {
	if bind := b.binding(name); bind != nil {
		return bind.bool()
	}
	v, _ := b.attrDefaults[name].(bool)
	return v
}

// SetBool toggles the backing attribute's presence.
func (b *Base) SetBool(name string, v bool) {
	if bind := b.binding(name); bind != nil {
		bind.setBool(v)
	}
}

// String reads a string attr-backed field. Absent attributes read as "".
func (b *Base) String(name string) string {
	if bind := b.binding(name); bind != nil {
		return bind.string()
	}
	v, _ := b.attrDefaults[name].(string)
	return v
}

// SetString writes a string attr-backed field through its attribute.
func (b *Base) SetString(name string, v string) {
	if bind := b.binding(name); bind != nil {
		bind.setString(v)
	}
}

// FindTarget resolves the singular target field, re-running the search on
// every call. Returns nil when nothing matches.
func (b *Base) FindTarget(name string) *html.Node {
	if b.node == nil {
		return nil
	}
	return findTarget(b.doc, b.node, b.def.tag, name)
}

// FindTargets resolves the plural target field, re-running the search on
// every call. Shadow matches precede light-tree matches.
func (b *Base) FindTargets(name string) []*html.Node {
	if b.node == nil {
		return nil
	}
	return findTargets(b.doc, b.node, b.def.tag, name)
}
