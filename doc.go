// Package domwire augments an element tree with declarative component
// wiring: template instantiation, attribute-backed reactive fields,
// markup-driven action dispatch, and lazily-resolved child references —
// Catalyst-style ergonomics without a build step.
//
// # Core Concepts
//
// Components embed *domwire.Base and declare their wiring in the
// constructor. Declarations are explicit registrations, not reflection:
//
//	type HelloWorldElement struct {
//	    *domwire.Base
//	}
//
//	func NewHelloWorld() domwire.Component {
//	    c := &HelloWorldElement{Base: domwire.NewBase()}
//	    c.Attr("greetingTarget", "world")
//	    c.Target("output")
//	    c.Method("buttonClick", c.buttonClick)
//	    return c
//	}
//
// Definitions are registered with a Registry, which derives the tag from
// the type name (HelloWorldElement becomes hello-world) and, installed as a
// document's Upgrader, instantiates and binds components as their nodes
// become connected:
//
//	reg := domwire.NewRegistry()
//	reg.Define(&domwire.Definition{Name: "HelloWorldElement", New: NewHelloWorld})
//	doc := dom.NewDocument()
//	doc.Upgrader = reg
//
// # Attach Lifecycle
//
// Binding a connected instance runs, in order: clone the matching template
// into a shadow sub-tree (or as children with LightDOM), install and
// reconcile attr bindings (an attribute already present in markup wins over
// the declared default), invoke the component's Connected hook, start the
// mutation watcher, and perform the initial deep action bind over the node
// and its shadow sub-tree.
//
// # Attr-Backed Fields
//
// A declared attr field proxies a typed value through a node attribute
// using the data- naming rule (greetingTarget is stored in
// data-greeting-target). The default's type fixes the variant: numeric
// fields parse the attribute string and read absent as 0, boolean fields
// are presence-based, string fields read absent as "". The instance holds
// no copy; the attribute is the storage.
//
// # Actions
//
// Nodes declare dispatch with whitespace-separated tokens in data-action,
// each of the form event:selector#method. Dispatch finds the nearest
// inclusive ancestor of the event target matching the selector and invokes
// the named method on its component instance; shadow content falls back to
// its own host but never escalates past it. A mutation watcher keeps
// declarations live: nodes inserted later and edited declarations are
// rebound incrementally, with at most one active binding set per node.
//
// # Targets
//
// Descendants marked with data-target="tag.field" tokens are resolved
// lazily through FindTarget and FindTargets: shadow matches first, then
// light-tree matches, always excluding descendants owned by a nested
// instance of the same tag. Nothing is cached — every access re-runs the
// search.
//
// # Design Rationale
//
// The system favors explicitness over magic:
//   - Explicit registration (no init() side effects)
//   - Explicit method registry (no reflective method lookup)
//   - Explicit binding tables (no runtime mutation of type shapes)
//   - Explicit cancellation (one AbortController per binding set)
package domwire
