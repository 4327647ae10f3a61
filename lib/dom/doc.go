// Package dom provides the in-memory document that domwire components bind
// against: an element tree built on golang.org/x/net/html nodes with
// attribute storage, CSS selector queries, isolated shadow sub-trees, named
// template fragments, event dispatch with cancelable listener sets, and
// batched mutation observation.
//
// # Model
//
// A Document owns one tree rooted at an html/body pair plus any number of
// isolated sub-trees attached to hosts via AttachShadow. All structural and
// attribute mutations go through Document methods (Append, Remove, SetAttr,
// ...) so the document can queue mutation records and drive upgrade hooks.
// Mutating html.Node fields directly bypasses both and is not supported.
//
// # Delivery model
//
// The package is single-threaded and event-driven: all calls are expected
// from one goroutine, mirroring a cooperative UI event loop. Mutation
// records accumulate until Flush, which hands each observer its pending
// batch in enqueue order and repeats until no observer has pending records.
// Embedding hosts call Flush at their event-loop boundary; tests call it
// explicitly.
//
// # Upgrade hooks
//
// When an element becomes connected (reachable from the document root,
// crossing shadow boundaries through the host) the document invokes its
// Upgrader, if set. The domwire registry implements Upgrader to instantiate
// and bind registered components.
package dom
