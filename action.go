package domwire

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/pthm/domwire/lib/dom"
)

// bindingKey is the node-data key holding a node's active action binding
// set, as the AbortController that cancels it.
const bindingKey = "domwire.actionset"

// ActionDecl is one parsed action declaration token.
type ActionDecl struct {
	Event    string
	Selector string
	Method   string
}

// ParseActionToken parses one event:selector#method token. The selector
// must not contain '#'; the method is everything after the first '#'. A
// token with no '#', no event, or an empty method is malformed.
func ParseActionToken(tok string) (ActionDecl, error) {
	hash := strings.Index(tok, "#")
	if hash < 0 {
		return ActionDecl{}, fmt.Errorf("%w: %q has no #method", ErrMalformedAction, tok)
	}
	head, method := tok[:hash], tok[hash+1:]
	if method == "" {
		return ActionDecl{}, fmt.Errorf("%w: %q has an empty method", ErrMalformedAction, tok)
	}
	colon := strings.Index(head, ":")
	if colon <= 0 {
		return ActionDecl{}, fmt.Errorf("%w: %q has no event prefix", ErrMalformedAction, tok)
	}
	return ActionDecl{
		Event:    head[:colon],
		Selector: head[colon+1:],
		Method:   method,
	}, nil
}

// BindActions installs the action binding set declared on n. Any previous
// binding set for n is canceled first, unconditionally, so a node holds at
// most one live set: rebinding after an attribute change and unbinding a
// node whose declarations were removed are the same operation. A node with
// no declaration ends with no binding set.
//
// Malformed tokens return the parse error; listeners attached before the
// bad token stay installed under the stored handle, so the partial set is
// still cancelable.
func BindActions(d *dom.Document, r *Registry, n *html.Node) error {
	if ctrl, ok := d.NodeData(n, bindingKey).(*dom.AbortController); ok {
		ctrl.Abort()
		d.SetNodeData(n, bindingKey, nil)
	}
	raw := strings.TrimSpace(d.Attr(n, ActionAttr))
	if raw == "" {
		return nil
	}

	ctrl := dom.NewAbortController()
	// The handle is stored before listeners attach: if a token fails to
	// parse mid-install the set is incomplete but still consistent.
	d.SetNodeData(n, bindingKey, ctrl)
	for _, tok := range strings.Fields(raw) {
		decl, err := ParseActionToken(tok)
		if err != nil {
			return err
		}
		d.Listen(n, decl.Event, func(ev *dom.Event) {
			r.handleAction(d, decl, ev)
		}, dom.ListenOptions{Signal: ctrl.Signal()})
	}
	return nil
}

// BindActionsDeep applies BindActions to root, if it is a concrete element
// carrying a declaration, and to every declaration-carrying descendant. A
// shadow root has no attributes and is skipped itself; its content is
// bound.
func BindActionsDeep(d *dom.Document, r *Registry, root *html.Node) error {
	var errs []error
	if root.Type == html.ElementNode && d.HasAttr(root, ActionAttr) {
		errs = append(errs, BindActions(d, r, root))
	}
	for _, n := range dom.QueryAll(root, "["+ActionAttr+"]") {
		errs = append(errs, BindActions(d, r, n))
	}
	return errors.Join(errs...)
}

// handleAction routes one delivered event to a component method. The
// nearest inclusive ancestor of the event's original target matching the
// declared selector receives the dispatch. When nothing in the local tree
// matches and the target lives inside an isolated sub-tree, the sub-tree's
// host gets one chance: shadow content dispatches to its own host but never
// escalates past it. Dispatch against a node without an instance, or to a
// method the instance does not register, is a silent no-op.
func (r *Registry) handleAction(d *dom.Document, decl ActionDecl, ev *dom.Event) {
	if t := dom.Closest(ev.Target, decl.Selector); t != nil {
		r.invoke(d, t, decl.Method, ev)
		return
	}
	if host := d.HostOf(ev.Target); host != nil && dom.Matches(host, decl.Selector) {
		r.invoke(d, host, decl.Method, ev)
	}
}

func (r *Registry) invoke(d *dom.Document, n *html.Node, method string, ev *dom.Event) {
	comp := r.InstanceOf(d, n)
	if comp == nil {
		return
	}
	if fn, ok := comp.base().method(method); ok {
		fn(ev)
	}
}
