package domwire

import "github.com/pthm/domwire/lib/dom"

// helloWorldElement is the fixture component used across the wiring tests.
// It records hook and method invocations so tests can assert on dispatch.
type helloWorldElement struct {
	*Base

	connects       int
	greetingAtHook string
	clicks         []*dom.Event
	submits        int
	attrChanges    []attrChange
}

type attrChange struct {
	name, old, new string
}

func newHelloWorld() Component {
	c := &helloWorldElement{Base: NewBase()}
	c.Attr("greetingTarget", "world")
	c.Attr("count", 0)
	c.Attr("enabled", false)
	c.Target("output")
	c.Targets("targetChildren")
	c.Method("buttonClick", c.buttonClick)
	c.Method("formSubmit", c.formSubmit)
	return c
}

func (c *helloWorldElement) Connected() {
	c.connects++
	c.greetingAtHook = c.String("greetingTarget")
}

func (c *helloWorldElement) AttrChanged(name, oldValue, newValue string) {
	c.attrChanges = append(c.attrChanges, attrChange{name, oldValue, newValue})
}

func (c *helloWorldElement) buttonClick(ev *dom.Event) {
	c.clicks = append(c.clicks, ev)
}

func (c *helloWorldElement) formSubmit(*dom.Event) {
	c.submits++
}

func newTestHarness() *Harness {
	reg := NewRegistry()
	reg.Define(&Definition{Name: "HelloWorldElement", New: newHelloWorld})
	return NewHarness(reg)
}

func helloInstance(h *Harness, sel string) (*helloWorldElement, error) {
	comp, err := h.Instance(sel)
	if err != nil {
		return nil, err
	}
	return comp.(*helloWorldElement), nil
}
