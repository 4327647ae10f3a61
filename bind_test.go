package domwire

import (
	"testing"

	"github.com/pthm/domwire/lib/dom"
)

func TestBindClonesTemplateIntoShadowRoot(t *testing.T) {
	h := newTestHarness()
	if err := h.Doc.DefineTemplate("hello-world", `<p id="greeting">hello</p>`); err != nil {
		t.Fatalf("DefineTemplate: %v", err)
	}
	if _, err := h.Mount(`<hello-world></hello-world>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	c, err := helloInstance(h, "hello-world")
	if err != nil {
		t.Fatal(err)
	}

	sr := h.Doc.ShadowRoot(c.Node())
	if sr == nil {
		t.Fatal("expected a shadow root by default")
	}
	if dom.Query(sr, "#greeting") == nil {
		t.Error("template content missing from the shadow root")
	}
	if dom.Query(c.Node(), "#greeting") != nil {
		t.Error("template content leaked into the light tree")
	}
}

func TestBindLightDOMClonesAsChildren(t *testing.T) {
	reg := NewRegistry()
	reg.Define(&Definition{Name: "HelloWorldElement", LightDOM: true, New: newHelloWorld})
	h := NewHarness(reg)
	if err := h.Doc.DefineTemplate("hello-world", `<p id="greeting">hello</p>`); err != nil {
		t.Fatalf("DefineTemplate: %v", err)
	}
	if _, err := h.Mount(`<hello-world></hello-world>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	c, err := helloInstance(h, "hello-world")
	if err != nil {
		t.Fatal(err)
	}

	if h.Doc.ShadowRoot(c.Node()) != nil {
		t.Error("LightDOM binding should not create a shadow root")
	}
	if dom.Query(c.Node(), "#greeting") == nil {
		t.Error("template content missing from the light tree")
	}
}

func TestBindMissingTemplateIsNoop(t *testing.T) {
	h := newTestHarness()
	if _, err := h.Mount(`<hello-world></hello-world>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	c, err := helloInstance(h, "hello-world")
	if err != nil {
		t.Fatal(err)
	}

	if h.Doc.ShadowRoot(c.Node()) != nil {
		t.Error("no template should mean no shadow root")
	}
	if c.connects != 1 {
		t.Errorf("Connected ran %d times, want 1", c.connects)
	}
}

func TestBindTemplateNameOverride(t *testing.T) {
	reg := NewRegistry()
	reg.Define(&Definition{Name: "HelloWorldElement", TemplateName: "greeting-card", New: newHelloWorld})
	h := NewHarness(reg)
	if err := h.Doc.DefineTemplate("greeting-card", `<p id="card"></p>`); err != nil {
		t.Fatalf("DefineTemplate: %v", err)
	}
	if _, err := h.Mount(`<hello-world></hello-world>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	c, err := helloInstance(h, "hello-world")
	if err != nil {
		t.Fatal(err)
	}

	if dom.Query(h.Doc.ShadowRoot(c.Node()), "#card") == nil {
		t.Error("named template was not cloned")
	}
}

func TestBindUsesInlineTemplateElement(t *testing.T) {
	h := newTestHarness()
	if _, err := h.Mount(`<template data-name="hello-world"><p id="inline"></p></template>`); err != nil {
		t.Fatalf("Mount template: %v", err)
	}
	if _, err := h.Mount(`<hello-world></hello-world>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	c, err := helloInstance(h, "hello-world")
	if err != nil {
		t.Fatal(err)
	}

	if dom.Query(h.Doc.ShadowRoot(c.Node()), "#inline") == nil {
		t.Error("inline <template> content was not cloned")
	}
}

func TestReattachmentRunsSetupAgainWithoutDoubleRender(t *testing.T) {
	h := newTestHarness()
	if err := h.Doc.DefineTemplate("hello-world", `<p class="pane"></p>`); err != nil {
		t.Fatalf("DefineTemplate: %v", err)
	}
	if _, err := h.Mount(`<hello-world></hello-world>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	c, err := helloInstance(h, "hello-world")
	if err != nil {
		t.Fatal(err)
	}
	node := c.Node()

	h.Doc.Remove(node)
	h.Doc.Append(h.Doc.Body(), node)

	if c.connects != 2 {
		t.Errorf("Connected ran %d times across re-attachment, want 2", c.connects)
	}
	sr := h.Doc.ShadowRoot(node)
	if got := len(dom.QueryAll(sr, ".pane")); got != 1 {
		t.Errorf("template rendered %d times, want 1", got)
	}
}

func TestConnectedHookObservesWiring(t *testing.T) {
	h := newTestHarness()
	if _, err := h.Mount(`<hello-world data-greeting-target="Reactant"></hello-world>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	c, err := helloInstance(h, "hello-world")
	if err != nil {
		t.Fatal(err)
	}

	if c.greetingAtHook != "Reactant" {
		t.Errorf("hook observed greetingTarget = %q, want %q", c.greetingAtHook, "Reactant")
	}
}

func TestDefinePanicsOnDuplicateTag(t *testing.T) {
	reg := NewRegistry()
	reg.Define(&Definition{Name: "HelloWorldElement", New: newHelloWorld})

	defer func() {
		if recover() == nil {
			t.Error("Define did not panic on a duplicate tag")
		}
	}()
	reg.Define(&Definition{Name: "HelloWorld", New: newHelloWorld})
}

func TestDefineDerivesAndCachesTag(t *testing.T) {
	reg := NewRegistry()
	def := &Definition{Name: "HelloWorldElement", New: newHelloWorld}
	reg.Define(def)

	if def.TagName() != "hello-world" {
		t.Errorf("TagName() = %q, want hello-world", def.TagName())
	}
	if got, ok := reg.Definition("hello-world"); !ok || got != def {
		t.Error("Definition(hello-world) did not return the registered definition")
	}

	wantAttrs := []string{"greetingTarget", "count", "enabled"}
	if len(def.Attrs()) != len(wantAttrs) {
		t.Fatalf("Attrs() = %v, want %v", def.Attrs(), wantAttrs)
	}
	for i, name := range wantAttrs {
		if def.Attrs()[i] != name {
			t.Fatalf("Attrs() = %v, want %v (declaration order)", def.Attrs(), wantAttrs)
		}
	}
	wantObserved := []string{"data-greeting-target", "data-count", "data-enabled"}
	for i, name := range wantObserved {
		if def.ObservedAttrs()[i] != name {
			t.Fatalf("ObservedAttrs() = %v, want %v", def.ObservedAttrs(), wantObserved)
		}
	}
}

func TestDefinitionReusableAcrossRegistries(t *testing.T) {
	def := &Definition{Name: "HelloWorldElement", New: newHelloWorld}
	NewRegistry().Define(def)
	NewRegistry().Define(def)

	want := []string{"buttonClick", "formSubmit"}
	got := def.Methods()
	if len(got) != len(want) {
		t.Fatalf("Methods() after two registrations = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Methods() = %v, want %v (sorted, no duplicates)", got, want)
		}
	}
}

type badAttrElement struct{ *Base }

func TestDefinePanicsOnBadAttrDefault(t *testing.T) {
	reg := NewRegistry()
	defer func() {
		if recover() == nil {
			t.Error("Define did not panic on an unsupported attr default")
		}
	}()
	reg.Define(&Definition{Name: "BadAttrElement", New: func() Component {
		c := &badAttrElement{Base: NewBase()}
		c.Attr("items", []string{"a"})
		return c
	}})
}
