package domwire

import "testing"

func TestNumericAttrRoundTrip(t *testing.T) {
	h := newTestHarness()
	if _, err := h.Mount(`<hello-world></hello-world>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	c, err := helloInstance(h, "hello-world")
	if err != nil {
		t.Fatal(err)
	}

	if got := c.Number("count"); got != 0 {
		t.Errorf("default Number(count) = %v, want 0", got)
	}

	tests := []struct {
		name string
		set  float64
		want float64
	}{
		{"integer", 42, 42},
		{"fraction", 2.5, 2.5},
		{"zero", 0, 0},
		{"negative", -7, -7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.SetNumber("count", tt.set)
			if got := c.Number("count"); got != tt.want {
				t.Errorf("Number(count) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNumericAttrUnparseableReadsZero(t *testing.T) {
	h := newTestHarness()
	if _, err := h.Mount(`<hello-world data-count="not-a-number"></hello-world>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	c, err := helloInstance(h, "hello-world")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Number("count"); got != 0 {
		t.Errorf("Number(count) = %v, want 0", got)
	}
}

func TestBoolAttrPresence(t *testing.T) {
	h := newTestHarness()
	if _, err := h.Mount(`<hello-world></hello-world>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	c, err := helloInstance(h, "hello-world")
	if err != nil {
		t.Fatal(err)
	}
	node := c.Node()

	if c.Bool("enabled") {
		t.Error("default Bool(enabled) = true, want false")
	}
	if h.Doc.HasAttr(node, "data-enabled") {
		t.Error("false default should leave the attribute absent")
	}

	c.SetBool("enabled", true)
	if !c.Bool("enabled") {
		t.Error("Bool(enabled) after SetBool(true) = false")
	}
	if !h.Doc.HasAttr(node, "data-enabled") {
		t.Error("SetBool(true) should make the attribute present")
	}

	c.SetBool("enabled", false)
	if c.Bool("enabled") {
		t.Error("Bool(enabled) after SetBool(false) = true")
	}
	if h.Doc.HasAttr(node, "data-enabled") {
		t.Error("SetBool(false) should remove the attribute")
	}
}

func TestStringAttrDefaultWrittenThrough(t *testing.T) {
	h := newTestHarness()
	if _, err := h.Mount(`<hello-world></hello-world>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	c, err := helloInstance(h, "hello-world")
	if err != nil {
		t.Fatal(err)
	}

	if got := c.String("greetingTarget"); got != "world" {
		t.Errorf("String(greetingTarget) = %q, want %q", got, "world")
	}
	if got := h.Doc.Attr(c.Node(), "data-greeting-target"); got != "world" {
		t.Errorf("attribute = %q, want %q (default written through setter)", got, "world")
	}
}

func TestMarkupWinsOverDefault(t *testing.T) {
	h := newTestHarness()
	if _, err := h.Mount(`<hello-world data-greeting-target="Reactant"></hello-world>`); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	c, err := helloInstance(h, "hello-world")
	if err != nil {
		t.Fatal(err)
	}

	if got := c.String("greetingTarget"); got != "Reactant" {
		t.Errorf("String(greetingTarget) = %q, want %q", got, "Reactant")
	}
	if got := h.Doc.Attr(c.Node(), "data-greeting-target"); got != "Reactant" {
		t.Errorf("attribute = %q, want unchanged %q", got, "Reactant")
	}
	if c.greetingAtHook != "Reactant" {
		t.Errorf("Connected hook observed %q, want the markup value", c.greetingAtHook)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name    string
		def     any
		expect  attrKind
		wantErr bool
	}{
		{"string", "x", attrString, false},
		{"nil is string", nil, attrString, false},
		{"int", 3, attrNumber, false},
		{"float", 1.5, attrNumber, false},
		{"bool", true, attrBool, false},
		{"slice rejected", []string{}, attrString, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := kindOf(tt.def)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("kindOf: %v", err)
			}
			if kind != tt.expect {
				t.Errorf("kindOf(%v) = %v, want %v", tt.def, kind, tt.expect)
			}
		})
	}
}
