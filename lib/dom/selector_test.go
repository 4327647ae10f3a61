package dom

import "testing"

func TestMatches(t *testing.T) {
	n := mustFragment(t, `<button class="cta" data-kind="go"></button>`)[0]

	tests := []struct {
		sel  string
		want bool
	}{
		{"button", true},
		{".cta", true},
		{`[data-kind="go"]`, true},
		{"button.cta[data-kind]", true},
		{"div", false},
		{".missing", false},
		{"](bad", false},
	}
	for _, tt := range tests {
		if got := Matches(n, tt.sel); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.sel, got, tt.want)
		}
	}
}

func TestClosest(t *testing.T) {
	d := NewDocument()
	nodes := mustFragment(t, `<section class="outer"><div class="mid"><button></button></div></section>`)
	d.Append(d.Body(), nodes[0])
	button := Query(d.Root(), "button")

	if got := Closest(button, "button"); got != button {
		t.Error("Closest should match the node itself first")
	}
	if got := Closest(button, ".mid"); got == nil || got.Data != "div" {
		t.Error("Closest(.mid) should find the div ancestor")
	}
	if got := Closest(button, ".outer"); got == nil || got.Data != "section" {
		t.Error("Closest(.outer) should find the section ancestor")
	}
	if Closest(button, "article") != nil {
		t.Error("Closest should return nil with no matching ancestor")
	}
	if Closest(button, "](bad") != nil {
		t.Error("Closest should return nil for an unparseable selector")
	}
}

func TestClosestStaysInsideShadowTree(t *testing.T) {
	d := NewDocument()
	host := mustFragment(t, `<section></section>`)[0]
	d.Append(d.Body(), host)
	sr := d.AttachShadow(host)
	inner := mustFragment(t, `<button></button>`)[0]
	d.Append(sr, inner)

	if Closest(inner, "section") != nil {
		t.Error("Closest must not cross the shadow boundary to the host's tree")
	}
}

func TestQueryAll(t *testing.T) {
	d := NewDocument()
	nodes := mustFragment(t, `<div class="x"><span class="x"></span><p><span class="x"></span></p></div>`)
	d.Append(d.Body(), nodes[0])

	// Root itself is excluded even when it matches.
	got := QueryAll(nodes[0], ".x")
	if len(got) != 2 {
		t.Fatalf("QueryAll(.x) returned %d nodes, want 2", len(got))
	}
	for _, n := range got {
		if n.Data != "span" {
			t.Errorf("QueryAll matched %s, want only spans", n.Data)
		}
	}

	if Query(nodes[0], ".missing") != nil {
		t.Error("Query with no match should return nil")
	}
	if QueryAll(nodes[0], "](bad") != nil {
		t.Error("QueryAll with an unparseable selector should return nil")
	}
}

func TestQueryAllDoesNotDescendIntoShadow(t *testing.T) {
	d := NewDocument()
	host := mustFragment(t, `<div></div>`)[0]
	d.Append(d.Body(), host)
	sr := d.AttachShadow(host)
	d.Append(sr, mustFragment(t, `<span class="hidden"></span>`)[0])

	if len(QueryAll(d.Root(), ".hidden")) != 0 {
		t.Error("QueryAll over the main tree must not see shadow content")
	}
	if len(QueryAll(sr, ".hidden")) != 1 {
		t.Error("QueryAll over the shadow root should see its content")
	}
}
