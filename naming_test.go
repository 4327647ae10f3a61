package domwire

import "testing"

func TestTagName(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		expect   string
	}{
		{"strips Element suffix", "HelloWorldElement", "hello-world"},
		{"no suffix", "UserList", "user-list"},
		{"single word", "CounterElement", "counter"},
		{"capital run", "HTMLViewerElement", "html-viewer"},
		{"bare Element keeps name", "Element", "element"},
		{"already lower", "widget", "widget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TagName(tt.typeName); got != tt.expect {
				t.Errorf("TagName(%q) = %q, want %q", tt.typeName, got, tt.expect)
			}
		})
	}
}

func TestAttrName(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		expect string
	}{
		{"camel case", "greetingTarget", "data-greeting-target"},
		{"single word", "count", "data-count"},
		{"capital run", "innerHTML", "data-inner-html"},
		{"capital run then word", "innerHTMLValue", "data-inner-html-value"},
		{"leading capital", "Greeting", "data-greeting"},
		{"dash before capital collapses", "my-Field", "data-my-field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttrName(tt.field); got != tt.expect {
				t.Errorf("AttrName(%q) = %q, want %q", tt.field, got, tt.expect)
			}
		})
	}
}
