package domwire

import (
	"strings"
	"unicode"
)

// Attribute names used by the wiring layer. Action and target declarations
// are ordinary attributes on descendant nodes; attr-backed fields live
// under the data- namespace using AttrName.
const (
	// ActionAttr holds whitespace-separated event:selector#method tokens.
	ActionAttr = "data-action"
	// TargetAttr holds whitespace-separated tag.field tokens.
	TargetAttr = "data-target"

	attrPrefix = "data-"
)

// TagName derives a component tag from a Go type name: an optional trailing
// "Element" is stripped, then interior capital runs become dash-separated
// lowercase. HelloWorldElement becomes hello-world.
func TagName(typeName string) string {
	name := strings.TrimSuffix(typeName, "Element")
	if name == "" {
		name = typeName
	}
	return dashCase(name)
}

// AttrName converts a field name to its backing attribute name: dash-cased,
// prefixed with the data- namespace, doubled dashes collapsed.
// greetingTarget becomes data-greeting-target.
func AttrName(field string) string {
	return collapseDashes(attrPrefix + dashCase(field))
}

// dashCase inserts a dash at each interior word boundary and lowercases. A
// run of capitals is one word, so innerHTML becomes inner-html and
// HTMLViewer becomes html-viewer.
func dashCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// A boundary sits before the first capital of a run, and before
			// the last capital of a run when a lowercase word follows it.
			startsRun := i > 0 && !unicode.IsUpper(runes[i-1])
			endsRun := i > 0 && unicode.IsUpper(runes[i-1]) &&
				i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if startsRun || endsRun {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func collapseDashes(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}
