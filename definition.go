package domwire

import (
	"fmt"
	"sort"
)

// Definition describes a registered component type: its tag, template,
// rendering mode, and constructor. A definition is immutable once Define
// completes; the derived tag is computed once and cached.
type Definition struct {
	// Name is the component's type name in Go form (HelloWorldElement).
	// The tag is derived from it unless Tag is set explicitly.
	Name string

	// Tag overrides the derived tag name.
	Tag string

	// TemplateName selects the template cloned at attach time. Defaults to
	// the tag name. A missing template is not an error.
	TemplateName string

	// LightDOM renders the template directly as children instead of into
	// an isolated shadow sub-tree. The zero value keeps the shadow-root
	// default.
	LightDOM bool

	// New constructs a fresh component instance. The constructor declares
	// methods, attrs, and targets on the embedded Base.
	New func() Component

	tag        string
	attrs      []string          // declared attr fields, in order
	targets    []string          // declared target fields, in order
	methods    []string          // declared method names
	observed   []string          // backing attribute names watched for change
	attrFields map[string]string // backing attribute name -> field name
}

// TagName returns the definition's tag, derived and cached at Define time.
func (d *Definition) TagName() string { return d.tag }

// Attrs returns the declared attr field names in declaration order.
func (d *Definition) Attrs() []string { return d.attrs }

// Targets returns the declared target field names in declaration order.
func (d *Definition) Targets() []string { return d.targets }

// Methods returns the declared method names.
func (d *Definition) Methods() []string { return d.methods }

// ObservedAttrs returns the backing attribute names whose changes are
// reported to AttrChangedCallback implementations.
func (d *Definition) ObservedAttrs() []string { return d.observed }

func (d *Definition) fieldForAttr(attr string) (string, bool) {
	field, ok := d.attrFields[attr]
	return field, ok
}

// finalize computes the tag, probes a throwaway instance for its declared
// wiring, and validates attr defaults. Declared attrs are merged into the
// observed set so the watcher can notify on their change.
func (d *Definition) finalize() error {
	if d.New == nil {
		return fmt.Errorf("domwire: definition %q has no constructor", d.Name)
	}
	d.tag = d.Tag
	if d.tag == "" {
		d.tag = TagName(d.Name)
	}
	if d.tag == "" {
		return fmt.Errorf("domwire: definition has neither name nor tag")
	}

	probe := d.New()
	b := probe.base()
	d.attrs = append([]string(nil), b.attrOrder...)
	d.targets = append([]string(nil), b.targetOrder...)
	d.methods = d.methods[:0]
	for name := range b.methods {
		d.methods = append(d.methods, name)
	}
	sort.Strings(d.methods)
	d.attrFields = make(map[string]string, len(d.attrs))
	d.observed = d.observed[:0]
	for _, field := range d.attrs {
		if _, err := kindOf(b.attrDefaults[field]); err != nil {
			return fmt.Errorf("domwire: %s attr %q: %w", d.tag, field, err)
		}
		attr := AttrName(field)
		d.observed = append(d.observed, attr)
		d.attrFields[attr] = field
	}
	return nil
}
