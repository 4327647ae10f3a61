package domwire

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"

	"github.com/pthm/domwire/lib/dom"
)

// attrKind is the variant of an attr-backed field, fixed at setup time from
// the declared default's type. Once installed, a binding's kind never
// changes for that field on that instance.
type attrKind int

const (
	attrString attrKind = iota
	attrNumber
	attrBool
)

func (k attrKind) String() string {
	switch k {
	case attrNumber:
		return "number"
	case attrBool:
		return "bool"
	default:
		return "string"
	}
}

// kindOf maps a declared default value to its attr variant. nil declares an
// empty string field.
func kindOf(def any) (attrKind, error) {
	switch def.(type) {
	case nil, string:
		return attrString, nil
	case int, int64, float64:
		return attrNumber, nil
	case bool:
		return attrBool, nil
	default:
		return attrString, fmt.Errorf("%w: default %T is not a string, number, or bool", ErrBadAttrDefault, def)
	}
}

func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// attrBinding routes one field's reads and writes through a node attribute.
// The instance keeps no value of its own; the attribute is the storage.
type attrBinding struct {
	doc  *dom.Document
	node *html.Node
	name string // field name
	attr string // backing attribute name
	kind attrKind
}

func (b *attrBinding) number() float64 {
	f, err := strconv.ParseFloat(b.doc.Attr(b.node, b.attr), 64)
	if err != nil {
		return 0
	}
	return f
}

func (b *attrBinding) setNumber(v float64) {
	b.doc.SetAttr(b.node, b.attr, strconv.FormatFloat(v, 'f', -1, 64))
}

func (b *attrBinding) bool() bool {
	return b.doc.HasAttr(b.node, b.attr)
}

func (b *attrBinding) setBool(v bool) {
	b.doc.ToggleAttr(b.node, b.attr, v)
}

func (b *attrBinding) string() string {
	return b.doc.Attr(b.node, b.attr)
}

func (b *attrBinding) setString(v string) {
	b.doc.SetAttr(b.node, b.attr, v)
}

// value reads the field in its declared variant. Used by snapshots.
func (b *attrBinding) value() any {
	switch b.kind {
	case attrNumber:
		return b.number()
	case attrBool:
		return b.bool()
	default:
		return b.string()
	}
}

// setValue writes the field in its declared variant, coercing snapshot and
// default values. Used during reconcile and restore.
func (b *attrBinding) setValue(v any) {
	switch b.kind {
	case attrNumber:
		f, _ := coerceNumber(v)
		b.setNumber(f)
	case attrBool:
		on, _ := v.(bool)
		b.setBool(on)
	default:
		s, _ := v.(string)
		b.setString(s)
	}
}

// installAttrs builds the instance's binding table and reconciles each
// field with its backing attribute, in declaration order. An attribute
// already present on the node wins over the declared default: the field
// simply reads through it. Otherwise the default is written through the new
// setter so the attribute reflects the field.
func installAttrs(b *Base) error {
	b.bindings = make(map[string]*attrBinding, len(b.attrOrder))
	for _, name := range b.attrOrder {
		def := b.attrDefaults[name]
		kind, err := kindOf(def)
		if err != nil {
			return fmt.Errorf("attr %q: %w", name, err)
		}
		bind := &attrBinding{
			doc:  b.doc,
			node: b.node,
			name: name,
			attr: AttrName(name),
			kind: kind,
		}
		b.bindings[name] = bind
		if !b.doc.HasAttr(b.node, bind.attr) {
			if def == nil {
				def = ""
			}
			bind.setValue(def)
		}
	}
	return nil
}
