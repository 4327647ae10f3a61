package domwire

import (
	"encoding/base64"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotAttrs captures a bound instance's attr-backed fields as a compact
// token: a msgpack map of field name to value, base64url-encoded. Use it to
// persist component state across re-renders or transfer it between
// documents; RestoreAttrs applies it back through the typed setters.
func SnapshotAttrs(comp Component) (string, error) {
	b := comp.base()
	if b.bindings == nil {
		return "", ErrNotBound
	}
	state := make(map[string]any, len(b.attrOrder))
	for _, name := range b.attrOrder {
		state[name] = b.bindings[name].value()
	}
	packed, err := msgpack.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("domwire: snapshot encode: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(packed), nil
}

// RestoreAttrs applies a snapshot token to a bound instance. Fields absent
// from the snapshot keep their current values; unknown fields in the
// snapshot are ignored. Values are coerced to each field's declared
// variant.
func RestoreAttrs(comp Component, token string) error {
	b := comp.base()
	if b.bindings == nil {
		return ErrNotBound
	}
	packed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return fmt.Errorf("domwire: snapshot decode: %w", err)
	}
	var state map[string]any
	if err := msgpack.Unmarshal(packed, &state); err != nil {
		return fmt.Errorf("domwire: snapshot decode: %w", err)
	}
	for _, name := range b.attrOrder {
		if v, ok := state[name]; ok {
			b.bindings[name].setValue(v)
		}
	}
	return nil
}
