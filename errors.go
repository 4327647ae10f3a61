package domwire

import "errors"

// Sentinel errors for wiring operations.
var (
	ErrMalformedAction = errors.New("domwire: malformed action declaration")
	ErrBadAttrDefault  = errors.New("domwire: unsupported attr default type")
	ErrDuplicateTag    = errors.New("domwire: duplicate tag")
	ErrNotBound        = errors.New("domwire: component not bound to a node")
)

// IsMalformedAction checks if err is an action declaration parse error.
func IsMalformedAction(err error) bool {
	return errors.Is(err, ErrMalformedAction)
}
