package numset

import "fmt"

// DomainViolation signals invalid interval bounds, log of a non-positive
// interval, or a negative digit count. It is
// unrecoverable at this layer and should surface to the caller as a
// programming error.
type DomainViolation struct {
	msg string
}

// NewDomainViolation builds a DomainViolation with the given message.
func NewDomainViolation(msg string) *DomainViolation {
	return &DomainViolation{msg: msg}
}

func (e *DomainViolation) Error() string {
	return fmt.Sprintf("domain violation: %s", e.msg)
}

// Unsupported signals an operation this engine deliberately does not
// implement: zero-crossing exponents, negative bases raised to fractional
// exponents, or sin of a sub-circle, non-singleton span. Callers should
// treat this as a todo-style failure and avoid the shape rather than retry.
type Unsupported struct {
	msg string
}

// NewUnsupported builds an Unsupported error with the given message.
func NewUnsupported(msg string) *Unsupported {
	return &Unsupported{msg: msg}
}

func (e *Unsupported) Error() string {
	return fmt.Sprintf("unsupported: %s", e.msg)
}
