// Package errors provides structured error handling for notification rendering.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeContractViolation marks input that is missing required identity.
	// It is always a caller bug and never recovered by the renderers.
	CodeContractViolation Code = "CONTRACT_VIOLATION"

	// CodeUnknownEventKind marks an event envelope whose kind is not rendered.
	CodeUnknownEventKind Code = "UNKNOWN_EVENT_KIND"
)

// String returns the wire form of the code.
func (c Code) String() string {
	return string(c)
}
