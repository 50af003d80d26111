// Package audit defines the result contract shared by every scorer in the
// engine. Each result embeds a Meta that names the formula used and asserts
// the value came from a deterministic calculation, never from model inference.
// Downstream audit logging treats both fields as mandatory.
package audit

// Meta is embedded in every scorer result.
type Meta struct {
	// Algorithm describes the formula or method that produced the result.
	Algorithm string `json:"algorithm"`

	// IsVerified is always true: the engine only emits results computed by
	// fixed numeric formulas.
	IsVerified bool `json:"is_verified"`

	// Error is set when the input was degenerate (empty bundle, zero
	// visitors). The result is still a valid, deterministic "no data" value.
	Error string `json:"error,omitempty"`
}

// Auditable is implemented by every scorer result via the embedded Meta.
type Auditable interface {
	Audit() Meta
}

// Audit returns the metadata itself so embedding Meta satisfies Auditable.
func (m Meta) Audit() Meta { return m }

// Verified builds the metadata for a successfully computed result.
func Verified(algorithm string) Meta {
	return Meta{Algorithm: algorithm, IsVerified: true}
}

// Degenerate builds the metadata for a defined fallback result. The error
// string tells the caller which limitation applies; IsVerified stays true
// because the fallback itself is part of the documented contract.
func Degenerate(algorithm, errMsg string) Meta {
	return Meta{Algorithm: algorithm, IsVerified: true, Error: errMsg}
}
