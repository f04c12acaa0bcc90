// Package bucket: construction-time configuration.
//
// The checked/unchecked trade-off is resolved exactly once, in New; the hot
// paths never consult anything but a single bool. There is deliberately no
// per-call switch.
package bucket

// DefaultChecks is the zero-configuration policy: preconditions on
// UpdateRowSum and FindUpperBound are validated and violations are reported
// as sentinel errors before any state is touched.
const DefaultChecks = true

// Option mutates the construction-time configuration. Options are applied
// in order and are idempotent.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// Unexported so it cannot be mutated after construction.
type options struct {
	checks bool
}

// gatherOptions resolves defaults and applies the provided setters.
func gatherOptions(opts ...Option) options {
	o := options{checks: DefaultChecks}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithChecks selects the checked variant: UpdateRowSum rejects invalid row
// indices with ErrRowIndexOutOfRange and FindUpperBound rejects thresholds
// outside (0, total) with ErrValueOutOfRange. A rejected call leaves the
// structure unchanged. This is the default.
func WithChecks() Option {
	return func(o *options) { o.checks = true }
}

// WithoutChecks selects the unchecked fast path: precondition validation is
// skipped entirely and violating a precondition is undefined behavior
// (a caller contract, not a crash guarantee). Shape preconditions in New
// remain enforced regardless.
func WithoutChecks() Option {
	return func(o *options) { o.checks = false }
}
