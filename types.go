package unbox

// Mode selects how a decode session reacts to required-field failures.
type Mode int

const (
	// ModeAccumulate records every failed field access and fails once at the
	// end with the aggregated list, in access order.
	ModeAccumulate Mode = iota
	// ModeFailFast stops at the first required-field failure; later accessors
	// on the same session become no-ops.
	ModeFailFast
)

// DecodeOpt bundles per-decode options. When passed variadically the last
// value wins.
type DecodeOpt struct {
	Mode Mode
	// Context is an arbitrary contextual value made available to models via
	// Unboxer.Context; nested decodes inherit it unless overridden.
	Context any
	// Observer receives warnings for this decode only, taking precedence over
	// the process-wide observer installed with SetObserver.
	Observer Observer
}
