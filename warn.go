package unbox

import "sync"

// WarningKind enumerates the recoverable anomalies a decode can report.
type WarningKind int

const (
	// WarnInvalidElement reports an invalid element dropped from a collection
	// decoded with allowInvalid.
	WarnInvalidElement WarningKind = iota
	// WarnInvalidOptional reports an optional field that was present in the
	// tree but failed to convert (as opposed to being absent entirely).
	WarnInvalidOptional
)

// Warning is a non-fatal signal delivered once per occurrence. It never
// influences the success or failure of the enclosing decode.
type Warning struct {
	Kind  WarningKind
	Path  string // Dotted path of the offending value, relative to the decode root.
	Value any    // The raw value that failed to convert, when one was found.
}

// Observer receives warning events.
type Observer func(Warning)

var (
	observerMu      sync.RWMutex
	currentObserver Observer
)

// SetObserver installs the process-wide warning observer. Passing nil
// uninstalls it; warnings are then silently discarded unless a per-decode
// observer is supplied via DecodeOpt.
func SetObserver(o Observer) {
	observerMu.Lock()
	currentObserver = o
	observerMu.Unlock()
}

func getObserver() Observer {
	observerMu.RLock()
	o := currentObserver
	observerMu.RUnlock()
	return o
}
