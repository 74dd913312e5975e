package shellattr

import "fmt"

// Status is a platform result code as returned by the resolver. Zero means
// success; any other value is opaque and is surfaced verbatim in hex, never
// decoded further.
type Status uint32

// StatusOK is the only status value treated as success.
const StatusOK Status = 0

// OK reports whether the status denotes success.
func (s Status) OK() bool { return s == StatusOK }

func (s Status) String() string { return fmt.Sprintf("0x%08X", uint32(s)) }

// Outcome is the result of one classification: either a failure status from
// the resolver, or the attribute mask of the resolved item. A failed outcome
// carries no meaningful mask.
type Outcome struct {
	Status Status
	Mask   Mask
}

// Failed reports whether the resolver rejected the path.
func (o Outcome) Failed() bool { return !o.Status.OK() }
