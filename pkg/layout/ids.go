package layout

import "strconv"

// IDSource generates identifiers that are unique for the lifetime of the
// process. It is an explicit piece of process-scoped state: create one at
// startup, thread it through every phase that synthesizes nodes, and never
// reset it mid-run. Uniqueness does not survive restarts or persisted state.
//
// IDSource is not safe for concurrent use; the layout pipeline is fully
// synchronous.
type IDSource struct {
	next uint64
}

// NewIDSource creates an ID source whose counter starts at zero.
func NewIDSource() *IDSource { return &IDSource{} }

// Unique returns prefix followed by the next counter value. The counter is
// monotonically increasing, so no two calls on the same source ever return
// the same ID for the same prefix.
func (s *IDSource) Unique(prefix string) string {
	id := prefix + strconv.FormatUint(s.next, 10)
	s.next++
	return id
}
