package importmap

import "sync/atomic"

// Metrics tracks resolution counters using lock-free atomic operations.
// Counters never influence resolution results; they exist so embedders
// can observe how a map is being used.
type Metrics struct {
	resolves     atomic.Uint64
	scopedHits   atomic.Uint64
	globalHits   atomic.Uint64
	passThroughs atomic.Uint64
	unresolved   atomic.Uint64
}

// MetricsSnapshot is a point-in-time copy of the resolution counters.
type MetricsSnapshot struct {
	// Resolves is the total number of Resolve calls that ran.
	Resolves uint64
	// ScopedHits counts resolutions answered by a scope entry.
	ScopedHits uint64
	// GlobalHits counts resolutions answered by a top-level import.
	GlobalHits uint64
	// PassThroughs counts specifiers returned unchanged.
	PassThroughs uint64
	// Unresolved counts bare specifiers with no mapping.
	Unresolved uint64
}

// Snapshot returns a consistent-enough copy of the counters. Individual
// loads are atomic; the snapshot as a whole is not taken under a lock.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Resolves:     m.resolves.Load(),
		ScopedHits:   m.scopedHits.Load(),
		GlobalHits:   m.globalHits.Load(),
		PassThroughs: m.passThroughs.Load(),
		Unresolved:   m.unresolved.Load(),
	}
}
