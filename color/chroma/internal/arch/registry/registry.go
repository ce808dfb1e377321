// Package registry holds the chromaticity normalisation kernels available
// to package chroma, keyed by the SIMD level they require.
package registry

import (
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// NormalizeFn converts interleaved 3-channel tristimulus values in src into
// interleaved 2-channel chromaticity in dst. len(dst)/2 == len(src)/3.
// Pixels whose channel sum is zero map to (0, 0).
type NormalizeFn func(dst, src []float64)

// OpEntry is one registered kernel implementation.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int
	Normalize NormalizeFn
}

// OpRegistry stores kernels ordered by descending priority.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds entry. Entries of equal priority keep registration order.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].Priority > r.entries[j].Priority
	})
}

// Lookup returns the highest-priority kernel that features can run, or nil.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if runnable(features, r.entries[i].SIMDLevel) {
			e := r.entries[i]
			return &e
		}
	}
	return nil
}

// runnable reports whether a kernel built for level can run. Only the
// portable kernel is registered today; SSE2 and AVX2 are accepted so vector
// kernels can be added without touching dispatch.
func runnable(features cpu.Features, level cpu.SIMDLevel) bool {
	switch level {
	case cpu.SIMDNone:
		return true
	case cpu.SIMDSSE2:
		return !features.ForceGeneric && features.HasSSE2
	case cpu.SIMDAVX2:
		return !features.ForceGeneric && features.HasAVX2
	}
	return false
}

// ListEntries returns the registered kernels in lookup order.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]OpEntry(nil), r.entries...)
}
