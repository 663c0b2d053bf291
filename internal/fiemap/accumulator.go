package fiemap

// accumulator owns the extents discovered for one file across repeated
// chunked queries. It is the only long-lived holder of extent data during a
// retrieval; the per-chunk buffers are transient.
type accumulator struct {
	extents []Extent
	count   int
}

// append copies the chunk's extents after the ones already held, growing
// the backing array as needed. Previously accumulated extents survive every
// growth; order is preserved.
func (a *accumulator) append(chunk []Extent) {
	need := a.count + len(chunk)
	if need > cap(a.extents) {
		newCap := cap(a.extents) * 2
		if newCap < need {
			newCap = need
		}
		grown := make([]Extent, a.count, newCap)
		copy(grown, a.extents[:a.count])
		a.extents = grown
	}
	a.extents = append(a.extents[:a.count], chunk...)
	a.count = need
}

// last returns the most recently appended extent. Callers must check
// count beforehand.
func (a *accumulator) last() Extent {
	return a.extents[a.count-1]
}

// finalize hands the accumulated sequence to the caller. The accumulator
// must not be used afterwards.
func (a *accumulator) finalize() []Extent {
	out := a.extents[:a.count]
	a.extents = nil
	a.count = 0
	return out
}

// release drops partial state on failure paths so no retrieval ever leaks
// a half-built sequence.
func (a *accumulator) release() {
	a.extents = nil
	a.count = 0
}
