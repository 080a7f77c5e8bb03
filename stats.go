package seq

// Grows returns the number of buffer replacements the sequence has
// performed: growth reallocations and copy-and-swap assignments.
func (s *Sequence[T]) Grows() uint64 {
	return s.grows
}

// Utilization returns the ratio of live elements to capacity (0.0 to
// 1.0). Returns 0.0 for a sequence with no capacity.
func (s *Sequence[T]) Utilization() float64 {
	c := s.buf.Cap()
	if c == 0 {
		return 0
	}
	return float64(s.length) / float64(c)
}

// Stats returns a snapshot of sequence statistics.
func (s *Sequence[T]) Stats() Stats {
	return Stats{
		Len:         s.length,
		Cap:         s.buf.Cap(),
		Grows:       s.grows,
		Utilization: s.Utilization(),
	}
}

// Stats contains statistical information about a sequence.
type Stats struct {
	Len         int     // Live elements
	Cap         int     // Capacity in element slots
	Grows       uint64  // Buffer replacements performed
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
}
