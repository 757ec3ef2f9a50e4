// Package genmap reduces a genetic map to a minimal set of positions such
// that every dropped position can be recovered, by linear interpolation
// between its surviving neighbors, within a chosen error tolerance.
package genmap

// Entry is one genetic map position.
type Entry struct {
	PhysPos  int
	GenetPos float64

	// GenetPos2 holds the second sex's genetic position. It is only
	// meaningful when the entry belongs to a sex-specific sequence.
	GenetPos2 float64
	sexSpec   bool

	left, right *Entry

	// rightDel holds entries that were deleted from between this entry and
	// its current right neighbor. They are re-validated whenever a further
	// deletion would widen the span they are reconstructed from.
	rightDel []*Entry

	// err is the interpolation error if this entry were removed and
	// reconstructed from its neighbors. errOK is false while the entry has
	// fewer than two neighbors, which marks it as never deletable.
	err   float64
	errOK bool
}

// Sequence is a doubly-linked genetic map ordered by physical position.
type Sequence struct {
	head, tail *Entry
	count      int
	sexSpec    bool
}

// NewSequence returns an empty map sequence. When sexSpecific is set, every
// appended entry must carry a second genetic position.
func NewSequence(sexSpecific bool) *Sequence {
	return &Sequence{sexSpec: sexSpecific}
}

// Append links a new entry at the tail. Entries must be appended in
// increasing physical-position order; this is the caller's contract and is
// not validated here.
func (s *Sequence) Append(e *Entry) {
	e.sexSpec = s.sexSpec
	e.left = s.tail

	if s.tail != nil {
		s.tail.right = e
	}
	s.tail = e

	if s.head == nil {
		s.head = e
	}

	s.count++
}

// Len reports the number of surviving entries.
func (s *Sequence) Len() int {
	return s.count
}

// SexSpecific reports whether the sequence carries two genetic positions per
// entry.
func (s *Sequence) SexSpecific() bool {
	return s.sexSpec
}

// First returns the first surviving entry, or nil for an empty sequence.
func (s *Sequence) First() *Entry {
	return s.head
}

// Next returns the next surviving entry, or nil past the tail.
func (e *Entry) Next() *Entry {
	return e.right
}
