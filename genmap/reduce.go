package genmap

import "math"

// interpolationError computes the error that target would carry if it were
// removed and reconstructed by linear interpolation between left and right.
// In sex-specific mode both genetic positions are interpolated and the larger
// of the two errors is returned.
func interpolationError(left, target, right *Entry) float64 {
	if left.sexSpec != right.sexSpec {
		// Mixing sex-averaged and sex-specific entries corrupts the
		// interpolation silently, so refuse to continue.
		panic("genmap: sequence mixes sex-averaged and sex-specific entries")
	}

	frac := float64(target.PhysPos-left.PhysPos) /
		float64(right.PhysPos-left.PhysPos)
	interp := left.GenetPos + frac*(right.GenetPos-left.GenetPos)

	if !left.sexSpec {
		return math.Abs(target.GenetPos - interp)
	}

	interp2 := left.GenetPos2 + frac*(right.GenetPos2-left.GenetPos2)

	return math.Max(math.Abs(target.GenetPos-interp),
		math.Abs(target.GenetPos2-interp2))
}

// refreshError recomputes the stored error for e against its current
// neighbors. Entries with fewer than two neighbors keep the never-delete
// sentinel.
func (s *Sequence) refreshError(e *Entry) {
	if e.left == nil || e.right == nil {
		return
	}

	e.err = interpolationError(e.left, e, e.right)
	e.errOK = true
}

// deletable reports whether e's error is a local minimum: no greater than
// either neighbor's. A neighbor holding the never-delete sentinel never
// disqualifies e.
func (e *Entry) deletable() bool {
	if e.left != nil && e.left.errOK && e.err > e.left.err {
		return false
	}
	if e.right != nil && e.right.errOK && e.err > e.right.err {
		return false
	}

	return true
}

// Reduce greedily removes entries whose interpolation error stays below
// tolerance, walking the sequence once from left to right with targeted
// revisits. An entry is removed only when its error is a local minimum and
// removing it would not push any previously removed entry's reconstruction
// error to tolerance or beyond. Returns the number of entries removed.
func (s *Sequence) Reduce(tolerance float64) int {
	for e := s.head; e != nil; e = e.right {
		s.refreshError(e)
	}

	removed := 0

	cur := s.head
	var firstSkipped *Entry

	for cur != nil {
		if !cur.errOK || cur.err >= tolerance {
			// Error at or above threshold: keep in map.
			cur = cur.right
			continue
		}

		if !cur.deletable() {
			// A neighbor has lower error; that one is removed first. May
			// become removable afterward, so remember it for a revisit.
			if firstSkipped == nil {
				firstSkipped = cur
			}
			cur = cur.right
			continue
		}

		// Removing cur widens the span that every entry previously deleted
		// between cur.left and cur.right is reconstructed from. If any of
		// those reconstructions would reach tolerance, cur must stay.
		blocked := false
		for _, sets := range [2][]*Entry{cur.left.rightDel, cur.rightDel} {
			for _, prevDel := range sets {
				if interpolationError(cur.left, prevDel, cur.right) >= tolerance {
					blocked = true
					break
				}
			}
			if blocked {
				break
			}
		}
		if blocked {
			cur = cur.right
			continue
		}

		// Splice cur out and fold its closure set into the left neighbor.
		cur.left.right = cur.right
		cur.right.left = cur.left
		s.refreshError(cur.left)
		s.refreshError(cur.right)

		cur.left.rightDel = append(cur.left.rightDel, cur.rightDel...)
		cur.left.rightDel = append(cur.left.rightDel, cur)

		s.count--
		removed++

		switch {
		case firstSkipped != nil:
			// Entries passed over earlier may have become local minima.
			cur = firstSkipped
			firstSkipped = nil
		case cur.left.errOK && cur.left.err < tolerance:
			// The left neighbor's error can drop when cur is removed, so
			// re-examine it right away.
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	return removed
}

// ResidualErrors recomputes, for every removed entry, the reconstruction
// error against its final surviving neighbors.
func (s *Sequence) ResidualErrors() []float64 {
	var errs []float64

	for e := s.head; e != nil; e = e.right {
		for _, del := range e.rightDel {
			errs = append(errs, interpolationError(e, del, e.right))
		}
	}

	return errs
}
