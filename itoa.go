package minifmt

// putUint appends mag rendered in the given radix. Digits are generated
// least-significant first into the tail of the buffer, then copied forward
// onto the span. Generation continues until both mag and minMag are
// exhausted, so a caller can force a minimum digit count: the float path
// passes a power of ten as minMag to keep leading zeros in fractional parts.
// minMag zero means exactly the natural digits (at least one). Digits above
// nine are uppercase for every radix, whichever case the verb was written in.
func (s *scratch) putUint(mag uint64, radix uint64, minMag uint64) {
	q := len(s.buf)
	for {
		if q == s.n {
			break // tail region exhausted; unreachable for supported conversions, see scratchCap
		}
		d := byte(mag % radix)
		if d > 9 {
			d += 'A' - 10
		} else {
			d += '0'
		}
		q--
		s.buf[q] = d
		mag /= radix
		minMag /= radix
		if mag == 0 && minMag == 0 {
			break
		}
	}
	s.n += copy(s.buf[s.n:], s.buf[q:])
}
