package minifmt

// scratchCap is sized from the worst-case text of every conversion:
//
//	octal uint64            22 digits
//	signed decimal int64    1 sign + 20 digits
//	scientific float        1 sign + 1 digit + 1 point + 8 fraction
//	                        + 1 'E' + 1 sign + 3 exponent = 16
//
// Digit generation borrows the unused tail of the buffer as its backward-fill
// region. The longest generation run is 22 bytes and starts while the forward
// span holds at most 1 byte (the sign); the longest forward span before a
// generation run is 13 bytes ("-9.99999999E-") followed by at most 3 exponent
// digits. With capacity 32 the two regions can never meet.
const scratchCap = 32

// scratch is the fixed, stack-resident region a single directive renders
// into. buf[:n] is the valid span. Writes are checked: a byte that does not
// fit is dropped rather than written out of bounds, though the capacity
// derivation above means that cannot happen for any supported conversion.
type scratch struct {
	buf [scratchCap]byte
	n   int
}

func (s *scratch) putByte(c byte) {
	if s.n < len(s.buf) {
		s.buf[s.n] = c
		s.n++
	}
}

func (s *scratch) putString(text string) {
	for i := 0; i < len(text); i++ {
		s.putByte(text[i])
	}
}

// mismatch records an argument that cannot serve the verb as a three-byte
// in-band marker, e.g. "%!f". Rendering continues normally around it.
func (s *scratch) mismatch(verb byte) {
	s.putByte('%')
	s.putByte('!')
	s.putByte(verb)
}

func (s *scratch) bytes() []byte { return s.buf[:s.n] }
