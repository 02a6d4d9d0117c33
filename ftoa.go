package minifmt

import "math"

// pow10 holds 10^1 through 10^9. The scientific path indexes it at prec-2 to
// scale fractional digits, so maxFloatPrec entries after the guard below is
// always in range. Process-lifetime constant data.
var pow10 = [...]uint64{
	10, 100, 1000, 10000, 100000,
	1000000, 10000000, 100000000, 1000000000,
}

// maxFloatPrec is the most significant digits a float conversion can carry.
const maxFloatPrec = 9

// putFloat appends f with prec significant digits. f must be non-negative;
// the dispatcher emits the sign before calling. A prec of zero or above
// maxFloatPrec means maxFloatPrec.
//
// Normalization walks f into [1, 10) one decimal step at a time, counting the
// exponent E. The walk accumulates floating-point error proportional to |E|,
// so extreme magnitudes lose accuracy in the last digit; digits are truncated,
// not rounded. Fixed notation is chosen when the integer part fits the
// requested significant digits (0 <= E < prec), scientific otherwise.
func (s *scratch) putFloat(f float64, prec int) {
	if math.IsNaN(f) {
		s.putString("NAN")
		return
	}
	if math.IsInf(f, 0) {
		s.putString("INF")
		return
	}

	e := 0
	for f >= 10 {
		f /= 10
		e++
	}
	for f > 0 && f < 1 {
		f *= 10
		e--
	}

	if prec <= 0 || prec > maxFloatPrec {
		prec = maxFloatPrec
	}

	if e >= 0 && e < prec {
		// Fixed: exactly prec digits, the point lands after the digit at
		// position zero, and only if digits follow it.
		for ; prec > 0; prec-- {
			d := int64(f)
			s.putByte('0' + byte(d))
			if e == 0 && prec > 1 {
				s.putByte('.')
			}
			f -= float64(d)
			f *= 10
			e--
		}
		return
	}

	// Scientific: one leading digit, then prec-1 fractional digits. At
	// prec 1 the fractional part is omitted entirely; pow10[prec-2] does
	// not exist there.
	lead := int64(f)
	s.putUint(uint64(lead), 10, 0)
	if prec >= 2 {
		scale := pow10[prec-2]
		s.putByte('.')
		frac := int64((f - float64(lead)) * float64(scale))
		s.putUint(uint64(frac), 10, scale/10)
	}
	s.putByte('E')
	if e >= 0 {
		s.putByte('+')
	} else {
		s.putByte('-')
		e = -e
	}
	s.putUint(uint64(e), 10, 0)
}
