package minifmt

import "bytes"

// maxStringLen caps how many bytes a %s conversion renders when no precision
// is given.
const maxStringLen = 32767

type argKind uint8

const (
	argNone argKind = iota
	argInt
	argUint
	argFloat
	argString
	argBytes
	argChar
)

// Arg is one typed argument for a conversion. Build Args with the
// constructor functions; the zero Arg matches no verb and renders the
// mismatch marker. Integer Args are interchangeable across the integer verbs
// (the 64-bit pattern is reinterpreted two's-complement, and narrow verbs
// truncate to 32 bits), while %s takes only [Str] or [Bytes] and %f only
// [Float].
type Arg struct {
	kind argKind
	num  uint64
	flt  float64
	str  string
	buf  []byte
}

// Int makes a signed integer argument.
func Int(v int) Arg { return Arg{kind: argInt, num: uint64(int64(v))} }

// Int64 makes a signed 64-bit integer argument.
func Int64(v int64) Arg { return Arg{kind: argInt, num: uint64(v)} }

// Uint makes an unsigned integer argument.
func Uint(v uint) Arg { return Arg{kind: argUint, num: uint64(v)} }

// Uint64 makes an unsigned 64-bit integer argument.
func Uint64(v uint64) Arg { return Arg{kind: argUint, num: v} }

// Float makes a floating-point argument for %f.
func Float(v float64) Arg { return Arg{kind: argFloat, flt: v} }

// Str makes a string argument for %s.
func Str(v string) Arg { return Arg{kind: argString, str: v} }

// Bytes makes a byte-string argument for %s. A nil slice renders the literal
// text "(null)".
func Bytes(v []byte) Arg { return Arg{kind: argBytes, buf: v} }

// Char makes a single-byte argument for %c.
func Char(v byte) Arg { return Arg{kind: argChar, num: uint64(v)} }

// intVal reads the argument as a signed integer. Narrow conversions truncate
// to 32 bits first.
func (a Arg) intVal(wide bool) (int64, bool) {
	switch a.kind {
	case argInt, argUint, argChar:
		v := int64(a.num)
		if !wide {
			v = int64(int32(v))
		}
		return v, true
	}
	return 0, false
}

// uintVal reads the argument as an unsigned integer. Narrow conversions
// truncate to 32 bits first.
func (a Arg) uintVal(wide bool) (uint64, bool) {
	switch a.kind {
	case argInt, argUint, argChar:
		if !wide {
			return uint64(uint32(a.num)), true
		}
		return a.num, true
	}
	return 0, false
}

func (a Arg) charVal() (byte, bool) {
	switch a.kind {
	case argInt, argUint, argChar:
		return byte(a.num), true
	}
	return 0, false
}

func (a Arg) floatVal() (float64, bool) {
	if a.kind == argFloat {
		return a.flt, true
	}
	return 0, false
}

// argReader hands out arguments in order. Reading past the end yields the
// zero Arg, which no verb accepts, so exhausted arguments surface as
// mismatch markers rather than anything undefined.
type argReader struct {
	args []Arg
	pos  int
}

func (r *argReader) next() Arg {
	if r.pos >= len(r.args) {
		return Arg{}
	}
	a := r.args[r.pos]
	r.pos++
	return a
}

// Fprintf renders format into w and returns the logical byte count: the
// length the output would have, whether or not w kept every byte. Sink
// errors are ignored by contract; use [Check] beforehand when a format
// string needs validating. The render path performs no allocation.
func Fprintf(w Sink, format string, args ...Arg) int {
	ar := argReader{args: args}
	n := 0
	for i := 0; i < len(format); {
		c := format[i]
		i++
		if c != '%' {
			put(w, c)
			n++
			continue
		}
		d, rest, ok := parseDirective(format, i)
		if !ok {
			break
		}
		i = rest
		n += emitDirective(w, d, &ar)
	}
	return n
}

// Snprintf renders format into dst, storing at most len(dst)-1 bytes and
// writing a terminating NUL at the last stored index when len(dst) > 0. The
// return value is the logical length of the full rendering, which may exceed
// what was stored. A return >= len(dst) therefore means truncation.
func Snprintf(dst []byte, format string, args ...Arg) int {
	var m memSink
	if len(dst) > 0 {
		m.dst = dst[:len(dst)-1]
	}
	n := Fprintf(&m, format, args...)
	if len(dst) > 0 {
		dst[m.n] = 0
	}
	return n
}

// Sprintf renders format and returns it as a string. Unlike [Fprintf] and
// [Snprintf] it allocates; it is the convenience form for callers that are
// not memory constrained.
func Sprintf(format string, args ...Arg) string {
	var buf bytes.Buffer
	Fprintf(&buf, format, args...)
	return buf.String()
}

// emitDirective resolves star specifiers, converts the argument into scratch
// (or borrows the argument's own bytes for %s), and hands the text to the
// composer. It returns the directive's logical byte count.
func emitDirective(w Sink, d directive, ar *argReader) int {
	if d.starWidth {
		v, _ := ar.next().intVal(true)
		d.width = int(v)
	}
	if d.starPrec {
		v, _ := ar.next().intVal(true)
		if v > 0 {
			d.prec = int(v)
		}
	}

	fill := byte(' ')
	if d.zeroFill {
		fill = '0'
	}

	var sc scratch
	switch d.verb {
	case 'c':
		fill = ' '
		if c, ok := ar.next().charVal(); ok {
			sc.putByte(c)
		} else {
			sc.mismatch(d.verb)
		}

	case 's':
		fill = ' '
		a := ar.next()
		switch a.kind {
		case argString:
			return pad(w, capLen(a.str, d.prec), d.width, d.leftAlign, fill)
		case argBytes:
			if a.buf == nil {
				return pad(w, "(null)", d.width, d.leftAlign, fill)
			}
			return pad(w, capLen(a.buf, d.prec), d.width, d.leftAlign, fill)
		default:
			sc.mismatch(d.verb)
		}

	case 'd', 'D', 'i', 'I':
		if v, ok := ar.next().intVal(d.wide); ok {
			mag := uint64(v)
			if v < 0 {
				sc.putByte('-')
				mag = -mag
			}
			sc.putUint(mag, 10, 0)
		} else {
			sc.mismatch(d.verb)
		}

	case 'u', 'U', 'x', 'X', 'o', 'O':
		radix := uint64(10)
		switch d.verb {
		case 'x', 'X':
			radix = 16
		case 'o', 'O':
			radix = 8
		}
		if v, ok := ar.next().uintVal(d.wide); ok {
			sc.putUint(v, radix, 0)
		} else {
			sc.mismatch(d.verb)
		}

	case 'f':
		if f, ok := ar.next().floatVal(); ok {
			if f < 0 {
				sc.putByte('-')
				f = -f
			}
			sc.putFloat(f, d.prec)
		} else {
			sc.mismatch(d.verb)
		}

	default:
		// Unknown verbs render themselves, width and fill included. This is
		// also how %% produces a literal percent.
		sc.putByte(d.verb)
	}

	return pad(w, sc.bytes(), d.width, d.leftAlign, fill)
}

// capLen truncates s to the directive's precision, or to maxStringLen when
// no precision was given.
func capLen[S ~string | ~[]byte](s S, prec int) S {
	limit := prec
	if limit == 0 {
		limit = maxStringLen
	}
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
