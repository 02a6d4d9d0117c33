package minifmt

// directive is one parsed %… conversion request. It lives for the duration
// of a single dispatch and is never stored.
type directive struct {
	verb      byte
	width     int
	prec      int // 0 means unspecified; ".0" and no precision are equivalent
	leftAlign bool
	zeroFill  bool
	wide      bool
	starWidth bool // width comes from the next argument
	starPrec  bool // precision comes from the next argument
}

// parseDirective scans one directive starting at format[i], the byte after
// the '%'. It returns the directive and the index of the first byte after it.
// ok is false when the format string ends before a conversion letter; the
// caller drops the fragment. The grammar, in one left-to-right pass:
//
//	%[-][0][<width>|*][.[<precision>|*]][l|L]<verb>
//
// Two quirks of the grammar are load-bearing and deliberate. A trailing l or
// L with nothing after it is its own verb and falls through the dispatcher's
// literal path. And when no l/L is given, an uppercase verb letter implies a
// wide integer conversion: %D, %U, %X, %O, %I read 64-bit arguments where
// their lowercase forms truncate to 32 bits.
func parseDirective(format string, i int) (d directive, next int, ok bool) {
	if i < len(format) && format[i] == '-' {
		d.leftAlign = true
		i++
	}
	if i < len(format) && format[i] == '0' {
		d.zeroFill = true
		i++
	}

	if i < len(format) && format[i] == '*' {
		d.starWidth = true
		i++
	} else {
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			d.width = d.width*10 + int(format[i]-'0')
			i++
		}
	}

	if i < len(format) && format[i] == '.' {
		i++
		if i < len(format) && format[i] == '*' {
			d.starPrec = true
			i++
		} else {
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				d.prec = d.prec*10 + int(format[i]-'0')
				i++
			}
		}
	}

	if i < len(format) && (format[i] == 'l' || format[i] == 'L') {
		d.wide = true
		i++
		if i == len(format) {
			d.verb = format[i-1]
			return d, i, true
		}
	}

	if i >= len(format) {
		return d, i, false
	}
	d.verb = format[i]
	i++
	if !d.wide {
		d.wide = d.verb >= 'A' && d.verb <= 'Z'
	}
	return d, i, true
}
