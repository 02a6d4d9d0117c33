package minifmt

// pad writes text to w padded to width and returns the logical byte count:
// len(text) plus however much fill was needed, whether or not the sink kept
// every byte. Negative or small widths produce no fill. Zero-fill on a
// right-aligned negative number emits the sign first, so width 5 of -7 is
// "-0007", never "00-07". The trailing side of a left-aligned field is
// always spaces, whatever fill was requested.
func pad[S ~string | ~[]byte](w Sink, text S, width int, left bool, fill byte) int {
	gap := width - len(text)
	if gap < 0 {
		gap = 0
	}
	total := len(text) + gap

	switch {
	case left:
		emit(w, text)
		fillRun(w, ' ', gap)
	case fill == '0' && len(text) > 0 && text[0] == '-':
		put(w, '-')
		fillRun(w, '0', gap)
		emit(w, text[1:])
	default:
		fillRun(w, fill, gap)
		emit(w, text)
	}
	return total
}

func emit[S ~string | ~[]byte](w Sink, text S) {
	for i := 0; i < len(text); i++ {
		put(w, text[i])
	}
}

func fillRun(w Sink, c byte, n int) {
	for ; n > 0; n-- {
		put(w, c)
	}
}

// put forwards one byte to the sink. Sink errors are not part of the render
// contract; the logical count advances either way.
func put(w Sink, c byte) {
	_ = w.WriteByte(c)
}
