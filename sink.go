package minifmt

import "io"

// Sink is the byte-at-a-time destination rendered output is written to. Its
// method set is [io.ByteWriter], so *bytes.Buffer, *bufio.Writer, and
// *strings.Builder all satisfy it without adapters. The engine treats writes
// as best effort: a Sink may drop bytes (and report whatever error it likes),
// and the logical count the render functions return is unaffected.
type Sink interface {
	WriteByte(c byte) error
}

// Discard is a Sink that drops every byte. Rendering to it measures the
// logical length of an output without storing it.
var Discard Sink = discard{}

type discard struct{}

func (discard) WriteByte(byte) error { return nil }

var _ io.ByteWriter = Discard

// memSink stores bytes into a fixed prefix of dst and silently drops the
// rest. It backs [Snprintf]: dst excludes the byte reserved for the
// terminating NUL, and n ends up as the count actually stored.
type memSink struct {
	dst []byte
	n   int
}

func (m *memSink) WriteByte(c byte) error {
	if m.n < len(m.dst) {
		m.dst[m.n] = c
		m.n++
	}
	return nil
}
