// Package minifmt renders printf-style format strings into byte sinks
// without allocating.
//
// The engine targets constrained callers: rendering state lives in a fixed
// 32-byte scratch region on the stack, arguments are closed [Arg] values
// built by constructor functions instead of interface boxing, and output
// goes one byte at a time to any [Sink]. The central entry points are
// [Fprintf] (unbounded, counts logical bytes), [Snprintf] (bounded,
// NUL-terminated, returns the would-be length), and [Sprintf] (allocating
// convenience):
//
//	n := minifmt.Fprintf(&buf, "read %d of %d\n", minifmt.Int(got), minifmt.Int(want))
//	minifmt.Snprintf(line[:], "%-8s %05x", minifmt.Str(name), minifmt.Uint(addr))
//
// # Format Grammar
//
// A directive is %[-][0][<width>|*][.[<precision>|*]][l|L]<verb>:
//
//   - "-" left-aligns; trailing fill is always spaces.
//   - "0" zero-fills a right-aligned field; a leading minus sign is emitted
//     before the zeros ("-0007", never "00-07").
//   - width pads the field to at least that many bytes; "*" reads it from
//     the next argument as a signed integer (negative widths pad nothing).
//   - precision caps %s lengths (default cap 32767) and sets significant
//     digits for %f (default 9); ".0" means the default.
//   - "l" or "L" selects the wide (64-bit) integer form.
//
// Verbs: %d and %i (signed decimal), %u (unsigned decimal), %x (hexadecimal),
// %o (octal), %c (one byte, space-filled), %s (string or byte string,
// space-filled; a nil [Bytes] renders "(null)"), %f (floating point,
// significant-digit style: fixed notation while the integer part fits the
// requested digits, scientific otherwise, so "%f" of 1000.4 at precision 3
// is "1.00E+3"). NaN and infinities render NAN, INF, and -INF.
//
// Any other verb byte is emitted literally with normal width and fill, so
// %% writes a percent and malformed directives degrade instead of failing.
//
// # Quirks
//
// Two inherited grammar quirks are part of the wire contract and will not
// change. Hex digits above nine are uppercase for %x and %X alike. And an
// uppercase verb implies the wide form even without l/L: %D, %I, %U, %X, %O
// read 64 bits where their lowercase forms truncate to 32.
//
// # Arguments
//
// Conversions take typed [Arg] values: [Int], [Int64], [Uint], [Uint64],
// [Float], [Str], [Bytes], [Char]. Integer kinds are interchangeable across
// the integer verbs; the bit pattern is reinterpreted two's-complement, so
// "%x" of Int(-1) is "FFFFFFFF". An argument that cannot serve its verb, or
// a directive with no argument left, renders a three-byte "%!"+verb marker
// and rendering continues.
//
// [Check] validates a format string and arguments ahead of time and returns
// wrapped sentinel errors instead of markers.
//
// # Bounded Rendering
//
// [Snprintf] stores at most len(dst)-1 bytes, terminates with NUL whenever
// len(dst) > 0, and returns the logical length of the whole rendering:
//
//	n := minifmt.Snprintf(buf[:4], "%d", minifmt.Int(12345)) // buf = "123\x00", n = 5
//
// A return value >= len(dst) means the output was truncated.
//
// # Concurrency
//
// The package holds no mutable state; concurrent renders are safe as long
// as each call has its own Sink or destination slice.
//
// # Errors
//
// The render functions never fail: sink errors are ignored and problems
// surface in-band. [Check] exports sentinel errors for programmatic
// handling:
//
//   - [ErrUnknownVerb]: verb byte outside the grammar
//   - [ErrIncompleteDirective]: format string ends mid-directive
//   - [ErrMissingArg]: a directive has no argument left to consume
//   - [ErrExtraArgs]: arguments remain after the last directive
//   - [ErrArgType]: an argument's kind cannot serve its verb
package minifmt
