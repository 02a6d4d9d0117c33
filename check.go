package minifmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling. Only [Check] returns
// them; the render functions stay lenient by contract.
var (
	ErrUnknownVerb         = errors.New("unknown verb")
	ErrIncompleteDirective = errors.New("incomplete directive")
	ErrMissingArg          = errors.New("missing argument")
	ErrExtraArgs           = errors.New("extra arguments")
	ErrArgType             = errors.New("argument type mismatch")
)

// Check validates a format string against its arguments without rendering
// anything. It reports the first problem a render would paper over: a verb
// outside the grammar, a format string that ends mid-directive, arguments of
// the wrong kind (including star widths and precisions, which must be
// integers), too few arguments, or too many. %% passes as the literal form.
//
// Rendering never calls Check; a mismatched render still produces output,
// with in-band %!v markers. Check is for the caller that would rather fail
// than emit markers.
func Check(format string, args ...Arg) error {
	pos := 0
	for i := 0; i < len(format); {
		if format[i] != '%' {
			i++
			continue
		}
		start := i
		i++
		d, rest, ok := parseDirective(format, i)
		if !ok {
			return fmt.Errorf("%w: %q", ErrIncompleteDirective, format[start:])
		}
		i = rest
		dir := format[start:i]

		if d.starWidth {
			if err := checkArg(args, &pos, dir, "width", acceptsInt); err != nil {
				return err
			}
		}
		if d.starPrec {
			if err := checkArg(args, &pos, dir, "precision", acceptsInt); err != nil {
				return err
			}
		}

		switch d.verb {
		case '%':
			// Literal percent; consumes nothing.
		case 'c', 'd', 'D', 'i', 'I', 'u', 'U', 'x', 'X', 'o', 'O':
			if err := checkArg(args, &pos, dir, "value", acceptsInt); err != nil {
				return err
			}
		case 's':
			if err := checkArg(args, &pos, dir, "value", acceptsString); err != nil {
				return err
			}
		case 'f':
			if err := checkArg(args, &pos, dir, "value", acceptsFloat); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownVerb, dir)
		}
	}
	if pos < len(args) {
		return fmt.Errorf("%w: %d given, %d consumed", ErrExtraArgs, len(args), pos)
	}
	return nil
}

func checkArg(args []Arg, pos *int, dir, role string, accepts func(Arg) bool) error {
	n := *pos
	*pos = n + 1
	if n >= len(args) {
		return fmt.Errorf("%w: %s of %q needs argument %d, have %d", ErrMissingArg, role, dir, n+1, len(args))
	}
	if !accepts(args[n]) {
		return fmt.Errorf("%w: argument %d cannot serve %s of %q", ErrArgType, n+1, role, dir)
	}
	return nil
}

func acceptsInt(a Arg) bool {
	_, ok := a.intVal(true)
	return ok
}

func acceptsString(a Arg) bool {
	return a.kind == argString || a.kind == argBytes
}

func acceptsFloat(a Arg) bool {
	_, ok := a.floatVal()
	return ok
}
