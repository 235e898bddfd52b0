package streams

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Stream format templates have the four-part shape prefix{elem}(sep)suffix.
// The elem part selects the per-element rendering: {} for the default
// formatting, {!r} for the Go-syntax representation, or {%<verb>} for an
// explicit fmt verb.
const (
	DefaultFormat     = "<{}(, )>"
	DefaultReprFormat = "<{!r}(, )>"
)

var formatPattern = regexp.MustCompile(`(?s)^(.*)(\{[^\\{}]*\})\((.*)\)(.*)$`)

func parseFormat(op string, spec string) (pre, verb, sep, suf string, err error) {
	m := formatPattern.FindStringSubmatch(spec)
	if m == nil {
		return "", "", "", "", newFormatError(op, spec)
	}
	pre, sep, suf = m[1], m[3], m[4]
	switch inner := strings.Trim(m[2], "{}"); {
	case inner == "":
		verb = "%v"
	case inner == "!r":
		verb = "%#v"
	case strings.HasPrefix(inner, "%"):
		verb = inner
	default:
		return "", "", "", "", newFormatError(op, spec)
	}
	return pre, verb, sep, suf, nil
}

// Format consumes the stream and renders it with the given template
// (DefaultFormat if omitted).
func (s *Stream[T]) Format(spec ...string) (string, error) {
	if err := s.requireBounded("Format"); err != nil {
		return "", err
	}
	tmpl := DefaultFormat
	if len(spec) > 0 {
		tmpl = spec[0]
	}
	pre, verb, sep, suf, err := parseFormat("Format", tmpl)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(pre)
	first := true
	if err := s.each(func(v T) error {
		if !first {
			b.WriteString(sep)
		}
		first = false
		fmt.Fprintf(&b, verb, v)
		return nil
	}); err != nil {
		return "", err
	}
	b.WriteString(suf)
	return b.String(), nil
}

// Fprint consumes the stream and writes its rendering to w as a single
// line-buffered write.
func (s *Stream[T]) Fprint(w io.Writer, spec ...string) error {
	out, err := s.Format(spec...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// Print consumes the stream and writes its rendering to standard output.
func (s *Stream[T]) Print(spec ...string) error {
	return s.Fprint(os.Stdout, spec...)
}
