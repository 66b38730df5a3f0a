package cvss

import (
	"errors"
	"strconv"
	"strings"
)

// Error is the error type reported when a vector fails to parse.
//
// Errors from this package can be inspected as ([errors.As]) an *Error, and
// compared ([errors.Is]) against an [ErrorKind] or [ErrMalformedVector].
type Error struct {
	// Kind is the class of problem encountered.
	Kind ErrorKind
	// Version is the vector version, if it was determined before the error.
	Version Version
	// Metric is the metric abbreviation involved, if any.
	Metric string
	// Value is the offending input: a version string, token, or metric value.
	Value string
}

// Assert this implements all the cool features.
var (
	_ error                       = (*Error)(nil)
	_ interface{ Is(error) bool } = (*Error)(nil)
)

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("cvss")
	if e.Version != 0 {
		b.WriteString(" v")
		b.WriteString(e.Version.String())
	}
	b.WriteString(": ")
	switch e.Kind {
	case ErrUnsupportedVersion,
		ErrMalformedToken,
		ErrUnknownMetric,
		ErrDuplicateMetric,
		ErrMissingMetric,
		ErrUnknownValue:
		b.WriteString(string(e.Kind))
	default:
		b.WriteString("???")
	}
	switch e.Kind {
	case ErrUnknownValue:
		b.WriteString(" ")
		b.WriteString(strconv.Quote(e.Value))
		b.WriteString(" for metric ")
		b.WriteString(e.Metric)
	case ErrDuplicateMetric, ErrMissingMetric:
		b.WriteString(": ")
		b.WriteString(e.Metric)
	default:
		b.WriteString(": ")
		b.WriteString(strconv.Quote(e.Value))
	}
	return b.String()
}

// Is enables [errors.Is].
//
// Every Error is an [ErrMalformedVector]; otherwise, the error kind is
// compared.
func (e *Error) Is(target error) bool {
	if target == ErrMalformedVector {
		return true
	}
	return errors.Is(e.Kind, target)
}

// ErrMalformedVector matches every parse error reported by this package.
var ErrMalformedVector = errors.New("malformed vector")

// ErrInvalid is reported when marshaling a Vector that was not constructed by
// a parser.
var errInvalid = errors.New("cvss: invalid vector")

// ErrorKind represents classes of errors to be checked against.
type ErrorKind string

// Defined error kinds.
var (
	ErrUnsupportedVersion = ErrorKind("unsupported version") // prefix missing, unknown, or wrong for the parser
	ErrMalformedToken     = ErrorKind("malformed token")     // segment without a "metric:value" shape
	ErrUnknownMetric      = ErrorKind("unknown metric")      // metric not defined for the version
	ErrUnknownValue       = ErrorKind("unknown value")       // value not legal for the metric
	ErrDuplicateMetric    = ErrorKind("duplicate metric")    // metric present more than once
	ErrMissingMetric      = ErrorKind("missing metric")      // mandatory base metric absent
)

// Error implements error.
func (e ErrorKind) Error() string {
	return string(e)
}
