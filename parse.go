package cvss

import (
	"strings"
)

// Prefix is the label that starts every versioned vector.
const prefix = `CVSS:`

// SplitVersion strips the version label off of "s", reporting the version
// and the remaining metrics.
//
// Unlabeled vectors are reported as [Version20].
func splitVersion(s string) (Version, string, error) {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return Version20, s, nil
	}
	label, rest, _ := strings.Cut(rest, "/")
	switch label {
	case "3.0":
		return Version30, rest, nil
	case "3.1":
		return Version31, rest, nil
	}
	return 0, "", &Error{Kind: ErrUnsupportedVersion, Value: label}
}

// EachMetric calls "f" for every "metric:value" token of "s", in order,
// stopping at the first error.
//
// Tokens without a ':' separator are reported as [ErrMalformedToken] before
// "f" sees them. An empty "s" has no tokens.
func eachMetric(ver Version, s string, f func(metric, value string) error) error {
	if s == "" {
		return nil
	}
	for tok := range strings.SplitSeq(s, "/") {
		m, v, ok := strings.Cut(tok, ":")
		if !ok {
			return &Error{Kind: ErrMalformedToken, Version: ver, Value: tok}
		}
		if err := f(m, v); err != nil {
			return err
		}
	}
	return nil
}

// Enum is the constraint for metric value types.
//
// The String method is expected to return the abbreviation used in vectors.
type enum interface {
	~uint8
	String() string
}

// LookupValue finds the value of type "T" in the range [lo, hi) whose
// abbreviation is "s".
//
// The lower bound exists so that the "Not Defined" member (always the zero
// value, when present) can be excluded for base metrics.
func lookupValue[T enum](lo, hi int, s string) (T, bool) {
	for i := lo; i < hi; i++ {
		if v := T(i); v.String() == s {
			return v, true
		}
	}
	return 0, false
}

// ParseValue parses "s" as a value of "T" in the range [lo, hi) into "dst",
// reporting an [ErrUnknownValue] error for the metric "m" on failure.
func parseValue[T enum](dst *T, ver Version, m, s string, lo, hi int) error {
	v, ok := lookupValue[T](lo, hi, s)
	if !ok {
		return &Error{Kind: ErrUnknownValue, Version: ver, Metric: m, Value: s}
	}
	*dst = v
	return nil
}

// Metric is a single metric for the purposes of formatting.
type metric struct {
	Name string
	// Value is the abbreviated value. Unset is the empty string.
	Value string
}

// FormatVector writes the canonical form of a vector: the label (if any),
// then every metric that has a value, in the order provided.
func formatVector(label string, ms []metric) string {
	var b strings.Builder
	b.Grow(64) // Guess at an initial capacity.
	b.WriteString(label)
	for _, m := range ms {
		if m.Value == "" {
			continue
		}
		if b.Len() != 0 {
			b.WriteByte('/')
		}
		b.WriteString(m.Name)
		b.WriteByte(':')
		b.WriteString(m.Value)
	}
	return b.String()
}

// Optional returns the abbreviation for "v", or the empty string if it's the
// "Not Defined" member.
func optional[T enum](v T) string {
	if v == 0 {
		return ""
	}
	return v.String()
}
