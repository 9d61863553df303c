package readable

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FormatOptions configures a Formatter. Empty fields fall back to the
// defaults: DefaultLabels and a single space.
type FormatOptions struct {
	// Labels replaces the default output identifiers and must name every unit.
	Labels Labels
	// Separator joins the tokens in Format.
	Separator string
}

// Formatter decomposes millisecond counts into readable expressions. It is
// safe for concurrent use.
type Formatter struct {
	labels    Labels
	separator string
}

// NewFormatter builds a formatter from opts.
func NewFormatter(opts FormatOptions) (*Formatter, error) {
	f := &Formatter{labels: DefaultLabels(), separator: " "}
	if opts.Labels != nil {
		labels := make(Labels, len(opts.Labels))
		for _, u := range Units() {
			l, ok := opts.Labels[u]
			if !ok || l == "" {
				return nil, invalidIdentifiers("no label for unit %s", u)
			}
			labels[u] = l
		}
		f.labels = labels
	}
	if opts.Separator != "" {
		f.separator = opts.Separator
	}
	return f, nil
}

var defaultFormatter = &Formatter{labels: DefaultLabels(), separator: " "}

// Format renders ms with the default options.
func Format(ms float64) (string, error) {
	return defaultFormatter.Format(ms)
}

// FormatTokens renders ms as separate tokens with the default labels.
func FormatTokens(ms float64) ([]string, error) {
	return defaultFormatter.Tokens(ms)
}

// FormatValue converts v to a number and renders it with the default options.
func FormatValue(v any) (string, error) {
	return defaultFormatter.FormatValue(v)
}

// Format renders ms as tokens joined by the separator. Zero renders as "".
func (f *Formatter) Format(ms float64) (string, error) {
	tokens, err := f.Tokens(ms)
	if err != nil {
		return "", err
	}
	return strings.Join(tokens, f.separator), nil
}

// FormatValue accepts anything ToNumber accepts.
func (f *Formatter) FormatValue(v any) (string, error) {
	ms, err := ToNumber(v)
	if err != nil {
		return "", err
	}
	return f.Format(ms)
}

// Tokens decomposes ms greedily from years down to seconds. Whatever remains
// below a second, including any fraction, becomes the millisecond token.
func (f *Formatter) Tokens(ms float64) ([]string, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return nil, notANumber(ms)
	}
	if ms < 0 {
		return nil, &Error{Kind: KindNegative, Value: formatNumber(ms)}
	}

	tokens := []string{}
	for u := Year; u > Millisecond; u-- {
		length := float64(u.Milliseconds())
		if ms < length {
			continue
		}
		q := math.Floor(ms / length)
		tokens = append(tokens, formatNumber(q)+f.labels[u])
		ms -= q * length
	}
	if ms != 0 {
		tokens = append(tokens, formatNumber(ms)+f.labels[Millisecond])
	}
	return tokens, nil
}

// ToNumber converts numbers and numeric strings to float64.
func ToNumber(v any) (float64, error) {
	switch x := v.(type) {
	case string:
		if n, ok := numericString(x); ok {
			return n, nil
		}
		return 0, notANumber(v)
	case json.Number:
		return ToNumber(string(x))
	}
	if n, ok := toFloat(v); ok && !math.IsNaN(n) {
		return n, nil
	}
	return 0, notANumber(v)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
