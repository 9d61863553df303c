package readable

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ParseOptions configures a Parser. The zero value uses whitespace as the
// separator and the default identifiers.
type ParseOptions struct {
	// Separator is a literal string splitting the input into tokens.
	Separator string
	// SeparatorPattern splits the input by a regular expression. It takes
	// precedence over Separator.
	SeparatorPattern *regexp.Regexp
	// Identifiers replaces the default alias table as a whole.
	Identifiers Identifiers
}

// Parser converts duration expressions into milliseconds. It is safe for
// concurrent use.
type Parser struct {
	matcher *Matcher
	split   func(string) []string
}

// NewParser builds a parser from opts.
func NewParser(opts ParseOptions) (*Parser, error) {
	p := &Parser{matcher: defaultMatcher, split: strings.Fields}
	if opts.Identifiers != nil {
		m, err := NewMatcher(opts.Identifiers)
		if err != nil {
			return nil, err
		}
		p.matcher = m
	}
	switch {
	case opts.SeparatorPattern != nil:
		re := opts.SeparatorPattern
		p.split = func(s string) []string { return re.Split(s, -1) }
	case opts.Separator != "":
		sep := opts.Separator
		p.split = func(s string) []string { return strings.Split(s, sep) }
	}
	return p, nil
}

var defaultParser = &Parser{matcher: defaultMatcher, split: strings.Fields}

// Parse converts s to milliseconds using the default options.
func Parse(s string) (float64, error) {
	return defaultParser.Parse(s)
}

// ParseTokens sums tokens using the default identifiers.
func ParseTokens(tokens []string) (float64, error) {
	return defaultParser.ParseTokens(tokens)
}

// ParseValue parses a dynamically typed value using the default options.
func ParseValue(v any) (float64, error) {
	return defaultParser.ParseValue(v)
}

// Parse converts s to milliseconds. A string that is already a number is
// returned as is; otherwise every token must be "<number><identifier>" and
// the results are summed.
func (p *Parser) Parse(s string) (float64, error) {
	if v, ok := numericString(s); ok {
		return v, nil
	}
	var tokens []string
	for _, t := range p.split(s) {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	return p.sum(tokens)
}

// ParseTokens sums tokens, each of which must be a single
// "<number><identifier>" pair. An empty slice sums to zero.
func (p *Parser) ParseTokens(tokens []string) (float64, error) {
	return p.sum(tokens)
}

// ParseValue accepts a number, a string, a []string or a []any holding only
// strings, as produced by decoding JSON or YAML.
func (p *Parser) ParseValue(v any) (float64, error) {
	switch x := v.(type) {
	case string:
		return p.Parse(x)
	case []string:
		return p.ParseTokens(x)
	case []any:
		tokens := make([]string, len(x))
		for i, e := range x {
			s, ok := e.(string)
			if !ok {
				return 0, invalidType(v)
			}
			tokens[i] = s
		}
		return p.ParseTokens(tokens)
	case json.Number:
		return p.Parse(string(x))
	}
	if f, ok := toFloat(v); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f, nil
	}
	return 0, invalidType(v)
}

func (p *Parser) sum(tokens []string) (float64, error) {
	var total float64
	for _, t := range tokens {
		n, u, ok := p.matcher.Match(t)
		if !ok {
			return 0, invalidPattern(t)
		}
		total += n * float64(u.Milliseconds())
	}
	return total, nil
}

// numericString reports whether s, ignoring surrounding whitespace, is a
// plain finite number. Blank strings count as zero.
func numericString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := parseNumber(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case Milliseconds:
		return float64(x), true
	}
	return 0, false
}
