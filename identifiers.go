package readable

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
)

// Identifiers maps each unit to the aliases the parser accepts for it.
// Aliases compare case-insensitively.
type Identifiers map[Unit][]string

// Labels maps each unit to the identifier the formatter writes after a value.
type Labels map[Unit]string

// DefaultIdentifiers returns a fresh copy of the built-in alias table.
func DefaultIdentifiers() Identifiers {
	return Identifiers{
		Millisecond: {"milliseconds", "millisecond", "millisecs", "millisec", "ms"},
		Second:      {"seconds", "second", "secs", "sec", "s"},
		Minute:      {"minutes", "minute", "mins", "min", "m"},
		Hour:        {"hours", "hour", "h"},
		Day:         {"days", "day", "d"},
		Week:        {"weeks", "week", "w"},
		Month:       {"months", "month", "mo"},
		Year:        {"years", "year", "y"},
	}
}

// DefaultLabels returns a fresh copy of the built-in output identifiers.
func DefaultLabels() Labels {
	return Labels{
		Millisecond: "ms",
		Second:      "s",
		Minute:      "m",
		Hour:        "h",
		Day:         "d",
		Week:        "w",
		Month:       "mo",
		Year:        "y",
	}
}

// Matcher recognizes a single "<number><alias>" token.
type Matcher struct {
	re      *regexp.Regexp
	aliases map[string]Unit
}

// NewMatcher compiles ids into a matcher. Every declared unit needs at least
// one non-empty alias, and an alias may belong to only one unit.
func NewMatcher(ids Identifiers) (*Matcher, error) {
	if len(ids) == 0 {
		return nil, invalidIdentifiers("no units declared")
	}

	aliases := make(map[string]Unit)
	for _, u := range Units() {
		list, ok := ids[u]
		if !ok {
			continue
		}
		if len(list) == 0 {
			return nil, invalidIdentifiers("unit %s has no aliases", u)
		}
		for _, a := range list {
			if a == "" {
				return nil, invalidIdentifiers("unit %s has an empty alias", u)
			}
			key := strings.ToLower(a)
			if prev, dup := aliases[key]; dup && prev != u {
				return nil, invalidIdentifiers("alias %q is used by both %s and %s", a, prev, u)
			}
			aliases[key] = u
		}
	}
	for u := range ids {
		if !u.Valid() {
			return nil, invalidIdentifiers("unknown unit %d", int(u))
		}
	}

	// Longest alias first, so "mo" and "ms" are tried before "m".
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}

	re, err := regexp.Compile(`(?i)^(\d+(?:\.\d+)?)(` + strings.Join(quoted, "|") + `)$`)
	if err != nil {
		return nil, invalidIdentifiers("%v", err)
	}
	return &Matcher{re: re, aliases: aliases}, nil
}

// Match splits token into its numeric value and unit.
func (m *Matcher) Match(token string) (float64, Unit, bool) {
	sub := m.re.FindStringSubmatch(token)
	if sub == nil {
		return 0, 0, false
	}
	u, ok := m.lookup(sub[2])
	if !ok {
		return 0, 0, false
	}
	v, err := parseNumber(sub[1])
	if err != nil {
		return 0, 0, false
	}
	return v, u, true
}

func (m *Matcher) lookup(alias string) (Unit, bool) {
	if u, ok := m.aliases[strings.ToLower(alias)]; ok {
		return u, true
	}
	// The regexp folds case more broadly than strings.ToLower.
	for k, u := range m.aliases {
		if strings.EqualFold(k, alias) {
			return u, true
		}
	}
	return 0, false
}

var defaultMatcher = mustMatcher(DefaultIdentifiers())

func mustMatcher(ids Identifiers) *Matcher {
	m, err := NewMatcher(ids)
	if err != nil {
		panic(err)
	}
	return m
}
