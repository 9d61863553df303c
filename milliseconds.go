package readable

import (
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Milliseconds is a millisecond count that decodes from readable expressions
// in text, JSON and YAML, so config files may say `timeout: 1h 30m`.
//
// JSON accepts a number, a string or an array of token strings. YAML accepts
// a scalar or a sequence of tokens.
type Milliseconds float64

// Duration converts m to a time.Duration.
func (m Milliseconds) Duration() time.Duration {
	return ToDuration(float64(m))
}

// String renders m with the default labels, or as a bare number when it
// cannot be decomposed (zero or negative).
func (m Milliseconds) String() string {
	s, err := Format(float64(m))
	if err != nil || s == "" {
		return formatNumber(float64(m))
	}
	return s
}

func (m Milliseconds) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Milliseconds) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = Milliseconds(v)
	return nil
}

func (m Milliseconds) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(m))
}

func (m *Milliseconds) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*m = 0
		return nil
	}
	v, err := ParseValue(raw)
	if err != nil {
		return err
	}
	*m = Milliseconds(v)
	return nil
}

func (m Milliseconds) MarshalYAML() (any, error) {
	if m == 0 {
		return 0, nil
	}
	return m.String(), nil
}

func (m *Milliseconds) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*m = 0
		return nil
	}
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	v, err := ParseValue(raw)
	if err != nil {
		return err
	}
	*m = Milliseconds(v)
	return nil
}
