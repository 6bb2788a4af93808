package css

import (
	"io"
	"strings"
)

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string
	Value    string
}

// String returns the declaration with its terminating semicolon.
func (d Declaration) String() string {
	return d.Property + ": " + d.Value + ";"
}

// Rule is a selector with declarations kept in source order. Order matters
// for generated stylesheets which are compared verbatim.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Add appends declaration to the rule.
func (r *Rule) Add(property, value string) {
	r.Declarations = append(r.Declarations, Declaration{Property: property, Value: value})
}

// IsEmpty returns true if rule has nothing to declare, such rule must never
// be emitted.
func (r Rule) IsEmpty() bool {
	return len(r.Declarations) == 0
}

// GetProperty returns the value of the last declaration of property.
func (r Rule) GetProperty(name string) (string, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == name {
			return r.Declarations[i].Value, true
		}
	}
	return "", false
}

// String formats the rule on a single line: "SELECTOR { decl decl }".
// Empty rule produces empty string.
func (r Rule) String() string {
	if r.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(r.Selector)
	sb.WriteString(" {")
	for _, d := range r.Declarations {
		sb.WriteByte(' ')
		sb.WriteString(d.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// Stylesheet is a parsed list of rules.
type Stylesheet struct {
	Rules    []Rule   // Rules in source order
	Warnings []string // Warnings for unsupported or malformed input
}

// RulesBySelector returns all rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, r := range s.Rules {
		if r.Selector == selector {
			matches = append(matches, r)
		}
	}
	return matches
}

// WriteTo writes non empty rules to w one per line, implementing io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, r := range s.Rules {
		if r.IsEmpty() {
			continue
		}
		n, err := io.WriteString(w, r.String()+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}
