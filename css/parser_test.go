package css_test

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"justify/css"
)

func TestParser_SingleRule(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`.has-text-align-justify { text-align: justify; text-justify: inter-word; }`))

	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
	rule := sheet.Rules[0]
	if rule.Selector != ".has-text-align-justify" {
		t.Errorf("selector = %q", rule.Selector)
	}
	if len(rule.Declarations) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(rule.Declarations))
	}
	if rule.Declarations[0].Property != "text-align" || rule.Declarations[0].Value != "justify" {
		t.Errorf("first declaration = %+v", rule.Declarations[0])
	}
	if rule.Declarations[1].Property != "text-justify" || rule.Declarations[1].Value != "inter-word" {
		t.Errorf("second declaration = %+v", rule.Declarations[1])
	}
	if len(sheet.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", sheet.Warnings)
	}
}

func TestParser_CompoundSelectorAndVendorPrefix(t *testing.T) {
	p := css.NewParser(nil)

	sheet := p.Parse([]byte(`.wp-block-paragraph.has-text-align-justify { hyphens: auto; -webkit-hyphens: auto; word-spacing: -0.01em; }`))

	rules := sheet.RulesBySelector(".wp-block-paragraph.has-text-align-justify")
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d (%v)", len(rules), sheet.Rules)
	}
	if v, ok := rules[0].GetProperty("-webkit-hyphens"); !ok || v != "auto" {
		t.Errorf("-webkit-hyphens = %q, %v", v, ok)
	}
	if v, ok := rules[0].GetProperty("word-spacing"); !ok || v != "-0.01em" {
		t.Errorf("word-spacing = %q, %v", v, ok)
	}
}

func TestParser_GroupedSelectors(t *testing.T) {
	p := css.NewParser(nil)

	sheet := p.Parse([]byte(`p, .note { text-align: justify; }`))

	if len(sheet.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(sheet.Rules))
	}
	if sheet.Rules[0].Selector != "p" || sheet.Rules[1].Selector != ".note" {
		t.Errorf("selectors = %q, %q", sheet.Rules[0].Selector, sheet.Rules[1].Selector)
	}
	// declarations must not be shared between grouped rules
	sheet.Rules[0].Declarations[0].Value = "left"
	if sheet.Rules[1].Declarations[0].Value != "justify" {
		t.Error("grouped rules share declarations")
	}
}

func TestParser_SkipsAtRules(t *testing.T) {
	p := css.NewParser(nil)

	input := `@import url("base.css");
@media print { p { text-align: left; } }
p { text-align: justify; }`
	sheet := p.Parse([]byte(input))

	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
	if len(sheet.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %v", sheet.Warnings)
	}
	for _, w := range sheet.Warnings {
		if !strings.HasPrefix(w, "unsupported at-rule") {
			t.Errorf("unexpected warning %q", w)
		}
	}
}

func TestParser_Empty(t *testing.T) {
	p := css.NewParser(nil)

	sheet := p.Parse(nil)
	if len(sheet.Rules) != 0 || len(sheet.Warnings) != 0 {
		t.Errorf("expected empty stylesheet, got %+v", sheet)
	}
	if sheet.String() != "" {
		t.Errorf("String() = %q", sheet.String())
	}
}

func TestRule_String(t *testing.T) {
	var r css.Rule
	r.Selector = ".x"
	if r.String() != "" {
		t.Errorf("empty rule String() = %q", r.String())
	}
	r.Add("text-align", "justify")
	r.Add("hyphens", "auto")
	if got, want := r.String(), ".x { text-align: justify; hyphens: auto; }"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStylesheet_RoundTrip(t *testing.T) {
	p := css.NewParser(nil)

	in := ".a { text-align: justify; }\n.b { word-spacing: 2px; }\n"
	sheet := p.Parse([]byte(in))
	if got := sheet.String(); got != in {
		t.Errorf("String() = %q, want %q", got, in)
	}
}

func TestIsDimension(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0.02em", true},
		{"-0.01em", true},
		{"1.5px", true},
		{".5rem", true},
		{"3px", true},
		{"0", false},
		{"em", false},
		{"1.5", false},
		{"1.5 px", false},
		{"1px;", false},
		{"1px}", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := css.IsDimension(tt.in); got != tt.want {
				t.Errorf("IsDimension(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
