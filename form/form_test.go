package form

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"justify/common"
	"justify/typography"
)

func render(t *testing.T, p Page) *html.Node {
	t.Helper()

	var buf bytes.Buffer
	if err := Render(&buf, p); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return doc
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		if v, ok := attr(n, "id"); ok && v == id {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func selectedOption(t *testing.T, doc *html.Node, id string) string {
	t.Helper()

	sel := findByID(doc, id)
	if sel == nil {
		t.Fatalf("select %q not found", id)
	}
	var selected []string
	for c := sel.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "option" {
			continue
		}
		if _, ok := attr(c, "selected"); ok {
			v, _ := attr(c, "value")
			selected = append(selected, v)
		}
	}
	if len(selected) != 1 {
		t.Fatalf("select %q has %d selected options, want 1", id, len(selected))
	}
	return selected[0]
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func TestRender_Preselection(t *testing.T) {
	tests := []struct {
		name       string
		raw        typography.Raw
		mode       string
		spacing    string
		unit       string
		hyphens    bool
		showCustom bool
	}{
		{
			name:    "defaults",
			raw:     typography.Raw{},
			mode:    "standard",
			spacing: "0",
			unit:    "em",
		},
		{
			name: "advanced with preset",
			raw: typography.Raw{
				typography.KeyMode:        "advanced",
				typography.KeyHyphens:     "1",
				typography.KeyWordSpacing: "-0.01em",
			},
			mode:    "advanced",
			spacing: "-0.01em",
			unit:    "em",
			hyphens: true,
		},
		{
			name: "custom shows inputs",
			raw: typography.Raw{
				typography.KeyMode:        "advanced",
				typography.KeyWordSpacing: "custom",
				typography.KeyCustomValue: "abc",
				typography.KeyCustomUnit:  "rem",
			},
			mode:       "advanced",
			spacing:    "custom",
			unit:       "rem",
			showCustom: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := render(t, Page{Settings: typography.Resolve(tt.raw), Nonce: "n"})

			if got := selectedOption(t, doc, typography.KeyMode); got != tt.mode {
				t.Errorf("mode = %q, want %q", got, tt.mode)
			}
			if got := selectedOption(t, doc, typography.KeyWordSpacing); got != tt.spacing {
				t.Errorf("word spacing = %q, want %q", got, tt.spacing)
			}
			if got := selectedOption(t, doc, typography.KeyCustomUnit); got != tt.unit {
				t.Errorf("unit = %q, want %q", got, tt.unit)
			}

			box := findByID(doc, typography.KeyHyphens)
			if box == nil {
				t.Fatal("hyphens checkbox not found")
			}
			if _, checked := attr(box, "checked"); checked != tt.hyphens {
				t.Errorf("hyphens checked = %v, want %v", checked, tt.hyphens)
			}

			wrapper := findByID(doc, "custom-word-spacing")
			if wrapper == nil {
				t.Fatal("custom wrapper not found")
			}
			if _, hidden := attr(wrapper, "hidden"); hidden == tt.showCustom {
				t.Errorf("custom wrapper hidden = %v, want %v", hidden, !tt.showCustom)
			}
		})
	}
}

func TestRender_RedisplaysCustomValue(t *testing.T) {
	// invalid custom value is not applied but still shown to the user
	s := typography.Resolve(typography.Raw{
		typography.KeyMode:        "advanced",
		typography.KeyWordSpacing: "custom",
		typography.KeyCustomValue: "1.5x",
	})
	if s.WordSpacingValue != "0" {
		t.Fatalf("WordSpacingValue = %q, want 0", s.WordSpacingValue)
	}

	doc := render(t, Page{Settings: s})
	input := findByID(doc, typography.KeyCustomValue)
	if input == nil {
		t.Fatal("custom value input not found")
	}
	if v, _ := attr(input, "value"); v != "1.5x" {
		t.Errorf("custom value = %q, want %q", v, "1.5x")
	}
}

func TestRender_NonceAndNotice(t *testing.T) {
	doc := render(t, Page{Nonce: "abc-123", Saved: true, Action: "/settings"})

	var nonce string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "input" {
			if name, _ := attr(n, "name"); name == NonceField {
				nonce, _ = attr(n, "value")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if nonce != "abc-123" {
		t.Errorf("nonce = %q, want %q", nonce, "abc-123")
	}

	if !strings.Contains(textContent(doc), "Settings saved.") {
		t.Error("expected saved notice")
	}
	if strings.Contains(textContent(render(t, Page{})), "Settings saved.") {
		t.Error("unexpected saved notice")
	}
}

func TestRender_EscapesValues(t *testing.T) {
	var buf bytes.Buffer
	s := typography.Settings{CustomValue: `"><script>alert(1)</script>`}
	if err := Render(&buf, Page{Settings: s}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(buf.String(), "<script>alert(1)") {
		t.Error("custom value rendered unescaped")
	}
}

func TestParseSubmission(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		want   typography.Raw
	}{
		{
			name:   "empty form",
			values: url.Values{},
			want: typography.Raw{
				typography.KeyMode:        "standard",
				typography.KeyHyphens:     "",
				typography.KeyWordSpacing: "0",
				typography.KeyCustomValue: "",
				typography.KeyCustomUnit:  "em",
			},
		},
		{
			name: "custom taken",
			values: url.Values{
				typography.KeyMode:        {"advanced"},
				typography.KeyHyphens:     {"1"},
				typography.KeyWordSpacing: {"custom"},
				typography.KeyCustomValue: {" 1.5 "},
				typography.KeyCustomUnit:  {"px"},
			},
			want: typography.Raw{
				typography.KeyMode:        "advanced",
				typography.KeyHyphens:     "1",
				typography.KeyWordSpacing: "custom",
				typography.KeyCustomValue: "1.5",
				typography.KeyCustomUnit:  "px",
			},
		},
		{
			name: "custom ignored for preset",
			values: url.Values{
				typography.KeyMode:        {"advanced"},
				typography.KeyWordSpacing: {"0.02em"},
				typography.KeyCustomValue: {"3"},
				typography.KeyCustomUnit:  {"rem"},
			},
			want: typography.Raw{
				typography.KeyMode:        "advanced",
				typography.KeyHyphens:     "",
				typography.KeyWordSpacing: "0.02em",
				typography.KeyCustomValue: "",
				typography.KeyCustomUnit:  "em",
			},
		},
		{
			name: "checkbox value ignored",
			values: url.Values{
				typography.KeyHyphens: {"off"},
			},
			want: typography.Raw{
				typography.KeyMode:        "standard",
				typography.KeyHyphens:     "1",
				typography.KeyWordSpacing: "0",
				typography.KeyCustomValue: "",
				typography.KeyCustomUnit:  "em",
			},
		},
		{
			name: "unknown values kept for resolver",
			values: url.Values{
				typography.KeyMode:        {"<b>fancy</b>"},
				typography.KeyWordSpacing: {"1em"},
			},
			want: typography.Raw{
				typography.KeyMode:        "fancy",
				typography.KeyHyphens:     "",
				typography.KeyWordSpacing: "1em",
				typography.KeyCustomValue: "",
				typography.KeyCustomUnit:  "em",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSubmission(tt.values)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSubmission() has %d keys, want %d", len(got), len(tt.want))
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("ParseSubmission()[%q] = %#v, want %#v", k, got[k], v)
				}
			}
		})
	}
}

func TestParseSubmission_ResolvesToSameSettings(t *testing.T) {
	values := url.Values{
		typography.KeyMode:        {"advanced"},
		typography.KeyHyphens:     {"1"},
		typography.KeyWordSpacing: {"custom"},
		typography.KeyCustomValue: {"0.1"},
		typography.KeyCustomUnit:  {"rem"},
	}
	s := typography.Resolve(ParseSubmission(values))
	want := typography.Settings{
		Mode:             common.JustificationModeAdvanced,
		EnableHyphens:    true,
		WordSpacing:      common.WordSpacingPresetCustom,
		WordSpacingValue: "0.1rem",
		CustomValue:      "0.1",
		CustomUnit:       common.SpacingUnitRem,
	}
	if s != want {
		t.Errorf("Resolve(ParseSubmission()) = %+v, want %+v", s, want)
	}
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"  padded\t", "padded"},
		{"multi\n\nline   text", "multi line text"},
		{"<em>1.5</em>", "1.5"},
		{"a<script>alert(1)</script>b", "ab"},
		{"x<style>p{}</style>y", "xy"},
		{"bad\xffbyte", "badbyte"},
		{"e\u0301", "\u00e9"},
		{"1 &amp; 2", "1 &amp; 2"},
		{"a < b", "a < b"},
	}

	for _, tt := range tests {
		if got := SanitizeText(tt.in); got != tt.want {
			t.Errorf("SanitizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSubmitted(t *testing.T) {
	if Submitted(url.Values{}) {
		t.Error("Submitted() = true for empty form")
	}
	if !Submitted(url.Values{SubmittedField: {"1"}}) {
		t.Error("Submitted() = false for settings form")
	}
}

func TestSlug(t *testing.T) {
	if got := Slug(); got != "justify-for-paragraph-block" {
		t.Errorf("Slug() = %q", got)
	}
}

func TestRender_OptionLabels(t *testing.T) {
	doc := render(t, Page{Settings: typography.Resolve(nil)})

	labels := func(id string) map[string]string {
		sel := findByID(doc, id)
		if sel == nil {
			t.Fatalf("select %q not found", id)
		}
		out := make(map[string]string)
		for c := sel.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "option" {
				v, _ := attr(c, "value")
				out[v] = textContent(c)
			}
		}
		return out
	}

	tests := []struct {
		id    string
		value string
		label string
	}{
		{typography.KeyMode, "standard", "Standard (only text-align: justify)"},
		{typography.KeyMode, "advanced", "Advanced (typographic enhancements)"},
		{typography.KeyWordSpacing, "0", "No change"},
		{typography.KeyWordSpacing, "0.02em", "Slightly larger"},
		{typography.KeyWordSpacing, "-0.01em", "Slightly smaller"},
		{typography.KeyWordSpacing, "custom", "Custom value"},
		{typography.KeyCustomUnit, "rem", "rem"},
	}
	for _, tt := range tests {
		if got := labels(tt.id)[tt.value]; got != tt.label {
			t.Errorf("%s option %q label = %q, want %q", tt.id, tt.value, got, tt.label)
		}
	}
	if n := len(labels(typography.KeyWordSpacing)); n != len(common.WordSpacingPresetNames()) {
		t.Errorf("word spacing has %d options, want %d", n, len(common.WordSpacingPresetNames()))
	}
}
