package form

import (
	"bytes"
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"

	"justify/common"
	"justify/typography"
)

// ParseSubmission converts posted settings form into raw settings. Absent
// fields get the values unchecked or unset controls stand for, custom
// word spacing is only taken from the form when custom preset is selected.
// Values are sanitized but not validated, resolver normalizes them on read.
func ParseSubmission(values url.Values) typography.Raw {
	raw := typography.Raw{
		typography.KeyMode:        common.JustificationModeStandard.String(),
		typography.KeyHyphens:     "",
		typography.KeyWordSpacing: common.WordSpacingPresetNone.String(),
		typography.KeyCustomValue: "",
		typography.KeyCustomUnit:  common.SpacingUnitEm.String(),
	}

	if values.Has(typography.KeyMode) {
		raw[typography.KeyMode] = SanitizeText(values.Get(typography.KeyMode))
	}
	if values.Has(typography.KeyHyphens) {
		raw[typography.KeyHyphens] = "1"
	}

	preset := common.WordSpacingPresetNone.String()
	if values.Has(typography.KeyWordSpacing) {
		preset = SanitizeText(values.Get(typography.KeyWordSpacing))
	}
	raw[typography.KeyWordSpacing] = preset

	if preset == common.WordSpacingPresetCustom.String() {
		if values.Has(typography.KeyCustomValue) {
			raw[typography.KeyCustomValue] = SanitizeText(values.Get(typography.KeyCustomValue))
		}
		if values.Has(typography.KeyCustomUnit) {
			raw[typography.KeyCustomUnit] = SanitizeText(values.Get(typography.KeyCustomUnit))
		}
	}
	return raw
}

// Submitted reports whether values came from settings form.
func Submitted(values url.Values) bool {
	return values.Has(SubmittedField)
}

// SanitizeText makes single line plain text out of user input: invalid
// UTF-8 is dropped, markup removed together with script and style bodies,
// whitespace runs collapsed into single space and result trimmed and NFC
// normalized.
func SanitizeText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")
	if strings.ContainsRune(s, '<') {
		s = stripTags(s)
	}

	var b strings.Builder
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) || r == 0 {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}

func stripTags(s string) string {
	var (
		out  bytes.Buffer
		skip atom.Atom
	)
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed tail, either way what follows is dropped
			return out.String()
		case html.TextToken:
			if skip == 0 {
				out.Write(z.Raw())
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			if a := atom.Lookup(name); a == atom.Script || a == atom.Style {
				skip = a
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) == skip {
				skip = 0
			}
		}
	}
}
