// Package form renders typography settings page and turns its submissions
// into raw settings ready to be stored.
package form

import (
	_ "embed"
	"html/template"
	"io"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"

	"justify/common"
	"justify/typography"
)

//go:embed settings.html.tmpl
var settingsHTML string

// Names of form fields which are not settings.
const (
	NonceField     = "_nonce"
	SubmittedField = "settings_submitted"
)

// Title of the settings page.
const Title = "Justify for Paragraph Block"

var pageTmpl = template.Must(template.New("settings").Funcs(template.FuncMap(sprig.FuncMap())).Parse(settingsHTML))

// Page is what settings page is rendered from.
type Page struct {
	Action   string
	Nonce    string
	Saved    bool
	Settings typography.Settings
}

type fields struct {
	Mode        string
	Hyphens     string
	WordSpacing string
	CustomValue string
	CustomUnit  string
}

type view struct {
	Page
	Title          string
	Slug           string
	NonceField     string
	SubmittedField string
	CustomPreset   string
	Fields         fields
	Presets        []common.WordSpacingPreset
	Units          []string
}

// Slug returns page slug derived from its title.
func Slug() string {
	return slug.Make(Title)
}

func newView(p Page) view {
	v := view{
		Page:           p,
		Title:          Title,
		Slug:           Slug(),
		NonceField:     NonceField,
		SubmittedField: SubmittedField,
		CustomPreset:   common.WordSpacingPresetCustom.String(),
		Fields: fields{
			Mode:        typography.KeyMode,
			Hyphens:     typography.KeyHyphens,
			WordSpacing: typography.KeyWordSpacing,
			CustomValue: typography.KeyCustomValue,
			CustomUnit:  typography.KeyCustomUnit,
		},
		Units: common.SpacingUnitNames(),
	}
	for _, name := range common.WordSpacingPresetNames() {
		v.Presets = append(v.Presets, common.WordSpacingPreset(name))
	}
	return v
}

// Render writes settings page to w. Controls are preselected from settings,
// last custom word spacing input is shown even when it was not applied.
func Render(w io.Writer, p Page) error {
	return pageTmpl.Execute(w, newView(p))
}
