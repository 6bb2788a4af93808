// Enums shared between configuration, typography resolution and the settings
// form live here so none of those packages has to import another just to
// name a value.
package common

// Justification mode, only advanced enables typographic refinements.
// ENUM(standard, advanced)
type JustificationMode string

// Word spacing preset as stored by the settings form.
// ENUM(none="0", slightlyLarger="0.02em", slightlySmaller="-0.01em", custom)
type WordSpacingPreset string

// Label returns text used for the preset in the settings form.
func (x WordSpacingPreset) Label() string {
	switch x {
	case WordSpacingPresetSlightlyLarger:
		return "Slightly larger"
	case WordSpacingPresetSlightlySmaller:
		return "Slightly smaller"
	case WordSpacingPresetCustom:
		return "Custom value"
	default:
		return "No change"
	}
}

// Unit for custom word spacing value.
// ENUM(em, px, rem)
type SpacingUnit string

// Rendering context generated CSS is targeted to.
// ENUM(frontend, editor)
type Scope string

// Option storage backend.
// ENUM(memory, sqlite, yaml)
type StoreBackend string
