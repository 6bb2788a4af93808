package typography

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"justify/common"
	"justify/css"
)

// Keys of the persisted settings.
const (
	KeyMode         = "justification_mode"
	KeyHyphens      = "enable_hyphens"
	KeyWordSpacing  = "word_spacing"
	KeyCustomValue  = "word_spacing_custom_value"
	KeyCustomUnit   = "word_spacing_custom_unit"
	noWordSpacing   = "0"
	hyphensEnabled  = "1"
	hyphensDisabled = ""
)

// Keys lists persisted settings names in the order they are read and written.
var Keys = []string{KeyMode, KeyHyphens, KeyWordSpacing, KeyCustomValue, KeyCustomUnit}

// Defaults are the values read for absent keys.
var Defaults = Raw{
	KeyMode:        common.JustificationModeStandard.String(),
	KeyHyphens:     false,
	KeyWordSpacing: common.WordSpacingPresetNone.String(),
	KeyCustomValue: "",
	KeyCustomUnit:  common.SpacingUnitEm.String(),
}

// Raw is an untyped settings snapshot as found in the option store. Keys may
// be missing and values may be of any type.
type Raw map[string]any

// Settings is a fully populated normalized settings record.
type Settings struct {
	Mode          common.JustificationMode
	EnableHyphens bool
	WordSpacing   common.WordSpacingPreset
	// CSS length to emit for word-spacing, "0" means no declaration.
	WordSpacingValue string
	// Last custom input, kept so the form could redisplay it even when it
	// was not applied.
	CustomValue string
	CustomUnit  common.SpacingUnit
}

// Advanced is a shortcut for Mode check.
func (s Settings) Advanced() bool {
	return s.Mode == common.JustificationModeAdvanced
}

// HasWordSpacing returns true if word-spacing declaration should be emitted.
func (s Settings) HasWordSpacing() bool {
	return s.WordSpacingValue != noWordSpacing
}

// Raw returns persisted representation of the settings. Resolving it again
// produces the same Settings.
func (s Settings) Raw() Raw {
	hyphens := hyphensDisabled
	if s.EnableHyphens {
		hyphens = hyphensEnabled
	}
	return Raw{
		KeyMode:        s.Mode.String(),
		KeyHyphens:     hyphens,
		KeyWordSpacing: s.WordSpacing.String(),
		KeyCustomValue: s.CustomValue,
		KeyCustomUnit:  s.CustomUnit.String(),
	}
}

// Resolve normalizes raw settings. Every field is handled independently and
// invalid values are replaced with defaults.
func Resolve(raw Raw) Settings {
	s := Settings{
		Mode:          parseModeOrDefault(raw[KeyMode]),
		EnableHyphens: truthy(raw[KeyHyphens]),
		WordSpacing:   parsePresetOrDefault(raw[KeyWordSpacing]),
		CustomValue:   toString(raw[KeyCustomValue]),
		CustomUnit:    parseUnitOrDefault(raw[KeyCustomUnit]),
	}
	s.WordSpacingValue = wordSpacingValue(s.WordSpacing, s.CustomValue, s.CustomUnit)
	return s
}

// parseModeOrDefault accepts exactly "advanced", anything else is standard.
func parseModeOrDefault(v any) common.JustificationMode {
	if str, ok := v.(string); ok {
		if mode, err := common.ParseJustificationMode(str); err == nil {
			return mode
		}
	}
	return common.JustificationModeStandard
}

// parsePresetOrDefault accepts only exact preset strings, anything else is
// "no change".
func parsePresetOrDefault(v any) common.WordSpacingPreset {
	if str, ok := v.(string); ok {
		if preset, err := common.ParseWordSpacingPreset(str); err == nil {
			return preset
		}
	}
	return common.WordSpacingPresetNone
}

// parseUnitOrDefault accepts only exact unit names, default is em.
func parseUnitOrDefault(v any) common.SpacingUnit {
	if str, ok := v.(string); ok {
		if unit, err := common.ParseSpacingUnit(str); err == nil {
			return unit
		}
	}
	return common.SpacingUnitEm
}

var decimalNumber = regexp.MustCompile(`^-?(?:[0-9]+(?:\.[0-9]+)?|\.[0-9]+)$`)

// cutset of characters trimmed from custom input.
const trimCutset = " \t\n\r\x00\x0B"

func wordSpacingValue(preset common.WordSpacingPreset, custom string, unit common.SpacingUnit) string {
	switch preset {
	case common.WordSpacingPresetCustom:
		value := strings.Trim(custom, trimCutset)
		if value == "" || !decimalNumber.MatchString(value) {
			return noWordSpacing
		}
		if length := value + unit.String(); css.IsDimension(length) {
			return length
		}
		return noWordSpacing
	case common.WordSpacingPresetNone:
		return noWordSpacing
	default:
		return preset.String()
	}
}

// truthy converts value to boolean the way loosely typed option storage
// does: nil, false, zero numbers, "", "0" and empty collections are false.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != "" && x != "0"
	case []byte:
		return len(x) != 0 && string(x) != "0"
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return truthy(rv.Elem().Interface())
	}
	return true
}

// toString converts scalar value to its string form, non scalar values
// become empty string.
func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		if x {
			return "1"
		}
		return ""
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	}
	return ""
}
