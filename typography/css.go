package typography

import (
	"justify/common"
	"justify/css"
)

// Selectors of justified paragraphs per scope.
const (
	FrontendSelector = ".has-text-align-justify"
	EditorSelector   = ".wp-block-paragraph.has-text-align-justify"
)

// Selector returns selector used for scope.
func Selector(scope common.Scope) string {
	if scope == common.ScopeEditor {
		return EditorSelector
	}
	return FrontendSelector
}

// Rule builds the justified paragraph rule for scope. Declaration order is
// fixed. Rule may be empty, in which case nothing should be emitted.
func Rule(s Settings, scope common.Scope) css.Rule {
	rule := css.Rule{Selector: Selector(scope)}

	if scope != common.ScopeEditor {
		rule.Add("text-align", "justify")
	}
	if !s.Advanced() {
		return rule
	}

	rule.Add("text-justify", "inter-word")
	if s.EnableHyphens {
		rule.Add("hyphens", "auto")
		rule.Add("-webkit-hyphens", "auto")
	}
	if s.HasWordSpacing() {
		rule.Add("word-spacing", s.WordSpacingValue)
	}
	return rule
}

// DeriveCSS returns single line CSS rule for scope or empty string when
// there is nothing to declare. Values are emitted as is, settings must come
// from Resolve.
func DeriveCSS(s Settings, scope common.Scope) string {
	return Rule(s, scope).String()
}
