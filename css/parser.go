package css

import (
	"bytes"
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into ordered rules. Only plain rulesets are
// kept, everything else is reported as warning and skipped.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Rules:    make([]Rule, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				sheet.Warnings = append(sheet.Warnings, "parse error: "+err.Error())
				p.log.Debug("CSS parse error", zap.Error(err))
			}
			return sheet

		case css.BeginAtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+string(data))
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))
			p.skipBlock(parser)

		case css.AtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+string(data))
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))

		case css.BeginRulesetGrammar:
			selectors := parseSelectors(data, parser.Values())
			decls := p.parseDeclarations(parser, sheet)
			for _, sel := range selectors {
				rule := Rule{Selector: sel, Declarations: make([]Declaration, len(decls))}
				copy(rule.Declarations, decls)
				sheet.Rules = append(sheet.Rules, rule)
			}

		case css.DeclarationGrammar:
			// declaration outside of ruleset
			sheet.Warnings = append(sheet.Warnings, "declaration outside of rule: "+string(data))
		}
	}
}

// parseSelectors extracts selector strings from token data, grouped
// selectors are split by comma.
func parseSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.Join(strings.Fields(s), " ")
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// parseDeclarations collects declarations in order until EndRulesetGrammar.
func (p *Parser) parseDeclarations(parser *css.Parser, sheet *Stylesheet) []Declaration {
	var decls []Declaration

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar:
			value := joinValue(parser.Values())
			if value == "" {
				sheet.Warnings = append(sheet.Warnings, "empty declaration: "+string(data))
				continue
			}
			decls = append(decls, Declaration{Property: strings.ToLower(string(data)), Value: value})

		case css.CustomPropertyGrammar:
			sheet.Warnings = append(sheet.Warnings, "unsupported custom property: "+string(data))
			p.log.Debug("Skipping custom property", zap.String("property", string(data)))
		}
	}
}

// joinValue builds value string from tokens collapsing whitespace.
func joinValue(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

// skipBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// IsDimension reports whether s is exactly one CSS dimension token, a number
// immediately followed by a unit, e.g. "0.02em" or "-3px".
func IsDimension(s string) bool {
	lexer := css.NewLexer(parse.NewInputString(s))
	tt, data := lexer.Next()
	if tt != css.DimensionToken || string(data) != s {
		return false
	}
	tt, _ = lexer.Next()
	return tt == css.ErrorToken && errors.Is(lexer.Err(), io.EOF)
}
