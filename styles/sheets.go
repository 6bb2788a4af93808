// Package styles collects generated CSS blocks per named stylesheet, the way
// a page attaches inline styles to registered stylesheet handles.
package styles

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"justify/common"
	"justify/config"
	"justify/css"
	"justify/typography"
)

// Sink accepts CSS to be attached to a named stylesheet.
type Sink interface {
	AddInline(scope common.Scope, handle, text string) error
}

type block struct {
	scope common.Scope
	rules []css.Rule
}

// Sheets is an in-memory Sink. Attached CSS is checked to be a list of plain
// rules before it is accepted.
type Sheets struct {
	mu      sync.Mutex
	order   []string
	handles map[string][]block
	parser  *css.Parser
	log     *zap.Logger
}

func NewSheets(log *zap.Logger) *Sheets {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("styles")
	return &Sheets{
		handles: make(map[string][]block),
		parser:  css.NewParser(log),
		log:     log,
	}
}

// AddInline attaches CSS text to handle. Empty text is ignored, text which
// does not parse cleanly into rules is rejected.
func (s *Sheets) AddInline(scope common.Scope, handle, text string) error {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return nil
	}
	if len(handle) == 0 {
		return fmt.Errorf("no stylesheet handle for %s styles", scope)
	}

	sheet := s.parser.Parse([]byte(text), handle)
	if len(sheet.Warnings) > 0 {
		return fmt.Errorf("refusing to attach CSS to %q: %s", handle, strings.Join(sheet.Warnings, "; "))
	}
	if len(sheet.Rules) == 0 {
		return fmt.Errorf("refusing to attach CSS to %q: no rules", handle)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.handles[handle]; !ok {
		s.order = append(s.order, handle)
	}
	attached := s.stylesheet(handle)
	for _, r := range sheet.Rules {
		if len(attached.RulesBySelector(r.Selector)) > 0 {
			s.log.Warn("Selector attached more than once", zap.String("handle", handle), zap.String("selector", r.Selector))
		}
	}
	s.handles[handle] = append(s.handles[handle], block{scope: scope, rules: sheet.Rules})
	s.log.Debug("Inline style attached", zap.String("handle", handle), zap.Stringer("scope", scope), zap.Int("rules", len(sheet.Rules)))
	return nil
}

// Handles returns names of stylesheets with attached CSS in order they were
// first used.
func (s *Sheets) Handles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.order)
}

// Stylesheet returns all rules attached to handle in order they were added.
func (s *Sheets) Stylesheet(handle string) *css.Stylesheet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stylesheet(handle)
}

func (s *Sheets) stylesheet(handle string) *css.Stylesheet {
	sheet := &css.Stylesheet{}
	for _, b := range s.handles[handle] {
		sheet.Rules = append(sheet.Rules, b.rules...)
	}
	return sheet
}

// Render returns all CSS attached to handle, one rule per line.
func (s *Sheets) Render(handle string) string {
	return s.Stylesheet(handle).String()
}

// WriteDir writes every stylesheet into dir as <handle>.css and returns names
// of written files.
func (s *Sheets) WriteDir(dir string) (written []string, err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("unable to create output directory: %w", err)
	}
	for _, handle := range s.Handles() {
		name := filepath.Join(dir, config.CleanFileName(handle)+".css")
		if er := writeStylesheet(name, s.Stylesheet(handle)); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to write stylesheet '%s': %w", name, er))
			continue
		}
		written = append(written, name)
	}
	return written, err
}

func writeStylesheet(name string, sheet *css.Stylesheet) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	_, err = sheet.WriteTo(f)
	return err
}

// Inject performs single rendering cycle: settings are resolved once and rule
// for every scope is attached to the handle configured for it. Scopes which
// produce no CSS are skipped.
func Inject(ctx context.Context, r *typography.Resolver, sink Sink, handles *config.StylesConfig) error {
	settings, err := r.Load(ctx)
	if err != nil {
		return err
	}
	for _, name := range common.ScopeNames() {
		scope := common.Scope(name)
		text := typography.DeriveCSS(settings, scope)
		if len(text) == 0 {
			continue
		}
		if err := sink.AddInline(scope, handles.Handle(scope), text); err != nil {
			return err
		}
	}
	return nil
}
