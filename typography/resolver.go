package typography

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"justify/common"
	"justify/store"
)

// Resolver reads settings snapshot from the option store on every request.
// It keeps no state of its own, so it could be shared freely.
type Resolver struct {
	store store.Store
	log   *zap.Logger
}

func NewResolver(st store.Store, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{store: st, log: log.Named("typography")}
}

// Snapshot reads all settings from the store, absent keys get their defaults.
func (r *Resolver) Snapshot(ctx context.Context) (Raw, error) {
	raw := make(Raw, len(Keys))
	for _, key := range Keys {
		v, err := r.store.Get(ctx, key, Defaults[key])
		if err != nil {
			return nil, fmt.Errorf("unable to read option %q: %w", key, err)
		}
		raw[key] = v
	}
	return raw, nil
}

// Load reads and resolves current settings.
func (r *Resolver) Load(ctx context.Context) (Settings, error) {
	raw, err := r.Snapshot(ctx)
	if err != nil {
		return Settings{}, err
	}
	s := Resolve(raw)
	r.log.Debug("Settings resolved",
		zap.Stringer("mode", s.Mode),
		zap.Bool("hyphens", s.EnableHyphens),
		zap.Stringer("word_spacing", s.WordSpacing),
		zap.String("word_spacing_value", s.WordSpacingValue))
	return s, nil
}

// Stylesheet returns CSS for scope derived from current settings.
func (r *Resolver) Stylesheet(ctx context.Context, scope common.Scope) (string, error) {
	s, err := r.Load(ctx)
	if err != nil {
		return "", err
	}
	return DeriveCSS(s, scope), nil
}

// Save writes all settings keys, keys absent from raw are written with their
// defaults. Concurrent saves are not coordinated, last write wins.
func (r *Resolver) Save(ctx context.Context, raw Raw) error {
	for _, key := range Keys {
		v, ok := raw[key]
		if !ok {
			v = Defaults[key]
		}
		if err := r.store.Set(ctx, key, v); err != nil {
			return fmt.Errorf("unable to write option %q: %w", key, err)
		}
	}
	r.log.Debug("Settings saved", zap.Any("raw", raw))
	return nil
}
