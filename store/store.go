// Package store implements option storage settings are read from and written
// to. Values are untyped, consumers are expected to normalize whatever they
// get back.
package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"justify/common"
	"justify/config"
)

// Store is a flat key/value option storage. Get returns def when key is
// absent. There are no transactions, last write wins.
type Store interface {
	Get(ctx context.Context, key string, def any) (any, error)
	Set(ctx context.Context, key string, value any) error
}

// Backend is a Store which could enumerate its keys and has to be closed.
type Backend interface {
	Store
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// Open creates backend requested by configuration, keys are namespaced with
// configured prefix.
func Open(conf *config.StoreConfig, log *zap.Logger) (Backend, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		b   Backend
		err error
	)
	switch conf.Backend {
	case common.StoreBackendMemory:
		b = NewMemory()
	case common.StoreBackendSqlite:
		b, err = NewSQLite(conf.Path, log)
	case common.StoreBackendYaml:
		b, err = NewYAML(conf.Path, log)
	default:
		return nil, fmt.Errorf("unsupported store backend %q", conf.Backend)
	}
	if err != nil {
		return nil, err
	}
	log.Debug("Option store opened", zap.Stringer("backend", conf.Backend), zap.String("path", conf.Path), zap.String("prefix", conf.Prefix))
	return WithPrefix(b, conf.Prefix), nil
}

type prefixed struct {
	Backend
	prefix string
}

// WithPrefix namespaces all keys of backend with prefix.
func WithPrefix(b Backend, prefix string) Backend {
	if len(prefix) == 0 {
		return b
	}
	return &prefixed{Backend: b, prefix: prefix}
}

func (p *prefixed) Get(ctx context.Context, key string, def any) (any, error) {
	return p.Backend.Get(ctx, p.prefix+key, def)
}

func (p *prefixed) Set(ctx context.Context, key string, value any) error {
	return p.Backend.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Keys(ctx context.Context) ([]string, error) {
	all, err := p.Backend.Keys(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(all))
	for _, k := range all {
		if rest, ok := strings.CutPrefix(k, p.prefix); ok {
			keys = append(keys, rest)
		}
	}
	return keys, nil
}

func sortKeys(keys []string) []string {
	sort.Sort(natural.StringSlice(keys))
	return keys
}
