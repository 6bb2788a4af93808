// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"justify/config"
	"justify/store"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg   *config.Config
	Rpt   *config.Report
	Log   *zap.Logger
	Store store.Backend

	start         time.Time
	restoreStdLog func()
}

func newLocalEnv() *LocalEnv {
	return &LocalEnv{start: time.Now()}
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// OpenStore opens option store described by configuration. Calling it again
// returns already opened store.
func (e *LocalEnv) OpenStore() (store.Backend, error) {
	if e.Store != nil {
		return e.Store, nil
	}
	if e.Cfg == nil {
		return nil, fmt.Errorf("configuration is not loaded")
	}
	st, err := store.Open(&e.Cfg.Store, e.Log)
	if err != nil {
		return nil, fmt.Errorf("unable to open option store: %w", err)
	}
	e.Store = st
	return st, nil
}

// Close releases resources held by environment.
func (e *LocalEnv) Close() (err error) {
	if e.Store != nil {
		err = multierr.Append(err, e.Store.Close())
		e.Store = nil
	}
	return err
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
