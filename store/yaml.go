package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"
)

// YAML keeps options in a flat YAML mapping. File is re-read on every access
// so external edits are picked up, writes replace file atomically.
type YAML struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger
}

func NewYAML(path string, log *zap.Logger) (*YAML, error) {
	if log == nil {
		log = zap.NewNop()
	}
	y := &YAML{path: path, log: log.Named("yaml")}
	// fail early on unreadable or malformed file
	if _, err := y.load(); err != nil {
		return nil, err
	}
	return y, nil
}

func (y *YAML) load() (map[string]any, error) {
	values := make(map[string]any)

	data, err := os.ReadFile(y.path)
	if errors.Is(err, fs.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("unable to decode options file '%s': %w", y.path, err)
	}
	if values == nil {
		// empty document
		values = make(map[string]any)
	}
	return values, nil
}

func (y *YAML) save(values map[string]any) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("unable to encode options: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(y.path), filepath.Base(y.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("unable to create temporary options file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("unable to write options file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to write options file: %w", err)
	}
	if err := os.Rename(f.Name(), y.path); err != nil {
		return fmt.Errorf("unable to replace options file: %w", err)
	}
	return nil
}

func (y *YAML) Get(ctx context.Context, key string, def any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	y.mu.Lock()
	defer y.mu.Unlock()

	values, err := y.load()
	if err != nil {
		return nil, err
	}
	if v, ok := values[key]; ok {
		return v, nil
	}
	return def, nil
}

func (y *YAML) Set(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	y.mu.Lock()
	defer y.mu.Unlock()

	values, err := y.load()
	if err != nil {
		return err
	}
	values[key] = value
	if err := y.save(values); err != nil {
		return err
	}
	y.log.Debug("Option written", zap.String("key", key), zap.Any("value", value))
	return nil
}

func (y *YAML) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	y.mu.Lock()
	defer y.mu.Unlock()

	values, err := y.load()
	if err != nil {
		return nil, err
	}
	return sortKeys(slices.Collect(maps.Keys(values))), nil
}

func (y *YAML) Close() error {
	return nil
}
