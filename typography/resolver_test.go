package typography

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"justify/common"
	"justify/store"
)

type failingStore struct {
	err error
}

func (f failingStore) Get(context.Context, string, any) (any, error) { return nil, f.err }
func (f failingStore) Set(context.Context, string, any) error { return f.err }

func TestResolver_LoadDefaults(t *testing.T) {
	r := NewResolver(store.NewMemory(), zaptest.NewLogger(t))

	s, err := r.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s != Resolve(nil) {
		t.Errorf("Load() = %+v, want defaults", s)
	}

	css, err := r.Stylesheet(context.Background(), common.ScopeEditor)
	if err != nil {
		t.Fatalf("Stylesheet() error = %v", err)
	}
	if css != "" {
		t.Errorf("Stylesheet(editor) = %q, want empty", css)
	}
}

func TestResolver_SaveLoad(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	r := NewResolver(st, zaptest.NewLogger(t))

	if err := r.Save(ctx, Raw{KeyMode: "advanced", KeyWordSpacing: "0.02em"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	keys, err := st.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	if len(keys) != len(Keys) {
		t.Errorf("Save() wrote %v, want all of %v", keys, Keys)
	}

	css, err := r.Stylesheet(ctx, common.ScopeFrontend)
	if err != nil {
		t.Fatalf("Stylesheet() error = %v", err)
	}
	want := ".has-text-align-justify { text-align: justify; text-justify: inter-word; word-spacing: 0.02em; }"
	if css != want {
		t.Errorf("Stylesheet() = %q, want %q", css, want)
	}
}

func TestResolver_SeesExternalWrites(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	r := NewResolver(st, nil)

	if s, _ := r.Load(ctx); s.Advanced() {
		t.Fatal("unexpected advanced mode")
	}
	if err := st.Set(ctx, KeyMode, "advanced"); err != nil {
		t.Fatal(err)
	}
	if s, _ := r.Load(ctx); !s.Advanced() {
		t.Error("Load() did not pick up new value")
	}
}

func TestResolver_SettingsRoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	r := NewResolver(store.NewMemory(), nil)

	in := Resolve(Raw{
		KeyMode:        "advanced",
		KeyHyphens:     true,
		KeyWordSpacing: "custom",
		KeyCustomValue: "0.3",
		KeyCustomUnit:  "px",
	})
	if err := r.Save(ctx, in.Raw()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	out, err := r.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if out != in {
		t.Errorf("Load() = %+v, want %+v", out, in)
	}
}

func TestResolver_StoreErrors(t *testing.T) {
	boom := errors.New("boom")
	r := NewResolver(failingStore{err: boom}, nil)
	ctx := context.Background()

	if _, err := r.Load(ctx); !errors.Is(err, boom) {
		t.Errorf("Load() error = %v, want %v", err, boom)
	}
	if _, err := r.Stylesheet(ctx, common.ScopeFrontend); !errors.Is(err, boom) {
		t.Errorf("Stylesheet() error = %v, want %v", err, boom)
	}
	if err := r.Save(ctx, Raw{}); !errors.Is(err, boom) {
		t.Errorf("Save() error = %v, want %v", err, boom)
	}
}

func TestResolver_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewResolver(store.NewMemory(), nil)
	if _, err := r.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}
