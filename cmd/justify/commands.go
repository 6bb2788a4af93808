package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"justify/common"
	"justify/config"
	"justify/server"
	"justify/state"
	"justify/styles"
	"justify/typography"
)

func typographyKeys() []string {
	return slices.Clone(typography.Keys)
}

func resolver(ctx context.Context) (*typography.Resolver, *state.LocalEnv, error) {
	env := state.EnvFromContext(ctx)
	st, err := env.OpenStore()
	if err != nil {
		return nil, env, err
	}
	return typography.NewResolver(st, env.Log), env, nil
}

func outputCSS(ctx context.Context, cmd *cli.Command) error {
	r, env, err := resolver(ctx)
	if err != nil {
		return err
	}

	scopes := common.ScopeNames()
	if name := cmd.String("scope"); len(name) > 0 {
		scope, err := common.ParseScope(name)
		if err != nil {
			return fmt.Errorf("unable to use scope: %w", err)
		}
		scopes = []string{scope.String()}
	}

	settings, err := r.Load(ctx)
	if err != nil {
		return err
	}
	out := cmd.Root().Writer
	for _, name := range scopes {
		text := typography.DeriveCSS(settings, common.Scope(name))
		if len(text) == 0 {
			env.Log.Debug("Nothing to output", zap.String("scope", name))
			continue
		}
		env.Rpt.StoreData("css/"+name+".css", []byte(text))
		if _, err := fmt.Fprintln(out, text); err != nil {
			return fmt.Errorf("unable to write CSS: %w", err)
		}
	}
	return nil
}

// settingsView is YAML presentation of normalized settings.
type settingsView struct {
	Mode             common.JustificationMode `yaml:"justification_mode"`
	EnableHyphens    bool                     `yaml:"enable_hyphens"`
	WordSpacing      common.WordSpacingPreset `yaml:"word_spacing"`
	WordSpacingValue string                   `yaml:"word_spacing_value"`
	CustomValue      string                   `yaml:"word_spacing_custom_value"`
	CustomUnit       common.SpacingUnit       `yaml:"word_spacing_custom_unit"`
}

func outputSettings(ctx context.Context, cmd *cli.Command) error {
	r, env, err := resolver(ctx)
	if err != nil {
		return err
	}
	s, err := r.Load(ctx)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(settingsView{
		Mode:             s.Mode,
		EnableHyphens:    s.EnableHyphens,
		WordSpacing:      s.WordSpacing,
		WordSpacingValue: s.WordSpacingValue,
		CustomValue:      s.CustomValue,
		CustomUnit:       s.CustomUnit,
	})
	if err != nil {
		return fmt.Errorf("unable to marshal settings: %w", err)
	}
	env.Rpt.StoreData("settings.yaml", data)

	if _, err := cmd.Root().Writer.Write(data); err != nil {
		return fmt.Errorf("unable to write settings: %w", err)
	}
	return nil
}

func setOption(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected KEY and VALUE, got %d argument(s)", cmd.Args().Len())
	}
	key, value := cmd.Args().Get(0), cmd.Args().Get(1)
	if !slices.Contains(typography.Keys, key) {
		return fmt.Errorf("unknown setting %q", key)
	}

	env := state.EnvFromContext(ctx)
	st, err := env.OpenStore()
	if err != nil {
		return err
	}
	if err := st.Set(ctx, key, value); err != nil {
		return fmt.Errorf("unable to store setting: %w", err)
	}
	env.Log.Info("Setting stored", zap.String("key", key), zap.String("value", value))
	return nil
}

func listOptions(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	st, err := env.OpenStore()
	if err != nil {
		return err
	}
	keys, err := st.Keys(ctx)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	for _, key := range keys {
		v, err := st.Get(ctx, key, nil)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s: %v\n", key, v); err != nil {
			return fmt.Errorf("unable to write options: %w", err)
		}
	}
	env.Log.Debug("Options listed", zap.Int("count", len(keys)))
	return nil
}

func emitStyles(ctx context.Context, cmd *cli.Command) error {
	r, env, err := resolver(ctx)
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	dir := cmd.Args().Get(0)
	if len(dir) == 0 {
		if dir, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}

	sheets := styles.NewSheets(env.Log)
	if err := styles.Inject(ctx, r, sheets, &env.Cfg.Styles); err != nil {
		return err
	}
	written, err := sheets.WriteDir(dir)
	for _, name := range written {
		env.Rpt.Store("styles/"+filepath.Base(name), name)
	}
	if err != nil {
		return err
	}
	env.Log.Info("Stylesheets written", zap.String("to", dir), zap.Strings("files", written))
	return nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	st, err := env.OpenStore()
	if err != nil {
		return err
	}
	if addr := cmd.String("listen"); len(addr) > 0 {
		env.Cfg.Server.Listen = addr
	}
	return server.New(env.Cfg, st, env.Log).Run(ctx)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
		out   io.Writer = cmd.Root().Writer
	)

	if len(fname) > 0 {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()
		out = f
	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputing configuration", zap.String("state", state), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
