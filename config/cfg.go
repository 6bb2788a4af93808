package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"justify/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	StoreConfig struct {
		Backend common.StoreBackend `yaml:"backend" validate:"required"`
		Path    string              `yaml:"path" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required_unless=Backend memory"`
		Prefix  string              `yaml:"prefix" validate:"omitempty,excludesall= /"`
	}

	StylesConfig struct {
		FrontendHandle string `yaml:"frontend_handle" validate:"required,excludesall= /"`
		EditorHandle   string `yaml:"editor_handle" validate:"required,excludesall= /,nefield=FrontendHandle"`
	}

	// AuthConfig protects settings service with basic authentication,
	// empty username disables it.
	AuthConfig struct {
		Username string       `yaml:"username" validate:"omitempty,excludesall=:"`
		Password SecretString `yaml:"password" validate:"required_with=Username"`
	}

	ServerConfig struct {
		Listen   string        `yaml:"listen" validate:"required,hostname_port"`
		NonceTTL time.Duration `yaml:"nonce_ttl" validate:"gte=1m"`
		Auth     AuthConfig    `yaml:"auth"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Store     StoreConfig    `yaml:"store"`
		Styles    StylesConfig   `yaml:"styles"`
		Server    ServerConfig   `yaml:"server"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// Handle returns name of the stylesheet rules for scope are attached to.
func (conf *StylesConfig) Handle(scope common.Scope) string {
	if scope == common.ScopeEditor {
		return conf.EditorHandle
	}
	return conf.FrontendHandle
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("configuration sanitizing failed: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
