package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// listKeys are config keys whose environment form is a comma-separated list,
// e.g. APP_NOTIFY_WEBHOOK_URLS=https://a.example/hook,https://b.example/hook.
var listKeys = map[string]bool{
	"notify.webhook_urls": true,
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the Config for profile from four layers, later ones winning:
// built-in defaults, {configDir}/base.yaml, {configDir}/{profile}.yaml, and
// APP_-prefixed environment variables. The result is validated.
//
// Environment names are matched against the keys the earlier layers defined,
// so field-internal underscores survive:
//
//	APP_SERVER_READ_TIMEOUT              -> server.read_timeout
//	APP_BOARD_TICK_INTERVAL              -> board.tick_interval
//	APP_NOTIFY_CLIENT_RETRY_MAX_ATTEMPTS -> notify.client.retry.max_attempts
//	APP_NOTIFY_WEBHOOK_URLS=a,b          -> notify.webhook_urls [a b]
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform(buildEnvLookup(k.Keys())),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// envTransform maps an APP_ variable onto its koanf key. Unknown names fall
// back to treating every underscore as nesting.
func envTransform(lookup map[string]string) func(key, value string) (string, any) {
	return func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

		koanfKey, ok := lookup[key]
		if !ok {
			koanfKey = strings.ReplaceAll(key, "_", ".")
		}
		if listKeys[koanfKey] {
			return koanfKey, splitList(value)
		}
		return koanfKey, value
	}
}

// splitList splits a comma-separated value, dropping blank entries.
func splitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup maps the env form of every known key ("server_read_timeout")
// to the key itself ("server.read_timeout"). List keys are always present.
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys)+len(listKeys))
	for key := range listKeys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
