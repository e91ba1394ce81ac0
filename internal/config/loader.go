// Package config loads generator settings from YAML files and the environment.
package config

import (
	"strings"

	"github.com/creasty/defaults"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"

	"ctablegen/internal/ctab"
)

const DefaultEnvVarPrefix = "CTABLEGEN_"

type LoadOptions struct {
	YamlFilePaths []string
	EnvVarPrefix  string
}

// Load builds a Config from defaults, then each YAML file in order, then
// environment variables. CTABLEGEN_CURL_HEADER__PATH sets curl.header_path:
// a single underscore separates keys and a double one is a literal underscore.
// CTABLEGEN_ERRNO_SYMBOLS is a whitespace separated list.
func Load(options LoadOptions) (*Config, error) {
	errorBuilder := oops.
		In("config").
		Tags("loader")

	prefix := options.EnvVarPrefix
	if prefix == "" {
		prefix = DefaultEnvVarPrefix
	}

	var cfg Config

	// 1. Set defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errorBuilder.
			Code(ctab.ErrConfigLoad.Name()).
			Wrapf(err, "failed to set config defaults")
	}

	// 2. Load config
	k := koanf.New(".")
	for _, path := range options.YamlFilePaths {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errorBuilder.
				Code(ctab.ErrConfigLoad.Name()).
				Wrapf(err, "failed to load config file %s", path)
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.TrimPrefix(k, prefix)
			k = strings.NewReplacer("__", "_", "_", ".").Replace(k)
			k = strings.ToLower(k)
			if k == "errno.symbols" {
				return k, strings.Fields(v)
			}
			return k, v
		},
	}), nil)
	if err != nil {
		return nil, errorBuilder.
			Code(ctab.ErrConfigLoad.Name()).
			Wrapf(err, "failed to load environment variables")
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errorBuilder.
			Code(ctab.ErrConfigLoad.Name()).
			Wrapf(err, "failed to unmarshal config")
	}

	// 3. Validate config
	if err := validate.Struct(&cfg); err != nil {
		return nil, errorBuilder.
			Code(ctab.ErrConfigInvalid.Name()).
			Wrapf(err, "failed to validate config")
	}

	return &cfg, nil
}
