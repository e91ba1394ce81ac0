package config

import (
	"github.com/samber/lo"

	"ctablegen/internal/ctab"
)

type Config struct {
	Logging LoggingConfig `koanf:"logging" validate:"required"`
	Errno   ErrnoConfig   `koanf:"errno" validate:"required"`
	Curl    CurlConfig    `koanf:"curl" validate:"required"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" default:"warn" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	Pretty bool   `koanf:"pretty"`
}

type AliasConfig struct {
	Name string `koanf:"name" validate:"required,c_ident"`
	Of   string `koanf:"of" validate:"required,c_ident,nefield=Name"`
}

type ErrnoConfig struct {
	Symbols   []string      `koanf:"symbols" validate:"omitempty,unique,dive,c_ident"`
	Aliases   []AliasConfig `koanf:"aliases" validate:"omitempty,dive"`
	TableName string        `koanf:"table_name" default:"errno_constants" validate:"required,c_ident"`
	FuncName  string        `koanf:"func_name" default:"errno2name" validate:"required,c_ident"`
}

// AliasList converts the configured aliases, keeping nil as "use defaults".
func (c ErrnoConfig) AliasList() []ctab.Alias {
	if c.Aliases == nil {
		return nil
	}
	return lo.Map(c.Aliases, func(a AliasConfig, _ int) ctab.Alias {
		return ctab.Alias{Name: a.Name, Of: a.Of}
	})
}

type CurlConfig struct {
	HeaderPath string `koanf:"header_path" default:"/opt/local/include/curl/curl.h" validate:"required"`
	Prefix     string `koanf:"prefix" default:"CURLOPT_" validate:"required,c_ident"`
	TableName  string `koanf:"table_name" default:"easycurl_options" validate:"required,c_ident"`
	FuncName   string `koanf:"func_name" default:"option_expected_type" validate:"required,c_ident"`
	Flags      string `koanf:"flags" default:"JSPROP_READONLY | JSPROP_PERMANENT | JSPROP_ENUMERATE" validate:"notblank"`
	TableOnly  bool   `koanf:"table_only"`
}
