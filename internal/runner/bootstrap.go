package runner

import (
	"ctablegen/common"
	"ctablegen/internal/config"
)

// Setup is what every command needs before it can run.
type Setup struct {
	Config *config.Config
	Logger *common.ZeroLogger
}

// Bootstrap loads the configuration (defaults, the optional YAML file, then
// the environment) and builds the stderr logger named after the command.
func Bootstrap(name, configPath string) (*Setup, error) {
	var paths []string
	if configPath != "" {
		paths = append(paths, configPath)
	}

	cfg, err := config.Load(config.LoadOptions{YamlFilePaths: paths})
	if err != nil {
		return nil, err
	}

	logger, err := common.NewLogger(common.LoggerOptions{
		Name:   name,
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
	})
	if err != nil {
		return nil, err
	}

	return &Setup{Config: cfg, Logger: logger}, nil
}
