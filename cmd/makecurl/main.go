// Package main implements makecurl - reads the installed curl.h and writes
// the CURLOPT constant table and option_expected_type classifier.
package main

import (
	"flag"
	"fmt"
	"os"

	"ctablegen/internal/runner"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML configuration file")
	outPath := flag.String("o", "", "Write the generated source to this file instead of stdout")
	header := flag.String("header", "", "Path to curl.h (overrides curl.header_path)")

	flag.Parse()

	setup, err := runner.Bootstrap("makecurl", *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "makecurl : Error: %v\n", err)
		os.Exit(1)
	}

	settings := setup.Config.Curl
	if *header != "" {
		settings.HeaderPath = *header
	}
	setup.Logger.Debug("reading curl header from " + settings.HeaderPath)

	cfg := runner.CurlConfig{
		Settings:     settings,
		OutputPath:   *outPath,
		OutputWriter: os.Stdout,
		Logger:       setup.Logger,
	}

	if err := runner.Curl(cfg); err != nil {
		setup.Logger.Error(err)
		os.Exit(1)
	}
}
