// Package main implements make_libcurl_constants - reads curl.h on stdin and
// writes the CURLOPT constant table and option_expected_type classifier.
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
	tableOnly := flag.Bool("table_only", false, "Emit only the constant table, without the classifier")

	flag.Parse()

	setup, err := runner.Bootstrap("make_libcurl_constants", *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "make_libcurl_constants : Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runner.CurlConfig{
		Settings:     setup.Config.Curl,
		Input:        os.Stdin,
		TableOnly:    *tableOnly,
		OutputPath:   *outPath,
		OutputWriter: os.Stdout,
		Logger:       setup.Logger,
	}

	if err := runner.Curl(cfg); err != nil {
		setup.Logger.Error(err)
		os.Exit(1)
	}
}
