// Package main implements make_errno - writes the errno constant table and
// the errno2name lookup function as C source.
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

	flag.Parse()

	setup, err := runner.Bootstrap("make_errno", *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "make_errno : Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runner.ErrnoConfig{
		Settings:     setup.Config.Errno,
		OutputPath:   *outPath,
		OutputWriter: os.Stdout,
		Logger:       setup.Logger,
	}

	if err := runner.Errno(cfg); err != nil {
		setup.Logger.Error(err)
		os.Exit(1)
	}
}
