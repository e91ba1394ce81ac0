// Package runner holds the run loops behind the generator commands.
// Each loop generates into memory first and only then commits the result,
// so a failed run never leaves a partial file behind.
package runner

import (
	"bytes"
	"io"
	"os"

	"github.com/samber/oops"

	"ctablegen/common"
	"ctablegen/internal/config"
	"ctablegen/internal/ctab"
	"ctablegen/internal/curlgen"
	"ctablegen/internal/errnogen"
)

// ErrnoConfig mirrors the make_errno command line.
type ErrnoConfig struct {
	Settings     config.ErrnoConfig
	OutputPath   string    // written only after generation succeeds
	OutputWriter io.Writer // used when OutputPath is empty, defaults to stdout
	Logger       *common.ZeroLogger
}

// Errno generates the errno table and lookup function.
func Errno(cfg ErrnoConfig) error {
	e, err := errnogen.NewEmitter(errnogen.Config{
		Symbols:   cfg.Settings.Symbols,
		Aliases:   cfg.Settings.AliasList(),
		TableName: cfg.Settings.TableName,
		FuncName:  cfg.Settings.FuncName,
		Logger:    componentLogger(cfg.Logger, "errnogen"),
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := e.Emit(&buf); err != nil {
		return err
	}
	return commit(&buf, cfg.OutputPath, cfg.OutputWriter)
}

// CurlConfig mirrors the make_libcurl_constants and makecurl command lines.
type CurlConfig struct {
	Settings     config.CurlConfig
	Input        io.Reader // header text; Settings.HeaderPath is read when nil
	TableOnly    bool      // also set by Settings.TableOnly
	OutputPath   string
	OutputWriter io.Writer
	Logger       *common.ZeroLogger
}

// Curl generates the curl option table and, unless disabled, the classifier.
func Curl(cfg CurlConfig) error {
	text, err := readHeader(cfg)
	if err != nil {
		return err
	}

	e, err := curlgen.NewEmitter(curlgen.Config{
		Prefix:    cfg.Settings.Prefix,
		TableName: cfg.Settings.TableName,
		FuncName:  cfg.Settings.FuncName,
		Flags:     cfg.Settings.Flags,
		TableOnly: cfg.TableOnly || cfg.Settings.TableOnly,
		Logger:    componentLogger(cfg.Logger, "curlgen"),
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := e.Emit(&buf, text); err != nil {
		return err
	}
	return commit(&buf, cfg.OutputPath, cfg.OutputWriter)
}

// componentLogger tags l with the emitter name. A nil l stays a nil interface
// so the emitter falls back to its no-op logger.
func componentLogger(l *common.ZeroLogger, name string) common.Logger {
	if l == nil {
		return nil
	}
	return l.Child(name)
}

func readHeader(cfg CurlConfig) (string, error) {
	errorb := oops.
		In("runner").
		Code(ctab.ErrInputRead.Name())

	if cfg.Input != nil {
		b, err := io.ReadAll(cfg.Input)
		if err != nil {
			return "", errorb.Wrapf(err, "failed to read header from input")
		}
		return string(b), nil
	}

	b, err := os.ReadFile(cfg.Settings.HeaderPath)
	if err != nil {
		return "", errorb.
			With("path", cfg.Settings.HeaderPath).
			Wrapf(err, "failed to read header %s", cfg.Settings.HeaderPath)
	}
	return string(b), nil
}

func commit(buf *bytes.Buffer, path string, w io.Writer) error {
	errorb := oops.
		In("runner").
		Code(ctab.ErrOutputWrite.Name())

	if path != "" {
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return errorb.
				With("path", path).
				Wrapf(err, "failed to write %s", path)
		}
		return nil
	}

	if w == nil {
		w = os.Stdout
	}
	if _, err := buf.WriteTo(w); err != nil {
		return errorb.Wrapf(err, "failed to write output")
	}
	return nil
}
