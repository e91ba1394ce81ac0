package printers

import (
	"fmt"
	"io"

	"ctablegen/common"
)

// SourcePrinter writes generated C source one line at a time.
// The first write error is kept and every later write is dropped,
// so emitters can check Err once at the end.
type SourcePrinter struct {
	writer io.Writer
	msgLog common.Logger
	err    error
	lines  int
}

// NewSourcePrinter constructs a SourcePrinter using the given io.Writer.
func NewSourcePrinter(writer io.Writer) *SourcePrinter {
	return &SourcePrinter{
		writer: writer,
	}
}

// SetMessageLogger sets an optional logger that echoes every line at debug level.
func (p *SourcePrinter) SetMessageLogger(logger common.Logger) {
	p.msgLog = logger
}

// Line writes s followed by a newline.
func (p *SourcePrinter) Line(s string) {
	if p.err != nil {
		return
	}
	p.lines++
	if p.msgLog != nil {
		p.msgLog.Debug(s)
	}
	if p.writer == nil {
		return
	}
	if _, err := io.WriteString(p.writer, s+"\n"); err != nil {
		p.err = err
	}
}

// Linef formats according to format and writes the result as one line.
func (p *SourcePrinter) Linef(format string, args ...any) {
	p.Line(fmt.Sprintf(format, args...))
}

// Err returns the first write error, if any.
func (p *SourcePrinter) Err() error { return p.err }

// Lines returns the number of lines accepted so far.
func (p *SourcePrinter) Lines() int { return p.lines }
