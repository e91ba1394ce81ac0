package printers

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"ctablegen/common"
)

type mockLogger struct {
	common.NoOpLogger
	bytes.Buffer
}

func (m *mockLogger) Debug(msg string) {
	m.WriteString(msg)
}

type failingWriter struct {
	calls int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("disk full")
}

func TestSourcePrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewSourcePrinter(&buf)

	ml := &mockLogger{}
	p.SetMessageLogger(ml)

	p.Line("switch (e) {")
	p.Linef("case %s: return \"%s\";", "EPERM", "EPERM")

	want := "switch (e) {\ncase EPERM: return \"EPERM\";\n"
	if buf.String() != want {
		t.Errorf("buf string mismatch: %q", buf.String())
	}
	if ml.String() != "switch (e) {case EPERM: return \"EPERM\";" {
		t.Errorf("logger string mismatch: %q", ml.String())
	}
	if p.Lines() != 2 {
		t.Errorf("expected 2 lines, got %d", p.Lines())
	}
	if p.Err() != nil {
		t.Errorf("unexpected error: %v", p.Err())
	}
}

func TestSourcePrinterStickyError(t *testing.T) {
	fw := &failingWriter{}
	p := NewSourcePrinter(fw)

	p.Line("one")
	p.Line("two")
	p.Line("three")

	if p.Err() == nil || !strings.Contains(p.Err().Error(), "disk full") {
		t.Fatalf("expected sticky write error, got %v", p.Err())
	}
	if fw.calls != 1 {
		t.Errorf("writes after failure should be dropped, writer called %d times", fw.calls)
	}
	if p.Lines() != 1 {
		t.Errorf("expected 1 accepted line, got %d", p.Lines())
	}
}
