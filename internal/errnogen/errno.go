// Package errnogen emits the errno constant table and the errno2name
// reverse lookup as C source.
//
// Every symbol is wrapped in a preprocessor guard so the output compiles on
// platforms that lack some of the macros. Symbols listed as aliases get a
// value-comparing guard on their lookup case, which keeps the switch free of
// duplicate case labels where the alias and its target share a value.
package errnogen

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/samber/oops"

	"ctablegen/common"
	"ctablegen/internal/ctab"
	"ctablegen/internal/printers"
)

const (
	DefaultTableName = "errno_constants"
	DefaultFuncName  = "errno2name"
)

// Config selects the symbols and the C names used in the output.
// Empty fields fall back to the package defaults.
type Config struct {
	Symbols   []string
	Aliases   []ctab.Alias
	TableName string
	FuncName  string
	Logger    common.Logger
}

// Stats summarises one emission.
type Stats struct {
	Symbols     int // guarded blocks per artifact
	AliasGuards int // lookup cases emitted with an alias guard
	Lines       int
}

// Emitter writes the errno table and lookup function.
type Emitter struct {
	symbols   []string
	aliases   map[string]ctab.Alias
	tableName string
	funcName  string
	logger    common.Logger
}

// NewEmitter validates cfg and returns an Emitter for it.
func NewEmitter(cfg Config) (*Emitter, error) {
	errorb := oops.
		In("errnogen").
		Tags("constructor")

	symbols := cfg.Symbols
	if len(symbols) == 0 {
		symbols = DefaultSymbols
	}
	aliases := cfg.Aliases
	if aliases == nil {
		// defaults apply only where both names are listed
		aliases = lo.Filter(DefaultAliases, func(a ctab.Alias, _ int) bool {
			return lo.Contains(symbols, a.Name) && lo.Contains(symbols, a.Of)
		})
	}
	tableName := lo.Ternary(cfg.TableName == "", DefaultTableName, cfg.TableName)
	funcName := lo.Ternary(cfg.FuncName == "", DefaultFuncName, cfg.FuncName)
	logger := cfg.Logger
	if logger == nil {
		logger = common.NewNoOpLogger()
	}

	for _, name := range []string{tableName, funcName} {
		if !ctab.IsCIdent(name) {
			return nil, errorb.
				Code(ctab.ErrBadSymbol.Name()).
				Errorf("output name %q is not a C identifier", name)
		}
	}
	for _, s := range symbols {
		if !ctab.IsCIdent(s) {
			return nil, errorb.
				Code(ctab.ErrBadSymbol.Name()).
				Errorf("symbol %q is not a C identifier", s)
		}
	}
	if dups := lo.FindDuplicates(symbols); len(dups) > 0 {
		return nil, errorb.
			Code(ctab.ErrDupSymbol.Name()).
			With("duplicates", dups).
			Errorf("symbols listed more than once: %v", dups)
	}

	for _, a := range aliases {
		switch {
		case !ctab.IsCIdent(a.Name) || !ctab.IsCIdent(a.Of):
			return nil, errorb.
				Code(ctab.ErrBadSymbol.Name()).
				Errorf("alias %s -> %s is not a pair of C identifiers", a.Name, a.Of)
		case a.Name == a.Of:
			return nil, errorb.
				Code(ctab.ErrBadAlias.Name()).
				Errorf("alias %s refers to itself", a.Name)
		case !lo.Contains(symbols, a.Name) || !lo.Contains(symbols, a.Of):
			return nil, errorb.
				Code(ctab.ErrBadAlias.Name()).
				Errorf("alias %s -> %s names a symbol that is not listed", a.Name, a.Of)
		}
	}
	byName := lo.KeyBy(aliases, func(a ctab.Alias) string { return a.Name })
	if len(byName) != len(aliases) {
		return nil, errorb.
			Code(ctab.ErrBadAlias.Name()).
			Errorf("alias table lists a symbol more than once")
	}

	return &Emitter{
		symbols:   symbols,
		aliases:   byName,
		tableName: tableName,
		funcName:  funcName,
		logger:    logger,
	}, nil
}

// CaseGuard returns the preprocessor line opening the lookup case of name.
func (e *Emitter) CaseGuard(name string) string {
	if a, ok := e.aliases[name]; ok {
		return fmt.Sprintf("#if %s && (%s != %s)", a.Name, a.Name, a.Of)
	}
	return "#ifdef " + name
}

// Emit writes the constant table followed by the lookup function.
func (e *Emitter) Emit(w io.Writer) (Stats, error) {
	p := printers.NewSourcePrinter(w)
	p.SetMessageLogger(e.logger)

	e.writeTable(p)
	guards := e.writeLookup(p)

	if err := p.Err(); err != nil {
		return Stats{}, oops.
			In("errnogen").
			Code(ctab.ErrOutputWrite.Name()).
			Wrapf(err, "failed to write errno source")
	}

	stats := Stats{
		Symbols:     len(e.symbols),
		AliasGuards: guards,
		Lines:       p.Lines(),
	}
	e.logger.Logf(common.SeverityInfo, "errno source emitted: %d symbols, %d alias guards, %d lines",
		stats.Symbols, stats.AliasGuards, stats.Lines)
	return stats, nil
}

func (e *Emitter) writeTable(p *printers.SourcePrinter) {
	p.Linef("static JSConstDoubleSpec %s[] = {", e.tableName)
	for _, s := range e.symbols {
		p.Line("#ifdef " + s)
		p.Linef("{%s, \"%s\", 0,{0,0,0}},", s, s)
		p.Line("#endif")
	}
	p.Line("{0,0,0,{0,0,0}}")
	p.Line("};")
}

func (e *Emitter) writeLookup(p *printers.SourcePrinter) int {
	guards := 0
	p.Linef("static const char* %s(int e) {", e.funcName)
	p.Line("switch (e) {")
	for _, s := range e.symbols {
		if _, ok := e.aliases[s]; ok {
			guards++
		}
		p.Line(e.CaseGuard(s))
		p.Linef("case %s: return \"%s\";", s, s)
		p.Line("#endif")
	}
	p.Line("default: return NULL;")
	p.Line("}")
	p.Line("}")
	return guards
}
