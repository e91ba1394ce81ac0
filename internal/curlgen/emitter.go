// Package curlgen extracts CINIT option declarations from a curl header and
// emits the option constant table and the option_expected_type classifier.
package curlgen

import (
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/oops"

	"ctablegen/common"
	"ctablegen/internal/ctab"
	"ctablegen/internal/printers"
)

const (
	DefaultPrefix    = "CURLOPT_"
	DefaultTableName = "easycurl_options"
	DefaultFuncName  = "option_expected_type"
	DefaultFlags     = "JSPROP_READONLY | JSPROP_PERMANENT | JSPROP_ENUMERATE"
)

// Config selects the C names used in the output.
type Config struct {
	Prefix    string
	TableName string
	FuncName  string
	Flags     string
	TableOnly bool // skip the classifier function
	Logger    common.Logger
}

// Result records what one emission produced.
type Result struct {
	Prefix       string
	Options      []ctab.Option // table rows in emission order
	Classes      map[ctab.TypeTag][]string
	Unclassified []string // rows whose tag is not one of the known tags
	Duplicates   []string // names dropped because they were already emitted
	Lines        int
}

// ExpectedType returns the code the generated classifier yields for name,
// which may be given with or without the option prefix.
func (r *Result) ExpectedType(name string) int {
	name = strings.TrimPrefix(name, r.Prefix)
	for _, tag := range ctab.KnownTags {
		if lo.Contains(r.Classes[tag], name) {
			return tag.Code()
		}
	}
	return ctab.TagUnknown.Code()
}

// Option returns the emitted row for name.
func (r *Result) Option(name string) (ctab.Option, bool) {
	name = strings.TrimPrefix(name, r.Prefix)
	return lo.Find(r.Options, func(o ctab.Option) bool { return o.Name == name })
}

// Emitter writes the curl option table and classifier.
type Emitter struct {
	cfg    Config
	logger common.Logger
}

// NewEmitter fills defaults into cfg and checks the output names.
func NewEmitter(cfg Config) (*Emitter, error) {
	cfg.Prefix = lo.Ternary(cfg.Prefix == "", DefaultPrefix, cfg.Prefix)
	cfg.TableName = lo.Ternary(cfg.TableName == "", DefaultTableName, cfg.TableName)
	cfg.FuncName = lo.Ternary(cfg.FuncName == "", DefaultFuncName, cfg.FuncName)
	cfg.Flags = lo.Ternary(strings.TrimSpace(cfg.Flags) == "", DefaultFlags, cfg.Flags)

	for _, name := range []string{cfg.Prefix, cfg.TableName, cfg.FuncName} {
		if !ctab.IsCIdent(name) {
			return nil, oops.
				In("curlgen").
				Tags("constructor").
				Code(ctab.ErrBadSymbol.Name()).
				Errorf("output name %q is not a C identifier", name)
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = common.NewNoOpLogger()
	}
	return &Emitter{cfg: cfg, logger: logger}, nil
}

// Emit scans text and writes the table rows as matches are found, then the
// table terminator and, unless TableOnly is set, the classifier.
// Text without any match yields an empty but well formed table.
func (e *Emitter) Emit(w io.Writer, text string) (*Result, error) {
	errorb := oops.In("curlgen")

	p := printers.NewSourcePrinter(w)
	p.SetMessageLogger(e.logger)
	res := &Result{
		Prefix:  e.cfg.Prefix,
		Classes: make(map[ctab.TypeTag][]string),
	}
	seen := make(map[string]struct{})

	p.Linef("static JSConstDoubleSpec %s[] = {", e.cfg.TableName)
	err := Scan(text, func(opt ctab.Option) error {
		if _, dup := seen[opt.Name]; dup {
			e.logger.Logf(common.SeverityWarning, "duplicate option %s%s (%s, %d) skipped",
				e.cfg.Prefix, opt.Name, opt.TagName, opt.Base)
			res.Duplicates = append(res.Duplicates, opt.Name)
			return nil
		}
		seen[opt.Name] = struct{}{}

		if opt.Tag.IsKnown() {
			res.Classes[opt.Tag] = append(res.Classes[opt.Tag], opt.Name)
		} else {
			e.logger.Logf(common.SeverityWarning, "option %s%s has unknown type %s, left unclassified",
				e.cfg.Prefix, opt.Name, opt.TagName)
			res.Unclassified = append(res.Unclassified, opt.Name)
		}
		res.Options = append(res.Options, opt)

		p.Linef("{%d, \"%s%s\", %s, {0,0,0}},", opt.Value(), e.cfg.Prefix, opt.Name, e.cfg.Flags)
		return p.Err()
	})
	if perr := p.Err(); perr != nil {
		return nil, errorb.
			Code(ctab.ErrOutputWrite.Name()).
			Wrapf(perr, "failed to write curl option table")
	}
	if err != nil {
		// carries ErrValueRange from the scanner
		return nil, err
	}
	p.Line("{0,0,0,{0,0,0}}")
	p.Line("};")

	if !e.cfg.TableOnly {
		e.writeClassifier(p, res)
	}

	if err := p.Err(); err != nil {
		return nil, errorb.
			Code(ctab.ErrOutputWrite.Name()).
			Wrapf(err, "failed to write curl option source")
	}
	res.Lines = p.Lines()

	e.logger.Logf(common.SeverityInfo, "curl source emitted: %d options (%d long, %d object, %d function, %d unclassified, %d duplicates)",
		len(res.Options),
		len(res.Classes[ctab.TagLong]),
		len(res.Classes[ctab.TagObjectPoint]),
		len(res.Classes[ctab.TagFunctionPoint]),
		len(res.Unclassified),
		len(res.Duplicates))
	return res, nil
}

func (e *Emitter) writeClassifier(p *printers.SourcePrinter, res *Result) {
	p.Linef("int %s(int opt) {", e.cfg.FuncName)
	p.Line("switch (opt) {")
	for _, tag := range ctab.KnownTags {
		for _, name := range res.Classes[tag] {
			p.Linef("case %s%s: ", e.cfg.Prefix, name)
		}
		p.Linef("return %d;", tag.Code())
	}
	p.Line("default: return -1;")
	p.Line("}")
	p.Line("}")
}
