package errnogen

import (
	"github.com/samber/oops"

	"ctablegen/internal/ctab"
)

// Row is one entry the constant table compiles to.
type Row struct {
	Value int
	Name  string
}

// Resolution is what the generated source compiles to for one platform.
type Resolution struct {
	Table  []Row
	Lookup map[int]string
}

// Name mirrors the generated lookup function: ok is false where it returns NULL.
func (r Resolution) Name(value int) (string, bool) {
	name, ok := r.Lookup[value]
	return name, ok
}

// Simulate evaluates the emitted guards against a platform's macro values.
// A macro absent from defined is treated as undefined, and as 0 inside #if
// expressions, the way the C preprocessor does.
// A duplicate case value in the lookup switch is returned as an error since
// the generated source would not compile.
func (e *Emitter) Simulate(defined map[string]int) (Resolution, error) {
	res := Resolution{Lookup: make(map[int]string)}

	for _, s := range e.symbols {
		if v, ok := defined[s]; ok {
			res.Table = append(res.Table, Row{Value: v, Name: s})
		}
	}

	for _, s := range e.symbols {
		if !e.caseCompiled(s, defined) {
			continue
		}
		v := defined[s]
		if prev, dup := res.Lookup[v]; dup {
			return Resolution{}, oops.
				In("errnogen").
				Code(ctab.ErrDupSymbol.Name()).
				With("value", v).
				Errorf("duplicate case value %d: %s and %s", v, prev, s)
		}
		res.Lookup[v] = s
	}
	return res, nil
}

func (e *Emitter) caseCompiled(name string, defined map[string]int) bool {
	a, isAlias := e.aliases[name]
	if !isAlias {
		_, ok := defined[name]
		return ok
	}
	// #if A && (A != B)
	v := defined[a.Name]
	return v != 0 && v != defined[a.Of]
}
