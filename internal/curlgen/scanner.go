package curlgen

import (
	"math"
	"regexp"
	"strconv"

	"github.com/samber/oops"

	"ctablegen/internal/ctab"
)

// cinitPattern matches CINIT(NAME, TAG, NUMBER) the way curl.h spells it.
// Tags containing an underscore (OFF_T) do not match.
var cinitPattern = regexp.MustCompile(`CINIT.([A-Z_]+), *([A-Z]+), *([0-9]+)`)

// MaxBase is the largest base number whose value still fits the C int the
// classifier switches on, whatever the tag offset.
const MaxBase = math.MaxInt32 - ctab.FunctionPointOffset

// Scan calls fn for every CINIT invocation in text, in text order.
// Scanning stops at the first error returned by fn, or at a base number
// above MaxBase.
func Scan(text string, fn func(ctab.Option) error) error {
	for _, m := range cinitPattern.FindAllStringSubmatch(text, -1) {
		base, err := strconv.ParseInt(m[3], 10, 64)
		if err != nil || base > MaxBase {
			return oops.
				In("curlgen").
				Tags("scanner").
				Code(ctab.ErrValueRange.Name()).
				With("option", m[1]).
				Errorf("CINIT(%s) base %s exceeds %d", m[1], m[3], MaxBase)
		}
		opt := ctab.Option{
			Name:    m[1],
			TagName: m[2],
			Tag:     ctab.ParseTypeTag(m[2]),
			Base:    int(base),
		}
		if err := fn(opt); err != nil {
			return err
		}
	}
	return nil
}
