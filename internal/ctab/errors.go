package ctab

// Err is the generator error code carried by returned errors.
type Err uint32

const (
	OK               Err = 0
	ErrFail          Err = 1
	ErrInputRead     Err = 2
	ErrOutputWrite   Err = 3
	ErrConfigLoad    Err = 4
	ErrConfigInvalid Err = 5
	ErrBadSymbol     Err = 6
	ErrDupSymbol     Err = 7
	ErrBadAlias      Err = 8
	ErrValueRange    Err = 9
	ErrLast          Err = 10
)

type errDesc struct {
	name string
	msg  string
}

var errorCodeDesc = map[Err]errDesc{
	OK:               {"CTAB_OK", "No Error."},
	ErrFail:          {"CTAB_ERR_FAIL", "General failure."},
	ErrInputRead:     {"CTAB_ERR_INPUT_READ", "Unable to read generator input."},
	ErrOutputWrite:   {"CTAB_ERR_OUTPUT_WRITE", "Unable to write generated source."},
	ErrConfigLoad:    {"CTAB_ERR_CONFIG_LOAD", "Configuration file or environment could not be loaded."},
	ErrConfigInvalid: {"CTAB_ERR_CONFIG_INVALID", "Configuration failed validation."},
	ErrBadSymbol:     {"CTAB_ERR_BAD_SYMBOL", "Symbol is not a valid C identifier."},
	ErrDupSymbol:     {"CTAB_ERR_DUP_SYMBOL", "Symbol listed more than once."},
	ErrBadAlias:      {"CTAB_ERR_BAD_ALIAS", "Alias entry does not refer to a listed symbol."},
	ErrValueRange:    {"CTAB_ERR_VALUE_RANGE", "Option value does not fit a C int."},
	ErrLast:          {"CTAB_ERR_LAST", "No error - error code end marker"},
}

// Name returns the canonical CTAB_* name, or "CTAB_ERR_UNKNOWN".
func (e Err) Name() string {
	if d, ok := errorCodeDesc[e]; ok {
		return d.name
	}
	return "CTAB_ERR_UNKNOWN"
}

// Description returns the human readable text for the code.
func (e Err) Description() string {
	if d, ok := errorCodeDesc[e]; ok {
		return d.msg
	}
	return "Unknown error code."
}

// Codes returns every defined code in numeric order, ErrLast excluded.
func Codes() []Err {
	codes := make([]Err, 0, ErrLast)
	for e := OK; e < ErrLast; e++ {
		codes = append(codes, e)
	}
	return codes
}
