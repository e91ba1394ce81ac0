// Package ctab holds the value types shared by the C table generators.
package ctab

import "regexp"

var cIdentPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsCIdent reports whether s can be used as a C identifier.
func IsCIdent(s string) bool { return cIdentPattern.MatchString(s) }

// TypeTag classifies a curl option by the argument type it accepts.
// The numeric value is the code returned by the generated classifier.
type TypeTag int

const (
	TagUnknown       TypeTag = -1
	TagLong          TypeTag = 0
	TagObjectPoint   TypeTag = 1
	TagFunctionPoint TypeTag = 2
)

// Option value offsets applied on top of the base number in the header.
const (
	ObjectPointOffset   = 10000
	FunctionPointOffset = 20000
)

// KnownTags lists the classified tags in classifier emission order.
var KnownTags = []TypeTag{TagLong, TagObjectPoint, TagFunctionPoint}

// ParseTypeTag maps the tag spelling used in CINIT invocations to a TypeTag.
func ParseTypeTag(s string) TypeTag {
	switch s {
	case "LONG":
		return TagLong
	case "OBJECTPOINT":
		return TagObjectPoint
	case "FUNCTIONPOINT":
		return TagFunctionPoint
	default:
		return TagUnknown
	}
}

func (t TypeTag) String() string {
	switch t {
	case TagLong:
		return "LONG"
	case TagObjectPoint:
		return "OBJECTPOINT"
	case TagFunctionPoint:
		return "FUNCTIONPOINT"
	default:
		return "UNKNOWN"
	}
}

// Offset returns the amount added to an option's base number.
func (t TypeTag) Offset() int {
	switch t {
	case TagObjectPoint:
		return ObjectPointOffset
	case TagFunctionPoint:
		return FunctionPointOffset
	default:
		return 0
	}
}

// Code is the classifier return value for the tag, -1 when unclassified.
func (t TypeTag) Code() int { return int(t) }

// IsKnown reports whether the tag takes part in classification.
func (t TypeTag) IsKnown() bool {
	return t == TagLong || t == TagObjectPoint || t == TagFunctionPoint
}

// Option is one CINIT(name, tag, base) match from a curl header.
type Option struct {
	Name    string  // option name without prefix, e.g. URL
	TagName string  // tag exactly as spelled in the header
	Tag     TypeTag // parsed tag
	Base    int     // base number from the header
}

// Value is the option constant after the tag offset is applied.
func (o Option) Value() int { return o.Base + o.Tag.Offset() }

// Alias marks an errno symbol that some platforms define with the same value
// as another listed symbol. The lookup case for Name is only compiled when
// the two values differ.
type Alias struct {
	Name string
	Of   string
}
