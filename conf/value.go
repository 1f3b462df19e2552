package conf

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind identifies the type of a configuration Value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	// KindClass is a class reference: the name of a format or computation
	// implementation, encoded as a string. Stages resolve the name at open
	// time; this package never checks that the named class exists.
	KindClass
)

// String returns the kind name (e.g. "string", "class").
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindClass:
		return "class"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a single configuration entry: a tagged union of string, int,
// float, bool, and class reference. The zero Value is the empty string.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

// StringValue returns a Value holding s.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// IntValue returns a Value holding i.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// FloatValue returns a Value holding f.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// BoolValue returns a Value holding b.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// ClassValue returns a Value holding a class reference (a type name).
func ClassValue(name string) Value { return Value{kind: KindClass, s: name} }

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// String renders the value for display and for location/class concatenation.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}

// Equal reports whether two values have the same kind and the same contents.
func (v Value) Equal(other Value) bool { return v == other }

// goValue returns the natural Go representation for YAML encoding.
func (v Value) goValue() interface{} {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	default:
		// Class references serialize as plain strings; YAML has no tag
		// for them, so Parse reads them back as KindString (GetClass
		// accepts both).
		return v.s
	}
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (interface{}, error) { return v.goValue(), nil }

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are accepted:
// ints, floats, and bools map onto their kinds, everything else is a string.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("conf: value must be a scalar, got %s", yamlKindName(node.Kind))
	}
	switch node.Tag {
	case "!!int":
		i, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return fmt.Errorf("conf: int %q: %w", node.Value, err)
		}
		*v = IntValue(i)
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("conf: float %q: %w", node.Value, err)
		}
		*v = FloatValue(f)
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return fmt.Errorf("conf: bool %q: %w", node.Value, err)
		}
		*v = BoolValue(b)
	default:
		*v = StringValue(node.Value)
	}
	return nil
}

func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// ErrNotSet is returned (wrapped, with the key) by typed getters when the key
// is not present. Absence is usually legitimate: check with Contains or
// errors.Is rather than treating it as fatal.
var ErrNotSet = errors.New("key not set")

// WrongTypeError is returned by typed getters when the key is present but the
// stored value has a different kind. No coercion is attempted.
type WrongTypeError struct {
	Key  string
	Want Kind
	Got  Kind
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("conf: %q is %s, not %s", e.Key, e.Got, e.Want)
}

// IsWrongType reports whether err is (or wraps) a WrongTypeError.
func IsWrongType(err error) bool { return errors.As(err, new(*WrongTypeError)) }
