package jsonfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Kind identifies which variant a Value holds
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Member is one key/value pair of an object, kept in document order
type Member struct {
	Key   string
	Value Value
}

// Value is a parsed JSON value. Only the fields matching Kind are meaningful.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  float64
	Str     string
	Items   []Value
	Members []Member
}

// Constructors used by callers and tests to build values by hand.

func NullValue() Value            { return Value{Kind: Null} }
func BoolValue(b bool) Value      { return Value{Kind: Bool, Bool: b} }
func NumberValue(f float64) Value { return Value{Kind: Number, Number: f} }
func StringValue(s string) Value  { return Value{Kind: String, Str: s} }
func ArrayValue(items ...Value) Value {
	return Value{Kind: Array, Items: items}
}
func ObjectValue(members ...Member) Value {
	return Value{Kind: Object, Members: members}
}

// Equal reports whether two values are deeply equal, including member order
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case Null:
		return true
	case Bool:
		return v.Bool == other.Bool
	case Number:
		return v.Number == other.Number
	case String:
		return v.Str == other.Str
	case Array:
		if len(v.Items) != len(other.Items) {
			return false
		}
		for i := range v.Items {
			if !v.Items[i].Equal(other.Items[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v.Members) != len(other.Members) {
			return false
		}
		for i := range v.Members {
			if v.Members[i].Key != other.Members[i].Key || !v.Members[i].Value.Equal(other.Members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// Parse decodes raw bytes into a Value, keeping object members in the order
// they appear. Any syntax error, trailing data, or empty input is an error.
func Parse(raw []byte) (Value, error) {
	// encoding/json produces the canonical error descriptions, including
	// trailing garbage after the top-level value
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Value{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("invalid character after top-level value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %s: %w", t, err)
		}
		return NumberValue(f), nil
	case string:
		return StringValue(t), nil
	case json.Delim:
		switch t {
		case '[':
			arr := Value{Kind: Array, Items: []Value{}}
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				arr.Items = append(arr.Items, item)
			}
			if _, err := dec.Token(); err != nil { // ']'
				return Value{}, err
			}
			return arr, nil
		case '{':
			obj := Value{Kind: Object, Members: []Member{}}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("object key is %T, want string", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				obj.Members = append(obj.Members, Member{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // '}'
				return Value{}, err
			}
			return obj, nil
		}
	}

	return Value{}, fmt.Errorf("unexpected token %v", tok)
}
