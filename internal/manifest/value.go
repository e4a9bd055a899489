package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Kind identifies which JSON type a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable JSON value used for manifest keys outside the
// known schema. Numbers keep their original text so nothing is rounded.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []Value
	obj  map[string]Value
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a JSON number literal.
func Number(n json.Number) Value { return Value{kind: KindNumber, num: n} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array wraps a copy of the given elements.
func Array(elems ...Value) Value {
	arr := make([]Value, len(elems))
	copy(arr, elems)
	return Value{kind: KindArray, arr: arr}
}

// Object wraps a copy of the given members.
func Object(members map[string]Value) Value {
	obj := make(map[string]Value, len(members))
	for k, v := range members {
		obj[k] = v
	}
	return Value{kind: KindObject, obj: obj}
}

// ValueOf converts a decoded JSON value into a Value. It accepts everything
// encoding/json produces plus Value itself, Go numeric types, and any slice,
// array or string-keyed map of those, so documents built in code work as
// well as documents read from disk.
func ValueOf(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case json.Number:
		return Number(val), nil
	case float64:
		return floatValue(val)
	case float32:
		return floatValue(float64(val))
	case int:
		return Number(json.Number(strconv.FormatInt(int64(val), 10))), nil
	case int8:
		return Number(json.Number(strconv.FormatInt(int64(val), 10))), nil
	case int16:
		return Number(json.Number(strconv.FormatInt(int64(val), 10))), nil
	case int32:
		return Number(json.Number(strconv.FormatInt(int64(val), 10))), nil
	case int64:
		return Number(json.Number(strconv.FormatInt(val, 10))), nil
	case uint:
		return Number(json.Number(strconv.FormatUint(uint64(val), 10))), nil
	case uint8:
		return Number(json.Number(strconv.FormatUint(uint64(val), 10))), nil
	case uint16:
		return Number(json.Number(strconv.FormatUint(uint64(val), 10))), nil
	case uint32:
		return Number(json.Number(strconv.FormatUint(uint64(val), 10))), nil
	case uint64:
		return Number(json.Number(strconv.FormatUint(val, 10))), nil
	case []any:
		arr := make([]Value, len(val))
		for i, elem := range val {
			ev, err := ValueOf(elem)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			arr[i] = ev
		}
		return Value{kind: KindArray, arr: arr}, nil
	case []string:
		arr := make([]Value, len(val))
		for i, s := range val {
			arr[i] = String(s)
		}
		return Value{kind: KindArray, arr: arr}, nil
	case []Value:
		if val == nil {
			return Null(), nil
		}
		return Array(val...), nil
	case map[string]any:
		obj := make(map[string]Value, len(val))
		for k, elem := range val {
			ev, err := ValueOf(elem)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			obj[k] = ev
		}
		return Value{kind: KindObject, obj: obj}, nil
	case map[string]Value:
		if val == nil {
			return Null(), nil
		}
		return Object(val), nil
	default:
		return reflectValue(reflect.ValueOf(v))
	}
}

// reflectValue handles named scalar types and the remaining slices, arrays
// and string-keyed maps (for example []int or map[string]string). Nil slices
// and maps become null, as they do with encoding/json.
func reflectValue(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(json.Number(strconv.FormatInt(rv.Int(), 10))), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Number(json.Number(strconv.FormatUint(rv.Uint(), 10))), nil
	case reflect.Float32, reflect.Float64:
		return floatValue(rv.Float())
	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}
		return reflectArray(rv)
	case reflect.Array:
		return reflectArray(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, fmt.Errorf("unsupported map key type %s", rv.Type().Key())
		}
		if rv.IsNil() {
			return Null(), nil
		}
		obj := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			ev, err := ValueOf(iter.Value().Interface())
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			obj[k] = ev
		}
		return Value{kind: KindObject, obj: obj}, nil
	default:
		return Value{}, fmt.Errorf("unsupported type %s", rv.Type())
	}
}

func reflectArray(rv reflect.Value) (Value, error) {
	arr := make([]Value, rv.Len())
	for i := range arr {
		ev, err := ValueOf(rv.Index(i).Interface())
		if err != nil {
			return Value{}, fmt.Errorf("index %d: %w", i, err)
		}
		arr[i] = ev
	}
	return Value{kind: KindArray, arr: arr}, nil
}

func floatValue(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("number %v has no JSON representation", f)
	}
	return Number(json.Number(strconv.FormatFloat(f, 'g', -1, 64))), nil
}

// Kind reports the JSON type held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean and true if v is a boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the number literal and true if v is a number.
func (v Value) AsNumber() (json.Number, bool) { return v.num, v.kind == KindNumber }

// AsString returns the string and true if v is a string.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsArray returns a copy of the elements and true if v is an array.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	out := make([]Value, len(v.arr))
	copy(out, v.arr)
	return out, true
}

// AsObject returns a copy of the members and true if v is an object.
func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	out := make(map[string]Value, len(v.obj))
	for k, m := range v.obj {
		out[k] = m
	}
	return out, true
}

// Interface converts v back into the plain Go form encoding/json decodes
// into when UseNumber is set. The result is a fresh copy.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.arr))
		for i, elem := range v.arr {
			out[i] = elem.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, elem := range v.obj {
			out[k] = elem.Interface()
		}
		return out
	default:
		return nil
	}
}

// Equal reports whether v and other hold the same JSON value. Numbers
// compare by their literal text.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.num == other.num
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for k, elem := range v.obj {
			o, ok := other.obj[k]
			if !ok || !elem.Equal(o) {
				return false
			}
		}
		return true
	}
	return false
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ValueOf(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
