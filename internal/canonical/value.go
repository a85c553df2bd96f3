// Package canonical provides the data model for canonical test specifications:
// the closed Value variant for arbitrary JSON data and the Group/Case node tree.
package canonical

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Value is a structured JSON value. The set of implementations is closed:
// Null, Bool, Int, Uint, Float, String, Seq and Map.
type Value interface {
	value()
}

// Null is the JSON null.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Int is a JSON number written without fraction or exponent that fits in int64.
type Int int64

// Uint is an integral JSON number above math.MaxInt64 that fits in uint64.
type Uint uint64

// Float is any other JSON number.
type Float float64

// String is a JSON string.
type String string

// Seq is an ordered JSON array.
type Seq []Value

// Map is a JSON object. Entries keep the order of the source document.
type Map []Entry

// Entry is a single key/value pair of a Map.
type Entry struct {
	Key   string
	Value Value
}

func (Null) value()   {}
func (Bool) value()   {}
func (Int) value()    {}
func (Uint) value()   {}
func (Float) value()  {}
func (String) value() {}
func (Seq) value()    {}
func (Map) value()    {}

// Get returns the value stored under key.
func (m Map) Get(key string) (Value, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (m Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in source order.
func (m Map) Keys() []string {
	keys := make([]string, len(m))
	for i, e := range m {
		keys[i] = e.Key
	}
	return keys
}

// set stores v under key. An existing key keeps its position and takes the
// new value, matching encoding/json's last-wins behavior.
func (m Map) set(key string, v Value) Map {
	for i := range m {
		if m[i].Key == key {
			m[i].Value = v
			return m
		}
	}
	return append(m, Entry{Key: key, Value: v})
}

// ParseValue decodes a single JSON document into a Value.
// Trailing data after the document is an error.
func ParseValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := DecodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, fmt.Errorf("invalid JSON: unexpected data after top-level value")
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return v, nil
}

// DecodeValue reads the next JSON value from dec. The decoder must have
// UseNumber enabled so that integer and float literals can be told apart.
func DecodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("invalid JSON: unexpected end of input")
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return parseNumber(string(t))
	case float64:
		// Only reachable when the decoder was not configured with UseNumber.
		return Float(t), nil
	case json.Delim:
		switch t {
		case '[':
			seq := Seq{}
			for dec.More() {
				v, err := DecodeValue(dec)
				if err != nil {
					return nil, err
				}
				seq = append(seq, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("invalid JSON: %w", err)
			}
			return seq, nil
		case '{':
			m := Map{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("invalid JSON: %w", err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("invalid JSON: object key %v is not a string", keyTok)
				}
				v, err := DecodeValue(dec)
				if err != nil {
					return nil, err
				}
				m = m.set(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("invalid JSON: %w", err)
			}
			return m, nil
		}
	}
	return nil, fmt.Errorf("invalid JSON: unexpected token %v", tok)
}

// parseNumber classifies a JSON number literal.
func parseNumber(text string) (Value, error) {
	if !strings.ContainsAny(text, ".eE") {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Int(i), nil
		}
		if u, err := strconv.ParseUint(text, 10, 64); err == nil {
			return Uint(u), nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("invalid JSON number %q: %w", text, err)
	}
	if math.IsInf(f, 0) {
		return nil, fmt.Errorf("JSON number %q is out of range", text)
	}
	return Float(f), nil
}

// Equal reports whether a and b are the same structured value.
// Int, Uint and Float are distinct shapes even when numerically equal.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Int:
		y, ok := b.(Int)
		return ok && x == y
	case Uint:
		y, ok := b.(Uint)
		return ok && x == y
	case Float:
		y, ok := b.(Float)
		return ok && math.Float64bits(float64(x)) == math.Float64bits(float64(y))
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Seq:
		y, ok := b.(Seq)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Map:
		y, ok := b.(Map)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i].Key != y[i].Key || !Equal(x[i].Value, y[i].Value) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}

// KindName returns a short, human readable name for the shape of v.
func KindName(v Value) string {
	switch v.(type) {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Int, Uint:
		return "integer"
	case Float:
		return "number"
	case String:
		return "string"
	case Seq:
		return "array"
	case Map:
		return "object"
	}
	return "invalid"
}
