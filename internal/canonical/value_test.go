package canonical

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseValue_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{"null", `null`, Null{}},
		{"true", `true`, Bool(true)},
		{"false", `false`, Bool(false)},
		{"integer", `42`, Int(42)},
		{"negative integer", `-7`, Int(-7)},
		{"zero", `0`, Int(0)},
		{"float with fraction", `2.5`, Float(2.5)},
		{"integral float keeps float shape", `2.0`, Float(2)},
		{"exponent", `1e3`, Float(1000)},
		{"above int64", `18446744073709551615`, Uint(math.MaxUint64)},
		{"above uint64 becomes float", `18446744073709551616`, Float(18446744073709551616)},
		{"string", `"hello"`, String("hello")},
		{"escaped string", `"a\"b\\c\né"`, String("a\"b\\c\né")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseValue(%s) error = %v", tt.input, err)
			}
			if !Equal(got, tt.want) {
				t.Errorf("ParseValue(%s) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseValue_MapKeepsSourceOrder(t *testing.T) {
	got, err := ParseValue([]byte(`{"zeta": 1, "alpha": [true, null], "mid": {"b": 2, "a": 1}}`))
	if err != nil {
		t.Fatalf("ParseValue() error = %v", err)
	}

	want := Map{
		{Key: "zeta", Value: Int(1)},
		{Key: "alpha", Value: Seq{Bool(true), Null{}}},
		{Key: "mid", Value: Map{
			{Key: "b", Value: Int(2)},
			{Key: "a", Value: Int(1)},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseValue() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseValue_DuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	got, err := ParseValue([]byte(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatalf("ParseValue() error = %v", err)
	}

	want := Map{{Key: "a", Value: Int(3)}, {Key: "b", Value: Int(2)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseValue() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseValue_EmptyContainers(t *testing.T) {
	got, err := ParseValue([]byte(`[[], {}]`))
	if err != nil {
		t.Fatalf("ParseValue() error = %v", err)
	}

	seq, ok := got.(Seq)
	if !ok || len(seq) != 2 {
		t.Fatalf("ParseValue() = %#v, want 2-element Seq", got)
	}
	if s, ok := seq[0].(Seq); !ok || s == nil || len(s) != 0 {
		t.Errorf("seq[0] = %#v, want empty non-nil Seq", seq[0])
	}
	if m, ok := seq[1].(Map); !ok || m == nil || len(m) != 0 {
		t.Errorf("seq[1] = %#v, want empty non-nil Map", seq[1])
	}
}

func TestParseValue_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty input", ``, "unexpected end of input"},
		{"trailing data", `1 2`, "unexpected data"},
		{"unterminated array", `[1, 2`, "invalid JSON"},
		{"trailing comma", `[1,]`, "invalid JSON"},
		{"out of range number", `1e400`, "out of range"},
		{"bare word", `nope`, "invalid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseValue([]byte(tt.input))
			if err == nil {
				t.Fatalf("ParseValue(%q) expected error", tt.input)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestEqual_DistinguishesNumericShapes(t *testing.T) {
	if Equal(Int(1), Float(1)) {
		t.Error("Equal(Int(1), Float(1)) = true, want false")
	}
	if Equal(Float(0), Float(math.Copysign(0, -1))) {
		t.Error("Equal(0.0, -0.0) = true, want false")
	}
	if Equal(Map{{Key: "a", Value: Int(1)}, {Key: "b", Value: Int(2)}}, Map{{Key: "b", Value: Int(2)}, {Key: "a", Value: Int(1)}}) {
		t.Error("Equal() of maps with different key order = true, want false")
	}
	if !Equal(Seq{Null{}, String("x")}, Seq{Null{}, String("x")}) {
		t.Error("Equal() of identical sequences = false, want true")
	}
}

func TestValue_MatchesEncodingJSON(t *testing.T) {
	input := `{"basket": [1, 2, 2], "nested": {"ok": true, "none": null}, "name": "x", "ratio": 0.25}`

	v, err := ParseValue([]byte(input))
	if err != nil {
		t.Fatalf("ParseValue() error = %v", err)
	}

	var want interface{}
	if err := json.Unmarshal([]byte(input), &want); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, toPlain(v)); diff != "" {
		t.Errorf("toPlain() mismatch (-want +got):\n%s", diff)
	}
}

func TestMap_Accessors(t *testing.T) {
	m := Map{{Key: "b", Value: Int(1)}, {Key: "a", Value: Int(2)}}

	if got := m.Keys(); !cmp.Equal(got, []string{"b", "a"}) {
		t.Errorf("Keys() = %v, want [b a]", got)
	}
	if v, ok := m.Get("a"); !ok || !Equal(v, Int(2)) {
		t.Errorf("Get(a) = %v, %v; want 2, true", v, ok)
	}
	if m.Has("c") {
		t.Error("Has(c) = true, want false")
	}
}

// toPlain converts v into the plain Go representation used by encoding/json
// (map[string]interface{}, []interface{}, float64 for numbers). Map order is lost.
func toPlain(v Value) interface{} {
	switch x := v.(type) {
	case Bool:
		return bool(x)
	case Int:
		return float64(x)
	case Uint:
		return float64(x)
	case Float:
		return float64(x)
	case String:
		return string(x)
	case Seq:
		out := make([]interface{}, len(x))
		for i, item := range x {
			out[i] = toPlain(item)
		}
		return out
	case Map:
		out := make(map[string]interface{}, len(x))
		for _, e := range x {
			out[e.Key] = toPlain(e.Value)
		}
		return out
	}
	return nil
}
