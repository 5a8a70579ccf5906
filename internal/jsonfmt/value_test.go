package jsonfmt

import "testing"

func TestParse_Kinds(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{`null`, Null},
		{`true`, Bool},
		{`1.25`, Number},
		{`"s"`, String},
		{`[1]`, Array},
		{`{"k": "v"}`, Object},
	}

	for _, tt := range tests {
		v, err := Parse([]byte(tt.input))
		if err != nil {
			t.Errorf("Parse(%s) error: %v", tt.input, err)
			continue
		}
		if v.Kind != tt.want {
			t.Errorf("Parse(%s).Kind = %s, want %s", tt.input, v.Kind, tt.want)
		}
	}
}

func TestParse_ObjectMembersInOrder(t *testing.T) {
	v, err := Parse([]byte(`{"b": 1, "a": [true, null], "c": {"x": "y"}}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := ObjectValue(
		Member{Key: "b", Value: NumberValue(1)},
		Member{Key: "a", Value: ArrayValue(BoolValue(true), NullValue())},
		Member{Key: "c", Value: ObjectValue(Member{Key: "x", Value: StringValue("y")})},
	)
	if !v.Equal(want) {
		t.Errorf("Parse() = %+v, want %+v", v, want)
	}
}

func TestParse_Errors(t *testing.T) {
	inputs := []string{"", "not json", "{", `{"a" 1}`, `[1] [2]`, `1e400`}

	for _, input := range inputs {
		if _, err := Parse([]byte(input)); err == nil {
			t.Errorf("Parse(%q) expected error", input)
		}
	}
}

func TestValue_Equal(t *testing.T) {
	a := ObjectValue(Member{Key: "x", Value: NumberValue(1)}, Member{Key: "y", Value: NumberValue(2)})
	b := ObjectValue(Member{Key: "y", Value: NumberValue(2)}, Member{Key: "x", Value: NumberValue(1)})

	if a.Equal(b) {
		t.Error("values with different member order should not be equal")
	}
	if !a.Equal(a) {
		t.Error("value should equal itself")
	}
	if NumberValue(1).Equal(StringValue("1")) {
		t.Error("different kinds should not be equal")
	}
}
