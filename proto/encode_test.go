package proto

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/protowire/protoc-gen-wire/wire"
)

// simpleValue is a minimal Value built from a map, used by these tests
// instead of generated struct types.
type simpleValue struct {
	fields    map[string]interface{}
	present   map[string]bool
	oneofs    map[string][2]interface{} // group -> [field, payload]
	extValues map[[2]string]interface{}
}

func newSimpleValue() *simpleValue {
	return &simpleValue{
		fields:    map[string]interface{}{},
		present:   map[string]bool{},
		oneofs:    map[string][2]interface{}{},
		extValues: map[[2]string]interface{}{},
	}
}

func (v *simpleValue) set(name string, val interface{}) *simpleValue {
	v.fields[name] = val
	v.present[name] = true
	return v
}

func (v *simpleValue) setOneof(group, field string, val interface{}) *simpleValue {
	v.oneofs[group] = [2]interface{}{field, val}
	return v
}

func (v *simpleValue) Field(name string) (interface{}, bool) {
	val, ok := v.present[name]
	if !ok {
		return nil, false
	}
	return v.fields[name], val
}

func (v *simpleValue) Oneof(group string) (string, interface{}, bool) {
	b, ok := v.oneofs[group]
	if !ok {
		return "", nil, false
	}
	return b[0].(string), b[1], true
}

func (v *simpleValue) Extension(module, key string) (interface{}, bool) {
	val, ok := v.extValues[[2]string{module, key}]
	return val, ok
}

func intField(name string, tag int, kind Kind) *FieldProps {
	return &FieldProps{Name: name, Tag: wire.Number(tag), Kind: kind}
}

func TestMarshalProto3ScalarDefaults(t *testing.T) {
	mp := Build("Test1", true, []*FieldProps{
		intField("A", 1, KindInt32),
		{Name: "B", Tag: 2, Kind: KindString},
	}, nil, nil)

	v := newSimpleValue().set("A", int32(150)).set("B", "")
	got, err := Marshal(v, mp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{0x08, 0x96, 0x01}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestMarshalProto2NegativeVarint(t *testing.T) {
	mp := Build("Test2", false, []*FieldProps{
		{Name: "X", Tag: 1, Kind: KindInt32, Optional: true},
	}, nil, nil)

	v := newSimpleValue().set("X", int32(-1))
	got, err := Marshal(v, mp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := append([]byte{0x08}, bytes.Repeat([]byte{0xFF}, 9)...)
	want = append(want, 0x01)
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestMarshalProto2RequiredAbsentIsNonFatal(t *testing.T) {
	mp := Build("Test2b", false, []*FieldProps{
		{Name: "X", Tag: 1, Kind: KindInt32, Required: true},
	}, nil, nil)

	v := newSimpleValue()
	got, err := Marshal(v, mp)
	if err == nil {
		t.Fatal("expected a non-fatal required-not-set error, got nil")
	}
	if len(got) != 0 {
		t.Errorf("got % x, want empty (no tag emitted for the unset required field)", got)
	}
}

func TestMarshalPackedRepeatedInt32(t *testing.T) {
	f := intField("Nums", 5, KindInt32)
	f.Repeated = true
	mp := Build("Test3", true, []*FieldProps{f}, nil, nil)

	v := newSimpleValue().set("Nums", []int32{1, 2, 3})
	got, err := Marshal(v, mp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{0x2A, 0x03, 0x01, 0x02, 0x03}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestMarshalSint32ZigzagExamples(t *testing.T) {
	f := intField("S", 1, KindSint32)
	mp := Build("Test4", true, []*FieldProps{f}, nil, nil)

	cases := []struct {
		in   int32
		want []byte
	}{
		{-1, []byte{0x08, 0x01}},
		{2147483647, []byte{0x08, 0xFE, 0xFF, 0xFF, 0xFF, 0x0F}},
	}
	for _, c := range cases {
		v := newSimpleValue().set("S", c.in)
		got, err := Marshal(v, mp)
		if err != nil {
			t.Fatalf("Marshal(%d): %v", c.in, err)
		}
		if !bytes.Equal(got, c.want) {
			t.Errorf("Marshal(%d) = % x, want % x", c.in, got, c.want)
		}
	}
}

func TestMarshalValueWrapperInlining(t *testing.T) {
	wrapperType := Build("MonthValue", true, []*FieldProps{
		{Name: "Value", Tag: 1, Kind: KindEnum, EnumValues: map[string]int32{"JANUARY": 2}},
	}, nil, nil)

	f := &FieldProps{Name: "Month", Tag: 2, Kind: KindMessage, Embedded: true, Wrapper: true, MessageType: wrapperType}
	mp := Build("Test5", true, []*FieldProps{f}, nil, nil)

	v := newSimpleValue().set("Month", "JANUARY")
	got, err := Marshal(v, mp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{0x12, 0x02, 0x08, 0x02}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestMarshalEmbeddedMessage(t *testing.T) {
	inner := Build("Inner", true, []*FieldProps{
		intField("A", 1, KindInt32),
	}, nil, nil)
	f := &FieldProps{Name: "In", Tag: 1, Kind: KindMessage, Embedded: true, MessageType: inner}
	mp := Build("Outer", true, []*FieldProps{f}, nil, nil)

	innerVal := newSimpleValue().set("A", int32(5))
	v := newSimpleValue().set("In", innerVal)

	got, err := Marshal(v, mp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{0x0A, 0x02, 0x08, 0x05}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestMarshalMapFieldDeterministic(t *testing.T) {
	entry := Build("Entry", true, []*FieldProps{
		{Name: "Key", Tag: 1, Kind: KindString},
		{Name: "Value", Tag: 2, Kind: KindInt32},
	}, nil, nil)
	f := &FieldProps{Name: "M", Tag: 1, Kind: KindMessage, Embedded: true, Map: true, MessageType: entry}
	mp := Build("Outer", true, []*FieldProps{f}, nil, nil)

	m := map[interface{}]interface{}{"b": int32(2), "a": int32(1), "c": int32(3)}
	v := newSimpleValue().set("M", m)

	got1, err := Marshal(v, mp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got2, err := Marshal(v, mp)
	if err != nil {
		t.Fatalf("Marshal (again): %v", err)
	}
	if diff := cmp.Diff(got1, got2); diff != "" {
		t.Errorf("map encoding not deterministic across calls (-first +second):\n%s", diff)
	}
	want := []byte{
		0x0A, 0x05, 0x0A, 0x01, 'a', 0x10, 0x01,
		0x0A, 0x05, 0x0A, 0x01, 'b', 0x10, 0x02,
		0x0A, 0x05, 0x0A, 0x01, 'c', 0x10, 0x03,
	}
	if !bytes.Equal(got1, want) {
		t.Errorf("got % x, want % x", got1, want)
	}
}

func TestMarshalTypeEncodeErrorOutOfRange(t *testing.T) {
	f := intField("A", 1, KindInt32)
	mp := Build("Test6", true, []*FieldProps{f}, nil, nil)

	v := newSimpleValue().set("A", int64(1) << 40)
	_, err := Marshal(v, mp)
	if err == nil {
		t.Fatal("expected TypeEncodeError, got nil")
	}
	if _, ok := err.(*TypeEncodeError); !ok {
		t.Fatalf("expected *TypeEncodeError, got %T: %v", err, err)
	}
}

func TestMarshalEncodeErrorWrongOneofBranch(t *testing.T) {
	other := &FieldProps{Name: "B", Tag: 2, Kind: KindInt32, OneofGroup: 2}
	a := &FieldProps{Name: "A", Tag: 1, Kind: KindInt32, OneofGroup: 1}
	mp := Build("Test7", true, []*FieldProps{a, other}, []OneofGroup{{Name: "choice"}, {Name: "other"}}, nil)

	v := newSimpleValue().setOneof("choice", "B", int32(1))
	_, err := Marshal(v, mp)
	if err == nil {
		t.Fatal("expected EncodeError, got nil")
	}
	if _, ok := err.(*EncodeError); !ok {
		t.Fatalf("expected *EncodeError, got %T: %v", err, err)
	}
}

func TestMarshalProto3OneofScalarDefaultStillEmitted(t *testing.T) {
	a := &FieldProps{Name: "A", Tag: 1, Kind: KindInt32, OneofGroup: 1}
	mp := Build("Test8", true, []*FieldProps{a}, []OneofGroup{{Name: "choice"}}, nil)

	v := newSimpleValue().setOneof("choice", "A", int32(0))
	got, err := Marshal(v, mp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{0x08, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}
