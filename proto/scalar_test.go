package proto

import (
	"bytes"
	"testing"
)

func scalarField(kind Kind) *FieldProps {
	return &FieldProps{Name: "F", Tag: 1, Kind: kind}
}

func TestEncodeScalarInt32Range(t *testing.T) {
	f := scalarField(KindInt32)
	if _, err := encodeScalar(nil, "S", "F", f, int64(1)<<40); err == nil {
		t.Fatal("expected out-of-range error")
	}
	got, err := encodeScalar(nil, "S", "F", f, int32(5))
	if err != nil {
		t.Fatalf("encodeScalar: %v", err)
	}
	if !bytes.Equal(got, []byte{0x05}) {
		t.Errorf("got % x, want % x", got, []byte{0x05})
	}
}

func TestEncodeScalarUint32Range(t *testing.T) {
	f := scalarField(KindUint32)
	if _, err := encodeScalar(nil, "S", "F", f, uint64(1)<<40); err == nil {
		t.Fatal("expected out-of-range error")
	}
	if _, err := encodeScalar(nil, "S", "F", f, int64(-1)); err == nil {
		t.Fatal("expected error for negative value")
	}
}

func TestEncodeScalarBool(t *testing.T) {
	f := scalarField(KindBool)
	got, err := encodeScalar(nil, "S", "F", f, true)
	if err != nil || !bytes.Equal(got, []byte{0x01}) {
		t.Errorf("encodeScalar(true) = % x, %v", got, err)
	}
	got, err = encodeScalar(nil, "S", "F", f, false)
	if err != nil || !bytes.Equal(got, []byte{0x00}) {
		t.Errorf("encodeScalar(false) = % x, %v", got, err)
	}
}

func TestEncodeScalarEnumUnknownSymbol(t *testing.T) {
	f := scalarField(KindEnum)
	f.EnumValues = map[string]int32{"A": 1}
	if _, err := encodeScalar(nil, "S", "F", f, "NOT_A_VALUE"); err == nil {
		t.Fatal("expected error for unknown enum symbol")
	}
	got, err := encodeScalar(nil, "S", "F", f, "A")
	if err != nil || !bytes.Equal(got, []byte{0x01}) {
		t.Errorf("encodeScalar(A) = % x, %v", got, err)
	}
}

func TestEncodeScalarStringLengthPrefixed(t *testing.T) {
	f := scalarField(KindString)
	got, err := encodeScalar(nil, "S", "F", f, "hi")
	if err != nil {
		t.Fatalf("encodeScalar: %v", err)
	}
	want := []byte{0x02, 'h', 'i'}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestEncodeScalarBytesLengthPrefixed(t *testing.T) {
	f := scalarField(KindBytes)
	got, err := encodeScalar(nil, "S", "F", f, []byte{0xDE, 0xAD})
	if err != nil {
		t.Fatalf("encodeScalar: %v", err)
	}
	want := []byte{0x02, 0xDE, 0xAD}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestEncodeScalarWrongGoType(t *testing.T) {
	f := scalarField(KindString)
	if _, err := encodeScalar(nil, "S", "F", f, 42); err == nil {
		t.Fatal("expected error encoding an int as a string field")
	}
}

func TestEncodeScalarFixed64(t *testing.T) {
	f := scalarField(KindFixed64)
	got, err := encodeScalar(nil, "S", "F", f, uint64(1))
	if err != nil {
		t.Fatalf("encodeScalar: %v", err)
	}
	want := []byte{0x01, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}
