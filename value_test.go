package mx2

import (
	"bytes"
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func TestRegister16Roundtrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.Uint16().Draw(t, "value")
		data := encodeRegister16(value)
		if got := decodeRegister16(data); got != value {
			t.Fatalf("expected %v, actual %v (wire % x)", value, got, data)
		}
	})
}

func TestRegister32Roundtrip(t *testing.T) {
	t.Run("unsigned", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			value := int64(rapid.Uint32().Draw(t, "value"))
			data := encodeRegister32(value)
			if got := decodeRegister32(data, false); got != value {
				t.Fatalf("expected %v, actual %v (wire % x)", value, got, data)
			}
		})
	})
	t.Run("signed", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			value := int64(rapid.Int32().Draw(t, "value"))
			data := encodeRegister32(value)
			if got := decodeRegister32(data, true); got != value {
				t.Fatalf("expected %v, actual %v (wire % x)", value, got, data)
			}
		})
	})
}

func TestRegister32WordOrder(t *testing.T) {
	// High word first: 0x000493E0 (30000, one of the acceleration time
	// examples in datasheet section B-3-10) splits into 0x0004 0x93E0.
	data := encodeRegister32(0x493E0)
	if !bytes.Equal(data, []byte{0x00, 0x04, 0x93, 0xE0}) {
		t.Fatalf("expected % x, actual % x", []byte{0x00, 0x04, 0x93, 0xE0}, data)
	}
	if value := decodeRegister32([]byte{0x00, 0x04, 0x93, 0xE0}, false); value != 0x493E0 {
		t.Fatalf("expected %v, actual %v", 0x493E0, value)
	}
}

func TestCoilEncoding(t *testing.T) {
	if !bytes.Equal(encodeCoil(true), []byte{0xFF, 0x00}) {
		t.Fatalf("coil ON expected ff 00, actual % x", encodeCoil(true))
	}
	if !bytes.Equal(encodeCoil(false), []byte{0x00, 0x00}) {
		t.Fatalf("coil OFF expected 00 00, actual % x", encodeCoil(false))
	}

	on, err := decodeCoil([]byte{0xFF, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if !on {
		t.Fatal("expected coil ON")
	}
	off, err := decodeCoil([]byte{0x00, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if off {
		t.Fatal("expected coil OFF")
	}
}

func TestCoilEncodingRejected(t *testing.T) {
	if _, err := decodeCoil([]byte{0x12, 0x34}); !errors.Is(err, ErrInvalidCoilEncoding) {
		t.Fatalf("expected ErrInvalidCoilEncoding, actual %v", err)
	}
	if _, err := decodeCoil([]byte{0xFF}); !errors.Is(err, ErrInvalidCoilEncoding) {
		t.Fatalf("expected ErrInvalidCoilEncoding, actual %v", err)
	}
}

func TestPackCoils(t *testing.T) {
	tests := []struct {
		values   []bool
		expected []byte
	}{
		// Change data is padded to full words.
		{[]bool{true, true, true, false, true}, []byte{0x17, 0x00}},
		{[]bool{true}, []byte{0x01, 0x00}},
		{make([]bool, 16), []byte{0x00, 0x00}},
		{append(make([]bool, 16), true), []byte{0x00, 0x00, 0x01, 0x00}},
	}
	for _, test := range tests {
		if got := packCoils(test.values); !bytes.Equal(got, test.expected) {
			t.Errorf("packCoils(%v) expected % x, actual % x", test.values, test.expected, got)
		}
	}
}

func TestUnpackCoils(t *testing.T) {
	got := unpackCoils(5, []byte{0x05})
	expected := []bool{true, false, true, false, false}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %v, actual %v", expected, got)
		}
	}
}

func TestPackUnpackCoils(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.Bool(), 1, 31).Draw(t, "values")
		got := unpackCoils(uint16(len(values)), packCoils(values))
		for i := range values {
			if got[i] != values[i] {
				t.Fatalf("expected %v, actual %v", values, got)
			}
		}
	})
}
