package mx2

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func TestRTUEncodeDecode(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		packager := &rtuPackager{
			SlaveID: rapid.ByteMax(rtuMaxSlaveID).Draw(t, "SlaveID"),
		}

		pdu := &ProtocolDataUnit{
			FunctionCode: rapid.Byte().Draw(t, "FunctionCode"),
			Data:         rapid.SliceOfN(rapid.Byte(), 0, 200).Draw(t, "Data"),
		}

		raw, err := packager.Encode(pdu)
		if err != nil {
			t.Fatalf("error while encoding: %+v", err)
		}

		dpdu, err := packager.Decode(raw)
		if err != nil {
			t.Fatalf("error while decoding: %+v", err)
		}

		if !cmp.Equal(pdu, dpdu) {
			t.Errorf("invalid pdu: %s", cmp.Diff(pdu, dpdu))
		}
	})
}

func TestRTUDecodeCorrupted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		packager := &rtuPackager{
			SlaveID: rapid.ByteMax(rtuMaxSlaveID).Draw(t, "SlaveID"),
		}

		pdu := &ProtocolDataUnit{
			FunctionCode: rapid.Byte().Draw(t, "FunctionCode"),
			Data:         rapid.SliceOfN(rapid.Byte(), 0, 200).Draw(t, "Data"),
		}

		raw, err := packager.Encode(pdu)
		if err != nil {
			t.Fatalf("error while encoding: %+v", err)
		}

		// A single flipped bit anywhere in the frame must be caught.
		bit := rapid.IntRange(0, len(raw)*8-1).Draw(t, "Bit")
		raw[bit/8] ^= 1 << (bit % 8)

		if _, err := packager.Decode(raw); !errors.Is(err, ErrChecksumMismatch) {
			t.Fatalf("expected ErrChecksumMismatch, actual %v", err)
		}
	})
}
