// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package mx2

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestRTUEncoding(t *testing.T) {
	packager := rtuPackager{}
	packager.SlaveID = 8
	pdu := ProtocolDataUnit{}
	pdu.FunctionCode = FuncCodeReadCoils
	pdu.Data = []byte{0, 6, 0, 5}

	adu, err := packager.Encode(&pdu)
	if err != nil {
		t.Fatal(err)
	}

	// Read coil status example from datasheet section B-3-5.
	expected := []byte{0x08, 0x01, 0x00, 0x06, 0x00, 0x05, 0x1C, 0x91}
	if !bytes.Equal(expected, adu) {
		t.Fatalf("Expected %v, actual %v", expected, adu)
	}
}

func TestRTUEncodingSlaveIDOutOfRange(t *testing.T) {
	packager := rtuPackager{}
	packager.SlaveID = rtuMaxSlaveID + 1
	pdu := ProtocolDataUnit{FunctionCode: FuncCodeReadCoils, Data: []byte{0, 6, 0, 5}}

	if _, err := packager.Encode(&pdu); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, actual %v", err)
	}
}

func TestRTUEncodingOversizedRequest(t *testing.T) {
	packager := rtuPackager{}
	packager.SlaveID = 1
	pdu := ProtocolDataUnit{FunctionCode: FuncCodeWriteMultipleRegisters, Data: make([]byte, rtuMaxSize-3)}

	if _, err := packager.Encode(&pdu); !errors.Is(err, ErrInvalidRequestSize) {
		t.Fatalf("expected ErrInvalidRequestSize, actual %v", err)
	}
}

func TestRTUDecoding(t *testing.T) {
	packager := rtuPackager{}
	adu := []byte{0x08, 0x01, 0x01, 0x05, 0x92, 0x17}

	pdu, err := packager.Decode(adu)
	if err != nil {
		t.Fatal(err)
	}

	if pdu.FunctionCode != FuncCodeReadCoils {
		t.Fatalf("Function code: expected %v, actual %v", FuncCodeReadCoils, pdu.FunctionCode)
	}
	expected := []byte{0x01, 0x05}
	if !bytes.Equal(expected, pdu.Data) {
		t.Fatalf("Data: expected %v, actual %v", expected, pdu.Data)
	}
}

func TestRTUDecodingChecksumMismatch(t *testing.T) {
	packager := rtuPackager{}
	adu := []byte{0x08, 0x01, 0x01, 0x05, 0x92, 0x18}

	if _, err := packager.Decode(adu); !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("expected ErrChecksumMismatch, actual %v", err)
	}
}

func TestRTUDecodingFrameTooShort(t *testing.T) {
	packager := rtuPackager{}

	if _, err := packager.Decode([]byte{0x08, 0x01, 0x92}); !errors.Is(err, ErrFrameTooShort) {
		t.Fatalf("expected ErrFrameTooShort, actual %v", err)
	}
}

func TestRTUVerify(t *testing.T) {
	packager := rtuPackager{}
	request := []byte{0x08, 0x01, 0x00, 0x06, 0x00, 0x05, 0x1C, 0x91}

	if err := packager.Verify(request, []byte{0x08, 0x01, 0x01, 0x05, 0x92, 0x17}); err != nil {
		t.Fatal(err)
	}
	if err := packager.Verify(request, []byte{0x09, 0x01, 0x01, 0x05, 0x92, 0x17}); !errors.Is(err, ErrUnexpectedEcho) {
		t.Fatalf("expected ErrUnexpectedEcho, actual %v", err)
	}
	if err := packager.Verify(request, []byte{0x08, 0x01}); !errors.Is(err, ErrFrameTooShort) {
		t.Fatalf("expected ErrFrameTooShort, actual %v", err)
	}
}

func TestInvalidLengthError_Error(t *testing.T) {
	// should not explode
	_ = (&InvalidLengthError{length: 42}).Error()
}

func TestReadIncrementally(t *testing.T) {
	deadline := time.Now().Add(time.Second)

	t.Run("read response", func(t *testing.T) {
		frame := []byte{0x08, 0x01, 0x01, 0x05, 0x92, 0x17}
		got, err := readIncrementally(0x08, FuncCodeReadCoils, bytes.NewReader(frame), deadline)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(frame, got) {
			t.Fatalf("Expected %v, actual %v", frame, got)
		}
	})

	t.Run("leading noise", func(t *testing.T) {
		frame := []byte{0x08, 0x01, 0x01, 0x05, 0x92, 0x17}
		got, err := readIncrementally(0x08, FuncCodeReadCoils, bytes.NewReader(append([]byte{0xFF, 0x42}, frame...)), deadline)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(frame, got) {
			t.Fatalf("Expected %v, actual %v", frame, got)
		}
	})

	t.Run("write echo", func(t *testing.T) {
		frame := []byte{0x08, 0x05, 0x00, 0x00, 0xFF, 0x00, 0x8C, 0xA3}
		got, err := readIncrementally(0x08, FuncCodeWriteSingleCoil, bytes.NewReader(frame), deadline)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(frame, got) {
			t.Fatalf("Expected %v, actual %v", frame, got)
		}
	})

	t.Run("loopback echo", func(t *testing.T) {
		frame := []byte{0x01, 0x08, 0x00, 0x00, 0x12, 0x34, 0xED, 0x7C}
		got, err := readIncrementally(0x01, FuncCodeLoopbackTest, bytes.NewReader(frame), deadline)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(frame, got) {
			t.Fatalf("Expected %v, actual %v", frame, got)
		}
	})

	t.Run("exception", func(t *testing.T) {
		frame := []byte{0x01, 0x83, 0x02, 0xC0, 0xF1}
		got, err := readIncrementally(0x01, FuncCodeReadHoldingRegisters, bytes.NewReader(frame), deadline)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(frame, got) {
			t.Fatalf("Expected %v, actual %v", frame, got)
		}
	})

	t.Run("zero length byte", func(t *testing.T) {
		frame := []byte{0x01, 0x03, 0x00, 0x00, 0x00}
		_, err := readIncrementally(0x01, FuncCodeReadHoldingRegisters, bytes.NewReader(frame), deadline)
		var lengthErr *InvalidLengthError
		if !errors.As(err, &lengthErr) {
			t.Fatalf("expected InvalidLengthError, actual %v", err)
		}
	})

	t.Run("oversized length byte", func(t *testing.T) {
		frame := []byte{0x01, 0x03, 0xFF, 0x00, 0x00}
		_, err := readIncrementally(0x01, FuncCodeReadHoldingRegisters, bytes.NewReader(frame), deadline)
		var lengthErr *InvalidLengthError
		if !errors.As(err, &lengthErr) {
			t.Fatalf("expected InvalidLengthError, actual %v", err)
		}
	})

	t.Run("unhandled function code", func(t *testing.T) {
		frame := []byte{0x01, 0x02, 0x01, 0x00}
		if _, err := readIncrementally(0x01, 0x02, bytes.NewReader(frame), deadline); err == nil {
			t.Fatal("expected an error for an unhandled function code")
		}
	})

	t.Run("past deadline", func(t *testing.T) {
		past := time.Now().Add(-time.Millisecond)
		_, err := readIncrementally(0x01, FuncCodeReadCoils, bytes.NewReader(nil), past)
		if !errors.Is(err, ErrTimeout) {
			t.Fatalf("expected ErrTimeout, actual %v", err)
		}
	})
}

func TestCalculateResponseLength(t *testing.T) {
	tests := []struct {
		adu      []byte
		expected int
	}{
		// 1+1+1+ceil(5/8)+2
		{[]byte{0x08, FuncCodeReadCoils, 0x00, 0x06, 0x00, 0x05, 0x1C, 0x91}, 6},
		// 1+1+1+2+2
		{[]byte{0x08, FuncCodeReadCoils, 0x00, 0x06, 0x00, 0x10, 0x00, 0x00}, 7},
		// 1+1+1+2*2+2
		{[]byte{0x01, FuncCodeReadHoldingRegisters, 0x10, 0x00, 0x00, 0x02, 0xC0, 0xCB}, 9},
		// read quantity governs the response size
		{[]byte{0x01, FuncCodeReadWriteMultipleRegisters, 0x10, 0x00, 0x00, 0x02, 0x00, 0x00}, 9},
		// echo responses are fixed size
		{[]byte{0x08, FuncCodeWriteSingleCoil, 0x00, 0x00, 0xFF, 0x00, 0x8C, 0xA3}, 8},
		{[]byte{0x08, FuncCodeWriteSingleRegister, 0x10, 0x28, 0x01, 0xF4, 0x0D, 0x8C}, 8},
		{[]byte{0x08, FuncCodeWriteMultipleCoils, 0x00, 0x06, 0x00, 0x05, 0x02, 0x17}, 8},
		{[]byte{0x08, FuncCodeWriteMultipleRegisters, 0x10, 0x13, 0x00, 0x02, 0x04, 0x00}, 8},
		{[]byte{0x01, FuncCodeLoopbackTest, 0x00, 0x00, 0x12, 0x34, 0xED, 0x7C}, 8},
	}
	for _, test := range tests {
		if got := calculateResponseLength(test.adu); got != test.expected {
			t.Errorf("function code %#02x: expected %v, actual %v", test.adu[1], test.expected, got)
		}
	}
}

type fakePort struct {
	request  bytes.Buffer
	response bytes.Reader
	closed   bool
}

func (p *fakePort) Read(b []byte) (int, error)  { return p.response.Read(b) }
func (p *fakePort) Write(b []byte) (int, error) { return p.request.Write(b) }
func (p *fakePort) Close() error                { p.closed = true; return nil }

func TestRTUTransporter(t *testing.T) {
	port := &fakePort{response: *bytes.NewReader([]byte{0x08, 0x01, 0x01, 0x05, 0x92, 0x17})}
	transporter := rtuSerialTransporter{}
	transporter.port = port
	transporter.Config.Timeout = time.Second

	request := []byte{0x08, 0x01, 0x00, 0x06, 0x00, 0x05, 0x1C, 0x91}
	response, err := transporter.Send(request)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(request, port.request.Bytes()) {
		t.Fatalf("request on the wire: expected % x, actual % x", request, port.request.Bytes())
	}
	expected := []byte{0x08, 0x01, 0x01, 0x05, 0x92, 0x17}
	if !bytes.Equal(expected, response) {
		t.Fatalf("Expected %v, actual %v", expected, response)
	}
}

func TestRTUTransporterBroadcast(t *testing.T) {
	packager := rtuPackager{}
	packager.SetSlave(BroadcastID)
	request, err := packager.Encode(&ProtocolDataUnit{
		FunctionCode: FuncCodeWriteSingleCoil,
		Data:         []byte{0x00, 0x00, 0xFF, 0x00},
	})
	if err != nil {
		t.Fatal(err)
	}

	port := &fakePort{}
	transporter := rtuSerialTransporter{}
	transporter.port = port
	transporter.Config.Timeout = time.Second

	response, err := transporter.Send(request)
	if err != nil {
		t.Fatal(err)
	}
	if response != nil {
		t.Fatalf("expected no response for a broadcast, actual % x", response)
	}
	if !bytes.Equal(request, port.request.Bytes()) {
		t.Fatalf("request on the wire: expected % x, actual % x", request, port.request.Bytes())
	}
}

func BenchmarkRTUEncoder(b *testing.B) {
	encoder := rtuPackager{
		SlaveID: 10,
	}
	pdu := ProtocolDataUnit{
		FunctionCode: 1,
		Data:         []byte{2, 3, 4, 5, 6, 7, 8, 9},
	}
	for i := 0; i < b.N; i++ {
		_, err := encoder.Encode(&pdu)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRTUDecoder(b *testing.B) {
	decoder := rtuPackager{
		SlaveID: 8,
	}
	adu := []byte{0x08, 0x01, 0x01, 0x05, 0x92, 0x17}
	for i := 0; i < b.N; i++ {
		_, err := decoder.Decode(adu)
		if err != nil {
			b.Fatal(err)
		}
	}
}
