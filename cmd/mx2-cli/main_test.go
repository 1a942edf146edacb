package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/grid-x/mx2/registers"
)

func defaultConfig() config {
	return config{
		Address:  "rtu:///dev/ttyUSB0",
		DeviceID: 1,
		Timeout:  5 * time.Second,
		BaudRate: 9600,
		DataBits: 8,
		Parity:   "N",
		StopBits: 1,
		LogLevel: "info",
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, args, err := loadConfig([]string{"status"})
	if err != nil {
		t.Fatalf("expected no error but got %v", err)
	}

	expected := defaultConfig()
	if !cmp.Equal(*cfg, expected) {
		t.Errorf("unexpected config. Diff: %v", cmp.Diff(expected, *cfg))
	}
	if !cmp.Equal(args, []string{"status"}) {
		t.Errorf("expected %v but got %v", []string{"status"}, args)
	}
}

func TestLoadConfigFlags(t *testing.T) {
	cfg, args, err := loadConfig([]string{
		"--device_id", "8",
		"--baud_rate", "19200",
		"--parity", "e",
		"--log_frame",
		"read-coil", "0x07",
	})
	if err != nil {
		t.Fatalf("expected no error but got %v", err)
	}

	expected := defaultConfig()
	expected.DeviceID = 8
	expected.BaudRate = 19200
	expected.Parity = "E"
	expected.LogFrame = true
	if !cmp.Equal(*cfg, expected) {
		t.Errorf("unexpected config. Diff: %v", cmp.Diff(expected, *cfg))
	}
	if !cmp.Equal(args, []string{"read-coil", "0x07"}) {
		t.Errorf("expected %v but got %v", []string{"read-coil", "0x07"}, args)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mx2.yaml")
	if err := os.WriteFile(path, []byte("device_id: 5\nbaud_rate: 2400\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// An explicit flag wins over the config file, the file wins over the
	// defaults.
	cfg, _, err := loadConfig([]string{"--config", path, "--baud_rate", "4800", "status"})
	if err != nil {
		t.Fatalf("expected no error but got %v", err)
	}

	expected := defaultConfig()
	expected.DeviceID = 5
	expected.BaudRate = 4800
	if !cmp.Equal(*cfg, expected) {
		t.Errorf("unexpected config. Diff: %v", cmp.Diff(expected, *cfg))
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, _, err := loadConfig([]string{"--config", "/does/not/exist.yaml"}); err == nil {
		t.Error("expected an error but didn't get one")
	}
}

func TestParseState(t *testing.T) {
	type testCase struct {
		name        string
		arg         string
		expected    bool
		expectError bool
	}

	tests := []testCase{
		{name: "on", arg: "on", expected: true},
		{name: "on uppercase", arg: "ON", expected: true},
		{name: "one", arg: "1", expected: true},
		{name: "true", arg: "true", expected: true},
		{name: "off", arg: "off", expected: false},
		{name: "zero", arg: "0", expected: false},
		{name: "false", arg: "false", expected: false},
		{name: "garbage", arg: "maybe", expectError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state, err := parseState(tc.arg)
			if err != nil && tc.expectError == false {
				t.Errorf("expected no error but got %v", err)
				return
			}
			if tc.expectError && err == nil {
				t.Error("expected an error but didn't get one")
				return
			}
			if err != nil {
				return
			}

			if state != tc.expected {
				t.Errorf("expected %v but got %v", tc.expected, state)
			}
		})
	}
}

func TestParseCoil(t *testing.T) {
	type testCase struct {
		name        string
		arg         string
		expected    registers.Coil
		expectError bool
	}

	tests := []testCase{
		{name: "decimal", arg: "7", expected: registers.Coil(7)},
		{name: "hex", arg: "0x49", expected: registers.DataWritingInProgress},
		{name: "garbage", arg: "bogus", expectError: true},
		{name: "overflow", arg: "0x10000", expectError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			coil, err := parseCoil(tc.arg)
			if err != nil && tc.expectError == false {
				t.Errorf("expected no error but got %v", err)
				return
			}
			if tc.expectError && err == nil {
				t.Error("expected an error but didn't get one")
				return
			}
			if err != nil {
				return
			}

			if coil != tc.expected {
				t.Errorf("expected %v but got %v", tc.expected, coil)
			}
		})
	}
}

func TestParseRegister(t *testing.T) {
	type testCase struct {
		name        string
		arg         string
		words       uint8
		expected    registers.Register
		expectError bool
	}

	tests := []testCase{
		{name: "hex wide", arg: "0x1001", words: 2, expected: registers.Register{Addr: 0x1001, Words: 2}},
		{name: "decimal", arg: "4097", words: 1, expected: registers.Register{Addr: 0x1001, Words: 1}},
		{name: "garbage", arg: "reg", words: 1, expectError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg, err := parseRegister(tc.arg, tc.words)
			if err != nil && tc.expectError == false {
				t.Errorf("expected no error but got %v", err)
				return
			}
			if tc.expectError && err == nil {
				t.Error("expected an error but didn't get one")
				return
			}
			if err != nil {
				return
			}

			if !cmp.Equal(reg, tc.expected) {
				t.Errorf("expected %v but got %v. Diff: %v", tc.expected, reg, cmp.Diff(tc.expected, reg))
			}
		})
	}
}

func TestRegisterWidth(t *testing.T) {
	if registerWidth("read-wide") != 2 {
		t.Error("expected read-wide to address a double-word register")
	}
	if registerWidth("read-register") != 1 {
		t.Error("expected read-register to address a single-word register")
	}
}

// Argument validation happens before any bus traffic, so a nil driver is
// good enough here.
func TestRunArgumentErrors(t *testing.T) {
	type testCase struct {
		name string
		op   string
		args []string
	}

	tests := []testCase{
		{name: "unknown operation", op: "read-everything"},
		{name: "read-coil without coil", op: "read-coil"},
		{name: "write-coil without state", op: "write-coil", args: []string{"0x01"}},
		{name: "write-register without value", op: "write-register", args: []string{"0x1452"}},
		{name: "fault monitor index", op: "fault-monitor", args: []string{"7"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := run(nil, tc.op, tc.args); err == nil {
				t.Error("expected an error but didn't get one")
			}
		})
	}
}
