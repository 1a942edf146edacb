package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/grid-x/serial"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/grid-x/mx2"
	"github.com/grid-x/mx2/registers"
)

const usage = `usage: mx2-cli [flags] <operation> [args]

Operations:
  read-coil <coil> [count]        read one or more coils
  write-coil <coil> <on|off>      set a coil
  read-register <register>        read a single-word register
  write-register <register> <value>
  read-wide <register>            read a double-word register
  write-wide <register> <value>
  loopback                        echo a test pattern through the drive
  fault-monitor [index]           dump a fault monitor block (1 to 6)
  save-eeprom                     commit changed registers to EEPROM
  status                          read the inverter status words

Coils and registers are addressed by their datasheet numbers, decimal or
hex (0x49). The serial settings must match the drive's C071 to C075
parameters and latency must cover its communication wait time (C078).`

type config struct {
	Address  string        `mapstructure:"address"`
	DeviceID int           `mapstructure:"device_id"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Latency  time.Duration `mapstructure:"latency"`

	BaudRate int    `mapstructure:"baud_rate"`
	DataBits int    `mapstructure:"data_bits"`
	Parity   string `mapstructure:"parity"`
	StopBits int    `mapstructure:"stop_bits"`

	RS485              bool          `mapstructure:"rs485"`
	DelayRtsBeforeSend time.Duration `mapstructure:"delay_rts_before_send"`
	DelayRtsAfterSend  time.Duration `mapstructure:"delay_rts_after_send"`
	RtsHighDuringSend  bool          `mapstructure:"rts_high_during_send"`
	RtsHighAfterSend   bool          `mapstructure:"rts_high_after_send"`
	RxDuringTx         bool          `mapstructure:"rx_during_tx"`

	LogLevel string `mapstructure:"log_level"`
	LogFrame bool   `mapstructure:"log_frame"`
}

func main() {
	cfg, args, err := loadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Println(usage)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}

	if len(args) == 0 {
		fmt.Println(usage)
		return
	}
	logger := newLogger(cfg.LogLevel)

	handler, err := newHandler(cfg, logger)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(-1)
	}
	if err := handler.Connect(); err != nil {
		logger.Error(err.Error())
		os.Exit(-1)
	}
	defer handler.Close()

	inv := mx2.NewInverter(handler, byte(cfg.DeviceID))

	res, err := run(inv, args[0], args[1:])
	if err != nil {
		logger.Error(err.Error())
		os.Exit(-1)
	}
	logger.Info(res)
}

// loadConfig merges defaults, an optional YAML config file and command
// line flags, flags winning. It returns the configuration and the
// remaining positional arguments.
func loadConfig(args []string) (*config, []string, error) {
	v := viper.New()
	v.SetDefault("address", "rtu:///dev/ttyUSB0")
	v.SetDefault("device_id", 1)
	v.SetDefault("timeout", 5*time.Second)
	v.SetDefault("latency", time.Duration(0))
	// Factory defaults of the drive's communication parameters.
	v.SetDefault("baud_rate", 9600)
	v.SetDefault("data_bits", 8)
	v.SetDefault("parity", "N")
	v.SetDefault("stop_bits", 1)
	v.SetDefault("log_level", "info")

	flags := pflag.NewFlagSet("mx2-cli", pflag.ContinueOnError)
	flags.String("config", "", "Configuration file path")
	flags.String("address", v.GetString("address"), "Example: rtu:///dev/ttyUSB0")
	flags.Int("device_id", v.GetInt("device_id"), "Device id of the drive, 1 to 247 (C072), 0 broadcasts writes to every drive")
	flags.Duration("timeout", v.GetDuration("timeout"), "Response timeout")
	flags.Duration("latency", v.GetDuration("latency"), "Extra response wait covering the drive's communication wait time (C078)")
	flags.Int("baud_rate", v.GetInt("baud_rate"), "Symbol rate (C071), e.g.: 2400, 4800, 9600, 19200, 38400, 57600, 115200")
	flags.Int("data_bits", v.GetInt("data_bits"), "7 or 8")
	flags.String("parity", v.GetString("parity"), "Parity (C074): N - None, E - Even, O - Odd")
	flags.Int("stop_bits", v.GetInt("stop_bits"), "1 or 2 (C075)")
	flags.Bool("rs485", false, "enables rs485 cfg")
	flags.Duration("delay_rts_before_send", 0, "Delay rts before send")
	flags.Duration("delay_rts_after_send", 0, "Delay rts after send")
	flags.Bool("rts_high_during_send", false, "Allow rts high during send")
	flags.Bool("rts_high_after_send", false, "Allow rts high after send")
	flags.Bool("rx_during_tx", false, "Allow bidirectional rx during tx")
	flags.String("log_level", v.GetString("log_level"), "Log verbosity level (debug, info, warn, error)")
	flags.Bool("log_frame", false, "Log every sent and received frame at debug level")
	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	if err := v.BindPFlags(flags); err != nil {
		return nil, nil, fmt.Errorf("failed to bind pflags: %w", err)
	}

	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Parity = strings.ToUpper(cfg.Parity)

	return &cfg, flags.Args(), nil
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func newHandler(cfg *config, logger *slog.Logger) (*mx2.RTUClientHandler, error) {
	u, err := url.Parse(cfg.Address)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "rtu" {
		return nil, fmt.Errorf("unsupported scheme: %s", u.Scheme)
	}

	h := mx2.NewRTUClientHandler(u.Path)
	h.Timeout = cfg.Timeout
	h.Latency = cfg.Latency
	h.BaudRate = cfg.BaudRate
	h.DataBits = cfg.DataBits
	h.Parity = cfg.Parity
	h.StopBits = cfg.StopBits
	h.RS485 = serial.RS485Config{
		Enabled:            cfg.RS485,
		DelayRtsBeforeSend: cfg.DelayRtsBeforeSend,
		DelayRtsAfterSend:  cfg.DelayRtsAfterSend,
		RtsHighDuringSend:  cfg.RtsHighDuringSend,
		RtsHighAfterSend:   cfg.RtsHighAfterSend,
		RxDuringTx:         cfg.RxDuringTx,
	}
	if cfg.LogFrame {
		h.Logger = &debugAdapter{logger}
	}
	return h, nil
}

func run(inv *mx2.Inverter, op string, args []string) (string, error) {
	switch op {
	case "read-coil":
		if len(args) < 1 {
			return "", fmt.Errorf("usage: read-coil <coil> [count]")
		}
		coil, err := parseCoil(args[0])
		if err != nil {
			return "", err
		}
		count := 1
		if len(args) > 1 {
			if count, err = strconv.Atoi(args[1]); err != nil {
				return "", fmt.Errorf("invalid coil count %q: %w", args[1], err)
			}
		}
		results, err := inv.ReadCoils(coil, count)
		if err != nil {
			return "", err
		}
		buf := new(bytes.Buffer)
		w := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
		for _, r := range results {
			fmt.Fprintf(w, "%#02x\t%s\t\n", uint16(r.Address), stateString(r.Value))
		}
		if err := w.Flush(); err != nil {
			return "", err
		}
		return buf.String(), nil

	case "write-coil":
		if len(args) < 2 {
			return "", fmt.Errorf("usage: write-coil <coil> <on|off>")
		}
		coil, err := parseCoil(args[0])
		if err != nil {
			return "", err
		}
		state, err := parseState(args[1])
		if err != nil {
			return "", err
		}
		if err := inv.WriteCoil(coil, state); err != nil {
			return "", err
		}
		return fmt.Sprintf("coil %#02x set to %s", uint16(coil), stateString(state)), nil

	case "read-register", "read-wide":
		if len(args) < 1 {
			return "", fmt.Errorf("usage: %s <register>", op)
		}
		reg, err := parseRegister(args[0], registerWidth(op))
		if err != nil {
			return "", err
		}
		value, err := inv.ReadRegister(reg)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(value, 10), nil

	case "write-register", "write-wide":
		if len(args) < 2 {
			return "", fmt.Errorf("usage: %s <register> <value>", op)
		}
		reg, err := parseRegister(args[0], registerWidth(op))
		if err != nil {
			return "", err
		}
		value, err := strconv.ParseInt(args[1], 0, 64)
		if err != nil {
			return "", fmt.Errorf("invalid register value %q: %w", args[1], err)
		}
		if err := inv.WriteRegister(reg, value); err != nil {
			return "", err
		}
		return fmt.Sprintf("register %#04x set to %d", reg.Addr, value), nil

	case "loopback":
		if err := inv.LoopbackTest(); err != nil {
			return "", err
		}
		return "loopback ok", nil

	case "fault-monitor":
		index := 1
		if len(args) > 0 {
			var err error
			if index, err = strconv.Atoi(args[0]); err != nil {
				return "", fmt.Errorf("invalid fault monitor index %q: %w", args[0], err)
			}
		}
		return faultMonitorReport(inv, index)

	case "save-eeprom":
		if err := inv.SaveToEEPROM(); err != nil {
			return "", err
		}
		return "register changes saved to EEPROM", nil

	case "status":
		values, err := inv.ReadRegisters([]registers.Register{
			registers.InverterStatusA,
			registers.InverterStatusB,
			registers.InverterStatusC,
		})
		if err != nil {
			return "", err
		}
		buf := new(bytes.Buffer)
		w := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "status A\t%#04x\t\n", values[0])
		fmt.Fprintf(w, "status B\t%#04x\t\n", values[1])
		fmt.Fprintf(w, "status C\t%#04x\t\n", values[2])
		if err := w.Flush(); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	return "", fmt.Errorf("unknown operation: %s", op)
}

// faultMonitorReport reads every field of one fault monitor block in a
// single request and renders them as a table.
func faultMonitorReport(inv *mx2.Inverter, index int) (string, error) {
	if index < 1 || index > len(registers.FaultMonitors) {
		return "", fmt.Errorf("fault monitor index %d must be between 1 and %d", index, len(registers.FaultMonitors))
	}

	fields := []struct {
		name  string
		field registers.FaultMonitorField
	}{
		{"trip factor", registers.FaultFactor},
		{"inverter status", registers.FaultInverterStatus},
		{"frequency", registers.FaultFrequency},
		{"current", registers.FaultCurrent},
		{"voltage", registers.FaultVoltage},
		{"running time", registers.FaultRunningTime},
		{"power-on time", registers.FaultPowerOnTime},
	}
	regs := make([]registers.Register, len(fields))
	for i, f := range fields {
		regs[i] = registers.FaultMonitor(index, f.field)
	}
	values, err := inv.ReadRegisters(regs)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	w := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "fault monitor\t%d\t\n", index)
	for i, f := range fields {
		switch f.field {
		case registers.FaultFactor:
			fmt.Fprintf(w, "%s\t%s\t\n", f.name, registers.TripFactor(values[i]))
		case registers.FaultInverterStatus:
			fmt.Fprintf(w, "%s\t%s\t\n", f.name, registers.InverterStatus(values[i]))
		default:
			fmt.Fprintf(w, "%s\t%d\t\n", f.name, values[i])
		}
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func registerWidth(op string) uint8 {
	if op == "read-wide" || op == "write-wide" {
		return 2
	}
	return 1
}

func parseCoil(arg string) (registers.Coil, error) {
	n, err := strconv.ParseUint(arg, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid coil number %q: %w", arg, err)
	}
	return registers.Coil(n), nil
}

func parseRegister(arg string, words uint8) (registers.Register, error) {
	n, err := strconv.ParseUint(arg, 0, 16)
	if err != nil {
		return registers.Register{}, fmt.Errorf("invalid register number %q: %w", arg, err)
	}
	return registers.Register{Addr: uint16(n), Words: words}, nil
}

func parseState(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "1", "true":
		return true, nil
	case "off", "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid coil state %q, expected on or off", arg)
}

func stateString(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
