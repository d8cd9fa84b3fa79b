package hostlib

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prateekvishnu/goscript/vm"
)

// ConsoleName is the FFI constructor name a program's FFI opcode passes
// to reach a Console: FFI("console", level).
const ConsoleName = "console"

// Console is a structured-logging host object backed by log/slog,
// mirroring the package-level logger a host CLI would configure:
// messages below the level it was constructed with are dropped, and the
// rest are written to stderr. There is no mode that discards everything.
type Console struct {
	log *slog.Logger
}

// NewConsole is an ffi.Constructor. args must be a single KindString
// value naming the minimum level to emit ("debug", "info", "warn",
// "error"); an empty or unrecognized level falls back to "info". An
// artifact that never calls FFI("console", ...) never pays for a
// handler at all.
func NewConsole(args []vm.Value) (vm.ForeignObject, vm.ForeignMethodSet, error) {
	if len(args) != 1 || args[0].Kind() != vm.KindString {
		return nil, vm.ForeignMethodSet{}, fmt.Errorf("hostlib: console wants a single string level")
	}
	levelStr := args[0].Handle().(*vm.String).Go()

	level := slog.LevelInfo
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var w io.Writer = os.Stderr
	c := &Console{log: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
	return c, vm.ForeignMethodSet{Names: []string{"Debug", "Info", "Warn", "Error"}}, nil
}

// Call implements vm.ForeignObject. Every method takes a single string
// message and returns no results.
func (c *Console) Call(method string, args []vm.Value) ([]vm.Value, error) {
	if len(args) != 1 || args[0].Kind() != vm.KindString {
		return nil, fmt.Errorf("hostlib: Console.%s wants a single string argument", method)
	}
	msg := args[0].Handle().(*vm.String).Go()

	switch method {
	case "Debug":
		c.log.Debug(msg)
	case "Info":
		c.log.Info(msg)
	case "Warn":
		c.log.Warn(msg)
	case "Error":
		c.log.Error(msg)
	default:
		return nil, fmt.Errorf("hostlib: Console has no method %q", method)
	}
	return nil, nil
}

func (c *Console) CanMakeCycle() bool { return false }
func (c *Console) BreakCycle()        {}
