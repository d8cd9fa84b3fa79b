package hostlib

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/prateekvishnu/goscript/vm"
)

// CaserName is the FFI constructor name a program's FFI opcode passes
// to reach a Caser: FFI("caser", tag).
const CaserName = "caser"

// Caser is a locale-aware string-casing host object, wrapping
// golang.org/x/text/cases instead of the byte-oblivious upper/lower
// strings package provides: Turkish "i" and German ß both case
// correctly through it where a naive ASCII fold would not.
type Caser struct {
	upper cases.Caser
	lower cases.Caser
	title cases.Caser
}

// NewCaser is an ffi.Constructor. args must be a single KindString
// value naming a BCP-47 language tag ("en", "tr", "de"); an empty tag
// falls back to language.Und, which still folds case correctly for
// scripts without locale-specific casing rules.
func NewCaser(args []vm.Value) (vm.ForeignObject, vm.ForeignMethodSet, error) {
	if len(args) != 1 || args[0].Kind() != vm.KindString {
		return nil, vm.ForeignMethodSet{}, fmt.Errorf("hostlib: caser wants a single string language tag")
	}
	tagStr := args[0].Handle().(*vm.String).Go()

	tag := language.Und
	if tagStr != "" {
		parsed, err := language.Parse(tagStr)
		if err != nil {
			return nil, vm.ForeignMethodSet{}, fmt.Errorf("hostlib: caser: %w", err)
		}
		tag = parsed
	}

	c := &Caser{
		upper: cases.Upper(tag),
		lower: cases.Lower(tag),
		title: cases.Title(tag),
	}
	return c, vm.ForeignMethodSet{Names: []string{"Upper", "Lower", "Title"}}, nil
}

// Call implements vm.ForeignObject.
func (c *Caser) Call(method string, args []vm.Value) ([]vm.Value, error) {
	if len(args) != 1 || args[0].Kind() != vm.KindString {
		return nil, fmt.Errorf("hostlib: Caser.%s wants a single string argument", method)
	}
	s := args[0].Handle().(*vm.String).Go()

	var out string
	switch method {
	case "Upper":
		out = c.upper.String(s)
	case "Lower":
		out = c.lower.String(s)
	case "Title":
		out = c.title.String(s)
	default:
		return nil, fmt.Errorf("hostlib: Caser has no method %q", method)
	}

	result := vm.NewStringValue(out)
	vm.Retain(result)
	return []vm.Value{result}, nil
}

func (c *Caser) CanMakeCycle() bool { return false }
func (c *Caser) BreakCycle()        {}
