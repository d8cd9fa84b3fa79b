// Package govm is the shared library beneath cmd/govm and cmd/govmtop:
// disassembly, plus the small built-in fixture program (and its FFI
// registry) that both binaries run, since there is no loader to produce
// a real artifact. Both binaries share this one implementation.
package govm

import (
	"fmt"
	"strings"

	"github.com/prateekvishnu/goscript/vm"
)

// Disassemble renders fn's code as one opcode per line, its operand
// kinds and immediate alongside, the way an objdump-style tool would.
// Line numbers are positional, not fn.Positions-derived source lines,
// since there's no source format on this side of the boundary.
func Disassemble(fn *vm.FunctionRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "func %s (params=%d results=%d locals=%d)\n", fn.Name, fn.ParamCount, fn.ResultCount, fn.LocalCount)
	for i, ins := range fn.Code {
		fmt.Fprintf(&b, "%4d  %-20s", i, ins.Op)
		if ins.T0 != vm.KindInvalid {
			fmt.Fprintf(&b, " t0=%s", ins.T0)
		}
		if ins.T1 != vm.KindInvalid {
			fmt.Fprintf(&b, " t1=%s", ins.T1)
		}
		if ins.T2 != vm.KindInvalid {
			fmt.Fprintf(&b, " t2=%s", ins.T2)
		}
		fmt.Fprintf(&b, " imm=%d\n", ins.Imm)
	}
	return b.String()
}

// DisassembleArtifact renders every function in art's function pool, in
// pool order, marking the entry function.
func DisassembleArtifact(art *vm.Artifact) string {
	var b strings.Builder
	for i, fn := range art.Functions {
		if int(art.EntryFunc) == i {
			b.WriteString("; entry point\n")
		}
		b.WriteString(Disassemble(fn))
		b.WriteByte('\n')
	}
	return b.String()
}
