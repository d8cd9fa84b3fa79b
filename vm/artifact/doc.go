// Package artifact links a program's metadata pool, function pool, and
// package pool into one vm.Artifact ready to hand to sched.Run.
//
// There is no bytecode file format in this system (see vm/exec's own
// doc comment: programs reach the dispatcher as hand- or harness-built
// FunctionRecords); Builder is the structured way something upstream —
// a compiler, a test, a REPL — assembles one. Its only job beyond
// vm.Artifact's own AddFunction/Function is the two things a linker
// does that a bare container can't: let forward and mutually recursive
// calls resolve a function by name before its body exists yet, and
// resolve the program's entry point by name once every function is
// declared.
package artifact
