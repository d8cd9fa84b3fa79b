// Package frame implements the VM's operand stack and call-frame chain
// (§4.3): a single absolute-indexed Stack shared by every frame on a
// fiber, and a Frame type that layers a closure, program counter, stack
// base, up-value vector, and referred-by tracking on top of it.
//
// Frame implements vm.StackSlotRef indirectly through localSlot, so an
// open vm.UpValue can read and write a live stack slot without vm
// itself depending on this package (see DESIGN.md for the import-
// direction rationale).
package frame
