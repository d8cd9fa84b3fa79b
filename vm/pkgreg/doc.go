// Package pkgreg holds the program-wide table of loaded vm.Package
// values, addressed by import path, and answers the IMPORT opcode's
// "does this package still need init" query (§4.5: "IMPORT pushes a
// boolean indicating whether the package has not yet been initialized").
package pkgreg
