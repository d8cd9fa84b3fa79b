package main

import (
	"github.com/spf13/cobra"

	"github.com/prateekvishnu/goscript/pkg/govm"
)

func newDisasmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disasm",
		Short: "Disassemble the built-in sample artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			art := govm.SampleArtifact()
			printInfo("%s", govm.DisassembleArtifact(art))
			return nil
		},
	}
	return cmd
}

func init() {
	rootCmd.AddCommand(newDisasmCmd())
}
