package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateekvishnu/goscript/pkg/govm"
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/sched"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the built-in sample artifact to completion",
		Long: `run loads the sample artifact (there being no compiler frontend to
load a real one from), drives it under the fiber scheduler to
quiescence, and prints its entry function's result values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArtifact()
		},
	}
	return cmd
}

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func runArtifact() error {
	art := govm.SampleArtifact()
	registry := govm.SampleFFIRegistry()

	printVerbose("running entry function %d\n", art.EntryFunc)
	results, err := sched.Run(art, registry.Factory(), verbose)
	if err != nil {
		return fmt.Errorf("govm: run failed: %w", err)
	}

	for i, r := range results {
		printInfo("result[%d] = %s\n", i, formatValue(r))
	}
	return nil
}

func formatValue(v vm.Value) string {
	switch v.Kind() {
	case vm.KindInt8, vm.KindInt16, vm.KindInt32, vm.KindInt64, vm.KindInt:
		return fmt.Sprintf("%d", v.AsInt64())
	case vm.KindBool:
		return fmt.Sprintf("%t", v.AsBool())
	case vm.KindString:
		return v.Handle().(*vm.String).Go()
	default:
		return fmt.Sprintf("<%s>", v.Kind())
	}
}
