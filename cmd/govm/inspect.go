package main

import (
	"github.com/spf13/cobra"

	"github.com/prateekvishnu/goscript/pkg/govm"
	"github.com/prateekvishnu/goscript/vm/heap"
	"github.com/prateekvishnu/goscript/vm/sched"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Run the sample artifact and report heap statistics afterward",
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspectArtifact()
		},
	}
	return cmd
}

func init() {
	rootCmd.AddCommand(newInspectCmd())
}

func inspectArtifact() error {
	art := govm.SampleArtifact()
	registry := govm.SampleFFIRegistry()

	printInfo("functions: %d\n", len(art.Functions))
	printInfo("entry: %d\n", art.EntryFunc)

	heap.ResetStats()
	if _, err := sched.Run(art, registry.Factory(), verbose); err != nil {
		return err
	}

	stats := heap.Snapshot()
	if jsonOut {
		return printJSON(stats)
	}
	printInfo("retains: %d\n", stats.Retains)
	printInfo("releases: %d\n", stats.Releases)
	printInfo("frees: %d\n", stats.Frees)
	printInfo("cycles freed: %d\n", stats.CyclesFreed)
	printInfo("live estimate: %d\n", stats.LiveEstimate)
	return nil
}
