package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prateekvishnu/goscript/pkg/govm"
	"github.com/prateekvishnu/goscript/vm/heap"
	"github.com/prateekvishnu/goscript/vm/sched"
)

var log *slog.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	args := os.Args[1:]
	for _, a := range args {
		if a == "--help" || a == "-h" {
			printUsage()
			return
		}
	}

	art := govm.SampleArtifact()
	registry := govm.SampleFFIRegistry()

	heap.ResetStats()
	log.Info("running sample artifact")
	if _, err := sched.Run(art, registry.Factory(), false); err != nil {
		log.Error("artifact run failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	stats := heap.Snapshot()

	m := NewModel(govm.DisassembleArtifact(art), stats)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("govmtop - interactive fiber & heap inspector")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  govmtop")
	fmt.Println()
	fmt.Println("Runs the built-in sample artifact to completion and opens a")
	fmt.Println("split-pane TUI over its disassembly and final heap statistics.")
}
