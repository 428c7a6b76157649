// readkey - derive, render, and organize sequencing read identifiers

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const VERSION = "1.0.0"

const DEFAULT_SORT_ORDER = "none"

// Allows tests to intercept exit calls
var exitFunc = os.Exit

// Flags of the default (keys) command
var (
	inFile    string
	outFile   string
	sortOrder string
	unique    bool
	version   bool
)

// SortOrder selects how emitted keys are ordered
type SortOrder int

const (
	SortNone    SortOrder = iota // input order
	SortByKey                    // canonical (bytewise) key order
	SortNatural                  // natural order of the rendering
)

func (o SortOrder) String() string {
	switch o {
	case SortNone:
		return "none"
	case SortByKey:
		return "key"
	case SortNatural:
		return "natural"
	default:
		return "unknown"
	}
}

// validateSortOrder converts a sort-order flag value to a SortOrder
func validateSortOrder(name string) (SortOrder, error) {
	switch name {
	case "none":
		return SortNone, nil
	case "key":
		return SortByKey, nil
	case "natural":
		return SortNatural, nil
	default:
		return SortNone, fmt.Errorf("invalid sort order: %s (expected none, key, or natural)", name)
	}
}

// Define color functions
var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// Colorized logo shown in help output
func getColorizedLogo() string {
	return cyan("⣀⣤⣶⣿")
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "readkey",
		Short: bold("Derive and organize sequencing read identifiers"),
		Run:   runDefaultCommand,
	}

	// Set the help function
	rootCmd.SetHelpFunc(helpFunc)

	// Define flags
	flags := rootCmd.Flags()
	flags.StringVarP(&inFile, "in", "i", "", "Input FASTQ/FASTA file (required, use - for stdin)")
	flags.StringVarP(&outFile, "out", "o", "", "Output file (required, use - for stdout)")
	flags.StringVarP(&sortOrder, "sort", "s", DEFAULT_SORT_ORDER, "Output order (none, key, natural)")
	flags.BoolVarP(&unique, "unique", "u", false, "Drop duplicate read keys")
	flags.BoolVarP(&version, "version", "v", false, "Show version information")

	// Subcommands
	rootCmd.AddCommand(PairsCommand())
	rootCmd.AddCommand(SortKeysCommand())
	rootCmd.AddCommand(TagCommand())

	// Custom error handling
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		fmt.Fprintln(os.Stderr, red("Try 'readkey --help' for more information"))
		exitFunc(1)
	}
}
