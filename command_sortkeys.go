// Subcommand (`readkey sortkeys`) for sorting already-rendered read
// keys, one per line.

package main

import (
	"bufio"
	"fmt"
	"sort"

	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
)

// SortKeysCommand creates the `sortkeys` subcommand which reads
// rendered read keys (one per line, e.g. produced by a previous run of
// readkey) and writes them back in sorted order
//
// Keys are parsed before sorting, so a malformed line is an error
// naming the offending line rather than silently missorted output
func SortKeysCommand() *cobra.Command {
	var (
		inFile      string
		outFile     string
		naturalSort bool
		unique      bool
	)

	cmd := &cobra.Command{
		Use:   "sortkeys",
		Short: "Sort a list of rendered read keys",
		Long: `Sort rendered read keys ("<qname>/<read number>", one per line) in canonical
bytewise order, or in natural order with --natural. Blank lines are skipped;
any other line that is not a valid read key is an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSortKeys(inFile, outFile, naturalSort, unique)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&inFile, "in", "i", "-", "Input key list (default: stdin)")
	flags.StringVarP(&outFile, "out", "o", "-", "Output key list (default: stdout)")
	flags.BoolVarP(&naturalSort, "natural", "n", false, "Sort in natural order instead of bytewise order")
	flags.BoolVarP(&unique, "unique", "u", false, "Drop duplicate keys")

	return cmd
}

// runSortKeys reads one rendered key per line from inFile, sorts them,
// and writes them to outFile. Empty lines are skipped. Returns an error
// for unreadable input or a line that does not parse as a read key
func runSortKeys(inFile, outFile string, naturalSort, unique bool) error {
	infh, err := xopen.Ropen(inFile)
	if err != nil {
		return fmt.Errorf("error opening input file: %v", err)
	}
	defer infh.Close()

	var seen map[Key]struct{}
	if unique {
		seen = make(map[Key]struct{})
	}

	var keys []Key
	lineNo := 0
	scanner := bufio.NewScanner(infh)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		key, err := ParseKey(line)
		if err != nil {
			return fmt.Errorf("line %d: %v", lineNo, err)
		}

		if unique {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
		}
		keys = append(keys, key)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %v", err)
	}

	sort.Sort(NewKeyList(keys, naturalSort))

	outfh, err := xopen.Wopen(outFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %v", err)
	}
	defer outfh.Close()

	for _, key := range keys {
		fmt.Fprintln(outfh, key.String())
	}
	return nil
}
