// Subcommand (`readkey pairs`) for reporting the pairing status of each
// query name found in the input.

package main

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
)

// pairTally accumulates per-qname read-number observations
type pairTally struct {
	counts [3]int // indexed by ReadNo
}

func (t *pairTally) add(no ReadNo) {
	t.counts[no]++
}

func (t *pairTally) total() int {
	return t.counts[Unpaired] + t.counts[FirstMate] + t.counts[SecondMate]
}

// status classifies the observations for one query name:
//
//	paired      - exactly one first and one second mate
//	first-only  - a first mate without its second
//	second-only - a second mate without its first
//	single      - exactly one unpaired read
//	conflict    - a duplicated key, or unpaired reads mixed with mates
func (t *pairTally) status() string {
	un, first, second := t.counts[Unpaired], t.counts[FirstMate], t.counts[SecondMate]
	switch {
	case un > 1 || first > 1 || second > 1:
		return "conflict"
	case un > 0 && (first > 0 || second > 0):
		return "conflict"
	case first == 1 && second == 1:
		return "paired"
	case first == 1:
		return "first-only"
	case second == 1:
		return "second-only"
	default:
		return "single"
	}
}

// PairsCommand creates the `pairs` subcommand which groups derived read
// keys by query name and reports the pairing status of each group
//
// Output is a TSV with one line per query name (qname, number of reads,
// status), ordered naturally by query name
func PairsCommand() *cobra.Command {
	var (
		inFile  string
		outFile string
		only    string
	)

	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Report pairing status per query name",
		Long: `Group read keys derived from FASTQ/FASTA records by query name and report
each group's pairing status as TSV (qname, reads, status). Statuses are
"paired", "first-only", "second-only", "single", and "conflict" (duplicated
keys, or unpaired reads mixed with mates).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if only != "" {
				switch only {
				case "paired", "first-only", "second-only", "single", "conflict":
					// valid status
				default:
					return fmt.Errorf("invalid status filter: %s", only)
				}
			}
			return runPairs(inFile, outFile, only)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&inFile, "in", "i", "-", "Input FASTQ/FASTA file (default: stdin)")
	flags.StringVarP(&outFile, "out", "o", "-", "Output TSV file (default: stdout)")
	flags.StringVarP(&only, "only", "O", "", "Report only query names with this status (e.g. 'conflict')")

	return cmd
}

// runPairs reads records, tallies read numbers per query name, and
// writes one TSV line per query name in natural order. When only is
// non-empty, lines with a different status are suppressed
func runPairs(inFile, outFile, only string) error {
	reader, err := newRecordReader(inFile)
	if err != nil {
		return fmt.Errorf("error creating reader: %v", err)
	}
	defer reader.Close()

	tallies := make(map[string]*pairTally)
	for {
		record, err := readRecord(reader)
		if err != nil {
			return err
		}
		if record == nil {
			break
		}

		key := recordKey(record)
		tally, ok := tallies[key.Qname]
		if !ok {
			tally = &pairTally{}
			tallies[key.Qname] = tally
		}
		tally.add(key.No)
	}

	qnames := make([]string, 0, len(tallies))
	for qname := range tallies {
		qnames = append(qnames, qname)
	}
	sort.Slice(qnames, func(i, j int) bool {
		return natural.Less(qnames[i], qnames[j])
	})

	outfh, err := xopen.Wopen(outFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %v", err)
	}
	defer outfh.Close()

	for _, qname := range qnames {
		tally := tallies[qname]
		status := tally.status()
		if only != "" && status != only {
			continue
		}
		fmt.Fprintf(outfh, "%s\t%d\t%s\n", qname, tally.total(), status)
	}
	return nil
}
