// Default command: derive read keys from FASTQ/FASTA records and emit
// one rendered key per line, optionally deduplicated and sorted.

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/maruel/natural"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
)

// runDefaultCommand is the entry point for the default keys command.
// It handles flag validation and delegates to runKeys
func runDefaultCommand(cmd *cobra.Command, args []string) {
	// Check version flag
	if version {
		fmt.Printf("readkey %s\n", VERSION)
		exitFunc(0)
	}

	// Check required flags
	if inFile == "" || outFile == "" {
		fmt.Fprintln(os.Stderr, red("Error: input and output files are required"))
		fmt.Fprintln(os.Stderr, red("Try 'readkey --help' for more information"))
		exitFunc(1)
	}

	// Validate sort order flag
	order, err := validateSortOrder(sortOrder)
	if err != nil {
		fmt.Fprintln(os.Stderr, red("Error: "+err.Error()))
		exitFunc(1)
	}

	if err := runKeys(inFile, outFile, order, unique); err != nil {
		fmt.Fprintln(os.Stderr, red("Error: "+err.Error()))
		exitFunc(1)
	}
}

// keyList implements sort.Interface over read keys, in either canonical
// (bytewise) or natural order
type keyList struct {
	keys    []Key
	natural bool
}

// NewKeyList creates a new keyList
func NewKeyList(keys []Key, natural bool) *keyList {
	return &keyList{keys: keys, natural: natural}
}

func (l *keyList) Len() int      { return len(l.keys) }
func (l *keyList) Swap(i, j int) { l.keys[i], l.keys[j] = l.keys[j], l.keys[i] }

// naturalKeyLess orders keys by the natural ordering of their rendering
func naturalKeyLess(a, b Key) bool {
	return natural.Less(a.String(), b.String())
}

func (l *keyList) Less(i, j int) bool {
	if l.natural {
		return naturalKeyLess(l.keys[i], l.keys[j])
	}
	return l.keys[i].Compare(l.keys[j]) < 0
}

// Keys returns the underlying slice
func (l *keyList) Keys() []Key {
	return l.keys
}

// runKeys streams FASTQ/FASTA records from inFile, derives each
// record's read key, and writes one rendered key per line to outFile.
//
// With order == SortNone keys are written as records arrive, making
// this mode suitable for very large inputs. Otherwise all keys are
// buffered and sorted before writing. With unique set, a key that was
// already seen is dropped
func runKeys(inFile, outFile string, order SortOrder, unique bool) error {
	reader, err := newRecordReader(inFile)
	if err != nil {
		return fmt.Errorf("error creating reader: %v", err)
	}
	defer reader.Close()

	outfh, err := xopen.Wopen(outFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %v", err)
	}
	defer outfh.Close()

	var seen map[Key]struct{}
	if unique {
		seen = make(map[Key]struct{})
	}

	var keys []Key
	for {
		record, err := readRecord(reader)
		if err != nil {
			return err
		}
		if record == nil {
			break
		}

		key := recordKey(record)
		if unique {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
		}

		if order == SortNone {
			fmt.Fprintln(outfh, key.String())
			continue
		}
		keys = append(keys, key)
	}

	if order == SortNone {
		return nil
	}

	sort.Sort(NewKeyList(keys, order == SortNatural))
	for _, key := range keys {
		fmt.Fprintln(outfh, key.String())
	}
	return nil
}
