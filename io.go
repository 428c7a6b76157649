// readkey I/O utilities for FASTQ/FASTA record handling

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/shenwei356/bio/seqio/fastx"
)

// newRecordReader opens a FASTQ/FASTA reader with automatic format
// detection. Use "-" to read from stdin. All record parsing, including
// compressed inputs, is handled by fastx/xopen
func newRecordReader(inFile string) (*fastx.Reader, error) {
	return fastx.NewDefaultReader(inFile)
}

// readRecord reads the next record from the reader. It returns a nil
// record (and nil error) at end of input, so callers can range with a
// simple loop instead of checking io.EOF themselves
func readRecord(reader *fastx.Reader) (*fastx.Record, error) {
	record, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading record: %v", err)
	}
	return record, nil
}

// retaggedName builds the record's new header: the canonical rendering
// of its read key, optionally followed by the original description
// (everything after the first space of the header)
func retaggedName(record *fastx.Record, key Key, keepDesc bool) []byte {
	name := key.String()
	if keepDesc {
		if _, desc, ok := strings.Cut(string(record.Name), " "); ok && desc != "" {
			name += " " + desc
		}
	}
	return []byte(name)
}

// retagRecord replaces a record's header in place
func retagRecord(record *fastx.Record, key Key, keepDesc bool) {
	record.Name = retaggedName(record, key, keepDesc)
}
