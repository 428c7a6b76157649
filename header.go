// Derivation of read keys from sequencer header conventions.
// Record parsing itself is fastx's job; this file only inspects the
// already-parsed header text.

package main

import (
	"strings"

	"github.com/shenwei356/bio/seqio/fastx"
)

// KeyFromHeader builds a read key from a record header that has been
// split into its identifier (first word) and description (remainder).
//
// Recognized conventions:
//   - legacy mate suffix: "name/1" and "name/2" (suffix stripped from
//     the query name)
//   - Casava 1.8+: description starting with a "1:..." or "2:..."
//     field, e.g. "1:N:0:ATCACG"
//
// Anything else is treated as unpaired, with the identifier passed
// through unchanged
func KeyFromHeader(id, desc string) Key {
	if n := len(id); n > 2 && id[n-2] == '/' {
		switch id[n-1] {
		case '1':
			return Key{Qname: id[:n-2], No: FirstMate}
		case '2':
			return Key{Qname: id[:n-2], No: SecondMate}
		}
	}

	if field, _, _ := strings.Cut(desc, " "); len(field) > 1 && field[1] == ':' {
		switch field[0] {
		case '1':
			return Key{Qname: id, No: FirstMate}
		case '2':
			return Key{Qname: id, No: SecondMate}
		}
	}

	return Key{Qname: id, No: Unpaired}
}

// recordKey derives the read key for a FASTQ/FASTA record
func recordKey(record *fastx.Record) Key {
	id, desc, _ := strings.Cut(string(record.Name), " ")
	return KeyFromHeader(id, desc)
}
