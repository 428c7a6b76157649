package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Custom help function used
// It provides nicely formatted help messages for the root command and other subcommands
func helpFunc(cmd *cobra.Command, args []string) {

	// Specialized help for subcommands
	switch cmd.Name() {
	case "pairs":
		fmt.Printf(`
%s

%s
  Group read keys derived from FASTQ/FASTA records by query name and
  report each group's pairing status as TSV: qname, number of reads,
  and one of "paired", "first-only", "second-only", "single", or
  "conflict" (duplicated keys, or unpaired reads mixed with mates).
  Output is ordered naturally by query name.

%s
  %s
  %s
  %s

%s
  %s
  %s

`,
			bold(getColorizedLogo()+" readkey pairs - Reports pairing status per query name"),
			bold(yellow("Description:")),
			bold(yellow("Flags:")),
			cyan("-i, --in")+" <string>   : Input FASTQ/FASTA file (default, '-' for stdin)",
			cyan("-o, --out")+" <string>  : Output TSV file (default, '-' for stdout)",
			cyan("-O, --only")+" <string> : Report only query names with this status (optional)",
			bold(yellow("Examples:")),
			cyan("readkey pairs -i reads.fq.gz -o pairs.tsv"),
			cyan("readkey pairs --only conflict -i reads.fq.gz -o - | less"),
		)
		return
	case "sortkeys":
		fmt.Printf(`
%s

%s
  Sort rendered read keys ("<qname>/<read number>", one per line) in
  canonical bytewise order, or in natural order with --natural. Blank
  lines are skipped; any other line that is not a valid read key is an
  error naming the offending line.

%s
  %s
  %s
  %s
  %s

%s
  %s
  %s

`,
			bold(getColorizedLogo()+" readkey sortkeys - Sorts a list of rendered read keys"),
			bold(yellow("Description:")),
			bold(yellow("Flags:")),
			cyan("-i, --in")+" <string>  : Input key list (default, '-' for stdin)",
			cyan("-o, --out")+" <string> : Output key list (default, '-' for stdout)",
			cyan("-n, --natural")+" <bool>: Sort in natural order instead of bytewise order",
			cyan("-u, --unique")+" <bool> : Drop duplicate keys",
			bold(yellow("Examples:")),
			cyan("readkey sortkeys -i keys.txt -o sorted.txt"),
			cyan("readkey -i reads.fq -o - | readkey sortkeys --natural -i - -o -"),
		)
		return
	case "tag":
		fmt.Printf(`
%s

%s
  Rewrite each FASTQ/FASTA record header to the canonical rendering of
  its read key. Legacy mate suffixes ("name/1") and Casava 1.8+
  description fields ("name 1:N:0:ATCACG") are normalized to the same
  "<qname>/<read number>" form. With --sort, records are buffered and
  emitted in key order; --compress keeps the buffered sequence data
  ZSTD-compressed in memory.

%s
  %s
  %s
  %s
  %s
  %s

%s
  %s
  %s

`,
			bold(getColorizedLogo()+" readkey tag - Rewrites record headers to canonical read keys"),
			bold(yellow("Description:")),
			bold(yellow("Flags:")),
			cyan("-i, --in")+" <string>       : Input FASTQ/FASTA file (default, '-' for stdin)",
			cyan("-o, --out")+" <string>      : Output file (default, '-' for stdout)",
			cyan("-s, --sort")+" <string>     : Output order (none, key, natural) (default, 'none')",
			cyan("-d, --keep-desc")+" <bool>  : Keep the original header description after the key",
			cyan("-c, --compress")+" <int>    : Memory compression level for sorted mode (0=disabled, 1-22)",
			bold(yellow("Examples:")),
			cyan("readkey tag -i reads.fq.gz -o tagged.fq.gz"),
			cyan("readkey tag --sort key --compress 3 -i reads.fq -o sorted.fq"),
		)
		return
	}

	// Default: root command help
	fmt.Printf(`
%s

%s
  A read key is the query name of a sequencing read plus its read
  number, rendered canonically as "<qname>/<read number>".

%s
  %s
  %s
  %s

%s
  %s
  %s

%s
  %s
  %s
  %s
  %s
  %s
  %s

%s
  %s
  %s
  %s

%s
  # Emit one key per record, in input order
  %s

  # Deduplicated keys in natural order
  %s

  # Find query names with inconsistent mate information
  %s

  # Normalize read identifiers across header conventions
  %s

`,
		bold(getColorizedLogo()+" readkey v."+VERSION+" - Derives and organizes sequencing read identifiers"),
		bold(yellow("Read keys:")),
		bold(yellow("Read-number encoding:")),
		cyan("0")+" : unpaired (or unknown)",
		cyan("1")+" : first mate of a pair",
		cyan("2")+" : second mate of a pair",
		bold(yellow("Recognized header conventions:")),
		cyan("name/1, name/2")+"      : legacy mate suffix",
		cyan("name 1:N:0:ATCACG")+"   : Casava 1.8+ description field",
		bold(yellow("Flags:")),
		cyan("-i, --in")+" <string>    : Input FASTQ/FASTA file (required, use '-' for stdin)",
		cyan("-o, --out")+" <string>   : Output file (required, use '-' for stdout)",
		cyan("-s, --sort")+" <string>  : Output order (none, key, natural) (default, 'none')",
		cyan("-u, --unique")+" <bool>  : Drop duplicate read keys",
		cyan("-h, --help")+"           : Show help message",
		cyan("-v, --version")+"        : Show version information",
		bold(yellow("Subcommands:")),
		cyan("pairs")+"    : Report pairing status per query name",
		cyan("sortkeys")+" : Sort a list of rendered read keys",
		cyan("tag")+"      : Rewrite record headers to canonical read keys",
		bold(yellow("Usage examples:")),
		cyan("readkey -i reads.fq.gz -o keys.txt"),
		cyan("readkey --unique --sort natural -i reads.fq.gz -o -"),
		cyan("readkey pairs --only conflict -i reads.fq.gz -o -"),
		cyan("readkey tag --keep-desc -i reads.fq.gz -o tagged.fq.gz"),
	)
}
