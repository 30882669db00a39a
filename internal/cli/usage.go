// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"findextend/internal/version"
)

// SetUsage installs the Usage() handler on fs. Defaults are looked up from
// the registered flags at print time, so the layout never drifts from the
// real values.
func SetUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – BLAST find and extend\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintln(out, "Runs blastn for a query FASTA against a nucleotide database, keeps hits")
		fmt.Fprintln(out, "at or above the identity/coverage thresholds, widens each hit by the")
		fmt.Fprintln(out, "requested margins, and extracts the regions with blastdbcmd.")
		fmt.Fprintf(out, "\nUsage:\n  %s -q query.fasta -d draft_genome -o matches.fasta\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -q, --query file            Query FASTA file [*]")
		fmt.Fprintln(out, "  -d, --database name         BLAST nucleotide database [*]")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -o, --output file           Output FASTA of extracted regions [*]")
		fmt.Fprintln(out, "  -b, --output-blast file     Keep the BLAST tabular report")
		fmt.Fprintln(out, "  -w, --output-windows file   Write accepted extension windows")
		fmt.Fprintf(out, "      --windows-format s      Window report format: text | jsonl [%s]\n", def("windows-format"))
		fmt.Fprintf(out, "      --no-header             Suppress window report header [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nFiltering:")
		fmt.Fprintf(out, "  -i, --identity float        Minimum percentage identity [%s]\n", def("identity"))
		fmt.Fprintf(out, "  -c, --coverage float        Minimum HSP coverage percentage [%s]\n", def("coverage"))
		fmt.Fprintf(out, "  -x, --max-target-seqs int   Matches to return per query [%s]\n", def("max-target-seqs"))

		fmt.Fprintln(out, "\nExtension:")
		fmt.Fprintf(out, "      --up int                Extend upstream by this many bases [%s]\n", def("up"))
		fmt.Fprintf(out, "      --down int              Extend downstream by this many bases [%s]\n", def("down"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Threads for the BLAST search ($GALAXY_SLOTS or 1) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --quiet                 Suppress per-candidate diagnostics [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
