// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"findextend/internal/runutil"
)

// Window report formats.
const (
	WindowsText  = "text"
	WindowsJSONL = "jsonl"
)

// Options holds all CLI flags.
type Options struct {
	// Input
	Query    string
	Database string

	// Output
	Output        string
	OutputBlast   string
	OutputWindows string
	WindowsFormat string
	Header        bool // true unless --no-header

	// Filtering / extension
	MinIdentity   float64
	MinCoverage   float64
	MaxTargetSeqs int
	Up            int
	Down          int

	// Performance
	Threads int

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with the full usage layout.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	SetUsage(fs, name)
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
// Defaults follow the original Galaxy tool: identity/coverage 95, one target
// sequence, 50 bp margins, threads from $GALAXY_SLOTS.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.Query, "query", "", "query FASTA file [*]")
	fs.StringVar(&opt.Query, "q", "", "alias of --query")
	fs.StringVar(&opt.Database, "database", "", "BLAST nucleotide database [*]")
	fs.StringVar(&opt.Database, "d", "", "alias of --database")

	// Output
	fs.StringVar(&opt.Output, "output", "", "output FASTA of extracted regions [*]")
	fs.StringVar(&opt.Output, "o", "", "alias of --output")
	fs.StringVar(&opt.OutputBlast, "output-blast", "", "keep the BLAST tabular report at this path")
	fs.StringVar(&opt.OutputBlast, "b", "", "alias of --output-blast")
	fs.StringVar(&opt.OutputWindows, "output-windows", "", "write accepted extension windows to this path")
	fs.StringVar(&opt.OutputWindows, "w", "", "alias of --output-windows")
	fs.StringVar(&opt.WindowsFormat, "windows-format", WindowsText, "window report format: text | jsonl [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in the window report [false]")

	// Filtering / extension
	fs.Float64Var(&opt.MinIdentity, "identity", 95, "minimum percentage identity [95]")
	fs.Float64Var(&opt.MinIdentity, "i", 95, "alias of --identity")
	fs.Float64Var(&opt.MinCoverage, "coverage", 95, "minimum HSP coverage percentage [95]")
	fs.Float64Var(&opt.MinCoverage, "c", 95, "alias of --coverage")
	fs.IntVar(&opt.MaxTargetSeqs, "max-target-seqs", 1, "matches to return per query (blastn -max_target_seqs) [1]")
	fs.IntVar(&opt.MaxTargetSeqs, "x", 1, "alias of --max-target-seqs")
	fs.IntVar(&opt.Up, "up", 50, "extend upstream (start) by this many bases [50]")
	fs.IntVar(&opt.Down, "down", 50, "extend downstream (end) by this many bases [50]")

	// Performance
	defThreads := runutil.GalaxySlots(os.Getenv)
	fs.IntVar(&opt.Threads, "threads", defThreads, "threads for the BLAST search ($GALAXY_SLOTS or 1)")
	fs.IntVar(&opt.Threads, "t", defThreads, "alias of --threads")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress per-candidate diagnostics [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	if fs.NArg() > 0 {
		return opt, fmt.Errorf("no positional arguments expected: %q", fs.Args())
	}
	return opt, Validate(&opt)
}

// Validate applies the run-level configuration invariants. Everything here is
// checked before any external tool is invoked.
func Validate(o *Options) error {
	switch {
	case o.Query == "":
		return errors.New("missing required --query FASTA file")
	case o.Database == "":
		return errors.New("missing required --database")
	case o.Output == "":
		return errors.New("missing required --output, e.g. -o matches.fasta")
	}
	if st, err := os.Stat(o.Query); err != nil || st.IsDir() {
		return fmt.Errorf("missing input query FASTA file %q", o.Query)
	}
	if o.MinIdentity < 0 || o.MinIdentity > 100 {
		return fmt.Errorf("--identity must be between 0 and 100, not %.2f", o.MinIdentity)
	}
	if o.MinCoverage < 0 || o.MinCoverage > 100 {
		return fmt.Errorf("--coverage must be between 0 and 100, not %.2f", o.MinCoverage)
	}
	if o.MaxTargetSeqs < 0 {
		return errors.New("--max-target-seqs must be ≥ 0")
	}
	if o.Up < 0 {
		return errors.New("--up must be ≥ 0")
	}
	if o.Down < 0 {
		return errors.New("--down must be ≥ 0")
	}
	if o.Threads < 1 {
		return errors.New("--threads must be ≥ 1")
	}
	switch o.WindowsFormat {
	case WindowsText, WindowsJSONL:
	default:
		return fmt.Errorf("invalid --windows-format %q", o.WindowsFormat)
	}
	return nil
}
