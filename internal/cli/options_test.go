// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func queryFile(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "query.fasta")
	if err := os.WriteFile(fn, []byte(">q1\nACGT\n"), 0o644); err != nil {
		t.Fatalf("write query: %v", err)
	}
	return fn
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	q := queryFile(t)
	o := mustParse(t, "--query", q, "--database", "draft", "--output", "out.fasta")
	if o.MinIdentity != 95 || o.MinCoverage != 95 {
		t.Errorf("default thresholds wrong: %+v", o)
	}
	if o.Up != 50 || o.Down != 50 || o.MaxTargetSeqs != 1 {
		t.Errorf("default margins/max-target-seqs wrong: %+v", o)
	}
	if !o.Header || o.WindowsFormat != WindowsText {
		t.Errorf("default window report options wrong: %+v", o)
	}
}

func TestShortAliases(t *testing.T) {
	q := queryFile(t)
	o := mustParse(t, "-q", q, "-d", "draft", "-o", "out.fasta", "-i", "90", "-c", "80", "-x", "5", "-t", "2")
	if o.MinIdentity != 90 || o.MinCoverage != 80 || o.MaxTargetSeqs != 5 || o.Threads != 2 {
		t.Errorf("alias parse wrong: %+v", o)
	}
}

func TestThreadsDefaultFromGalaxySlots(t *testing.T) {
	t.Setenv("GALAXY_SLOTS", "4")
	q := queryFile(t)
	o := mustParse(t, "-q", q, "-d", "draft", "-o", "out.fasta")
	if o.Threads != 4 {
		t.Errorf("threads = %d, want 4 from GALAXY_SLOTS", o.Threads)
	}

	t.Setenv("GALAXY_SLOTS", "not-a-number")
	o = mustParse(t, "-q", q, "-d", "draft", "-o", "out.fasta")
	if o.Threads != 1 {
		t.Errorf("threads = %d, want fallback 1 on bad GALAXY_SLOTS", o.Threads)
	}
}

func TestVersionShortCircuitsValidation(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if !o.Version {
		t.Fatalf("expected Version set")
	}
}

func TestHelpReturnsErrHelp(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}

func TestValidationErrors(t *testing.T) {
	q := queryFile(t)
	cases := []struct {
		name string
		args []string
	}{
		{"missing query", []string{"-d", "draft", "-o", "out.fasta"}},
		{"missing database", []string{"-q", q, "-o", "out.fasta"}},
		{"missing output", []string{"-q", q, "-d", "draft"}},
		{"query does not exist", []string{"-q", "no-such.fasta", "-d", "draft", "-o", "out.fasta"}},
		{"identity too high", []string{"-q", q, "-d", "draft", "-o", "out.fasta", "-i", "101"}},
		{"identity negative", []string{"-q", q, "-d", "draft", "-o", "out.fasta", "-i", "-1"}},
		{"coverage too high", []string{"-q", q, "-d", "draft", "-o", "out.fasta", "-c", "100.5"}},
		{"identity not a number", []string{"-q", q, "-d", "draft", "-o", "out.fasta", "-i", "lots"}},
		{"negative up", []string{"-q", q, "-d", "draft", "-o", "out.fasta", "--up", "-5"}},
		{"negative down", []string{"-q", q, "-d", "draft", "-o", "out.fasta", "--down", "-5"}},
		{"negative max-target-seqs", []string{"-q", q, "-d", "draft", "-o", "out.fasta", "-x", "-1"}},
		{"zero threads", []string{"-q", q, "-d", "draft", "-o", "out.fasta", "-t", "0"}},
		{"bad windows format", []string{"-q", q, "-d", "draft", "-o", "out.fasta", "--windows-format", "xml"}},
		{"positional args", []string{"-q", q, "-d", "draft", "-o", "out.fasta", "stray.fasta"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseArgs(newFS(), tc.args); err == nil {
				t.Fatalf("expected error for %v", tc.args)
			}
		})
	}
}

func TestBoundaryValuesAccepted(t *testing.T) {
	q := queryFile(t)
	o := mustParse(t, "-q", q, "-d", "draft", "-o", "out.fasta",
		"-i", "0", "-c", "100", "--up", "0", "--down", "0", "-x", "0")
	if o.MinIdentity != 0 || o.MinCoverage != 100 || o.Up != 0 || o.Down != 0 || o.MaxTargetSeqs != 0 {
		t.Errorf("boundary values mangled: %+v", o)
	}
}
