package report

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const sampleReport = "# header comment\n" +
	"Q1\tS1\t96.0\t98.0\t10\t20\t1000\n" +
	"Q1\tS2\t90.0\t91.5\t5\t400\t500\n" +
	"\n" +
	"Q2\tS3\t100.0\t100.0\t1\t50\t50\n"

func TestScanOrderAndSkips(t *testing.T) {
	var got []string
	err := Scan(context.Background(), strings.NewReader(sampleReport), func(r Record) error {
		got = append(got, r.MatchID)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := []string{"S1", "S2", "S3"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestScanHaltsOnMalformedLine(t *testing.T) {
	in := "Q1\tS1\t96.0\t98.0\t10\t20\t1000\n" +
		"Q1\tS2\t90.0\t5\t400\t500\n" + // six columns
		"Q2\tS3\t100.0\t100.0\t1\t50\t50\n"
	seen := 0
	err := Scan(context.Background(), strings.NewReader(in), func(Record) error {
		seen++
		return nil
	})
	var mal *MalformedLineError
	if !errors.As(err, &mal) {
		t.Fatalf("expected MalformedLineError, got %v", err)
	}
	if seen != 1 {
		t.Errorf("emit called %d times; the scan must stop at the bad line", seen)
	}
}

func TestScanEmitErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	err := Scan(context.Background(), strings.NewReader(sampleReport), func(Record) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected emit error back, got %v", err)
	}
}

func TestScanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Scan(ctx, strings.NewReader(sampleReport), func(Record) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
