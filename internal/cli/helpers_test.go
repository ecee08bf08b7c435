package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
)

// tickingClock starts at 10:00:00 UTC and advances one second per call.
func tickingClock() func() time.Time {
	t := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		now := t
		t = t.Add(time.Second)
		return now
	}
}

// testEnv pins time and run IDs, and records requested sleeps instead of sleeping.
func testEnv(sleeps *[]time.Duration) env {
	return env{
		now: tickingClock(),
		sleep: func(d time.Duration) {
			if sleeps != nil {
				*sleeps = append(*sleeps, d)
			}
		},
		newRunID: func() string { return "0190a5c8-0000-7000-8000-000000000000" },
	}
}

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, e env, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand(e)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// assertGolden compares got with testdata/golden/<name>.golden.
// Regenerate with: go test ./internal/cli -update
func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}
