// Package harness runs catalog cases through the solver and reports
// pass/fail, timing and allocation figures for each.
//
// A case passes when the breadth-first answer equals the expected array and
// the heap-based reference solver agrees with it. A disagreement between the
// two solvers is reported separately from a wrong answer: it means a solver
// is broken, not that the catalog is wrong.
package harness

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hopcount/bfs"
	"github.com/katalvlaran/hopcount/internal/catalog"
	"github.com/katalvlaran/hopcount/internal/input"
	"github.com/katalvlaran/hopcount/internal/profile"
	"github.com/katalvlaran/hopcount/internal/reference"
)

// Options configures a harness run.
type Options struct {
	// Workers bounds how many cases run at once. Values below 1 mean 1.
	// Profiles are only exact with a single worker.
	Workers int
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name     string
	N        int
	Expected []int
	Actual   []int
	// Reference is the answer of the heap-based solver.
	Reference []int
	Profile   profile.Profile
	// Err is set when the case could not be solved at all.
	Err error
}

// Correct reports whether the solver returned the expected distances.
// A case without an expected array is judged by the solver comparison
// alone, so Correct only requires that it solved.
func (r CaseResult) Correct() bool {
	if r.Expected == nil {
		return r.Err == nil
	}
	return r.Err == nil && slices.Equal(r.Actual, r.Expected)
}

// Mismatch reports whether the two solvers disagree.
func (r CaseResult) Mismatch() bool {
	return r.Err == nil && !slices.Equal(r.Actual, r.Reference)
}

// Passed is Correct and not Mismatch.
func (r CaseResult) Passed() bool {
	return r.Correct() && !r.Mismatch()
}

// Report collects every case in input order.
type Report struct {
	Cases  []CaseResult
	Passed int
	Failed int
}

// OK reports whether every case passed.
func (r *Report) OK() bool { return r.Failed == 0 }

// Run solves each case. Solving never aborts the run: a case error is
// recorded in its CaseResult. Run only fails if ctx is cancelled.
func Run(ctx context.Context, cases []catalog.Case, opts Options) (*Report, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	results := make([]CaseResult, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = runCase(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{Cases: results}
	for _, r := range results {
		entry := log.WithFields(log.Fields{"case": r.Name, "n": r.N, "duration": r.Profile.Duration})
		if r.Passed() {
			rep.Passed++
			entry.Debug("case passed")
			continue
		}
		rep.Failed++
		entry = entry.WithField("mismatch", r.Mismatch())
		if r.Err != nil {
			entry = entry.WithError(r.Err)
		}
		entry.Warn("case failed")
	}

	return rep, nil
}

func runCase(c catalog.Case) CaseResult {
	res := CaseResult{Name: c.Name, N: c.N, Expected: c.Expected}
	if err := c.Validate(); err != nil {
		res.Err = err
		return res
	}

	var solveErr error
	res.Actual, res.Profile = profile.Measure(func() []int {
		dist, err := bfs.Solve(c.N, c.Shortcuts)
		solveErr = err
		return dist
	})
	if solveErr != nil {
		res.Err = fmt.Errorf("harness: case %q: %w", c.Name, solveErr)
		return res
	}
	res.Reference = reference.Solve(c.N, c.Shortcuts)

	return res
}

// Print writes a human-readable report. With colorize false no escape
// codes are emitted.
func (r *Report) Print(w io.Writer, colorize bool) {
	pass := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)
	if !colorize {
		pass.DisableColor()
		fail.DisableColor()
	}
	rule := "======================================================================"

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Running %d case(s)\n", len(r.Cases))
	fmt.Fprintln(w, rule)
	for i, c := range r.Cases {
		fmt.Fprintf(w, "\n--- Case %d: %s (n=%d) ---\n", i+1, c.Name, c.N)
		switch {
		case c.Err != nil:
			fmt.Fprintf(w, "Status: %s\n", fail.Sprint("ERROR"))
			fmt.Fprintf(w, "  Error: %v\n", c.Err)
			continue
		case c.Passed():
			fmt.Fprintf(w, "Status: %s\n", pass.Sprint("PASS"))
		default:
			fmt.Fprintf(w, "Status: %s\n", fail.Sprint("FAIL"))
			if c.Expected != nil && !c.Correct() {
				fmt.Fprintf(w, "  Expected:  %s\n", input.FormatDistances(c.Expected))
				fmt.Fprintf(w, "  Actual:    %s\n", input.FormatDistances(c.Actual))
			}
			if c.Mismatch() {
				fmt.Fprintf(w, "  Solvers disagree\n")
				fmt.Fprintf(w, "  BFS:       %s\n", input.FormatDistances(c.Actual))
				fmt.Fprintf(w, "  Reference: %s\n", input.FormatDistances(c.Reference))
			}
		}
		fmt.Fprintf(w, "  Profile:   %s\n", c.Profile)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  Total:  %d\n", len(r.Cases))
	fmt.Fprintf(w, "  Passed: %d\n", r.Passed)
	fmt.Fprintf(w, "  Failed: %d\n", r.Failed)
	fmt.Fprintln(w, rule)
}
