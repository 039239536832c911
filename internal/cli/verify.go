package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopcount/internal/catalog"
	"github.com/katalvlaran/hopcount/internal/harness"
)

type verifyOptions struct {
	cases   []string
	workers int
	noColor bool
}

func newVerifyCommand() *cobra.Command {
	opts := &verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the catalog through both solvers and report pass/fail with timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cases, err := opts.selectCases()
			if err != nil {
				return err
			}
			rep, err := harness.Run(cmd.Context(), cases, harness.Options{Workers: opts.workers})
			if err != nil {
				return err
			}
			rep.Print(cmd.OutOrStdout(), !opts.noColor && isTerminal(cmd.OutOrStdout()))
			if !rep.OK() {
				return fmt.Errorf("%d of %d case(s) failed", rep.Failed, len(rep.Cases))
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&opts.cases, "case", "c", nil, "run only these catalog cases (repeatable)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 1, "cases to run concurrently; profiles are exact only with 1")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable coloured PASS/FAIL")

	return cmd
}

func (o *verifyOptions) selectCases() ([]catalog.Case, error) {
	if len(o.cases) == 0 {
		return catalog.Load()
	}
	out := make([]catalog.Case, 0, len(o.cases))
	for _, name := range o.cases {
		c, err := catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}
