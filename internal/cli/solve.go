package cli

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopcount/bfs"
	"github.com/katalvlaran/hopcount/internal/input"
	"github.com/katalvlaran/hopcount/shortcut"
)

func newSolveCommand() *cobra.Command {
	var inputPath string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Read n and the shortcut map, print the distance to every intersection",
		Long: "Reads n on the first line and n space-separated shortcut targets on the second,\n" +
			"then prints the minimum number of moves from intersection 1 to each intersection.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, shortcuts, err := readInstance(cmd, inputPath)
			if err != nil {
				return err
			}
			dist, err := bfs.Solve(n, shortcuts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), input.FormatDistances(dist))
			return err
		},
	}
	addInputFlag(cmd.Flags(), &inputPath)

	return cmd
}

// readInstance parses and validates an instance; range warnings are logged.
func readInstance(cmd *cobra.Command, path string) (int, []int, error) {
	r, closeFn, err := openInput(cmd, path)
	if err != nil {
		return 0, nil, err
	}
	defer closeFn()

	n, shortcuts, err := input.ReadProblem(r)
	if err != nil {
		return 0, nil, err
	}
	if err := checkInstance(n, shortcuts); err != nil {
		return 0, nil, err
	}

	return n, shortcuts, nil
}

func checkInstance(n int, shortcuts []int) error {
	warnings, err := shortcut.Validate(n, shortcuts)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.WithFields(log.Fields{"node": w.Node, "target": w.Target}).Warn(w.String())
	}
	log.Debugf("Instance with %d intersection(s), %d out-of-range shortcut(s)", n, len(warnings))

	return nil
}

func newPathCommand() *cobra.Command {
	var (
		inputPath string
		to        int
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print one shortest route from intersection 1 to --to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, shortcuts, err := readInstance(cmd, inputPath)
			if err != nil {
				return err
			}
			if to < 1 || to > n {
				return fmt.Errorf("--to must be in [1, %d], got %d", n, to)
			}
			net, err := shortcut.FromInput(n, shortcuts)
			if err != nil {
				return err
			}
			res, err := bfs.Run(net, traceOptions()...)
			if err != nil {
				return err
			}
			path, err := res.PathTo(to - 1)
			if err != nil {
				return err
			}
			return printPath(cmd.OutOrStdout(), path, res.Dist[to-1])
		},
	}
	addInputFlag(cmd.Flags(), &inputPath)
	cmd.Flags().IntVar(&to, "to", 0, "destination intersection (1-based)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// traceOptions logs every visited intersection when debug logging is on.
func traceOptions() []bfs.Option {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return nil
	}
	return []bfs.Option{
		bfs.WithOnVisit(func(node, depth int) error {
			log.WithFields(log.Fields{"node": node + 1, "depth": depth}).Debug("visit")
			return nil
		}),
	}
}

func printPath(w io.Writer, path []int, hops int) error {
	if _, err := fmt.Fprintln(w, input.FormatPath(path)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "hops: %d\n", hops)

	return err
}
