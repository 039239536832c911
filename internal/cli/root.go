// Package cli implements the hopcount command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type rootOptions struct {
	verbose   bool
	logFormat string
}

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(version).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the full command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:          "hopcount",
		Short:        "Minimum hops from intersection 1 over a line of intersections with one-way shortcuts.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return configureLogging(cmd.ErrOrStderr(), opts)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(
		newSolveCommand(),
		newPathCommand(),
		newRenderCommand(),
		newVerifyCommand(),
		newPresetsCommand(),
	)

	return rootCmd
}

func configureLogging(w io.Writer, opts *rootOptions) error {
	log.SetOutput(w)
	log.SetLevel(log.InfoLevel)
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}
	switch opts.logFormat {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text":
		log.SetFormatter(&log.TextFormatter{
			DisableColors:    !isTerminal(w),
			DisableTimestamp: true,
		})
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", opts.logFormat)
	}

	return nil
}

// isTerminal reports whether w is a terminal, so colour codes are safe.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// addInputFlag registers the shared --input flag.
func addInputFlag(fs *pflag.FlagSet, p *string) {
	fs.StringVarP(p, "input", "i", "", "read the instance from this file instead of stdin")
}

// openInput returns the instance source: the named file or the command's stdin.
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	log.Debugf("Reading instance from %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}
