package cli

import (
	"fmt"
	"os"

	"github.com/emicklei/dot"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopcount/bfs"
	"github.com/katalvlaran/hopcount/internal/catalog"
	"github.com/katalvlaran/hopcount/internal/input"
	"github.com/katalvlaran/hopcount/render"
	"github.com/katalvlaran/hopcount/shortcut"
)

type renderOptions struct {
	preset    string
	n         int
	shortcuts string
	view      string
	out       string
}

func newRenderCommand() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Emit a Graphviz DOT drawing of the network or of the solved distances",
		Long: "Draws either the structure (gray adjacency moves, blue dashed shortcuts) or the\n" +
			"result (nodes annotated with distances, red shortest-path edges).\n" +
			"The instance comes from --shortcuts (and optionally --n) or from a --preset.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			net, err := opts.network(cmd)
			if err != nil {
				return err
			}
			g, err := opts.draw(net)
			if err != nil {
				return err
			}
			if opts.out == "" || opts.out == "-" {
				return render.Write(cmd.OutOrStdout(), g)
			}
			f, err := os.Create(opts.out)
			if err != nil {
				return err
			}
			if err := render.Write(f, g); err != nil {
				_ = f.Close()
				return err
			}
			log.Infof("Wrote %s view to %s", opts.view, opts.out)
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", catalog.Custom, "catalog case to draw (see the presets command)")
	cmd.Flags().IntVar(&opts.n, "n", 0, "number of intersections (defaults to the length of --shortcuts)")
	cmd.Flags().StringVarP(&opts.shortcuts, "shortcuts", "s", "", "shortcut targets a1..an, comma or space separated")
	cmd.Flags().StringVar(&opts.view, "view", "result", "what to draw: structure or result")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write DOT to this file instead of stdout")

	return cmd
}

// network resolves the instance from flags: explicit shortcuts win over a preset.
func (o *renderOptions) network(cmd *cobra.Command) (*shortcut.Network, error) {
	var (
		n         int
		shortcuts []int
	)
	if o.shortcuts != "" {
		list, err := input.ParseList(o.shortcuts)
		if err != nil {
			return nil, err
		}
		n, shortcuts = len(list), list
		if cmd.Flags().Changed("n") {
			n = o.n
		}
	} else {
		c, err := catalog.Lookup(o.preset)
		if err != nil {
			return nil, err
		}
		log.Debugf("Loaded preset %s (n=%d)", c.Name, c.N)
		n, shortcuts = c.N, c.Shortcuts
	}
	if err := checkInstance(n, shortcuts); err != nil {
		return nil, err
	}

	return shortcut.FromInput(n, shortcuts)
}

func (o *renderOptions) draw(net *shortcut.Network) (*dot.Graph, error) {
	switch o.view {
	case "structure":
		return render.Structure(net)
	case "result":
		res, err := bfs.Run(net)
		if err != nil {
			return nil, err
		}
		log.Debugf("Distances: %s", input.FormatDistances(res.Dist))
		return render.Result(net, res.Dist)
	default:
		return nil, fmt.Errorf("unknown view %q (want structure or result)", o.view)
	}
}
