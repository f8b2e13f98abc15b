/*
Command avltrace inserts sequences of keys into an AVL tree and traces every
rebalancing decision.

Without a scenario file the built-in demonstration sets are run:

	avltrace run
	avltrace run --file sets.yaml --stats
	avltrace run 3 1 2 --show
	avltrace dot 12 3 9 4 6 2 | dot -Tsvg > tree.svg
	avltrace html --file sets.yaml --set zig-zag > tree.html

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/npillmayer/avl"
	"github.com/npillmayer/avl/eventcast"
	"github.com/npillmayer/avl/formatter"
	"github.com/npillmayer/avl/scenario"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// options collects the command line flags.
type options struct {
	file     string
	trace    string
	colored  bool
	width    int
	stats    bool
	show     bool
	annotate bool
	set      string
}

func main() {
	opts := &options{}
	if err := rootCommand(opts).Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand(opts *options) *cobra.Command {
	var cmdRun = &cobra.Command{
		Use:   "run [keys...]",
		Short: "Run scenarios and print a trace of every insertion",
		Long: `Run inserts the keys of every scenario into a fresh tree. For every key the
balance factors on the way up, the rotations applied and the resulting tree
in level order are printed. Keys given as arguments form a single ad-hoc
scenario.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := scenarios(opts, args)
			if err != nil {
				return err
			}
			return runScenarios(cmd.Context(), cmd.OutOrStdout(), sets, opts)
		},
	}
	cmdRun.Flags().BoolVar(&opts.stats, "stats", false, "print rotation statistics after the last scenario")
	cmdRun.Flags().BoolVar(&opts.show, "show", false, "draw every final tree")

	var cmdDot = &cobra.Command{
		Use:   "dot [keys...]",
		Short: "Write the final tree of a scenario in Graphviz DOT format",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := finalTree(opts, args)
			if err != nil {
				return err
			}
			return avl.Tree2Dot(tree, cmd.OutOrStdout())
		},
	}

	var cmdHTML = &cobra.Command{
		Use:   "html [keys...]",
		Short: "Write the final tree of a scenario as nested HTML lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := finalTree(opts, args)
			if err != nil {
				return err
			}
			return formatter.WriteHTML(cmd.OutOrStdout(), tree)
		},
	}
	for _, c := range []*cobra.Command{cmdDot, cmdHTML} {
		c.Flags().StringVar(&opts.set, "set", "", "name of the scenario to render (default: first)")
	}

	var rootCmd = &cobra.Command{
		Use:           "avltrace",
		Version:       version,
		Short:         "Trace insertions into an AVL tree",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupTracing(opts.trace)
			color.NoColor = !opts.colored
		},
		RunE: cmdRun.RunE,
	}
	rootCmd.Flags().AddFlagSet(cmdRun.Flags())
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.file, "file", "f", "", "YAML file with scenarios")
	pf.StringVar(&opts.trace, "trace", "Error", "trace level (Debug, Info, Error)")
	pf.BoolVar(&opts.colored, "color", !color.NoColor, "color console output")
	pf.IntVar(&opts.width, "width", 0, "line width for drawing trees (default: terminal width)")
	pf.BoolVar(&opts.annotate, "annotate", true, "annotate drawn trees with height and balance factor")
	rootCmd.AddCommand(cmdRun, cmdDot, cmdHTML)
	return rootCmd
}

func setupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("avl").SetTraceLevel(tracing.TraceLevelFromString(level))
}

// scenarios returns the ad-hoc scenario given by args, the scenarios of the
// file flag or the built-in sets, in this order of precedence.
func scenarios(opts *options, args []string) ([]scenario.Scenario, error) {
	if len(args) > 0 {
		keys := make([]int, len(args))
		for i, arg := range args {
			k, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("%w: key %q is not an integer", scenario.ErrInvalidScenario, arg)
			}
			keys[i] = k
		}
		return []scenario.Scenario{{Name: "Keys", Keys: keys}}, nil
	}
	if opts.file != "" {
		return scenario.LoadFile(opts.file)
	}
	return scenario.Defaults(), nil
}

func runScenarios(ctx context.Context, w io.Writer, sets []scenario.Scenario, opts *options) error {
	runOpts := &scenario.Options{}
	if opts.show {
		runOpts.Final = func(w io.Writer, tree *avl.Tree[int]) error {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			return formatter.WriteConsole(w, tree, consoleConfig(opts))
		}
	}
	var tally chan scenario.Stats
	var bc *eventcast.Broadcaster[int]
	if opts.stats {
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		bc = eventcast.New[int](ctx)
		events, err := bc.Subscribe(ctx, 64)
		if err != nil {
			return err
		}
		tally = make(chan scenario.Stats, 1)
		go func() {
			tally <- scenario.Tally(events)
		}()
		runOpts.Observer = bc.Observer()
	}
	for _, s := range sets {
		if _, err := scenario.Run(w, s, runOpts); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	if bc != nil {
		bc.Close()
		stats := <-tally
		if _, err := fmt.Fprintf(w, "\n%s\n", stats); err != nil {
			return err
		}
	}
	return nil
}

// finalTree builds the tree of the scenario selected by args or the set flag.
func finalTree(opts *options, args []string) (*avl.Tree[int], error) {
	sets, err := scenarios(opts, args)
	if err != nil {
		return nil, err
	}
	selected := sets[0]
	if opts.set != "" && len(args) == 0 {
		found := false
		for _, s := range sets {
			if s.Name == opts.set {
				selected, found = s, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: no scenario named %q", scenario.ErrInvalidScenario, opts.set)
		}
	}
	tracer().Infof("building tree for scenario %q", selected.Name)
	tree := avl.NewTree[int]()
	for _, k := range selected.Keys {
		tree.Insert(k)
	}
	return tree, nil
}

func consoleConfig(opts *options) *formatter.Config {
	config := formatter.ConfigFromTerminal()
	if opts.width > 0 {
		config.LineWidth = opts.width
	}
	config.Annotate = opts.annotate
	return config
}

func tracer() tracing.Trace {
	return tracing.Select("avl")
}
