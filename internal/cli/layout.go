package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strataviz/strata/pkg/layout"
	"github.com/strataviz/strata/pkg/layout/order"
	"github.com/strataviz/strata/pkg/layout/rank"
)

// newLayoutCmd creates the layout command, the pipeline entry point.
func newLayoutCmd() *cobra.Command {
	var (
		output      string
		configPath  string
		ranksOnly   bool
		showMatrix  bool
		rankFactor  int
		noHeuristic bool
	)

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute ranks and orders for a directed acyclic graph",
		Long: `Compute the layered layout skeleton for a directed acyclic graph.

The layout command reads a graph.json file, assigns every node an integer
rank with the longest-path heuristic, compacts empty ranks, allocates
border nodes for clusters, and minimizes edge crossings within each rank.
The output is a layout.json file mapping node IDs to rank and order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = loadConfig(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("node-rank-factor") {
				cfg.NodeRankFactor = rankFactor
			}
			if cmd.Flags().Changed("no-ordering-heuristic") {
				cfg.DisableOrderingHeuristic = noHeuristic
			}
			return runLayout(cmd.Context(), args[0], output, cfg, ranksOnly, showMatrix)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().BoolVar(&ranksOnly, "ranks-only", false, "stop after ranking, skip ordering")
	cmd.Flags().BoolVar(&showMatrix, "matrix", false, "print the layer matrix after layout")
	cmd.Flags().IntVar(&rankFactor, "node-rank-factor", 1, "empty-rank compaction granularity")
	cmd.Flags().BoolVar(&noHeuristic, "no-ordering-heuristic", false, "keep the seeded order, skip crossing minimization")

	return cmd
}

// runLayout executes the pipeline: rank, compact, add borders, order,
// write the result.
func runLayout(ctx context.Context, input, output string, cfg Config, ranksOnly, showMatrix bool) error {
	logger := loggerFromContext(ctx)

	g, err := readGraphFile(input)
	if err != nil {
		return err
	}
	g.SetNodeRankFactor(cfg.NodeRankFactor)
	logger.Debugf("loaded %s: %d nodes, %d edges", input, g.NodeCount(), g.EdgeCount())

	prog := newProgress(logger)
	if err := rank.LongestPath(g); err != nil {
		return fmt.Errorf("rank graph: %w", err)
	}
	// Clusters are positioned by their span, not a rank of their own.
	for _, n := range g.Nodes() {
		if len(g.Children(n.ID)) > 0 {
			n.HasRank = false
		}
	}
	layout.NormalizeRanks(g)
	if err := layout.RemoveEmptyRanks(g); err != nil {
		return fmt.Errorf("compact ranks: %w", err)
	}
	prog.done(fmt.Sprintf("Ranked %d nodes", g.NodeCount()))

	ids := layout.NewIDSource()
	if !ranksOnly {
		layout.AddBorderSegments(g, ids)

		prog = newProgress(logger)
		if err := order.Order(g, order.Options{
			DisableHeuristic: cfg.DisableOrderingHeuristic,
			Logger:           logger,
			IDs:              ids,
		}); err != nil {
			return fmt.Errorf("order graph: %w", err)
		}
		crossings := order.CrossCount(g, layout.BuildLayerMatrix(g))
		prog.done(fmt.Sprintf("Ordered %d ranks, %.0f crossings", layout.MaxRank(g)+1, crossings))
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}
	if err := writeLayoutFile(layoutPlacements(g), outputPath); err != nil {
		return err
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(g.NodeCount(), g.EdgeCount(), layout.MaxRank(g)+1)
	if showMatrix {
		fmt.Fprint(os.Stderr, renderLayerMatrix(g))
	}
	return nil
}
