package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ullman/builder"
	"github.com/katalvlaran/ullman/internal/graphio"
	"github.com/katalvlaran/ullman/internal/logging"
)

type genFlags struct {
	seed     int64
	p        float64
	idScheme string
	output   string
	format   string
	name     string
}

func newGenCommand(a *app) *cobra.Command {
	var f genFlags

	cmd := &cobra.Command{
		Use:   "gen <kind> <n> [m]",
		Short: "Generate a graph document of a named topology",
		Long: "gen writes a graph document. Kinds: " + strings.Join(builder.Kinds(), ", ") + ".\n" +
			"m is the column count of grid, the right side of bipartite and the degree of regular.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				f.seed = a.cfg.Gen.Seed
			}
			if !cmd.Flags().Changed("id-scheme") {
				f.idScheme = a.cfg.Gen.IDScheme
			}
			return a.runGen(cmd, args, f)
		},
	}

	fl := cmd.Flags()
	fl.Int64Var(&f.seed, "seed", 1, "seed of the random source")
	fl.Float64Var(&f.p, "p", 0.1, "edge probability of random graphs")
	fl.StringVar(&f.idScheme, "id-scheme", "decimal", `vertex IDs: decimal, letters, hex or "prefix:<p>"`)
	fl.StringVarP(&f.output, "output", "o", "", "output file; format follows the extension (default stdout)")
	fl.StringVar(&f.format, "format", graphio.FormatYAML, "stdout format: yaml, json or hcl")
	fl.StringVar(&f.name, "name", "", "document name (default <kind>-<n>)")

	return cmd
}

func (a *app) runGen(cmd *cobra.Command, args []string, f genFlags) error {
	kind := args[0]
	prm := builder.Params{P: f.p}
	var err error
	if prm.N, err = strconv.Atoi(args[1]); err != nil {
		return fmt.Errorf("gen: n: %w", err)
	}
	if len(args) == 3 {
		if prm.M, err = strconv.Atoi(args[2]); err != nil {
			return fmt.Errorf("gen: m: %w", err)
		}
	}

	cons, err := builder.ByName(kind, prm)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	idFn, err := builder.IDSchemeByName(f.idScheme)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(f.seed), builder.WithIDScheme(idFn)}, cons)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}

	name := f.name
	if name == "" {
		name = kind + "-" + args[1]
	}
	doc := graphio.FromGraph(name, g)
	logging.FromContext(cmd.Context()).Debug("generated graph",
		"kind", kind,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"seed", f.seed,
	)

	if f.output == "" {
		return graphio.Encode(a.stdout, doc, f.format)
	}

	return graphio.Save(f.output, doc)
}
