package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ullman/core"
	"github.com/katalvlaran/ullman/internal/config"
	"github.com/katalvlaran/ullman/internal/graphio"
	"github.com/katalvlaran/ullman/internal/metrics"
	"github.com/katalvlaran/ullman/ullman"
)

type matchFlags struct {
	pattern string
	targets []string
	asJSON  bool
	match   config.Match
}

// targetReport is the outcome of matching the pattern into one target.
type targetReport struct {
	Target   string              `json:"target"`
	Found    bool                `json:"found"`
	Mapping  map[string]string   `json:"mapping,omitempty"`
	Matches  []map[string]string `json:"matches,omitempty"`
	Stats    *statsReport        `json:"stats,omitempty"`
	Error    string              `json:"error,omitempty"`
	err      error
	stats    *ullman.Stats
	patternV []string
}

type statsReport struct {
	Candidates int   `json:"candidates"`
	States     int   `json:"states"`
	Pruned     int   `json:"pruned"`
	Passes     int   `json:"passes"`
	Matches    int   `json:"matches"`
	MaxDepth   int   `json:"max_depth"`
	Complete   bool  `json:"complete"`
	ElapsedUS  int64 `json:"elapsed_us"`
}

func newMatchCommand(a *app) *cobra.Command {
	var f matchFlags

	cmd := &cobra.Command{
		Use:   "match -p pattern -t target [-t target...]",
		Short: "Search for the pattern graph in each target graph",
		Long: "match reports for every target whether the pattern is isomorphic to one of\n" +
			"its subgraphs, with the witness mapping. Graph files may be YAML, JSON or HCL.\n" +
			"Exit status is 0 when every target matched, 1 when some did not, 2 on error.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.match = mergeMatch(cmd, a.cfg.Match, f.match)
			return a.runMatch(cmd.Context(), f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.pattern, "pattern", "p", "", "pattern graph file")
	fl.StringArrayVarP(&f.targets, "target", "t", nil, "target graph file (repeatable)")
	fl.BoolVar(&f.match.Induced, "induced", false, "require pattern non-edges to map to target non-edges")
	fl.BoolVar(&f.match.All, "all", false, "enumerate every mapping instead of stopping at the first")
	fl.IntVar(&f.match.Limit, "limit", 0, "with --all, stop after this many mappings (0 = unlimited)")
	fl.IntVar(&f.match.MaxStates, "max-states", 0, "abort a target after this many search states (0 = unlimited)")
	fl.DurationVar(&f.match.Timeout, "timeout", 0, "abort a target after this duration (0 = none)")
	fl.IntVar(&f.match.Jobs, "jobs", 1, "number of targets matched concurrently")
	fl.BoolVar(&f.asJSON, "json", false, "print a JSON report")
	_ = cmd.MarkFlagRequired("pattern")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// mergeMatch overlays the flags the user set on the configured defaults.
func mergeMatch(cmd *cobra.Command, base, set config.Match) config.Match {
	fl := cmd.Flags()
	if fl.Changed("induced") {
		base.Induced = set.Induced
	}
	if fl.Changed("all") {
		base.All = set.All
	}
	if fl.Changed("limit") {
		base.Limit = set.Limit
	}
	if fl.Changed("max-states") {
		base.MaxStates = set.MaxStates
	}
	if fl.Changed("timeout") {
		base.Timeout = set.Timeout
	}
	if fl.Changed("jobs") {
		base.Jobs = set.Jobs
	}

	return base
}

func (a *app) runMatch(ctx context.Context, f matchFlags) error {
	cfg := config.Default()
	cfg.Match = f.match
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := a.log.With("run_id", uuid.NewString())
	_, pattern, err := graphio.LoadGraph(f.pattern)
	if err != nil {
		return err
	}
	log.Info("match started",
		"pattern", f.pattern,
		"vertices", pattern.VertexCount(),
		"edges", pattern.EdgeCount(),
		"targets", len(f.targets),
		"jobs", f.match.Jobs,
	)

	var rec *metrics.Recorder
	if a.cfg.MetricsFile != "" {
		rec = metrics.NewRecorder()
	}

	reports := make([]*targetReport, len(f.targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.match.Jobs)
	for i, target := range f.targets {
		i, target := i, target
		g.Go(func() error {
			reports[i] = a.matchTarget(gctx, pattern, target, f.match, rec)
			log.Debug("target done", "target", target, "found", reports[i].Found, "err", reports[i].err)
			return nil
		})
	}
	_ = g.Wait()

	if err = a.printReports(reports, f.asJSON); err != nil {
		return err
	}
	if rec != nil {
		if err = rec.WriteFile(a.cfg.MetricsFile); err != nil {
			return err
		}
	}

	failed, missed := 0, 0
	for _, r := range reports {
		switch {
		case r.err != nil:
			failed++
		case !r.Found:
			missed++
		}
	}
	log.Info("match finished", "targets", len(reports), "failed", failed, "missed", missed)
	if failed > 0 {
		return fmt.Errorf("cli: %d of %d targets failed", failed, len(reports))
	}
	if missed > 0 {
		return ErrNoMatch
	}

	return nil
}

// matchTarget loads one target and runs the matcher on it. Errors are kept in
// the report so that the remaining targets still run.
func (a *app) matchTarget(ctx context.Context, pattern *core.Graph, path string, m config.Match, rec *metrics.Recorder) *targetReport {
	r := &targetReport{Target: path, patternV: pattern.Vertices()}
	start := time.Now()
	defer func() {
		if r.err != nil {
			r.Error = r.err.Error()
		}
		if rec != nil {
			rec.Observe(r.Found, r.stats, r.err, time.Since(start))
		}
	}()

	_, target, err := graphio.LoadGraph(path)
	if err != nil {
		r.err = err
		return r
	}
	if m.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.Timeout)
		defer cancel()
	}

	opts := []ullman.Option{ullman.WithContext(ctx), ullman.WithLogger(a.log.With("target", path))}
	if m.Induced {
		opts = append(opts, ullman.WithInduced())
	}
	if m.All {
		opts = append(opts, ullman.WithMaxMatches(m.Limit))
	}
	if m.MaxStates > 0 {
		opts = append(opts, ullman.WithMaxStates(m.MaxStates))
	}

	res, err := ullman.MatchGraphs(pattern, target, opts...)
	r.err = err
	if res == nil {
		return r
	}
	r.Found, r.Mapping, r.stats = res.Found, res.Mapping, &res.Stats
	if m.All {
		r.Matches = res.Matches
	}
	r.Stats = &statsReport{
		Candidates: res.Stats.Candidates,
		States:     res.Stats.States,
		Pruned:     res.Stats.Pruned,
		Passes:     res.Stats.Passes,
		Matches:    res.Stats.Matches,
		MaxDepth:   res.Stats.MaxDepth,
		Complete:   res.Stats.Complete,
		ElapsedUS:  time.Since(start).Microseconds(),
	}

	return r
}

func (a *app) printReports(reports []*targetReport, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	for _, r := range reports {
		if err := r.writeText(a.stdout); err != nil {
			return err
		}
	}

	return nil
}

// writeText prints the report, mappings listed in pattern vertex order.
func (r *targetReport) writeText(w io.Writer) error {
	var b strings.Builder
	switch {
	case r.err != nil:
		fmt.Fprintf(&b, "%s: error: %v\n", r.Target, r.err)
	case !r.Found:
		fmt.Fprintf(&b, "%s: no match\n", r.Target)
	case r.Matches != nil:
		fmt.Fprintf(&b, "%s: %d mappings\n", r.Target, len(r.Matches))
		for _, m := range r.Matches {
			parts := make([]string, len(r.patternV))
			for i, u := range r.patternV {
				parts[i] = u + "->" + m[u]
			}
			fmt.Fprintf(&b, "  %s\n", strings.Join(parts, " "))
		}
	default:
		fmt.Fprintf(&b, "%s: match\n", r.Target)
		for _, u := range r.patternV {
			fmt.Fprintf(&b, "  %s -> %s\n", u, r.Mapping[u])
		}
	}
	_, err := io.WriteString(w, b.String())

	return err
}
