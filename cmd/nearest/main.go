// Command nearest finds the closest points between the curves of a scene
// file.
//
// Usage:
//
//	nearest [flags] SCENE
//
// SCENE is a TOML or YAML file describing the curves and solver settings.
// Flags override the file's settings.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/splinekit/curve3"
	"github.com/splinekit/curve3/internal/scene"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	steps     float32
	precision int
	workers   int
	json      bool
	verbose   bool
	pair      string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "nearest [flags] SCENE",
		Short: "Find the closest points between curves",
		Long: `nearest loads the curves of a scene file (TOML or YAML) and finds,
for every pair of curves, the two points closest to each other.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}
	f := cmd.Flags()
	f.Float32Var(&opts.steps, "steps", 0, "samples per 100 units of curve length in the first pass (overrides the scene)")
	f.IntVar(&opts.precision, "precision", 0, "number of refinement passes (overrides the scene)")
	f.IntVar(&opts.workers, "workers", 0, "number of pairs solved concurrently (overrides the scene)")
	f.BoolVar(&opts.json, "json", false, "print results as JSON")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	f.StringVar(&opts.pair, "pair", "", "only solve the pair of curves `a,b`")
	return cmd
}

func run(cmd *cobra.Command, path string, opts options) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	curve3.SetLogger(log)
	defer curve3.SetLogger(nil)

	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	if opts.steps != 0 {
		s.Solver.StepsPer100Units = opts.steps
	}
	if opts.precision != 0 {
		s.Solver.Precision = opts.precision
	}
	if opts.workers != 0 {
		s.Solver.Workers = opts.workers
	}
	if err := s.Validate(); err != nil {
		return err
	}
	log.Debug("loaded scene", "path", path, "curves", len(s.Curves))

	handles, err := s.Handles()
	if err != nil {
		return err
	}
	names := make([]string, len(s.Curves))
	for i, c := range s.Curves {
		names[i] = c.Name
	}
	if opts.pair != "" {
		a, b, ok := strings.Cut(opts.pair, ",")
		i, j := s.Index(strings.TrimSpace(a)), s.Index(strings.TrimSpace(b))
		if !ok || i < 0 || j < 0 || i == j {
			return fmt.Errorf("--pair %q: need two different curve names from the scene", opts.pair)
		}
		handles = []curve3.Handle{handles[i], handles[j]}
		names = []string{names[i], names[j]}
	}
	if len(handles) < 2 {
		return errors.New("scene needs at least two curves")
	}

	results, err := curve3.NearestPairs(cmd.Context(), handles, s.Options(), s.Solver.Workers)
	if err != nil {
		return err
	}
	if opts.json {
		return writeJSON(cmd.OutOrStdout(), names, results)
	}
	return writeTable(cmd.OutOrStdout(), names, results)
}

type jsonResult struct {
	A        string     `json:"a"`
	B        string     `json:"b"`
	PointA   [3]float32 `json:"point_a"`
	PointB   [3]float32 `json:"point_b"`
	TA       float32    `json:"t_a"`
	TB       float32    `json:"t_b"`
	Distance float32    `json:"distance"`
	Closest  bool       `json:"closest,omitempty"`
}

func writeJSON(w io.Writer, names []string, results []curve3.PairResult) error {
	closest, _ := curve3.ClosestPair(results)
	out := make([]jsonResult, len(results))
	for k, r := range results {
		out[k] = jsonResult{
			A:        names[r.I],
			B:        names[r.J],
			PointA:   [3]float32{r.P1.X, r.P1.Y, r.P1.Z},
			PointB:   [3]float32{r.P2.X, r.P2.Y, r.P2.Z},
			TA:       r.T1,
			TB:       r.T2,
			Distance: r.Distance,
			Closest:  r.I == closest.I && r.J == closest.J,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeTable(w io.Writer, names []string, results []curve3.PairResult) error {
	closest, _ := curve3.ClosestPair(results)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "A\tB\tT_A\tT_B\tPOINT_A\tPOINT_B\tDISTANCE\t")
	for _, r := range results {
		mark := ""
		if r.I == closest.I && r.J == closest.J {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\t%s\t%s\t%.4f\t%s\n",
			names[r.I], names[r.J], r.T1, r.T2, fmtPoint(r.P1), fmtPoint(r.P2), r.Distance, mark)
	}
	return tw.Flush()
}

func fmtPoint(p curve3.Point) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", p.X, p.Y, p.Z)
}
