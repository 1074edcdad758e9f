package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathtrade/mcflow"
	"github.com/katalvlaran/mathtrade/option"
	"github.com/katalvlaran/mathtrade/tradegraph"
	"github.com/katalvlaran/mathtrade/trade"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// runtimeError marks a failure inside the solve/report pipeline, as
// opposed to a usage error cobra already caught before RunE ran (spec §6:
// "Exit code 0 on success, 1 on usage error, negative on runtime error").
type runtimeError struct{ err error }

func (r *runtimeError) Error() string { return r.err.Error() }
func (r *runtimeError) Unwrap() error { return r.err }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var re *runtimeError
		if errors.As(err, &re) {
			fmt.Fprintln(os.Stderr, re.Error())
			os.Exit(-1)
		}
		os.Exit(1)
	}
}

type flags struct {
	inputPath   string
	inputURL    string
	graphFile   string
	priority    string
	noPriority  bool
	hideNon     bool
	showNon     bool
	algorithm   string
	benchAll    bool
	graphExport string
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "mathtrade",
		Short: "Solve a math trade: parse want-lists, find optimal trade cycles, report them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.inputPath, "input", "", "path to a want-file (defaults to stdin)")
	cmd.Flags().StringVar(&f.inputURL, "input-url", "", "URL to fetch a want-file from")
	cmd.Flags().StringVar(&f.graphFile, "graph-file", "", "path to a pre-built canonical graph export")
	cmd.Flags().StringVar(&f.priority, "priority", "", "override the priority scheme (e.g. LINEAR-PRIORITIES)")
	cmd.Flags().BoolVar(&f.noPriority, "no-priority", false, "force NONE-priority cost model regardless of the want-file")
	cmd.Flags().BoolVar(&f.hideNon, "hide-nontrades", false, "omit non-trading items from ITEM SUMMARY")
	cmd.Flags().BoolVar(&f.showNon, "show-nontrades", false, "force non-trading items into ITEM SUMMARY")
	cmd.Flags().StringVar(&f.algorithm, "algorithm", "", "solver oracle: successive-shortest-paths (default) or brute-force")
	cmd.Flags().BoolVar(&f.benchAll, "benchmark-all", false, "run every available oracle and report their agreement")
	cmd.Flags().StringVar(&f.graphExport, "graph-export", "", "write the canonical graph export to this path before solving")
	cmd.Flags().Bool("version", false, "print the version and exit")

	return cmd
}

func runRoot(cmd *cobra.Command, f flags) error {
	if v, _ := cmd.Flags().GetBool("version"); v {
		fmt.Println(version)

		return nil
	}

	if err := validateInputSelection(f); err != nil {
		return err
	}
	if f.priority != "" && f.noPriority {
		return fmt.Errorf("mathtrade: --priority and --no-priority are mutually exclusive")
	}
	if f.hideNon && f.showNon {
		return fmt.Errorf("mathtrade: --hide-nontrades and --show-nontrades are mutually exclusive")
	}
	if f.algorithm != "" && f.benchAll {
		return fmt.Errorf("mathtrade: --algorithm and --benchmark-all are mutually exclusive")
	}

	cfg, err := loadConfig()
	if err != nil {
		return &runtimeError{err}
	}

	log := newLogger(cfg.LogLevel)

	algo, err := resolveAlgorithm(f.algorithm, cfg.Algorithm)
	if err != nil {
		return fmt.Errorf("mathtrade: %w", err)
	}

	if f.benchAll {
		if err := runBenchmarkAll(cmd.OutOrStdout(), f, log); err != nil {
			return &runtimeError{err}
		}

		return nil
	}

	seed, err := buildSeedStore(f)
	if err != nil {
		return err
	}

	res, err := runPipeline(f, seed, algo, log)
	if err != nil {
		return &runtimeError{err}
	}

	// These two override win regardless of what the want-file itself
	// declared, since they take effect only after parsing has already
	// finished (spec §6 "priority-scheme override or priority disable",
	// "show/hide non-trades"). A priority override that differs from the
	// parsed scheme re-solves the parsed graph under the forced scheme.
	if (f.priority != "" || f.noPriority) && res.Options.Priority() != f.priority {
		res.Options.ForcePriority(f.priority)
		resolved, err := trade.RunFromGraph(res.Graph, res.Options, algo)
		if err != nil {
			return &runtimeError{err}
		}
		resolved.Parse, resolved.Diagnostics = res.Parse, res.Diagnostics
		res = resolved
	}
	if f.hideNon {
		res.Options.ForceBool(option.HideNontrades, true)
	}
	if f.showNon {
		res.Options.ForceBool(option.HideNontrades, false)
	}

	if f.graphExport != "" {
		if err := exportGraph(res, f.graphExport, log); err != nil {
			log.Warn().Err(err).Msg("falling back to stdout for graph export")
			if err := res.Graph.WriteCanonical(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("writing graph export: %w", err)
			}
		}
	}

	if err := trade.Report(cmd.OutOrStdout(), res); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}

// buildSeedStore returns a fresh option.Store carrying any CLI priority
// override, seeded before parsing begins (spec §4.2: options only apply
// before the first directive/payload line). Each pipeline run — including
// each oracle in --benchmark-all — needs its own store instance: a Store
// that has already parsed one want-file has MarkParsingStarted permanently
// set and would reject a second run's own "#!" lines.
func buildSeedStore(f flags) (*option.Store, error) {
	seed := option.NewStore()
	if f.priority != "" {
		if err := seed.Apply([]string{f.priority}); err != nil {
			return nil, fmt.Errorf("mathtrade: --priority %s: %w", f.priority, err)
		}
	}

	return seed, nil
}

func validateInputSelection(f flags) error {
	n := 0
	if f.inputPath != "" {
		n++
	}
	if f.inputURL != "" {
		n++
	}
	if f.graphFile != "" {
		n++
	}
	if n > 1 {
		return fmt.Errorf("mathtrade: at most one of --input, --input-url, --graph-file may be given")
	}

	return nil
}

func resolveAlgorithm(flagValue, configValue string) (mcflow.Algorithm, error) {
	name := flagValue
	if name == "" {
		name = configValue
	}
	switch name {
	case "", "successive-shortest-paths":
		return mcflow.SuccessiveShortestPaths, nil
	case "brute-force":
		return mcflow.BruteForce, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", name)
	}
}

func runPipeline(f flags, seed *option.Store, algo mcflow.Algorithm, log zerolog.Logger) (*trade.Result, error) {
	if f.graphFile != "" {
		file, err := os.Open(f.graphFile)
		if err != nil {
			return nil, fmt.Errorf("opening graph file: %w", err)
		}
		defer file.Close()

		g, err := tradegraph.ReadCanonical(file)
		if err != nil {
			return nil, fmt.Errorf("reading graph file: %w", err)
		}

		return trade.RunFromGraph(g, seed, algo)
	}

	r, closer, err := openInput(f)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer closer.Close()
	}

	return trade.Run(r, seed, algo, log)
}

func openInput(f flags) (io.Reader, io.Closer, error) {
	if f.inputURL != "" {
		resp, err := http.Get(f.inputURL)
		if err != nil {
			return nil, nil, fmt.Errorf("fetching input URL: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()

			return nil, nil, fmt.Errorf("input URL returned status %d", resp.StatusCode)
		}

		return resp.Body, resp.Body, nil
	}

	if f.inputPath != "" {
		file, err := os.Open(f.inputPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening input file: %w", err)
		}

		return file, file, nil
	}

	return os.Stdin, nil, nil
}

func exportGraph(res *trade.Result, path string, log zerolog.Logger) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating graph export file: %w", err)
	}
	defer out.Close()

	if err := res.Graph.WriteCanonical(out); err != nil {
		return fmt.Errorf("writing graph export: %w", err)
	}

	log.Info().Str("path", path).Msg("wrote canonical graph export")

	return nil
}

func runBenchmarkAll(w io.Writer, f flags, log zerolog.Logger) error {
	algos := []struct {
		name string
		algo mcflow.Algorithm
	}{
		{"successive-shortest-paths", mcflow.SuccessiveShortestPaths},
		{"brute-force", mcflow.BruteForce},
	}

	for _, a := range algos {
		seed, err := buildSeedStore(f)
		if err != nil {
			return err
		}

		start := time.Now()
		res, err := runPipeline(f, seed, a.algo, log)
		if err != nil {
			return fmt.Errorf("benchmarking %s: %w", a.name, err)
		}
		fmt.Fprintf(w, "%-28s cost=%d trades=%d elapsed=%s\n",
			a.name, res.Flow.TotalCost, res.Cycles.NumTrades(), time.Since(start))
	}

	return nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
