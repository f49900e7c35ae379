// Command fimdpctl is a thin wrapper around package solver (spec §6): it
// loads a CMDP description, runs one objective, and prints the min-level
// vector. Exit codes: 0 on success, 2 on ill-formed input, 3 when the
// objective is unsatisfiable at the requested initial state.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/fimdpgo/cmdp"
	"github.com/katalvlaran/fimdpgo/fixpoint"
	"github.com/katalvlaran/fimdpgo/obslog"
	"github.com/katalvlaran/fimdpgo/serialize"
	"github.com/katalvlaran/fimdpgo/solver"
)

const (
	exitOK             = 0
	exitIllFormedInput = 2
	exitUnsatisfiable  = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fimdpctl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "path to a YAML run configuration (overrides -in/-format/-capacity/-objective; -targets still applies)")
		inPath     = fs.String("in", "", "path to a CMDP description file")
		format     = fs.String("format", "json", "description format: json or prism")
		capacity   = fs.Int("capacity", 0, "solver capacity; 0 means unbounded")
		objective  = fs.String("objective", "safe", "MIN_INIT_CONS, SAFE, POS_REACH, AS_REACH or BUCHI")
		targetsCSV = fs.String("targets", "", "comma-separated target state ids, overriding any embedded in the description")
		initState  = fs.Int("init", -1, "if >= 0, exit 3 when this state's min level is unsatisfiable")
		verbose    = fs.Bool("v", false, "log fixpoint progress to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return exitIllFormedInput
	}

	cfg := serialize.RunConfig{Path: *inPath, Format: *format, Capacity: *capacity, Objective: *objective}
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitIllFormedInput
		}
		defer f.Close()
		loaded, err := serialize.LoadRunConfig(f)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitIllFormedInput
		}
		cfg = loaded
	}
	if *targetsCSV != "" {
		ids, err := parseCSVIDs(*targetsCSV)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitIllFormedInput
		}
		cfg.Targets = ids
	}

	cm, targets, err := loadCMDP(cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitIllFormedInput
	}
	if len(cfg.Targets) > 0 {
		targets = cfg.TargetStates()
	}

	obj, err := solver.ParseObjective(cfg.Objective)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitIllFormedInput
	}

	capacityVal := fixpoint.Value(cfg.Capacity)
	if cfg.Capacity <= 0 {
		capacityVal = fixpoint.Inf
	}

	var opts []solver.Option
	if *verbose {
		opts = append(opts, solver.WithLogger(obslog.New(slog.NewTextHandler(stderr, nil))))
	}

	s := solver.New(cm, capacityVal, targets, opts...)
	levels, err := s.MinLevels(obj)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitIllFormedInput
	}

	for _, sid := range cm.States() {
		fmt.Fprintf(stdout, "%d: %s\n", sid, formatLevel(levels[sid]))
	}

	if *initState >= 0 && levels[cmdp.StateID(*initState)] == fixpoint.Inf {
		return exitUnsatisfiable
	}
	return exitOK
}

func formatLevel(v fixpoint.Value) string {
	if v == fixpoint.Inf {
		return "inf"
	}
	return strconv.Itoa(v)
}

func parseCSVIDs(csv string) ([]int, error) {
	parts := strings.Split(csv, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid target id %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func loadCMDP(cfg serialize.RunConfig) (*cmdp.CMDP, []cmdp.StateID, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	switch cfg.Format {
	case "prism":
		return serialize.ImportPRISM(f)
	default:
		return serialize.ImportJSON(f)
	}
}
