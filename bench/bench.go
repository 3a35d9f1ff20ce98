// Package bench races the sorting algorithms against each other on random
// input. Trials run on a worker pool, every result is checked for order, and
// timings are exported as Prometheus metrics.
package bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/daily-dev-lab/envutil"
	"github.com/amp-labs/daily-dev-lab/errors"
	"github.com/amp-labs/daily-dev-lab/logger"
	"github.com/amp-labs/daily-dev-lab/sorting"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

const (
	defaultTrials = 20
	defaultSize   = 1000
	defaultSeed   = 1
)

// Config controls a benchmark run.
type Config struct {
	// Algorithms to compare. Empty means every algorithm in the sorting package.
	Algorithms []sorting.Algorithm

	// Trials is the number of random inputs each algorithm sorts.
	Trials int

	// Size is the length of each random input.
	Size int

	// Workers bounds how many sorts run at once.
	Workers int

	// Seed makes the generated inputs reproducible.
	Seed uint64

	// Registerer receives the run's metrics. Nil means a fresh registry.
	Registerer prometheus.Registerer

	sortWith func(sorting.Algorithm, []int) ([]int, error)
}

// DefaultConfig returns a small run over every algorithm.
func DefaultConfig() Config {
	return Config{
		Algorithms: sorting.Algorithms(),
		Trials:     defaultTrials,
		Size:       defaultSize,
		Workers:    runtime.NumCPU(),
		Seed:       defaultSeed,
	}
}

// ConfigFromEnv builds a Config from BENCH_TRIALS, BENCH_SIZE, BENCH_WORKERS,
// BENCH_SEED and PRACTICE_ALGORITHM, falling back to DefaultConfig for
// anything unset. Every malformed variable is reported, not just the first.
func ConfigFromEnv(ctx context.Context) (Config, error) {
	cfg := DefaultConfig()

	var errs errors.Collection

	read := func(key string, dfl int, valid func(int) error) int {
		v, err := envutil.Int(ctx, key, envutil.Default(dfl), envutil.Validate(valid)).Value()
		errs.Add(err)

		return v
	}

	cfg.Trials = read("BENCH_TRIALS", cfg.Trials, envutil.Positive)
	cfg.Size = read("BENCH_SIZE", cfg.Size, envutil.Positive)
	cfg.Workers = read("BENCH_WORKERS", cfg.Workers, envutil.Positive)
	cfg.Seed = uint64(read("BENCH_SEED", defaultSeed, envutil.NonNegative)) //nolint:gosec

	algo := envutil.Map(envutil.String(ctx, "PRACTICE_ALGORITHM"), sorting.ParseAlgorithm)
	if algo.HasValue() || algo.Error() != nil {
		a, err := algo.Value()
		errs.Add(err)

		cfg.Algorithms = []sorting.Algorithm{a}
	}

	return cfg, errs.GetError()
}

func (c Config) validate() error {
	var errs errors.Collection

	for name, v := range map[string]int{"trials": c.Trials, "size": c.Size, "workers": c.Workers} {
		if v <= 0 {
			errs.Add(fmt.Errorf("%w: %s must be positive, got %d", errors.ErrInvalidSize, name, v))
		}
	}

	for _, a := range c.Algorithms {
		if _, err := sorting.ParseAlgorithm(string(a)); err != nil {
			errs.Add(err)
		}
	}

	return errs.GetError()
}

// Result summarizes one algorithm's trials.
type Result struct {
	Runs     int64
	Failures int64
	Total    time.Duration
}

// Mean returns the average time per sort.
func (r Result) Mean() time.Duration {
	if r.Runs == 0 {
		return 0
	}

	return r.Total / time.Duration(r.Runs)
}

// Report is the outcome of Run.
type Report struct {
	RunID   string
	Size    int
	Trials  int
	Results map[sorting.Algorithm]Result
}

type tally struct {
	runs     atomic.Int64
	failures atomic.Int64
	total    atomic.Duration
}

// Run sorts cfg.Trials random inputs with every configured algorithm. It
// returns an error if the config is invalid, if ctx is cancelled before all
// trials ran, or if any algorithm produced output that is not sorted; in the
// last case the report is returned as well.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if len(cfg.Algorithms) == 0 {
		cfg.Algorithms = sorting.Algorithms()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.NewRegistry()
	}

	if cfg.sortWith == nil {
		cfg.sortWith = sorting.Sort[[]int, int]
	}

	m, err := newMetrics(cfg.Registerer)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	ctx = logger.With(ctx, "run_id", runID)
	log := logger.Get(ctx)

	log.Info("Starting sort benchmark",
		"algorithms", cfg.Algorithms, "trials", cfg.Trials, "size", cfg.Size, "workers", cfg.Workers)

	tallies := make(map[sorting.Algorithm]*tally, len(cfg.Algorithms))
	for _, a := range cfg.Algorithms {
		tallies[a] = &tally{}
	}

	var (
		mut  sync.Mutex
		errs errors.Collection
	)

	pool := pond.NewPool(cfg.Workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for trial := range cfg.Trials {
		input := randomInput(cfg.Seed, uint64(trial), cfg.Size) //nolint:gosec

		for _, algo := range cfg.Algorithms {
			group.Submit(func() {
				if ctx.Err() != nil {
					return
				}

				err := runOne(cfg, m, tallies[algo], algo, input)
				if err != nil {
					mut.Lock()
					errs.Add(logger.AnnotateError(err, "algorithm", algo.String(), "trial", trial))
					mut.Unlock()
				}
			})
		}
	}

	if err := group.Wait(); err != nil && ctx.Err() == nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		log.Warn("Sort benchmark cancelled", "error", err)

		return nil, err
	}

	report := &Report{
		RunID:   runID,
		Size:    cfg.Size,
		Trials:  cfg.Trials,
		Results: make(map[sorting.Algorithm]Result, len(tallies)),
	}

	for algo, t := range tallies {
		res := Result{Runs: t.runs.Load(), Failures: t.failures.Load(), Total: t.total.Load()}
		report.Results[algo] = res

		log.Info("Sort benchmark result",
			"algorithm", algo.String(), "runs", res.Runs, "failures", res.Failures, "mean", res.Mean())
	}

	// One line per failure so each keeps its algorithm and trial attributes.
	for _, err := range errs.Errors() {
		log.Error("Sort benchmark produced unsorted output", "error", err)
	}

	if err := errs.GetError(); err != nil {
		return report, err
	}

	return report, nil
}

func runOne(cfg Config, m *metrics, t *tally, algo sorting.Algorithm, input []int) error {
	start := time.Now()

	out, err := cfg.sortWith(algo, input)

	elapsed := time.Since(start)

	t.runs.Inc()
	t.total.Add(elapsed)
	m.duration.WithLabelValues(algo.String()).Observe(elapsed.Seconds())

	if err == nil && (len(out) != len(input) || !slices.IsSorted(out)) {
		err = fmt.Errorf("%s returned unsorted output", algo)
	}

	if err != nil {
		t.failures.Inc()
		m.runs.WithLabelValues(algo.String(), "unsorted").Inc()

		return err
	}

	m.runs.WithLabelValues(algo.String(), "ok").Inc()

	return nil
}

// randomInput returns the same slice for the same seed and trial.
func randomInput(seed, trial uint64, size int) []int {
	rng := rand.New(rand.NewPCG(seed, trial)) //nolint:gosec

	out := make([]int, size)
	for i := range out {
		out[i] = rng.IntN(size * 10)
	}

	return out
}
