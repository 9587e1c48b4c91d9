// Command optimize searches for ecosystem parameters that keep every kind
// alive for as long as possible.
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/ecosim/config"
)

type options struct {
	configPath string
	maxDays    int
	seeds      int
	maxEvals   int
	population int
	outputDir  string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Base config YAML file (empty = use defaults)")
	flag.IntVar(&opts.maxDays, "max-days", 365, "Maximum simulation duration in days (cap)")
	flag.IntVar(&opts.seeds, "seeds", 3, "Number of seeds per evaluation")
	flag.IntVar(&opts.maxEvals, "max-evals", 200, "Maximum number of evaluations")
	flag.IntVar(&opts.population, "population", 0, "CMA-ES population size (0 = auto)")
	flag.StringVar(&opts.outputDir, "output", "", "Output directory for results")
	flag.Parse()

	// Every run logs its own creation; keep only warnings.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := run(opts); err != nil {
		slog.Error("optimize failed", "error", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.outputDir == "" {
		return errors.New("--output is required")
	}
	if err := os.MkdirAll(opts.outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := config.Init(opts.configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	baseCfg := config.Cfg()

	params := NewParamVector()
	evalSeeds := make([]int64, opts.seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}
	evaluator := NewFitnessEvaluator(params, opts.maxDays, evalSeeds, baseCfg)

	evalLog, err := createEvalLog(filepath.Join(opts.outputDir, "optimize_log.csv"), params)
	if err != nil {
		return err
	}
	defer evalLog.Close()

	popSize := opts.population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(params.Dim())/2.0)
	}

	best := &bestTracker{fitness: 1e9}
	start := time.Now()
	evals := 0

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			// CMA-ES works in normalized space
			clamped := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(clamped)
			evals++
			best.observe(fitness, clamped)
			if err := evalLog.Record(evals, fitness, clamped); err != nil {
				slog.Warn("failed to log evaluation", "eval", evals, "error", err)
			}

			elapsed := time.Since(start)
			remaining := time.Duration(opts.maxEvals-evals) * (elapsed / time.Duration(evals))
			quality := evaluator.LastQuality()
			fmt.Printf("Eval %d/%d: survived=%.0fd quality=%.2f (best=%.0f) | elapsed: %s, ETA: %s\n",
				evals, opts.maxEvals, survivalFromFitness(fitness, quality), quality, best.fitness,
				formatDuration(elapsed), formatDuration(remaining))
			return fitness
		},
	}

	fmt.Printf("Starting CMA-ES optimization with %d parameters, population=%d, max_evals=%d\n",
		params.Dim(), popSize, opts.maxEvals)
	fmt.Printf("Seeds per evaluation: %d, days per run: %d\n", opts.seeds, opts.maxDays)

	initX := params.Normalize(params.Clamp(params.ExtractFromConfig(baseCfg)))
	result, err := optimize.Minimize(problem, initX,
		&optimize.Settings{FuncEvaluations: opts.maxEvals},
		&optimize.CmaEsChol{InitStepSize: 0.3, Population: popSize},
	)
	if err != nil {
		slog.Warn("optimization ended", "error", err)
	}

	bestParams := best.params
	if bestParams == nil && result != nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}
	if bestParams == nil {
		return errors.New("no evaluation completed")
	}

	fmt.Printf("\nOptimization complete after %d evaluations in %s\n", evals, formatDuration(time.Since(start)))
	fmt.Printf("Best fitness: %.0f\n", best.fitness)
	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s (%s): %.6f\n", spec.Name, spec.Path, bestParams[i])
	}

	bestCfg := copyConfig(baseCfg)
	params.ApplyToConfig(bestCfg, bestParams)
	configOutPath := filepath.Join(opts.outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		return err
	}
	fmt.Printf("\nBest config saved to: %s\n", configOutPath)
	return nil
}

// bestTracker remembers the lowest fitness seen across all evaluations,
// which CMA-ES does not necessarily report as its final point.
type bestTracker struct {
	fitness float64
	params  []float64
}

func (b *bestTracker) observe(fitness float64, params []float64) {
	if fitness < b.fitness {
		b.fitness = fitness
		b.params = append(b.params[:0], params...)
	}
}

// survivalFromFitness inverts computeFitness for progress output.
func survivalFromFitness(fitness, quality float64) float64 {
	return -fitness / (1.0 + 0.2*quality)
}

// evalLog writes one CSV row per evaluation; columns follow the parameter specs.
type evalLog struct {
	f *os.File
	w *csv.Writer
}

func createEvalLog(path string, params *ParamVector) (*evalLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating log file: %w", err)
	}
	l := &evalLog{f: f, w: csv.NewWriter(f)}

	header := []string{"eval", "fitness"}
	for _, spec := range params.Specs {
		header = append(header, spec.Name)
	}
	if err := l.write(header); err != nil {
		f.Close()
		return nil, err
	}
	return l, nil
}

// Record logs the clamped values actually simulated.
func (l *evalLog) Record(eval int, fitness float64, values []float64) error {
	row := []string{strconv.Itoa(eval), strconv.FormatFloat(fitness, 'f', 6, 64)}
	for _, v := range values {
		row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
	}
	return l.write(row)
}

func (l *evalLog) write(row []string) error {
	if err := l.w.Write(row); err != nil {
		return err
	}
	l.w.Flush()
	return l.w.Error()
}

func (l *evalLog) Close() error {
	l.w.Flush()
	return l.f.Close()
}

// formatDuration formats a duration as HhMMmSSs, or MmSSs for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}
