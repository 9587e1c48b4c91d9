package main

import (
	"log/slog"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/ecosim/config"
	"github.com/pthm-cable/ecosim/game"
	"github.com/pthm-cable/ecosim/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxDays    int
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxDays int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxDays:    maxDays,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// runResult holds the results from a single simulation run.
type runResult struct {
	survivalDays int                  // days before a census kind died out (or maxDays)
	days         []telemetry.DayStats // collected via the stats callback
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	fitness float64
	quality float64
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			result := fe.runSimulation(x, s)
			quality := computeQuality(result.days)
			results[idx] = seedResult{
				fitness: computeFitness(result.survivalDays, quality),
				quality: quality,
			}
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality float64
	for _, r := range results {
		totalFitness += r.fitness
		totalQuality += r.quality
	}

	n := float64(len(fe.seeds))
	fe.mu.Lock()
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSimulation executes a single headless simulation run.
// Runs until a census kind dies out or maxDays, whichever comes first.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) *runResult {
	cfg := copyConfig(fe.baseConfig)
	fe.params.ApplyToConfig(cfg, x)

	result := &runResult{}

	g, err := game.NewGameWithOptions(game.Options{
		Seed:          seed,
		Headless:      true,
		DaysPerUpdate: 1,
		Config:        cfg,
	})
	if err != nil {
		slog.Warn("run failed", "seed", seed, "error", err)
		return result
	}
	defer g.Unload()

	g.SetStatsCallback(func(stats telemetry.DayStats) {
		result.days = append(result.days, stats)
	})

	for g.Day() < fe.maxDays {
		g.UpdateHeadless()
		if g.Extinct() {
			result.survivalDays = g.Day()
			return result
		}
	}

	result.survivalDays = fe.maxDays
	return result
}

// computeFitness calculates the scalar fitness (lower = better).
// Formula: -(survivalDays × (1.0 + 0.2 × quality))
// Survival dominates; quality separates configs that survive equally long.
func computeFitness(survivalDays int, quality float64) float64 {
	return -(float64(survivalDays) * (1.0 + 0.2*quality))
}

// Quality component weights.
const (
	qualityWeightEnergy    = 0.40
	qualityWeightHunting   = 0.30
	qualityWeightStability = 0.30

	qualityWarmupDays = 3 // skip first N windows
	targetEnergy      = 60.0
	targetKillRate    = 0.3
)

// computeQuality computes ecosystem quality ∈ [0, 1] from day stats.
func computeQuality(days []telemetry.DayStats) float64 {
	if len(days) <= qualityWarmupDays {
		return 0
	}
	valid := days[qualityWarmupDays:]

	var energySum, huntSum float64
	var energyCount, huntCount int
	totals := make([]float64, 0, len(valid))

	for _, d := range valid {
		if d.Herbivores == 0 || d.Carnivores == 0 {
			continue
		}
		totals = append(totals, d.TotalEnergy)

		herbH := math.Exp(-math.Pow((d.HerbivoreEnergyP50-targetEnergy)/40.0, 2))
		carnH := math.Exp(-math.Pow((d.CarnivoreEnergyP50-targetEnergy)/40.0, 2))
		energySum += (herbH + carnH) / 2.0
		energyCount++

		if d.HuntsAttempted > 0 {
			huntSum += math.Exp(-math.Pow((d.KillRate-targetKillRate)/0.2, 2))
			huntCount++
		}
	}

	if energyCount == 0 {
		return 0
	}

	energyScore := energySum / float64(energyCount)

	huntScore := 0.0
	if huntCount > 0 {
		huntScore = huntSum / float64(huntCount)
	}

	stabilityScore := 0.0
	if len(totals) >= 2 {
		c := cv(totals)
		stabilityScore = math.Exp(-c * c)
	}

	quality := qualityWeightEnergy*energyScore +
		qualityWeightHunting*huntScore +
		qualityWeightStability*stabilityScore

	return clamp01(quality)
}

// cv computes the coefficient of variation (std/mean) for a slice of values.
func cv(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean, std := stat.PopMeanStdDev(values, nil)
	if mean == 0 {
		return 0
	}
	return std / mean
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}
