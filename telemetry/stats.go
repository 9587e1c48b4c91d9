package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DayStats holds aggregated statistics for a window of days.
type DayStats struct {
	WindowStartDay int    `csv:"-"`
	Day            int    `csv:"day"`
	Weather        string `csv:"weather"`

	// Population counts at window end
	Plants     int `csv:"plants"`
	Herbivores int `csv:"herbivores"`
	Carnivores int `csv:"carnivores"`
	Dead       int `csv:"dead"`

	// Events during window
	PlantDeaths     int `csv:"plant_deaths"`
	HerbivoreDeaths int `csv:"herbivore_deaths"`
	CarnivoreDeaths int `csv:"carnivore_deaths"`
	Failures        int `csv:"failures"`

	// Feeding
	PhotosynthesisYield float64 `csv:"photosynthesis_yield"`
	HuntsAttempted      int     `csv:"hunts_attempted"`
	Kills               int     `csv:"kills"`
	KillRate            float64 `csv:"kill_rate"`
	HuntGain            float64 `csv:"hunt_gain"`
	ForagesAttempted    int     `csv:"forages_attempted"`
	Forages             int     `csv:"forages"`
	ForageRate          float64 `csv:"forage_rate"`
	ForageGain          float64 `csv:"forage_gain"`

	// Energy distribution (sampled at window end)
	PlantEnergyMean float64 `csv:"plant_energy_mean"`
	PlantEnergyP10  float64 `csv:"plant_energy_p10"`
	PlantEnergyP50  float64 `csv:"plant_energy_p50"`
	PlantEnergyP90  float64 `csv:"plant_energy_p90"`

	HerbivoreEnergyMean float64 `csv:"herbivore_energy_mean"`
	HerbivoreEnergyP10  float64 `csv:"herbivore_energy_p10"`
	HerbivoreEnergyP50  float64 `csv:"herbivore_energy_p50"`
	HerbivoreEnergyP90  float64 `csv:"herbivore_energy_p90"`

	CarnivoreEnergyMean float64 `csv:"carnivore_energy_mean"`
	CarnivoreEnergyP10  float64 `csv:"carnivore_energy_p10"`
	CarnivoreEnergyP50  float64 `csv:"carnivore_energy_p50"`
	CarnivoreEnergyP90  float64 `csv:"carnivore_energy_p90"`

	TotalEnergy float64 `csv:"total_energy"` // Total energy in living organisms
}

// Percentile returns the p-th quantile of a sorted slice using linear
// interpolation. p is clamped to [0, 1]. Returns 0 if the slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return stat.Quantile(p, stat.LinInterp, sorted, nil)
}

// ComputeEnergyStats calculates mean and percentiles from energy values.
func ComputeEnergyStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s DayStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartDay),
		slog.Int("day", s.Day),
		slog.String("weather", s.Weather),
		slog.Int("plants", s.Plants),
		slog.Int("herbivores", s.Herbivores),
		slog.Int("carnivores", s.Carnivores),
		slog.Int("dead", s.Dead),
		slog.Int("plant_deaths", s.PlantDeaths),
		slog.Int("herbivore_deaths", s.HerbivoreDeaths),
		slog.Int("carnivore_deaths", s.CarnivoreDeaths),
		slog.Int("failures", s.Failures),
		slog.Float64("photosynthesis_yield", s.PhotosynthesisYield),
		slog.Int("hunts_attempted", s.HuntsAttempted),
		slog.Int("kills", s.Kills),
		slog.Float64("kill_rate", s.KillRate),
		slog.Float64("hunt_gain", s.HuntGain),
		slog.Int("forages_attempted", s.ForagesAttempted),
		slog.Int("forages", s.Forages),
		slog.Float64("forage_rate", s.ForageRate),
		slog.Float64("forage_gain", s.ForageGain),
		slog.Float64("plant_energy_mean", s.PlantEnergyMean),
		slog.Float64("plant_energy_p50", s.PlantEnergyP50),
		slog.Float64("herbivore_energy_mean", s.HerbivoreEnergyMean),
		slog.Float64("herbivore_energy_p50", s.HerbivoreEnergyP50),
		slog.Float64("carnivore_energy_mean", s.CarnivoreEnergyMean),
		slog.Float64("carnivore_energy_p50", s.CarnivoreEnergyP50),
		slog.Float64("total_energy", s.TotalEnergy),
	)
}

// LogStats logs the window stats using slog.
func (s DayStats) LogStats() {
	slog.Info("stats",
		"day", s.Day,
		"weather", s.Weather,
		"plants", s.Plants,
		"herbivores", s.Herbivores,
		"carnivores", s.Carnivores,
		"dead", s.Dead,
		"plant_deaths", s.PlantDeaths,
		"herbivore_deaths", s.HerbivoreDeaths,
		"carnivore_deaths", s.CarnivoreDeaths,
		"failures", s.Failures,
		"photosynthesis_yield", s.PhotosynthesisYield,
		"hunts_attempted", s.HuntsAttempted,
		"kills", s.Kills,
		"kill_rate", s.KillRate,
		"forages", s.Forages,
		"forage_rate", s.ForageRate,
		"plant_energy_mean", s.PlantEnergyMean,
		"herbivore_energy_mean", s.HerbivoreEnergyMean,
		"carnivore_energy_mean", s.CarnivoreEnergyMean,
		"total_energy", s.TotalEnergy,
	)
}
