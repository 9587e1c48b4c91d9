package components

// Phase names one step of the daily tick, in execution order.
type Phase string

const (
	PhaseWeather        Phase = "weather"
	PhasePhotosynthesis Phase = "photosynthesis"
	PhaseHunting        Phase = "hunting"
	PhaseForaging       Phase = "foraging"
	PhaseMetabolism     Phase = "metabolism"
)

// DayPhases returns the phases of a simulated day in order.
func DayPhases() []Phase {
	return []Phase{PhaseWeather, PhasePhotosynthesis, PhaseHunting, PhaseForaging, PhaseMetabolism}
}
