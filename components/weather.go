package components

import "strings"

// Weather is the environment's current weather state.
// Values outside the enumeration are representable so that callers can pass
// unvalidated input; Valid reports membership.
type Weather string

const (
	Sunny  Weather = "sunny"
	Cloudy Weather = "cloudy"
	Rainy  Weather = "rainy"
)

// unknownWeatherFactor applies to any weather outside the enumeration.
const unknownWeatherFactor = 0.5

var weatherFactors = map[Weather]float64{
	Sunny:  1.0,
	Cloudy: 0.6,
	Rainy:  0.3,
}

// AllWeather returns the valid weather states in resampling order.
func AllWeather() []Weather {
	return []Weather{Sunny, Cloudy, Rainy}
}

// Valid reports whether w is one of the fixed weather states.
func (w Weather) Valid() bool {
	_, ok := weatherFactors[w]
	return ok
}

// Factor returns the photosynthesis multiplier for w.
func (w Weather) Factor() float64 {
	if f, ok := weatherFactors[w]; ok {
		return f
	}
	return unknownWeatherFactor
}

// ParseWeather normalises s and reports whether it names a valid state.
func ParseWeather(s string) (Weather, bool) {
	w := Weather(strings.ToLower(strings.TrimSpace(s)))
	return w, w.Valid()
}
