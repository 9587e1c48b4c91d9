package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "Plant", KindPlant.String())
	assert.Equal(t, "Herbivore", KindHerbivore.String())
	assert.Equal(t, "Carnivore", KindCarnivore.String())
	assert.Equal(t, "Organism", KindOrganism.String())
	assert.Equal(t, "Unknown", Kind(42).String())
}

func TestKindPrefix(t *testing.T) {
	assert.Equal(t, "P", KindPlant.Prefix())
	assert.Equal(t, "H", KindHerbivore.Prefix())
	assert.Equal(t, "C", KindCarnivore.Prefix())
	assert.Equal(t, "O", KindOrganism.Prefix())
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("herbivore")
	assert.True(t, ok)
	assert.Equal(t, KindHerbivore, k)

	_, ok = ParseKind("fungus")
	assert.False(t, ok)
}

func TestWeatherFactor(t *testing.T) {
	tests := []struct {
		weather Weather
		want    float64
	}{
		{Sunny, 1.0},
		{Cloudy, 0.6},
		{Rainy, 0.3},
		{Weather("invalid_weather"), 0.5},
		{Weather(""), 0.5},
	}

	for _, tt := range tests {
		t.Run(string(tt.weather), func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.weather.Factor(), 1e-9)
		})
	}
}

func TestWeatherFactorOrdering(t *testing.T) {
	assert.Greater(t, Sunny.Factor(), Cloudy.Factor())
	assert.Greater(t, Cloudy.Factor(), Rainy.Factor())
}

func TestParseWeather(t *testing.T) {
	w, ok := ParseWeather("  Cloudy ")
	assert.True(t, ok)
	assert.Equal(t, Cloudy, w)

	_, ok = ParseWeather("snowy")
	assert.False(t, ok)
}

func TestAllWeatherValid(t *testing.T) {
	for _, w := range AllWeather() {
		assert.True(t, w.Valid(), "weather %q", w)
	}
}
