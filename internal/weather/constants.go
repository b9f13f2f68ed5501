package weather

import "github.com/rootsofthewild/rootsbot/internal/domain"

// conditionWeight is one weighted entry in a season's condition table
type conditionWeight struct {
	Condition string
	Weight    int
}

// tempRange is the inclusive temperature band for a season, degrees Celsius
type tempRange struct {
	Min, Max int
}

// SpecialEventChance is the per-generation probability (percent) of a
// special event accompanying the day's weather
const SpecialEventChance = 5

var seasonConditions = map[domain.Season][]conditionWeight{
	domain.SeasonSpring: {
		{Condition: "clear skies", Weight: 25},
		{Condition: "light rain", Weight: 30},
		{Condition: "thunderstorm", Weight: 10},
		{Condition: "overcast", Weight: 20},
		{Condition: "morning fog", Weight: 15},
	},
	domain.SeasonSummer: {
		{Condition: "clear skies", Weight: 40},
		{Condition: "sweltering heat", Weight: 20},
		{Condition: "thunderstorm", Weight: 15},
		{Condition: "light rain", Weight: 10},
		{Condition: "overcast", Weight: 15},
	},
	domain.SeasonAutumn: {
		{Condition: "overcast", Weight: 30},
		{Condition: "steady rain", Weight: 25},
		{Condition: "clear skies", Weight: 20},
		{Condition: "dense fog", Weight: 15},
		{Condition: "first frost", Weight: 10},
	},
	domain.SeasonWinter: {
		{Condition: "snowfall", Weight: 30},
		{Condition: "clear and cold", Weight: 25},
		{Condition: "blizzard", Weight: 10},
		{Condition: "overcast", Weight: 20},
		{Condition: "freezing fog", Weight: 15},
	},
}

var seasonTemps = map[domain.Season]tempRange{
	domain.SeasonSpring: {Min: 4, Max: 18},
	domain.SeasonSummer: {Min: 14, Max: 32},
	domain.SeasonAutumn: {Min: 2, Max: 16},
	domain.SeasonWinter: {Min: -15, Max: 4},
}

var seasonSpecials = map[domain.Season][]string{
	domain.SeasonSpring: {"a wandering herd passes the village", "rare blooms open overnight"},
	domain.SeasonSummer: {"fireflies swarm the riverbank", "a double rainbow after the storm"},
	domain.SeasonAutumn: {"an early harvest moon", "migrating flocks darken the sky"},
	domain.SeasonWinter: {"an aurora shimmers overhead", "wolves are heard beyond the treeline"},
}

// Log message constants
const (
	LogMsgWeatherRegenerated = "Weather regenerated"
)
