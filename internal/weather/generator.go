package weather

import (
	"math/rand"
	"time"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

// SeasonForDate derives the in-game season from the calendar month.
func SeasonForDate(t time.Time) domain.Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return domain.SeasonSpring
	case time.June, time.July, time.August:
		return domain.SeasonSummer
	case time.September, time.October, time.November:
		return domain.SeasonAutumn
	default:
		return domain.SeasonWinter
	}
}

// Generate produces one day's weather for the given date.
func Generate(date time.Time, rng *rand.Rand) domain.Weather {
	season := SeasonForDate(date)

	w := domain.Weather{
		Season:      season,
		Condition:   pickCondition(season, rng),
		Temperature: pickTemperature(season, rng),
		GeneratedAt: date.UTC(),
	}

	if rng.Intn(100) < SpecialEventChance {
		specials := seasonSpecials[season]
		w.Special = specials[rng.Intn(len(specials))]
	}
	return w
}

// pickCondition selects a condition from the season's weighted table.
func pickCondition(season domain.Season, rng *rand.Rand) string {
	table := seasonConditions[season]
	total := 0
	for _, cw := range table {
		total += cw.Weight
	}

	roll := rng.Intn(total)
	for _, cw := range table {
		roll -= cw.Weight
		if roll < 0 {
			return cw.Condition
		}
	}
	return table[len(table)-1].Condition
}

func pickTemperature(season domain.Season, rng *rand.Rand) int {
	r := seasonTemps[season]
	return r.Min + rng.Intn(r.Max-r.Min+1)
}
