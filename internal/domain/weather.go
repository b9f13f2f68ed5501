package domain

import "time"

// Season of the in-game calendar, derived from the real date.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// Weather is one day's generated conditions for the village.
type Weather struct {
	Season      Season    `json:"season"`
	Condition   string    `json:"condition"`
	Temperature int       `json:"temperature"` // degrees Celsius
	Special     string    `json:"special,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}
