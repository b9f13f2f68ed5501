package domain

import "time"

// BlightStage is the progression state of a blighted character.
type BlightStage int

const (
	BlightHealthy BlightStage = iota
	BlightStage1
	BlightStage2
	BlightStage3
	BlightRecovered
	BlightDead
)

// String returns the display name for the stage.
func (s BlightStage) String() string {
	switch s {
	case BlightHealthy:
		return "healthy"
	case BlightStage1:
		return "stage 1"
	case BlightStage2:
		return "stage 2"
	case BlightStage3:
		return "stage 3"
	case BlightRecovered:
		return "recovered"
	case BlightDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Infected reports whether the character currently carries the blight.
func (s BlightStage) Infected() bool {
	return s >= BlightStage1 && s <= BlightStage3
}

// Terminal reports whether the stage can no longer change.
func (s BlightStage) Terminal() bool {
	return s == BlightRecovered || s == BlightDead
}

// BlightRecord tracks one character's infection.
type BlightRecord struct {
	CharacterID string      `json:"character_id"`
	OwnerID     string      `json:"owner_id"`
	Name        string      `json:"name"`
	Stage       BlightStage `json:"stage"`
	InfectedAt  *time.Time  `json:"infected_at,omitempty"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
