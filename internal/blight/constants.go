package blight

// Progression roll chances, out of 100, applied per daily tick
const (
	// WorsenChance is the chance an infected character advances a stage
	WorsenChance = 35

	// RecoverChance is the chance an infected character shakes the blight
	// without treatment
	RecoverChance = 10

	// HealSuccessThreshold is the minimum d100 roll for a treatment to work
	HealSuccessThreshold = 60
)

// Log message constants
const (
	LogMsgBlightTick         = "Blight progression tick"
	LogMsgCharacterInfected  = "Character infected with blight"
	LogMsgCharacterWorsened  = "Blight worsened"
	LogMsgCharacterRecovered = "Character recovered from blight"
	LogMsgCharacterDied      = "Character died of blight"
)
