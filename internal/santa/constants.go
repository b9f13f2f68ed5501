package santa

import "time"

// Matching configuration
const (
	// DefaultMaxAttempts is the randomized retry budget for a matching run
	DefaultMaxAttempts = 200

	// MinParticipants is the smallest pool that can form a non-trivial match
	MinParticipants = 2

	// MinSubstringEntryLen is the minimum avoid-entry length (in runes) for
	// substring matching; shorter entries only match exactly
	MinSubstringEntryLen = 3
)

// Name normalization cache configuration
const (
	NameCacheSize = 1024
	NameCacheTTL  = 10 * time.Minute
)

// Unmatched reason strings surfaced to moderators
const (
	ReasonNoGifteesRemaining = "no available giftees remaining"
)

// Log message constants
const (
	LogMsgMatchingStarted      = "Matching run started"
	LogMsgMatchingComplete     = "Matching run complete"
	LogMsgFallbackUsed         = "Attempt budget exhausted, forcing completion without avoid lists"
	LogMsgForcedPair           = "Forced pairing ignores an avoid constraint"
	LogMsgParticipantUnmatched = "Participant could not be matched"
	LogMsgJoinCalled           = "Join called"
	LogMsgLeaveCalled          = "Leave called"
	LogMsgRunMatchingCalled    = "RunMatching called"
)

// Error context strings
const (
	ErrContextFailedToLoadParticipants = "failed to load participants"
	ErrContextFailedToLoadSettings     = "failed to load exchange settings"
	ErrContextFailedToSaveMatches      = "failed to save matches"
	ErrContextFailedToSaveSettings     = "failed to save exchange settings"
)
