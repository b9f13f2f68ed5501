package domain

import "time"

// Participant is a gift exchange signup: a sender and, when eligible,
// a candidate receiver.
type Participant struct {
	ID          string   `json:"id" validate:"required"`
	DisplayName string   `json:"display_name"`
	Handle      string   `json:"handle"`
	AvoidList   []string `json:"avoid_list" validate:"max=25,dive,max=100"`
	Eligible    bool     `json:"eligible"`
	JoinedAt    time.Time `json:"joined_at"`
}

// Name returns the best human-readable label for the participant,
// falling back to the opaque ID when no display name or handle is set.
func (p Participant) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.Handle != "" {
		return p.Handle
	}
	return p.ID
}

// Match assigns one sender exactly one giftee.
type Match struct {
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	// Forced is set when the pairing was completed ignoring avoid lists
	// because no constraint-respecting assignment was found in budget.
	Forced bool `json:"forced,omitempty"`
}

// UnmatchedParticipant records a participant the engine could not assign,
// with a human-readable reason surfaced to moderators.
type UnmatchedParticipant struct {
	Participant Participant `json:"participant"`
	Reason      string      `json:"reason"`
}

// MatchResult is the outcome of one full matching run.
type MatchResult struct {
	Matches   []Match                `json:"matches"`
	Unmatched []UnmatchedParticipant `json:"unmatched"`
	Success   bool                   `json:"success"`

	// Diagnostics for moderator messaging and metrics.
	Attempts  int `json:"attempts"`
	Swaps     int `json:"swaps"`
	Fallbacks int `json:"fallbacks"`
}

// UsedFallback reports whether any pairing ignored avoid lists.
func (r MatchResult) UsedFallback() bool {
	return r.Fallbacks > 0
}

// ExchangeSettings holds the moderator-controlled state of the gift exchange.
type ExchangeSettings struct {
	SignupsOpen bool       `json:"signups_open"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	MatchedAt   *time.Time `json:"matched_at,omitempty"`
}
