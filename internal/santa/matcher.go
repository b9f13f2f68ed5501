package santa

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

// Matcher runs the randomized assignment under a bounded attempt budget.
// It holds no state across runs; callers must serialize concurrent runs
// against the same store themselves.
type Matcher struct {
	maxAttempts int
}

// NewMatcher creates a matcher with the given attempt budget.
// A non-positive budget falls back to DefaultMaxAttempts.
func NewMatcher(maxAttempts int) *Matcher {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Matcher{maxAttempts: maxAttempts}
}

// MatchAll assigns every participant exactly one giftee: a permutation with
// no fixed points over the pool, respecting avoid lists when an attempt
// within budget finds one. When the budget is exhausted the final attempt is
// force-completed ignoring avoid lists, so the run still covers the pool
// whenever arithmetically possible.
//
// Returns domain.ErrInsufficientParticipants for pools smaller than two and
// domain.ErrInvariantViolation if the assembled result ever contains a
// duplicate sender or receiver (an engine defect, never expected).
func (m *Matcher) MatchAll(pool []domain.Participant, rng *rand.Rand) (domain.MatchResult, error) {
	if len(pool) < MinParticipants {
		return domain.MatchResult{}, fmt.Errorf("%w: have %d, need at least %d",
			domain.ErrInsufficientParticipants, len(pool), MinParticipants)
	}

	var result domain.MatchResult
	var last attemptOutcome
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		last = attemptMatch(pool, rng)
		result.Attempts = attempt
		if len(last.unassigned) == 0 {
			break
		}
	}

	result.Matches = last.matches
	result.Swaps = last.swaps

	if len(last.unassigned) > 0 {
		slog.Warn(LogMsgFallbackUsed, "attempts", result.Attempts, "unassigned", len(last.unassigned))
		result.Unmatched = m.forceComplete(pool, &result, last.unassigned)
	}

	if err := validateInjective(result.Matches); err != nil {
		return domain.MatchResult{}, err
	}

	result.Success = len(result.Unmatched) == 0
	return result, nil
}

// forceComplete assigns the remaining senders ignoring avoid lists. Any
// sender left facing only themselves is resolved by stealing an existing
// receiver and handing the thief the stuck sender instead; only when even
// that is impossible is the sender recorded as unmatched.
func (m *Matcher) forceComplete(pool []domain.Participant, result *domain.MatchResult, unassigned []domain.UnmatchedParticipant) []domain.UnmatchedParticipant {
	claimed := make(map[string]bool, len(pool))
	for _, match := range result.Matches {
		claimed[match.ReceiverID] = true
	}

	var unmatched []domain.UnmatchedParticipant
	for _, u := range unassigned {
		sender := u.Participant

		receiverID, ok := anyUnclaimed(pool, claimed, sender.ID)
		if ok {
			m.recordForced(result, pool, sender, receiverID)
			claimed[receiverID] = true
			continue
		}

		// Only the sender's own slot remains. Redirect an existing pairing
		// (x -> y) to (x -> sender) and give the sender y.
		if idx := stealableMatch(result.Matches, sender.ID); idx >= 0 {
			stolen := result.Matches[idx].ReceiverID
			result.Matches[idx].ReceiverID = sender.ID
			result.Matches[idx].Forced = true
			claimed[sender.ID] = true
			m.recordForced(result, pool, sender, stolen)
			continue
		}

		slog.Error(LogMsgParticipantUnmatched, "participant", sender.Name(), "reason", ReasonNoGifteesRemaining)
		unmatched = append(unmatched, domain.UnmatchedParticipant{
			Participant: sender,
			Reason:      ReasonNoGifteesRemaining,
		})
	}
	return unmatched
}

// recordForced appends a constraint-ignoring pairing and logs when it
// tramples an avoid entry so the violation is visible to moderators.
func (m *Matcher) recordForced(result *domain.MatchResult, pool []domain.Participant, sender domain.Participant, receiverID string) {
	result.Matches = append(result.Matches, domain.Match{
		SenderID:   sender.ID,
		ReceiverID: receiverID,
		Forced:     true,
	})
	result.Fallbacks++

	for _, p := range pool {
		if p.ID != receiverID {
			continue
		}
		if entry, owner, found := blockingEntry(sender, p); found {
			slog.Warn(LogMsgForcedPair,
				"sender", sender.Name(),
				"receiver", p.Name(),
				"avoid_entry", entry,
				"entry_owner", owner.Name())
		}
		return
	}
}

// anyUnclaimed returns any receiver not yet claimed, excluding excludeID.
func anyUnclaimed(pool []domain.Participant, claimed map[string]bool, excludeID string) (string, bool) {
	for _, r := range pool {
		if r.ID == excludeID || claimed[r.ID] {
			continue
		}
		return r.ID, true
	}
	return "", false
}

// stealableMatch finds a pairing whose sender and receiver both differ from
// senderID, so its receiver can be handed over without creating a self-pair.
func stealableMatch(matches []domain.Match, senderID string) int {
	for i, match := range matches {
		if match.SenderID != senderID && match.ReceiverID != senderID {
			return i
		}
	}
	return -1
}

// validateInjective asserts no sender and no receiver appears twice.
// A violation is a programming error in the assigner, surfaced loudly.
func validateInjective(matches []domain.Match) error {
	senders := make(map[string]bool, len(matches))
	receivers := make(map[string]bool, len(matches))
	for _, match := range matches {
		if senders[match.SenderID] {
			return fmt.Errorf("%w: duplicate sender %s", domain.ErrInvariantViolation, match.SenderID)
		}
		if receivers[match.ReceiverID] {
			return fmt.Errorf("%w: duplicate receiver %s", domain.ErrInvariantViolation, match.ReceiverID)
		}
		if match.SenderID == match.ReceiverID {
			return fmt.Errorf("%w: self-pairing for %s", domain.ErrInvariantViolation, match.SenderID)
		}
		senders[match.SenderID] = true
		receivers[match.ReceiverID] = true
	}
	return nil
}
