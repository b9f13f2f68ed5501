package santa

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

var (
	foldCaser = cases.Fold()

	// The fold cache is shared across matching runs; names are stable
	// within a round so a short TTL is plenty.
	foldCache = newNameCache(NameCacheSize, NameCacheTTL)
)

func foldName(s string) string {
	return foldCaser.String(strings.TrimSpace(s))
}

// normalizeName lower-cases (via Unicode case folding) and trims an avoid
// entry or participant name for comparison. Results are memoized because a
// matching run normalizes the same strings repeatedly.
func normalizeName(s string) string {
	return foldCache.Normalize(s)
}

// entryMatchesName reports whether avoid entry e refers to name n.
// An exact match always qualifies. Substring matching (in either containment
// direction) only applies when the entry is at least MinSubstringEntryLen
// runes, so short entries like "ab" cannot spuriously match longer names.
func entryMatchesName(e, n string) bool {
	e = normalizeName(e)
	n = normalizeName(n)
	if e == "" || n == "" {
		return false
	}
	if e == n {
		return true
	}
	if utf8.RuneCountInString(e) < MinSubstringEntryLen {
		return false
	}
	return strings.Contains(n, e) || strings.Contains(e, n)
}

// entryMatchesParticipant reports whether avoid entry e refers to
// participant p by display name or handle.
func entryMatchesParticipant(e string, p domain.Participant) bool {
	return entryMatchesName(e, p.DisplayName) || entryMatchesName(e, p.Handle)
}

// blockingEntry returns the first avoid entry that vetoes the pairing of
// sender and receiver, along with the participant whose list it came from.
// The relation is symmetric: either party's list can veto.
func blockingEntry(sender, receiver domain.Participant) (entry string, owner domain.Participant, found bool) {
	for _, e := range sender.AvoidList {
		if entryMatchesParticipant(e, receiver) {
			return e, sender, true
		}
	}
	for _, e := range receiver.AvoidList {
		if entryMatchesParticipant(e, sender) {
			return e, receiver, true
		}
	}
	return "", domain.Participant{}, false
}

// CanMatch reports whether sender may be assigned receiver as their giftee.
// Self-pairings are never allowed, and an avoid entry on either side vetoes
// the pairing in both directions.
func CanMatch(sender, receiver domain.Participant) bool {
	if sender.ID == receiver.ID {
		return false
	}
	_, _, blocked := blockingEntry(sender, receiver)
	return !blocked
}
