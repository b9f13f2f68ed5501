package santa

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

// attemptOutcome is the result of a single randomized assignment pass.
type attemptOutcome struct {
	matches    []domain.Match
	unassigned []domain.UnmatchedParticipant
	swaps      int
}

// attemptMatch builds one candidate matching. Participants with the fewest
// compatible partners are assigned first; when a sender has no free
// compatible receiver, a single-level swap repair tries to free one up.
func attemptMatch(pool []domain.Participant, rng *rand.Rand) attemptOutcome {
	// Static scarcity score for this attempt: how many partners each
	// participant could be matched with, ignoring assignment state.
	compatCount := make(map[string]int, len(pool))
	for _, p := range pool {
		for _, q := range pool {
			if CanMatch(p, q) {
				compatCount[p.ID]++
			}
		}
	}

	// Unbiased Fisher-Yates shuffle, then a stable sort by scarcity so that
	// ties keep their shuffle-induced order.
	order := make([]domain.Participant, len(pool))
	copy(order, pool)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	sort.SliceStable(order, func(i, j int) bool {
		return compatCount[order[i].ID] < compatCount[order[j].ID]
	})

	var out attemptOutcome
	assigned := make(map[string]string, len(pool)) // senderID -> receiverID
	claimed := make(map[string]bool, len(pool))    // receiverID -> taken

	for _, sender := range order {
		free := freeCompatible(sender, pool, claimed)
		if len(free) > 0 {
			receiver := free[rng.Intn(len(free))]
			assigned[sender.ID] = receiver.ID
			claimed[receiver.ID] = true
			continue
		}

		if receiverID, ok := swapRepair(sender, pool, assigned, claimed, rng); ok {
			assigned[sender.ID] = receiverID
			claimed[receiverID] = true
			out.swaps++
			continue
		}

		out.unassigned = append(out.unassigned, domain.UnmatchedParticipant{
			Participant: sender,
			Reason:      unassignableReason(sender, pool, claimed),
		})
	}

	// Emit matches in pool order for stable output.
	for _, p := range pool {
		if receiverID, ok := assigned[p.ID]; ok {
			out.matches = append(out.matches, domain.Match{SenderID: p.ID, ReceiverID: receiverID})
		}
	}
	return out
}

// freeCompatible lists receivers not yet claimed that sender may be paired with.
func freeCompatible(sender domain.Participant, pool []domain.Participant, claimed map[string]bool) []domain.Participant {
	var free []domain.Participant
	for _, r := range pool {
		if claimed[r.ID] {
			continue
		}
		if CanMatch(sender, r) {
			free = append(free, r)
		}
	}
	return free
}

// swapRepair scans existing assignments in random order looking for a pair
// (s2 -> r2) where sender could take r2 and s2 can be moved to a still-free
// receiver. One re-hop only; deeper augmenting chains are not attempted.
// On success the displaced sender is reassigned and r2's ID is returned for
// the caller to claim.
func swapRepair(sender domain.Participant, pool []domain.Participant, assigned map[string]string, claimed map[string]bool, rng *rand.Rand) (string, bool) {
	byID := make(map[string]domain.Participant, len(pool))
	for _, p := range pool {
		byID[p.ID] = p
	}

	senderIDs := make([]string, 0, len(assigned))
	for s2ID := range assigned {
		senderIDs = append(senderIDs, s2ID)
	}
	sort.Strings(senderIDs) // deterministic base order before shuffling
	rng.Shuffle(len(senderIDs), func(i, j int) {
		senderIDs[i], senderIDs[j] = senderIDs[j], senderIDs[i]
	})

	for _, s2ID := range senderIDs {
		r2ID := assigned[s2ID]
		s2, r2 := byID[s2ID], byID[r2ID]
		if !CanMatch(sender, r2) {
			continue
		}
		// Can the displaced sender move to a still-free receiver?
		alternates := freeCompatible(s2, pool, claimed)
		if len(alternates) == 0 {
			continue
		}
		r3 := alternates[rng.Intn(len(alternates))]
		delete(assigned, s2ID)
		claimed[r2ID] = false
		assigned[s2ID] = r3.ID
		claimed[r3.ID] = true
		return r2ID, true
	}
	return "", false
}

// unassignableReason explains why sender could not be assigned: either every
// giftee is already claimed, or the free ones are all vetoed by avoid lists.
// The vetoing entries are named so moderators can resolve conflicts by hand.
func unassignableReason(sender domain.Participant, pool []domain.Participant, claimed map[string]bool) string {
	var blocked []string
	freeCount := 0
	for _, r := range pool {
		if r.ID == sender.ID || claimed[r.ID] {
			continue
		}
		freeCount++
		if entry, owner, found := blockingEntry(sender, r); found {
			blocked = append(blocked, fmt.Sprintf("%s (blocked by %s's avoid entry %q)", r.Name(), owner.Name(), entry))
		}
	}
	if freeCount == 0 || len(blocked) == 0 {
		return ReasonNoGifteesRemaining
	}
	return "all remaining giftees conflict: " + strings.Join(blocked, "; ")
}
