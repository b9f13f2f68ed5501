package santa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

func TestAttemptMatchUnconstrained(t *testing.T) {
	p := pool("a", "b", "c", "d", "e")
	for seed := int64(0); seed < 50; seed++ {
		out := attemptMatch(p, rand.New(rand.NewSource(seed)))
		assert.Empty(t, out.unassigned, "seed %d", seed)
		assert.Len(t, out.matches, len(p), "seed %d", seed)
	}
}

func TestAttemptMatchCompleteExclusion(t *testing.T) {
	p := pool("a", "b", "c")
	p[0].AvoidList = []string{"b", "c"}
	p[1].AvoidList = []string{"a", "c"}
	p[2].AvoidList = []string{"a", "b"}

	out := attemptMatch(p, rand.New(rand.NewSource(1)))
	assert.Empty(t, out.matches)
	require.Len(t, out.unassigned, 3)
	for _, u := range out.unassigned {
		assert.NotEmpty(t, u.Reason)
	}
}

func TestAttemptMatchDiagnosticsNameBlockingEntries(t *testing.T) {
	// First sender in scarcity order is the fully excluded one; its
	// diagnostic must name who blocked it and with which entry.
	p := []domain.Participant{
		participant("1", "Alder", "alder"),
		participant("2", "Briar", "briar"),
		participant("3", "Cedar", "cedar", "Alder", "Briar"),
	}

	out := attemptMatch(p, rand.New(rand.NewSource(2)))
	require.NotEmpty(t, out.unassigned)

	found := false
	for _, u := range out.unassigned {
		if u.Participant.ID == "3" {
			found = true
			assert.Contains(t, u.Reason, "Cedar's avoid entry")
			assert.Contains(t, u.Reason, "Alder")
		}
	}
	assert.True(t, found, "Cedar should be the unassignable participant")
}

func TestSwapRepair(t *testing.T) {
	s := participant("s", "Stuck", "stuck", "Xenia", "Quince")
	x := participant("x", "Xenia", "xenia")
	r := participant("r", "Rowan", "rowan")
	q := participant("q", "Quince", "quince")
	p := []domain.Participant{s, x, r, q}

	// Existing assignment: Xenia -> Rowan. Stuck can only take Rowan, so
	// repair must move Xenia to a free receiver and hand Rowan over.
	assigned := map[string]string{"x": "r"}
	claimed := map[string]bool{"r": true}

	receiverID, ok := swapRepair(s, p, assigned, claimed, rand.New(rand.NewSource(4)))
	require.True(t, ok)
	assert.Equal(t, "r", receiverID)
	assert.Equal(t, "q", assigned["x"], "displaced sender moves to the free compatible receiver")
	assert.True(t, claimed["q"])
	assert.False(t, claimed["r"], "freed receiver is released for the caller to claim")
}

func TestSwapRepairFailsWhenNothingFreeable(t *testing.T) {
	s := participant("s", "Stuck", "stuck", "Xenia", "Rowan")
	x := participant("x", "Xenia", "xenia")
	r := participant("r", "Rowan", "rowan")
	p := []domain.Participant{s, x, r}

	// Stuck is incompatible with every receiver, so no swap can help.
	assigned := map[string]string{"x": "r"}
	claimed := map[string]bool{"r": true}

	_, ok := swapRepair(s, p, assigned, claimed, rand.New(rand.NewSource(4)))
	assert.False(t, ok)
}

func TestAttemptMatchScarcityFirst(t *testing.T) {
	// The heavily constrained participant must be assigned even though an
	// unconstrained greedy order could starve it: Cedar can only receive
	// from / send to Dahlia, so Cedar and Dahlia have to pair up.
	p := []domain.Participant{
		participant("1", "Alder", "alder"),
		participant("2", "Briar", "briar"),
		participant("3", "Cedar", "cedar", "Alder", "Briar"),
		participant("4", "Dahlia", "dahlia"),
	}

	for seed := int64(0); seed < 50; seed++ {
		out := attemptMatch(p, rand.New(rand.NewSource(seed)))
		require.Empty(t, out.unassigned, "seed %d: scarcity ordering plus swap repair should always place Cedar", seed)

		pairs := make(map[string]string)
		for _, match := range out.matches {
			pairs[match.SenderID] = match.ReceiverID
		}
		assert.Equal(t, "4", pairs["3"], "seed %d: Cedar can only send to Dahlia", seed)
	}
}
