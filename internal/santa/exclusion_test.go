package santa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

func participant(id, displayName, handle string, avoid ...string) domain.Participant {
	return domain.Participant{
		ID:          id,
		DisplayName: displayName,
		Handle:      handle,
		AvoidList:   avoid,
		Eligible:    true,
	}
}

func TestCanMatch(t *testing.T) {
	t.Run("rejects self pairing", func(t *testing.T) {
		a := participant("1", "Alder", "alder")
		assert.False(t, CanMatch(a, a))
	})

	t.Run("allows unconstrained pairing", func(t *testing.T) {
		a := participant("1", "Alder", "alder")
		b := participant("2", "Briar", "briar")
		assert.True(t, CanMatch(a, b))
		assert.True(t, CanMatch(b, a))
	})

	t.Run("sender avoid list vetoes both directions", func(t *testing.T) {
		a := participant("1", "Alder", "alder", "Briar")
		b := participant("2", "Briar", "briar")
		assert.False(t, CanMatch(a, b))
		assert.False(t, CanMatch(b, a))
	})

	t.Run("receiver avoid list vetoes both directions", func(t *testing.T) {
		a := participant("1", "Alder", "alder")
		b := participant("2", "Briar", "briar", "alder")
		assert.False(t, CanMatch(a, b))
		assert.False(t, CanMatch(b, a))
	})

	t.Run("matches against handle as well as display name", func(t *testing.T) {
		a := participant("1", "Alder", "alder", "wolfsbane")
		b := participant("2", "Briar", "Wolfsbane")
		assert.False(t, CanMatch(a, b))
	})

	t.Run("ignores avoid entries naming nobody", func(t *testing.T) {
		a := participant("1", "Alder", "alder", "Someone Else")
		b := participant("2", "Briar", "briar")
		assert.True(t, CanMatch(a, b))
	})
}

func TestEntryMatchesName(t *testing.T) {
	t.Run("exact match is case-insensitive and trimmed", func(t *testing.T) {
		assert.True(t, entryMatchesName("  BRIAR ", "briar"))
		assert.True(t, entryMatchesName("briar", "Briar"))
	})

	t.Run("exact match works for short entries", func(t *testing.T) {
		assert.True(t, entryMatchesName("ab", "ab"))
		assert.True(t, entryMatchesName("ab", "AB"))
	})

	t.Run("short entries do not substring match", func(t *testing.T) {
		// Two runes: only exact match applies.
		assert.False(t, entryMatchesName("ab", "abcdef"))
	})

	t.Run("three rune entries substring match", func(t *testing.T) {
		assert.True(t, entryMatchesName("abc", "abcdef"))
	})

	t.Run("containment applies in both directions", func(t *testing.T) {
		// The entry may be longer than the name it refers to.
		assert.True(t, entryMatchesName("alexander", "alex"))
		assert.True(t, entryMatchesName("alex", "alexander"))
	})

	t.Run("empty strings never match", func(t *testing.T) {
		assert.False(t, entryMatchesName("", "briar"))
		assert.False(t, entryMatchesName("briar", ""))
		assert.False(t, entryMatchesName("   ", "briar"))
	})
}
