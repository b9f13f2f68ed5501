package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/rootsofthewild/rootsbot/internal/database"
	"github.com/rootsofthewild/rootsbot/internal/domain"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()

		pgContainer, err := pgcontainer.Run(ctx,
			"postgres:15-alpine",
			pgcontainer.WithDatabase("testdb"),
			pgcontainer.WithUsername("testuser"),
			pgcontainer.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
		if err != nil {
			fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		} else {
			terminate = func() { _ = pgContainer.Terminate(ctx) }

			connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
			if err != nil {
				fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
			} else if err := database.Migrate(ctx, connStr); err != nil {
				fmt.Printf("WARNING: Failed to run migrations: %v\n", err)
			} else if pool, err := database.NewPool(connStr, 5, 1*time.Minute, 5*time.Minute); err != nil {
				fmt.Printf("WARNING: Failed to create pool: %v\n", err)
			} else {
				testPool = pool
			}
		}
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
}

func TestSantaRepository_Participants(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewSantaRepository(testPool)

	joined := time.Date(2026, time.November, 1, 10, 0, 0, 0, time.UTC)
	p := domain.Participant{
		ID:          "part-alpha",
		DisplayName: "Alder",
		Handle:      "alder_rp",
		AvoidList:   []string{"Birch"},
		Eligible:    true,
		JoinedAt:    joined,
	}
	require.NoError(t, repo.UpsertParticipant(ctx, p))

	got, err := repo.GetParticipant(ctx, "part-alpha")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alder", got.DisplayName)
	assert.Equal(t, []string{"Birch"}, got.AvoidList)
	assert.True(t, got.JoinedAt.Equal(joined))

	// Update must keep the original join time
	p.AvoidList = []string{"Birch", "Cedar"}
	p.JoinedAt = joined.Add(48 * time.Hour)
	require.NoError(t, repo.UpsertParticipant(ctx, p))

	got, err = repo.GetParticipant(ctx, "part-alpha")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"Birch", "Cedar"}, got.AvoidList)
	assert.True(t, got.JoinedAt.Equal(joined), "joined_at should be preserved on update")

	list, err := repo.ListParticipants(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, list)

	require.NoError(t, repo.DeleteParticipant(ctx, "part-alpha"))
	got, err = repo.GetParticipant(ctx, "part-alpha")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSantaRepository_Settings(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewSantaRepository(testPool)

	settings, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, settings)

	deadline := time.Date(2026, time.December, 24, 18, 0, 0, 0, time.UTC)
	settings.SignupsOpen = true
	settings.Deadline = &deadline
	require.NoError(t, repo.SaveSettings(ctx, *settings))

	got, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, got.SignupsOpen)
	require.NotNil(t, got.Deadline)
	assert.True(t, got.Deadline.Equal(deadline))
	assert.Nil(t, got.MatchedAt)
}

func TestSantaRepository_Matches(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewSantaRepository(testPool)

	ids := []string{"m-ash", "m-briar", "m-coral"}
	for _, id := range ids {
		require.NoError(t, repo.UpsertParticipant(ctx, domain.Participant{
			ID: id, Eligible: true, JoinedAt: time.Now().UTC(),
		}))
	}

	first := []domain.Match{
		{SenderID: "m-ash", ReceiverID: "m-briar"},
		{SenderID: "m-briar", ReceiverID: "m-coral"},
		{SenderID: "m-coral", ReceiverID: "m-ash", Forced: true},
	}
	require.NoError(t, repo.ReplaceMatches(ctx, first))

	matches, err := repo.ListMatches(ctx)
	require.NoError(t, err)
	assert.Len(t, matches, 3)

	match, err := repo.GetMatchBySender(ctx, "m-coral")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "m-ash", match.ReceiverID)
	assert.True(t, match.Forced)

	// A second run entirely supersedes the first
	second := []domain.Match{
		{SenderID: "m-ash", ReceiverID: "m-coral"},
		{SenderID: "m-coral", ReceiverID: "m-ash"},
	}
	require.NoError(t, repo.ReplaceMatches(ctx, second))

	matches, err = repo.ListMatches(ctx)
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	match, err = repo.GetMatchBySender(ctx, "m-briar")
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestWeatherRepository(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewWeatherRepository(testPool)

	day := domain.Weather{
		Season:      domain.SeasonWinter,
		Condition:   "heavy snow",
		Temperature: -8,
		GeneratedAt: time.Date(2026, time.December, 12, 6, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.SaveCurrent(ctx, day))

	got, err := repo.GetCurrent(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.SeasonWinter, got.Season)
	assert.Equal(t, -8, got.Temperature)

	// Regeneration replaces the single row
	day.Condition = "clear skies"
	day.Temperature = 2
	require.NoError(t, repo.SaveCurrent(ctx, day))

	got, err = repo.GetCurrent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "clear skies", got.Condition)
}

func TestBlightRepository(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewBlightRepository(testPool)

	got, err := repo.GetRecord(ctx, "char-ghost")
	require.NoError(t, err)
	assert.Nil(t, got)

	now := time.Now().UTC().Truncate(time.Microsecond)
	healthy := domain.BlightRecord{CharacterID: "char-fen", OwnerID: "owner-1", Name: "Fen", Stage: domain.BlightHealthy, UpdatedAt: now}
	sick := domain.BlightRecord{CharacterID: "char-moss", OwnerID: "owner-1", Name: "Moss", Stage: domain.BlightStage2, InfectedAt: &now, UpdatedAt: now}
	require.NoError(t, repo.UpsertRecord(ctx, healthy))
	require.NoError(t, repo.UpsertRecord(ctx, sick))

	records, err := repo.ListRecordsByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	infected, err := repo.ListInfected(ctx)
	require.NoError(t, err)
	require.Len(t, infected, 1)
	assert.Equal(t, "char-moss", infected[0].CharacterID)
	require.NotNil(t, infected[0].InfectedAt)
	assert.True(t, infected[0].InfectedAt.Equal(now))

	got, err = repo.GetRecord(ctx, "char-moss")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.BlightStage2, got.Stage)
}
