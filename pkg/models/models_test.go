package models

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUserPublicDropsEmail(t *testing.T) {
	user := User{
		ID:        uuid.New(),
		Username:  "testuser",
		Email:     "test@example.com",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	public := user.Public()
	require.Equal(t, user.ID, public.ID)
	require.Equal(t, user.Username, public.Username)
	require.Equal(t, user.CreatedAt, public.CreatedAt)
}

func TestTournamentPublicDropsCreator(t *testing.T) {
	tournament := Tournament{
		ID:          uuid.New(),
		Name:        "Test Tournament",
		Description: "A test tournament",
		Published:   true,
		CreatedBy:   uuid.New(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	public := tournament.Public()
	require.Equal(t, tournament.ID, public.ID)
	require.Equal(t, tournament.Name, public.Name)
	require.Equal(t, tournament.Description, public.Description)
	require.Equal(t, tournament.Published, public.Published)
	require.Equal(t, tournament.CreatedAt, public.CreatedAt)
}

func TestParticipantStats(t *testing.T) {
	stats := NewParticipantStats(uuid.New())
	require.Zero(t, stats.MatchesPlayed)
	require.Zero(t, stats.WinRate)

	stats.AddMatchResult(true)
	require.Equal(t, 1, stats.MatchesPlayed)
	require.Equal(t, 1, stats.MatchesWon)
	require.Equal(t, 0, stats.MatchesLost)
	require.Equal(t, 1.0, stats.WinRate)

	stats.AddMatchResult(false)
	require.Equal(t, 2, stats.MatchesPlayed)
	require.Equal(t, 1, stats.MatchesWon)
	require.Equal(t, 1, stats.MatchesLost)
	require.Equal(t, 0.5, stats.WinRate)

	stats.AddMatchResult(true)
	require.Equal(t, 3, stats.MatchesPlayed)
	require.InDelta(t, 2.0/3.0, stats.WinRate, math.SmallestNonzeroFloat64)
}

func TestCalculateWinRate(t *testing.T) {
	stats := NewParticipantStats(uuid.New())
	stats.MatchesPlayed = 4
	stats.MatchesWon = 3
	stats.MatchesLost = 1

	stats.CalculateWinRate()
	require.Equal(t, 0.75, stats.WinRate)

	// Manually zeroing the counters resets the rate too.
	stats.MatchesPlayed = 0
	stats.CalculateWinRate()
	require.Zero(t, stats.WinRate)
}
