package models

import (
	"time"

	"github.com/google/uuid"
)

/* =============================== Enums ================================== */

// ParticipantStatus defines lifecycle states for a participant.
type ParticipantStatus string

const (
	ParticipantRegistered   ParticipantStatus = "registered"
	ParticipantActive       ParticipantStatus = "active"
	ParticipantEliminated   ParticipantStatus = "eliminated"
	ParticipantWithdrawn    ParticipantStatus = "withdrawn"
	ParticipantDisqualified ParticipantStatus = "disqualified"
)

/* =============================== Entities =============================== */

// Participant links a user to a tournament they joined. A user can join
// a tournament once.
type Participant struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TournamentID uuid.UUID `gorm:"type:uuid;not null;index:idx_tournament_user,unique" json:"tournament_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_tournament_user,unique" json:"user_id"`
	JoinedAt     time.Time `json:"joined_at"`
}

/* ================================= DTOs ================================= */

// JoinTournamentData is the payload for joining a tournament.
type JoinTournamentData struct {
	UserID string `json:"user_id"`
}

// CreateParticipantData carries a direct participant insert (admin use).
type CreateParticipantData struct {
	TournamentID uuid.UUID `json:"tournament_id"`
	UserID       uuid.UUID `json:"user_id"`
}

// ParticipantWithUser is a participant joined with the user's username.
type ParticipantWithUser struct {
	ID           uuid.UUID `json:"id"`
	TournamentID uuid.UUID `json:"tournament_id"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	JoinedAt     time.Time `json:"joined_at"`
}

// ParticipantWithTournament is a participant joined with the tournament
// name.
type ParticipantWithTournament struct {
	ID             uuid.UUID `json:"id"`
	TournamentID   uuid.UUID `json:"tournament_id"`
	TournamentName string    `json:"tournament_name"`
	UserID         uuid.UUID `json:"user_id"`
	JoinedAt       time.Time `json:"joined_at"`
}

// FullParticipantInfo joins a participant with both user and tournament
// data.
type FullParticipantInfo struct {
	ID             uuid.UUID `json:"id"`
	TournamentID   uuid.UUID `json:"tournament_id"`
	TournamentName string    `json:"tournament_name"`
	UserID         uuid.UUID `json:"user_id"`
	Username       string    `json:"username"`
	JoinedAt       time.Time `json:"joined_at"`
}

/* ================================ Stats ================================= */

// ParticipantStats tracks match results for one participant.
type ParticipantStats struct {
	ParticipantID uuid.UUID `json:"participant_id"`
	MatchesPlayed int       `json:"matches_played"`
	MatchesWon    int       `json:"matches_won"`
	MatchesLost   int       `json:"matches_lost"`
	WinRate       float64   `json:"win_rate"`
}

// NewParticipantStats creates an empty stats record.
func NewParticipantStats(participantID uuid.UUID) ParticipantStats {
	return ParticipantStats{ParticipantID: participantID}
}

// CalculateWinRate recomputes the win rate from the counters. Zero games
// played means a zero rate.
func (s *ParticipantStats) CalculateWinRate() {
	if s.MatchesPlayed > 0 {
		s.WinRate = float64(s.MatchesWon) / float64(s.MatchesPlayed)
		return
	}
	s.WinRate = 0
}

// AddMatchResult records one match outcome and refreshes the win rate.
func (s *ParticipantStats) AddMatchResult(won bool) {
	s.MatchesPlayed++
	if won {
		s.MatchesWon++
	} else {
		s.MatchesLost++
	}
	s.CalculateWinRate()
}
