package models

import (
	"time"

	"github.com/google/uuid"
)

/* =============================== Enums ================================== */

// TournamentStatus defines lifecycle states for a tournament.
type TournamentStatus string

const (
	TournamentDraft      TournamentStatus = "draft"
	TournamentPublished  TournamentStatus = "published"
	TournamentInProgress TournamentStatus = "in_progress"
	TournamentCompleted  TournamentStatus = "completed"
	TournamentCancelled  TournamentStatus = "cancelled"
)

// TournamentType defines the bracket formats a tournament can run.
type TournamentType string

const (
	SingleElimination TournamentType = "single_elimination"
	DoubleElimination TournamentType = "double_elimination"
	RoundRobin        TournamentType = "round_robin"
	Swiss             TournamentType = "swiss"
)

/* =============================== Entities =============================== */

// Tournament is a competition created by a user. Unpublished tournaments
// are visible to nobody but their creator.
type Tournament struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Published   bool      `gorm:"default:false;index" json:"published"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

/* ================================= DTOs ================================= */

// CreateTournamentData is the payload for creating a tournament.
type CreateTournamentData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Published   *bool  `json:"published"`
	CreatedBy   string `json:"created_by"`
}

// UpdateTournamentData is the payload for partial tournament updates.
// Nil fields are left unchanged.
type UpdateTournamentData struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Published   *bool   `json:"published"`
}

// PublicTournament is the tournament shape used in listings, without the
// creator reference.
type PublicTournament struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
}

// Public converts a full tournament record to its listing shape.
func (t Tournament) Public() PublicTournament {
	return PublicTournament{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Published:   t.Published,
		CreatedAt:   t.CreatedAt,
	}
}

// TournamentWithCreator is a tournament joined with its creator's
// username.
type TournamentWithCreator struct {
	Tournament
	CreatorUsername *string `json:"creator_username"`
}
