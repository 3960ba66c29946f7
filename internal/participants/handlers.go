package participants

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/liga-muertos/liga-backend/pkg/apierror"
	"github.com/liga-muertos/liga-backend/pkg/logging"
	"github.com/liga-muertos/liga-backend/pkg/models"
	"github.com/liga-muertos/liga-backend/pkg/utils"
	"github.com/liga-muertos/liga-backend/pkg/validation"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// Join godoc
// @Summary      Join tournament
// @Description  Registers a user as participant; a user can join once
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        id       path  string                     true  "tournament id (uuid)"
// @Param        payload  body  models.JoinTournamentData  true  "Join payload"
// @Success      201  {object}  models.Participant
// @Failure      400  {object}  apierror.Response
// @Failure      404  {object}  apierror.Response
// @Failure      409  {object}  apierror.Response
// @Router       /tournaments/{id}/participants [post]
func (h *Handler) Join(c *fiber.Ctx) error {
	tournamentID := c.Params("id")

	var in models.JoinTournamentData
	if err := c.BodyParser(&in); err != nil {
		return apierror.FromJSON(err)
	}

	b := validation.NewBuilder().
		Validate(func() *validation.Error {
			return validation.UUIDFormat(tournamentID, "id")
		}).
		Validate(func() *validation.Error {
			userID, verr := validation.Required(in.UserID, "user_id")
			if verr != nil {
				return verr
			}
			in.UserID = userID
			return validation.UUIDFormat(userID, "user_id")
		})
	if err := b.BuildUnit(); err != nil {
		return err
	}

	var tournament models.Tournament
	if err := h.db.First(&tournament, "id = ?", tournamentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("tournament", tournamentID)
		}
		return apierror.FromDatabase(err)
	}
	if !tournament.Published {
		return apierror.NewTournamentWithID("Tournament is not open for registration", tournamentID)
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", in.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewUserWithID("User does not exist", in.UserID)
		}
		return apierror.FromDatabase(err)
	}

	userID, err := uuid.Parse(in.UserID)
	if err != nil {
		return apierror.AsValidation(err, "user_id")
	}

	participant := models.Participant{
		TournamentID: tournament.ID,
		UserID:       userID,
		JoinedAt:     utils.NowUTC(),
	}
	if err := h.db.Create(&participant).Error; err != nil {
		return apierror.FromDatabase(err)
	}

	logging.TournamentEvent("participant_joined", tournament.ID.String(), in.UserID)
	return c.Status(fiber.StatusCreated).JSON(participant)
}

// List godoc
// @Summary      List participants
// @Description  Lists a tournament's participants with their usernames
// @Tags         participants
// @Produce      json
// @Param        id   path  string  true  "tournament id (uuid)"
// @Success      200  {array}   models.ParticipantWithUser
// @Failure      404  {object}  apierror.Response
// @Router       /tournaments/{id}/participants [get]
func (h *Handler) List(c *fiber.Ctx) error {
	tournamentID := c.Params("id")
	if verr := validation.UUIDFormat(tournamentID, "id"); verr != nil {
		return verr
	}

	var tournament models.Tournament
	if err := h.db.First(&tournament, "id = ?", tournamentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("tournament", tournamentID)
		}
		return apierror.FromDatabase(err)
	}

	rows := make([]models.ParticipantWithUser, 0)
	if err := h.db.
		Table("participants").
		Select(`participants.id, participants.tournament_id, participants.user_id,
          users.username, participants.joined_at`).
		Joins("JOIN users ON users.id = participants.user_id").
		Where("participants.tournament_id = ?", tournamentID).
		Order("participants.joined_at ASC").
		Scan(&rows).Error; err != nil {
		return apierror.FromDatabase(err)
	}

	return c.JSON(rows)
}

// Leave godoc
// @Summary      Leave tournament
// @Description  Removes one participant row
// @Tags         participants
// @Produce      json
// @Param        id   path  string  true  "participant id (uuid)"
// @Success      204  "left"
// @Failure      404  {object}  apierror.Response
// @Router       /participants/{id} [delete]
func (h *Handler) Leave(c *fiber.Ctx) error {
	id := c.Params("id")
	if verr := validation.UUIDFormat(id, "id"); verr != nil {
		return verr
	}

	var participant models.Participant
	if err := h.db.First(&participant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("participant", id)
		}
		return apierror.FromDatabase(err)
	}

	if err := h.db.Delete(&participant).Error; err != nil {
		return apierror.FromDatabase(err)
	}

	logging.TournamentEvent("participant_left", participant.TournamentID.String(), participant.UserID.String())
	return c.SendStatus(fiber.StatusNoContent)
}
