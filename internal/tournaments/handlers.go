package tournaments

import (
	"errors"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/liga-muertos/liga-backend/pkg/apierror"
	"github.com/liga-muertos/liga-backend/pkg/logging"
	"github.com/liga-muertos/liga-backend/pkg/models"
	"github.com/liga-muertos/liga-backend/pkg/sanitize"
	"github.com/liga-muertos/liga-backend/pkg/utils"
	"github.com/liga-muertos/liga-backend/pkg/validation"
)

// ===== DTOs =====

type PageTournaments struct {
	Page     int                       `json:"page"`
	PageSize int                       `json:"pageSize"`
	Total    int64                     `json:"total"`
	Pages    int                       `json:"pages"`
	Items    []models.PublicTournament `json:"items"`
}

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// parsePagination reads page/pageSize query values and validates them
// through the standard pipeline, so out-of-range paging renders like any
// other validation failure.
func parsePagination(c *fiber.Ctx) (int, int, error) {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "10"))

	b := validation.NewBuilder().
		Validate(func() *validation.Error {
			return validation.PositiveInteger(page, "page")
		}).
		Validate(func() *validation.Error {
			return validation.Range(pageSize, 1, 50, "pageSize")
		})
	if err := b.BuildUnit(); err != nil {
		return 0, 0, err
	}
	return page, pageSize, nil
}

// Create godoc
// @Summary      Create tournament
// @Description  Creates a tournament; it stays unlisted until published
// @Tags         tournaments
// @Accept       json
// @Produce      json
// @Param        payload  body  models.CreateTournamentData  true  "Tournament payload"
// @Success      201  {object}  models.Tournament
// @Failure      400  {object}  apierror.Response
// @Router       /tournaments [post]
func (h *Handler) Create(c *fiber.Ctx) error {
	var in models.CreateTournamentData
	if err := c.BodyParser(&in); err != nil {
		return apierror.FromJSON(err)
	}

	b := validation.NewBuilder().
		Validate(func() *validation.Error {
			name, verr := validation.Required(in.Name, "name")
			if verr != nil {
				return verr
			}
			in.Name = name
			return validation.TournamentName(name, "name")
		}).
		Validate(func() *validation.Error {
			return validation.Length(in.Description, 0, 1000, "description")
		}).
		Validate(func() *validation.Error {
			createdBy, verr := validation.Required(in.CreatedBy, "created_by")
			if verr != nil {
				return verr
			}
			in.CreatedBy = createdBy
			return validation.UUIDFormat(createdBy, "created_by")
		})
	if err := b.BuildUnit(); err != nil {
		return err
	}

	createdBy, err := uuid.Parse(in.CreatedBy)
	if err != nil {
		return apierror.AsValidation(err, "created_by")
	}

	tournament := models.Tournament{
		Name:        in.Name,
		Description: in.Description,
		CreatedBy:   createdBy,
	}
	if in.Published != nil {
		tournament.Published = *in.Published
	}
	if err := h.db.Create(&tournament).Error; err != nil {
		return apierror.FromDatabase(err)
	}

	logging.TournamentEvent("created", tournament.ID.String(), in.CreatedBy)
	return c.Status(fiber.StatusCreated).JSON(tournament)
}

// List godoc
// @Summary      List tournaments
// @Description  Lists published tournaments (paginated, newest first); descriptions are previewed with contact details hidden
// @Tags         tournaments
// @Produce      json
// @Param        page      query int false "page"
// @Param        pageSize  query int false "pageSize"
// @Success      200  {object}  PageTournaments
// @Failure      400  {object}  apierror.Response
// @Router       /tournaments [get]
func (h *Handler) List(c *fiber.Ctx) error {
	page, size, err := parsePagination(c)
	if err != nil {
		return err
	}

	var total int64
	if err := h.db.Model(&models.Tournament{}).
		Where("published = ?", true).
		Count(&total).Error; err != nil {
		return apierror.FromDatabase(err)
	}

	var list []models.Tournament
	if err := h.db.
		Where("published = ?", true).
		Order("created_at DESC").
		Offset((page - 1) * size).Limit(size).
		Find(&list).Error; err != nil {
		return apierror.FromDatabase(err)
	}

	items := make([]models.PublicTournament, 0, len(list))
	for _, tour := range list {
		item := tour.Public()
		item.Description = sanitize.Preview(item.Description, 240)
		items = append(items, item)
	}

	return c.JSON(PageTournaments{
		Page:     page,
		PageSize: size,
		Total:    total,
		Pages:    int(math.Ceil(float64(total) / float64(size))),
		Items:    items,
	})
}

// Get godoc
// @Summary      Get tournament
// @Description  Returns one published tournament; drafts are invisible
// @Tags         tournaments
// @Produce      json
// @Param        id   path  string  true  "tournament id (uuid)"
// @Success      200  {object}  models.Tournament
// @Failure      404  {object}  apierror.Response
// @Router       /tournaments/{id} [get]
func (h *Handler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if verr := validation.UUIDFormat(id, "id"); verr != nil {
		return verr
	}

	var tournament models.Tournament
	if err := h.db.First(&tournament, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("tournament", id)
		}
		return apierror.FromDatabase(err)
	}
	if !tournament.Published {
		return apierror.NewNotFound("tournament", id)
	}

	return c.JSON(tournament)
}

// Update godoc
// @Summary      Update tournament
// @Description  Applies a partial update; omitted fields are left unchanged
// @Tags         tournaments
// @Accept       json
// @Produce      json
// @Param        id       path  string                       true  "tournament id (uuid)"
// @Param        payload  body  models.UpdateTournamentData  true  "Fields to change"
// @Success      200  {object}  models.Tournament
// @Failure      400  {object}  apierror.Response
// @Failure      404  {object}  apierror.Response
// @Router       /tournaments/{id} [patch]
func (h *Handler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if verr := validation.UUIDFormat(id, "id"); verr != nil {
		return verr
	}

	var in models.UpdateTournamentData
	if err := c.BodyParser(&in); err != nil {
		return apierror.FromJSON(err)
	}

	b := validation.NewBuilder()
	if in.Name != nil {
		b.Validate(func() *validation.Error {
			return validation.TournamentName(*in.Name, "name")
		})
	}
	if in.Description != nil {
		b.Validate(func() *validation.Error {
			return validation.Length(*in.Description, 0, 1000, "description")
		})
	}
	if err := b.BuildUnit(); err != nil {
		return err
	}

	var tournament models.Tournament
	if err := h.db.First(&tournament, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("tournament", id)
		}
		return apierror.FromDatabase(err)
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Published != nil {
		updates["published"] = *in.Published
	}
	if len(updates) == 0 {
		return c.JSON(tournament)
	}
	updates["updated_at"] = utils.NowUTC()

	if err := h.db.Model(&tournament).Updates(updates).Error; err != nil {
		return apierror.FromDatabase(err)
	}

	logging.TournamentEvent("updated", tournament.ID.String(), "")
	return c.JSON(tournament)
}

// Delete godoc
// @Summary      Delete tournament
// @Description  Removes a tournament and its participant rows
// @Tags         tournaments
// @Produce      json
// @Param        id   path  string  true  "tournament id (uuid)"
// @Success      204  "deleted"
// @Failure      404  {object}  apierror.Response
// @Router       /tournaments/{id} [delete]
func (h *Handler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if verr := validation.UUIDFormat(id, "id"); verr != nil {
		return verr
	}

	if err := h.db.Where("tournament_id = ?", id).
		Delete(&models.Participant{}).Error; err != nil {
		return apierror.FromDatabase(err)
	}

	res := h.db.Where("id = ?", id).Delete(&models.Tournament{})
	if res.Error != nil {
		return apierror.FromDatabase(res.Error)
	}
	if res.RowsAffected == 0 {
		return apierror.NewNotFound("tournament", id)
	}

	logging.TournamentEvent("deleted", id, "")
	return c.SendStatus(fiber.StatusNoContent)
}
