package users

import (
	"errors"

	"github.com/gofiber/fiber/v2"
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

// Create godoc
// @Summary      Register user
// @Description  Creates a user from a username and email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  models.CreateUserData  true  "User payload"
// @Success      201  {object}  models.User
// @Failure      400  {object}  apierror.Response
// @Failure      409  {object}  apierror.Response
// @Router       /users [post]
func (h *Handler) Create(c *fiber.Ctx) error {
	var in models.CreateUserData
	if err := c.BodyParser(&in); err != nil {
		return apierror.FromJSON(err)
	}

	b := validation.NewBuilder().
		Validate(func() *validation.Error {
			username, verr := validation.Required(in.Username, "username")
			if verr != nil {
				return verr
			}
			in.Username = username
			return validation.Username(username, "username")
		}).
		Validate(func() *validation.Error {
			email, verr := validation.Required(in.Email, "email")
			if verr != nil {
				return verr
			}
			in.Email = email
			return validation.Email(email, "email")
		})
	if err := b.BuildUnit(); err != nil {
		return err
	}

	user := models.User{Username: in.Username, Email: in.Email}
	if err := h.db.Create(&user).Error; err != nil {
		return apierror.FromDatabase(err)
	}

	logging.AuthEvent("registered", user.ID.String())
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Get godoc
// @Summary      Get user
// @Description  Returns the public shape of one user
// @Tags         users
// @Produce      json
// @Param        id   path  string  true  "user id (uuid)"
// @Success      200  {object}  models.PublicUser
// @Failure      404  {object}  apierror.Response
// @Router       /users/{id} [get]
func (h *Handler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if verr := validation.UUIDFormat(id, "id"); verr != nil {
		return verr
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("user", id)
		}
		return apierror.FromDatabase(err)
	}

	return c.JSON(user.Public())
}

// Update godoc
// @Summary      Update user
// @Description  Applies a partial update; omitted fields are left unchanged
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path  string                 true  "user id (uuid)"
// @Param        payload  body  models.UpdateUserData  true  "Fields to change"
// @Success      200  {object}  models.User
// @Failure      400  {object}  apierror.Response
// @Failure      404  {object}  apierror.Response
// @Router       /users/{id} [patch]
func (h *Handler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if verr := validation.UUIDFormat(id, "id"); verr != nil {
		return verr
	}

	var in models.UpdateUserData
	if err := c.BodyParser(&in); err != nil {
		return apierror.FromJSON(err)
	}

	b := validation.NewBuilder()
	if in.Username != nil {
		b.Validate(func() *validation.Error {
			return validation.Username(*in.Username, "username")
		})
	}
	if in.Email != nil {
		b.Validate(func() *validation.Error {
			return validation.Email(*in.Email, "email")
		})
	}
	if err := b.BuildUnit(); err != nil {
		return err
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("user", id)
		}
		return apierror.FromDatabase(err)
	}

	updates := map[string]any{}
	if in.Username != nil {
		updates["username"] = *in.Username
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if len(updates) == 0 {
		return c.JSON(user)
	}
	updates["updated_at"] = utils.NowUTC()

	if err := h.db.Model(&user).Updates(updates).Error; err != nil {
		return apierror.FromDatabase(err)
	}

	logging.AuthEvent("updated", user.ID.String())
	return c.JSON(user)
}
