package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lighty7/Finances-backend/config"
	"github.com/lighty7/Finances-backend/internal/mail"
	"github.com/lighty7/Finances-backend/internal/middleware"
	"github.com/lighty7/Finances-backend/internal/models"
	"github.com/lighty7/Finances-backend/internal/services"
	"github.com/lighty7/Finances-backend/internal/utils"
)

type Handler struct {
	cfg    *config.Config
	mailer *mail.Mailer
}

// Register creates an unverified account. The verification email is
// dispatched asynchronously; registration succeeds regardless of whether
// it could be sent.
func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	u, err := services.RegisterUser(h.cfg, h.mailer, input.UserName, input.EmailID, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, internalError(h.cfg, err))
		return
	}

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated,
		"User created successfully. Please check your email to verify your account.",
		toUserResponse(*u)))
}

// VerifyEmail consumes a verification token from the email link.
func (h *Handler) VerifyEmail(c *gin.Context) {
	var input VerifyEmailInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	u, err := services.VerifyEmail(input.Token)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVerificationInvalid):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Verification token is invalid"))
		case errors.Is(err, services.ErrVerificationExpired):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Verification token has expired, please request a new one"))
		default:
			c.JSON(http.StatusInternalServerError, internalError(h.cfg, err))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Email verified successfully", toUserResponse(*u)))
}

// ResendVerification always answers with the same neutral message so the
// endpoint cannot be used to probe which emails have accounts.
func (h *Handler) ResendVerification(c *gin.Context) {
	var input ResendVerificationInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	err := services.ResendVerification(h.cfg, h.mailer, input.EmailID)
	if err != nil && !errors.Is(err, services.ErrUserNotFound) && !errors.Is(err, services.ErrAlreadyVerified) {
		c.JSON(http.StatusInternalServerError, internalError(h.cfg, err))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(
		"If an unverified account exists for this email, a new verification link has been sent", nil))
}

// Get returns one user by id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	u, err := services.FindUserByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "User not found"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User", toUserResponse(u)))
}

// Update applies a partial update to the caller's own account.
func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !ownResource(c, id) {
		return
	}

	var input UpdateInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updates := map[string]interface{}{}
	if input.UserName != nil {
		updates["user_name"] = *input.UserName
	}
	if input.EmailID != nil {
		updates["email_id"] = *input.EmailID
	}
	if input.Password != nil {
		updates["password"] = *input.Password
	}

	u, err := services.UpdateUser(id, updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "User not found"))
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, internalError(h.cfg, err))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User updated successfully", toUserResponse(*u)))
}

// Delete removes the caller's account and cascades to sessions,
// configuration and transactions.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !ownResource(c, id) {
		return
	}

	if err := services.DeleteUser(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, internalError(h.cfg, err))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User deleted successfully", nil))
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user id"))
		return 0, false
	}
	return uint(id), true
}

// ownResource rejects attempts to touch another user's account.
func ownResource(c *gin.Context, id uint) bool {
	user := c.MustGet(middleware.ContextUser).(*models.User)
	if user.ID != id {
		c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "You can only manage your own account"))
		return false
	}
	return true
}

func internalError(cfg *config.Config, err error) utils.Response {
	message := "An error occurred while processing your request"
	if cfg.IsDevelopment() {
		message = err.Error()
	}
	return utils.NewErrorResponse(http.StatusInternalServerError, message)
}
