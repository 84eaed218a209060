package auth

import (
	"errors"
	"net/http"

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

// Login authenticates an email/password pair and returns the session
// token. Unknown email and wrong password produce the same response.
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	device := utils.GetDeviceInfo(c)
	result, err := services.LoginUser(h.cfg, h.mailer, input.EmailID, input.Password, input.DeviceID, c.ClientIP(), device)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Email or password is incorrect"))
		case errors.Is(err, services.ErrEmailNotVerified):
			c.JSON(http.StatusForbidden, utils.NewResponse(http.StatusForbidden,
				"Please verify your email address before logging in", gin.H{
					"emailNotVerified": true,
					"emailId":          input.EmailID,
				}))
		default:
			c.JSON(http.StatusInternalServerError, internalError(h.cfg, err))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Login successful", LoginResponse{
		Token: result.Token,
		User: UserSummary{
			ID:       result.User.ID,
			UserName: result.User.UserName,
			EmailID:  result.User.EmailID,
		},
		DeviceID: result.DeviceID,
		Session:  toSessionResponse(result.Session),
	}))
}

// Logout deactivates the session holding the presented token. No prior
// authentication is required, so clients can retire tokens that have
// already expired.
func (h *Handler) Logout(c *gin.Context) {
	tokenString, _ := utils.ExtractToken(c)
	session, err := services.LogoutSession(tokenString)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoToken):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Token is required for logout"))
		case errors.Is(err, services.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Session already logged out or invalid"))
		default:
			c.JSON(http.StatusInternalServerError, internalError(h.cfg, err))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logout successful", gin.H{
		"loggedOutAt": session.LoggedOutAt,
	}))
}

// LogoutAll deactivates every active session of the authenticated user.
func (h *Handler) LogoutAll(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)

	count, err := services.LogoutAllSessions(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, internalError(h.cfg, err))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged out from all devices", gin.H{
		"sessionsTerminated": count,
	}))
}

// Verify reports the user and session resolved by the auth middleware;
// reaching it at all means the token is valid.
func (h *Handler) Verify(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)
	session := c.MustGet(middleware.ContextSession).(*models.Session)

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Token is valid", gin.H{
		"user": UserSummary{
			ID:       user.ID,
			UserName: user.UserName,
			EmailID:  user.EmailID,
		},
		"session": toSessionResponse(*session),
	}))
}

// Session returns the full row for the current session.
func (h *Handler) Session(c *gin.Context) {
	session := c.MustGet(middleware.ContextSession).(*models.Session)

	stored, err := services.FindSessionByID(session.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Session not found"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Session", toSessionResponse(*stored)))
}

// Sessions lists the user's active sessions across devices.
func (h *Handler) Sessions(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)

	sessions, err := services.ActiveSessions(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, internalError(h.cfg, err))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Active sessions", gin.H{
		"sessions": toSessionResponses(sessions),
		"count":    len(sessions),
	}))
}

func internalError(cfg *config.Config, err error) utils.Response {
	message := "An error occurred while processing your request"
	if cfg.IsDevelopment() {
		message = err.Error()
	}
	return utils.NewErrorResponse(http.StatusInternalServerError, message)
}
