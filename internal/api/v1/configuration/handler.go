package configuration

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lighty7/Finances-backend/config"
	"github.com/lighty7/Finances-backend/internal/middleware"
	"github.com/lighty7/Finances-backend/internal/models"
	"github.com/lighty7/Finances-backend/internal/services"
	"github.com/lighty7/Finances-backend/internal/utils"
)

type Handler struct {
	cfg *config.Config
}

// Get returns the stored configuration, or a null configuration with
// isConfigured=false when the user has never written one. Absence is not
// an error here; only the loan summary treats it as NotFound.
func (h *Handler) Get(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)

	cfg, err := services.GetConfiguration(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, internalError(h.cfg, err))
		return
	}

	if cfg == nil {
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Configuration", gin.H{
			"configuration": nil,
			"isConfigured":  false,
		}))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Configuration", gin.H{
		"configuration": toConfigurationResponse(*cfg),
		"isConfigured":  cfg.IsConfigured,
	}))
}

// Status is a light probe for the onboarding flow.
func (h *Handler) Status(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)

	cfg, err := services.GetConfiguration(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, internalError(h.cfg, err))
		return
	}

	isConfigured := cfg != nil && cfg.IsConfigured
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Configuration status", gin.H{
		"isConfigured": isConfigured,
	}))
}

// Upsert creates the configuration on first write and merges partial
// updates afterwards.
func (h *Handler) Upsert(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)

	var input UpsertInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	svcInput := services.ConfigurationInput{
		TotalEmi:      input.TotalEmi,
		NumberOfLoans: input.NumberOfLoans,
		EmiSchedule:   input.EmiSchedule,
		Income:        input.Income,
	}
	if input.Loans != nil {
		loans := toLoanList(*input.Loans)
		svcInput.Loans = &loans
	}

	cfg, created, err := services.CreateOrUpdateConfiguration(user.ID, svcInput)
	if err != nil {
		c.JSON(http.StatusInternalServerError, internalError(h.cfg, err))
		return
	}

	status := http.StatusOK
	message := "Configuration updated successfully"
	if created {
		status = http.StatusCreated
		message = "Configuration created successfully"
	}

	c.JSON(status, utils.NewResponse(status, message, gin.H{
		"configuration": toConfigurationResponse(*cfg),
		"isConfigured":  cfg.IsConfigured,
	}))
}

// LoanSummary returns the computed loan picture: stored configuration
// merged with the current month's EMI state and live payoff projections.
func (h *Handler) LoanSummary(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)

	summary, err := services.GetLoanSummary(user.ID, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrConfigurationNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound,
				"No configuration found, please set up your loans first"))
			return
		}
		c.JSON(http.StatusInternalServerError, internalError(h.cfg, err))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Loan summary", summary))
}

func internalError(cfg *config.Config, err error) utils.Response {
	message := "An error occurred while processing your request"
	if cfg.IsDevelopment() {
		message = err.Error()
	}
	return utils.NewErrorResponse(http.StatusInternalServerError, message)
}
