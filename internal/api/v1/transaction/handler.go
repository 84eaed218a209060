package transaction

import (
	"errors"
	"net/http"
	"strconv"
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

// List returns the user's transactions, optionally filtered by month
// and/or year query parameters, together with the period summary.
func (h *Handler) List(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)

	month, ok := queryInt(c, "month", 1, 12)
	if !ok {
		return
	}
	year, ok := queryInt(c, "year", 1000, 9999)
	if !ok {
		return
	}

	transactions, summary, err := services.FindTransactions(user.ID, month, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, internalError(h.cfg, err))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transactions", ListResponse{
		Transactions: toTransactionResponses(transactions),
		Summary:      summary,
		Period:       PeriodResponse{Month: month, Year: year},
	}))
}

// Create records one financial event.
func (h *Handler) Create(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)

	var input CreateInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	date, err := time.ParseInLocation(dateLayout, input.TransactionDate, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid transaction date"))
		return
	}

	txn, err := services.CreateTransaction(user.ID, services.TransactionInput{
		Type:            models.TransactionType(input.Type),
		Amount:          input.Amount,
		Category:        input.Category,
		Description:     input.Description,
		TransactionDate: date,
		LoanReference:   input.LoanReference,
		PaidEmi:         input.PaidEmi,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, internalError(h.cfg, err))
		return
	}

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Transaction recorded",
		toTransactionResponse(*txn)))
}

// Update applies a field-level update to one transaction.
func (h *Handler) Update(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid transaction id"))
		return
	}

	var input UpdateInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	update := services.TransactionUpdate{
		Amount:        input.Amount,
		Category:      input.Category,
		Description:   input.Description,
		LoanReference: input.LoanReference,
		PaidEmi:       input.PaidEmi,
	}
	if input.Type != nil {
		txnType := models.TransactionType(*input.Type)
		update.Type = &txnType
	}
	if input.TransactionDate != nil {
		date, err := time.ParseInLocation(dateLayout, *input.TransactionDate, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid transaction date"))
			return
		}
		update.TransactionDate = &date
	}

	txn, err := services.UpdateTransaction(user.ID, uint(id), update)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound,
				"Unable to find transaction for this user"))
			return
		}
		c.JSON(http.StatusInternalServerError, internalError(h.cfg, err))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transaction updated", toTransactionResponse(*txn)))
}

// queryInt parses an optional integer query parameter and range-checks it.
func queryInt(c *gin.Context, name string, min, max int) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < min || value > max {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest,
			"Invalid "+name+" parameter"))
		return nil, false
	}
	return &value, true
}

func internalError(cfg *config.Config, err error) utils.Response {
	message := "An error occurred while processing your request"
	if cfg.IsDevelopment() {
		message = err.Error()
	}
	return utils.NewErrorResponse(http.StatusInternalServerError, message)
}
