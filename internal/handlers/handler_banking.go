package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/mongo_analytics_app/internal/apperrors"
	portssvc "github.com/SscSPs/mongo_analytics_app/internal/core/ports/services"
	"github.com/SscSPs/mongo_analytics_app/internal/dto"
	"github.com/SscSPs/mongo_analytics_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankingHandler handles HTTP requests for the customer and account reports.
type bankingHandler struct {
	bankingService portssvc.BankingSvcFacade
}

// newBankingHandler creates a new bankingHandler.
func newBankingHandler(bs portssvc.BankingSvcFacade) *bankingHandler {
	return &bankingHandler{
		bankingService: bs,
	}
}

// registerBankingRoutes registers the banking report routes.
func registerBankingRoutes(rg *gin.RouterGroup, bankingService portssvc.BankingSvcFacade) {
	h := newBankingHandler(bankingService)

	rg.GET("/active_clients", h.activeClients)
	rg.GET("/clients_by_product", h.clientsByProduct)
	rg.GET("/top_accounts", h.topAccounts)
	rg.GET("/top_by_mount", h.topAccountsByType)
	rg.PUT("/change_datatype", h.repairTransactionAmounts)
}

// activeClients godoc
// @Summary Clients holding high-limit accounts
// @Description Joins customers to their accounts and lists clients whose account limit meets the threshold
// @Tags banking
// @Produce json
// @Param active query bool false "Filter by the customer active flag"
// @Param limit query int false "Minimum account limit, defaults to 10000" minimum(1)
// @Success 200 {object} dto.ListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse
// @Router /active_clients [get]
func (h *bankingHandler) activeClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ActiveClientsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ActiveClients", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters: "+err.Error()))
		return
	}

	logger.Info("Received request for active clients report")

	rows, err := h.bankingService.ActiveClients(c.Request.Context(), params.ToFilter())
	if err != nil {
		h.respondBankingError(c, logger, err, "active clients")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(len(rows), dto.ToActiveClientResponses(rows)))
}

// clientsByProduct godoc
// @Summary Distinct clients per banking product
// @Description Unwinds account products and counts distinct customers per product
// @Tags banking
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients_by_product [get]
func (h *bankingHandler) clientsByProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request for clients by product report")

	rows, err := h.bankingService.ClientsByProduct(c.Request.Context())
	if err != nil {
		h.respondBankingError(c, logger, err, "clients by product")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(len(rows), dto.ToProductClientsResponses(rows)))
}

// topAccounts godoc
// @Summary Top accounts by transaction volume
// @Description Sums transaction amounts per account and returns the n largest
// @Tags banking
// @Produce json
// @Param n query int true "Number of accounts to return" minimum(1)
// @Success 200 {object} dto.ListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse
// @Router /top_accounts [get]
func (h *bankingHandler) topAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TopAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for TopAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters: "+err.Error()))
		return
	}

	logger.Info("Received request for top accounts report", slog.Int("n", *params.N))

	rows, err := h.bankingService.TopAccountsByVolume(c.Request.Context(), *params.N)
	if err != nil {
		h.respondBankingError(c, logger, err, "top accounts")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(len(rows), dto.ToAccountVolumeResponses(rows)))
}

// topAccountsByType godoc
// @Summary Top accounts per transaction type
// @Description Sums amounts per account and transaction code, annotated with the owning customer
// @Tags banking
// @Produce json
// @Param n query int true "Number of rows to return" minimum(1)
// @Success 200 {object} dto.ListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse
// @Router /top_by_mount [get]
func (h *bankingHandler) topAccountsByType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TopAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for TopAccountsByType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters: "+err.Error()))
		return
	}

	logger.Info("Received request for top accounts by type report", slog.Int("n", *params.N))

	rows, err := h.bankingService.TopAccountsByVolumePerType(c.Request.Context(), *params.N)
	if err != nil {
		h.respondBankingError(c, logger, err, "top accounts by type")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(len(rows), dto.ToAccountTypeVolumeResponses(rows)))
}

// repairTransactionAmounts godoc
// @Summary Coerce stringly typed transaction amounts
// @Description Rewrites price and total fields on every transaction entry to numeric doubles and reports the counts
// @Tags banking
// @Produce json
// @Success 200 {object} dto.RepairResultResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /change_datatype [put]
func (h *bankingHandler) repairTransactionAmounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to repair transaction amounts")

	result, err := h.bankingService.RepairTransactionAmounts(c.Request.Context())
	if err != nil {
		h.respondBankingError(c, logger, err, "transaction repair")
		return
	}

	c.JSON(http.StatusOK, dto.ToRepairResultResponse(result))
}

// respondBankingError maps service errors for the banking reports.
func (h *bankingHandler) respondBankingError(c *gin.Context, logger *slog.Logger, err error, report string) {
	if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Validation error in "+report+" report", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}
	logger.Error("Failed to run "+report+" report", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
}
