package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestio-app/gestio/internal/application/report/usecases"
	"github.com/gestio-app/gestio/internal/shared/logger"
	"github.com/gestio-app/gestio/internal/shared/utils"
)

// ReportHandler handles dashboard and reporting HTTP requests
type ReportHandler struct {
	getDashboardUC        *usecases.GetDashboardUseCase
	getSellerReportsUC    *usecases.GetSellerReportsUseCase
	getProductSummariesUC *usecases.GetProductSummariesUseCase
	exportSellerReportsUC *usecases.ExportSellerReportsUseCase
	sendReminderUC        *usecases.SendReminderUseCase
	logger                logger.Interface
}

func NewReportHandler(
	getDashboardUC *usecases.GetDashboardUseCase,
	getSellerReportsUC *usecases.GetSellerReportsUseCase,
	getProductSummariesUC *usecases.GetProductSummariesUseCase,
	exportSellerReportsUC *usecases.ExportSellerReportsUseCase,
	sendReminderUC *usecases.SendReminderUseCase,
) *ReportHandler {
	return &ReportHandler{
		getDashboardUC:        getDashboardUC,
		getSellerReportsUC:    getSellerReportsUC,
		getProductSummariesUC: getProductSummariesUC,
		exportSellerReportsUC: exportSellerReportsUC,
		sendReminderUC:        sendReminderUC,
		logger:                logger.NewLogger(),
	}
}

// GetDashboard returns the business overview
// @Summary Get dashboard
// @Description Return client totals, active subscriptions, estimated revenue and expiring subscriptions
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=dto.DashboardDTO}
// @Router /dashboard [get]
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	result, err := h.getDashboardUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetSellerReports returns per-seller commission reports
// @Summary Get seller reports
// @Description Return per-seller sales and commission breakdowns plus a global summary
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=usecases.SellerReportsResult}
// @Router /reports/sellers [get]
func (h *ReportHandler) GetSellerReports(c *gin.Context) {
	result, err := h.getSellerReportsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetProductSummaries returns per-product revenue summaries
// @Summary Get product summaries
// @Description Return active client counts and estimated revenue per product
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]dto.ProductSummaryDTO}
// @Router /reports/products [get]
func (h *ReportHandler) GetProductSummaries(c *gin.Context) {
	result, err := h.getProductSummariesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ExportSellerReports downloads all seller sales as CSV
// @Summary Export seller reports to CSV
// @Tags Reports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Router /reports/sellers/export [get]
func (h *ReportHandler) ExportSellerReports(c *gin.Context) {
	data, err := h.exportSellerReportsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filename := "report_venditori_" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// SendReminder emails a renewal reminder to a client
// @Summary Send expiry reminder
// @Description Send a renewal reminder email to the given client
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param clientID path int true "Client ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /dashboard/reminders/{clientID} [post]
func (h *ReportHandler) SendReminder(c *gin.Context) {
	id, err := parseUintParam(c, "clientID")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid client ID")
		return
	}

	if err := h.sendReminderUC.Execute(c.Request.Context(), usecases.SendReminderCommand{ClientID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "reminder sent", nil)
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
