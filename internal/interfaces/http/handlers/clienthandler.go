package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestio-app/gestio/internal/application/client/usecases"
	"github.com/gestio-app/gestio/internal/shared/biztime"
	"github.com/gestio-app/gestio/internal/shared/logger"
	"github.com/gestio-app/gestio/internal/shared/utils"
)

// ClientHandler handles client management HTTP requests
type ClientHandler struct {
	createClientUC  *usecases.CreateClientUseCase
	updateClientUC  *usecases.UpdateClientUseCase
	deleteClientUC  *usecases.DeleteClientUseCase
	getClientUC     *usecases.GetClientUseCase
	listClientsUC   *usecases.ListClientsUseCase
	importClientsUC *usecases.ImportClientsUseCase
	exportClientsUC *usecases.ExportClientsUseCase
	logger          logger.Interface
}

func NewClientHandler(
	createClientUC *usecases.CreateClientUseCase,
	updateClientUC *usecases.UpdateClientUseCase,
	deleteClientUC *usecases.DeleteClientUseCase,
	getClientUC *usecases.GetClientUseCase,
	listClientsUC *usecases.ListClientsUseCase,
	importClientsUC *usecases.ImportClientsUseCase,
	exportClientsUC *usecases.ExportClientsUseCase,
) *ClientHandler {
	return &ClientHandler{
		createClientUC:  createClientUC,
		updateClientUC:  updateClientUC,
		deleteClientUC:  deleteClientUC,
		getClientUC:     getClientUC,
		listClientsUC:   listClientsUC,
		importClientsUC: importClientsUC,
		exportClientsUC: exportClientsUC,
		logger:          logger.NewLogger(),
	}
}

type ClientRequest struct {
	Name              string  `json:"name" validate:"required"`
	Surname           string  `json:"surname" validate:"required"`
	CompanyName       *string `json:"company_name"`
	VATNumber         *string `json:"vat_number"`
	Address           string  `json:"address"`
	Email             string  `json:"email" validate:"required,email"`
	IBAN              string  `json:"iban"`
	Notes             string  `json:"notes"`
	SubscriptionStart string  `json:"subscription_start" validate:"required,datetime=2006-01-02"`
	SubscriptionEnd   string  `json:"subscription_end" validate:"required,datetime=2006-01-02"`
	SubscriptionType  string  `json:"subscription_type" validate:"omitempty,oneof=monthly annual trial"`
	ProductID         *uint   `json:"product_id"`
	SellerID          *uint   `json:"seller_id"`
}

func (r *ClientRequest) subscriptionDates() (start, end time.Time, err error) {
	start, err = biztime.ParseDateInBizTimezone(r.SubscriptionStart)
	if err != nil {
		return
	}
	end, err = biztime.ParseDateInBizTimezone(r.SubscriptionEnd)
	return
}

// CreateClient creates a new client
// @Summary Create client
// @Description Create a client with an embedded subscription window
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ClientRequest true "Client data"
// @Success 201 {object} utils.Response{data=dto.ClientDTO}
// @Failure 400 {object} utils.Response
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create client", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	start, end, err := req.subscriptionDates()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid subscription dates, expected YYYY-MM-DD")
		return
	}

	result, err := h.createClientUC.Execute(c.Request.Context(), usecases.CreateClientCommand{
		Name:              req.Name,
		Surname:           req.Surname,
		CompanyName:       req.CompanyName,
		VATNumber:         req.VATNumber,
		Address:           req.Address,
		Email:             req.Email,
		IBAN:              req.IBAN,
		Notes:             req.Notes,
		SubscriptionStart: start,
		SubscriptionEnd:   end,
		SubscriptionType:  req.SubscriptionType,
		ProductID:         req.ProductID,
		SellerID:          req.SellerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// UpdateClient updates an existing client
// @Summary Update client
// @Description Replace a client's details and subscription window
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Param request body ClientRequest true "Client data"
// @Success 200 {object} utils.Response{data=dto.ClientDTO}
// @Failure 404 {object} utils.Response
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid client ID")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update client", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	start, end, err := req.subscriptionDates()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid subscription dates, expected YYYY-MM-DD")
		return
	}

	result, err := h.updateClientUC.Execute(c.Request.Context(), usecases.UpdateClientCommand{
		ClientID:          id,
		Name:              req.Name,
		Surname:           req.Surname,
		CompanyName:       req.CompanyName,
		VATNumber:         req.VATNumber,
		Address:           req.Address,
		Email:             req.Email,
		IBAN:              req.IBAN,
		Notes:             req.Notes,
		SubscriptionStart: start,
		SubscriptionEnd:   end,
		SubscriptionType:  req.SubscriptionType,
		ProductID:         req.ProductID,
		SellerID:          req.SellerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteClient deletes a client
// @Summary Delete client
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid client ID")
		return
	}

	if err := h.deleteClientUC.Execute(c.Request.Context(), usecases.DeleteClientCommand{ClientID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "client deleted", nil)
}

// GetClient returns a single client with rendered notes
// @Summary Get client
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} utils.Response{data=dto.ClientDTO}
// @Failure 404 {object} utils.Response
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid client ID")
		return
	}

	result, err := h.getClientUC.Execute(c.Request.Context(), usecases.GetClientQuery{ClientID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListClients returns a filtered, sorted page of clients
// @Summary List clients
// @Description List clients with optional search, filters, sorting and pagination
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search in name, surname, email or company"
// @Param product_id query int false "Filter by product"
// @Param seller_id query int false "Filter by seller"
// @Param subscription_type query string false "Filter by subscription type"
// @Param sort query string false "Sort order: expiry_asc, expiry_desc or name_asc"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.Response{data=utils.ListResponse}
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListClientsQuery{
		Search:           c.Query("search"),
		SubscriptionType: c.Query("subscription_type"),
		Sort:             c.Query("sort"),
		Page:             pagination.Page,
		PageSize:         pagination.PageSize,
	}
	if v := c.Query("product_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			productID := uint(id)
			query.ProductID = &productID
		}
	}
	if v := c.Query("seller_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			sellerID := uint(id)
			query.SellerID = &sellerID
		}
	}

	result, err := h.listClientsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Clients, result.Total, pagination.Page, pagination.PageSize)
}

// ImportClients imports clients from an uploaded CSV file
// @Summary Import clients from CSV
// @Description Import clients from a CSV file with Italian headers, skipping invalid rows
// @Tags Clients
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Success 200 {object} utils.Response{data=dto.ImportResultDTO}
// @Failure 400 {object} utils.Response
// @Router /clients/import [post]
func (h *ClientHandler) ImportClients(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing CSV file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.importClientsUC.Execute(c.Request.Context(), usecases.ImportClientsCommand{Reader: file})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ExportClients downloads all clients as CSV
// @Summary Export clients to CSV
// @Description Export all clients as a CSV file sorted by subscription end
// @Tags Clients
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Router /clients/export [get]
func (h *ClientHandler) ExportClients(c *gin.Context) {
	data, err := h.exportClientsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filename := "clienti_" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
