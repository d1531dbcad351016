package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gestio-app/gestio/internal/application/catalog/usecases"
	"github.com/gestio-app/gestio/internal/shared/logger"
	"github.com/gestio-app/gestio/internal/shared/utils"
)

// SellerHandler handles seller catalog HTTP requests
type SellerHandler struct {
	createSellerUC *usecases.CreateSellerUseCase
	updateSellerUC *usecases.UpdateSellerUseCase
	deleteSellerUC *usecases.DeleteSellerUseCase
	listSellersUC  *usecases.ListSellersUseCase
	logger         logger.Interface
}

func NewSellerHandler(
	createSellerUC *usecases.CreateSellerUseCase,
	updateSellerUC *usecases.UpdateSellerUseCase,
	deleteSellerUC *usecases.DeleteSellerUseCase,
	listSellersUC *usecases.ListSellersUseCase,
) *SellerHandler {
	return &SellerHandler{
		createSellerUC: createSellerUC,
		updateSellerUC: updateSellerUC,
		deleteSellerUC: deleteSellerUC,
		listSellersUC:  listSellersUC,
		logger:         logger.NewLogger(),
	}
}

type SellerRequest struct {
	Name           string `json:"name" binding:"required"`
	CommissionRate string `json:"commission_rate" binding:"required"`
}

// CreateSeller creates a new seller
// @Summary Create seller
// @Tags Sellers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SellerRequest true "Seller data"
// @Success 201 {object} utils.Response{data=dto.SellerDTO}
// @Failure 400 {object} utils.Response
// @Router /sellers [post]
func (h *SellerHandler) CreateSeller(c *gin.Context) {
	var req SellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create seller", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	rate, err := decimal.NewFromString(req.CommissionRate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid commission rate")
		return
	}

	result, err := h.createSellerUC.Execute(c.Request.Context(), usecases.CreateSellerCommand{
		Name:           req.Name,
		CommissionRate: rate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// UpdateSeller updates an existing seller
// @Summary Update seller
// @Tags Sellers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Seller ID"
// @Param request body SellerRequest true "Seller data"
// @Success 200 {object} utils.Response{data=dto.SellerDTO}
// @Failure 404 {object} utils.Response
// @Router /sellers/{id} [put]
func (h *SellerHandler) UpdateSeller(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid seller ID")
		return
	}

	var req SellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update seller", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	rate, err := decimal.NewFromString(req.CommissionRate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid commission rate")
		return
	}

	result, err := h.updateSellerUC.Execute(c.Request.Context(), usecases.UpdateSellerCommand{
		SellerID:       id,
		Name:           req.Name,
		CommissionRate: rate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteSeller deletes a seller and detaches it from clients
// @Summary Delete seller
// @Description Delete a seller. Clients referencing it keep their subscription with no seller assigned.
// @Tags Sellers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Seller ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /sellers/{id} [delete]
func (h *SellerHandler) DeleteSeller(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid seller ID")
		return
	}

	if err := h.deleteSellerUC.Execute(c.Request.Context(), usecases.DeleteSellerCommand{SellerID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "seller deleted", nil)
}

// ListSellers returns all sellers
// @Summary List sellers
// @Tags Sellers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]dto.SellerDTO}
// @Router /sellers [get]
func (h *SellerHandler) ListSellers(c *gin.Context) {
	result, err := h.listSellersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
