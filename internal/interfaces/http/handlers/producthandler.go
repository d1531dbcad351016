package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gestio-app/gestio/internal/application/catalog/usecases"
	"github.com/gestio-app/gestio/internal/shared/logger"
	"github.com/gestio-app/gestio/internal/shared/utils"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	createProductUC *usecases.CreateProductUseCase
	updateProductUC *usecases.UpdateProductUseCase
	deleteProductUC *usecases.DeleteProductUseCase
	listProductsUC  *usecases.ListProductsUseCase
	logger          logger.Interface
}

func NewProductHandler(
	createProductUC *usecases.CreateProductUseCase,
	updateProductUC *usecases.UpdateProductUseCase,
	deleteProductUC *usecases.DeleteProductUseCase,
	listProductsUC *usecases.ListProductsUseCase,
) *ProductHandler {
	return &ProductHandler{
		createProductUC: createProductUC,
		updateProductUC: updateProductUC,
		deleteProductUC: deleteProductUC,
		listProductsUC:  listProductsUC,
		logger:          logger.NewLogger(),
	}
}

type ProductRequest struct {
	Name  string `json:"name" binding:"required"`
	Price string `json:"price" binding:"required"`
}

// CreateProduct creates a new product
// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductRequest true "Product data"
// @Success 201 {object} utils.Response{data=dto.ProductDTO}
// @Failure 400 {object} utils.Response
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create product", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid price")
		return
	}

	result, err := h.createProductUC.Execute(c.Request.Context(), usecases.CreateProductCommand{
		Name:  req.Name,
		Price: price,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// UpdateProduct updates an existing product
// @Summary Update product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body ProductRequest true "Product data"
// @Success 200 {object} utils.Response{data=dto.ProductDTO}
// @Failure 404 {object} utils.Response
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid product ID")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update product", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid price")
		return
	}

	result, err := h.updateProductUC.Execute(c.Request.Context(), usecases.UpdateProductCommand{
		ProductID: id,
		Name:      req.Name,
		Price:     price,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteProduct deletes a product and detaches it from clients
// @Summary Delete product
// @Description Delete a product. Clients referencing it keep their subscription with no product assigned.
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid product ID")
		return
	}

	if err := h.deleteProductUC.Execute(c.Request.Context(), usecases.DeleteProductCommand{ProductID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "product deleted", nil)
}

// ListProducts returns all products
// @Summary List products
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]dto.ProductDTO}
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	result, err := h.listProductsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
