package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	supplierapp "github.com/dropship/backend/internal/application/supplier"
	"github.com/dropship/backend/internal/interfaces/http/middleware"
)

// StockLocationHandler handles stock location API endpoints
type StockLocationHandler struct {
	BaseHandler
	locationService *supplierapp.StockLocationService
}

// NewStockLocationHandler creates a new StockLocationHandler
func NewStockLocationHandler(locationService *supplierapp.StockLocationService) *StockLocationHandler {
	return &StockLocationHandler{
		locationService: locationService,
	}
}

// Create godoc
// @ID           createStockLocation
//
//	@Summary		Create a stock location for a supplier
//	@Tags			stock-locations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string										true	"Supplier ID"	format(uuid)
//	@Param			request	body		supplierapp.CreateStockLocationRequest	true	"Stock location creation request"
//	@Success		201		{object}	dto.Response
//	@Failure		400		{object}	dto.Response
//	@Failure		404		{object}	dto.Response
//	@Router			/suppliers/{id}/stock-locations [post]
func (h *StockLocationHandler) Create(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	var req supplierapp.CreateStockLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	location, err := h.locationService.Create(c.Request.Context(), supplierID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, location)
}

// ListBySupplier godoc
// @ID           listSupplierStockLocations
//
//	@Summary		List a supplier's stock locations
//	@Tags			stock-locations
//	@Produce		json
//	@Param			id	path		string	true	"Supplier ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Router			/suppliers/{id}/stock-locations [get]
func (h *StockLocationHandler) ListBySupplier(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	locations, err := h.locationService.ListBySupplier(c.Request.Context(), supplierID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, locations)
}

// GetByID godoc
// @ID           getStockLocationById
//
//	@Summary		Get stock location by ID
//	@Tags			stock-locations
//	@Produce		json
//	@Param			id	path		string	true	"Stock location ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Router			/stock-locations/{id} [get]
func (h *StockLocationHandler) GetByID(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stock location ID format")
		return
	}

	location, err := h.locationService.GetByID(c.Request.Context(), locationID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, location)
}

// Update godoc
// @ID           updateStockLocation
//
//	@Summary		Update a stock location
//	@Tags			stock-locations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string										true	"Stock location ID"	format(uuid)
//	@Param			request	body		supplierapp.UpdateStockLocationRequest	true	"Stock location update request"
//	@Success		200		{object}	dto.Response
//	@Failure		400		{object}	dto.Response
//	@Failure		404		{object}	dto.Response
//	@Router			/stock-locations/{id} [put]
func (h *StockLocationHandler) Update(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stock location ID format")
		return
	}

	var req supplierapp.UpdateStockLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	location, err := h.locationService.Update(c.Request.Context(), locationID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, location)
}

// Delete godoc
// @ID           deleteStockLocation
//
//	@Summary		Delete a stock location
//	@Tags			stock-locations
//	@Param			id	path	string	true	"Stock location ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Router			/stock-locations/{id} [delete]
func (h *StockLocationHandler) Delete(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stock location ID format")
		return
	}

	if err := h.locationService.Delete(c.Request.Context(), locationID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
