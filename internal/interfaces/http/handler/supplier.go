package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	supplierapp "github.com/dropship/backend/internal/application/supplier"
	"github.com/dropship/backend/internal/interfaces/http/middleware"
)

// SupplierHandler handles supplier-related API endpoints
type SupplierHandler struct {
	BaseHandler
	supplierService *supplierapp.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService *supplierapp.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
	}
}

// Create godoc
// @ID           createSupplier
//
//	@Summary		Create a new supplier
//	@Description	Register a supplier; assigns a unique slug and runs onboarding side effects
//	@Tags			suppliers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		supplierapp.CreateSupplierRequest	true	"Supplier creation request"
//	@Success		201		{object}	dto.Response
//	@Failure		400		{object}	dto.Response
//	@Failure		409		{object}	dto.Response
//	@Failure		502		{object}	dto.Response
//	@Router			/suppliers [post]
func (h *SupplierHandler) Create(c *gin.Context) {
	var req supplierapp.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	sup, err := h.supplierService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, sup)
}

// List godoc
// @ID           listSuppliers
//
//	@Summary		List suppliers
//	@Description	List suppliers with filtering, search and pagination
//	@Tags			suppliers
//	@Produce		json
//	@Param			search			query		string	false	"Search in name, slug and email"
//	@Param			active			query		bool	false	"Filter by active flag"
//	@Param			merchant_type	query		string	false	"business or individual"
//	@Param			page			query		int		false	"Page number"
//	@Param			page_size		query		int		false	"Page size (max 100)"
//	@Success		200				{object}	dto.Response
//	@Failure		400				{object}	dto.Response
//	@Router			/suppliers [get]
func (h *SupplierHandler) List(c *gin.Context) {
	var filter supplierapp.SupplierListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	suppliers, total, err := h.supplierService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, suppliers, total, filter.Page, filter.PageSize)
}

// GetByID godoc
// @ID           getSupplierById
//
//	@Summary		Get supplier by ID
//	@Tags			suppliers
//	@Produce		json
//	@Param			id	path		string	true	"Supplier ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Router			/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	sup, err := h.supplierService.GetByID(c.Request.Context(), supplierID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sup)
}

// GetBySlug godoc
// @ID           getSupplierBySlug
//
//	@Summary		Get supplier by slug
//	@Tags			suppliers
//	@Produce		json
//	@Param			slug	path		string	true	"Supplier slug"
//	@Success		200		{object}	dto.Response
//	@Failure		404		{object}	dto.Response
//	@Router			/suppliers/slug/{slug} [get]
func (h *SupplierHandler) GetBySlug(c *gin.Context) {
	slugValue := c.Param("slug")
	if slugValue == "" {
		h.BadRequest(c, "Slug is required")
		return
	}

	sup, err := h.supplierService.GetBySlug(c.Request.Context(), slugValue)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sup)
}

// Update godoc
// @ID           updateSupplier
//
//	@Summary		Update a supplier
//	@Description	Update an existing supplier's details; the slug never changes
//	@Tags			suppliers
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Supplier ID"	format(uuid)
//	@Param			request	body		supplierapp.UpdateSupplierRequest	true	"Supplier update request"
//	@Success		200		{object}	dto.Response
//	@Failure		400		{object}	dto.Response
//	@Failure		404		{object}	dto.Response
//	@Failure		409		{object}	dto.Response
//	@Router			/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	var req supplierapp.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	sup, err := h.supplierService.Update(c.Request.Context(), supplierID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sup)
}

// Delete godoc
// @ID           deleteSupplier
//
//	@Summary		Delete a supplier
//	@Description	Soft-delete a supplier; its slug stays reserved
//	@Tags			suppliers
//	@Param			id	path	string	true	"Supplier ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Router			/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	if err := h.supplierService.Delete(c.Request.Context(), supplierID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// LinkUser godoc
// @ID           linkSupplierUser
//
//	@Summary		Link a user to a supplier
//	@Tags			suppliers
//	@Accept			json
//	@Param			id		path	string						true	"Supplier ID"	format(uuid)
//	@Param			request	body	supplierapp.LinkUserRequest	true	"User link request"
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Router			/suppliers/{id}/users [post]
func (h *SupplierHandler) LinkUser(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	var req supplierapp.LinkUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := h.supplierService.LinkUser(c.Request.Context(), supplierID, req.UserID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// UnlinkUser godoc
// @ID           unlinkSupplierUser
//
//	@Summary		Unlink a user from a supplier
//	@Tags			suppliers
//	@Param			id		path	string	true	"Supplier ID"	format(uuid)
//	@Param			user_id	path	string	true	"User ID"		format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Router			/suppliers/{id}/users/{user_id} [delete]
func (h *SupplierHandler) UnlinkUser(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	if err := h.supplierService.UnlinkUser(c.Request.Context(), supplierID, userID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
