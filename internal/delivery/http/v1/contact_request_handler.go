package v1

import (
	"net/http"
	"strconv"

	"go-transfer-backend/internal/domain"
	"go-transfer-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactRequestHandler struct {
	uc domain.ContactRequestUsecase
}

// NewContactRequestHandler registers the contact request routes (public, no auth required)
func NewContactRequestHandler(public *gin.RouterGroup, uc domain.ContactRequestUsecase) {
	handler := &ContactRequestHandler{uc: uc}

	g := public.Group("/contact-requests")
	{
		g.GET("", handler.List)
		g.POST("", handler.Create)
		g.PUT("", handler.Update)
		g.DELETE("", handler.Delete)
	}
}

type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,valid_name"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"omitempty,valid_phone"`
	Message string `json:"message" binding:"required"`
}

type UpdateContactRequest struct {
	ID      int64   `json:"id"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

// List godoc
// @Summary      List contact requests
// @Description  Get a page of contact requests, newest first, optionally filtered by status
// @Tags         contact-requests
// @Produce      json
// @Param        status  query     string  false  "Status filter"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  map[string]interface{}
// @Failure      500     {object}  response.ErrorBody
// @Router       /contact-requests [get]
func (h *ContactRequestHandler) List(c *gin.Context) {
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	reqs, pagination, err := h.uc.List(c.Request.Context(), status, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      reqs,
		"pagination": pagination,
	})
}

// Create godoc
// @Summary      Submit a contact request
// @Description  Save a contact form submission and notify the site admin by email (best-effort)
// @Tags         contact-requests
// @Accept       json
// @Produce      json
// @Param        request  body      CreateContactRequest  true  "Contact form data"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /contact-requests [post]
func (h *ContactRequestHandler) Create(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	created, err := h.uc.Create(c.Request.Context(), domain.ContactRequestInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"contactRequest": created,
	})
}

// Update godoc
// @Summary      Update a contact request
// @Description  Merge the provided fields over an existing contact request
// @Tags         contact-requests
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateContactRequest  true  "Fields to update (id required)"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorBody
// @Failure      404      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /contact-requests [put]
func (h *ContactRequestHandler) Update(c *gin.Context) {
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if req.ID == 0 {
		c.Error(apperror.BadRequest("Request id is required"))
		return
	}

	updated, err := h.uc.Update(c.Request.Context(), req.ID, domain.ContactRequestUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Status:  req.Status,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"contactRequest": updated,
	})
}

// Delete godoc
// @Summary      Delete a contact request
// @Tags         contact-requests
// @Produce      json
// @Param        id   query     int  true  "Request ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /contact-requests [delete]
func (h *ContactRequestHandler) Delete(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		c.Error(apperror.BadRequest("Request id is required"))
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid request id"))
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
