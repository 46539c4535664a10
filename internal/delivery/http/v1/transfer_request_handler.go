package v1

import (
	"net/http"
	"strconv"

	"go-transfer-backend/internal/domain"
	"go-transfer-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TransferRequestHandler struct {
	uc domain.TransferRequestUsecase
}

// NewTransferRequestHandler registers the transfer request routes (public, no auth required)
func NewTransferRequestHandler(public *gin.RouterGroup, uc domain.TransferRequestUsecase) {
	handler := &TransferRequestHandler{uc: uc}

	g := public.Group("/transfer-requests")
	{
		g.GET("", handler.List)
		g.POST("", handler.Create)
		g.PUT("", handler.Update)
		g.DELETE("", handler.Delete)
	}
}

type CreateTransferRequest struct {
	CustomerName       string `json:"customerName" binding:"required,valid_name"`
	CustomerPhone      string `json:"customerPhone" binding:"required,valid_phone"`
	Date               string `json:"date" binding:"required"`
	ReturnDate         string `json:"returnDate"`
	ReturnTransfer     bool   `json:"returnTransfer"`
	OriginCity         string `json:"originCity"`
	OriginAddress      string `json:"originAddress"`
	DestinationCity    string `json:"destinationCity"`
	DestinationAddress string `json:"destinationAddress"`
	TellDriver         bool   `json:"tellDriver"`
	VehicleClass       string `json:"vehicleClass"`
	PaymentMethod      string `json:"paymentMethod"`
	Comments           string `json:"comments"`
	VehicleID          *int64 `json:"vehicleId"`
}

type UpdateTransferRequest struct {
	ID                 int64   `json:"id"`
	CustomerName       *string `json:"customerName"`
	CustomerPhone      *string `json:"customerPhone"`
	Date               *string `json:"date"`
	ReturnDate         *string `json:"returnDate"`
	ReturnTransfer     *bool   `json:"returnTransfer"`
	OriginCity         *string `json:"originCity"`
	OriginAddress      *string `json:"originAddress"`
	DestinationCity    *string `json:"destinationCity"`
	DestinationAddress *string `json:"destinationAddress"`
	TellDriver         *bool   `json:"tellDriver"`
	VehicleClass       *string `json:"vehicleClass"`
	PaymentMethod      *string `json:"paymentMethod"`
	Comments           *string `json:"comments"`
	Status             *string `json:"status"`
	VehicleID          *int64  `json:"vehicleId"`
}

// List godoc
// @Summary      List transfer requests
// @Description  Get a page of transfer requests with their vehicle, newest first, optionally filtered by status
// @Tags         transfer-requests
// @Produce      json
// @Param        status  query     string  false  "Status filter"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  map[string]interface{}
// @Failure      500     {object}  response.ErrorBody
// @Router       /transfer-requests [get]
func (h *TransferRequestHandler) List(c *gin.Context) {
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
// @Summary      Submit a transfer order
// @Description  Save a transfer booking and notify the dispatcher by email (best-effort)
// @Tags         transfer-requests
// @Accept       json
// @Produce      json
// @Param        request  body      CreateTransferRequest  true  "Transfer order data"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /transfer-requests [post]
func (h *TransferRequestHandler) Create(c *gin.Context) {
	var req CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	created, err := h.uc.Create(c.Request.Context(), domain.TransferRequestInput{
		CustomerName:       req.CustomerName,
		CustomerPhone:      req.CustomerPhone,
		Date:               req.Date,
		ReturnDate:         req.ReturnDate,
		ReturnTransfer:     req.ReturnTransfer,
		OriginCity:         req.OriginCity,
		OriginAddress:      req.OriginAddress,
		DestinationCity:    req.DestinationCity,
		DestinationAddress: req.DestinationAddress,
		TellDriver:         req.TellDriver,
		VehicleClass:       req.VehicleClass,
		PaymentMethod:      req.PaymentMethod,
		Comments:           req.Comments,
		VehicleID:          req.VehicleID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"transferRequest": created,
	})
}

// Update godoc
// @Summary      Update a transfer request
// @Description  Merge the provided fields over an existing transfer request
// @Tags         transfer-requests
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateTransferRequest  true  "Fields to update (id required)"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorBody
// @Failure      404      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /transfer-requests [put]
func (h *TransferRequestHandler) Update(c *gin.Context) {
	var req UpdateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if req.ID == 0 {
		c.Error(apperror.BadRequest("Request id is required"))
		return
	}

	updated, err := h.uc.Update(c.Request.Context(), req.ID, domain.TransferRequestUpdate{
		CustomerName:       req.CustomerName,
		CustomerPhone:      req.CustomerPhone,
		Date:               req.Date,
		ReturnDate:         req.ReturnDate,
		ReturnTransfer:     req.ReturnTransfer,
		OriginCity:         req.OriginCity,
		OriginAddress:      req.OriginAddress,
		DestinationCity:    req.DestinationCity,
		DestinationAddress: req.DestinationAddress,
		TellDriver:         req.TellDriver,
		VehicleClass:       req.VehicleClass,
		PaymentMethod:      req.PaymentMethod,
		Comments:           req.Comments,
		Status:             req.Status,
		VehicleID:          req.VehicleID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"transferRequest": updated,
	})
}

// Delete godoc
// @Summary      Delete a transfer request
// @Tags         transfer-requests
// @Produce      json
// @Param        id   query     int  true  "Request ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /transfer-requests [delete]
func (h *TransferRequestHandler) Delete(c *gin.Context) {
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
