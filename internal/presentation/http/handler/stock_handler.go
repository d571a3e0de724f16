package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nexuspos/pos-api/internal/application/service"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/nexuspos/pos-api/internal/presentation/http/dto/request"
	"github.com/nexuspos/pos-api/internal/presentation/http/dto/response"
	"github.com/nexuspos/pos-api/pkg/pagination"
)

// StockHandler handles stock adjustment HTTP requests
type StockHandler struct {
	stockService    *service.StockService
	activityService *service.ActivityService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService, activityService *service.ActivityService) *StockHandler {
	return &StockHandler{stockService: stockService, activityService: activityService}
}

// CreateAdjustment records a manual stock correction from physical counts
func (h *StockHandler) CreateAdjustment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid adjustment payload")
		return
	}

	reason, err := enum.ParseAdjustmentReason(req.Reason)
	if err != nil {
		response.BadRequest(c, "Unknown adjustment reason")
		return
	}

	items := make([]service.AdjustmentItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.AdjustmentItemInput{
			ProductID:   item.ProductID,
			PhysicalQty: item.PhysicalQty,
		})
	}

	adjustment, err := h.stockService.AdjustStock(c.Request.Context(), &service.AdjustStockInput{
		UserID: *userID,
		Reason: reason,
		Notes:  req.Notes,
		Items:  items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	details := adjustment.AdjustmentNo
	h.activityService.Record(c.Request.Context(), userID, "stock.adjusted", &details)

	response.Created(c, "Stock adjustment recorded", adjustment)
}

// GetAdjustment returns one adjustment document with its items
func (h *StockHandler) GetAdjustment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid adjustment ID")
		return
	}

	adjustment, err := h.stockService.GetAdjustment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Adjustment retrieved", adjustment)
}

// ListAdjustments lists adjustment documents, newest first
func (h *StockHandler) ListAdjustments(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	adjustments, total, err := h.stockService.ListAdjustments(c.Request.Context(), &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	params.Validate()
	page := pagination.NewPagination(params.Page, params.PerPage, total)
	response.SuccessWithPagination(c, "Adjustments retrieved", adjustments, page)
}
