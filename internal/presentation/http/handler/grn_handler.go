package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/application/service"
	"github.com/nexuspos/pos-api/internal/domain/repository"
	"github.com/nexuspos/pos-api/internal/presentation/http/dto/request"
	"github.com/nexuspos/pos-api/internal/presentation/http/dto/response"
	"github.com/nexuspos/pos-api/pkg/pagination"
)

// GRNHandler handles goods receipt and purchase return HTTP requests
type GRNHandler struct {
	grnService      *service.GRNService
	activityService *service.ActivityService
}

// NewGRNHandler creates a new GRN handler
func NewGRNHandler(grnService *service.GRNService, activityService *service.ActivityService) *GRNHandler {
	return &GRNHandler{grnService: grnService, activityService: activityService}
}

// Create handles a goods receipt from a supplier
func (h *GRNHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateGRNRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid goods receipt payload")
		return
	}

	items := make([]service.GRNItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.GRNItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		})
	}

	grn, err := h.grnService.ReceiveGoods(c.Request.Context(), &service.ReceiveGoodsInput{
		UserID:      *userID,
		SupplierID:  req.SupplierID,
		ReferenceNo: req.ReferenceNo,
		Items:       items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	details := grn.GRNNo
	h.activityService.Record(c.Request.Context(), userID, "grn.received", &details)

	response.Created(c, "Goods receipt recorded", grn)
}

// Get returns one goods receipt with its items
func (h *GRNHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid GRN ID")
		return
	}

	grn, err := h.grnService.GetGRN(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Goods receipt retrieved", grn)
}

// List handles goods receipt listing
func (h *GRNHandler) List(c *gin.Context) {
	var filter request.GRNFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.GRNFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}
	if filter.SupplierID != "" {
		if id, err := uuid.Parse(filter.SupplierID); err == nil {
			params.SupplierID = &id
		}
	}

	grns, total, err := h.grnService.ListGRNs(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	params.Pagination.Validate()
	page := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	response.SuccessWithPagination(c, "Goods receipts retrieved", grns, page)
}

// CreateReturn handles sending previously received goods back to the supplier
func (h *GRNHandler) CreateReturn(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	grnID, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid GRN ID")
		return
	}

	var req request.CreatePurchaseReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid purchase return payload")
		return
	}

	items := make([]service.PurchaseReturnItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.PurchaseReturnItemInput{
			GRNItemID: item.GRNItemID,
			Quantity:  item.Quantity,
			Reason:    item.Reason,
		})
	}

	purchaseReturn, err := h.grnService.ReturnToSupplier(c.Request.Context(), &service.ReturnToSupplierInput{
		UserID: *userID,
		GRNID:  grnID,
		Items:  items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	details := purchaseReturn.ReturnNo
	h.activityService.Record(c.Request.Context(), userID, "grn.returned", &details)

	response.Created(c, "Purchase return recorded", purchaseReturn)
}

// GetReturn returns one purchase return with its items
func (h *GRNHandler) GetReturn(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid purchase return ID")
		return
	}

	purchaseReturn, err := h.grnService.GetPurchaseReturn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase return retrieved", purchaseReturn)
}
