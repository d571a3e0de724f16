package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nexuspos/pos-api/internal/application/service"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/nexuspos/pos-api/internal/domain/repository"
	"github.com/nexuspos/pos-api/internal/presentation/http/dto/request"
	"github.com/nexuspos/pos-api/internal/presentation/http/dto/response"
	"github.com/nexuspos/pos-api/pkg/pagination"
)

// SaleHandler handles checkout HTTP requests
type SaleHandler struct {
	salesService    *service.SalesService
	activityService *service.ActivityService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(salesService *service.SalesService, activityService *service.ActivityService) *SaleHandler {
	return &SaleHandler{salesService: salesService, activityService: activityService}
}

// Create handles a checkout request. Business rejections (insufficient
// stock, no open session) come back as typed errors with the whole sale
// untouched.
func (h *SaleHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid sale payload")
		return
	}

	method, err := enum.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		response.BadRequest(c, "Unknown payment method")
		return
	}

	items := make([]service.SaleItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.SaleItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	result, err := h.salesService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		UserID:         *userID,
		CustomerID:     req.CustomerID,
		Items:          items,
		TaxAmount:      req.TaxAmount,
		DiscountAmount: req.DiscountAmount,
		PaidAmount:     req.PaidAmount,
		PaymentMethod:  method,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if !result.Success {
		response.Error(c, result.Err)
		return
	}

	details := result.Sale.InvoiceNo
	h.activityService.Record(c.Request.Context(), userID, "sales.created", &details)

	response.Created(c, result.Message, gin.H{
		"sale":   result.Sale,
		"change": result.Change,
	})
}

// Get returns one sale with items, payments and customer
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.salesService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved", sale)
}

// List handles sale listing with date range and party filters
func (h *SaleHandler) List(c *gin.Context) {
	var filter request.SaleFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
	}

	if filter.StartDate != "" {
		start, err := time.Parse("2006-01-02", filter.StartDate)
		if err != nil {
			response.BadRequest(c, "start_date must be YYYY-MM-DD")
			return
		}
		params.StartDate = &start
	}
	if filter.EndDate != "" {
		end, err := time.Parse("2006-01-02", filter.EndDate)
		if err != nil {
			response.BadRequest(c, "end_date must be YYYY-MM-DD")
			return
		}
		// Inclusive end of day
		end = end.Add(24*time.Hour - time.Nanosecond)
		params.EndDate = &end
	}
	if filter.CustomerID != "" {
		if id, err := uuid.Parse(filter.CustomerID); err == nil {
			params.CustomerID = &id
		}
	}
	if filter.UserID != "" {
		if id, err := uuid.Parse(filter.UserID); err == nil {
			params.UserID = &id
		}
	}
	if filter.SessionID != "" {
		if id, err := uuid.Parse(filter.SessionID); err == nil {
			params.SessionID = &id
		}
	}

	sales, total, err := h.salesService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	params.Pagination.Validate()
	page := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	response.SuccessWithPagination(c, "Sales retrieved", sales, page)
}

// DailySummary returns the takings and sale count for one day. Defaults to
// today when no date is given.
func (h *SaleHandler) DailySummary(c *gin.Context) {
	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			response.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	summary, err := h.salesService.GetDailySummary(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily summary retrieved", summary)
}
