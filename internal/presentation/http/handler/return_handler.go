package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nexuspos/pos-api/internal/application/service"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/nexuspos/pos-api/internal/presentation/http/dto/request"
	"github.com/nexuspos/pos-api/internal/presentation/http/dto/response"
)

// ReturnHandler handles sales return HTTP requests
type ReturnHandler struct {
	returnService   *service.ReturnService
	activityService *service.ActivityService
}

// NewReturnHandler creates a new return handler
func NewReturnHandler(returnService *service.ReturnService, activityService *service.ActivityService) *ReturnHandler {
	return &ReturnHandler{returnService: returnService, activityService: activityService}
}

// Create handles a sales return against a sale. A line exceeding the
// returnable remainder rejects the whole request.
func (h *ReturnHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	saleID, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req request.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid return payload")
		return
	}

	items := make([]service.ReturnItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		condition, err := enum.ParseReturnCondition(item.Condition)
		if err != nil {
			response.BadRequest(c, "Item condition must be good or damaged")
			return
		}
		items = append(items, service.ReturnItemInput{
			SaleItemID: item.SaleItemID,
			Quantity:   item.Quantity,
			Condition:  condition,
		})
	}

	result, err := h.returnService.ProcessReturn(c.Request.Context(), &service.ProcessReturnInput{
		UserID: *userID,
		SaleID: saleID,
		Reason: req.Reason,
		Items:  items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if !result.Success {
		response.Error(c, result.Err)
		return
	}

	details := result.Return.ReturnNo
	h.activityService.Record(c.Request.Context(), userID, "returns.created", &details)

	response.Created(c, result.Message, gin.H{
		"return":       result.Return,
		"total_refund": result.TotalRefund,
	})
}

// Get returns one sales return with its items
func (h *ReturnHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid return ID")
		return
	}

	ret, err := h.returnService.GetReturn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Return retrieved", ret)
}

// ListBySale lists all returns recorded against one sale
func (h *ReturnHandler) ListBySale(c *gin.Context) {
	saleID, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	returns, err := h.returnService.ListReturnsBySale(c.Request.Context(), saleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Returns retrieved", returns)
}
