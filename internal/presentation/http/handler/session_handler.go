package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nexuspos/pos-api/internal/application/service"
	"github.com/nexuspos/pos-api/internal/domain/enum"
	"github.com/nexuspos/pos-api/internal/presentation/http/dto/request"
	"github.com/nexuspos/pos-api/internal/presentation/http/dto/response"
)

// SessionHandler handles drawer session HTTP requests
type SessionHandler struct {
	sessionService  *service.SessionService
	activityService *service.ActivityService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService, activityService *service.ActivityService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, activityService: activityService}
}

// Open starts a drawer session with the counted opening float
func (h *SessionHandler) Open(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid session payload")
		return
	}

	session, err := h.sessionService.OpenSession(c.Request.Context(), *userID, req.OpeningCash)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), userID, "sessions.opened", nil)
	response.Created(c, "Session opened", session)
}

// Close ends the user's open session and reports the cash variance
func (h *SessionHandler) Close(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CloseSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid session payload")
		return
	}

	session, err := h.sessionService.CloseSession(c.Request.Context(), *userID, req.ActualCash, req.Remarks)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.activityService.Record(c.Request.Context(), userID, "sessions.closed", nil)
	response.OK(c, "Session closed", session)
}

// RecordCashFlow records cash moving in or out of the open drawer
func (h *SessionHandler) RecordCashFlow(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CashFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Cash flow type must be safe_drop, pay_out or pay_in")
		return
	}

	flow, err := h.sessionService.RecordCashFlow(c.Request.Context(), *userID, enum.CashFlowType(req.Type), req.Amount, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cash flow recorded", flow)
}

// GetCurrent returns the user's open session
func (h *SessionHandler) GetCurrent(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	session, err := h.sessionService.GetOpenSession(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session retrieved", session)
}

// Get returns one session by ID with its cash flows
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	session, err := h.sessionService.GetSession(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session retrieved", session)
}
