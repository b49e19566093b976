package handler

import (
	"errors"
	"net/http"

	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/cfgstore-diag/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/core"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler handles session-related HTTP requests
type SessionHandler struct {
	sessionUseCase usecase.SessionUseCase
	logger         coreport.Logger
}

// NewSessionHandler creates a new session handler instance
func NewSessionHandler(sessionUseCase usecase.SessionUseCase, logger coreport.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		logger:         logger,
	}
}

// CreateSession handles the POST /sessions endpoint
func (h *SessionHandler) CreateSession(c *gin.Context) {
	id, err := h.sessionUseCase.CreateSession(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SessionResponse{ID: id.String()})
}

// CloseSession handles the DELETE /sessions/{id} endpoint
func (h *SessionHandler) CloseSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	if err := h.sessionUseCase.CloseSession(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PendingErrors handles the GET /sessions/{id}/errors endpoint
func (h *SessionHandler) PendingErrors(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	records, err := h.sessionUseCase.PendingErrors(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := dto.PendingErrorsResponse{Errors: make([]dto.ErrorRecord, 0, len(records))}
	for _, rec := range records {
		resp.Errors = append(resp.Errors, dto.ErrorRecord{
			Code:     int(rec.Code()),
			CodeText: rec.Code().String(),
			Path:     rec.Path(),
			Message:  rec.Message(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// SetNode handles the POST /sessions/{id}/nodes endpoint
func (h *SessionHandler) SetNode(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req dto.NodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    int(domainerr.CodeInvalArg),
			Message: "Invalid request body",
		})
		return
	}

	code, err := h.sessionUseCase.SetNode(c.Request.Context(), id, entity.Node{Path: req.Path, Value: req.Value})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(StatusFor(code), dto.OperationResponse{
		Code:    int(code),
		Message: code.String(),
	})
}

func (h *SessionHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    int(domainerr.CodeInvalArg),
			Message: "Invalid session ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *SessionHandler) fail(c *gin.Context, err error) {
	code := domainerr.ErrorCode(err)
	message := code.String()

	if !errors.Is(err, domainerr.ErrNotFound) {
		h.logger.Log(coreport.SeverityWarning, "Request %s %s failed (%s).", c.Request.Method, c.Request.URL.Path, err)
	} else {
		message = "Session not found"
	}

	c.JSON(StatusFor(code), dto.ErrorResponse{
		Code:    int(code),
		Message: message,
	})
}

// StatusFor maps a status code to the HTTP status reported for it
func StatusFor(code domainerr.Code) int {
	switch code {
	case domainerr.CodeOK:
		return http.StatusOK
	case domainerr.CodeInvalArg:
		return http.StatusBadRequest
	case domainerr.CodeValidationFailed:
		return http.StatusUnprocessableEntity
	case domainerr.CodeNotFound:
		return http.StatusNotFound
	case domainerr.CodeExists:
		return http.StatusConflict
	case domainerr.CodeUnauthorized:
		return http.StatusForbidden
	case domainerr.CodeLocked:
		return http.StatusLocked
	case domainerr.CodeTimeOut:
		return http.StatusGatewayTimeout
	case domainerr.CodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
